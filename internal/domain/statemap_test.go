package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locAcc(state int, lat, lon float64) Accident {
	return Accident{State: state, Month: 1, Latitude: lat, Longitud: lon}
}

func TestBuildStateMap(t *testing.T) {
	accidents := []Accident{
		locAcc(1, 32.5, -86.8),
		locAcc(1, 33.2, -87.6),
		locAcc(48, 31.0, -98.4), // different state, ignored
		locAcc(1, 30.9, -88.1),
	}

	m, err := BuildStateMap(accidents, 1, 2013)
	require.NoError(t, err)

	assert.Equal(t, 1, m.State)
	assert.Equal(t, "Alabama", m.StateName)
	assert.Equal(t, 2013, m.Year)
	assert.Equal(t, []Point{
		{Lon: -86.8, Lat: 32.5},
		{Lon: -87.6, Lat: 33.2},
		{Lon: -88.1, Lat: 30.9},
	}, m.Points)
	assert.Equal(t, -88.1, m.LonMin)
	assert.Equal(t, -86.8, m.LonMax)
	assert.Equal(t, 30.9, m.LatMin)
	assert.Equal(t, 33.2, m.LatMax)
	assert.Zero(t, m.Dropped)
}

func TestBuildStateMap_UnknownState(t *testing.T) {
	accidents := []Accident{locAcc(1, 32.5, -86.8)}

	_, err := BuildStateMap(accidents, 99, 2013)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.EqualError(t, err, "invalid STATE number: 99")
}

func TestBuildStateMap_SentinelsExcludedFromRangesAndMarkers(t *testing.T) {
	accidents := []Accident{
		locAcc(1, 32.5, -86.8),
		locAcc(1, 99.9999, -86.9),    // latitude sentinel
		locAcc(1, 33.0, 999.9999),    // longitude sentinel
		locAcc(1, 99.9999, 999.9999), // both
	}

	m, err := BuildStateMap(accidents, 1, 2013)
	require.NoError(t, err)

	assert.Len(t, m.Points, 1)
	assert.Equal(t, 3, m.Dropped)
	assert.Equal(t, -86.8, m.LonMin)
	assert.Equal(t, -86.8, m.LonMax)
	assert.Equal(t, 32.5, m.LatMin)
	assert.Equal(t, 32.5, m.LatMax)
}

func TestBuildStateMap_NothingPlottable(t *testing.T) {
	// State present but every row carries out-of-range coordinates.
	accidents := []Accident{
		locAcc(1, 99.9999, 999.9999),
		locAcc(1, 95.0, -86.0),
	}

	_, err := BuildStateMap(accidents, 1, 2013)
	assert.ErrorIs(t, err, ErrNoAccidents)
}

func TestBuildStateMap_EmptyData(t *testing.T) {
	_, err := BuildStateMap(nil, 1, 2013)
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestStateMapTitle(t *testing.T) {
	m := StateMap{State: 48, StateName: "Texas", Year: 2014}
	assert.Equal(t, "Texas accidents, 2014", m.Title())

	m = StateMap{State: 3, Year: 2014}
	assert.Equal(t, "State 3 accidents, 2014", m.Title())
}

func TestStateName(t *testing.T) {
	name, ok := StateName(11)
	require.True(t, ok)
	assert.Equal(t, "District of Columbia", name)

	_, ok = StateName(3)
	assert.False(t, ok)

	assert.True(t, KnownState(56))
	assert.False(t, KnownState(57))
}
