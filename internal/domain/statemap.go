package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownState reports a state code with no rows in the year's data.
var ErrUnknownState = errors.New("invalid STATE number")

// ErrNoAccidents reports that a state/year filter left nothing to plot.
// Callers treat it as informational, not as a failure.
var ErrNoAccidents = errors.New("no accidents to plot")

// StateMap holds one state's plottable accident locations for a year, with
// axis ranges computed over the valid coordinates only.
type StateMap struct {
	State     int
	StateName string // "" when the code is not in the GSA table
	Year      int
	Points    []Point
	LonMin    float64
	LonMax    float64
	LatMin    float64
	LatMax    float64
	Dropped   int // rows excluded by the coordinate sentinels
}

// BuildStateMap filters one year's records to a state and prepares the
// coordinates for rendering. The state must appear among the data's STATE
// values or the call fails with ErrUnknownState. Rows whose latitude exceeds
// 90 or longitude exceeds 900 carry unknown-position sentinels and are kept
// out of both the markers and the axis ranges. When nothing plottable
// remains the call returns ErrNoAccidents.
func BuildStateMap(accidents []Accident, state, year int) (StateMap, error) {
	present := false
	for i := range accidents {
		if accidents[i].State == state {
			present = true
			break
		}
	}
	if !present {
		return StateMap{}, fmt.Errorf("%w: %d", ErrUnknownState, state)
	}

	m := StateMap{State: state, Year: year}
	if name, ok := StateName(state); ok {
		m.StateName = name
	}

	for i := range accidents {
		a := &accidents[i]
		if a.State != state {
			continue
		}
		if !a.LocationKnown() {
			m.Dropped++
			continue
		}
		p := Point{Lon: a.Longitud, Lat: a.Latitude}
		if len(m.Points) == 0 {
			m.LonMin, m.LonMax = p.Lon, p.Lon
			m.LatMin, m.LatMax = p.Lat, p.Lat
		} else {
			if p.Lon < m.LonMin {
				m.LonMin = p.Lon
			}
			if p.Lon > m.LonMax {
				m.LonMax = p.Lon
			}
			if p.Lat < m.LatMin {
				m.LatMin = p.Lat
			}
			if p.Lat > m.LatMax {
				m.LatMax = p.Lat
			}
		}
		m.Points = append(m.Points, p)
	}

	if len(m.Points) == 0 {
		return StateMap{}, ErrNoAccidents
	}
	return m, nil
}

// Title is the caption rendered above the map.
func (m StateMap) Title() string {
	if m.StateName != "" {
		return fmt.Sprintf("%s accidents, %d", m.StateName, m.Year)
	}
	return fmt.Sprintf("State %d accidents, %d", m.State, m.Year)
}
