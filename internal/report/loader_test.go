package report_test

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars-report/internal/domain"
	"github.com/couchcryptid/fars-report/internal/observability"
	"github.com/couchcryptid/fars-report/internal/report"
)

// --- mocks ---

type mockReader struct {
	data  map[int][]domain.Accident
	calls []int
}

func (m *mockReader) ReadYear(year int) ([]domain.Accident, error) {
	m.calls = append(m.calls, year)
	accidents, ok := m.data[year]
	if !ok {
		return nil, fmt.Errorf("archive accident_%d.csv.bz2 does not exist: %w", year, fs.ErrNotExist)
	}
	return accidents, nil
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func monthAcc(month int) domain.Accident {
	return domain.Accident{State: 1, Month: month}
}

// --- tests ---

func TestLoadYears_IsolatesFailures(t *testing.T) {
	reader := &mockReader{data: map[int][]domain.Accident{
		2013: {monthAcc(1), monthAcc(1), monthAcc(2)},
		2014: {monthAcc(3)},
	}}
	logger, logs := captureLogger()

	l := report.New(reader, logger, observability.NewMetricsForTesting())
	results := l.LoadYears([]int{2013, 9999, 2014})

	require.Len(t, results, 3)

	assert.Equal(t, 2013, results[0].Year)
	require.NoError(t, results[0].Err)
	assert.Len(t, results[0].Accidents, 3)

	assert.Equal(t, 9999, results[1].Year)
	require.Error(t, results[1].Err)
	assert.ErrorIs(t, results[1].Err, fs.ErrNotExist)
	assert.Empty(t, results[1].Accidents)

	assert.Equal(t, 2014, results[2].Year)
	require.NoError(t, results[2].Err)
	assert.Len(t, results[2].Accidents, 1)

	// Exactly one warning, referencing the failed year.
	assert.Equal(t, 1, strings.Count(logs.String(), "invalid year"))
	assert.Contains(t, logs.String(), "invalid year: 9999")
}

func TestLoadYears_NoWarningsOnSuccess(t *testing.T) {
	reader := &mockReader{data: map[int][]domain.Accident{
		2013: {monthAcc(1)},
	}}
	logger, logs := captureLogger()

	l := report.New(reader, logger, observability.NewMetricsForTesting())
	results := l.LoadYears([]int{2013})

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.NotContains(t, logs.String(), "invalid year")
}

// grid flattens a summary into rows of [month, count-per-year...] strings,
// with "" marking absent cells.
func grid(s domain.Summary) [][]string {
	rows := make([][]string, 0, len(s.Months))
	for _, month := range s.Months {
		row := []string{strconv.Itoa(month)}
		for _, year := range s.Years {
			if n, ok := s.Count(month, year); ok {
				row = append(row, strconv.Itoa(n))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func TestSummarizeYears(t *testing.T) {
	reader := &mockReader{data: map[int][]domain.Accident{
		2013: {monthAcc(1), monthAcc(1), monthAcc(2), monthAcc(12)},
		2014: {monthAcc(2), monthAcc(3)},
	}}
	logger, _ := captureLogger()

	l := report.New(reader, logger, observability.NewMetricsForTesting())
	s, err := l.SummarizeYears([]int{2013, 2014})
	require.NoError(t, err)

	assert.Equal(t, []int{2013, 2014}, s.Years)

	want := [][]string{
		{"1", "2", ""},
		{"2", "1", "1"},
		{"3", "", "1"},
		{"12", "1", ""},
	}
	if diff := cmp.Diff(want, grid(s)); diff != "" {
		t.Errorf("summary grid mismatch (-want +got):\n%s", diff)
	}

	// Stacking the per-year tables preserves the total row count.
	assert.Equal(t, 6, s.Total())
}

func TestSummarizeYears_SkipsFailedYears(t *testing.T) {
	reader := &mockReader{data: map[int][]domain.Accident{
		2013: {monthAcc(5)},
	}}
	logger, logs := captureLogger()

	l := report.New(reader, logger, observability.NewMetricsForTesting())
	s, err := l.SummarizeYears([]int{2013, 9999})
	require.NoError(t, err)

	assert.Equal(t, []int{2013}, s.Years)
	assert.Equal(t, 1, s.Total())
	assert.Contains(t, logs.String(), "invalid year: 9999")
}

func TestSummarizeYears_NoData(t *testing.T) {
	t.Run("every year fails", func(t *testing.T) {
		reader := &mockReader{}
		logger, _ := captureLogger()

		l := report.New(reader, logger, observability.NewMetricsForTesting())
		_, err := l.SummarizeYears([]int{9998, 9999})
		assert.ErrorIs(t, err, report.ErrNoData)
	})

	t.Run("archives exist but hold no rows", func(t *testing.T) {
		reader := &mockReader{data: map[int][]domain.Accident{2013: {}}}
		logger, _ := captureLogger()

		l := report.New(reader, logger, observability.NewMetricsForTesting())
		_, err := l.SummarizeYears([]int{2013})
		assert.ErrorIs(t, err, report.ErrNoData)
	})
}
