package integration_test

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/fars-report/internal/adapter/archive"
	"github.com/couchcryptid/fars-report/internal/adapter/chart"
	"github.com/couchcryptid/fars-report/internal/adapter/export"
	"github.com/couchcryptid/fars-report/internal/domain"
	"github.com/couchcryptid/fars-report/internal/observability"
	"github.com/couchcryptid/fars-report/internal/report"
)

// The fixture archives under the archive adapter hold 8 rows for 2013
// (compressed), 5 for 2014 (compressed), and 3 for 2015 (plain CSV).
const fixtureDir = "../adapter/archive/testdata"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestSummaryEndToEnd wires the real stack (archive reader, loader, export
// writers) over the fixture archives and verifies that a missing year is
// isolated while every loaded row lands in the summary.
func TestSummaryEndToEnd(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	reader := archive.New(fixtureDir, logger)
	loader := report.New(reader, logger, observability.NewMetricsForTesting())

	summary, err := loader.SummarizeYears([]int{2013, 2014, 2015, 9999})
	require.NoError(t, err)

	// The missing year is skipped with exactly one warning.
	assert.Equal(t, 1, strings.Count(logs.String(), "invalid year"))
	assert.Contains(t, logs.String(), "invalid year: 9999")

	assert.Equal(t, []int{2013, 2014, 2015}, summary.Years)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 9, 12}, summary.Months)
	assert.Equal(t, 16, summary.Total())

	n, ok := summary.Count(1, 2013)
	require.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = summary.Count(2, 2015)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	// 2015 has no January rows, so the cell is absent rather than zero.
	_, ok = summary.Count(1, 2015)
	assert.False(t, ok)

	// CSV and XLSX exports carry the same grid.
	var csvBuf bytes.Buffer
	require.NoError(t, export.WriteCSV(&csvBuf, summary))
	lines := strings.Split(strings.TrimRight(csvBuf.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "MONTH,2013,2014,2015", lines[0])
	assert.Equal(t, "1,3,2,", lines[1])

	var xlsxBuf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&xlsxBuf, summary))
	f, err := excelize.OpenReader(&xlsxBuf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Len(t, rows, 9)
}

// TestMapStateEndToEnd renders real PNGs from the fixture archives.
func TestMapStateEndToEnd(t *testing.T) {
	reader := archive.New(fixtureDir, discardLogger())
	mapper := report.NewMapper(reader, chart.New(400, 300), discardLogger(), observability.NewMetricsForTesting())

	t.Run("multiple markers", func(t *testing.T) {
		img, err := mapper.MapState(1, 2013)
		require.NoError(t, err)

		decoded, err := png.Decode(bytes.NewReader(img))
		require.NoError(t, err)
		assert.Equal(t, 400, decoded.Bounds().Dx())
		assert.Equal(t, 300, decoded.Bounds().Dy())
	})

	// State 48 has one located row and one unknown-position row in 2013, so
	// the map reduces to a single marker.
	t.Run("single marker after sanitizing", func(t *testing.T) {
		img, err := mapper.MapState(48, 2013)
		require.NoError(t, err)

		_, err = png.Decode(bytes.NewReader(img))
		require.NoError(t, err)
	})

	t.Run("state absent from the year", func(t *testing.T) {
		_, err := mapper.MapState(99, 2013)
		assert.ErrorIs(t, err, domain.ErrUnknownState)
	})

	t.Run("missing archive", func(t *testing.T) {
		_, err := mapper.MapState(1, 2299)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accident_2299.csv.bz2")
	})
}
