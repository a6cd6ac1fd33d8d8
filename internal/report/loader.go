// Package report orchestrates archive reads into the user-facing products:
// multi-year monthly summaries and single-state accident maps.
package report

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/fars-report/internal/domain"
	"github.com/couchcryptid/fars-report/internal/observability"
)

// YearReader reads all records from one year's archive.
type YearReader interface {
	ReadYear(year int) ([]domain.Accident, error)
}

// ErrNoData reports that no requested year produced any rows.
var ErrNoData = errors.New("no data loaded for the requested years")

// YearResult is one cell of the load fold: the records for a year, or the
// error that kept them from loading.
type YearResult struct {
	Year      int
	Accidents []domain.Accident
	Err       error
}

// Loader reads several years with per-year failure isolation.
type Loader struct {
	reader  YearReader
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Loader around a YearReader.
func New(r YearReader, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{reader: r, logger: logger, metrics: metrics}
}

// LoadYears reads one archive per year, in input order. A year that fails to
// read or parse is downgraded to exactly one warning and an errored result;
// the remaining years still load. The returned slice always holds one entry
// per input year.
func (l *Loader) LoadYears(years []int) []YearResult {
	results := make([]YearResult, 0, len(years))
	for _, year := range years {
		start := time.Now()
		accidents, err := l.reader.ReadYear(year)
		if err != nil {
			l.logger.Warn(fmt.Sprintf("invalid year: %d", year), "error", err)
			l.metrics.YearLoadFailures.Inc()
			results = append(results, YearResult{Year: year, Err: err})
			continue
		}
		l.metrics.ArchivesRead.Inc()
		l.metrics.ArchiveRows.Add(float64(len(accidents)))
		l.metrics.ArchiveReadDuration.Observe(time.Since(start).Seconds())
		results = append(results, YearResult{Year: year, Accidents: accidents})
	}
	return results
}

// SummarizeYears loads the years and pivots the successful ones into the
// month-by-year count table. It fails with ErrNoData when nothing usable
// loaded.
func (l *Loader) SummarizeYears(years []int) (domain.Summary, error) {
	results := l.LoadYears(years)

	groups := make([]domain.YearAccidents, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		groups = append(groups, domain.YearAccidents{Year: res.Year, Accidents: res.Accidents})
	}

	s := domain.Summarize(groups)
	if s.Empty() {
		return domain.Summary{}, ErrNoData
	}

	l.metrics.SummariesBuilt.Inc()
	l.logger.Info("summary built", "years", len(s.Years), "records", s.Total())
	return s, nil
}
