package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for archive loading
// and report generation.
type Metrics struct {
	ArchivesRead     prometheus.Counter
	ArchiveRows      prometheus.Counter
	YearLoadFailures prometheus.Counter
	SummariesBuilt   prometheus.Counter
	MapsRendered     prometheus.Counter

	ArchiveReadDuration prometheus.Histogram
	MapRenderDuration   prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ArchivesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_report",
			Name:      "archives_read_total",
			Help:      "Total accident archives read successfully.",
		}),
		ArchiveRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_report",
			Name:      "archive_rows_total",
			Help:      "Total accident records parsed from archives.",
		}),
		YearLoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_report",
			Name:      "year_load_failures_total",
			Help:      "Requested years skipped because their archive was missing or unreadable.",
		}),
		SummariesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_report",
			Name:      "summaries_built_total",
			Help:      "Monthly summary tables built.",
		}),
		MapsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars_report",
			Name:      "maps_rendered_total",
			Help:      "State accident maps rendered.",
		}),
		ArchiveReadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars_report",
			Name:      "archive_read_duration_seconds",
			Help:      "Duration of reading and parsing one annual archive.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		MapRenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars_report",
			Name:      "map_render_duration_seconds",
			Help:      "Duration of rendering one state map image.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}

	prometheus.MustRegister(
		m.ArchivesRead,
		m.ArchiveRows,
		m.YearLoadFailures,
		m.SummariesBuilt,
		m.MapsRendered,
		m.ArchiveReadDuration,
		m.MapRenderDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with no registration to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ArchivesRead:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_report", Name: "archives_read_total"}),
		ArchiveRows:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_report", Name: "archive_rows_total"}),
		YearLoadFailures:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_report", Name: "year_load_failures_total"}),
		SummariesBuilt:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_report", Name: "summaries_built_total"}),
		MapsRendered:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fars_report", Name: "maps_rendered_total"}),
		ArchiveReadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fars_report", Name: "archive_read_duration_seconds"}),
		MapRenderDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fars_report", Name: "map_render_duration_seconds"}),
	}
}
