package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/fars-report/internal/domain"
	"github.com/couchcryptid/fars-report/internal/observability"
)

// Renderer turns a prepared state map into an image.
type Renderer interface {
	Render(m domain.StateMap) ([]byte, error)
}

// Mapper produces the accident map for one state and year.
type Mapper struct {
	reader   YearReader
	renderer Renderer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewMapper creates a Mapper.
func NewMapper(r YearReader, renderer Renderer, logger *slog.Logger, metrics *observability.Metrics) *Mapper {
	return &Mapper{reader: r, renderer: renderer, logger: logger, metrics: metrics}
}

// MapState reads one year's archive and renders the accidents of one state.
// Read failures propagate unchanged: a missing annual archive is a hard
// precondition here, unlike in LoadYears. domain.ErrNoAccidents passes
// through untouched so callers can treat it as informational.
func (m *Mapper) MapState(state, year int) ([]byte, error) {
	accidents, err := m.reader.ReadYear(year)
	if err != nil {
		return nil, err
	}

	sm, err := domain.BuildStateMap(accidents, state, year)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	png, err := m.renderer.Render(sm)
	if err != nil {
		return nil, fmt.Errorf("render state map: %w", err)
	}
	m.metrics.MapsRendered.Inc()
	m.metrics.MapRenderDuration.Observe(time.Since(start).Seconds())

	m.logger.Info("state map rendered",
		"state", sm.State,
		"year", year,
		"points", len(sm.Points),
		"dropped", sm.Dropped,
	)
	return png, nil
}
