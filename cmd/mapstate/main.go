// Command mapstate renders a PNG map of one state's accident locations for a
// year. Rows carrying unknown-position sentinels are excluded from both the
// markers and the map extents.
//
// Usage:
//
//	go run ./cmd/mapstate -dir data -state 1 -year 2013 -out alabama.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/fars-report/internal/adapter/archive"
	"github.com/couchcryptid/fars-report/internal/adapter/chart"
	"github.com/couchcryptid/fars-report/internal/config"
	"github.com/couchcryptid/fars-report/internal/domain"
	"github.com/couchcryptid/fars-report/internal/observability"
	"github.com/couchcryptid/fars-report/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dir := flag.String("dir", cfg.DataDir, "directory containing accident archives")
	state := flag.String("state", "", "numeric GSA state code (e.g. 1 for Alabama)")
	year := flag.String("year", "", "year to map")
	out := flag.String("out", "", "output PNG path (defaults to state_<code>_<year>.png)")
	width := flag.Int("width", 800, "image width in pixels")
	height := flag.Int("height", 600, "image height in pixels")
	flag.Parse()

	if *state == "" || *year == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := observability.NewLogger(cfg)
	if err := run(logger, *dir, *state, *year, *out, *width, *height); err != nil {
		logger.Error("mapstate failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dir, state, year, out string, width, height int) error {
	stateCode, err := domain.ParseState(state)
	if err != nil {
		return err
	}
	yearNum, err := domain.ParseYear(year)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	reader := archive.New(dir, logger)
	renderer := chart.New(width, height)
	mapper := report.NewMapper(reader, renderer, logger, metrics)

	img, err := mapper.MapState(stateCode, yearNum)
	if errors.Is(err, domain.ErrNoAccidents) {
		logger.Info("no accidents to plot", "state", stateCode, "year", yearNum)
		return nil
	}
	if err != nil {
		return err
	}

	if out == "" {
		out = fmt.Sprintf("state_%d_%d.png", stateCode, yearNum)
	}
	if err := os.WriteFile(out, img, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	logger.Info("map written", "path", out, "bytes", len(img))
	return nil
}
