// Command summarize loads one or more annual accident archives and prints a
// month-by-year summary table. Years that fail to load are skipped with a
// warning; the command fails only when no data loads at all.
//
// Usage:
//
//	go run ./cmd/summarize -dir data -years 2013,2014,2015
//	go run ./cmd/summarize -years 2013 -csv summary.csv -xlsx summary.xlsx
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/fars-report/internal/adapter/archive"
	"github.com/couchcryptid/fars-report/internal/adapter/export"
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
	years := flag.String("years", "", "comma-separated years to summarize (e.g. 2013,2014)")
	csvOut := flag.String("csv", "", "also write the summary as CSV to this path")
	xlsxOut := flag.String("xlsx", "", "also write the summary as an XLSX workbook to this path")
	flag.Parse()

	if *years == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := observability.NewLogger(cfg)
	if err := run(logger, *dir, *years, *csvOut, *xlsxOut); err != nil {
		logger.Error("summarize failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dir, years, csvOut, xlsxOut string) error {
	yearList, err := domain.ParseYearList(years)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	reader := archive.New(dir, logger)
	loader := report.New(reader, logger, metrics)

	summary, err := loader.SummarizeYears(yearList)
	if err != nil {
		return err
	}

	if err := export.WriteText(os.Stdout, summary); err != nil {
		return err
	}

	if csvOut != "" {
		if err := writeFile(csvOut, func(w io.Writer) error { return export.WriteCSV(w, summary) }); err != nil {
			return err
		}
		logger.Info("wrote csv summary", "path", csvOut)
	}
	if xlsxOut != "" {
		if err := writeFile(xlsxOut, func(w io.Writer) error { return export.WriteXLSX(w, summary) }); err != nil {
			return err
		}
		logger.Info("wrote xlsx summary", "path", xlsxOut)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
