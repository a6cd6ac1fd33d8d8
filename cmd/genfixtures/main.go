// Command genfixtures generates synthetic accident archives for development
// and testing. Output is deterministic for a given seed so test assertions
// stay stable across runs.
//
// Archives are written uncompressed; the reader accepts both forms.
//
// Usage:
//
//	go run ./cmd/genfixtures -dir data -years 2013,2014,2015 -rows 200
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/fars-report/internal/adapter/archive"
	"github.com/couchcryptid/fars-report/internal/domain"
)

// fixtureStates weights a handful of populous states so per-state filtering
// in tests has meaningful clusters.
var fixtureStates = []int{1, 6, 6, 6, 12, 12, 13, 17, 26, 36, 37, 39, 42, 47, 48, 48, 51, 53, 55}

var header = []string{"STATE", "ST_CASE", "COUNTY", "MONTH", "DAY", "YEAR", "LATITUDE", "LONGITUD", "FATALS", "PERSONS"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dir := flag.String("dir", "data", "output directory for generated archives")
	years := flag.String("years", "2013,2014,2015", "comma-separated years to generate")
	rows := flag.Int("rows", 200, "rows per archive")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	yearList, err := domain.ParseYearList(*years)
	if err != nil {
		return err
	}
	// ST_CASE is state*10000 + row index, so the index must stay below 10000
	// to keep case numbers unique.
	if *rows < 1 || *rows > 9999 {
		return fmt.Errorf("rows must be between 1 and 9999, got %d", *rows)
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	for _, year := range yearList {
		path, n, unknown, err := writeArchive(*dir, year, *rows, rng)
		if err != nil {
			return fmt.Errorf("year %d: %w", year, err)
		}
		log.Printf("%s: %d rows (%d with unknown position)", path, n, unknown)
	}

	return nil
}

// writeArchive generates one year's rows and reports how many carry
// unknown-position sentinels.
func writeArchive(dir string, year, rows int, rng *rand.Rand) (string, int, int, error) {
	name := strings.TrimSuffix(archive.Filename(year), ".bz2")
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", 0, 0, err
	}

	unknown := 0
	for i := 0; i < rows; i++ {
		row, sentinel := fixtureRow(year, i, rng)
		if sentinel {
			unknown++
		}
		if err := w.Write(row); err != nil {
			return "", 0, 0, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", 0, 0, err
	}
	return path, rows, unknown, nil
}

func fixtureRow(year, i int, rng *rand.Rand) ([]string, bool) {
	state := fixtureStates[rng.Intn(len(fixtureStates))]
	stCase := state*10000 + i + 1
	county := 1 + 2*rng.Intn(100)
	month := 1 + rng.Intn(12)
	day := 1 + rng.Intn(28)
	fatals := 1 + rng.Intn(3)
	persons := fatals + rng.Intn(4)

	// Roughly one row in twenty has no usable position, as in the real data.
	lat := fmt.Sprintf("%.6f", 25+rng.Float64()*24)
	lon := fmt.Sprintf("%.6f", -124+rng.Float64()*57)
	sentinel := rng.Intn(20) == 0
	if sentinel {
		lat = fmt.Sprintf("%.4f", domain.UnknownLatitude)
		lon = fmt.Sprintf("%.4f", domain.UnknownLongitude)
	}

	return []string{
		strconv.Itoa(state),
		strconv.Itoa(stCase),
		strconv.Itoa(county),
		strconv.Itoa(month),
		strconv.Itoa(day),
		strconv.Itoa(year),
		lat,
		lon,
		strconv.Itoa(fatals),
		strconv.Itoa(persons),
	}, sentinel
}
