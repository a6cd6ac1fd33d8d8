// Command validate performs integrity checks across the accident archives in
// a data directory: filename conventions, record field ranges, state codes,
// coordinate sentinels, and case-number uniqueness.
//
// Usage:
//
//	go run ./cmd/validate -dir data
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/couchcryptid/fars-report/internal/adapter/archive"
	"github.com/couchcryptid/fars-report/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dir := flag.String("dir", ".", "directory containing accident_<year>.csv.bz2 archives")
	flag.Parse()

	if code := run(*dir); code != 0 {
		os.Exit(code)
	}
}

func run(dir string) int {
	fmt.Println("=== FARS Archive Integrity Validation ===")
	fmt.Println()

	years, err := scanArchives(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: scan %s: %v\n", dir, err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	reader := archive.New(dir, logger)

	inventory := &phase{name: "Phase 1: Archive Inventory"}
	data := make(map[int][]domain.Accident)
	for _, year := range years {
		accidents, err := reader.ReadYear(year)
		if err != nil {
			inventory.errorf("year %d: %v", year, err)
			continue
		}
		if len(accidents) == 0 {
			inventory.errorf("year %d: archive holds no rows", year)
			continue
		}
		data[year] = accidents
	}

	phases := []*phase{
		inventory,
		validateRecords(data),
		validateStateCodes(data),
		validateCoordinates(data),
		validateCaseNumbers(data),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-38s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Archives: %d, rows: %d\n", len(data), countRows(data))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// scanArchives lists the distinct years whose archives are present in dir.
func scanArchives(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		year, ok := archive.YearFromFilename(e.Name())
		if !ok {
			continue
		}
		seen[year] = true
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("no accident archives found")
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	fmt.Printf("Found archives for %d year(s): %v\n", len(years), years)
	return years, nil
}

func countRows(data map[int][]domain.Accident) int {
	n := 0
	for _, accidents := range data {
		n += len(accidents)
	}
	return n
}

// sortedYears iterates deterministically over the loaded archives.
func sortedYears(data map[int][]domain.Accident) []int {
	years := make([]int, 0, len(data))
	for y := range data {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ── Phase 2: Record Fields ──
// Validates month/day ranges and that YEAR matches the archive's year.

func validateRecords(data map[int][]domain.Accident) *phase {
	p := &phase{name: "Phase 2: Record Fields"}

	for _, year := range sortedYears(data) {
		for i, a := range data[year] {
			if a.Month < 1 || a.Month > 12 {
				p.errorf("year %d record %d: MONTH %d out of range", year, i, a.Month)
			}
			if a.Day < 0 || a.Day > 31 {
				p.errorf("year %d record %d: DAY %d out of range", year, i, a.Day)
			}
			if a.Year != 0 && a.Year != year {
				p.errorf("year %d record %d: YEAR column says %d", year, i, a.Year)
			}
			if a.Fatals < 0 {
				p.errorf("year %d record %d: FATALS %d is negative", year, i, a.Fatals)
			}
		}
	}
	return p
}

// ── Phase 3: State Codes ──
// Every STATE value must be a known GSA code.

func validateStateCodes(data map[int][]domain.Accident) *phase {
	p := &phase{name: "Phase 3: State Codes"}

	for _, year := range sortedYears(data) {
		for i, a := range data[year] {
			if !domain.KnownState(a.State) {
				p.errorf("year %d record %d: unknown STATE %d", year, i, a.State)
			}
		}
	}
	return p
}

// ── Phase 4: Coordinate Sentinels ──
// A row is either fully located or fully unknown. One sentinel coordinate
// paired with one real coordinate means the row was mangled upstream.

func validateCoordinates(data map[int][]domain.Accident) *phase {
	p := &phase{name: "Phase 4: Coordinate Sentinels"}

	var unknown, total int
	for _, year := range sortedYears(data) {
		for i, a := range data[year] {
			total++
			latUnknown := a.Latitude > domain.MaxLatitude
			lonUnknown := a.Longitud > domain.MaxLongitude
			if latUnknown != lonUnknown {
				p.errorf("year %d record %d: partial coordinates (lat=%g, lon=%g)", year, i, a.Latitude, a.Longitud)
			}
			if latUnknown && lonUnknown {
				unknown++
			}
		}
	}
	if unknown > 0 {
		fmt.Printf("  Note: %d of %d rows carry unknown-position sentinels\n", unknown, total)
	}
	return p
}

// ── Phase 5: Case Numbers ──
// ST_CASE is unique within a year.

func validateCaseNumbers(data map[int][]domain.Accident) *phase {
	p := &phase{name: "Phase 5: Case Numbers"}

	for _, year := range sortedYears(data) {
		counts := make(map[int]int)
		for i, a := range data[year] {
			if a.StCase == 0 {
				p.errorf("year %d record %d: missing ST_CASE", year, i)
				continue
			}
			counts[a.StCase]++
		}
		cases := make([]int, 0, len(counts))
		for c, n := range counts {
			if n > 1 {
				cases = append(cases, c)
			}
		}
		sort.Ints(cases)
		for _, c := range cases {
			p.errorf("year %d: ST_CASE %d appears %d times", year, c, counts[c])
		}
	}
	return p
}
