package domain

import (
	"sort"
	"time"
)

// Summary is the month-by-year accident count pivot: one row per observed
// month, one column per year with data. Combinations that never occurred are
// absent rather than zero, and stay distinguishable from zero through the ok
// result of Count.
type Summary struct {
	Years       []int // ascending; only years that contributed rows
	Months      []int // ascending; union of months observed across all years
	GeneratedAt time.Time

	counts map[cellKey]int
}

type cellKey struct {
	year  int
	month int
}

// Summarize stacks the per-year record sets, counts accidents per
// (year, month) pair, and pivots the counts to one column per year. Grouping
// uses the requested year from each YearAccidents, not the YEAR column of the
// individual records.
func Summarize(groups []YearAccidents) Summary {
	counts := make(map[cellKey]int)
	for _, g := range groups {
		for i := range g.Accidents {
			counts[cellKey{year: g.Year, month: g.Accidents[i].Month}]++
		}
	}

	yearSet := make(map[int]bool)
	monthSet := make(map[int]bool)
	for k := range counts {
		yearSet[k.year] = true
		monthSet[k.month] = true
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	months := make([]int, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Ints(months)

	return Summary{
		Years:       years,
		Months:      months,
		GeneratedAt: clock.Now().UTC(),
		counts:      counts,
	}
}

// Count returns the accident count for one (month, year) cell. ok is false
// when that combination has no data.
func (s Summary) Count(month, year int) (int, bool) {
	n, ok := s.counts[cellKey{year: year, month: month}]
	return n, ok
}

// Total returns the sum over all cells, which equals the number of records
// that went into the pivot.
func (s Summary) Total() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Empty reports whether the summary holds no data at all.
func (s Summary) Empty() bool {
	return len(s.counts) == 0
}
