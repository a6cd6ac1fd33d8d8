package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FARS accident file column names.
const (
	ColState    = "STATE"
	ColStCase   = "ST_CASE"
	ColCounty   = "COUNTY"
	ColMonth    = "MONTH"
	ColDay      = "DAY"
	ColYear     = "YEAR"
	ColLatitude = "LATITUDE"
	ColLongitud = "LONGITUD"
	ColFatals   = "FATALS"
)

// RequiredColumns are the headers an archive must carry to be usable.
var RequiredColumns = []string{ColState, ColMonth, ColLatitude, ColLongitud}

// ParseYear parses a year argument given as an integer or floating-point
// string. Fractional values truncate toward zero, so "2013.9" parses to 2013.
func ParseYear(s string) (int, error) {
	t := strings.TrimSpace(s)
	if v, err := strconv.Atoi(t); err == nil {
		return v, nil
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return int(f), nil
	}
	return 0, fmt.Errorf("invalid year %q", s)
}

// ParseYearList parses a comma-separated list of years. Duplicates are
// rejected because loading the same year twice would double its monthly
// counts.
func ParseYearList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	years := make([]int, 0, len(parts))
	seen := make(map[int]bool, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		y, err := ParseYear(p)
		if err != nil {
			return nil, err
		}
		if seen[y] {
			return nil, fmt.Errorf("duplicate year %d", y)
		}
		seen[y] = true
		years = append(years, y)
	}
	if len(years) == 0 {
		return nil, errors.New("no years given")
	}
	return years, nil
}

// ParseState parses a state argument with the same numeric coercion as
// ParseYear. Whether the code exists in the data is checked by
// [BuildStateMap], not here.
func ParseState(s string) (int, error) {
	t := strings.TrimSpace(s)
	if v, err := strconv.Atoi(t); err == nil {
		return v, nil
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return int(f), nil
	}
	return 0, fmt.Errorf("invalid state %q", s)
}

// HeaderIndex maps column names to their positions in a CSV header row.
// Names are uppercased so header casing differences across vintages do not
// matter.
func HeaderIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	return idx
}

// ParseAccident builds an Accident from one CSV row using a header index.
// STATE and MONTH must parse as integers since they drive grouping; zeroing
// them silently would corrupt counts. The remaining integer fields degrade
// to zero and coordinates degrade to the unknown-position sentinels.
func ParseAccident(idx map[string]int, row []string) (Accident, error) {
	state, err := intField(idx, row, ColState)
	if err != nil {
		return Accident{}, err
	}
	month, err := intField(idx, row, ColMonth)
	if err != nil {
		return Accident{}, err
	}

	return Accident{
		State:    state,
		StCase:   intFieldOrZero(idx, row, ColStCase),
		County:   intFieldOrZero(idx, row, ColCounty),
		Month:    month,
		Day:      intFieldOrZero(idx, row, ColDay),
		Year:     intFieldOrZero(idx, row, ColYear),
		Latitude: coordField(idx, row, ColLatitude, UnknownLatitude),
		Longitud: coordField(idx, row, ColLongitud, UnknownLongitude),
		Fatals:   intFieldOrZero(idx, row, ColFatals),
	}, nil
}

// field returns the trimmed cell for a column, or "" when the column is
// absent or the row is short.
func field(idx map[string]int, row []string, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func intField(idx map[string]int, row []string, col string) (int, error) {
	s := field(idx, row, col)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not an integer", col, s)
	}
	return v, nil
}

func intFieldOrZero(idx map[string]int, row []string, col string) int {
	v, err := strconv.Atoi(field(idx, row, col))
	if err != nil {
		return 0
	}
	return v
}

func coordField(idx map[string]int, row []string, col string, unknown float64) float64 {
	s := field(idx, row, col)
	if s == "" {
		return unknown
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return unknown
	}
	return v
}
