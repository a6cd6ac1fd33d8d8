// Package archive locates and reads FARS annual accident archives from a
// directory. Archives are bzip2-compressed CSV files named by a fixed
// convention; an uncompressed file under the same stem is accepted when the
// compressed one is absent.
package archive

import (
	"fmt"
	"regexp"
	"strconv"
)

// Filename returns the archive name for a year.
func Filename(year int) string {
	return fmt.Sprintf("accident_%d.csv.bz2", year)
}

// filenameRe matches archive names, compressed or not.
var filenameRe = regexp.MustCompile(`^accident_(\d+)\.csv(\.bz2)?$`)

// YearFromFilename extracts the year from an archive basename. ok is false
// for names outside the convention.
func YearFromFilename(name string) (int, bool) {
	m := filenameRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}
