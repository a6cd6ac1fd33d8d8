// Package export writes month-by-year accident summaries as aligned text,
// CSV, or XLSX workbooks. A month with no data for a year is rendered as an
// absent cell, never as zero.
package export

import (
	"strconv"

	"github.com/couchcryptid/fars-report/internal/domain"
)

// header returns the column headings, MONTH followed by one column per year.
func header(s domain.Summary) []string {
	cols := make([]string, 0, len(s.Years)+1)
	cols = append(cols, "MONTH")
	for _, year := range s.Years {
		cols = append(cols, strconv.Itoa(year))
	}
	return cols
}
