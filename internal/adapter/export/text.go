package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/couchcryptid/fars-report/internal/domain"
)

// absentCell marks a month/year with no loaded data in the text table.
const absentCell = "-"

// WriteText prints the summary as an aligned table, months down, years across.
func WriteText(w io.Writer, s domain.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header(s), "\t"))
	for _, month := range s.Months {
		row := make([]string, 0, len(s.Years)+1)
		row = append(row, strconv.Itoa(month))
		for _, year := range s.Years {
			if n, ok := s.Count(month, year); ok {
				row = append(row, strconv.Itoa(n))
			} else {
				row = append(row, absentCell)
			}
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
