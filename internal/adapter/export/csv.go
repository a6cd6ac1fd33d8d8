package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/couchcryptid/fars-report/internal/domain"
)

// WriteCSV writes the summary with one row per month. Absent cells stay empty.
func WriteCSV(w io.Writer, s domain.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(s)); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, month := range s.Months {
		row := make([]string, 0, len(s.Years)+1)
		row = append(row, strconv.Itoa(month))
		for _, year := range s.Years {
			if n, ok := s.Count(month, year); ok {
				row = append(row, strconv.Itoa(n))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
