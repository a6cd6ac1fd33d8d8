package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/fars-report/internal/domain"
)

const sheetName = "Summary"

// WriteXLSX writes the summary as a single-sheet workbook. Absent cells are
// left unset so spreadsheet formulas see blanks, not zeros.
func WriteXLSX(w io.Writer, s domain.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "FARS accident summary",
		Created: s.GeneratedAt.Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("set doc props: %w", err)
	}

	for col, h := range header(s) {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, month := range s.Months {
		rowNum := i + 2
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, month); err != nil {
			return fmt.Errorf("write month %d: %w", month, err)
		}
		for j, year := range s.Years {
			n, ok := s.Count(month, year)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+2, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, n); err != nil {
				return fmt.Errorf("write cell %d/%d: %w", month, year, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
