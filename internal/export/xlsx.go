// Package export writes an offline .xlsx snapshot of the same row table the
// remote store receives.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"orderpad/internal/sheetsync"
)

// WriteWorkbook writes the envelope to path as a single-sheet workbook:
// the header row first, then one row per item.
func WriteWorkbook(path string, env sheetsync.Envelope) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("workbook path is empty")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)

	for col, label := range env.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
	}

	for row, r := range env.Rows {
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, r.Item); err != nil {
			return err
		}
		for col, v := range r.Values {
			cell, err := excelize.CoordinatesToCellName(col+2, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
