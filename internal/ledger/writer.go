// Package ledger persists canonical ledger entries: one workbook with a
// sheet per business line, or a CSV export of a single line.
package ledger

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/glbridge-dev/glbridge/internal/model"
)

// Sheet is one business line's final entries under its output sheet name.
type Sheet struct {
	Name    string
	Entries []model.FinalEntry
}

// SheetName returns the workbook sheet name for a business line.
func SheetName(line model.BusinessLine) string {
	return string(line)
}

// WriteWorkbook writes all sheets into a single workbook at path. Sheet
// order follows the slice order.
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("naming sheet %s: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("creating sheet %s: %w", sheet.Name, err)
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	header := make([]interface{}, len(model.FinalColumns))
	for i, c := range model.FinalColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return fmt.Errorf("writing header on %s: %w", sheet.Name, err)
	}

	for i, e := range sheet.Entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d on %s: %w", i+2, sheet.Name, err)
		}
		row := e.Row()
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return fmt.Errorf("writing row %d on %s: %w", i+2, sheet.Name, err)
		}
	}
	return nil
}
