package extract

import (
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/glbridge-dev/glbridge/internal/model"
)

// SnapshotName returns the fact-snapshot file name for a business line.
func SnapshotName(line model.BusinessLine) string {
	return fmt.Sprintf("measurement_results_%s.xlsx", line)
}

// SaveFactTable writes a fact table to dir as a snapshot workbook so the
// extraction can be inspected and the run replayed without the database.
func SaveFactTable(dir string, table *model.FactTable) error {
	spec, ok := lineSpecs[table.Line]
	if !ok {
		return fmt.Errorf("no extraction spec for line %q", table.Line)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, 0, len(spec.dims)+len(spec.measures))
	for _, d := range spec.dims {
		header = append(header, d.column)
	}
	for _, m := range spec.measures {
		header = append(header, m)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}

	for i, fact := range table.Rows {
		row := make([]interface{}, 0, len(header))
		dimVals := dimValues(fact.Dimensions, spec)
		for _, v := range dimVals {
			row = append(row, v)
		}
		for _, m := range spec.measures {
			row = append(row, fact.Measure(m).String())
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing snapshot row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing snapshot row %d: %w", i+2, err)
		}
	}

	path := filepath.Join(dir, SnapshotName(table.Line))
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", path, err)
	}
	return nil
}

// LoadFactTable reads a snapshot workbook back into a fact table.
func LoadFactTable(dir string, line model.BusinessLine) (*model.FactTable, error) {
	spec, ok := lineSpecs[line]
	if !ok {
		return nil, fmt.Errorf("no extraction spec for line %q", line)
	}

	path := filepath.Join(dir, SnapshotName(line))
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("snapshot %s is empty", path)
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIdx[name] = i
	}

	table := &model.FactTable{Line: line, MeasureColumns: spec.measures}
	for n, raw := range rows[1:] {
		var dims model.Dimensions
		for _, d := range spec.dims {
			idx, ok := colIdx[d.column]
			if !ok {
				return nil, fmt.Errorf("snapshot %s: missing column %q", path, d.column)
			}
			d.assign(&dims, rawCell(raw, idx))
		}

		measures := make(map[string]decimal.Decimal, len(spec.measures))
		for _, m := range spec.measures {
			idx, ok := colIdx[m]
			if !ok {
				return nil, fmt.Errorf("snapshot %s: missing column %q", path, m)
			}
			cell := rawCell(raw, idx)
			if cell == "" {
				measures[m] = decimal.Zero
				continue
			}
			v, err := decimal.NewFromString(cell)
			if err != nil {
				return nil, fmt.Errorf("snapshot %s row %d: parsing %s: %w", path, n+2, m, err)
			}
			measures[m] = v
		}
		table.Rows = append(table.Rows, model.MeasurementFact{Dimensions: dims, Measures: measures})
	}
	return table, nil
}

// dimValues renders the dimension fields in spec column order.
func dimValues(d model.Dimensions, spec lineSpec) []string {
	byCol := map[string]string{
		"com_code":        d.OrgCode,
		"business_nature": d.ChannelCode,
		"car_kind_code":   d.VehicleClassCode,
		"use_nature_code": d.UsageTypeCode,
		"portfolio_id":    d.PortfolioID,
		"group_id":        d.GroupID,
		"val_method":      d.ValMethod,
		"risk_code":       d.RiskCode,
		"class_code":      d.ClassCode,
		"contract_flag":   d.ContractFlag,
		"enquiry_type":    d.EnquiryType,
		"contract_type":   d.ContractType,
		"rein_type":       d.CessionType,
	}
	vals := make([]string, len(spec.dims))
	for i, c := range spec.dims {
		vals[i] = byCol[c.column]
	}
	return vals
}

func rawCell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
