package segment

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Files locates the four mapping workbooks. The org/cost-center export is a
// single file carrying both segments.
type Files struct {
	Product       string
	OrgCostCenter string
	Channel       string
	Vehicle       string
}

// Column layouts of the upstream exports. All files are headerless.
const (
	productColCode    = 0
	productColSegment = 2

	orgColCode       = 0
	orgColSegment    = 3
	orgColCostCenter = 4

	channelColCode    = 0
	channelColSegment = 2

	vehicleColUsage   = 0
	vehicleColClass   = 2
	vehicleColSegment = 4
)

// Load reads the mapping workbooks and builds a Mapper.
func Load(files Files) (*Mapper, error) {
	product, err := loadTwoColumn(files.Product, productColCode, productColSegment)
	if err != nil {
		return nil, fmt.Errorf("loading product mapping: %w", err)
	}

	orgRows, err := readWorkbook(files.OrgCostCenter)
	if err != nil {
		return nil, fmt.Errorf("loading org/cost-center mapping: %w", err)
	}
	org := pickColumns(orgRows, []int{orgColCode}, orgColSegment)
	costCenter := pickColumns(orgRows, []int{orgColCode}, orgColCostCenter)

	channel, err := loadTwoColumn(files.Channel, channelColCode, channelColSegment)
	if err != nil {
		return nil, fmt.Errorf("loading channel mapping: %w", err)
	}

	vehicleRows, err := readWorkbook(files.Vehicle)
	if err != nil {
		return nil, fmt.Errorf("loading vehicle mapping: %w", err)
	}
	vehicle := pickColumns(vehicleRows, []int{vehicleColUsage, vehicleColClass}, vehicleColSegment)

	return NewMapper(product, org, costCenter, channel, vehicle), nil
}

func loadTwoColumn(path string, keyCol, valCol int) (map[string]string, error) {
	rows, err := readWorkbook(path)
	if err != nil {
		return nil, err
	}
	return pickColumns(rows, []int{keyCol}, valCol), nil
}

// pickColumns builds a lookup table from raw rows. Composite keys join the
// trimmed key cells with "_". Rows with an empty key part or value are
// dropped; the first occurrence of a key wins.
func pickColumns(rows [][]string, keyCols []int, valCol int) map[string]string {
	table := make(map[string]string)
	for _, row := range rows {
		parts := make([]string, 0, len(keyCols))
		for _, c := range keyCols {
			parts = append(parts, strings.TrimSpace(cell(row, c)))
		}
		key := strings.Join(parts, "_")
		val := strings.TrimSpace(cell(row, valCol))
		if val == "" || hasEmptyPart(parts) {
			continue
		}
		if _, exists := table[key]; !exists {
			table[key] = val
		}
	}
	return table
}

func hasEmptyPart(parts []string) bool {
	for _, p := range parts {
		if p == "" {
			return true
		}
	}
	return false
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// readWorkbook reads the first sheet of a workbook as string rows. Legacy
// .xls exports go through extrame/xls, everything else through excelize.
func readWorkbook(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return readXLS(path)
	}
	return readXLSX(path)
}

func readXLS(path string) ([][]string, error) {
	book, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening xls %s: %w", path, err)
	}
	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("no sheets in %s", path)
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		xlsRow := sheet.Row(i)
		if xlsRow == nil {
			rows = append(rows, nil)
			continue
		}
		var row []string
		for col := 0; col <= xlsRow.LastCol(); col++ {
			row = append(row, xlsRow.Col(col))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading workbook %s: %w", path, err)
	}
	return rows, nil
}
