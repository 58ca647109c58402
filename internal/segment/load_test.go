package segment

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoad_XLSXWorkbooks(t *testing.T) {
	dir := t.TempDir()
	files := Files{
		Product:       filepath.Join(dir, "products.xlsx"),
		OrgCostCenter: filepath.Join(dir, "org_cost_center.xlsx"),
		Channel:       filepath.Join(dir, "channels.xlsx"),
		Vehicle:       filepath.Join(dir, "vehicles.xlsx"),
	}

	writeWorkbook(t, files.Product, [][]interface{}{
		{"0301", "Motor Own Damage", "PS01"},
	})
	writeWorkbook(t, files.OrgCostCenter, [][]interface{}{
		{"1101", "Branch 1101", "x", "ORG01", "CC01"},
	})
	writeWorkbook(t, files.Channel, [][]interface{}{
		{"03", "Agency", "CH03"},
	})
	writeWorkbook(t, files.Vehicle, [][]interface{}{
		{"8A", "Private", "A0", "Sedan", "VU01"},
	})

	m, err := Load(files)
	require.NoError(t, err)

	seg, ok := m.ProductSegment("0301")
	require.True(t, ok)
	assert.Equal(t, "PS01", seg)

	seg, ok = m.OrgSegment("1101")
	require.True(t, ok)
	assert.Equal(t, "ORG01", seg)

	seg, ok = m.CostCenterSegment("1101")
	require.True(t, ok)
	assert.Equal(t, "CC01", seg)

	seg, ok = m.ChannelSegment("03")
	require.True(t, ok)
	assert.Equal(t, "CH03", seg)

	seg, ok = m.VehicleSegment("8A", "A0")
	require.True(t, ok)
	assert.Equal(t, "VU01", seg)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(Files{
		Product:       filepath.Join(dir, "missing.xlsx"),
		OrgCostCenter: filepath.Join(dir, "missing.xlsx"),
		Channel:       filepath.Join(dir, "missing.xlsx"),
		Vehicle:       filepath.Join(dir, "missing.xlsx"),
	})
	assert.Error(t, err)
}
