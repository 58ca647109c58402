package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/glbridge-dev/glbridge/internal/config"
	"github.com/glbridge-dev/glbridge/internal/extract"
	"github.com/glbridge-dev/glbridge/internal/model"
	"github.com/glbridge-dev/glbridge/internal/rules"
	"github.com/glbridge-dev/glbridge/internal/runlog"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func writeMapping(t *testing.T, path string, rows [][]interface{}) {
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

func snapshotFacts(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))

	dims := model.Dimensions{
		OrgCode: "1101", ChannelCode: "03", VehicleClassCode: "A0",
		UsageTypeCode: "8A", PortfolioID: "P001", GroupID: "G001",
		ValMethod: "8", RiskCode: "0301", ClassCode: "03",
	}
	require.NoError(t, extract.SaveFactTable(dir, &model.FactTable{
		Line: model.LineDirect,
		Rows: []model.MeasurementFact{{
			Dimensions: dims,
			Measures: map[string]decimal.Decimal{
				rules.SrcTotalPremium: dec("1000"),
				rules.SrcTotalIACF:    dec("100"),
			},
		}},
	}))

	reinDims := dims
	reinDims.ChannelCode = ""
	reinDims.ContractFlag = "2"
	reinDims.CessionType = "1"
	reinDims.ValMethod = "11"
	require.NoError(t, extract.SaveFactTable(dir, &model.FactTable{
		Line: model.LineAssumed,
		Rows: []model.MeasurementFact{{
			Dimensions: reinDims,
			Measures:   map[string]decimal.Decimal{rules.SrcPremium: dec("500")},
		}},
	}))

	cededDims := reinDims
	cededDims.ValMethod = "10"
	require.NoError(t, extract.SaveFactTable(dir, &model.FactTable{
		Line: model.LineCeded,
		Rows: []model.MeasurementFact{{
			Dimensions: cededDims,
			Measures: map[string]decimal.Decimal{
				rules.SrcPremium:             dec("200"),
				rules.SrcInvestmentComponent: dec("40"),
			},
		}},
	}))
}

func TestRunGenerate_FromFactSnapshots(t *testing.T) {
	dir := t.TempDir()
	factsDir := filepath.Join(dir, "facts")
	snapshotFacts(t, factsDir)

	cfg := &config.Config{
		Period:            "202412",
		Currency:          "CNY",
		EligibilityCutoff: "20241231",
		Mappings: config.MappingsConfig{
			Product:       filepath.Join(dir, "products.xlsx"),
			OrgCostCenter: filepath.Join(dir, "org_cost_center.xlsx"),
			Channel:       filepath.Join(dir, "channels.xlsx"),
			Vehicle:       filepath.Join(dir, "vehicles.xlsx"),
		},
		Output: config.OutputConfig{
			Workbook: filepath.Join(dir, "entries.xlsx"),
			RunLog:   filepath.Join(dir, "run-log.csv"),
		},
	}
	writeMapping(t, cfg.Mappings.Product, [][]interface{}{{"0301", "x", "PS01"}})
	writeMapping(t, cfg.Mappings.OrgCostCenter, [][]interface{}{{"1101", "x", "y", "ORG01", "CC01"}})
	writeMapping(t, cfg.Mappings.Channel, [][]interface{}{{"03", "x", "CH03"}}) // channel "0" left unmapped
	writeMapping(t, cfg.Mappings.Vehicle, [][]interface{}{{"8A", "x", "A0", "y", "VU01"}})

	require.NoError(t, runGenerate(context.Background(), cfg, factsDir))

	f, err := excelize.OpenFile(cfg.Output.Workbook)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"direct", "assumed", "ceded"}, f.GetSheetList())

	// Snapshots carry every measure column, so all rules apply: six direct
	// entries, seven assumed, five ceded plus two investment-component legs.
	rows, err := f.GetRows("direct")
	require.NoError(t, err)
	assert.Len(t, rows, 7)

	rows, err = f.GetRows("assumed")
	require.NoError(t, err)
	assert.Len(t, rows, 8)

	rows, err = f.GetRows("ceded")
	require.NoError(t, err)
	assert.Len(t, rows, 8)

	// The reinsurance lines map channel "0", which is missing from the
	// channel table, so the run log records unresolved segments.
	events, err := runlog.Read(cfg.Output.RunLog)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	categories := make(map[string]bool)
	for _, e := range events {
		categories[e.Category] = true
	}
	assert.True(t, categories[runlog.CategoryUnresolvedSegment])
}

func TestRunGenerate_MissingSnapshotsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Period:            "202412",
		EligibilityCutoff: "20241231",
		Mappings: config.MappingsConfig{
			Product:       filepath.Join(dir, "products.xlsx"),
			OrgCostCenter: filepath.Join(dir, "org_cost_center.xlsx"),
			Channel:       filepath.Join(dir, "channels.xlsx"),
			Vehicle:       filepath.Join(dir, "vehicles.xlsx"),
		},
		Output: config.OutputConfig{Workbook: filepath.Join(dir, "entries.xlsx")},
	}
	writeMapping(t, cfg.Mappings.Product, [][]interface{}{{"0301", "x", "PS01"}})
	writeMapping(t, cfg.Mappings.OrgCostCenter, [][]interface{}{{"1101", "x", "y", "ORG01", "CC01"}})
	writeMapping(t, cfg.Mappings.Channel, [][]interface{}{{"03", "x", "CH03"}})
	writeMapping(t, cfg.Mappings.Vehicle, [][]interface{}{{"8A", "x", "A0", "y", "VU01"}})

	err := runGenerate(context.Background(), cfg, filepath.Join(dir, "no-such-facts"))
	assert.Error(t, err, "a run never proceeds on partial input")
}
