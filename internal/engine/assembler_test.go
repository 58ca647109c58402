package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glbridge-dev/glbridge/internal/model"
	"github.com/glbridge-dev/glbridge/internal/rules"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func directFact(premium, iacf string) model.MeasurementFact {
	return model.MeasurementFact{
		Dimensions: model.Dimensions{
			OrgCode: "1101", ChannelCode: "03", VehicleClassCode: "A0",
			UsageTypeCode: "8A", PortfolioID: "P001", GroupID: "G001",
			ValMethod: "8", RiskCode: "0301", ClassCode: "03",
		},
		Measures: map[string]decimal.Decimal{
			rules.SrcTotalPremium: dec(premium),
			rules.SrcTotalIACF:    dec(iacf),
		},
	}
}

func directTable(facts ...model.MeasurementFact) *model.FactTable {
	return &model.FactTable{
		Line:           model.LineDirect,
		MeasureColumns: []string{rules.SrcTotalPremium, rules.SrcTotalIACF},
		Rows:           facts,
	}
}

func cededFact(contractFlag, cessionType string, measures map[string]decimal.Decimal) model.MeasurementFact {
	return model.MeasurementFact{
		Dimensions: model.Dimensions{
			OrgCode: "1101", VehicleClassCode: "A0", UsageTypeCode: "8A",
			PortfolioID: "P001", GroupID: "G001", ValMethod: "10",
			RiskCode: "0301", ClassCode: "03",
			ContractFlag: contractFlag, CessionType: cessionType,
		},
		Measures: measures,
	}
}

func TestAssemble_OneBlockPerApplicableRule(t *testing.T) {
	table := directTable(directFact("1000", "100"), directFact("500", "50"), directFact("250", "25"))

	entries, report := Assemble(table, rules.ForLine(model.LineDirect))

	// Only two of the six direct rules have their source columns present,
	// so the expansion is 2 rules x 3 fact rows.
	require.Len(t, entries, 6)
	assert.Equal(t, 6, report.Entries)
	assert.Len(t, report.Skipped, 4)
	assert.Equal(t, 0, report.UnresolvedCodes)

	// Blocks stack rule by rule: first all premium rows, then all IACF rows.
	assert.Equal(t, "written premium", entries[0].Label)
	assert.Equal(t, "written premium", entries[2].Label)
	assert.Equal(t, "acquisition cash flow", entries[3].Label)
}

func TestAssemble_FixedCodeAndSign(t *testing.T) {
	entries, _ := Assemble(directTable(directFact("1000", "100")), rules.ForLine(model.LineDirect))
	require.Len(t, entries, 2)

	premium := entries[0]
	assert.Equal(t, "2606010801", premium.AccountCode)
	assert.Equal(t, model.Credit, premium.Direction)
	assert.True(t, premium.Amount.Equal(dec("1000")))
	assert.NotEmpty(t, premium.AccountName)

	iacf := entries[1]
	assert.Equal(t, "2606011002", iacf.AccountCode)
	assert.True(t, iacf.Amount.Equal(dec("-100")), "sign multiplier -1 must negate the measure")
}

func TestAssemble_MissingSourceSkipsWholeRule(t *testing.T) {
	// A rule with one of two sources missing must not be partially computed.
	table := &model.FactTable{
		Line:           model.LineAssumed,
		MeasureColumns: []string{rules.SrcNetPremiumAmort}, // cumulative amortization column absent
		Rows: []model.MeasurementFact{{
			Dimensions: model.Dimensions{ContractFlag: "2"},
			Measures:   map[string]decimal.Decimal{rules.SrcNetPremiumAmort: dec("10")},
		}},
	}

	entries, report := Assemble(table, rules.ForLine(model.LineAssumed))

	assert.Empty(t, entries)
	require.Len(t, report.Skipped, len(rules.ForLine(model.LineAssumed)))
	labels := make([]string, 0, len(report.Skipped))
	for _, s := range report.Skipped {
		labels = append(labels, s.Label)
	}
	assert.Contains(t, labels, "earned premium")
}

func TestAssemble_SelectorOnContractFlag(t *testing.T) {
	table := &model.FactTable{
		Line:           model.LineAssumed,
		MeasureColumns: []string{rules.SrcPremium},
		Rows: []model.MeasurementFact{
			{Dimensions: model.Dimensions{ContractFlag: "2"}, Measures: map[string]decimal.Decimal{rules.SrcPremium: dec("100")}},
			{Dimensions: model.Dimensions{ContractFlag: "1"}, Measures: map[string]decimal.Decimal{rules.SrcPremium: dec("100")}},
		},
	}

	entries, report := Assemble(table, rules.ForLine(model.LineAssumed))

	require.Len(t, entries, 2)
	assert.Equal(t, "2606010901", entries[0].AccountCode, "treaty contract premium account")
	assert.Equal(t, "2606010904", entries[1].AccountCode, "facultative premium account")
	assert.Equal(t, 0, report.UnresolvedCodes)
}

func TestAssemble_MultiSourceSum(t *testing.T) {
	table := &model.FactTable{
		Line:           model.LineAssumed,
		MeasureColumns: []string{rules.SrcNetPremiumAmort, rules.SrcCumIFIEAmort},
		Rows: []model.MeasurementFact{{
			Dimensions: model.Dimensions{ContractFlag: "2"},
			Measures: map[string]decimal.Decimal{
				rules.SrcNetPremiumAmort: dec("70"),
				rules.SrcCumIFIEAmort:    dec("30"),
			},
		}},
	}

	entries, _ := Assemble(table, rules.ForLine(model.LineAssumed))

	require.Len(t, entries, 1)
	assert.Equal(t, "earned premium", entries[0].Label)
	assert.True(t, entries[0].Amount.Equal(dec("-100")), "sum of sources times sign -1")
}

func TestAssemble_UnresolvedCodeRetained(t *testing.T) {
	table := &model.FactTable{
		Line:           model.LineCeded,
		MeasureColumns: []string{rules.SrcPremium},
		Rows: []model.MeasurementFact{
			cededFact("2", "9", map[string]decimal.Decimal{rules.SrcPremium: dec("100")}), // unknown cession type
		},
	}

	entries, report := Assemble(table, rules.ForLine(model.LineCeded))

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].AccountCode)
	assert.Empty(t, entries[0].AccountName)
	assert.Equal(t, 1, report.UnresolvedCodes)
	assert.False(t, report.Clean())
}

func TestAssemble_InvestmentComponentTwoLegs(t *testing.T) {
	measures := map[string]decimal.Decimal{
		rules.SrcPremium:             dec("100"),
		rules.SrcInvestmentComponent: dec("40"),
	}
	table := &model.FactTable{
		Line:           model.LineCeded,
		MeasureColumns: []string{rules.SrcPremium, rules.SrcInvestmentComponent},
		Rows: []model.MeasurementFact{
			cededFact("2", "1", measures),
			cededFact("1", "1", measures),
		},
	}

	entries, report := Assemble(table, rules.ForLine(model.LineCeded))

	// One generic rule block (ceded premium) plus two structural blocks.
	require.Len(t, entries, 6)
	assert.Equal(t, 6, report.Entries)

	legOne := entries[2:4]
	legTwo := entries[4:6]
	for i := range legOne {
		assert.Equal(t, "investment component", legOne[i].Label)
		assert.Equal(t, model.Debit, legOne[i].Direction)
		assert.True(t, legOne[i].Amount.Equal(dec("-40")))
		assert.True(t, legTwo[i].Amount.Equal(dec("40")), "counterpart leg carries the opposite sign")
	}

	// Leg codes select on the contract flag, independent of cession type.
	assert.Equal(t, "1252010201", legOne[0].AccountCode)
	assert.Equal(t, "1252010202", legOne[1].AccountCode)
	assert.Equal(t, "1253010501", legTwo[0].AccountCode)
	assert.Equal(t, "1253010502", legTwo[1].AccountCode)
}

func TestAssemble_InvestmentComponentAbsentColumn(t *testing.T) {
	table := &model.FactTable{
		Line:           model.LineCeded,
		MeasureColumns: []string{rules.SrcPremium},
		Rows: []model.MeasurementFact{
			cededFact("2", "1", map[string]decimal.Decimal{rules.SrcPremium: dec("100")}),
		},
	}

	entries, _ := Assemble(table, rules.ForLine(model.LineCeded))
	require.Len(t, entries, 1, "no structural legs without the investment component column")
}
