package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDirection_Code(t *testing.T) {
	assert.Equal(t, "D", Debit.Code())
	assert.Equal(t, "C", Credit.Code())
}

func TestDimensions_IsContract(t *testing.T) {
	assert.True(t, Dimensions{ContractFlag: "2"}.IsContract())
	assert.False(t, Dimensions{ContractFlag: "1"}.IsContract())
	assert.False(t, Dimensions{}.IsContract())
}

func TestFactTable_HasMeasures(t *testing.T) {
	table := &FactTable{MeasureColumns: []string{"premium", "commission"}}

	assert.True(t, table.HasMeasures("premium"))
	assert.True(t, table.HasMeasures("premium", "commission"))
	assert.False(t, table.HasMeasures("premium", "brokerage"))
	assert.True(t, table.HasMeasures(), "empty requirement always holds")
}

func TestMeasure_AbsentIsZero(t *testing.T) {
	fact := MeasurementFact{Measures: map[string]decimal.Decimal{}}
	assert.True(t, fact.Measure("premium").IsZero())
}

func TestFinalEntry_RowMatchesColumnOrder(t *testing.T) {
	row := FinalEntry{}.Row()
	assert.Len(t, row, len(FinalColumns))
}
