package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glbridge-dev/glbridge/internal/model"
)

func validEntry() model.FinalEntry {
	return model.FinalEntry{
		SJID:               "SJ0000000000000001",
		AccountPeriod:      "202412",
		DCCode:             "C",
		AccountCode:        "2606010801",
		LocalCurrencyAmt:   dec("100"),
		DCLocalCurrencyAmt: dec("-100"),
	}
}

func TestValidate_CleanEntry(t *testing.T) {
	assert.Empty(t, Validate([]model.FinalEntry{validEntry()}))
}

func TestValidate_SignConventionViolation(t *testing.T) {
	e := validEntry()
	e.DCLocalCurrencyAmt = dec("100") // credit must be negated

	errs := Validate([]model.FinalEntry{e})
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
	assert.Contains(t, errs[0].Error(), e.SJID)
}

func TestValidate_MissingAccountCode(t *testing.T) {
	e := validEntry()
	e.AccountCode = ""

	errs := Validate([]model.FinalEntry{e})
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Invariant)
}

func TestValidate_AccumulatesAcrossEntries(t *testing.T) {
	bad := validEntry()
	bad.AccountCode = ""
	worse := validEntry()
	worse.DCCode = "X"
	worse.DCLocalCurrencyAmt = dec("100") // "X" is treated as debit side

	errs := Validate([]model.FinalEntry{validEntry(), bad, worse})
	assert.Len(t, errs, 2)
}
