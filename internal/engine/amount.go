package engine

import (
	"github.com/shopspring/decimal"

	"github.com/glbridge-dev/glbridge/internal/model"
)

// Amount computes the signed entry amount for one fact row: the sum of the
// named source measures multiplied by sign. No rounding is applied; the
// ledger carries amounts at extraction precision.
func Amount(fact model.MeasurementFact, sources []string, sign int) decimal.Decimal {
	sum := decimal.Zero
	for _, src := range sources {
		sum = sum.Add(fact.Measure(src))
	}
	if sign < 0 {
		return sum.Neg()
	}
	return sum
}
