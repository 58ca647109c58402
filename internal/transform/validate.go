package transform

import (
	"fmt"

	"github.com/glbridge-dev/glbridge/internal/model"
)

// ValidationError describes a single invariant violation on a final entry.
type ValidationError struct {
	Invariant   int
	SJID        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.SJID, e.Description)
}

// Validate enforces the posting invariants on a set of final entries.
// Violations accumulate; callers decide whether the batch is postable.
func Validate(entries []model.FinalEntry) []ValidationError {
	var errs []ValidationError
	for _, e := range entries {
		// Invariant 1: the signed local amount follows the D/C convention.
		want := e.LocalCurrencyAmt
		if e.DCCode == "C" {
			want = want.Neg()
		}
		if !e.DCLocalCurrencyAmt.Equal(want) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				SJID:        e.SJID,
				Description: fmt.Sprintf("dc local amount %s does not match %s side of %s", e.DCLocalCurrencyAmt, e.DCCode, e.LocalCurrencyAmt),
			})
		}

		// Invariant 2: entries without an account code cannot be posted.
		if e.AccountCode == "" {
			errs = append(errs, ValidationError{
				Invariant:   2,
				SJID:        e.SJID,
				Description: "missing account code",
			})
		}

		// Invariant 3: every row carries a unique id and period.
		if e.SJID == "" || e.AccountPeriod == "" {
			errs = append(errs, ValidationError{
				Invariant:   3,
				SJID:        e.SJID,
				Description: "missing row id or accounting period",
			})
		}

		// Invariant 4: the D/C code is two-valued.
		if e.DCCode != "D" && e.DCCode != "C" {
			errs = append(errs, ValidationError{
				Invariant:   4,
				SJID:        e.SJID,
				Description: fmt.Sprintf("invalid dc code %q", e.DCCode),
			})
		}
	}
	return errs
}
