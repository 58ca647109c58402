package engine

import (
	"fmt"
	"strings"

	"github.com/glbridge-dev/glbridge/internal/model"
)

// SkippedRule records a rule that could not run because its source measure
// columns were absent from the period's fact table.
type SkippedRule struct {
	Label   string
	Sources []string
}

func (s SkippedRule) String() string {
	return fmt.Sprintf("%s (sources: %s)", s.Label, strings.Join(s.Sources, ", "))
}

// Report accumulates the data-quality outcome of assembling one business
// line. Per-row anomalies are counted here instead of aborting the batch.
type Report struct {
	Line            model.BusinessLine
	Skipped         []SkippedRule
	UnresolvedCodes int
	Entries         int
}

// Clean reports whether the line assembled without warnings.
func (r *Report) Clean() bool {
	return len(r.Skipped) == 0 && r.UnresolvedCodes == 0
}
