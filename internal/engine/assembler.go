// Package engine expands measurement fact tables into intermediate ledger
// entries by applying a business line's declarative rule table.
package engine

import (
	"log"

	"github.com/glbridge-dev/glbridge/internal/model"
	"github.com/glbridge-dev/glbridge/internal/rules"
)

// Assemble applies ruleSet to a fact table in declaration order and returns
// the stacked intermediate entries. Each applicable rule contributes one
// entry block with exactly one row per fact row; blocks are concatenated,
// never merged. For the ceded line the investment-component structural
// expansion runs after the generic rules.
//
// Rules whose source columns are missing are skipped and recorded on the
// report. Entries whose code selector has no match for a row's dimensions
// are still produced, with an empty account code, and counted.
func Assemble(table *model.FactTable, ruleSet []rules.Rule) ([]model.Entry, *Report) {
	report := &Report{Line: table.Line}
	var entries []model.Entry

	for _, rule := range ruleSet {
		if !table.HasMeasures(rule.Sources...) {
			log.Printf("%s: skipping rule %q: source column(s) %v not in fact table", table.Line, rule.Label, rule.Sources)
			report.Skipped = append(report.Skipped, SkippedRule{Label: rule.Label, Sources: rule.Sources})
			continue
		}
		for _, fact := range table.Rows {
			entries = append(entries, makeEntry(fact, rule.Label, rule.Direction, rule.Code,
				rule.Sources, rule.Sign, rule.Convention, report))
		}
	}

	if table.Line == model.LineCeded {
		entries = append(entries, assembleStructural(table, rules.CededInvestmentComponent, report)...)
	}

	report.Entries = len(entries)
	return entries, report
}

// assembleStructural emits the fixed two-leg expansion, one block per leg,
// mirroring the generic loop's block ordering.
func assembleStructural(table *model.FactTable, sr rules.StructuralRule, report *Report) []model.Entry {
	if !table.HasMeasures(sr.Source) {
		return nil
	}
	var entries []model.Entry
	for _, leg := range sr.Legs {
		for _, fact := range table.Rows {
			entries = append(entries, makeEntry(fact, sr.Label, sr.Direction, leg.Code,
				[]string{sr.Source}, leg.Sign, leg.Convention, report))
		}
	}
	return entries
}

func makeEntry(fact model.MeasurementFact, label string, direction model.Direction,
	code rules.CodeSpec, sources []string, sign int, convention string, report *Report) model.Entry {
	resolved, ok := code.Resolve(fact.Dimensions)
	if !ok {
		report.UnresolvedCodes++
		resolved = ""
	}
	return model.Entry{
		Dimensions:  fact.Dimensions,
		Label:       label,
		Direction:   direction,
		AccountCode: resolved,
		AccountName: rules.AccountName(resolved),
		Convention:  convention,
		Amount:      Amount(fact, sources, sign),
	}
}
