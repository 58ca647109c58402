// Package rules holds the declarative entry-generation rule tables for the
// three business lines, and the I17 account code set they post to.
package rules

import (
	"strconv"
	"strings"

	"github.com/glbridge-dev/glbridge/internal/model"
)

// SelectorKey names a dimension used to build a code-selector lookup key.
type SelectorKey string

const (
	KeyCessionType SelectorKey = "cession_type"
	KeyIsContract  SelectorKey = "is_contract"
)

// render returns the key part for a dimension tuple.
func (k SelectorKey) render(d model.Dimensions) string {
	switch k {
	case KeyCessionType:
		return strings.TrimSpace(d.CessionType)
	case KeyIsContract:
		return strconv.FormatBool(d.IsContract())
	}
	return ""
}

// CodeSpec determines the account code for a generated entry: either a
// fixed code, or a selection table keyed by one or more dimensions.
type CodeSpec struct {
	fixed string
	keys  []SelectorKey
	table map[string]string
}

// FixedCode returns a CodeSpec that always resolves to code.
func FixedCode(code string) CodeSpec {
	return CodeSpec{fixed: code}
}

// SelectorCode returns a CodeSpec that joins the rendered key dimensions
// with "_" and resolves the result against table.
func SelectorCode(table map[string]string, keys ...SelectorKey) CodeSpec {
	return CodeSpec{keys: keys, table: table}
}

// IsFixed reports whether the spec carries a fixed code.
func (c CodeSpec) IsFixed() bool { return c.fixed != "" }

// Resolve returns the account code for the dimension tuple. ok is false
// when a selector key has no entry in the selection table.
func (c CodeSpec) Resolve(d model.Dimensions) (code string, ok bool) {
	if c.IsFixed() {
		return c.fixed, true
	}
	parts := make([]string, len(c.keys))
	for i, k := range c.keys {
		parts[i] = k.render(d)
	}
	code, ok = c.table[strings.Join(parts, "_")]
	return code, ok
}

// Codes returns every account code the spec can resolve to.
func (c CodeSpec) Codes() []string {
	if c.IsFixed() {
		return []string{c.fixed}
	}
	codes := make([]string, 0, len(c.table))
	for _, code := range c.table {
		codes = append(codes, code)
	}
	return codes
}

// Rule describes one potential ledger line. Sources are summed; the result
// is multiplied by Sign. A rule whose sources are absent from a period's
// fact table is skipped for that run.
type Rule struct {
	Label      string
	Direction  model.Direction
	Code       CodeSpec
	Sources    []string
	Sign       int
	Convention string
}

// StructuralLeg is one of the two fixed legs of a structural expansion.
type StructuralLeg struct {
	Code       CodeSpec
	Sign       int
	Convention string
}

// StructuralRule is a fixed expansion that emits two related entries from a
// single measure column. It exists because the ceded investment component
// posts both an asset recognition and its claims-recoverable counterpart,
// which a single Rule cannot express.
type StructuralRule struct {
	Label     string
	Direction model.Direction
	Source    string
	Legs      [2]StructuralLeg
}
