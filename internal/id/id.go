// Package id generates ledger row identifiers.
package id

import (
	"strings"

	"github.com/google/uuid"
)

// sjidLen is the number of hex characters kept after the prefix.
const sjidLen = 16

// NewSJID returns a unique ledger row id like "SJ9F86D081884C7D65".
func NewSJID() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "SJ" + hex[:sjidLen]
}
