package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSJID_Format(t *testing.T) {
	sjid := NewSJID()

	assert.Len(t, sjid, 2+sjidLen)
	assert.Equal(t, "SJ", sjid[:2])
	for _, c := range sjid[2:] {
		assert.Contains(t, "0123456789ABCDEF", string(c))
	}
}

func TestNewSJID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		sjid := NewSJID()
		assert.False(t, seen[sjid], "duplicate id %s", sjid)
		seen[sjid] = true
	}
}
