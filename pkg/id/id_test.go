package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProducesOrderedUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 1000; i++ {
		cur := New()
		assert.Len(t, cur, 26)
		assert.False(t, seen[cur], "duplicate id %s", cur)
		seen[cur] = true
		if prev != "" {
			assert.Less(t, prev, cur, "ids must be lexicographically increasing")
		}
		prev = cur
	}
}
