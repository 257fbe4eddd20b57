package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCountIsThirtyFour pins the instruction set at exactly 34
// variants.
func TestCountIsThirtyFour(t *testing.T) {
	assert.Equal(t, 34, Count)
	assert.Len(t, Kinds(), 34)
}

// TestKindsHaveNames verifies every declared Kind renders a non-empty
// source-level word, so no real variant is missing from the names
// table.
func TestKindsHaveNames(t *testing.T) {
	for _, k := range Kinds() {
		assert.NotEmpty(t, k.String(), "kind %d should have a name", k)
	}
}

func TestUnknownKindString(t *testing.T) {
	assert.Equal(t, "unknown", Kind(-1).String())
	assert.Equal(t, "unknown", Kind(Count).String())
}
