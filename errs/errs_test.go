package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhallock/stackc/token"
)

func TestParseErrorMessage(t *testing.T) {
	err := NewParseError(token.Location{File: "p.porth", Line: 3, Column: 5}, "bogus")
	assert.Contains(t, err.Error(), "p.porth:3:5")
	assert.Contains(t, err.Error(), "attempt to convert non-integer value")
	assert.Contains(t, err.Error(), "bogus")
}

func TestSemanticErrorWithoutLocation(t *testing.T) {
	err := NewSemanticError(token.Location{}, "unclosed block")
	assert.Equal(t, "unclosed block", err.Error())
}

func TestSimulationErrorFormats(t *testing.T) {
	err := NewSimulationError("load: invalid memory address %d", 700000)
	assert.Equal(t, "load: invalid memory address 700000", err.Error())
}
