// Package errs defines the three error kinds the compiler can raise —
// ParseError, SemanticError, and SimulationError — matching the
// taxonomy in the original Porth implementation's parse_error.hpp,
// semantic_error.hpp, and simulation_error.hpp. A fourth, distinct
// class of failure (I/O: cannot open/write a file, toolchain not
// found) is reported directly by the caller and is not one of these
// three.
package errs

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/jhallock/stackc/token"
)

// ParseError reports one non-reserved, non-integer token. Parsing
// halts at the first one encountered.
type ParseError struct {
	Location token.Location
	Text     string
	cause    error
}

// NewParseError builds a ParseError carrying the offending token's
// location and text, matching the message the original implementation
// emits verbatim: "attempt to convert non-integer value".
func NewParseError(loc token.Location, text string) *ParseError {
	return &ParseError{
		Location: loc,
		Text:     text,
		cause:    errors.New("attempt to convert non-integer value"),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Location, e.cause, e.Text)
}

func (e *ParseError) Unwrap() error { return e.cause }

// SemanticError reports unmatched or misnested control flow, detected
// during cross-referencing.
type SemanticError struct {
	Location token.Location
	Message  string
}

func NewSemanticError(loc token.Location, message string) *SemanticError {
	return &SemanticError{Location: loc, Message: message}
}

func (e *SemanticError) Error() string {
	if e.Location == (token.Location{}) {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// SimulationError reports a runtime failure inside the simulator:
// out-of-bounds load/store, an unimplemented syscall, an unknown file
// descriptor, or an unknown syscall number.
type SimulationError struct {
	Message string
}

func NewSimulationError(format string, args ...interface{}) *SimulationError {
	return &SimulationError{Message: fmt.Sprintf(format, args...)}
}

func (e *SimulationError) Error() string {
	return e.Message
}
