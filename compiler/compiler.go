// Package compiler sequences the phases of the pipeline — lex, parse,
// cross-reference, then either simulate or generate C++ — stopping at
// the first error.
//
// Compiler is a small object holding state across sequential phase
// methods, built by New and configured by setters before the phases
// run. Phases are split into named methods rather than one Compile()
// entry point because sim and com need to share lexing/parsing/
// cross-referencing but diverge afterwards.
package compiler

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jhallock/stackc/codegen"
	"github.com/jhallock/stackc/crossref"
	"github.com/jhallock/stackc/lexer"
	"github.com/jhallock/stackc/ops"
	"github.com/jhallock/stackc/parser"
	"github.com/jhallock/stackc/vm"
)

// Compiler holds the path to a source file plus ambient flags, and
// carries the program through the pipeline one phase at a time.
type Compiler struct {
	path string

	debug   bool
	verbose bool
	log     *logrus.Logger

	program ops.Program
}

// New creates a Compiler for the source file at path.
func New(path string) *Compiler {
	return &Compiler{path: path, log: logrus.StandardLogger()}
}

// SetDebug enables the simulator's post-run memory dump.
func (c *Compiler) SetDebug(v bool) { c.debug = v }

// SetVerbose enables per-op trace logging during simulation and
// Debug-level phase-boundary logging throughout.
func (c *Compiler) SetVerbose(v bool) {
	c.verbose = v
	if v {
		c.log.SetLevel(logrus.DebugLevel)
	}
}

// SetLogger overrides the logger used for phase-boundary diagnostics.
func (c *Compiler) SetLogger(log *logrus.Logger) {
	if log != nil {
		c.log = log
	}
}

// Load runs the lexer, parser, and cross-referencer over the source
// file, leaving a resolved program ready for Simulate or GenerateCXX.
// It returns the first error encountered at any of the three phases.
func (c *Compiler) Load() error {
	c.log.WithField("path", c.path).Debug("lexing")
	tokens, err := lexer.Lex(c.path)
	if err != nil {
		return err
	}

	c.log.WithField("tokens", len(tokens)).Debug("parsing")
	program, err := parser.Parse(tokens)
	if err != nil {
		return err
	}

	c.log.Debug("cross-referencing")
	program, err = crossref.Resolve(program)
	if err != nil {
		return err
	}

	c.program = program
	return nil
}

// Simulate interprets the loaded program. Load must have succeeded
// first.
func (c *Compiler) Simulate() error {
	if c.program == nil {
		return errors.New("compiler: Simulate called before Load")
	}
	m := vm.NewMachine(c.log)
	return m.Run(c.program, vm.Options{Debug: c.debug, Trace: c.verbose})
}

// GenerateCXX renders the loaded program as a C++ translation unit.
// Load must have succeeded first.
func (c *Compiler) GenerateCXX() (string, error) {
	if c.program == nil {
		return "", errors.New("compiler: GenerateCXX called before Load")
	}
	return codegen.Generate(c.program), nil
}

// Program exposes the resolved program, mainly for tests.
func (c *Compiler) Program() ops.Program { return c.program }
