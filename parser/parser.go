// Package parser converts located tokens into typed ops. It owns the
// reserved-word table and the integer-literal grammar; everything
// else about an Op's meaning is decided later, by crossref and
// vm/codegen.
package parser

import (
	"strconv"

	"github.com/jhallock/stackc/errs"
	"github.com/jhallock/stackc/ops"
	"github.com/jhallock/stackc/token"
)

// reserved maps source text to the zero-operand op it produces.
// ";" is deliberately absent from this vocabulary even though the
// upstream generator this language is ported from still declares an
// unused Semicolon token kind.
var reserved = map[string]ops.Kind{
	"+":        ops.Plus,
	"-":        ops.Minus,
	"mod":      ops.Mod,
	"print":    ops.Print,
	"=":        ops.Eq,
	"!=":       ops.Ne,
	">":        ops.Gt,
	"<":        ops.Lt,
	">=":       ops.Ge,
	"<=":       ops.Le,
	"shr":      ops.Shr,
	"shl":      ops.Shl,
	"bor":      ops.Bor,
	"band":     ops.Band,
	"if":       ops.If,
	"end":      ops.End,
	"else":     ops.Else,
	"dup":      ops.Dup,
	"dup2":     ops.Dup2,
	"swap":     ops.Swap,
	"drop":     ops.Drop,
	"over":     ops.Over,
	"while":    ops.While,
	"do":       ops.Do,
	"mem":      ops.Mem,
	".":        ops.Store,
	",":        ops.Load,
	"syscall1": ops.Syscall1,
	"syscall2": ops.Syscall2,
	"syscall3": ops.Syscall3,
	"syscall4": ops.Syscall4,
	"syscall5": ops.Syscall5,
	"syscall6": ops.Syscall6,
}

// Parse converts each token into an Op, in order. It stops and returns
// a *errs.ParseError at the first token that is neither a reserved
// word nor a valid base-10 signed 64-bit integer literal.
func Parse(tokens []token.Token) (ops.Program, error) {
	program := make(ops.Program, 0, len(tokens))

	for _, tok := range tokens {
		if kind, ok := reserved[tok.Text]; ok {
			program = append(program, ops.Op{Kind: kind, Origin: tok.Location})
			continue
		}

		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, errs.NewParseError(tok.Location, tok.Text)
		}

		program = append(program, ops.Op{Kind: ops.Push, Operand: value, Origin: tok.Location})
	}

	return program, nil
}
