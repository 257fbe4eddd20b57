// Package ops defines the closed instruction set of the stack language:
// the 34-variant OpKind enumeration, the Op value that carries an
// operand and a source location, and the Program type that holds a
// sequence of them.
//
// Every later phase (crossref, vm, codegen) switches on OpKind. The
// count of 34 is load-bearing: ops_test.go pins it, and vm_test.go and
// codegen_test.go walk Kinds and fail if a variant has no simulator or
// no generator case.
package ops

import "github.com/jhallock/stackc/token"

// Kind identifies one instruction in the stack language.
type Kind int

const (
	// Data
	Push Kind = iota

	// Arithmetic / logical / comparison
	Plus
	Minus
	Mod
	Eq
	Ne
	Gt
	Lt
	Ge
	Le
	Shr
	Shl
	Bor
	Band

	// Stack
	Dup
	Dup2
	Swap
	Drop
	Over

	// Control flow
	If
	Else
	End
	While
	Do

	// Memory & I/O
	Mem
	Load
	Store
	Print
	Syscall1
	Syscall2
	Syscall3
	Syscall4
	Syscall5
	Syscall6

	// kindCount must always equal the number of variants above it.
	kindCount
)

// Count is the number of distinct OpKind variants, pinned at exactly
// 34; ops_test.go asserts it.
const Count = int(kindCount)

var names = [kindCount]string{
	Push:     "push",
	Plus:     "+",
	Minus:    "-",
	Mod:      "mod",
	Eq:       "=",
	Ne:       "!=",
	Gt:       ">",
	Lt:       "<",
	Ge:       ">=",
	Le:       "<=",
	Shr:      "shr",
	Shl:      "shl",
	Bor:      "bor",
	Band:     "band",
	Dup:      "dup",
	Dup2:     "dup2",
	Swap:     "swap",
	Drop:     "drop",
	Over:     "over",
	If:       "if",
	Else:     "else",
	End:      "end",
	While:    "while",
	Do:       "do",
	Mem:      "mem",
	Load:     ",",
	Store:    ".",
	Print:    "print",
	Syscall1: "syscall1",
	Syscall2: "syscall2",
	Syscall3: "syscall3",
	Syscall4: "syscall4",
	Syscall5: "syscall5",
	Syscall6: "syscall6",
}

// String returns the source-level word for a Kind, used in error
// messages and the generator's comment lines.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= Count {
		return "unknown"
	}
	return names[k]
}

// Kinds returns every declared OpKind, in declaration order. Used by
// vm_test.go and codegen_test.go to verify dispatch exhaustiveness.
func Kinds() []Kind {
	out := make([]Kind, Count)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Op is one instruction: its kind, an operand (literal value for
// Push, jump target for control-flow kinds once cross-referenced, 0
// otherwise), and the token location it was parsed from.
type Op struct {
	Kind    Kind
	Operand int64
	Origin  token.Location
}

// Program is an ordered sequence of instructions, addressed by ip in
// [0, len(Program)].
type Program []Op
