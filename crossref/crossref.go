// Package crossref implements the second compiler pass: resolving the
// operand field of every control-flow op (if/else/end, while/do/end)
// to an absolute instruction index, using a local stack of indices.
//
// This is the single most intricate pass in the compiler, and both
// back ends (vm and codegen) depend on its target contract being
// exactly right.
package crossref

import (
	"github.com/jhallock/stackc/errs"
	"github.com/jhallock/stackc/ops"
)

// Resolve mutates program in place, setting the Operand of every
// If/Else/Do/End to its resolved jump target, and returns it for
// convenience. A While is only a label: its Operand is left as parsed. It returns a *errs.SemanticError on any mismatched or
// unclosed block.
func Resolve(program ops.Program) (ops.Program, error) {
	var stack []int

	pop := func() (int, bool) {
		if len(stack) == 0 {
			return 0, false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, true
	}

	for ip := range program {
		switch program[ip].Kind {

		case ops.If:
			stack = append(stack, ip)

		case ops.While:
			stack = append(stack, ip)

		case ops.Else:
			ifIP, ok := pop()
			if !ok || program[ifIP].Kind != ops.If {
				return nil, errs.NewSemanticError(program[ip].Origin, "`else` can only close an `if` block")
			}
			program[ifIP].Operand = int64(ip) + 1
			stack = append(stack, ip)

		case ops.Do:
			whileIP, ok := pop()
			if !ok || program[whileIP].Kind != ops.While {
				return nil, errs.NewSemanticError(program[ip].Origin, "`do` must follow a `while`")
			}
			program[ip].Operand = int64(whileIP)
			stack = append(stack, ip)

		case ops.End:
			blockIP, ok := pop()
			if !ok {
				return nil, errs.NewSemanticError(program[ip].Origin, "`end` with no open block")
			}
			switch program[blockIP].Kind {
			case ops.If, ops.Else:
				program[blockIP].Operand = int64(ip)
				program[ip].Operand = int64(ip) + 1
			case ops.Do:
				program[ip].Operand = program[blockIP].Operand
				program[blockIP].Operand = int64(ip) + 1
			default:
				return nil, errs.NewSemanticError(program[ip].Origin, "`end` can only close if and while blocks")
			}
		}
	}

	if len(stack) != 0 {
		unclosed := program[stack[len(stack)-1]]
		return nil, errs.NewSemanticError(unclosed.Origin, "unclosed block")
	}

	return program, nil
}
