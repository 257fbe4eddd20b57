// Package codegen emits a self-contained C++20 translation unit that
// is semantically equivalent to running vm.Machine.Run over the same
// program: same stack machine, same memory region, same stdout.
package codegen

import (
	"fmt"
	"strings"

	"github.com/jhallock/stackc/ops"
	"github.com/jhallock/stackc/vm"
)

// Generate renders program as a C++ translation unit. It never
// fails: by the time a program reaches codegen it has already passed
// parsing and cross-referencing, so there is nothing left to reject.
func Generate(program ops.Program) string {
	var b strings.Builder

	b.WriteString("#include <array>\n")
	b.WriteString("#include <cstdint>\n")
	b.WriteString("#include <iostream>\n")
	b.WriteString("#include <stack>\n")
	b.WriteString("#include <stdexcept>\n")
	b.WriteString("#include <string_view>\n\n")
	b.WriteString("int main() {\n")
	fmt.Fprintf(&b, "    std::array<std::uint8_t, %d> mem{};\n", vm.MemCapacity)
	b.WriteString("    std::stack<std::int64_t> s;\n\n")

	for ip, op := range program {
		fmt.Fprintf(&b, "    // -- %s --\n", op.Kind)
		b.WriteString(label(ip) + ":\n")
		emitOp(&b, op, ip)
	}

	b.WriteString(label(len(program)) + ":\n")
	b.WriteString("    return 0;\n")
	b.WriteString("}\n")

	return b.String()
}

func label(ip int) string {
	return fmt.Sprintf("_porth_addr_%d", ip)
}

func binOp(b *strings.Builder, expr string) {
	b.WriteString("    {\n")
	b.WriteString("        auto bb = s.top(); s.pop();\n")
	b.WriteString("        auto aa = s.top(); s.pop();\n")
	fmt.Fprintf(b, "        s.push(%s);\n", expr)
	b.WriteString("    }\n")
}

func emitOp(b *strings.Builder, op ops.Op, ip int) {
	switch op.Kind {

	case ops.Push:
		fmt.Fprintf(b, "    s.push(%d);\n", op.Operand)

	case ops.Plus:
		binOp(b, "aa + bb")
	case ops.Minus:
		binOp(b, "aa - bb")
	case ops.Mod:
		binOp(b, "aa % bb")
	case ops.Eq:
		binOp(b, "aa == bb ? 1 : 0")
	case ops.Ne:
		binOp(b, "aa != bb ? 1 : 0")
	case ops.Gt:
		binOp(b, "aa > bb ? 1 : 0")
	case ops.Lt:
		binOp(b, "aa < bb ? 1 : 0")
	case ops.Ge:
		binOp(b, "aa >= bb ? 1 : 0")
	case ops.Le:
		binOp(b, "aa <= bb ? 1 : 0")
	case ops.Shr:
		binOp(b, "aa >> bb")
	case ops.Shl:
		binOp(b, "aa << bb")
	case ops.Bor:
		binOp(b, "aa | bb")
	case ops.Band:
		binOp(b, "aa & bb")

	case ops.Dup:
		b.WriteString("    s.push(s.top());\n")
	case ops.Dup2:
		b.WriteString("    {\n")
		b.WriteString("        auto bb = s.top(); s.pop();\n")
		b.WriteString("        auto aa = s.top(); s.pop();\n")
		b.WriteString("        s.push(aa); s.push(bb); s.push(aa); s.push(bb);\n")
		b.WriteString("    }\n")
	case ops.Swap:
		b.WriteString("    {\n")
		b.WriteString("        auto bb = s.top(); s.pop();\n")
		b.WriteString("        auto aa = s.top(); s.pop();\n")
		b.WriteString("        s.push(bb); s.push(aa);\n")
		b.WriteString("    }\n")
	case ops.Drop:
		b.WriteString("    s.pop();\n")
	case ops.Over:
		b.WriteString("    {\n")
		b.WriteString("        auto bb = s.top(); s.pop();\n")
		b.WriteString("        auto aa = s.top(); s.pop();\n")
		b.WriteString("        s.push(aa); s.push(bb); s.push(aa);\n")
		b.WriteString("    }\n")

	case ops.If:
		b.WriteString("    {\n")
		b.WriteString("        auto aa = s.top(); s.pop();\n")
		fmt.Fprintf(b, "        if (aa == 0) { goto %s; }\n", label(int(op.Operand)))
		b.WriteString("    }\n")
	case ops.Else:
		fmt.Fprintf(b, "    goto %s;\n", label(int(op.Operand)))
	case ops.End:
		// An End whose operand is ip+1 falls straight through; no
		// goto is emitted, matching the original compiler's minor
		// optimization.
		if int(op.Operand) != ip+1 {
			fmt.Fprintf(b, "    goto %s;\n", label(int(op.Operand)))
		}
	case ops.While:
		// label only; no statement needed.
	case ops.Do:
		b.WriteString("    {\n")
		b.WriteString("        auto aa = s.top(); s.pop();\n")
		fmt.Fprintf(b, "        if (aa == 0) { goto %s; }\n", label(int(op.Operand)))
		b.WriteString("    }\n")

	case ops.Mem:
		b.WriteString("    s.push(0);\n")
	case ops.Load:
		b.WriteString("    {\n")
		b.WriteString("        auto addr = static_cast<std::size_t>(s.top()); s.pop();\n")
		b.WriteString("        s.push(static_cast<std::int64_t>(mem[addr]));\n")
		b.WriteString("    }\n")
	case ops.Store:
		b.WriteString("    {\n")
		b.WriteString("        auto bb = s.top(); s.pop();\n")
		b.WriteString("        auto addr = static_cast<std::size_t>(s.top()); s.pop();\n")
		b.WriteString("        mem[addr] = static_cast<std::uint8_t>(bb);\n")
		b.WriteString("    }\n")

	case ops.Print:
		// Does not pop: prints the top of stack, leaving it in place.
		b.WriteString("    std::cout << s.top() << \"\\n\";\n")

	case ops.Syscall1, ops.Syscall2, ops.Syscall4, ops.Syscall5, ops.Syscall6:
		fmt.Fprintf(b, "    throw std::runtime_error(\"%s: unimplemented\");\n", op.Kind)

	case ops.Syscall3:
		// syscall_number comes off the stack first, so program order
		// pushes arg3, arg2, arg1, then the number last.
		b.WriteString("    {\n")
		b.WriteString("        auto num = s.top(); s.pop();\n")
		b.WriteString("        auto arg1 = s.top(); s.pop();\n")
		b.WriteString("        auto arg2 = s.top(); s.pop();\n")
		b.WriteString("        auto arg3 = s.top(); s.pop();\n")
		b.WriteString("        if (num == 1) {\n")
		b.WriteString("            auto *p = reinterpret_cast<const char*>(&mem[static_cast<std::size_t>(arg2)]);\n")
		b.WriteString("            std::string_view sv(p, static_cast<std::size_t>(arg3));\n")
		b.WriteString("            if (arg1 == 1) { std::cout << sv; }\n")
		b.WriteString("            else if (arg1 == 2) { std::cerr << sv; }\n")
		b.WriteString("            else { throw std::runtime_error(\"syscall3: unknown file descriptor\"); }\n")
		b.WriteString("        } else {\n")
		b.WriteString("            throw std::runtime_error(\"syscall3: unknown syscall\");\n")
		b.WriteString("        }\n")
		b.WriteString("    }\n")

	default:
		panic(fmt.Sprintf("codegen: no case for op kind %s", op.Kind))
	}
}
