// Package vm interprets a cross-referenced program directly against a
// value stack and a fixed byte-addressable memory region.
package vm

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jhallock/stackc/errs"
	"github.com/jhallock/stackc/ops"
)

// MemCapacity is the fixed size, in bytes, of the simulated memory
// region. mem pushes address 0, the base of this region.
const MemCapacity = 640_000

// Options tune the simulator's ambient behavior. Both are off by
// default and change no stack/memory semantics.
type Options struct {
	// Debug, when set, prints a 20-byte memory dump after normal
	// termination.
	Debug bool

	// Trace, when set, logs one Debug-level line per executed op
	// before dispatch. Purely additive instrumentation.
	Trace bool
}

// Machine holds simulator state across a single run. It is not
// reused between programs: NewMachine always starts from a
// zero-initialized stack and memory region.
type Machine struct {
	stack []int64
	mem   [MemCapacity]byte
	log   *logrus.Logger
}

// NewMachine builds a fresh Machine with an empty stack and
// zero-initialized memory.
func NewMachine(log *logrus.Logger) *Machine {
	if log == nil {
		log = logrus.New()
	}
	return &Machine{log: log}
}

// Run interprets program to completion, writing Print/syscall3 output
// to stdout/stderr. It returns an *errs.SimulationError on any runtime
// failure (bounds violation, unimplemented/unknown syscall).
func (m *Machine) Run(program ops.Program, opt Options) error {
	ip := 0
	for ip < len(program) {
		op := program[ip]

		if opt.Trace {
			m.log.WithFields(logrus.Fields{
				"ip":    ip,
				"kind":  op.Kind.String(),
				"depth": len(m.stack),
			}).Debug("exec")
		}

		next, err := m.step(op, ip)
		if err != nil {
			return err
		}
		ip = next
	}

	if opt.Debug {
		m.dumpMemory()
	}

	return nil
}

// step executes one op and returns the next instruction pointer.
func (m *Machine) step(op ops.Op, ip int) (int, error) {
	switch op.Kind {

	case ops.Push:
		m.push(op.Operand)

	case ops.Plus:
		b, a := m.pop(), m.pop()
		m.push(a + b)
	case ops.Minus:
		b, a := m.pop(), m.pop()
		m.push(a - b)
	case ops.Mod:
		b, a := m.pop(), m.pop()
		m.push(a % b)
	case ops.Eq:
		b, a := m.pop(), m.pop()
		m.push(boolInt(a == b))
	case ops.Ne:
		b, a := m.pop(), m.pop()
		m.push(boolInt(a != b))
	case ops.Gt:
		b, a := m.pop(), m.pop()
		m.push(boolInt(a > b))
	case ops.Lt:
		b, a := m.pop(), m.pop()
		m.push(boolInt(a < b))
	case ops.Ge:
		b, a := m.pop(), m.pop()
		m.push(boolInt(a >= b))
	case ops.Le:
		b, a := m.pop(), m.pop()
		m.push(boolInt(a <= b))
	case ops.Shr:
		b, a := m.pop(), m.pop()
		m.push(a >> uint64(b))
	case ops.Shl:
		b, a := m.pop(), m.pop()
		m.push(a << uint64(b))
	case ops.Bor:
		b, a := m.pop(), m.pop()
		m.push(a | b)
	case ops.Band:
		b, a := m.pop(), m.pop()
		m.push(a & b)

	case ops.Dup:
		a := m.top()
		m.push(a)
	case ops.Dup2:
		b, a := m.pop(), m.pop()
		m.push(a)
		m.push(b)
		m.push(a)
		m.push(b)
	case ops.Swap:
		b, a := m.pop(), m.pop()
		m.push(b)
		m.push(a)
	case ops.Drop:
		m.pop()
	case ops.Over:
		b, a := m.pop(), m.pop()
		m.push(a)
		m.push(b)
		m.push(a)

	case ops.If:
		if m.pop() == 0 {
			return int(op.Operand), nil
		}
		return ip + 1, nil
	case ops.Else:
		return int(op.Operand), nil
	case ops.End:
		return int(op.Operand), nil
	case ops.While:
		// label only; nothing to do.
	case ops.Do:
		if m.pop() == 0 {
			return int(op.Operand), nil
		}
		return ip + 1, nil

	case ops.Mem:
		m.push(0)
	case ops.Load:
		addr := m.pop()
		b, err := m.readByte(addr)
		if err != nil {
			return 0, err
		}
		m.push(int64(b))
	case ops.Store:
		value := m.pop()
		addr := m.pop()
		if err := m.writeByte(addr, byte(value)); err != nil {
			return 0, err
		}

	case ops.Print:
		// Does NOT pop, unlike every other consumer.
		fmt.Fprintf(os.Stdout, "%d\n", m.top())

	case ops.Syscall1, ops.Syscall2, ops.Syscall4, ops.Syscall5, ops.Syscall6:
		return 0, errs.NewSimulationError("%s: unimplemented", op.Kind)

	case ops.Syscall3:
		if err := m.syscall3(); err != nil {
			return 0, err
		}

	default:
		return 0, errs.NewSimulationError("unhandled op kind %s", op.Kind)
	}

	return ip + 1, nil
}

// syscall3 implements the only supported syscall ABI: write(fd, buf,
// count). Arguments are popped syscall_number, arg1, arg2, arg3 — the
// syscall number comes off the stack first, meaning the caller must
// push it last, after the three arguments.
func (m *Machine) syscall3() error {
	syscallNumber := m.pop()
	arg1 := m.pop()
	arg2 := m.pop()
	arg3 := m.pop()

	if syscallNumber != 1 {
		return errs.NewSimulationError("syscall3: unknown syscall %d", syscallNumber)
	}

	fd, buf, count := arg1, arg2, arg3
	data, err := m.readSlice(buf, count)
	if err != nil {
		return err
	}

	switch fd {
	case 1:
		os.Stdout.Write(data)
	case 2:
		os.Stderr.Write(data)
	default:
		return errs.NewSimulationError("syscall3: unknown file descriptor %d", fd)
	}
	return nil
}

func (m *Machine) dumpMemory() {
	m.log.Info("[INFO] Memory dump")
	fmt.Fprintf(os.Stdout, "%s\n", m.mem[:20])
}

func (m *Machine) push(v int64) { m.stack = append(m.stack, v) }

func (m *Machine) pop() int64 {
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v
}

func (m *Machine) top() int64 {
	return m.stack[len(m.stack)-1]
}

func (m *Machine) readByte(addr int64) (byte, error) {
	if addr < 0 || addr >= MemCapacity {
		return 0, errs.NewSimulationError("load: invalid memory address %d", addr)
	}
	return m.mem[addr], nil
}

func (m *Machine) writeByte(addr int64, v byte) error {
	if addr < 0 || addr >= MemCapacity {
		return errs.NewSimulationError("store: invalid memory address %d", addr)
	}
	m.mem[addr] = v
	return nil
}

func (m *Machine) readSlice(addr, count int64) ([]byte, error) {
	if addr < 0 || count < 0 || addr+count > MemCapacity {
		return nil, errs.NewSimulationError("syscall3: invalid memory range [%d, %d)", addr, addr+count)
	}
	return m.mem[addr : addr+count], nil
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
