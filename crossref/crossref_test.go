package crossref

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhallock/stackc/lexer"
	"github.com/jhallock/stackc/ops"
	"github.com/jhallock/stackc/parser"
)

func build(t *testing.T, source string) ops.Program {
	t.Helper()
	tmp := t.TempDir() + "/p.porth"
	require.NoError(t, os.WriteFile(tmp, []byte(source), 0o644))

	tokens, err := lexer.Lex(tmp)
	require.NoError(t, err)

	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	return program
}

func TestResolveIfWithoutElse(t *testing.T) {
	program := build(t, "1 if 2 print end")
	resolved, err := Resolve(program)
	require.NoError(t, err)

	ifOp := resolved[1]
	require.Equal(t, ops.If, ifOp.Kind)
	endOp := resolved[len(resolved)-1]
	require.Equal(t, ops.End, endOp.Kind)

	assert.EqualValues(t, len(resolved)-1, ifOp.Operand, "if should target the end")
	assert.EqualValues(t, len(resolved), endOp.Operand, "end should fall through to len")
}

func TestResolveIfElse(t *testing.T) {
	program := build(t, "1 if 2 print else 3 print end")
	resolved, err := Resolve(program)
	require.NoError(t, err)

	var ifIP, elseIP, endIP int
	for i, op := range resolved {
		switch op.Kind {
		case ops.If:
			ifIP = i
		case ops.Else:
			elseIP = i
		case ops.End:
			endIP = i
		}
	}

	assert.EqualValues(t, elseIP+1, resolved[ifIP].Operand)
	// Else jumps to the End op itself, which then falls through to
	// endIP+1 on its own turn — not directly to endIP+1.
	assert.EqualValues(t, endIP, resolved[elseIP].Operand)
	assert.EqualValues(t, endIP+1, resolved[endIP].Operand)
}

func TestResolveWhileDo(t *testing.T) {
	program := build(t, "0 while dup 3 < do dup print 1 + end drop")
	resolved, err := Resolve(program)
	require.NoError(t, err)

	var whileIP, doIP, endIP int
	for i, op := range resolved {
		switch op.Kind {
		case ops.While:
			whileIP = i
		case ops.Do:
			doIP = i
		case ops.End:
			endIP = i
		}
	}

	assert.EqualValues(t, endIP+1, resolved[doIP].Operand, "do should jump past the loop on false")
	assert.EqualValues(t, whileIP, resolved[endIP].Operand, "end should jump back to while")
}

func TestResolveUnclosedBlockIsSemanticError(t *testing.T) {
	program := build(t, "1 if 2 print")
	_, err := Resolve(program)
	assert.Error(t, err)
}

func TestResolveBareEndIsSemanticError(t *testing.T) {
	program := build(t, "end")
	_, err := Resolve(program)
	assert.Error(t, err)
}

func TestResolveTargetsAreWithinBounds(t *testing.T) {
	program := build(t, "0 while dup 3 < do dup print 1 + end drop")
	resolved, err := Resolve(program)
	require.NoError(t, err)

	for _, op := range resolved {
		switch op.Kind {
		case ops.If, ops.Else, ops.End, ops.Do:
			assert.GreaterOrEqual(t, op.Operand, int64(0))
			assert.LessOrEqual(t, op.Operand, int64(len(resolved)))
		}
	}
}
