package lexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "program.porth")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLexSimpleProgram(t *testing.T) {
	path := writeTemp(t, "34 35 + print")

	tokens, err := Lex(path)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, "34", tokens[0].Text)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)

	assert.Equal(t, "35", tokens[1].Text)
	assert.Equal(t, 4, tokens[1].Column)

	assert.Equal(t, "+", tokens[2].Text)
	assert.Equal(t, "print", tokens[3].Text)
}

func TestLexStripsLineComments(t *testing.T) {
	path := writeTemp(t, "1 2 + // this is a comment\nprint")

	tokens, err := Lex(path)
	require.NoError(t, err)

	var words []string
	for _, tok := range tokens {
		words = append(words, tok.Text)
	}
	assert.Equal(t, []string{"1", "2", "+", "print"}, words)
}

func TestLexBlankLinesProduceNoTokens(t *testing.T) {
	path := writeTemp(t, "1\n\n\n2\n")

	tokens, err := Lex(path)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 4, tokens[1].Line)
}

func TestLexMultiLineTracksLineNumbers(t *testing.T) {
	path := writeTemp(t, "0\nwhile dup 3 <\ndo\n  dup print\n  1 +\nend\ndrop")

	tokens, err := Lex(path)
	require.NoError(t, err)

	last := tokens[len(tokens)-1]
	assert.Equal(t, "drop", last.Text)
	assert.Equal(t, 7, last.Line)
}

func TestLexMissingFile(t *testing.T) {
	_, err := Lex(filepath.Join(t.TempDir(), "does-not-exist.porth"))
	assert.Error(t, err)
}
