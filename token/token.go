// Package token defines the lexer's output: a located word of source
// text. The lexer does not classify tokens; classification (reserved
// word vs. integer literal vs. parse error) happens in the parser.
package token

import "fmt"

// Location pinpoints a token's origin for diagnostics: the file it
// came from and its 1-based line and column.
type Location struct {
	File   string
	Line   int
	Column int
}

// String renders a location the way compiler diagnostics traditionally
// do: "path:line:column".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Token is a single whitespace-delimited word of source text together
// with the location of its first character.
type Token struct {
	Location
	Text string
}
