// Package lexer tokenizes a stack-language source file into located
// words, stripping `//` line comments. It is the only package in this
// module that touches the filesystem on the front end.
package lexer

import (
	"bufio"
	"os"

	"github.com/pkg/errors"

	"github.com/jhallock/stackc/token"
)

// Lex reads the file at path and returns every whitespace-delimited
// token in source order. A token whose text is exactly "//" ends the
// line; the rest of that line (including the "//") is discarded.
// Blank lines produce no tokens.
func Lex(path string) ([]token.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "lexer: opening %q", path)
	}
	defer f.Close()

	var tokens []token.Token

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		tokens = append(tokens, lexLine(path, line, scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "lexer: reading %q", path)
	}

	return tokens, nil
}

// lexLine splits a single line into located tokens, honoring the
// "//" line-comment convention.
func lexLine(path string, line int, text string) []token.Token {
	runes := []rune(text)
	var out []token.Token

	i := 0
	for i < len(runes) {
		for i < len(runes) && isSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}

		startCol := i + 1
		start := i
		for i < len(runes) && !isSpace(runes[i]) {
			i++
		}
		word := string(runes[start:i])

		if word == "//" {
			break
		}

		out = append(out, token.Token{
			Location: token.Location{File: path, Line: line, Column: startCol},
			Text:     word,
		})
	}

	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
