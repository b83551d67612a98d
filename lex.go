package lrcalc

import (
	"errors"
	"io"
	"strings"
)

// Operators contains the runes which are lexed as single-character operator
// tokens.
const Operators = "+-*/"

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

type lexer struct {
	src    io.RuneScanner
	buf    strings.Builder
	rune   int
	tokens []string
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// flush moves the numeral being scanned, if any, to the token list.
func (l *lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	l.tokens = append(l.tokens, l.buf.String())
	l.buf.Reset()
}

// scan reads the entire input. On error, the tokens scanned so far must be
// discarded.
func (l *lexer) scan() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.flush()
				return nil
			}
			return err
		}
		switch {
		case r == ' ':
			l.flush()
		case '0' <= r && r <= '9', r == '.':
			l.buf.WriteRune(r)
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				l.flush()
				l.tokens = append(l.tokens, operstrs[k])
				continue
			}
			return &CharError{Char: r, Col: l.rune}
		}
	}
}

// Tokenize splits an expression into numeral and operator tokens. Numerals
// are maximal runs of ASCII digits and dots and are not checked for being
// well-formed. Each of + - * / is a token by itself. Spaces only separate
// tokens. Any other character is a *CharError, in which case the result is
// nil.
func Tokenize(src io.RuneScanner) ([]string, error) {
	l := lex(src)
	if err := l.scan(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

// TokenizeString is a shortcut to tokenize a string expression.
func TokenizeString(src string) ([]string, error) {
	return Tokenize(strings.NewReader(src))
}
