package lrcalc

import "strconv"

// CharError is an error indicating a character that cannot appear in an
// expression. It implements InputError.
type CharError struct {
	// Char is the offending character.
	Char rune
	// Col is the total number of runes scanned up to and including Char.
	Col int
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a token that was evaluated as a numeral
// but is not a valid number. It implements InputError.
type NumberError struct {
	// Text is the token.
	Text string
	// Index is the zero-based index of the token in the evaluated sequence.
	Index int
	// Err is the reason the token failed to parse.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Pos(), "invalid number "+strconv.Quote(err.Text))
}

// Pos returns the one-based position of the token in the sequence.
func (err *NumberError) Pos() int {
	return err.Index + 1
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// EmptyExpressionError is an error indicating an expression with no tokens.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input other than an empty expression implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error. For a *CharError, this is the
	// number of runes up to and including the offending one. For a
	// *NumberError, it is the one-based index of the token.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
)
