package lrcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// operator is an arithmetic operation waiting for its right operand.
type operator int8

const (
	opMul operator = iota
	opAdd
	opSub
	opDiv
)

func (op operator) String() string {
	switch op {
	case opMul:
		return "*"
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opDiv:
		return "/"
	default:
		return "operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// binop gets the operator for a token. The second result is false if the
// token is not an operator.
func binop(text string) (operator, bool) {
	switch text {
	case "+":
		return opAdd, true
	case "-":
		return opSub, true
	case "*":
		return opMul, true
	case "/":
		return opDiv, true
	default:
		return 0, false
	}
}

func (op operator) apply(l, r float64) float64 {
	switch op {
	case opMul:
		return l * r
	case opAdd:
		return l + r
	case opSub:
		return l - r
	case opDiv:
		return l / r
	default:
		panic("lrcalc: invalid operator " + op.String())
	}
}

// num parses the token at index k as a number.
func num(tokens []string, k int) (float64, error) {
	s := tokens[k]
	if strings.ContainsAny(s, "xX_") {
		// Hexadecimal and underscore-separated forms are not decimal numerals.
		err := &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
		return 0, &NumberError{Text: s, Index: k, Err: err}
	}
	r, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// Too many digits. ParseFloat has already given the infinity.
	default:
		return 0, &NumberError{Text: s, Index: k, Err: err}
	}
	return r, nil
}

// Evaluate folds a token sequence into a number from left to right. The first
// token seeds the result. Each later operator token selects the operation
// applied with the next numeral, replacing any operator selected since the
// last numeral; a numeral with no operator before it multiplies. There is no
// precedence, so "2 + 3 * 4" is 20.
//
// A numeral is a decimal number with an optional sign and exponent, or one of
// inf, infinity, and nan in any case. Tokenize only produces digits and dots,
// but Evaluate accepts any token of that form. Hexadecimal and
// underscore-separated numbers are a *NumberError. A numeral too large for
// float64 is an infinity.
//
// Division by zero follows IEEE-754 and is not an error.
func Evaluate(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, &EmptyExpressionError{}
	}
	acc, err := num(tokens, 0)
	if err != nil {
		return 0, err
	}
	op := opMul
	for k := 1; k < len(tokens); k++ {
		if o, ok := binop(tokens[k]); ok {
			op = o
			continue
		}
		r, err := num(tokens, k)
		if err != nil {
			return 0, err
		}
		acc = op.apply(acc, r)
		op = opMul
	}
	return acc, nil
}

// Eval is a shortcut to tokenize and evaluate an expression.
func Eval(src io.RuneScanner) (float64, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens)
}

// EvalString is a shortcut to tokenize and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
