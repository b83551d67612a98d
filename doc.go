// Package lrcalc implements a calculator that reads arithmetic from left to
// right.
//
// An expression is numbers and the operators + - * / with any number of
// spaces between them. There is no precedence: "2 + 3 * 4" is (2+3)*4 = 20.
// Two numbers in a row multiply, so "2 3" is 6. If several operators appear
// between two numbers, only the last one counts, so "1 + - 2" is -1. A
// leading "-" is not a sign; an expression must begin with a number.
//
// Arithmetic is float64, so dividing by zero gives an infinity or NaN rather
// than an error.
package lrcalc
