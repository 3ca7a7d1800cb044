// Package calculator provides exact rational arithmetic operations.
//
// All operations work on *big.Rat so that non-integral quotients stay
// exact: Divide(1, 3) is 1/3, not a rounded float.
package calculator

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Plus returns the sum of a and b.
func Plus(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(a, b)
}

// Minus returns the difference a minus b.
func Minus(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(a, b)
}

// Times returns the product of a and b.
func Times(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

// Divide returns the exact quotient of a and b.
// If b is zero, it returns ErrDivisionByZero.
func Divide(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Quo(a, b), nil
}

// Apply dispatches op ("+", "-", "*", "/") over a and b.
// Unknown operators are rejected with an error.
func Apply(op string, a, b *big.Rat) (*big.Rat, error) {
	switch op {
	case "+":
		return Plus(a, b), nil
	case "-":
		return Minus(a, b), nil
	case "*":
		return Times(a, b), nil
	case "/":
		return Divide(a, b)
	default:
		return nil, fmt.Errorf("unsupported operator %q", op)
	}
}

// ParseOperand parses s into a rational number. It accepts integers
// ("4"), fractions ("-3/4") and decimal notation ("2.5").
func ParseOperand(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid operand %q", s)
	}
	return r, nil
}

// FormatRat renders r the way a calculator would print it: integral
// values without a denominator ("2", not "2/1"), everything else as
// "numerator/denominator".
func FormatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}
