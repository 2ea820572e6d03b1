package ratmath

import (
	"fmt"
	"math/big"
)

// Log returns a rational approximation of the natural logarithm of x such that
// the last two iterates differ by at most 10^-[DefaultLogAccuracy].
// See also [LogAcc] and [LogSeeded].
//
// Log returns an error if x is not positive.
func Log(x *big.Rat) (*big.Rat, error) {
	return LogSeeded(x, DefaultLogAccuracy, FloatLogSeed)
}

// LogAcc is like [Log] but iterates until two successive approximations
// differ by at most 10^-accuracy.
//
// LogAcc returns an error if:
//   - x is not positive;
//   - accuracy is not positive.
func LogAcc(x *big.Rat, accuracy int) (*big.Rat, error) {
	return LogSeeded(x, accuracy, FloatLogSeed)
}

// LogSeeded is like [LogAcc] but starts the iteration from the guess
// produced by seed.
//
// LogSeeded returns an error if:
//   - x is not positive;
//   - accuracy is not positive;
//   - the seed is nil or returns nil;
//   - an iterate g far below zero makes [Exp](g) equal to -x.
func LogSeeded(x *big.Rat, accuracy int, seed Seed) (*big.Rat, error) {
	z, err := log(x, accuracy, seed)
	if err != nil {
		return nil, fmt.Errorf("computing [ln(%v)]: %w", x.RatString(), err)
	}
	return z, nil
}

// log solves e^g = x with Halley's method:
//
//	g = g + 2 · (x - e^g) / (x + e^g)
//
// where e^g is evaluated by [Exp].
// The result is the iterate preceding the one that satisfied the tolerance.
func log(x *big.Rat, accuracy int, seed Seed) (*big.Rat, error) {
	if x.Sign() <= 0 {
		return nil, fmt.Errorf("logarithm of non-positive number: %w", ErrInvalidDomain)
	}
	tol, err := NewTolerance(accuracy)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return nil, ErrInvalidSeed
	}
	g := seed(x)
	if g == nil {
		return nil, ErrInvalidSeed
	}
	for {
		e := Exp(g)
		num := new(big.Rat).Sub(x, e)
		den := new(big.Rat).Add(x, e)
		if den.Sign() == 0 {
			return nil, errDivisionByZero
		}
		next := num.Quo(num, den)
		next.Add(next, next)
		next.Add(next, g)
		if tol.Within(g, next) {
			return new(big.Rat).Set(g), nil
		}
		g = next
	}
}
