package ratmath

import (
	"fmt"
	"math/big"
)

// Sqrt returns a rational approximation of the square root of x such that
// the last two iterates differ by at most 10^-[DefaultSqrtAccuracy].
// See also [SqrtAcc] and [SqrtSeeded].
//
// Sqrt returns an error if x is negative.
func Sqrt(x *big.Rat) (*big.Rat, error) {
	return SqrtSeeded(x, DefaultSqrtAccuracy, FloatSqrtSeed)
}

// SqrtAcc is like [Sqrt] but iterates until two successive approximations
// differ by at most 10^-accuracy.
//
// SqrtAcc returns an error if:
//   - x is negative;
//   - accuracy is not positive.
func SqrtAcc(x *big.Rat, accuracy int) (*big.Rat, error) {
	return SqrtSeeded(x, accuracy, FloatSqrtSeed)
}

// SqrtSeeded is like [SqrtAcc] but starts the iteration from the guess
// produced by seed.
// Use [ScaledSqrtSeed] for values that do not fit into float64.
//
// SqrtSeeded returns an error if:
//   - x is negative;
//   - accuracy is not positive;
//   - the seed is nil or not positive for a positive x.
func SqrtSeeded(x *big.Rat, accuracy int, seed Seed) (*big.Rat, error) {
	z, err := sqrt(x, accuracy, seed)
	if err != nil {
		return nil, fmt.Errorf("computing [sqrt(%v)]: %w", x.RatString(), err)
	}
	return z, nil
}

// sqrt implements the Babylonian method:
//
//	g = (g + x / g) / 2
func sqrt(x *big.Rat, accuracy int, seed Seed) (*big.Rat, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("square root of negative number: %w", ErrInvalidDomain)
	}
	tol, err := NewTolerance(accuracy)
	if err != nil {
		return nil, err
	}
	if x.Sign() == 0 {
		return new(big.Rat), nil
	}
	if seed == nil {
		return nil, ErrInvalidSeed
	}
	g := seed(x)
	if g == nil || g.Sign() <= 0 {
		return nil, ErrInvalidSeed
	}
	two := big.NewRat(2, 1)
	for {
		next := new(big.Rat).Quo(x, g)
		next.Add(next, g)
		next.Quo(next, two)
		if tol.Within(g, next) {
			return next, nil
		}
		g = next
	}
}
