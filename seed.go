package ratmath

import (
	"math"
	"math/big"
)

// Seed returns an initial guess for an iterative method.
// The argument must not be modified.
// A good seed only shortens the iteration; any reasonably close guess
// converges to the same tolerance.
type Seed func(x *big.Rat) *big.Rat

// seedPrec is the precision, in bits, of the big.Float based seeds.
const seedPrec = 64

// FloatSqrtSeed computes the square root of x in float64 and converts the result
// back to a rational.
// If x is too large (or too small) for the float64 range, the seed is x / 2.
func FloatSqrtSeed(x *big.Rat) *big.Rat {
	f, _ := x.Float64()
	s := math.Sqrt(f)
	if math.IsInf(s, 0) || (s == 0 && x.Sign() != 0) {
		return half(x)
	}
	return new(big.Rat).SetFloat64(s)
}

// FloatLogSeed computes the natural logarithm of x in float64 and converts
// the result back to a rational.
// If the logarithm is infinite, because x is too large or too small for the
// float64 range, the seed is x / 2.
func FloatLogSeed(x *big.Rat) *big.Rat {
	f, _ := x.Float64()
	l := math.Log(f)
	if math.IsInf(l, 0) || math.IsNaN(l) {
		return half(x)
	}
	return new(big.Rat).SetFloat64(l)
}

// ScaledSqrtSeed computes the square root of a non-negative x using a
// 64-bit [big.Float], which has a much wider exponent range than float64.
// Use it with [SqrtSeeded] when x may fall outside the float64 range.
func ScaledSqrtSeed(x *big.Rat) *big.Rat {
	if x.Sign() <= 0 {
		return new(big.Rat)
	}
	f := new(big.Float).SetPrec(seedPrec).SetRat(x)
	s := new(big.Float).SetPrec(seedPrec).Sqrt(f)
	r, _ := s.Rat(nil)
	return r
}

// half returns x / 2.
func half(x *big.Rat) *big.Rat {
	return new(big.Rat).Quo(x, big.NewRat(2, 1))
}
