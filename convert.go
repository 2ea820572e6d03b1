package ratmath

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// NewRatFromFloat64 converts a float to an exactly equal rational.
// See also function [Float64].
//
// NewRatFromFloat64 returns an error if the float is a special value (NaN or Inf).
func NewRatFromFloat64(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("converting float: special value %v", f)
	}
	return new(big.Rat).SetFloat64(f), nil
}

// Float64 returns the nearest binary floating-point number.
// See also constructor [NewRatFromFloat64].
//
// If the magnitude of x is too large to be represented by a float64,
// then false is returned.
func Float64(x *big.Rat) (f float64, ok bool) {
	f, _ = x.Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToDecimal returns x rounded to the given number of digits after the decimal
// point, with halves rounded away from zero.
// The scale of the result is always equal to the given scale.
// See also constructor [NewRatFromDecimal].
//
// ToDecimal returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the integer part of the rounded value has more than
//     ([decimal.MaxPrec] - scale) digits.
//     For example, when the scale is 18, ToDecimal will return an error
//     if the integer part of the result has more than 1 digit (19 - 18 = 1).
func ToDecimal(x *big.Rat, scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v: scale %v out of range", x.RatString(), scale)
	}
	s := x.FloatString(scale)
	if n := intDigits(s); n > decimal.MaxPrec-scale {
		return decimal.Decimal{}, fmt.Errorf("converting %v: integer part of %v has %v digits, must be at most %v", x.RatString(), s, n, decimal.MaxPrec-scale)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", x.RatString(), err)
	}
	return d, nil
}

// intDigits returns the number of significant digits before the decimal
// point of a number formatted by [big.Rat.FloatString].
func intDigits(s string) int {
	s = strings.TrimPrefix(s, "-")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimLeft(s, "0")
	return len(s)
}

// NewRatFromDecimal returns the exact value of d as a rational.
// See also function [ToDecimal].
func NewRatFromDecimal(d decimal.Decimal) *big.Rat {
	r, ok := new(big.Rat).SetString(d.String())
	if !ok {
		// Decimal.String always produces a valid decimal literal.
		panic(fmt.Sprintf("NewRatFromDecimal(%v) failed", d))
	}
	return r
}
