package ratmath

import (
	"math/big"
)

// Exp returns an approximation of e^x, where e is the base of the natural logarithm,
// using [DefaultExpAccuracy] terms of the Taylor series.
// See also [ExpAcc].
func Exp(x *big.Rat) *big.Rat {
	return ExpAcc(x, DefaultExpAccuracy)
}

// ExpAcc returns an approximation of e^x equal to the truncated Taylor series
//
//	1 + x + x^2/2! + ... + x^(accuracy-1)/(accuracy-1)!
//
// Unlike [SqrtAcc] and [LogAcc], accuracy here is the number of terms,
// not a number of digits.
// The size of the numerator and denominator of the result grows quickly
// with accuracy, so large values should be chosen with care.
// If accuracy is less than 2, the result is 1.
func ExpAcc(x *big.Rat, accuracy int) *big.Rat {
	// The series is evaluated in nested form
	//
	//	s = 1 + x·s/i,  i = accuracy-1, ..., 1
	//
	// with x = p/q and s = num/den kept as separate integers,
	// so that the fraction is reduced only once.
	p, q := x.Num(), x.Denom()
	num, den := big.NewInt(1), big.NewInt(1)
	qi := new(big.Int)
	for i := accuracy - 1; i > 0; i-- {
		qi.Mul(q, big.NewInt(int64(i)))
		num.Mul(num, p)
		den.Mul(den, qi)
		num.Add(num, den)
	}
	return new(big.Rat).SetFrac(num, den)
}
