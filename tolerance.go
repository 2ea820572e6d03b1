package ratmath

import (
	"fmt"
	"math/big"
)

// Tolerance represents the largest acceptable distance between two successive
// iterates, equal to 1 / 10^accuracy.
// The zero value corresponds to a tolerance of 0, that is, iterates must agree exactly.
// Tolerance is designed to be safe for concurrent use by multiple goroutines.
type Tolerance struct {
	accuracy int      // digits after the decimal point
	value    *big.Rat // 1 / 10^accuracy, never mutated
}

// NewTolerance returns a tolerance equal to 1 / 10^accuracy.
//
// NewTolerance returns an [*ArgumentError] if accuracy is not positive.
func NewTolerance(accuracy int) (Tolerance, error) {
	if err := checkAccuracy(accuracy); err != nil {
		return Tolerance{}, err
	}
	ten := big.NewInt(10)
	den := new(big.Int).Exp(ten, big.NewInt(int64(accuracy)), nil)
	v := new(big.Rat).SetFrac(big.NewInt(1), den)
	return Tolerance{accuracy: accuracy, value: v}, nil
}

// MustNewTolerance is like [NewTolerance] but panics if the tolerance cannot be constructed.
// It simplifies safe initialization of global variables holding tolerances.
func MustNewTolerance(accuracy int) Tolerance {
	t, err := NewTolerance(accuracy)
	if err != nil {
		panic(fmt.Sprintf("NewTolerance(%v) failed: %v", accuracy, err))
	}
	return t
}

// Accuracy returns the number of digits after the decimal point.
func (t Tolerance) Accuracy() int {
	return t.accuracy
}

// Rat returns the exact value of the tolerance.
// The result is a copy and may be modified by the caller.
func (t Tolerance) Rat() *big.Rat {
	if t.value == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(t.value)
}

// Within returns:
//
//	true  if |a - b| <= t
//	false otherwise
func (t Tolerance) Within(a, b *big.Rat) bool {
	if t.value == nil {
		return a.Cmp(b) == 0
	}
	d := new(big.Rat).Sub(a, b)
	return d.Abs(d).Cmp(t.value) <= 0
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the tolerance, such as "1e-30".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Tolerance) String() string {
	if t.value == nil {
		return "0"
	}
	return fmt.Sprintf("1e-%d", t.accuracy)
}
