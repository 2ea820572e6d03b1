package ratmath

import (
	"errors"
	"fmt"
)

// Default accuracies used by [Sqrt], [Exp], and [Log].
const (
	DefaultSqrtAccuracy = 30  // digits after the decimal point
	DefaultExpAccuracy  = 100 // number of series terms
	DefaultLogAccuracy  = 30  // digits after the decimal point
)

var (
	// ErrInvalidDomain is returned when the argument lies outside the domain
	// of the function, for example the square root of a negative number.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidArgument is returned when a parameter other than the argument
	// itself is out of range.
	// The concrete error is an [*ArgumentError].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidSeed is returned when a [Seed] produces an unusable initial guess.
	ErrInvalidSeed = errors.New("invalid seed")

	errDivisionByZero = errors.New("division by zero")
)

// ArgumentError describes a parameter with an unacceptable value.
// It matches [ErrInvalidArgument] when used with [errors.Is].
type ArgumentError struct {
	Name  string // parameter name
	Value int    // offending value
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %v of %v is not allowed, must be above 0", ErrInvalidArgument, e.Name, e.Value)
}

// Unwrap returns [ErrInvalidArgument].
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func checkAccuracy(accuracy int) error {
	if accuracy <= 0 {
		return &ArgumentError{Name: "accuracy", Value: accuracy}
	}
	return nil
}
