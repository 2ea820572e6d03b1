package ratmath

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Func type represents one of the functions provided by this package.
// The zero value is [SqrtFunc].
//
// When persisting a function, use the name returned by the [Func.String]
// method rather than the integer value.
type Func uint8

const (
	SqrtFunc Func = iota // square root, see [Sqrt]
	ExpFunc              // natural exponential, see [Exp]
	LogFunc              // natural logarithm, see [Log]
)

var errInvalidFunc = errors.New("invalid function")

var (
	nameLookup = [...]string{
		SqrtFunc: "sqrt",
		ExpFunc:  "exp",
		LogFunc:  "ln",
	}
	funcLookup = map[string]Func{
		"sqrt": SqrtFunc,
		"exp":  ExpFunc,
		"ln":   LogFunc,
		"log":  LogFunc,
	}
	accuracyLookup = [...]int{
		SqrtFunc: DefaultSqrtAccuracy,
		ExpFunc:  DefaultExpAccuracy,
		LogFunc:  DefaultLogAccuracy,
	}
)

// ParseFunc converts a string to a function.
// The input string must be in one of the following formats:
//
//	sqrt
//	exp
//	ln
//	log
//
// Letter case is ignored.
// ParseFunc returns an error if the string does not name a supported function.
func ParseFunc(name string) (Func, error) {
	f, ok := funcLookup[strings.ToLower(name)]
	if !ok {
		return SqrtFunc, fmt.Errorf("%w %q", errInvalidFunc, name)
	}
	return f, nil
}

// MustParseFunc is like [ParseFunc] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding functions.
func MustParseFunc(name string) Func {
	f, err := ParseFunc(name)
	if err != nil {
		panic(fmt.Sprintf("ParseFunc(%q) failed: %v", name, err))
	}
	return f
}

// valid returns true if f is one of the declared functions.
func (f Func) valid() bool {
	return int(f) < len(nameLookup)
}

// String implements the [fmt.Stringer] interface and returns the
// name of the function.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Func) String() string {
	if !f.valid() {
		return fmt.Sprintf("Func(%d)", uint8(f))
	}
	return nameLookup[f]
}

// DefaultAccuracy returns the accuracy used by [Sqrt], [Exp], or [Log].
// For [ExpFunc] it is a number of terms, otherwise a number of digits.
func (f Func) DefaultAccuracy() int {
	if !f.valid() {
		return 0
	}
	return accuracyLookup[f]
}

// Eval applies the function to x using the float64 based seeds.
// See also [Func.EvalSeeded].
func (f Func) Eval(x *big.Rat, accuracy int) (*big.Rat, error) {
	switch f {
	case SqrtFunc:
		return SqrtAcc(x, accuracy)
	case LogFunc:
		return LogAcc(x, accuracy)
	}
	return f.EvalSeeded(x, accuracy, nil)
}

// EvalSeeded applies the function to x, starting the iteration from the
// guess produced by seed.
// The seed is ignored by [ExpFunc], which does not iterate.
func (f Func) EvalSeeded(x *big.Rat, accuracy int, seed Seed) (*big.Rat, error) {
	switch f {
	case SqrtFunc:
		return SqrtSeeded(x, accuracy, seed)
	case ExpFunc:
		return ExpAcc(x, accuracy), nil
	case LogFunc:
		return LogSeeded(x, accuracy, seed)
	}
	return nil, fmt.Errorf("evaluating %v: %w", f, errInvalidFunc)
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (f Func) MarshalJSON() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("marshaling %v: %w", f, errInvalidFunc)
	}
	text := make([]byte, 0, 6)
	text = append(text, '"')
	text = append(text, f.String()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseFunc].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Func) UnmarshalText(text []byte) error {
	var err error
	*f, err = ParseFunc(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", SqrtFunc, err)
	}
	return nil
}
