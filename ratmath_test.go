package ratmath

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/sync/errgroup"
)

// mustParseRat converts a string such as "2", "1/3" or "1.5e-3" to a rational.
func mustParseRat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("mustParseRat(" + s + ") failed")
	}
	return r
}

// pow10 returns 10^n, or 1 / 10^-n when n is negative.
func pow10(n int) *big.Rat {
	neg := n < 0
	if neg {
		n = -n
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	if neg {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}
	return new(big.Rat).SetInt(p)
}

// reference computes sqrt, exp, or ln of the decimal string x with
// 200 significant digits.
func reference(t *testing.T, fn, x string) *big.Rat {
	t.Helper()
	ctx := apd.BaseContext.WithPrecision(200)
	a, _, err := apd.NewFromString(x)
	if err != nil {
		t.Fatalf("apd.NewFromString(%q) failed: %v", x, err)
	}
	d := new(apd.Decimal)
	switch fn {
	case "sqrt":
		_, err = ctx.Sqrt(d, a)
	case "exp":
		_, err = ctx.Exp(d, a)
	case "ln":
		_, err = ctx.Ln(d, a)
	default:
		t.Fatalf("reference(%q) is not supported", fn)
	}
	if err != nil {
		t.Fatalf("apd %v(%v) failed: %v", fn, x, err)
	}
	return mustParseRat(d.Text('f'))
}

// dist returns |a - b|.
func dist(a, b *big.Rat) *big.Rat {
	d := new(big.Rat).Sub(a, b)
	return d.Abs(d)
}

func TestArgumentError(t *testing.T) {
	var err error = &ArgumentError{Name: "accuracy", Value: -5}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("errors.Is(%v, ErrInvalidArgument) = false, want true", err)
	}
	if errors.Is(err, ErrInvalidDomain) {
		t.Errorf("errors.Is(%v, ErrInvalidDomain) = true, want false", err)
	}
	got := err.Error()
	want := "invalid argument: accuracy of -5 is not allowed, must be above 0"
	if got != want {
		t.Errorf("ArgumentError.Error() = %q, want %q", got, want)
	}
}

func TestCheckAccuracy(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []int{1, 2, 30, 100, 1000}
		for _, tt := range tests {
			if err := checkAccuracy(tt); err != nil {
				t.Errorf("checkAccuracy(%v) failed: %v", tt, err)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []int{0, -1, -5, -1000}
		for _, tt := range tests {
			err := checkAccuracy(tt)
			var aerr *ArgumentError
			if !errors.As(err, &aerr) {
				t.Errorf("checkAccuracy(%v) = %v, want *ArgumentError", tt, err)
				continue
			}
			if aerr.Name != "accuracy" || aerr.Value != tt {
				t.Errorf("checkAccuracy(%v) = %+v, want {Name:accuracy Value:%v}", tt, *aerr, tt)
			}
		}
	})
}

func TestConcurrentUse(t *testing.T) {
	x := mustParseRat("22/7")
	wantSqrt, err := SqrtAcc(x, 50)
	if err != nil {
		t.Fatalf("SqrtAcc(%v, 50) failed: %v", x, err)
	}
	wantExp := ExpAcc(x, 60)
	wantLn, err := LogAcc(x, 10)
	if err != nil {
		t.Fatalf("LogAcc(%v, 10) failed: %v", x, err)
	}

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			s, err := SqrtAcc(x, 50)
			if err != nil {
				return err
			}
			if s.Cmp(wantSqrt) != 0 {
				return fmt.Errorf("SqrtAcc(%v, 50) = %v, want %v", x, s, wantSqrt)
			}
			if e := ExpAcc(x, 60); e.Cmp(wantExp) != 0 {
				return fmt.Errorf("ExpAcc(%v, 60) = %v, want %v", x, e, wantExp)
			}
			l, err := LogAcc(x, 10)
			if err != nil {
				return err
			}
			if l.Cmp(wantLn) != 0 {
				return fmt.Errorf("LogAcc(%v, 10) = %v, want %v", x, l, wantLn)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Error(err)
	}
	if x.RatString() != "22/7" {
		t.Errorf("concurrent calls modified the argument: %v", x.RatString())
	}
}
