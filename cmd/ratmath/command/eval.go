package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"runtime"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/golang/glog"
	"github.com/govalues/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/govalues/ratmath"
)

var errInvalidFlag = errors.New("invalid flag")

type evalOptions struct {
	Accuracy int
	Digits   int
	Format   string
	Seed     string
	Check    bool
	Jobs     int
}

var shortLookup = map[ratmath.Func]string{
	ratmath.SqrtFunc: "Computes square roots using the Babylonian method.",
	ratmath.ExpFunc:  "Computes exponentials using the Taylor series.",
	ratmath.LogFunc:  "Computes natural logarithms using the Halley iteration.",
}

var aliasLookup = map[ratmath.Func][]string{
	ratmath.LogFunc: {"log"},
}

const evalFlagsUsage = "[--accuracy N] [--digits N] [--format fixed|fraction|decimal|json] [--seed float|scaled] [--check] [--jobs N] <x> [<x>...]"

func newEvalCommand(f ratmath.Func) *cobra.Command {
	opts := &evalOptions{}
	cmd := &cobra.Command{
		Use:                   fmt.Sprintf("%v %v", f, evalFlagsUsage),
		Short:                 shortLookup[f],
		DisableFlagsInUseLine: true,
		Aliases:               aliasLookup[f],
		Args:                  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandEval(cmd, f, opts, args)
		},
	}
	addEvalFlags(cmd.Flags(), opts, f.DefaultAccuracy())
	return cmd
}

// funcValue is a [pflag.Value] holding the name of a function.
type funcValue ratmath.Func

var _ pflag.Value = (*funcValue)(nil)

func (v *funcValue) String() string { return ratmath.Func(*v).String() }

func (v *funcValue) Set(s string) error { return (*ratmath.Func)(v).UnmarshalText([]byte(s)) }

func (v *funcValue) Type() string { return "func" }

func newGenericEvalCommand() *cobra.Command {
	opts := &evalOptions{}
	var f funcValue
	cmd := &cobra.Command{
		Use:   "eval --func sqrt|exp|ln " + evalFlagsUsage,
		Short: "Computes the function given by --func.",
		Long: `Computes the function given by --func.

When --accuracy is not set, the default accuracy of the function is used.`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := ratmath.Func(f)
			if !cmd.Flags().Changed("accuracy") {
				opts.Accuracy = fn.DefaultAccuracy()
			}
			return commandEval(cmd, fn, opts, args)
		},
	}
	cmd.Flags().Var(&f, "func", "Function to compute: sqrt, exp, or ln.")
	cmd.MarkFlagRequired("func")
	addEvalFlags(cmd.Flags(), opts, 0)
	return cmd
}

func addEvalFlags(fs *pflag.FlagSet, opts *evalOptions, accuracy int) {
	fs.IntVar(&opts.Accuracy, "accuracy", accuracy, "Accuracy of the computation. For exp it is the number of series terms, otherwise the tolerance is 10^-accuracy.")
	fs.IntVar(&opts.Digits, "digits", 30, "Number of digits after the decimal point. The decimal format keeps at most 19 digits, integer digits included, and drops fractional digits to fit.")
	fs.StringVar(&opts.Format, "format", "fixed", "Output format: fixed, fraction, decimal, or json.")
	fs.StringVar(&opts.Seed, "seed", "float", "Initial guess: float, or scaled for sqrt of numbers beyond the float64 range.")
	fs.BoolVar(&opts.Check, "check", false, "Print the absolute difference from a decimal reference computed with digits+10 significant digits.")
	fs.IntVar(&opts.Jobs, "jobs", runtime.GOMAXPROCS(0), "Number of arguments evaluated concurrently.")
}

// record is a result printed by the json format.
type record struct {
	Func     ratmath.Func `json:"func"`
	X        string       `json:"x"`
	Accuracy int          `json:"accuracy"`
	Value    string       `json:"value"`
	Diff     string       `json:"diff,omitempty"`
}

func commandEval(cmd *cobra.Command, f ratmath.Func, opts *evalOptions, args []string) error {
	if opts.Digits < 0 {
		return fmt.Errorf("%w: digits of %v is not allowed, must be 0 or above", errInvalidFlag, opts.Digits)
	}
	if opts.Jobs < 1 {
		return fmt.Errorf("%w: jobs of %v is not allowed, must be above 0", errInvalidFlag, opts.Jobs)
	}
	format, err := formatter(opts.Format, opts.Digits)
	if err != nil {
		return err
	}
	seed, err := seedFor(f, opts.Seed)
	if err != nil {
		return err
	}

	xs := make([]*big.Rat, len(args))
	for i, arg := range args {
		x, ok := new(big.Rat).SetString(arg)
		if !ok {
			return fmt.Errorf("parsing argument %q: not a rational number", arg)
		}
		xs[i] = x
	}

	lines := make([]string, len(xs))
	g := new(errgroup.Group)
	g.SetLimit(opts.Jobs)
	for i, x := range xs {
		i, x := i, x
		g.Go(func() error {
			start := time.Now()
			z, err := f.EvalSeeded(x, opts.Accuracy, seed)
			if err != nil {
				return err
			}
			glog.V(1).Infof("%v(%v) with accuracy %v took %v", f, x.RatString(), opts.Accuracy, time.Since(start))
			s, err := format(z)
			if err != nil {
				return err
			}
			var diff string
			if opts.Check {
				diff, err = difference(f, x, z, opts.Digits)
				if err != nil {
					return err
				}
			}
			switch {
			case opts.Format == "json":
				b, err := json.Marshal(record{Func: f, X: x.RatString(), Accuracy: opts.Accuracy, Value: s, Diff: diff})
				if err != nil {
					return err
				}
				s = string(b)
			case opts.Check:
				s = s + "\t" + diff
			}
			lines[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func formatter(name string, digits int) (func(*big.Rat) (string, error), error) {
	switch name {
	case "fixed", "json":
		return func(z *big.Rat) (string, error) {
			return z.FloatString(digits), nil
		}, nil
	case "fraction":
		return func(z *big.Rat) (string, error) {
			return z.RatString(), nil
		}, nil
	case "decimal":
		// A decimal holds at most 19 digits, so the scale is lowered
		// until the integer part fits.
		return func(z *big.Rat) (string, error) {
			scale := min(digits, decimal.MaxScale)
			for {
				d, err := ratmath.ToDecimal(z, scale)
				if err == nil {
					return d.String(), nil
				}
				if scale == 0 {
					return "", err
				}
				scale--
			}
		}, nil
	default:
		return nil, fmt.Errorf("%w: format %q is not supported", errInvalidFlag, name)
	}
}

func seedFor(f ratmath.Func, name string) (ratmath.Seed, error) {
	if name != "float" && name != "scaled" {
		return nil, fmt.Errorf("%w: seed %q is not supported", errInvalidFlag, name)
	}
	switch {
	case f == ratmath.ExpFunc:
		// exp does not iterate
		return nil, nil
	case name == "float" && f == ratmath.SqrtFunc:
		return ratmath.FloatSqrtSeed, nil
	case name == "float" && f == ratmath.LogFunc:
		return ratmath.FloatLogSeed, nil
	case name == "scaled" && f == ratmath.SqrtFunc:
		return ratmath.ScaledSqrtSeed, nil
	default:
		return nil, fmt.Errorf("%w: seed %q is not supported by %v", errInvalidFlag, name, f)
	}
}

// difference returns |z - f(x)| in scientific notation, where f(x) is
// computed in decimal floating point.
func difference(f ratmath.Func, x, z *big.Rat, digits int) (string, error) {
	ip := new(big.Int).Quo(z.Num(), z.Denom())
	prec := uint32(digits + 10 + len(ip.Abs(ip).String()))
	ctx := apd.BaseContext.WithPrecision(prec)

	num, _, err := apd.NewFromString(x.Num().String())
	if err != nil {
		return "", err
	}
	den, _, err := apd.NewFromString(x.Denom().String())
	if err != nil {
		return "", err
	}
	a := new(apd.Decimal)
	if _, err := ctx.Quo(a, num, den); err != nil {
		return "", fmt.Errorf("converting %v: %w", x.RatString(), err)
	}

	ref := new(apd.Decimal)
	switch f {
	case ratmath.SqrtFunc:
		_, err = ctx.Sqrt(ref, a)
	case ratmath.ExpFunc:
		_, err = ctx.Exp(ref, a)
	case ratmath.LogFunc:
		_, err = ctx.Ln(ref, a)
	}
	if err != nil {
		return "", fmt.Errorf("computing reference %v(%v): %w", f, x.RatString(), err)
	}

	r, ok := new(big.Rat).SetString(ref.Text('f'))
	if !ok {
		return "", fmt.Errorf("converting reference %v", ref)
	}
	r.Sub(z, r)
	r.Abs(r)
	return new(big.Float).SetRat(r).Text('e', 3), nil
}
