// Package command contains the commands of the ratmath binary.
//
// Every function has its own subcommand, and eval takes the function as a flag:
//
//	ratmath sqrt [flags] <x> [<x>...]
//	ratmath exp [flags] <x> [<x>...]
//	ratmath ln [flags] <x> [<x>...]
//	ratmath eval --func <name> [flags] <x> [<x>...]
//
// Arguments are exact rationals in any form accepted by [big.Rat.SetString],
// such as "2", "1/3" or "1.5e-3". Negative arguments must follow "--".
package command

import (
	"github.com/spf13/cobra"

	"github.com/govalues/ratmath"
)

// Root is the top-level command of the ratmath binary.
var Root = NewRootCommand()

// NewRootCommand returns a root command with a subcommand for each function
// and a generic eval subcommand.
// Each call returns a command tree with its own flag state.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ratmath",
		Short: "Evaluates sqrt, exp and ln over exact rational numbers.",
		Long: `Evaluates sqrt, exp and ln over exact rational numbers.

Results are exact rationals printed with the requested number of digits
after the decimal point, as a fraction, as a fixed-point decimal, or as
JSON records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	for _, name := range []string{"sqrt", "exp", "ln"} {
		root.AddCommand(newEvalCommand(ratmath.MustParseFunc(name)))
	}
	root.AddCommand(newGenericEvalCommand())
	return root
}
