package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickconvert/quickconvert/internal/calc"
)

// NewCalcCmd creates the calc command, which replays calculator key presses.
func NewCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <keys>",
		Short: "Replay calculator keys and print the equation and result",
		Long: `Replays each character of <keys> as a calculator key press.

Digits, "." "%" and "=" are keys of the same name. "+", "-", "*" (or "x")
and "/" are operators. "<" is backspace and "c" clears.`,
		Args: cobra.ExactArgs(1),
		Example: `  quickconvert calc "12+3*2="
  quickconvert calc "200-10%="`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eval := calc.NewEvaluator()
			state := calc.NewState()
			for _, ev := range calc.ParseKeys(args[0]) {
				state = calc.Reduce(state, ev, eval)
			}

			out := cmd.OutOrStdout()
			if state.Done {
				if _, err := fmt.Fprintln(out, state.Equation); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(out, state.Display()); err != nil {
				return err
			}
			if state.Done && state.Result == calc.ErrorResult {
				return &ConversionError{Message: calc.ErrorResult}
			}
			return nil
		},
	}
}
