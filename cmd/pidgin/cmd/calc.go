package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pidgin/cmd/pidgin/internal/calc"
)

var calcCmd = &cobra.Command{
	Use:   "calc [expression]",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluate an arithmetic expression using the calc grammar
(cmd/pidgin/internal/calc), built on pidgin/expr's operator-precedence
table: unary minus, * and / (left-associative), then + and -
(left-associative), with parenthesised grouping.

Examples:
  pidgin calc "1 + 2 * 3"
  pidgin calc "-(4 - 1) / 3"`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	v, err := calc.Eval(args[0])
	if err != nil {
		return fmt.Errorf("%s", renderRuneError(err, args[0]))
	}
	fmt.Println(v)
	return nil
}
