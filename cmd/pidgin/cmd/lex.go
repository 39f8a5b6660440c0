package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pidgin/config"
	"github.com/cwbudde/go-pidgin/pidgin"
	"github.com/cwbudde/go-pidgin/position"
	"github.com/cwbudde/go-pidgin/token"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize input as a bare rune stream and print each token",
	Long: `Tokenize input one rune at a time using pidgin.Any and pidgin.CurrentPos,
and print the resulting stream.

This exercises the library's lowest-level primitive (Any) and position
tracking (CurrentPos) directly, with no grammar beyond "every rune is a
token".

Examples:
  pidgin lex -e "ab\ncd"
  pidgin lex script.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexInput,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline text instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", true, "show each rune's line:col")
}

type runeTok struct {
	pos position.Position
	r   rune
}

func lexInput(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(args)
	if err != nil {
		return err
	}

	tokenizer := pidgin.Before(
		pidgin.Many(pidgin.Map2(func(pos position.Position, r rune) runeTok {
			return runeTok{pos: pos, r: r}
		}, pidgin.CurrentPos[rune](), pidgin.Any[rune]())),
		pidgin.End[rune](),
	)

	toks, err := pidgin.Parse(tokenizer, token.NewRunes(input), config.New(
		config.WithPositionCalculator(config.CharPositionCalculator(1)),
	))
	if err != nil {
		return fmt.Errorf("%s", renderRuneError(err, input))
	}

	for _, t := range toks {
		if showPos {
			fmt.Printf("%q @%d:%d\n", t.r, t.pos.Line, t.pos.Col)
		} else {
			fmt.Printf("%q\n", t.r)
		}
	}
	fmt.Printf("%d rune(s)\n", len(toks))
	return nil
}

func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline input")
}
