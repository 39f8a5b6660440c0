package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pidgin/cmd/pidgin/internal/calc"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive read-eval-print loop for the calc grammar",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("pidgin calc repl (empty line or Ctrl-D to exit)")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		v, err := calc.Eval(line)
		if err != nil {
			fmt.Println(renderRuneError(err, line))
			continue
		}
		fmt.Println(v)
	}
	return scanner.Err()
}
