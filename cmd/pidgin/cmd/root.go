package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pidgin",
	Short: "go-pidgin demo CLI",
	Long: `pidgin is a small demo CLI built on top of the go-pidgin
parser-combinator library.

It does not parse any particular language of its own; it exercises the
library against a tiny built-in arithmetic grammar (cmd/pidgin/internal/calc)
so the combinators, the precedence-climbing expression builder and the
rendered parse-error output can be poked at from the command line.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
