package cmd

import (
	"github.com/cwbudde/go-pidgin/perr"
	"github.com/cwbudde/go-pidgin/position"
)

// evalExpr backs the lex subcommand's -e/--eval flag.
var evalExpr string

func renderRuneError(err error, input string) string {
	pe, ok := err.(*perr.ParseError[rune])
	if !ok {
		return err.Error()
	}
	return pe.Render(position.Start, func(r rune) string { return string(r) })
}
