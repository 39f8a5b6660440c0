// Package calc is a tiny arithmetic-expression grammar built on pidgin
// and pidgin/expr, demonstrating the library end to end: a lexeme
// layer over a rune source, parenthesised recursion via pidgin.Rec, and
// a four-operator precedence table (unary minus, * /, + -, all
// left-associative) via expr.Build.
package calc

import (
	"strconv"
	"unicode"

	"github.com/cwbudde/go-pidgin/config"
	"github.com/cwbudde/go-pidgin/pidgin"
	"github.com/cwbudde/go-pidgin/pidgin/expr"
	"github.com/cwbudde/go-pidgin/token"
)

func spaces() pidgin.Parser[rune, struct{}] {
	return pidgin.SkipMany(pidgin.Satisfy[rune](unicode.IsSpace))
}

func lexeme[R any](p pidgin.Parser[rune, R]) pidgin.Parser[rune, R] {
	return pidgin.Before(p, spaces())
}

func symbol(s string) pidgin.Parser[rune, string] {
	return lexeme(pidgin.String(s))
}

func number() pidgin.Parser[rune, float64] {
	digit := pidgin.Satisfy[rune](unicode.IsDigit)
	intPart := pidgin.AtLeastOnce(digit)
	fracPart := pidgin.Or(
		pidgin.Map2(func(dot rune, d []rune) []rune {
			return append([]rune{dot}, d...)
		}, pidgin.Token('.'), intPart),
		pidgin.Return[rune, []rune](nil),
	)
	return lexeme(pidgin.Labelled(pidgin.Map2(func(i, f []rune) float64 {
		v, _ := strconv.ParseFloat(string(i)+string(f), 64)
		return v
	}, intPart, fracPart), "number"))
}

func binOp(name string, f func(a, b float64) float64) pidgin.Parser[rune, func(float64, float64) float64] {
	return pidgin.Map1(func(string) func(float64, float64) float64 { return f }, symbol(name))
}

func unaryMinus() pidgin.Parser[rune, func(float64) float64] {
	return pidgin.Map1(func(string) func(float64) float64 {
		return func(x float64) float64 { return -x }
	}, symbol("-"))
}

// Expr is the full arithmetic-expression parser, built once via Rec so
// parens() can refer back to it before it exists. It is assigned in
// init, since a declaration initializer that reaches Expr again through
// parens() would be an initialization cycle.
var Expr pidgin.Parser[rune, float64]

func init() { Expr = pidgin.Rec(exprFactory) }

// exprFactory builds the precedence table, lowest precedence first.
func exprFactory() pidgin.Parser[rune, float64] {
	term := pidgin.OneOf(number(), parens())
	table := []expr.Row[rune, float64]{
		{InfixL: []pidgin.Parser[rune, func(float64, float64) float64]{
			binOp("+", func(a, b float64) float64 { return a + b }),
			binOp("-", func(a, b float64) float64 { return a - b }),
		}},
		{InfixL: []pidgin.Parser[rune, func(float64, float64) float64]{
			binOp("*", func(a, b float64) float64 { return a * b }),
			binOp("/", func(a, b float64) float64 { return a / b }),
		}},
		{Prefix: []pidgin.Parser[rune, func(float64) float64]{unaryMinus()}},
	}
	return expr.Build(term, table)
}

func parens() pidgin.Parser[rune, float64] {
	return pidgin.Map3(func(_ string, v float64, _ string) float64 { return v }, symbol("("), Expr, symbol(")"))
}

func program() pidgin.Parser[rune, float64] {
	return pidgin.Before(pidgin.Then(spaces(), Expr), pidgin.End[rune]())
}

// Eval parses and evaluates input, returning a *perr.ParseError[rune]
// (via the error interface) on a malformed expression.
func Eval(input string) (float64, error) {
	return pidgin.Parse(program(), token.NewRunes(input), config.New[rune]())
}
