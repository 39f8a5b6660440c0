// Package expr builds an operator-precedence ("Pratt") expression
// parser from a term parser and an ordered table of precedence rows,
// lowest precedence first. The climbing loop is grounded on the
// precedence-climbing skeleton in
// db47h-lex/parser/parser.go (its maxPrec/minPrec outer loop),
// generalized from one untyped int level into a full per-row
// associativity table.
package expr

import "github.com/cwbudde/go-pidgin/pidgin"

// Row is one precedence level: any of its five groups may be empty.
// InfixN/InfixL/InfixR parsers produce the binary combining function
// for the operator they matched; Prefix/Postfix parsers produce the
// unary combining function.
type Row[T, R any] struct {
	InfixN  []pidgin.Parser[T, func(R, R) R]
	InfixL  []pidgin.Parser[T, func(R, R) R]
	InfixR  []pidgin.Parser[T, func(R, R) R]
	Prefix  []pidgin.Parser[T, func(R) R]
	Postfix []pidgin.Parser[T, func(R) R]

	// ChainPrefix/ChainPostfix opt into the chainable variant of
	// pre/postfix handling: accept one-or-more occurrences and fold
	// inward (prefix right-to-left, postfix left-to-right) instead of
	// the default at-most-one.
	ChainPrefix  bool
	ChainPostfix bool
}

// Build folds term through table outward: the last (highest-precedence)
// row wraps term first and the first (lowest-precedence) row ends up
// outermost, so the first row's operators bind loosest.
func Build[T, R any](term pidgin.Parser[T, R], table []Row[T, R]) pidgin.Parser[T, R] {
	for i := len(table) - 1; i >= 0; i-- {
		term = mkLevel(term, table[i])
	}
	return term
}

func identity[R any](v R) R { return v }

func mkLevel[T, R any](inner pidgin.Parser[T, R], row Row[T, R]) pidgin.Parser[T, R] {
	operand := wrapPrePost(inner, row)
	return applyInfix(operand, row)
}

func wrapPrePost[T, R any](inner pidgin.Parser[T, R], row Row[T, R]) pidgin.Parser[T, R] {
	pre := unaryOrIdentity(row.Prefix, row.ChainPrefix, foldRightUnary[R])
	post := unaryOrIdentity(row.Postfix, row.ChainPostfix, foldLeftUnary[R])
	return pidgin.Map3(func(f func(R) R, v R, g func(R) R) R {
		return g(f(v))
	}, pre, inner, post)
}

func unaryOrIdentity[T, R any](ops []pidgin.Parser[T, func(R) R], chain bool, fold func([]func(R) R) func(R) R) pidgin.Parser[T, func(R) R] {
	idP := pidgin.Return[T, func(R) R](identity[R])
	if len(ops) == 0 {
		return idP
	}
	one := pidgin.OneOf(ops...)
	if !chain {
		return pidgin.Or(one, idP)
	}
	return pidgin.Map1(fold, pidgin.AtLeastOnce(one))
}

func foldRightUnary[R any](fs []func(R) R) func(R) R {
	return func(x R) R {
		for i := len(fs) - 1; i >= 0; i-- {
			x = fs[i](x)
		}
		return x
	}
}

func foldLeftUnary[R any](fs []func(R) R) func(R) R {
	return func(x R) R {
		for _, f := range fs {
			x = f(x)
		}
		return x
	}
}

type opY[R any] struct {
	F func(R, R) R
	Y R
}

func applyInfix[T, R any](operand pidgin.Parser[T, R], row Row[T, R]) pidgin.Parser[T, R] {
	return pidgin.Bind(operand, func(x R) pidgin.Parser[T, R] {
		var alts []pidgin.Parser[T, R]
		if len(row.InfixN) > 0 {
			alts = append(alts, pidgin.Bind(pidgin.OneOf(row.InfixN...), func(f func(R, R) R) pidgin.Parser[T, R] {
				return pidgin.Map1(func(y R) R { return f(x, y) }, operand)
			}))
		}
		if len(row.InfixL) > 0 {
			alts = append(alts, chainLeft(x, operand, row.InfixL))
		}
		if len(row.InfixR) > 0 {
			alts = append(alts, chainRight(x, operand, row.InfixR))
		}
		alts = append(alts, pidgin.Return[T, R](x))
		return pidgin.OneOf(alts...)
	})
}

// chainLeft parses x (op y)* and folds left: ((x op y) op y) op y.
func chainLeft[T, R any](x R, operand pidgin.Parser[T, R], ops []pidgin.Parser[T, func(R, R) R]) pidgin.Parser[T, R] {
	pair := pidgin.Map2(func(f func(R, R) R, y R) func(R) R {
		return func(acc R) R { return f(acc, y) }
	}, pidgin.OneOf(ops...), operand)
	return pidgin.Map1(func(fs []func(R) R) R {
		acc := x
		for _, f := range fs {
			acc = f(acc)
		}
		return acc
	}, pidgin.Many(pair))
}

// chainRight parses x (op y)* and folds right: x op (y op (y op y)).
func chainRight[T, R any](x R, operand pidgin.Parser[T, R], ops []pidgin.Parser[T, func(R, R) R]) pidgin.Parser[T, R] {
	pair := pidgin.Map2(func(f func(R, R) R, y R) opY[R] {
		return opY[R]{F: f, Y: y}
	}, pidgin.OneOf(ops...), operand)
	return pidgin.Map1(func(pairs []opY[R]) R {
		return foldRightPairs(x, pairs)
	}, pidgin.Many(pair))
}

func foldRightPairs[R any](x R, pairs []opY[R]) R {
	if len(pairs) == 0 {
		return x
	}
	return pairs[0].F(x, foldRightPairs(pairs[0].Y, pairs[1:]))
}
