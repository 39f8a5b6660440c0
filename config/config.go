// Package config holds the per-parse options ParseState needs: how a
// consumed token advances position, and how its transient expectation
// buffers are pooled. Built with functional options, the same pattern
// as a lexer taking a list of LexerOptions.
package config

import (
	"github.com/cwbudde/go-pidgin/internal/ipool"
	"github.com/cwbudde/go-pidgin/perr"
	"github.com/cwbudde/go-pidgin/position"
)

// Config bundles the options a single top-level parse is run with.
type Config[T any] struct {
	// PosCalc computes the position delta produced by consuming one
	// token. Defaults to position.OneCol for every token.
	PosCalc func(T) position.Delta

	// Pool backs every transient Expectation buffer allocated during
	// this parse. Defaults to a new provider, created by each New call,
	// sized for small expectation sets; use WithPool to share one.
	Pool *ipool.Provider[perr.Expectation[T]]
}

// Option mutates a Config under construction.
type Option[T any] func(*Config[T])

// WithPositionCalculator overrides how a single consumed token advances
// the position. A common override for char tokens:
//
//	WithPositionCalculator(func(c rune) position.Delta {
//	    if c == '\n' {
//	        return position.NewLine
//	    }
//	    return position.OneCol
//	})
func WithPositionCalculator[T any](calc func(T) position.Delta) Option[T] {
	return func(c *Config[T]) { c.PosCalc = calc }
}

// WithPool overrides the array-pool provider backing expectation
// buffers, e.g. to share one provider across many concurrent parses of
// the same token type.
func WithPool[T any](pool *ipool.Provider[perr.Expectation[T]]) Option[T] {
	return func(c *Config[T]) { c.Pool = pool }
}

// New builds a Config with the given options applied over the defaults.
func New[T any](opts ...Option[T]) *Config[T] {
	c := &Config[T]{
		PosCalc: func(T) position.Delta { return position.OneCol },
		Pool:    ipool.NewProvider[perr.Expectation[T]](8),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CharPositionCalculator is the common override for rune-token grammars:
// a newline advances the line, tab expands by tabWidth columns (if > 0,
// otherwise counts as one column like any other character), everything
// else advances one column.
func CharPositionCalculator(tabWidth int) func(rune) position.Delta {
	return func(c rune) position.Delta {
		switch {
		case c == '\n':
			return position.NewLine
		case c == '\t' && tabWidth > 0:
			return position.Delta{Cols: tabWidth}
		default:
			return position.OneCol
		}
	}
}
