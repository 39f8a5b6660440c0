// Package pidgin is a generic parser-combinator toolkit: build a Parser
// by composing primitives (Token, Any, Sequence, ...) with combinators
// (Map, Or, Many, Rec, ...), then run it with Parse or ParseOrPanic.
//
// Parser values are immutable, pure descriptions of parsing intent;
// build them once at package init time and reuse them across every
// call to Parse. The only mutable piece of state is the *state.State a
// single top-level Parse call drives.
package pidgin

import (
	"github.com/cwbudde/go-pidgin/internal/ipool"
	"github.com/cwbudde/go-pidgin/perr"
	"github.com/cwbudde/go-pidgin/state"
)

// expected is the shared, caller-owned expectation buffer every
// combinator appends to.
type expected[T any] = ipool.List[perr.Expectation[T]]

// Parser is the uniform "try-parse" contract every combinator is an
// instance of. T is the token type the parser reads; R is the value it
// produces on success.
//
// On success, TryParse returns (value, true); it may or may not have
// advanced the state's location, and may append zero or more
// expectations describing what else could also have matched here.
//
// On failure, TryParse returns (zero, false), having either consumed no
// input or strictly advanced it, the single bit every alternation
// combinator inspects. It writes the error slot via state.SetError and
// appends expectations describing what it wanted.
type Parser[T, R any] struct {
	try func(s *state.State[T], exp *expected[T]) (R, bool)
}

// TryParse runs the parser against s, appending to the caller-owned
// expectation buffer exp.
func (p Parser[T, R]) TryParse(s *state.State[T], exp *expected[T]) (R, bool) {
	return p.try(s, exp)
}

func newParser[T, R any](f func(s *state.State[T], exp *expected[T]) (R, bool)) Parser[T, R] {
	return Parser[T, R]{try: f}
}

// UsageError is raised (never returned as a value) when a combinator
// detects a programmer bug: a parser inside Many/AtLeastOnce/Until
// succeeded without consuming input, which would loop forever. This is
// distinct from an ordinary parse failure, which is reported as a
// *perr.ParseError value instead of a panic.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func panicZeroConsumption(combinator string) {
	panic(&UsageError{Message: combinator + ": inner parser succeeded without consuming any input"})
}
