package pidgin

import (
	"sync"

	"github.com/cwbudde/go-pidgin/internal/ipool"
	"github.com/cwbudde/go-pidgin/perr"
	"github.com/cwbudde/go-pidgin/state"
)

// Rec defers construction of a parser until its first use, enabling
// mutually (and self-)recursive grammars without initialization-order
// hazards. factory is invoked at most once, lazily, on the first call
// to TryParse, never at Rec's own call site, since factory typically
// closes over the very Parser value Rec returns.
func Rec[T, R any](factory func() Parser[T, R]) Parser[T, R] {
	var once sync.Once
	var cached Parser[T, R]
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		once.Do(func() { cached = factory() })
		return cached.try(s, exp)
	})
}

// Labelled runs p; if p did not consume input (success or failure),
// any Tokens/EOF expectations it reported at this position are
// replaced with a single Label(name) expectation. p's value and
// consumption are unchanged either way.
func Labelled[T, R any](p Parser[T, R], name string) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		loc0 := s.Location()
		local := ipool.New(s.Pool())
		v, ok := p.try(s, local)
		if s.Location() == loc0 {
			local.Release()
			exp.Add(perr.Lbl[T](name))
		} else {
			exp.AddRange(local.AsSlice())
			local.Release()
		}
		return v, ok
	})
}

// Assert runs p; if pred holds for its result, Assert succeeds with
// that result. Otherwise it fails at the current location with
// msg(v) as the error message and a synthetic "result satisfying
// assertion" expectation. Where is a synonym.
func Assert[T, R any](p Parser[T, R], pred func(R) bool, msg func(R) string) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		v, ok := p.try(s, exp)
		if !ok {
			return v, false
		}
		if pred(v) {
			return v, true
		}
		s.SetError(nil, false, s.Location(), msg(v), true)
		exp.Add(perr.Lbl[T]("result satisfying assertion"))
		var zero R
		return zero, false
	})
}

// Where is a synonym of Assert.
func Where[T, R any](p Parser[T, R], pred func(R) bool, msg func(R) string) Parser[T, R] {
	return Assert(p, pred, msg)
}

// RecoverWith runs p in a private expectation buffer. On failure it
// builds a ParseError from that buffer, invokes handler to obtain a
// recovery parser, and runs the recovery parser against the current
// state, with no rewind. The recovery parser's own failure propagates
// as RecoverWith's failure.
func RecoverWith[T, R any](p Parser[T, R], handler func(*perr.ParseError[T]) Parser[T, R]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		local := ipool.New(s.Pool())
		v, ok := p.try(s, local)
		if ok {
			exp.AddRange(local.AsSlice())
			local.Release()
			return v, true
		}
		err := s.BuildError(local)
		local.Release()
		return handler(err).try(s, exp)
	})
}
