package pidgin

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/cwbudde/go-pidgin/perr"
	"github.com/cwbudde/go-pidgin/position"
	"github.com/cwbudde/go-pidgin/state"
)

// Return succeeds with v, consumes nothing, and appends no expectations.
func Return[T, R any](v R) Parser[T, R] {
	return newParser(func(_ *state.State[T], _ *expected[T]) (R, bool) {
		return v, true
	})
}

// Fail always fails with msg, consuming nothing, with an empty Tokens
// expectation.
func Fail[T, R any](msg string) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		s.SetError(nil, false, s.Location(), msg, true)
		exp.Add(perr.Toks[T](nil))
		var zero R
		return zero, false
	})
}

// Any succeeds with the current token and advances by one; at end of
// input it fails with atEof.
func Any[T any]() Parser[T, T] {
	return newParser(func(s *state.State[T], exp *expected[T]) (T, bool) {
		var zero T
		t, ok := s.TryCurrent()
		if !ok {
			s.SetError(nil, true, s.Location(), "", false)
			exp.Add(perr.EOF[T]())
			return zero, false
		}
		s.Advance(1)
		return t, true
	})
}

// Satisfy succeeds with the current token if pred holds for it and
// advances by one; otherwise fails without consuming, reporting the
// token (or EOF) as unexpected. For a token that fails pred, Satisfy
// reports no expectation of its own (at end of input it reports EOF);
// wrap it with Labelled to describe what it wanted.
func Satisfy[T any](pred func(T) bool) Parser[T, T] {
	return newParser(func(s *state.State[T], exp *expected[T]) (T, bool) {
		var zero T
		t, ok := s.TryCurrent()
		if !ok {
			s.SetError(nil, true, s.Location(), "", false)
			exp.Add(perr.EOF[T]())
			return zero, false
		}
		if !pred(t) {
			cp := t
			s.SetError(&cp, false, s.Location(), "", false)
			return zero, false
		}
		s.Advance(1)
		return t, true
	})
}

// Token succeeds iff the current token equals t, advancing by one;
// otherwise fails without consuming, reporting t as the expected Tokens
// sequence.
func Token[T comparable](t T) Parser[T, T] {
	return newParser(func(s *state.State[T], exp *expected[T]) (T, bool) {
		var zero T
		cur, ok := s.TryCurrent()
		if !ok {
			s.SetError(nil, true, s.Location(), "", false)
			exp.Add(perr.Toks[T]([]T{t}))
			return zero, false
		}
		if cur != t {
			cp := cur
			s.SetError(&cp, false, s.Location(), "", false)
			exp.Add(perr.Toks[T]([]T{t}))
			return zero, false
		}
		s.Advance(1)
		return cur, true
	})
}

// Sequence matches the literal token sequence toks in order. On the
// first mismatch at index i it advances by i (the opt-in commitment Or
// observes) before failing, reporting the token at i (or EOF) as
// unexpected and toks as expected.
func Sequence[T comparable](toks []T) Parser[T, []T] {
	want := append([]T(nil), toks...)
	return newParser(func(s *state.State[T], exp *expected[T]) ([]T, bool) {
		la := s.LookAhead(len(want))
		for i, w := range want {
			if i >= len(la) {
				s.Advance(i)
				s.SetError(nil, true, s.Location(), "", false)
				exp.Add(perr.Toks[T](want))
				return nil, false
			}
			if la[i] != w {
				s.Advance(i)
				got := la[i]
				s.SetError(&got, false, s.Location(), "", false)
				exp.Add(perr.Toks[T](want))
				return nil, false
			}
		}
		s.Advance(len(want))
		return append([]T(nil), want...), true
	})
}

// String matches the literal rune sequence of str, returning str itself
// on success.
func String(str string) Parser[rune, string] {
	seq := Sequence([]rune(str))
	return Map1(func(_ []rune) string { return str }, seq)
}

var foldCaser = cases.Fold()

func foldRune(r rune) string { return foldCaser.String(string(r)) }

// CIString matches str case-insensitively, using Unicode case folding
// (golang.org/x/text/cases) rather than byte-wise ASCII comparison, and
// returns the literal text actually consumed.
func CIString(str string) Parser[rune, string] {
	want := []rune(str)
	foldedWant := make([]string, len(want))
	for i, w := range want {
		foldedWant[i] = foldRune(w)
	}
	return newParser(func(s *state.State[rune], exp *expected[rune]) (string, bool) {
		la := s.LookAhead(len(want))
		for i := range want {
			if i >= len(la) {
				s.Advance(i)
				s.SetError(nil, true, s.Location(), "", false)
				exp.Add(perr.Toks[rune](want))
				return "", false
			}
			if foldRune(la[i]) != foldedWant[i] {
				s.Advance(i)
				got := la[i]
				s.SetError(&got, false, s.Location(), "", false)
				exp.Add(perr.Toks[rune](want))
				return "", false
			}
		}
		s.Advance(len(want))
		var sb strings.Builder
		sb.Grow(len(want))
		for _, r := range la[:len(want)] {
			sb.WriteRune(r)
		}
		return sb.String(), true
	})
}

// End succeeds with struct{} iff there is no current token; otherwise
// it fails, reporting the current token as unexpected and EOF as
// expected.
func End[T any]() Parser[T, struct{}] {
	return newParser(func(s *state.State[T], exp *expected[T]) (struct{}, bool) {
		if t, ok := s.TryCurrent(); ok {
			cp := t
			s.SetError(&cp, false, s.Location(), "", false)
			exp.Add(perr.EOF[T]())
			return struct{}{}, false
		}
		return struct{}{}, true
	})
}

// CurrentOffset succeeds with the cursor's current token index, with no
// side effects.
func CurrentOffset[T any]() Parser[T, int] {
	return newParser(func(s *state.State[T], _ *expected[T]) (int, bool) {
		return s.Location(), true
	})
}

// CurrentPos succeeds with the (line, col) position implied by the
// tokens consumed so far, with no side effects.
func CurrentPos[T any]() Parser[T, position.Position] {
	return newParser(func(s *state.State[T], _ *expected[T]) (position.Position, bool) {
		return position.Start.Add(s.ComputeSourcePosDelta()), true
	})
}
