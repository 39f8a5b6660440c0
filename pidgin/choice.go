package pidgin

import (
	"github.com/cwbudde/go-pidgin/internal/ipool"
	"github.com/cwbudde/go-pidgin/state"
)

// OneOf tries each alternative in order against a private expectation
// buffer per alternative. The first to succeed wins. An alternative
// that fails after consuming input commits the whole OneOf to that
// failure, with no fallback to the remaining alternatives; only
// expectations accumulated from non-consuming failures before the
// commit point are dropped, the committing alternative's own
// expectations are kept.
func OneOf[T, R any](ps ...Parser[T, R]) Parser[T, R] {
	return newParser(func(s *state.State[T], parentExp *expected[T]) (R, bool) {
		var zero R
		if len(ps) == 0 {
			s.SetError(nil, false, s.Location(), "no alternatives", true)
			return zero, false
		}
		loc0 := s.Location()
		merged := ipool.New(s.Pool())
		defer merged.Release()

		for _, p := range ps {
			local := ipool.New(s.Pool())
			v, ok := p.try(s, local)
			if ok {
				merged.AddRange(local.AsSlice())
				local.Release()
				parentExp.AddRange(merged.AsSlice())
				return v, true
			}
			if s.Location() > loc0 {
				// committed: only this alternative's expectations survive
				parentExp.AddRange(local.AsSlice())
				local.Release()
				return zero, false
			}
			merged.AddRange(local.AsSlice())
			local.Release()
		}
		parentExp.AddRange(merged.AsSlice())
		return zero, false
	})
}

// Or tries p, then q if p failed without consuming input. It is
// OneOf(p, q), the two-alternative case of the same algorithm.
func Or[T, R any](p, q Parser[T, R]) Parser[T, R] {
	return OneOf(p, q)
}

// Try buffers p's consumption: on success it commits (keeps progress);
// on failure it rewinds the cursor, so a failure that consumed input
// looks, to an enclosing Or, like one that consumed nothing.
func Try[T, R any](p Parser[T, R]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		s.PushBookmark()
		v, ok := p.try(s, exp)
		if ok {
			s.PopBookmark()
			return v, true
		}
		s.Rewind()
		return v, false
	})
}

// Lookahead runs p and, if it succeeds, rewinds the cursor back to the
// entry location (keeping p's value); on failure it behaves like p
// (no rewind).
func Lookahead[T, R any](p Parser[T, R]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		s.PushBookmark()
		v, ok := p.try(s, exp)
		if ok {
			s.Rewind()
			return v, true
		}
		s.PopBookmark()
		return v, false
	})
}

// Not succeeds iff p fails; it never rewinds the cursor itself (combine
// with Try for a non-consuming negative lookahead). p's own
// expectations are discarded: Not fails or succeeds on p's bare
// success bit, not on what p wanted. On its own failure (p succeeded),
// Not reports the token at the original location as unexpected.
func Not[T, R any](p Parser[T, R]) Parser[T, struct{}] {
	return newParser(func(s *state.State[T], _ *expected[T]) (struct{}, bool) {
		loc0 := s.Location()
		s.PushBookmark()
		local := ipool.New(s.Pool())
		_, ok := p.try(s, local)
		local.Release()
		if !ok {
			s.PopBookmark()
			return struct{}{}, true
		}
		tok, hasTok := s.At(loc0)
		s.PopBookmark()
		if hasTok {
			cp := tok
			s.SetError(&cp, false, loc0, "", false)
		} else {
			s.SetError(nil, true, loc0, "", false)
		}
		return struct{}{}, false
	})
}
