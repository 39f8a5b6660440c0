package pidgin

import "github.com/cwbudde/go-pidgin/state"

// Map1 runs pa; on success it applies f to the result. On failure it
// propagates pa's failure (and whatever consumption pa had) unchanged.
//
// Map1 is the identity law anchor: Map1(func(x A) A { return x }, p) is
// observably identical to p (same consumption, value and errors).
func Map1[T, A, R any](f func(A) R, pa Parser[T, A]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		a, ok := pa.try(s, exp)
		if !ok {
			var zero R
			return zero, false
		}
		return f(a), true
	})
}

// Map2 runs pa then pb in order; the whole fails if either does.
func Map2[T, A, B, R any](f func(A, B) R, pa Parser[T, A], pb Parser[T, B]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		var zero R
		a, ok := pa.try(s, exp)
		if !ok {
			return zero, false
		}
		b, ok := pb.try(s, exp)
		if !ok {
			return zero, false
		}
		return f(a, b), true
	})
}

// Map3 runs three parsers in order, combining their results with f.
func Map3[T, A, B, C, R any](f func(A, B, C) R, pa Parser[T, A], pb Parser[T, B], pc Parser[T, C]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		var zero R
		a, ok := pa.try(s, exp)
		if !ok {
			return zero, false
		}
		b, ok := pb.try(s, exp)
		if !ok {
			return zero, false
		}
		c, ok := pc.try(s, exp)
		if !ok {
			return zero, false
		}
		return f(a, b, c), true
	})
}

// Map4 runs four parsers in order, combining their results with f.
func Map4[T, A, B, C, D, R any](f func(A, B, C, D) R, pa Parser[T, A], pb Parser[T, B], pc Parser[T, C], pd Parser[T, D]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		var zero R
		a, ok := pa.try(s, exp)
		if !ok {
			return zero, false
		}
		b, ok := pb.try(s, exp)
		if !ok {
			return zero, false
		}
		c, ok := pc.try(s, exp)
		if !ok {
			return zero, false
		}
		d, ok := pd.try(s, exp)
		if !ok {
			return zero, false
		}
		return f(a, b, c, d), true
	})
}

// Map5 runs five parsers in order, combining their results with f.
func Map5[T, A, B, C, D, E, R any](f func(A, B, C, D, E) R, pa Parser[T, A], pb Parser[T, B], pc Parser[T, C], pd Parser[T, D], pe Parser[T, E]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		var zero R
		a, ok := pa.try(s, exp)
		if !ok {
			return zero, false
		}
		b, ok := pb.try(s, exp)
		if !ok {
			return zero, false
		}
		c, ok := pc.try(s, exp)
		if !ok {
			return zero, false
		}
		d, ok := pd.try(s, exp)
		if !ok {
			return zero, false
		}
		e, ok := pe.try(s, exp)
		if !ok {
			return zero, false
		}
		return f(a, b, c, d, e), true
	})
}

// Map6 runs six parsers in order, combining their results with f.
func Map6[T, A, B, C, D, E, F2, R any](f func(A, B, C, D, E, F2) R, pa Parser[T, A], pb Parser[T, B], pc Parser[T, C], pd Parser[T, D], pe Parser[T, E], pf Parser[T, F2]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		var zero R
		a, ok := pa.try(s, exp)
		if !ok {
			return zero, false
		}
		b, ok := pb.try(s, exp)
		if !ok {
			return zero, false
		}
		c, ok := pc.try(s, exp)
		if !ok {
			return zero, false
		}
		d, ok := pd.try(s, exp)
		if !ok {
			return zero, false
		}
		e, ok := pe.try(s, exp)
		if !ok {
			return zero, false
		}
		f2, ok := pf.try(s, exp)
		if !ok {
			return zero, false
		}
		return f(a, b, c, d, e, f2), true
	})
}

// Map7 runs seven parsers in order, combining their results with f.
func Map7[T, A, B, C, D, E, F2, G, R any](f func(A, B, C, D, E, F2, G) R, pa Parser[T, A], pb Parser[T, B], pc Parser[T, C], pd Parser[T, D], pe Parser[T, E], pf Parser[T, F2], pg Parser[T, G]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		var zero R
		a, ok := pa.try(s, exp)
		if !ok {
			return zero, false
		}
		b, ok := pb.try(s, exp)
		if !ok {
			return zero, false
		}
		c, ok := pc.try(s, exp)
		if !ok {
			return zero, false
		}
		d, ok := pd.try(s, exp)
		if !ok {
			return zero, false
		}
		e, ok := pe.try(s, exp)
		if !ok {
			return zero, false
		}
		f2, ok := pf.try(s, exp)
		if !ok {
			return zero, false
		}
		g, ok := pg.try(s, exp)
		if !ok {
			return zero, false
		}
		return f(a, b, c, d, e, f2, g), true
	})
}

// Map8 runs eight parsers in order, combining their results with f.
// Higher arities are expressed through composition (Bind, or nested
// tuples) instead of a Map9 and beyond.
func Map8[T, A, B, C, D, E, F2, G, H, R any](f func(A, B, C, D, E, F2, G, H) R, pa Parser[T, A], pb Parser[T, B], pc Parser[T, C], pd Parser[T, D], pe Parser[T, E], pf Parser[T, F2], pg Parser[T, G], ph Parser[T, H]) Parser[T, R] {
	return newParser(func(s *state.State[T], exp *expected[T]) (R, bool) {
		var zero R
		a, ok := pa.try(s, exp)
		if !ok {
			return zero, false
		}
		b, ok := pb.try(s, exp)
		if !ok {
			return zero, false
		}
		c, ok := pc.try(s, exp)
		if !ok {
			return zero, false
		}
		d, ok := pd.try(s, exp)
		if !ok {
			return zero, false
		}
		e, ok := pe.try(s, exp)
		if !ok {
			return zero, false
		}
		f2, ok := pf.try(s, exp)
		if !ok {
			return zero, false
		}
		g, ok := pg.try(s, exp)
		if !ok {
			return zero, false
		}
		h, ok := ph.try(s, exp)
		if !ok {
			return zero, false
		}
		return f(a, b, c, d, e, f2, g, h), true
	})
}

// Then runs p then q, keeping only q's value.
// p.Then(q) ≡ Map2((_, b) => b, p, q).
func Then[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, B] {
	return Map2(func(_ A, b B) B { return b }, p, q)
}

// Before runs p then q, keeping only p's value.
// p.Before(q) ≡ Map2((a, _) => a, p, q).
func Before[T, A, B any](p Parser[T, A], q Parser[T, B]) Parser[T, A] {
	return Map2(func(a A, _ B) A { return a }, p, q)
}

// Bind runs p, then runs f(v) using p's result v. It is the escape
// hatch to context-sensitive grammars; no other combinator needs
// runtime grammar construction.
func Bind[T, A, B any](p Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return newParser(func(s *state.State[T], exp *expected[T]) (B, bool) {
		a, ok := p.try(s, exp)
		if !ok {
			var zero B
			return zero, false
		}
		return f(a).try(s, exp)
	})
}
