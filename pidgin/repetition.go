package pidgin

import (
	"strings"

	"github.com/cwbudde/go-pidgin/internal/ipool"
	"github.com/cwbudde/go-pidgin/state"
)

// Many runs p until it fails. A failure that consumed input fails the
// whole repetition (commitment); a failure that consumed nothing ends
// the repetition successfully, and its expectations describe what else
// could have continued the sequence. If p ever succeeds without
// advancing the cursor, Many panics with a UsageError; this is a
// programmer bug, not a parse failure, since it would otherwise loop
// forever.
func Many[T, R any](p Parser[T, R]) Parser[T, []R] {
	return newParser(func(s *state.State[T], exp *expected[T]) ([]R, bool) {
		var out []R
		for {
			loc0 := s.Location()
			local := ipool.New(s.Pool())
			v, ok := p.try(s, local)
			if ok {
				if s.Location() == loc0 {
					local.Release()
					panicZeroConsumption("Many")
				}
				out = append(out, v)
				local.Release()
				continue
			}
			consumed := s.Location() > loc0
			exp.AddRange(local.AsSlice())
			local.Release()
			if consumed {
				var zero []R
				return zero, false
			}
			return out, true
		}
	})
}

// AtLeastOnce requires at least one success of p, then behaves like
// Many for the rest.
func AtLeastOnce[T, R any](p Parser[T, R]) Parser[T, []R] {
	return Map2(func(first R, rest []R) []R {
		return append([]R{first}, rest...)
	}, p, Many(p))
}

// SkipMany is Many, discarding the collected values.
func SkipMany[T, R any](p Parser[T, R]) Parser[T, struct{}] {
	return Map1(func([]R) struct{} { return struct{}{} }, Many(p))
}

// SkipAtLeastOnce is AtLeastOnce, discarding the collected values.
func SkipAtLeastOnce[T, R any](p Parser[T, R]) Parser[T, struct{}] {
	return Map1(func([]R) struct{} { return struct{}{} }, AtLeastOnce(p))
}

// Repeat runs p exactly n times (n >= 0), failing the whole repetition
// if any attempt fails.
func Repeat[T, R any](p Parser[T, R], n int) Parser[T, []R] {
	return newParser(func(s *state.State[T], exp *expected[T]) ([]R, bool) {
		if n <= 0 {
			return nil, true
		}
		out := make([]R, 0, n)
		for i := 0; i < n; i++ {
			v, ok := p.try(s, exp)
			if !ok {
				var zero []R
				return zero, false
			}
			out = append(out, v)
		}
		return out, true
	})
}

// RepeatString is the char-specialization of Repeat: it runs p exactly
// n times and packs the resulting runes into a string using a
// fixed-capacity builder.
func RepeatString[T any](p Parser[T, rune], n int) Parser[T, string] {
	return newParser(func(s *state.State[T], exp *expected[T]) (string, bool) {
		var sb strings.Builder
		if n > 0 {
			sb.Grow(n)
		}
		for i := 0; i < n; i++ {
			r, ok := p.try(s, exp)
			if !ok {
				return "", false
			}
			sb.WriteRune(r)
		}
		return sb.String(), true
	})
}

// Until alternately tries the terminator t (success stops the
// repetition and discards t's value) and, failing that, runs p once.
// A terminator failure that consumed input fails the whole Until; a p
// failure that consumed input fails it too (keeping only p's
// expectations); a p failure that consumed nothing fails it merging
// both the terminator's and p's expectation sets.
func Until[T, R, E any](p Parser[T, R], t Parser[T, E]) Parser[T, []R] {
	return newParser(func(s *state.State[T], exp *expected[T]) ([]R, bool) {
		var out []R
		for {
			loc0 := s.Location()
			tExp := ipool.New(s.Pool())
			_, tok := t.try(s, tExp)
			if tok {
				exp.AddRange(tExp.AsSlice())
				tExp.Release()
				return out, true
			}
			if s.Location() > loc0 {
				exp.AddRange(tExp.AsSlice())
				tExp.Release()
				var zero []R
				return zero, false
			}

			pExp := ipool.New(s.Pool())
			v, pok := p.try(s, pExp)
			if !pok {
				if s.Location() > loc0 {
					exp.AddRange(pExp.AsSlice())
				} else {
					exp.AddRange(tExp.AsSlice())
					exp.AddRange(pExp.AsSlice())
				}
				tExp.Release()
				pExp.Release()
				var zero []R
				return zero, false
			}
			tExp.Release()
			pExp.Release()
			if s.Location() == loc0 {
				panicZeroConsumption("Until")
			}
			out = append(out, v)
		}
	})
}

// AtLeastOnceUntil requires one unconditional success of p before
// behaving like Until(p, t) for the rest.
func AtLeastOnceUntil[T, R, E any](p Parser[T, R], t Parser[T, E]) Parser[T, []R] {
	return Map2(func(first R, rest []R) []R {
		return append([]R{first}, rest...)
	}, p, Until(p, t))
}

// SepBy parses zero or more occurrences of p separated by sep, with no
// trailing separator.
func SepBy[T, R, S any](p Parser[T, R], sep Parser[T, S]) Parser[T, []R] {
	return Or(SepBy1(p, sep), Return[T, []R](nil))
}

// SepBy1 parses one or more occurrences of p separated by sep, with no
// trailing separator.
func SepBy1[T, R, S any](p Parser[T, R], sep Parser[T, S]) Parser[T, []R] {
	return Map2(func(first R, rest []R) []R {
		return append([]R{first}, rest...)
	}, p, Many(Then(sep, p)))
}

// SepEndBy parses zero or more occurrences of p separated by sep, with
// an optional trailing separator.
func SepEndBy[T, R, S any](p Parser[T, R], sep Parser[T, S]) Parser[T, []R] {
	return Or(SepEndBy1(p, sep), Return[T, []R](nil))
}

// SepEndBy1 parses one or more occurrences of p separated by sep, with
// an optional trailing separator. Each separator-then-p step runs under
// Try: a step that fails, whether or not it consumed input, is rewound
// to before its separator, which is then taken as the trailing one.
func SepEndBy1[T, R, S any](p Parser[T, R], sep Parser[T, S]) Parser[T, []R] {
	items := Map2(func(first R, rest []R) []R {
		return append([]R{first}, rest...)
	}, p, Many(Try(Then(sep, p))))
	trailing := Or(Then(sep, Return[T, struct{}](struct{}{})), Return[T, struct{}](struct{}{}))
	return Map2(func(xs []R, _ struct{}) []R { return xs }, items, trailing)
}
