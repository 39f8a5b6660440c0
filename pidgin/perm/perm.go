// Package perm implements an order-insensitive permutation combinator:
// a set of parsers accepted in any order, each exactly once, with
// optional parsers supplying a default when never matched.
//
// Builder is immutable (Add/AddOptional each return a new instance),
// generalizing the classic "modifiers in any order" grammar
// (New().Add(String("pub")).Add(String("static")).Add(String("final")))
// to any count of same-typed items. Build compiles to a branches-plus-
// forest structure: at each node, one branch per still-unmatched item
// recurses into the forest of the rest, with an escape back to
// OneOf(branches).Or(Return(exit)) once every remaining item is optional.
package perm

import "github.com/cwbudde/go-pidgin/pidgin"

// item is one constituent of a permutation: a parser plus whether it
// may be skipped (and, if so, its default value).
type item[T, R any] struct {
	p        pidgin.Parser[T, R]
	optional bool
	def      R
}

// Builder accumulates items to permute. The zero value is an empty
// builder; use New for clarity at call sites.
type Builder[T, R any] struct {
	items []item[T, R]
}

// New returns an empty Builder.
func New[T, R any]() Builder[T, R] {
	return Builder[T, R]{}
}

// Add returns a new Builder with a required parser appended. Every
// required parser must consume at least one token on success; the
// implementation does not detect a violation of that precondition.
func (b Builder[T, R]) Add(p pidgin.Parser[T, R]) Builder[T, R] {
	next := append(append([]item[T, R]{}, b.items...), item[T, R]{p: p})
	return Builder[T, R]{items: next}
}

// AddOptional returns a new Builder with an optional parser appended;
// def is the value used when this item is never matched.
func (b Builder[T, R]) AddOptional(p pidgin.Parser[T, R], def R) Builder[T, R] {
	next := append(append([]item[T, R]{}, b.items...), item[T, R]{p: p, optional: true, def: def})
	return Builder[T, R]{items: next}
}

// Build compiles the accumulated items into a Parser producing a slice
// indexed by declaration order (position i holds the i-th Add/AddOptional
// call's result), regardless of the order the input actually matched
// them in.
func (b Builder[T, R]) Build() pidgin.Parser[T, []R] {
	remaining := make([]int, len(b.items))
	for i := range remaining {
		remaining[i] = i
	}
	return buildNode(b.items, remaining)
}

func buildNode[T, R any](items []item[T, R], remaining []int) pidgin.Parser[T, []R] {
	n := len(items)

	if len(remaining) == 0 {
		out := make([]R, n)
		return pidgin.Return[T, []R](out)
	}

	allOptional := true
	for _, idx := range remaining {
		if !items[idx].optional {
			allOptional = false
			break
		}
	}

	branches := make([]pidgin.Parser[T, []R], 0, len(remaining))
	for pos, idx := range remaining {
		idxCaptured := idx
		rest := make([]int, 0, len(remaining)-1)
		rest = append(rest, remaining[:pos]...)
		rest = append(rest, remaining[pos+1:]...)

		branches = append(branches, pidgin.Bind(items[idx].p, func(v R) pidgin.Parser[T, []R] {
			return pidgin.Map1(func(sub []R) []R {
				out := make([]R, n)
				copy(out, sub)
				out[idxCaptured] = v
				return out
			}, buildNode(items, rest))
		}))
	}

	if allOptional {
		exit := make([]R, n)
		for _, idx := range remaining {
			exit[idx] = items[idx].def
		}
		return pidgin.Or(pidgin.OneOf(branches...), pidgin.Return[T, []R](exit))
	}
	return pidgin.OneOf(branches...)
}
