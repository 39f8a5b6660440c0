package perr

import (
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// ExpectationKind tags which variant an Expectation holds.
type ExpectationKind int

const (
	// ExpectLabel names a human-readable expectation attached via a
	// Labelled combinator.
	ExpectLabel ExpectationKind = iota
	// ExpectTokens names a literal token sequence a parser tried to match.
	ExpectTokens
	// ExpectEOF means end of input was expected.
	ExpectEOF
)

// Expectation describes something a parser wanted at its failure point.
// Exactly one of Label/Tokens is meaningful, selected by Kind.
type Expectation[T any] struct {
	Kind   ExpectationKind
	Label  string
	Tokens []T
}

// Lbl builds a Label expectation.
func Lbl[T any](label string) Expectation[T] {
	return Expectation[T]{Kind: ExpectLabel, Label: label}
}

// Toks builds a Tokens expectation.
func Toks[T any](tokens []T) Expectation[T] {
	cp := make([]T, len(tokens))
	copy(cp, tokens)
	return Expectation[T]{Kind: ExpectTokens, Tokens: cp}
}

// EOF is the EOF expectation. Token type is fixed per instantiation, so
// this is a function rather than a shared singleton: a single cached
// value can't serve every T, so it is built lazily and cheaply instead.
func EOF[T any]() Expectation[T] {
	return Expectation[T]{Kind: ExpectEOF}
}

// Less implements a total order over expectations: Label < Tokens <
// EOF; Label compared lexicographically; Tokens compared element-wise
// via render (since T is not necessarily Ordered, callers supply the
// token renderer used to compare and to print).
func Less[T any](a, b Expectation[T], render func(T) string) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	switch a.Kind {
	case ExpectLabel:
		return a.Label < b.Label
	case ExpectTokens:
		n := len(a.Tokens)
		if len(b.Tokens) < n {
			n = len(b.Tokens)
		}
		for i := 0; i < n; i++ {
			ra, rb := render(a.Tokens[i]), render(b.Tokens[i])
			if ra != rb {
				return ra < rb
			}
		}
		return len(a.Tokens) < len(b.Tokens)
	default: // ExpectEOF
		return false
	}
}

// Equal reports whether two expectations describe the same thing.
func Equal[T any](a, b Expectation[T], render func(T) string) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ExpectLabel:
		return a.Label == b.Label
	case ExpectTokens:
		if len(a.Tokens) != len(b.Tokens) {
			return false
		}
		for i := range a.Tokens {
			if render(a.Tokens[i]) != render(b.Tokens[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// key renders an Expectation into a string suitable for deduplication
// and for the order-independent hash/equality of ParseError (§9 Open
// Question resolution).
func key[T any](e Expectation[T], render func(T) string) string {
	switch e.Kind {
	case ExpectLabel:
		return "L:" + e.Label
	case ExpectTokens:
		parts := make([]string, len(e.Tokens))
		for i, t := range e.Tokens {
			parts[i] = render(t)
		}
		return "T:" + strings.Join(parts, "\x1f")
	default:
		return "E"
	}
}

// render returns a display string for one Expectation, using tok for
// individual token rendering.
func render[T any](e Expectation[T], tok func(T) string) string {
	switch e.Kind {
	case ExpectLabel:
		return e.Label
	case ExpectTokens:
		parts := make([]string, len(e.Tokens))
		for i, t := range e.Tokens {
			parts[i] = tok(t)
		}
		return strings.Join(parts, "")
	default:
		return "end of input"
	}
}

// joinExpected renders a deduplicated list of expectations ", "-joined,
// with ", or " before the final item. Entries are ordered by kind
// (labels, then token sequences, then end of input) and naturally by
// their rendered text within a kind.
func joinExpected[T any](es []Expectation[T], tok func(T) string) string {
	type entry struct {
		kind ExpectationKind
		text string
	}
	seen := make(map[string]bool, len(es))
	entries := make([]entry, 0, len(es))
	for _, e := range es {
		k := key(e, tok)
		if seen[k] {
			continue
		}
		seen[k] = true
		entries = append(entries, entry{e.Kind, render(e, tok)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].kind != entries[j].kind {
			return entries[i].kind < entries[j].kind
		}
		return natural.Less(entries[i].text, entries[j].text)
	})
	labels := make([]string, len(entries))
	for i, en := range entries {
		labels[i] = en.text
	}
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + ", or " + labels[len(labels)-1]
	}
}
