package perr

import (
	"fmt"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-pidgin/position"
)

// TokenRenderer turns a single token into its display form. For char
// tokens this should quote the character; for other token types a
// %v-style rendering is usually fine. Render takes the renderer from
// its caller; Error, which has none, falls back to a %v rendering.
type TokenRenderer[T any] func(T) string

// ParseError is the structured failure value every combinator in this
// library reports through, never panics with. It is immutable and
// value-comparable (Equal treats Expected as a multiset, so Hash must
// do the same or it would disagree with Equal on reordered slices).
type ParseError[T any] struct {
	Unexpected    *T
	AtEOF         bool
	Expected      []Expectation[T]
	PositionDelta position.Delta
	Message       string
	HasMessage    bool
}

// Error renders the message in the library's standard multi-line form:
//
//	Parse error.
//	    <message>?
//	    unexpected <token|EOF>?
//	    expected <list>?
//	    at line L, col C
//
// Rendering is not part of the programmatic contract (ParseError's
// fields are); this is the convenience form used by ParseException.
func (e *ParseError[T]) Error() string {
	return e.Render(position.Start, func(t T) string { return fmt.Sprintf("%v", t) })
}

// Render formats the error using a caller-supplied token renderer and
// the position of the start of input (added to e.PositionDelta to get
// an absolute line/col).
func (e *ParseError[T]) Render(origin position.Position, tok TokenRenderer[T]) string {
	pos := origin.Add(e.PositionDelta)
	var sb strings.Builder
	sb.WriteString("Parse error.\n")
	if e.HasMessage {
		fmt.Fprintf(&sb, "    %s\n", e.Message)
	}
	if e.AtEOF {
		sb.WriteString("    unexpected end of input\n")
	} else if e.Unexpected != nil {
		fmt.Fprintf(&sb, "    unexpected %s\n", tok(*e.Unexpected))
	}
	if list := joinExpected(e.Expected, tok); list != "" {
		fmt.Fprintf(&sb, "    expected %s\n", list)
	}
	fmt.Fprintf(&sb, "    at line %d, col %d", pos.Line, pos.Col)
	return sb.String()
}

// Equal compares two ParseErrors treating Expected as an unordered
// multiset keyed by content: order is ignored, duplicates count.
func (e *ParseError[T]) Equal(o *ParseError[T], tok TokenRenderer[T]) bool {
	if e.AtEOF != o.AtEOF || e.HasMessage != o.HasMessage || e.Message != o.Message {
		return false
	}
	if e.PositionDelta != o.PositionDelta {
		return false
	}
	switch {
	case e.Unexpected == nil && o.Unexpected != nil, e.Unexpected != nil && o.Unexpected == nil:
		return false
	case e.Unexpected != nil && o.Unexpected != nil:
		if tok(*e.Unexpected) != tok(*o.Unexpected) {
			return false
		}
	}
	if len(e.Expected) != len(o.Expected) {
		return false
	}
	counts := make(map[string]int, len(e.Expected))
	for _, x := range e.Expected {
		counts[key(x, tok)]++
	}
	for _, x := range o.Expected {
		k := key(x, tok)
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}
	return true
}

// Hash is a commutative hash over Expected (order-independent, matching
// Equal's multiset semantics), combined with the rest of the error's
// fields via FNV-1a-style mixing.
func (e *ParseError[T]) Hash(tok TokenRenderer[T]) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211

	mix := func(h uint64, s string) uint64 {
		for i := 0; i < len(s); i++ {
			h ^= uint64(s[i])
			h *= prime64
		}
		return h
	}

	var sum uint64
	for _, x := range e.Expected {
		sum += mix(offset64, key(x, tok)) // sum: commutative, order-independent
	}

	h := uint64(offset64)
	if e.AtEOF {
		h = mix(h, "eof")
	}
	if e.Unexpected != nil {
		h = mix(h, "u:"+tok(*e.Unexpected))
	}
	if e.HasMessage {
		h = mix(h, "m:"+e.Message)
	}
	h = mix(h, fmt.Sprintf("d:%d,%d", e.PositionDelta.Lines, e.PositionDelta.Cols))
	return h + sum
}

// MarshalJSON renders the structured error as JSON, built with sjson
// rather than struct tags (so a caller using gjson to pick fields out
// of a diagnostics stream sees plain scalar/array values, not a Go-type
// shaped document). Unexpected and every Tokens expectation render
// through the supplied TokenRenderer; Message is written as-is.
func (e *ParseError[T]) MarshalJSON(tok TokenRenderer[T]) ([]byte, error) {
	doc := []byte(`{}`)
	var err error

	doc, err = sjson.SetBytes(doc, "atEof", e.AtEOF)
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, "positionDelta.lines", e.PositionDelta.Lines)
	if err != nil {
		return nil, err
	}
	doc, err = sjson.SetBytes(doc, "positionDelta.cols", e.PositionDelta.Cols)
	if err != nil {
		return nil, err
	}
	if e.Unexpected != nil {
		doc, err = sjson.SetBytes(doc, "unexpected", tok(*e.Unexpected))
		if err != nil {
			return nil, err
		}
	}
	if e.HasMessage {
		doc, err = sjson.SetBytes(doc, "message", e.Message)
		if err != nil {
			return nil, err
		}
	}
	expected := make([]string, len(e.Expected))
	for i, x := range e.Expected {
		expected[i] = render(x, tok)
	}
	doc, err = sjson.SetBytes(doc, "expected", expected)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseException is raised by ParseOrPanic on parse failure; it is the
// panic/recover analogue of the source library's parseOrThrow, carrying
// the structured ParseError instead of a new, separately-shaped error.
type ParseException[T any] struct {
	Err *ParseError[T]
	msg string
}

// NewParseException renders Err up front (origin/tok are needed once,
// at the panic site, not on every later Error() call).
func NewParseException[T any](err *ParseError[T], origin position.Position, tok TokenRenderer[T]) *ParseException[T] {
	return &ParseException[T]{Err: err, msg: err.Render(origin, tok)}
}

func (e *ParseException[T]) Error() string { return e.msg }
