// Package state implements the buffered token cursor every combinator
// reads from and mutates, named State to avoid stuttering on the
// package name.
package state

import (
	"github.com/cwbudde/go-pidgin/config"
	"github.com/cwbudde/go-pidgin/internal/ipool"
	"github.com/cwbudde/go-pidgin/perr"
	"github.com/cwbudde/go-pidgin/position"
	"github.com/cwbudde/go-pidgin/token"
)

// State is a mutable cursor over a token.Source. It lives for exactly
// one top-level parse and is not safe for concurrent use.
type State[T any] struct {
	src token.Source[T]
	ra  token.RandomAccess[T] // non-nil fast path when src supports it
	cfg *config.Config[T]

	// sequential-source buffering (unused when ra != nil)
	buf       []T
	bufBase   int
	exhausted bool
	totalLen  int // valid once exhausted (sequential) or always (ra)

	location int

	bookmarks []int // stack of saved locations, increasing

	// position-delta cache window: invariant len(deltaWin) == location-winBase
	winBase   int
	deltaWin  []position.Delta
	baseDelta position.Delta

	errSet        bool
	errUnexpected *T
	errAtEOF      bool
	errLocation   int
	errMessage    string
	errHasMessage bool
}

// New builds a State reading from src under cfg.
func New[T any](src token.Source[T], cfg *config.Config[T]) *State[T] {
	s := &State[T]{src: src, cfg: cfg}
	if ra, ok := src.(token.RandomAccess[T]); ok {
		s.ra = ra
		s.totalLen = ra.Len()
		s.exhausted = true
	}
	return s
}

// Location is the monotonically non-decreasing (outside Rewind) cursor
// index into the token stream.
func (s *State[T]) Location() int { return s.location }

func (s *State[T]) ensureBuffered(upTo int) {
	if s.ra != nil || s.exhausted {
		return
	}
	for s.bufBase+len(s.buf) < upTo {
		tok, ok := s.src.Next()
		if !ok {
			s.exhausted = true
			s.totalLen = s.bufBase + len(s.buf)
			return
		}
		s.buf = append(s.buf, tok)
	}
}

func (s *State[T]) readAt(i int) (T, bool) {
	if s.ra != nil {
		return s.ra.At(i)
	}
	s.ensureBuffered(i + 1)
	if i < s.bufBase || i-s.bufBase >= len(s.buf) {
		var zero T
		return zero, false
	}
	return s.buf[i-s.bufBase], true
}

// HasCurrent reports whether there is a token at the read position.
func (s *State[T]) HasCurrent() bool {
	_, ok := s.readAt(s.location)
	return ok
}

// Current returns the token at the read position. Only call this after
// checking HasCurrent (or use TryCurrent).
func (s *State[T]) Current() T {
	t, _ := s.readAt(s.location)
	return t
}

// TryCurrent returns the token at the read position and whether one
// exists.
func (s *State[T]) TryCurrent() (T, bool) {
	return s.readAt(s.location)
}

// At returns the token at an arbitrary location, which must still be
// within the retained window (current location, or covered by an
// active bookmark). Used by combinators such as Not that need to
// report a token at a location the cursor has since moved past.
func (s *State[T]) At(loc int) (T, bool) {
	return s.readAt(loc)
}

// LookAhead returns up to n tokens beginning at the cursor. The
// returned slice is a fresh copy, safe to retain.
func (s *State[T]) LookAhead(n int) []T {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		t, ok := s.readAt(s.location + i)
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}

// Advance moves the cursor forward by n tokens, folding each consumed
// token's position delta (via the configured PosCalc) into the running
// cache used by ComputeSourcePosDelta[At].
func (s *State[T]) Advance(n int) {
	for i := 0; i < n; i++ {
		idx := s.location + i
		tok, ok := s.readAt(idx)
		if !ok {
			break // advancing past the end is a no-op past this point
		}
		last := s.baseDelta
		if len(s.deltaWin) > 0 {
			last = s.deltaWin[len(s.deltaWin)-1]
		}
		s.deltaWin = append(s.deltaWin, last.Add(s.cfg.PosCalc(tok)))
	}
	s.location += n
	s.releaseUnneeded()
}

// PushBookmark snapshots the current location, beginning or extending
// a buffering region that Rewind can later restore to.
func (s *State[T]) PushBookmark() {
	s.bookmarks = append(s.bookmarks, s.location)
}

// Rewind restores the most recently pushed bookmark and drops it.
func (s *State[T]) Rewind() {
	n := len(s.bookmarks)
	if n == 0 {
		return
	}
	s.location = s.bookmarks[n-1]
	s.bookmarks = s.bookmarks[:n-1]
	s.truncateDeltaWin()
	s.releaseUnneeded()
}

// truncateDeltaWin drops cached deltas for locations past the cursor,
// restoring the invariant len(deltaWin) == location-winBase after
// Rewind has lowered location. Without this, Advance would resume
// appending onto a stale tail left over from the abandoned branch.
func (s *State[T]) truncateDeltaWin() {
	if keep := s.location - s.winBase; keep < len(s.deltaWin) {
		s.deltaWin = s.deltaWin[:keep]
	}
}

// PopBookmark discards the most recently pushed bookmark without
// restoring the cursor.
func (s *State[T]) PopBookmark() {
	n := len(s.bookmarks)
	if n == 0 {
		return
	}
	s.bookmarks = s.bookmarks[:n-1]
	s.releaseUnneeded()
}

// releaseUnneeded drops buffered tokens and cached position deltas
// before the earliest still-active bookmark (or the current location
// if none are active).
func (s *State[T]) releaseUnneeded() {
	minKeep := s.location
	if len(s.bookmarks) > 0 {
		minKeep = s.bookmarks[0]
	}

	if s.ra == nil {
		if drop := minKeep - s.bufBase; drop > 0 {
			s.buf = s.buf[drop:]
			s.bufBase += drop
		}
	}
	if drop := minKeep - s.winBase; drop > 0 {
		if drop <= len(s.deltaWin) {
			s.baseDelta = s.deltaWin[drop-1]
		}
		s.deltaWin = s.deltaWin[drop:]
		s.winBase += drop
	}
}

// SetError writes the error slot. Intermediate combinators may
// overwrite it; it is only meaningful once the top-level call returns
// failure.
func (s *State[T]) SetError(unexpected *T, atEOF bool, location int, message string, hasMessage bool) {
	s.errSet = true
	s.errUnexpected = unexpected
	s.errAtEOF = atEOF
	s.errLocation = location
	s.errMessage = message
	s.errHasMessage = hasMessage
}

// BuildError materializes a ParseError from the current error slot plus
// the expectation buffer the caller collected, and the position delta
// at the error's location.
func (s *State[T]) BuildError(expecteds *ipool.List[perr.Expectation[T]]) *perr.ParseError[T] {
	exp := expecteds.AsSlice()
	cp := make([]perr.Expectation[T], len(exp))
	copy(cp, exp)
	return &perr.ParseError[T]{
		Unexpected:    s.errUnexpected,
		AtEOF:         s.errAtEOF,
		Expected:      cp,
		PositionDelta: s.ComputeSourcePosDeltaAt(s.errLocation),
		Message:       s.errMessage,
		HasMessage:    s.errHasMessage,
	}
}

// ComputeSourcePosDelta returns the position delta from input start to
// the current location.
func (s *State[T]) ComputeSourcePosDelta() position.Delta {
	return s.ComputeSourcePosDeltaAt(s.location)
}

// ComputeSourcePosDeltaAt returns the position delta from input start
// to the given location.
func (s *State[T]) ComputeSourcePosDeltaAt(loc int) position.Delta {
	if loc <= s.winBase {
		return s.baseDelta
	}
	if loc > s.location {
		loc = s.location
	}
	idx := loc - s.winBase - 1
	if idx < 0 || idx >= len(s.deltaWin) {
		if len(s.deltaWin) == 0 {
			return s.baseDelta
		}
		return s.deltaWin[len(s.deltaWin)-1]
	}
	return s.deltaWin[idx]
}

// Pool exposes the configured array-pool provider, so combinators can
// rent their own private expectation buffers (ipool.New(s.Pool())).
func (s *State[T]) Pool() *ipool.Provider[perr.Expectation[T]] {
	return s.cfg.Pool
}
