package pidgin

import (
	"github.com/cwbudde/go-pidgin/config"
	"github.com/cwbudde/go-pidgin/internal/ipool"
	"github.com/cwbudde/go-pidgin/perr"
	"github.com/cwbudde/go-pidgin/position"
	"github.com/cwbudde/go-pidgin/state"
	"github.com/cwbudde/go-pidgin/token"
)

// Parse runs p once over src under cfg (or config.New[T]() defaults
// when cfg is nil). It never panics on a parse failure: the failure
// surfaces as a non-nil error whose concrete type is *perr.ParseError[T].
func Parse[T, R any](p Parser[T, R], src token.Source[T], cfg *config.Config[T]) (R, error) {
	if cfg == nil {
		cfg = config.New[T]()
	}
	s := state.New(src, cfg)
	exp := ipool.New(s.Pool())
	defer exp.Release()

	v, ok := p.try(s, exp)
	if ok {
		return v, nil
	}
	var zero R
	return zero, s.BuildError(exp)
}

// ParseOrPanic runs Parse and panics with a *perr.ParseException[T] on
// failure, rendered with tok. It is the panic/recover analogue of the
// source library's parseOrThrow.
func ParseOrPanic[T, R any](p Parser[T, R], src token.Source[T], cfg *config.Config[T], tok perr.TokenRenderer[T]) R {
	v, err := Parse(p, src, cfg)
	if err == nil {
		return v
	}
	pe := err.(*perr.ParseError[T])
	panic(perr.NewParseException(pe, position.Start, tok))
}
