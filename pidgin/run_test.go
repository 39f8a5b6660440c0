package pidgin

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-pidgin/perr"
	"github.com/cwbudde/go-pidgin/token"
)

func TestParseSuccess(t *testing.T) {
	v, err := parseRunes(Token('a'), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 'a' {
		t.Errorf("Parse result = %q, want 'a'", v)
	}
}

func TestParseFailureReturnsStructuredError(t *testing.T) {
	_, err := parseRunes(Token('a'), "b")
	if err == nil {
		t.Fatal("expected a failure")
	}
	if _, ok := err.(*perr.ParseError[rune]); !ok {
		t.Fatalf("error type = %T, want *perr.ParseError[rune]", err)
	}
}

func TestParseUsesDefaultConfigWhenNil(t *testing.T) {
	v, err := Parse[rune, rune](Token('a'), token.NewRunes("a"), nil)
	if err != nil {
		t.Fatalf("unexpected error with nil config: %v", err)
	}
	if v != 'a' {
		t.Errorf("Parse with nil config result = %q, want 'a'", v)
	}
}

func TestParseOrPanicPanicsOnFailure(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("ParseOrPanic should panic on failure")
		}
		exc, ok := r.(*perr.ParseException[rune])
		if !ok {
			t.Fatalf("recovered value is %T, want *perr.ParseException[rune]", r)
		}
		if !strings.Contains(exc.Error(), "Parse error") {
			t.Errorf("ParseException.Error() = %q, want it to contain 'Parse error'", exc.Error())
		}
	}()
	renderer := func(r rune) string { return string(r) }
	ParseOrPanic[rune, rune](Token('a'), token.NewRunes("b"), runeCfg(), renderer)
}

func TestParseOrPanicReturnsValueOnSuccess(t *testing.T) {
	renderer := func(r rune) string { return string(r) }
	v := ParseOrPanic[rune, rune](Token('a'), token.NewRunes("a"), runeCfg(), renderer)
	if v != 'a' {
		t.Errorf("ParseOrPanic result = %q, want 'a'", v)
	}
}
