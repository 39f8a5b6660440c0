// Package e2e reproduces the library's worked end-to-end scenarios
// directly, plus (in script_test.go) a testscript-driven harness that
// drives the cmd/pidgin binary for the scenarios that are naturally
// expressed as CLI invocations.
package e2e

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-pidgin/config"
	"github.com/cwbudde/go-pidgin/perr"
	"github.com/cwbudde/go-pidgin/pidgin"
	"github.com/cwbudde/go-pidgin/pidgin/perm"
	"github.com/cwbudde/go-pidgin/position"
	"github.com/cwbudde/go-pidgin/token"
)

func charCfg() *config.Config[rune] {
	return config.New(config.WithPositionCalculator(config.CharPositionCalculator(1)))
}

func parse[R any](p pidgin.Parser[rune, R], input string) (R, error) {
	return pidgin.Parse(p, token.NewRunes(input), charCfg())
}

func renderErr(t *testing.T, err error) string {
	t.Helper()
	pe, ok := err.(*perr.ParseError[rune])
	if !ok {
		t.Fatalf("error type = %T, want *perr.ParseError[rune]", err)
	}
	return pe.Render(position.Start, func(r rune) string { return string(r) })
}

// Scenario 1: alternation without backtracking.
func TestAlternationWithoutBacktracking(t *testing.T) {
	p := pidgin.Or(pidgin.String("food"), pidgin.String("foul"))
	_, err := parse(p, "foul")
	if err == nil {
		t.Fatal("expected failure: String(\"food\") consumes \"fo\" before diverging, committing Or")
	}
	msg := renderErr(t, err)
	if !strings.Contains(msg, "unexpected u") || !strings.Contains(msg, "col 3") {
		t.Errorf("render = %q, want it to mention unexpected u at col 3", msg)
	}
	if !strings.Contains(msg, "food") {
		t.Errorf("render = %q, want it to mention the expected literal \"food\"", msg)
	}
}

// Scenario 2: Try restores the alternative lost to commitment above.
func TestAlternationWithTry(t *testing.T) {
	p := pidgin.Or(pidgin.Try(pidgin.String("food")), pidgin.String("foul"))
	v, err := parse(p, "foul")
	if err != nil {
		t.Fatalf("Try should let Or fall back to the second alternative: %v", err)
	}
	if v != "foul" {
		t.Errorf("result = %q, want %q", v, "foul")
	}
}

// Scenario 3: self-recursive nested parens via Rec.
func TestNestedParens(t *testing.T) {
	digit := pidgin.Satisfy[rune](func(r rune) bool { return r >= '0' && r <= '9' })
	var expr pidgin.Parser[rune, rune]
	expr = pidgin.Rec(func() pidgin.Parser[rune, rune] {
		paren := pidgin.Before(pidgin.Then(pidgin.Token('('), expr), pidgin.Token(')'))
		return pidgin.Or(digit, paren)
	})

	for _, in := range []string{"1", "(1)", "(((1)))"} {
		v, err := parse(expr, in)
		if err != nil {
			t.Fatalf("parse(%q) failed: %v", in, err)
		}
		if v != '1' {
			t.Errorf("parse(%q) = %q, want '1'", in, v)
		}
	}

	_, err := parse(expr, "(1")
	if err == nil {
		t.Fatal("unbalanced parens should fail")
	}
	msg := renderErr(t, err)
	if !strings.Contains(msg, "unexpected end of input") || !strings.Contains(msg, "col 3") || !strings.Contains(msg, "expected )") {
		t.Errorf("render = %q, want unexpected end of input at col 3, expected )", msg)
	}
}

// Scenario 4: context-sensitive parsing via Bind.
func TestContextSensitiveBind(t *testing.T) {
	p := pidgin.Bind(pidgin.Any[rune](), func(c rune) pidgin.Parser[rune, rune] {
		return pidgin.Token(c)
	})

	v, err := parse(p, "aa")
	if err != nil || v != 'a' {
		t.Fatalf("parse(\"aa\") = (%q, %v), want ('a', nil)", v, err)
	}

	_, err = parse(p, "ab")
	if err == nil {
		t.Fatal("parse(\"ab\") should fail: second 'a' never arrives")
	}
	msg := renderErr(t, err)
	if !strings.Contains(msg, "unexpected b") || !strings.Contains(msg, "col 2") || !strings.Contains(msg, "expected a") {
		t.Errorf("render = %q, want unexpected b at col 2, expected a", msg)
	}
}

// Scenario 6: permutation of modifiers, exercised through pidgin/perm.
func TestPermutationOfModifiers(t *testing.T) {
	word := func(s string) pidgin.Parser[rune, string] {
		return pidgin.Or(pidgin.Try(pidgin.Then(pidgin.Token(' '), pidgin.String(s))), pidgin.String(s))
	}
	mods := perm.New[rune, string]().
		Add(word("pub")).
		Add(word("static")).
		Add(word("final")).
		Build()

	for _, in := range []string{
		"pub static final",
		"static final pub",
		"final pub static",
	} {
		got, err := parse(mods, in)
		if err != nil {
			t.Fatalf("parse(%q) failed: %v", in, err)
		}
		want := []string{"pub", "static", "final"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("parse(%q)[%d] = %q, want %q", in, i, got[i], want[i])
			}
		}
	}

	_, err := parse(pidgin.Before(mods, pidgin.End[rune]()), "pub static")
	if err == nil {
		t.Fatal("missing required modifier should fail")
	}
}

// Scenario 7: newline-aware position tracking.
func TestPositionTracking(t *testing.T) {
	type step struct {
		r   rune
		pos position.Position
	}
	p := pidgin.Map2(func(s []step, last position.Position) position.Position { return last },
		pidgin.Repeat(pidgin.Map2(func(r rune, pos position.Position) step { return step{r, pos} }, pidgin.Any[rune](), pidgin.CurrentPos[rune]()), 3),
		pidgin.CurrentPos[rune](),
	)

	got, err := parse(p, "ab\ncd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Line != 2 || got.Col != 1 {
		t.Errorf("position after 3 runes = %+v, want line=2 col=1", got)
	}

	p4 := pidgin.Map2(func(s []step, last position.Position) position.Position { return last },
		pidgin.Repeat(pidgin.Map2(func(r rune, pos position.Position) step { return step{r, pos} }, pidgin.Any[rune](), pidgin.CurrentPos[rune]()), 4),
		pidgin.CurrentPos[rune](),
	)
	got4, err := parse(p4, "ab\ncd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got4.Line != 2 || got4.Col != 2 {
		t.Errorf("position after 4 runes = %+v, want line=2 col=2", got4)
	}
}
