package perr

import "testing"

func renderRune(r rune) string { return string(r) }

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Expectation[rune]
		want bool
	}{
		{"label before tokens", Lbl[rune]("digit"), Toks[rune]([]rune{'a'}), true},
		{"tokens before eof", Toks[rune]([]rune{'a'}), EOF[rune](), true},
		{"eof not before label", EOF[rune](), Lbl[rune]("digit"), false},
		{"labels lexicographic", Lbl[rune]("alpha"), Lbl[rune]("beta"), true},
		{"tokens element-wise", Toks[rune]([]rune{'a'}), Toks[rune]([]rune{'b'}), true},
		{"shorter tokens sort first on common prefix", Toks[rune]([]rune{'a'}), Toks[rune]([]rune{'a', 'b'}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Less(tt.a, tt.b, renderRune); got != tt.want {
				t.Errorf("Less(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Lbl[rune]("x"), Lbl[rune]("x"), renderRune) {
		t.Error("identical labels should be Equal")
	}
	if Equal(Lbl[rune]("x"), Lbl[rune]("y"), renderRune) {
		t.Error("different labels should not be Equal")
	}
	if !Equal(Toks[rune]([]rune{'a', 'b'}), Toks[rune]([]rune{'a', 'b'}), renderRune) {
		t.Error("identical token sequences should be Equal")
	}
	if Equal(Lbl[rune]("x"), EOF[rune](), renderRune) {
		t.Error("different kinds should not be Equal")
	}
	if !Equal(EOF[rune](), EOF[rune](), renderRune) {
		t.Error("EOF should equal EOF")
	}
}

func TestJoinExpectedGrammar(t *testing.T) {
	tests := []struct {
		name string
		es   []Expectation[rune]
		want string
	}{
		{"empty", nil, ""},
		{"single", []Expectation[rune]{Lbl[rune]("digit")}, "digit"},
		{"two joined with or", []Expectation[rune]{Lbl[rune]("digit"), Lbl[rune]("letter")}, "digit, or letter"},
		{
			"three joined with commas and final or",
			[]Expectation[rune]{Lbl[rune]("digit"), Lbl[rune]("letter"), EOF[rune]()},
			"digit, letter, or end of input",
		},
		{
			"duplicates collapsed",
			[]Expectation[rune]{Lbl[rune]("digit"), Lbl[rune]("digit")},
			"digit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinExpected(tt.es, renderRune); got != tt.want {
				t.Errorf("joinExpected(%v) = %q, want %q", tt.es, got, tt.want)
			}
		})
	}
}

func TestJoinExpectedNaturalOrder(t *testing.T) {
	es := []Expectation[rune]{Lbl[rune]("item10"), Lbl[rune]("item2")}
	got := joinExpected(es, renderRune)
	want := "item2, or item10"
	if got != want {
		t.Errorf("joinExpected natural order = %q, want %q", got, want)
	}
}
