package config

import (
	"testing"

	"github.com/cwbudde/go-pidgin/position"
)

func TestNewDefaults(t *testing.T) {
	c := New[rune]()
	if c.Pool == nil {
		t.Fatal("New() should set a default Pool")
	}
	if got := c.PosCalc('x'); got != position.OneCol {
		t.Errorf("default PosCalc('x') = %v, want %v", got, position.OneCol)
	}
}

func TestWithPositionCalculator(t *testing.T) {
	c := New(WithPositionCalculator(CharPositionCalculator(4)))
	if got := c.PosCalc('\t'); got != (position.Delta{Cols: 4}) {
		t.Errorf("PosCalc('\\t') = %v, want {Cols: 4}", got)
	}
	if got := c.PosCalc('\n'); got != position.NewLine {
		t.Errorf("PosCalc('\\n') = %v, want %v", got, position.NewLine)
	}
	if got := c.PosCalc('a'); got != position.OneCol {
		t.Errorf("PosCalc('a') = %v, want %v", got, position.OneCol)
	}
}

func TestCharPositionCalculatorNoTabExpansion(t *testing.T) {
	calc := CharPositionCalculator(0)
	if got := calc('\t'); got != position.OneCol {
		t.Errorf("tabWidth=0: PosCalc('\\t') = %v, want %v", got, position.OneCol)
	}
}
