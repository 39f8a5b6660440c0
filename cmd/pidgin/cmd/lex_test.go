package cmd

import (
	"strings"
	"testing"
)

func TestLexInput(t *testing.T) {
	oldEval, oldShowPos := evalExpr, showPos
	defer func() { evalExpr, showPos = oldEval, oldShowPos }()

	evalExpr = "ab"
	showPos = true

	out, err := captureStdout(t, func() error {
		return lexInput(lexCmd, nil)
	})
	if err != nil {
		t.Fatalf("lexInput returned error: %v", err)
	}
	if !strings.Contains(out, "@1:1") || !strings.Contains(out, "@1:2") {
		t.Errorf("lexInput output = %q, want positions @1:1 and @1:2", out)
	}
	if !strings.Contains(out, "2 rune(s)") {
		t.Errorf("lexInput output = %q, want a \"2 rune(s)\" summary", out)
	}
}

func TestLexInputRequiresFileOrEval(t *testing.T) {
	oldEval := evalExpr
	defer func() { evalExpr = oldEval }()
	evalExpr = ""

	if _, err := readInput(nil); err == nil {
		t.Fatal("readInput with no args and no -e flag should fail")
	}
}
