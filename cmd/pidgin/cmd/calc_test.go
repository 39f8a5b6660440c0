package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), runErr
}

func TestRunCalc(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		wantStdout string
		wantErr    bool
	}{
		{name: "addition", expr: "1+2", wantStdout: "3\n"},
		{name: "precedence", expr: "2+3*4", wantStdout: "14\n"},
		{name: "parens", expr: "(2+3)*4", wantStdout: "20\n"},
		{name: "parse error", expr: "1+", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := captureStdout(t, func() error {
				return runCalc(calcCmd, []string{tt.expr})
			})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("runCalc(%q) = nil error, want one", tt.expr)
				}
				return
			}
			if err != nil {
				t.Fatalf("runCalc(%q) returned error: %v", tt.expr, err)
			}
			if out != tt.wantStdout {
				t.Errorf("runCalc(%q) stdout = %q, want %q", tt.expr, out, tt.wantStdout)
			}
		})
	}
}

func TestRunCalcErrorMentionsPosition(t *testing.T) {
	_, err := captureStdout(t, func() error {
		return runCalc(calcCmd, []string{"1+"})
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "col") {
		t.Errorf("runCalc error = %q, want it to mention a column", err.Error())
	}
}
