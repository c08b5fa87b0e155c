package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/lineq/eqn"
	"github.com/dhamidi/lineq/eqn/parser"
	"github.com/dhamidi/lineq/solve"
)

func parseSystem(t *testing.T, lines ...string) *eqn.System {
	t.Helper()
	sess := parser.NewSession()
	sys := eqn.NewSystem()
	for i, line := range lines {
		if outcome := sess.ParseLine(line, sys); outcome.Status.IsError() {
			t.Fatalf("line %d: unexpected parse status %v", i, outcome.Status)
		}
	}
	return sys
}

func TestTextEncoder(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "two equations",
			lines: []string{"x + y = 10", "x - y = 2"},
			want:  "x + y = 10\nx - y = 2\n",
		},
		{
			name:  "accumulated coefficient",
			lines: []string{"x + x = 4"},
			want:  "2x = 4\n",
		},
		{
			name:  "leading negative",
			lines: []string{"-x + y = 1"},
			want:  "-x + y = 1\n",
		},
		{
			name:  "non-unit magnitudes",
			lines: []string{"2x - 0.5y = 3"},
			want:  "2x - 0.5y = 3\n",
		},
		{
			name:  "constant folded to right-hand side",
			lines: []string{"x + 5 = 10"},
			want:  "x = 5\n",
		},
		{
			name:  "zero coefficient elided",
			lines: []string{"0x + y = 2"},
			want:  "y = 2\n",
		},
		{
			name:  "no variables left",
			lines: []string{"0x = 0"},
			want:  "0 = 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTextEncoder(&buf).Encode(parseSystem(t, tt.lines...)); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("Encode() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTextHelper(t *testing.T) {
	sys := parseSystem(t, "x + y = 10")
	if got := Text(sys); got != "x + y = 10\n" {
		t.Errorf("Text() = %q, want %q", got, "x + y = 10\n")
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(parseSystem(t, "x + y = 10", "x - y = 2")); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var got jsonSystem
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Equations != 2 {
		t.Errorf("equations = %d, want 2", got.Equations)
	}
	if len(got.Variables) != 2 || got.Variables[0] != "x" || got.Variables[1] != "y" {
		t.Errorf("variables = %v, want [x y]", got.Variables)
	}
	if len(got.Coefficients) != 4 {
		t.Errorf("len(coefficients) = %d, want 4", len(got.Coefficients))
	}
	first := jsonCoefficient{Equation: 0, Variable: "x", Value: 1}
	if got.Coefficients[0] != first {
		t.Errorf("coefficients[0] = %v, want %v", got.Coefficients[0], first)
	}
	// Stored constants are left-hand-side residuals.
	if len(got.Constants) != 2 || got.Constants[0].Value != -10 || got.Constants[1].Value != -2 {
		t.Errorf("constants = %v, want values -10, -2", got.Constants)
	}
}

func TestEncodeSolution(t *testing.T) {
	var buf bytes.Buffer
	sol := &solve.Solution{Vars: []string{"x", "y"}, Values: []float64{6, 4}}
	if err := EncodeSolution(&buf, sol); err != nil {
		t.Fatalf("EncodeSolution() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"name": "x"`, `"value": 6`, `"name": "y"`, `"value": 4`} {
		if !strings.Contains(out, want) {
			t.Errorf("EncodeSolution() output missing %q:\n%s", want, out)
		}
	}
}
