package grammar

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, kind := range tokenKinds {
		if _, ok := g[kind]; !ok {
			t.Errorf("grammar is missing production %q", kind)
		}
	}
}

func TestSource(t *testing.T) {
	if !strings.Contains(Source(), StartProduction) {
		t.Errorf("Source() does not mention %q", StartProduction)
	}
}

func TestLexerTokenize(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		input string
		kinds []string
	}{
		{
			input: "x + 12.5y = 3",
			kinds: []string{"variable", "space", "sign", "space", "number", "variable", "space", "equals", "space", "number"},
		},
		{
			input: "2^-3",
			kinds: []string{"number", "caret", "sign", "number"},
		},
		{
			input: ".5x",
			kinds: []string{"number", "variable"},
		},
		{
			input: "a_b=1\n",
			kinds: []string{"variable", "equals", "number", "space"},
		},
		{
			input: "x?y",
			kinds: []string{"variable", "ERROR", "variable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := NewLexer(g, []byte(tt.input)).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			var kinds []string
			for _, tok := range tokens {
				kinds = append(kinds, tok.Kind)
			}
			if strings.Join(kinds, " ") != strings.Join(tt.kinds, " ") {
				t.Errorf("Tokenize() kinds = %v, want %v", kinds, tt.kinds)
			}
		})
	}
}

func TestLexerLongestMatch(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tokens, err := NewLexer(g, []byte("12.5")).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	if tokens[0].Kind != "number" || tokens[0].Literal != "12.5" {
		t.Errorf("token = %v, want number %q", tokens[0], "12.5")
	}
}

func TestLexerOffsets(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tokens, err := NewLexer(g, []byte("x=1")).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	wantOffsets := []int{0, 1, 2}
	for i, tok := range tokens {
		if tok.Offset != wantOffsets[i] {
			t.Errorf("tokens[%d].Offset = %d, want %d", i, tok.Offset, wantOffsets[i])
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: "number", Literal: "12", Offset: 3}
	if got := tok.String(); got != `3 number "12"` {
		t.Errorf("String() = %q, want %q", got, `3 number "12"`)
	}
}
