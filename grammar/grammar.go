// Package grammar carries the EBNF description of the equation language and
// a grammar-driven reference tokenizer. The hand-written scanners in
// eqn/parser are the production lexer; this package exists so the language
// definition stays written down and testable against them.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed eqn.ebnf
var grammarText []byte

// StartProduction is the root of the embedded grammar.
const StartProduction = "Document"

// tokenKinds lists the lexical productions the reference tokenizer tries,
// most specific first; the longest match wins.
var tokenKinds = []string{"number", "variable", "sign", "equals", "caret", "space"}

// Load parses and verifies the embedded grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("eqn.ebnf", bytes.NewReader(grammarText))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, StartProduction); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Source returns the embedded grammar text.
func Source() string {
	return string(grammarText)
}

// Token is one lexeme recognized by the reference tokenizer. Offset is the
// byte index within the input.
type Token struct {
	Kind    string
	Literal string
	Offset  int
}

func (t Token) String() string {
	return fmt.Sprintf("%d %s %q", t.Offset, t.Kind, t.Literal)
}

// Lexer tokenizes input by matching the grammar's lexical productions.
type Lexer struct {
	grammar  ebnf.Grammar
	input    []byte
	pos      int
	visiting map[visitKey]bool
}

type visitKey struct {
	name   string
	offset int
}

func NewLexer(g ebnf.Grammar, input []byte) *Lexer {
	return &Lexer{grammar: g, input: input}
}

// Next returns the next token. It returns io.EOF once the input is
// exhausted. A byte no production matches is emitted as a single-character
// ERROR token.
func (l *Lexer) Next() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: "EOF", Offset: l.pos}, io.EOF
	}

	start := l.pos
	bestKind := ""
	bestLen := 0
	for _, kind := range tokenKinds {
		prod, ok := l.grammar[kind]
		if !ok || prod.Expr == nil {
			continue
		}
		l.visiting = make(map[visitKey]bool)
		if n := l.match(prod.Expr, start); n > bestLen {
			bestKind = kind
			bestLen = n
		}
	}

	if bestLen == 0 {
		l.pos++
		return Token{Kind: "ERROR", Literal: string(l.input[start : start+1]), Offset: start}, nil
	}

	l.pos += bestLen
	return Token{Kind: bestKind, Literal: string(l.input[start:l.pos]), Offset: start}, nil
}

// Tokenize reads all tokens from the input, dropping the trailing EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// match returns the length of the longest match of expr at offset, or 0.
func (l *Lexer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		s := strings.Trim(e.String, "\"")
		if offset+len(s) > len(l.input) {
			return 0
		}
		if string(l.input[offset:offset+len(s)]) == s {
			return len(s)
		}
		return 0

	case *ebnf.Range:
		begin := strings.Trim(e.Begin.String, "\"")
		end := strings.Trim(e.End.String, "\"")
		if offset >= len(l.input) || len(begin) != 1 || len(end) != 1 {
			return 0
		}
		if ch := l.input[offset]; ch >= begin[0] && ch <= end[0] {
			return 1
		}
		return 0

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.match(item, offset+total)
			if n == 0 {
				return 0
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := 0
		for _, alt := range e {
			if n := l.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.match(e.Body, offset+total)
			if n == 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		return l.match(e.Body, offset)

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Name:
		key := visitKey{name: e.String, offset: offset}
		if l.visiting[key] {
			return 0
		}
		prod, ok := l.grammar[e.String]
		if !ok || prod.Expr == nil {
			return 0
		}
		l.visiting[key] = true
		n := l.match(prod.Expr, offset)
		delete(l.visiting, key)
		return n
	}
	return 0
}
