package parser

import (
	"github.com/dhamidi/lineq/eqn"
)

const (
	// A numeric literal may carry at most this many digits.
	maxNumberDigits = 20
	// An exponent clause may carry at most this many digits.
	maxExponentDigits = 2
)

// scanner reads one line of input byte by byte. It also latches the first
// error produced while scanning the line; later, less specific errors never
// overwrite an earlier one.
type scanner struct {
	input     []byte
	pos       int
	status    eqn.Status
	errOffset int
}

func newScanner(input []byte) *scanner {
	return &scanner{input: input}
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) advance() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	ch := s.input[s.pos]
	s.pos++
	return ch
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.input)
}

// fail records status at the current position unless an earlier error is
// already latched. It always returns false so scan routines can fail in a
// single statement.
func (s *scanner) fail(status eqn.Status) bool {
	if s.status == eqn.Success {
		s.status = status
		s.errOffset = s.pos
	}
	return false
}

func (s *scanner) outcome() eqn.Outcome {
	return eqn.Outcome{Status: s.status, Offset: s.errOffset}
}

func (s *scanner) skipSpaces() {
	for {
		ch := s.peek()
		if ch == ' ' || ch == '\t' {
			s.advance()
		} else {
			break
		}
	}
}

// scanSign consumes at most one leading '+' or '-'. It reports whether a
// sign was present and, if so, whether it was negative.
func (s *scanner) scanSign() (present, negative bool) {
	switch s.peek() {
	case '+':
		s.advance()
		return true, false
	case '-':
		s.advance()
		return true, true
	}
	return false, false
}

// scanNumber consumes a maximal run of digits and at most one decimal point,
// in any interleaving. A bare '.' with no digits is not a number. More than
// maxNumberDigits digits latches TooManyDigits just past the offending digit;
// a second '.' latches MultipleDecimalPoints at the '.' itself.
func (s *scanner) scanNumber() (literal string, found bool) {
	start := s.pos
	digits := 0
	seenDot := false
	for {
		ch := s.peek()
		switch {
		case isDigit(ch):
			s.advance()
			digits++
			if digits > maxNumberDigits {
				s.fail(eqn.TooManyDigits)
				return "", false
			}
		case ch == '.':
			if seenDot {
				s.fail(eqn.MultipleDecimalPoints)
				return "", false
			}
			seenDot = true
			s.advance()
		default:
			if digits == 0 {
				return "", false
			}
			return string(s.input[start:s.pos]), true
		}
	}
}

// scanExponent consumes the body of an exponent clause, the '^' having
// already been consumed: an optional sign and one or two digits. The result
// is returned as an "e±NN" suffix ready to append to a numeric literal.
func (s *scanner) scanExponent() (suffix string, found bool) {
	_, negative := s.scanSign()
	start := s.pos
	for isDigit(s.peek()) {
		s.advance()
		if s.pos-start > maxExponentDigits {
			s.fail(eqn.IllegalExponent)
			return "", false
		}
	}
	if s.pos == start {
		s.fail(eqn.MissingExponent)
		return "", false
	}
	e := "e"
	if negative {
		e = "e-"
	}
	return e + string(s.input[start:s.pos]), true
}

// scanVariableName consumes a maximal run of ASCII letters and underscores.
// Case is preserved; names compare case-sensitively.
func (s *scanner) scanVariableName() (name string, found bool) {
	start := s.pos
	for isVariableChar(s.peek()) {
		s.advance()
	}
	if s.pos == start {
		return "", false
	}
	return string(s.input[start:s.pos]), true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isVariableChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
