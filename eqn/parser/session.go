// Package parser implements the incremental linear-equation parser. A
// Session consumes text one line at a time and accumulates coefficients,
// constants and variable indices into a caller-owned eqn.System. Session
// state survives across calls, so an equation may span several lines as long
// as every split point is an operator boundary; a single term is never split.
package parser

import (
	"strings"

	"github.com/dhamidi/lineq/eqn"
)

// Mode is the state of the equation-boundary machine.
type Mode int

const (
	// ExpectTerm means the next token must be a term.
	ExpectTerm Mode = iota
	// ExpectOperator means the next token must be '+', '-' or '='.
	ExpectOperator
)

// Session carries the parse state that persists between successive
// ParseLine calls. It is not safe for concurrent use; drive one session per
// document from a single goroutine.
type Session struct {
	mode            Mode
	equation        int
	pendingNegative bool
	equalSeen       bool
	termBeforeEqual bool
	termAfterEqual  bool
	variableSeen    bool
	lastWasOperator bool
}

func NewSession() *Session {
	return &Session{}
}

// Reset returns the session to its initial state, abandoning any partially
// assembled equation and restarting the equation index at zero. Containers
// already filled in are left alone; recovery policy is the caller's.
func (sess *Session) Reset() {
	*sess = Session{}
}

// Equation returns the 0-based index of the equation currently being
// assembled.
func (sess *Session) Equation() int {
	return sess.equation
}

// Mode returns the current state of the boundary machine.
func (sess *Session) Mode() Mode {
	return sess.mode
}

// Pending reports whether a partially assembled equation is waiting for a
// continuation line.
func (sess *Session) Pending() bool {
	return sess.equalSeen || sess.termBeforeEqual || sess.termAfterEqual
}

// ParseLine consumes one line of input and folds every term it recognizes
// into sys. The first error aborts the line and is reported with the offset
// of the offending character; session state is left as it was at that point
// and is not reset automatically.
//
// A line that ends on a completed term closes the current equation; a line
// that ends on a dangling operator leaves it open for the next call.
func (sess *Session) ParseLine(line string, sys *eqn.System) eqn.Outcome {
	s := newScanner([]byte(strings.TrimRight(line, " \t\r\n")))

	// An all-blank line is not an error and touches nothing.
	if len(s.input) == 0 {
		return eqn.Outcome{Status: eqn.SuccessNoEquation}
	}

	for !s.atEnd() {
		s.skipSpaces()
		if s.atEnd() {
			break
		}
		switch sess.mode {
		case ExpectTerm:
			if !sess.parseTerm(s, sys) {
				s.fail(eqn.IllegalEquation)
				return s.outcome()
			}
			sess.mode = ExpectOperator
			sess.lastWasOperator = false
		case ExpectOperator:
			if !sess.scanOperator(s) {
				// A failed operator scan only reports an error when the scan
				// itself latched one; otherwise the line stops here and the
				// session keeps waiting for an operator.
				return s.outcome()
			}
			sess.mode = ExpectTerm
			sess.lastWasOperator = true
		}
	}

	// The equation is complete when the line was fully consumed and ended on
	// a term rather than a dangling operator.
	if s.atEnd() && sess.mode == ExpectOperator && !sess.lastWasOperator {
		if status := sess.classify(); status != eqn.Success {
			return eqn.Outcome{Status: status, Offset: s.pos}
		}
		sess.completeEquation(sys)
	}
	return s.outcome()
}

// scanOperator recognizes '=' and/or a '+'/'-' sign for the next term. A
// second '=' within one equation latches MultipleEqualSigns at the offset of
// the offending character.
func (sess *Session) scanOperator(s *scanner) bool {
	found := false
	if s.peek() == '=' {
		if sess.equalSeen {
			return s.fail(eqn.MultipleEqualSigns)
		}
		s.advance()
		sess.equalSeen = true
		sess.pendingNegative = false
		found = true
	}
	if present, negative := s.scanSign(); present {
		sess.pendingNegative = negative
		found = true
	}
	return found
}

// classify derives the validity of the equation about to complete from the
// per-equation flags.
func (sess *Session) classify() eqn.Status {
	switch {
	case !sess.equalSeen && !sess.termBeforeEqual && !sess.termAfterEqual:
		return eqn.SuccessNoEquation
	case !sess.equalSeen:
		return eqn.NoEqualSign
	case !sess.termBeforeEqual:
		return eqn.NoTermBeforeEqualSign
	case !sess.termAfterEqual:
		return eqn.NoTermAfterEqualSign
	case !sess.variableSeen:
		return eqn.NoVariableInEquation
	}
	return eqn.Success
}

// completeEquation advances the equation index, clears the per-equation
// flags and publishes the new equation count to the caller's system.
func (sess *Session) completeEquation(sys *eqn.System) {
	sess.equation++
	sess.equalSeen = false
	sess.pendingNegative = false
	sess.termBeforeEqual = false
	sess.termAfterEqual = false
	sess.variableSeen = false
	sess.mode = ExpectTerm
	sys.Equations = sess.equation
}
