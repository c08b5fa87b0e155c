package parser

import (
	"strconv"

	"github.com/dhamidi/lineq/eqn"
)

// parseTerm recognizes one term at the current scan position and folds it
// into sys at the session's equation index. A term is an optional sign, an
// optional number, an optional exponent clause (only after a number) and an
// optional variable name; at least a number or a variable must be present.
//
// The effective sign of the term is the exclusive-or of three toggles: the
// equal-sign-seen flag (terms after '=' move to the left side), the sign
// carried by the preceding operator, and the sign written on the term itself.
func (sess *Session) parseTerm(s *scanner, sys *eqn.System) bool {
	_, ownNegative := s.scanSign()

	literal, hasNumber := s.scanNumber()
	if !hasNumber && s.status != eqn.Success {
		return false
	}

	if hasNumber && s.peek() == '^' {
		s.advance()
		suffix, ok := s.scanExponent()
		if !ok {
			return false
		}
		literal += suffix
	}

	name, hasVariable := s.scanVariableName()
	if !hasNumber && !hasVariable {
		return s.fail(eqn.NoTermEncountered)
	}

	value := 1.0
	if hasNumber {
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return s.fail(eqn.IllegalEquation)
		}
		value = v
	}

	negate := sess.equalSeen
	if sess.pendingNegative {
		negate = !negate
	}
	if ownNegative {
		negate = !negate
	}
	if negate {
		value = -value
	}
	// The operator sign has been consumed by this term.
	sess.pendingNegative = false

	if hasVariable {
		sess.variableSeen = true
		index := sys.Vars.Resolve(name)
		sys.AddCoefficient(sess.equation, index, value)
	} else {
		sys.AddConstant(sess.equation, value)
	}

	if sess.equalSeen {
		sess.termAfterEqual = true
	} else {
		sess.termBeforeEqual = true
	}
	return true
}
