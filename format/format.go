// Package format renders parsed equation systems and solutions for output:
// indented JSON for tooling and a canonical text form for humans.
package format

import (
	"encoding"

	"github.com/dhamidi/lineq/eqn"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(sys *eqn.System) error
}

// equationLimit returns the number of equation rows worth rendering: every
// completed equation plus any partially assembled row the parser has already
// written coefficients or constants into.
func equationLimit(sys *eqn.System) int {
	limit := sys.Equations
	for key := range sys.Coefficients {
		if key.Equation+1 > limit {
			limit = key.Equation + 1
		}
	}
	for eq := range sys.Constants {
		if eq+1 > limit {
			limit = eq + 1
		}
	}
	return limit
}
