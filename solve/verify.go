package solve

import (
	"math"

	"github.com/dhamidi/lineq/eqn"
)

// DefaultTolerance bounds the residual magnitude Verify accepts per equation.
const DefaultTolerance = 1e-9

// Verify substitutes sol back into sys and returns the indices of equations
// whose residual |A·x + c| exceeds tol. A tol of zero or below selects
// DefaultTolerance.
func Verify(sys *eqn.System, sol *Solution, tol float64) []int {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	var bad []int
	for eq := 0; eq < sys.Equations; eq++ {
		residual := sys.Constant(eq)
		for v := 0; v < sys.Vars.Len(); v++ {
			residual += sys.Coefficient(eq, v) * sol.Values[v]
		}
		if math.Abs(residual) > tol {
			bad = append(bad, eq)
		}
	}
	return bad
}
