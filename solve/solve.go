// Package solve turns a parsed equation system into a concrete solution
// using Gaussian elimination with partial pivoting.
package solve

import (
	"errors"
	"fmt"
	"math"

	"github.com/dhamidi/lineq/eqn"
)

var (
	// ErrNotSquare is returned when the number of equations differs from the
	// number of variables.
	ErrNotSquare = errors.New("solve: system is not square")
	// ErrSingular is returned when elimination encounters a zero pivot.
	ErrSingular = errors.New("solve: matrix is singular")
	// ErrIllConditioned is returned when the pivot spread indicates the
	// solution cannot be trusted numerically.
	ErrIllConditioned = errors.New("solve: matrix is ill-conditioned")
)

// conditionLimit is the smallest acceptable ratio between the smallest and
// largest pivot magnitude seen during elimination.
const conditionLimit = 1e-12

// Solution maps every variable of the system, in index order, to its value.
type Solution struct {
	Vars   []string
	Values []float64
}

// Value returns the solved value for the named variable.
func (s *Solution) Value(name string) (float64, bool) {
	for i, v := range s.Vars {
		if v == name {
			return s.Values[i], true
		}
	}
	return 0, false
}

// Solve assembles the dense matrix A and right-hand side b from the sparse
// containers of sys and solves A·x = b. The stored constants are the
// left-hand-side residuals, so b is their negation.
func Solve(sys *eqn.System) (*Solution, error) {
	n := sys.Equations
	m := sys.Vars.Len()
	if n == 0 {
		return nil, fmt.Errorf("solve: no equations")
	}
	if n != m {
		return nil, fmt.Errorf("solve: %d equations, %d variables: %w", n, m, ErrNotSquare)
	}

	// Augmented matrix [A | b].
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n+1)
		for j := 0; j < n; j++ {
			a[i][j] = sys.Coefficient(i, j)
		}
		a[i][n] = -sys.Constant(i)
	}

	minPivot := math.Inf(1)
	maxPivot := 0.0
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		a[col], a[pivot] = a[pivot], a[col]

		p := math.Abs(a[col][col])
		if p == 0 {
			return nil, fmt.Errorf("solve: zero pivot in column %d: %w", col, ErrSingular)
		}
		if p < minPivot {
			minPivot = p
		}
		if p > maxPivot {
			maxPivot = p
		}

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				a[row][c] -= factor * a[col][c]
			}
		}
	}

	if minPivot/maxPivot < conditionLimit {
		return nil, fmt.Errorf("solve: pivot ratio %g: %w", minPivot/maxPivot, ErrIllConditioned)
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := a[i][n]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
	}

	return &Solution{Vars: sys.Vars.Names(), Values: x}, nil
}
