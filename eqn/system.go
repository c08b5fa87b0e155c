// Package eqn holds the data model shared between the incremental
// equation parser and the linear solver: a sparse coefficient table, a
// sparse constant vector and the variable index map.
package eqn

// Key addresses one cell of the sparse coefficient table.
type Key struct {
	Equation int
	Variable int
}

// System is the caller-owned equation system that a parser session fills in
// incrementally. All three containers are accumulate-only: entries are never
// removed and variable indices never change once assigned.
//
// Constants holds the left-hand-side residual of each equation, i.e. the
// system reads A·x + c = 0. The solver negates it to obtain the conventional
// right-hand side.
type System struct {
	Coefficients map[Key]float64
	Constants    map[int]float64
	Vars         *VarMap

	// Equations is the number of completed equations; the parser updates it
	// whenever an equation is determined complete.
	Equations int
}

func NewSystem() *System {
	return &System{
		Coefficients: make(map[Key]float64),
		Constants:    make(map[int]float64),
		Vars:         NewVarMap(),
	}
}

// AddCoefficient accumulates value into the coefficient for variable v in
// equation eq. Repeated contributions for the same cell sum arithmetically.
func (s *System) AddCoefficient(eq, v int, value float64) {
	s.Coefficients[Key{Equation: eq, Variable: v}] += value
}

// AddConstant accumulates value into the constant of equation eq.
func (s *System) AddConstant(eq int, value float64) {
	s.Constants[eq] += value
}

// Coefficient returns the coefficient for variable v in equation eq;
// absent cells are 0.
func (s *System) Coefficient(eq, v int) float64 {
	return s.Coefficients[Key{Equation: eq, Variable: v}]
}

// Constant returns the left-hand-side constant of equation eq; absent
// entries are 0.
func (s *System) Constant(eq int) float64 {
	return s.Constants[eq]
}

// VarMap assigns dense, monotonically increasing indices to variable names.
// Names are case-sensitive. The index handed to a new name equals the map's
// size at insertion time, so indices are stable and contiguous.
type VarMap struct {
	index map[string]int
	names []string
}

func NewVarMap() *VarMap {
	return &VarMap{index: make(map[string]int)}
}

// Resolve returns the index for name, allocating the next free index if the
// name has not been seen before.
func (m *VarMap) Resolve(name string) int {
	if i, ok := m.index[name]; ok {
		return i
	}
	i := len(m.names)
	m.index[name] = i
	m.names = append(m.names, name)
	return i
}

// Lookup returns the index for name without allocating.
func (m *VarMap) Lookup(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}

// Name returns the display name for index i.
func (m *VarMap) Name(i int) string {
	if i < 0 || i >= len(m.names) {
		return ""
	}
	return m.names[i]
}

// Len returns the number of variables seen so far.
func (m *VarMap) Len() int {
	return len(m.names)
}

// Names returns all variable names in index order.
func (m *VarMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}
