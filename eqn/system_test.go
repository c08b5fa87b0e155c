package eqn

import (
	"testing"
)

func TestVarMapAssignsIndicesInOrder(t *testing.T) {
	m := NewVarMap()

	names := []string{"x", "y", "longer_name", "X"}
	for want, name := range names {
		got := m.Resolve(name)
		if got != want {
			t.Errorf("Resolve(%q) = %d, want %d", name, got, want)
		}
	}

	if m.Len() != len(names) {
		t.Errorf("Len() = %d, want %d", m.Len(), len(names))
	}
}

func TestVarMapResolveIsStable(t *testing.T) {
	m := NewVarMap()
	first := m.Resolve("x")
	m.Resolve("y")
	second := m.Resolve("x")
	if first != second {
		t.Errorf("Resolve(\"x\") = %d after reuse, want %d", second, first)
	}
}

func TestVarMapIsCaseSensitive(t *testing.T) {
	m := NewVarMap()
	lower := m.Resolve("a")
	upper := m.Resolve("A")
	if lower == upper {
		t.Errorf("Resolve(\"a\") and Resolve(\"A\") both = %d, want distinct indices", lower)
	}
}

func TestVarMapLookupAndName(t *testing.T) {
	m := NewVarMap()
	m.Resolve("x")
	m.Resolve("y")

	if i, ok := m.Lookup("y"); !ok || i != 1 {
		t.Errorf("Lookup(\"y\") = %d, %v, want 1, true", i, ok)
	}
	if _, ok := m.Lookup("z"); ok {
		t.Error("Lookup(\"z\") = true, want false")
	}
	if name := m.Name(0); name != "x" {
		t.Errorf("Name(0) = %q, want %q", name, "x")
	}
	if name := m.Name(5); name != "" {
		t.Errorf("Name(5) = %q, want %q", name, "")
	}
}

func TestSystemAccumulates(t *testing.T) {
	sys := NewSystem()

	sys.AddCoefficient(0, 0, 1)
	sys.AddCoefficient(0, 0, 1)
	sys.AddCoefficient(0, 1, -2.5)
	sys.AddConstant(0, -4)
	sys.AddConstant(0, 1)

	if got := sys.Coefficient(0, 0); got != 2 {
		t.Errorf("Coefficient(0, 0) = %v, want 2", got)
	}
	if got := sys.Coefficient(0, 1); got != -2.5 {
		t.Errorf("Coefficient(0, 1) = %v, want -2.5", got)
	}
	if got := sys.Constant(0); got != -3 {
		t.Errorf("Constant(0) = %v, want -3", got)
	}
}

func TestSystemAbsentEntriesAreZero(t *testing.T) {
	sys := NewSystem()
	if got := sys.Coefficient(3, 7); got != 0 {
		t.Errorf("Coefficient(3, 7) = %v, want 0", got)
	}
	if got := sys.Constant(9); got != 0 {
		t.Errorf("Constant(9) = %v, want 0", got)
	}
}

func TestStatusIsError(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{Success, false},
		{SuccessNoEquation, false},
		{IllegalEquation, true},
		{NoEqualSign, true},
		{MultipleEqualSigns, true},
		{TooManyDigits, true},
		{IllegalExponent, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.IsError(); got != tt.want {
				t.Errorf("IsError() = %v, want %v", got, tt.want)
			}
		})
	}
}
