package eqn

// Status is the closed set of results a parse call can produce.
type Status int

const (
	Success Status = iota
	SuccessNoEquation

	// Structural errors.
	IllegalEquation
	NoEqualSign
	MultipleEqualSigns
	NoTermBeforeEqualSign
	NoTermAfterEqualSign
	NoTermEncountered
	NoVariableInEquation

	// Numeric-format errors.
	MultipleDecimalPoints
	TooManyDigits
	MissingExponent
	IllegalExponent
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case SuccessNoEquation:
		return "no equation"
	case IllegalEquation:
		return "illegal equation"
	case NoEqualSign:
		return "no equal sign"
	case MultipleEqualSigns:
		return "multiple equal signs"
	case NoTermBeforeEqualSign:
		return "no term before equal sign"
	case NoTermAfterEqualSign:
		return "no term after equal sign"
	case NoTermEncountered:
		return "no term encountered"
	case NoVariableInEquation:
		return "no variable in equation"
	case MultipleDecimalPoints:
		return "multiple decimal points"
	case TooManyDigits:
		return "too many digits"
	case MissingExponent:
		return "missing exponent"
	case IllegalExponent:
		return "illegal exponent"
	}
	return "unknown status"
}

// IsError reports whether s indicates a malformed line rather than a
// successful (possibly empty) parse.
func (s Status) IsError() bool {
	return s != Success && s != SuccessNoEquation
}

// Outcome is the result of parsing one line of input. Offset is the character
// index within that line at which the outcome was determined.
type Outcome struct {
	Status Status
	Offset int
}
