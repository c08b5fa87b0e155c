package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/lineq/eqn"
	"github.com/dhamidi/lineq/solve"
)

type JSONEncoder struct {
	w   io.Writer
	sys *eqn.System
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(sys *eqn.System) error {
	e.sys = sys
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildSystemData(), "", "  ")
}

type jsonSystem struct {
	Equations    int               `json:"equations"`
	Variables    []string          `json:"variables"`
	Coefficients []jsonCoefficient `json:"coefficients,omitempty"`
	Constants    []jsonConstant    `json:"constants,omitempty"`
}

type jsonCoefficient struct {
	Equation int     `json:"equation"`
	Variable string  `json:"variable"`
	Value    float64 `json:"value"`
}

type jsonConstant struct {
	Equation int     `json:"equation"`
	Value    float64 `json:"value"`
}

func (e *JSONEncoder) buildSystemData() jsonSystem {
	sys := e.sys
	data := jsonSystem{
		Equations: sys.Equations,
		Variables: sys.Vars.Names(),
	}

	// Walk rows and columns in index order so output is deterministic.
	limit := equationLimit(sys)
	for eq := 0; eq < limit; eq++ {
		for v := 0; v < sys.Vars.Len(); v++ {
			key := eqn.Key{Equation: eq, Variable: v}
			if value, ok := sys.Coefficients[key]; ok {
				data.Coefficients = append(data.Coefficients, jsonCoefficient{
					Equation: eq,
					Variable: sys.Vars.Name(v),
					Value:    value,
				})
			}
		}
		if value, ok := sys.Constants[eq]; ok {
			data.Constants = append(data.Constants, jsonConstant{
				Equation: eq,
				Value:    value,
			})
		}
	}
	return data
}

type jsonSolution struct {
	Variables []jsonVariableValue `json:"variables"`
}

type jsonVariableValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// EncodeSolution writes a solved system as indented JSON.
func EncodeSolution(w io.Writer, sol *solve.Solution) error {
	data := jsonSolution{}
	for i, name := range sol.Vars {
		data.Variables = append(data.Variables, jsonVariableValue{
			Name:  name,
			Value: sol.Values[i],
		})
	}
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
