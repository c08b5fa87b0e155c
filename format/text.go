package format

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/dhamidi/lineq/eqn"
)

// TextEncoder re-renders a parsed system in canonical form, one equation per
// line: unit coefficients are elided, terms are joined with " + " / " - ",
// and the constant moves back to the right-hand side.
type TextEncoder struct {
	w   io.Writer
	sys *eqn.System
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(sys *eqn.System) error {
	e.sys = sys
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	sys := e.sys
	limit := equationLimit(sys)
	for eq := 0; eq < limit; eq++ {
		e.writeEquation(&buf, eq)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (e *TextEncoder) writeEquation(buf *bytes.Buffer, eq int) {
	sys := e.sys
	wrote := false
	for v := 0; v < sys.Vars.Len(); v++ {
		value := sys.Coefficient(eq, v)
		if value == 0 {
			continue
		}
		switch {
		case !wrote && value < 0:
			buf.WriteByte('-')
		case wrote && value < 0:
			buf.WriteString(" - ")
		case wrote:
			buf.WriteString(" + ")
		}
		if mag := math.Abs(value); mag != 1 {
			buf.WriteString(formatFloat(mag))
		}
		buf.WriteString(sys.Vars.Name(v))
		wrote = true
	}
	if !wrote {
		buf.WriteByte('0')
	}
	buf.WriteString(" = ")
	buf.WriteString(formatFloat(-sys.Constant(eq)))
}

// Text renders sys in canonical form and returns it as a string.
func Text(sys *eqn.System) string {
	e := &TextEncoder{sys: sys}
	text, _ := e.MarshalText()
	return string(text)
}

func formatFloat(v float64) string {
	if v == 0 {
		// Avoid rendering negative zero.
		return "0"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
