package ask

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of types a Number prompt can produce.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Number is a line input restricted to the numeric charset of its type
// parameter: digits always, a leading sign only for signed types, and a
// single decimal point only for floats. Runes outside the charset never
// enter the buffer. Emptiness and range are checked at submission, where
// the buffer is parsed with the exact bit size of T.
type Number[T Numeric] struct {
	message string
	editor  lineEditor
	val     T
	problem string
	status  Status
	signed  bool
	isFloat bool
	bits    int
}

// NewNumber creates a numeric prompt producing a value of type T.
//
// Example:
//
//	port, err := ask.Run(ask.NewNumber[uint16]("Listen port"))
//	ratio, err := ask.Run(ask.NewNumber[float64]("Sample ratio"))
func NewNumber[T Numeric](message string) *Number[T] {
	n := &Number[T]{message: message}
	var zero T
	rt := reflect.TypeOf(zero)
	n.bits = rt.Bits()
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		n.isFloat, n.signed = true, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n.signed = true
	}
	return n
}

// WithInitial pre-fills the buffer with the given value.
func (n *Number[T]) WithInitial(v T) *Number[T] {
	n.editor.setText(fmt.Sprint(v))
	return n
}

// allowed reports whether r may be inserted at the current cursor.
func (n *Number[T]) allowed(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '+':
		return n.signed && n.editor.cursor == 0
	case r == '.':
		return n.isFloat && !strings.ContainsRune(n.editor.String(), '.')
	default:
		return false
	}
}

// parse converts the buffer to T, reporting a user-facing problem when it
// is empty, malformed, or out of range for T.
func (n *Number[T]) parse() (T, string) {
	var zero T
	s := n.editor.String()
	if s == "" {
		return zero, "enter a number"
	}
	if n.isFloat {
		v, err := strconv.ParseFloat(s, n.bits)
		if err != nil {
			return zero, parseProblem(err)
		}
		return T(v), ""
	}
	if n.signed {
		v, err := strconv.ParseInt(s, 10, n.bits)
		if err != nil {
			return zero, parseProblem(err)
		}
		return T(v), ""
	}
	v, err := strconv.ParseUint(s, 10, n.bits)
	if err != nil {
		return zero, parseProblem(err)
	}
	return T(v), ""
}

func parseProblem(err error) string {
	if errors.Is(err, strconv.ErrRange) {
		return "number out of range"
	}
	return "invalid number"
}

// HandleKey applies one key event. Runes outside the numeric charset are
// dropped without touching the buffer. Events after submission or
// cancellation are ignored.
func (n *Number[T]) HandleKey(ev KeyEvent) {
	if n.status != StatusActive {
		return
	}
	switch ev.Key {
	case KeySubmit:
		v, problem := n.parse()
		if problem != "" {
			n.problem = problem
			return
		}
		n.val = v
		n.problem = ""
		n.status = StatusSubmitted
	case KeyCancel:
		n.status = StatusCanceled
	case KeyChar:
		if n.allowed(ev.Rune) {
			n.editor.insert(ev.Rune)
			n.problem = ""
		}
	case KeyBackspace, KeyDelete:
		n.editor.handleKey(ev)
		n.problem = ""
	default:
		n.editor.handleKey(ev)
	}
}

// Status reports the widget lifecycle state.
func (n *Number[T]) Status() Status {
	return n.status
}

// Value returns the parsed number, ErrCanceled after a cancel, or
// ErrActive while the prompt is still running.
func (n *Number[T]) Value() (T, error) {
	var zero T
	switch n.status {
	case StatusSubmitted:
		return n.val, nil
	case StatusCanceled:
		return zero, ErrCanceled
	default:
		return zero, ErrActive
	}
}

// Frame projects the current state into a drawable frame.
func (n *Number[T]) Frame() Frame {
	switch n.status {
	case StatusSubmitted:
		return Frame{Lines: []Line{headline(n.status, n.message, span(StyleAnswer, n.editor.String()))}}
	case StatusCanceled:
		return Frame{Lines: []Line{headline(n.status, n.message, span(StyleMuted, "canceled"))}}
	}

	prefix := cellWidth(markActive) + cellWidth(n.message) + 1
	cur := &Cursor{Row: 0, Col: prefix + cellWidth(string(n.editor.buf[:n.editor.cursor]))}

	lines := []Line{headline(n.status, n.message, span(StyleAnswer, n.editor.String()))}
	if n.problem != "" {
		lines = append(lines, row(span(StyleError, n.problem)))
	}
	return Frame{Lines: lines, Cursor: cur}
}
