package ask

import "errors"

// Common errors
var (
	// ErrCanceled is returned by Value when the user cancelled the prompt
	// with Esc or Ctrl+C.
	ErrCanceled = errors.New("canceled")
	// ErrActive is returned by Value while the widget has not reached a
	// terminal state yet.
	ErrActive = errors.New("prompt still active")
	// ErrNoChoices is returned when a select widget is constructed with an
	// empty option list.
	ErrNoChoices = errors.New("no choices")
	// ErrNotTerminal is returned when the prompt runs without an
	// interactive terminal attached.
	ErrNotTerminal = errors.New("not a terminal")
	// ErrEOF is returned when the input stream ends (Ctrl+D or closed tty).
	ErrEOF = errors.New("EOF")
)
