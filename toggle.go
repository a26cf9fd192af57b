package ask

// Toggle is a binary choice between two caller-supplied labels. It is a
// two-option navigator: Left/Right (or h/l) pick a side, Up/Down flip.
// The result is the chosen label.
type Toggle struct {
	message string
	options [2]string
	index   int
	status  Status
}

// NewToggle creates a binary prompt between the left and right labels.
//
// Example:
//
//	mode, err := ask.Run(ask.NewToggle("Install mode", "minimal", "full"))
func NewToggle(message, left, right string) *Toggle {
	return &Toggle{message: message, options: [2]string{left, right}}
}

// WithInitial highlights the option at index (0 = left, 1 = right)
// before any input.
func (t *Toggle) WithInitial(index int) *Toggle {
	if index == 0 || index == 1 {
		t.index = index
	}
	return t
}

// HandleKey applies one key event. Events after submission or
// cancellation are ignored.
func (t *Toggle) HandleKey(ev KeyEvent) {
	if t.status != StatusActive {
		return
	}
	switch ev.Key {
	case KeySubmit:
		t.status = StatusSubmitted
	case KeyCancel:
		t.status = StatusCanceled
	case KeyLeft:
		t.index = 0
	case KeyRight:
		t.index = 1
	case KeyUp, KeyDown:
		t.index = 1 - t.index
	case KeyChar:
		switch ev.Rune {
		case 'h', 'H':
			t.index = 0
		case 'l', 'L':
			t.index = 1
		}
	}
}

// Status reports the widget lifecycle state.
func (t *Toggle) Status() Status {
	return t.status
}

// Value returns the chosen label, ErrCanceled after a cancel, or
// ErrActive while the prompt is still running.
func (t *Toggle) Value() (string, error) {
	switch t.status {
	case StatusSubmitted:
		return t.options[t.index], nil
	case StatusCanceled:
		return "", ErrCanceled
	default:
		return "", ErrActive
	}
}

// Frame projects the current state into a drawable frame.
func (t *Toggle) Frame() Frame {
	switch t.status {
	case StatusSubmitted:
		return Frame{Lines: []Line{headline(t.status, t.message, span(StyleAnswer, t.options[t.index]))}}
	case StatusCanceled:
		return Frame{Lines: []Line{headline(t.status, t.message, span(StyleMuted, "canceled"))}}
	}

	left, right := StyleHighlight, StyleOption
	if t.index == 1 {
		left, right = StyleOption, StyleHighlight
	}
	line := headline(t.status, t.message,
		span(left, t.options[0]),
		span(StyleMuted, " / "),
		span(right, t.options[1]),
	)
	return Frame{Lines: []Line{line}}
}
