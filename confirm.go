package ask

// Confirm is a yes/no prompt. Left/Right (or the vi keys h/l) pick a
// side, Up/Down flip the current side, and y/n answer and submit in one
// keystroke. The result is true for yes.
type Confirm struct {
	message string
	yes     bool
	status  Status
}

// NewConfirm creates a yes/no prompt with the given message. The answer
// defaults to no; use WithDefault to start on yes.
//
// Example:
//
//	ok, err := ask.Run(ask.NewConfirm("Delete all local data?"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		wipe()
//	}
func NewConfirm(message string) *Confirm {
	return &Confirm{message: message}
}

// WithDefault sets the side highlighted before any input.
func (c *Confirm) WithDefault(yes bool) *Confirm {
	c.yes = yes
	return c
}

// HandleKey applies one key event. Once the prompt is submitted or
// canceled, further events are ignored.
func (c *Confirm) HandleKey(ev KeyEvent) {
	if c.status != StatusActive {
		return
	}
	switch ev.Key {
	case KeySubmit:
		c.status = StatusSubmitted
	case KeyCancel:
		c.status = StatusCanceled
	case KeyLeft:
		c.yes = false
	case KeyRight:
		c.yes = true
	case KeyUp, KeyDown:
		c.yes = !c.yes
	case KeyChar:
		switch ev.Rune {
		case 'y', 'Y':
			c.yes = true
			c.status = StatusSubmitted
		case 'n', 'N':
			c.yes = false
			c.status = StatusSubmitted
		case 'h', 'H':
			c.yes = false
		case 'l', 'L':
			c.yes = true
		}
	}
}

// Status reports the widget lifecycle state.
func (c *Confirm) Status() Status {
	return c.status
}

// Value returns the chosen answer. It returns ErrCanceled after a cancel
// and ErrActive while the prompt is still running.
func (c *Confirm) Value() (bool, error) {
	switch c.status {
	case StatusSubmitted:
		return c.yes, nil
	case StatusCanceled:
		return false, ErrCanceled
	default:
		return false, ErrActive
	}
}

// Frame projects the current state into a drawable frame.
func (c *Confirm) Frame() Frame {
	switch c.status {
	case StatusSubmitted:
		answer := "No"
		if c.yes {
			answer = "Yes"
		}
		return Frame{Lines: []Line{headline(c.status, c.message, span(StyleAnswer, answer))}}
	case StatusCanceled:
		return Frame{Lines: []Line{headline(c.status, c.message, span(StyleMuted, "canceled"))}}
	}

	no, yes := StyleOption, StyleHighlight
	if !c.yes {
		no, yes = StyleHighlight, StyleOption
	}
	line := headline(c.status, c.message,
		span(no, "No"),
		span(StyleMuted, " / "),
		span(yes, "Yes"),
	)
	return Frame{Lines: []Line{line}}
}
