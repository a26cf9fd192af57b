package ask

// Message shows a note and waits for an acknowledgment. Any key submits
// it except Cancel, which cancels like every other widget.
type Message struct {
	text   string
	status Status
}

// NewMessage creates an acknowledgment prompt.
//
// Example:
//
//	_, err := ask.Run(ask.NewMessage("Migration finished."))
func NewMessage(text string) *Message {
	return &Message{text: text}
}

// HandleKey applies one key event. Events after submission or
// cancellation are ignored.
func (m *Message) HandleKey(ev KeyEvent) {
	if m.status != StatusActive {
		return
	}
	if ev.Key == KeyCancel {
		m.status = StatusCanceled
		return
	}
	m.status = StatusSubmitted
}

// Status reports the widget lifecycle state.
func (m *Message) Status() Status {
	return m.status
}

// Value returns ErrCanceled after a cancel and ErrActive while the
// prompt is still waiting; the value itself carries no information.
func (m *Message) Value() (struct{}, error) {
	switch m.status {
	case StatusSubmitted:
		return struct{}{}, nil
	case StatusCanceled:
		return struct{}{}, ErrCanceled
	default:
		return struct{}{}, ErrActive
	}
}

// Frame projects the current state into a drawable frame.
func (m *Message) Frame() Frame {
	if m.status == StatusActive {
		return Frame{Lines: []Line{headline(m.status, m.text, span(StyleMuted, "press any key"))}}
	}
	if m.status == StatusCanceled {
		return Frame{Lines: []Line{headline(m.status, m.text, span(StyleMuted, "canceled"))}}
	}
	return Frame{Lines: []Line{headline(m.status, m.text)}}
}
