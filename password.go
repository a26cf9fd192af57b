package ask

import "strings"

// Password is a single-line input whose content is never echoed. Editing
// behaves exactly like Text; only the projection differs, rendering one
// mask rune per typed rune, or nothing at all in hidden mode. The real
// buffer is returned by Value.
type Password struct {
	message   string
	editor    lineEditor
	mask      rune
	hidden    bool
	validator Validator
	problem   string
	status    Status
}

// NewPassword creates a masked input prompt with the given message. The
// default mask is '*'.
//
// Example:
//
//	secret, err := ask.Run(ask.NewPassword("API token"))
func NewPassword(message string) *Password {
	return &Password{message: message, mask: '*'}
}

// WithMask sets the rune echoed per typed character.
func (p *Password) WithMask(mask rune) *Password {
	p.mask = mask
	return p
}

// WithHidden suppresses echo entirely, like classic Unix password input.
func (p *Password) WithHidden() *Password {
	p.hidden = true
	return p
}

// WithValidator adds a rule checked live on every edit and again at
// submission.
func (p *Password) WithValidator(v Validator) *Password {
	p.validator = v
	return p
}

func (p *Password) validate() {
	v := p.editor.String()
	if v == "" {
		p.problem = "cannot be empty"
		return
	}
	if p.validator != nil {
		if err := p.validator(v); err != nil {
			p.problem = err.Error()
			return
		}
	}
	p.problem = ""
}

// HandleKey applies one key event. Events after submission or
// cancellation are ignored.
func (p *Password) HandleKey(ev KeyEvent) {
	if p.status != StatusActive {
		return
	}
	switch ev.Key {
	case KeySubmit:
		p.validate()
		if p.problem == "" {
			p.status = StatusSubmitted
		}
	case KeyCancel:
		p.status = StatusCanceled
	case KeyChar, KeyBackspace, KeyDelete:
		p.editor.handleKey(ev)
		p.validate()
	default:
		p.editor.handleKey(ev)
	}
}

// Status reports the widget lifecycle state.
func (p *Password) Status() Status {
	return p.status
}

// Value returns the entered secret unmasked, ErrCanceled after a cancel,
// or ErrActive while the prompt is still running.
func (p *Password) Value() (string, error) {
	switch p.status {
	case StatusSubmitted:
		return p.editor.String(), nil
	case StatusCanceled:
		return "", ErrCanceled
	default:
		return "", ErrActive
	}
}

// masked is the echoed projection of the buffer up to n runes.
func (p *Password) masked(n int) string {
	if p.hidden {
		return ""
	}
	return strings.Repeat(string(p.mask), n)
}

// Frame projects the current state into a drawable frame.
func (p *Password) Frame() Frame {
	switch p.status {
	case StatusSubmitted:
		return Frame{Lines: []Line{headline(p.status, p.message, span(StyleAnswer, p.masked(len(p.editor.buf))))}}
	case StatusCanceled:
		return Frame{Lines: []Line{headline(p.status, p.message, span(StyleMuted, "canceled"))}}
	}

	prefix := cellWidth(markActive) + cellWidth(p.message) + 1
	cur := &Cursor{Row: 0, Col: prefix + cellWidth(p.masked(p.editor.cursor))}

	lines := []Line{headline(p.status, p.message, span(StyleAnswer, p.masked(len(p.editor.buf))))}
	if p.problem != "" {
		lines = append(lines, row(span(StyleError, p.problem)))
	}
	return Frame{Lines: lines, Cursor: cur}
}
