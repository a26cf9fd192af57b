package ask

// Text is a free-form single-line input. The empty value is rejected
// unless a default is configured; a caller-supplied Validator may add
// stricter rules. Validation runs after every edit so the error banner
// updates live, and a failing outcome blocks submission.
type Text struct {
	message     string
	editor      lineEditor
	placeholder string
	defaultVal  string
	validator   Validator
	problem     string
	status      Status
}

// NewText creates a free-form text prompt with the given message.
//
// Example:
//
//	name, err := ask.Run(ask.NewText("Project name").
//		WithPlaceholder("my-project").
//		WithValidator(func(v string) error {
//			if strings.ContainsRune(v, ' ') {
//				return errors.New("no spaces allowed")
//			}
//			return nil
//		}))
func NewText(message string) *Text {
	return &Text{message: message}
}

// WithPlaceholder sets the dim hint shown while the input is empty.
func (t *Text) WithPlaceholder(hint string) *Text {
	t.placeholder = hint
	return t
}

// WithDefault sets the value submitted when the input is left empty.
func (t *Text) WithDefault(value string) *Text {
	t.defaultVal = value
	return t
}

// WithInitial pre-fills the input buffer and puts the cursor at its end.
func (t *Text) WithInitial(value string) *Text {
	t.editor.setText(value)
	return t
}

// WithValidator adds a rule checked live on every edit and again at
// submission.
func (t *Text) WithValidator(v Validator) *Text {
	t.validator = v
	return t
}

// effective is the value submission would produce right now.
func (t *Text) effective() string {
	if len(t.editor.buf) == 0 {
		return t.defaultVal
	}
	return t.editor.String()
}

func (t *Text) validate() {
	v := t.effective()
	if v == "" {
		t.problem = "cannot be empty"
		return
	}
	if t.validator != nil {
		if err := t.validator(v); err != nil {
			t.problem = err.Error()
			return
		}
	}
	t.problem = ""
}

// HandleKey applies one key event. Events after submission or
// cancellation are ignored.
func (t *Text) HandleKey(ev KeyEvent) {
	if t.status != StatusActive {
		return
	}
	switch ev.Key {
	case KeySubmit:
		t.validate()
		if t.problem == "" {
			t.status = StatusSubmitted
		}
	case KeyCancel:
		t.status = StatusCanceled
	case KeyChar, KeyBackspace, KeyDelete:
		t.editor.handleKey(ev)
		t.validate()
	default:
		t.editor.handleKey(ev)
	}
}

// Status reports the widget lifecycle state.
func (t *Text) Status() Status {
	return t.status
}

// Value returns the submitted text (the default value if the input was
// left empty), ErrCanceled after a cancel, or ErrActive while the prompt
// is still running.
func (t *Text) Value() (string, error) {
	switch t.status {
	case StatusSubmitted:
		return t.effective(), nil
	case StatusCanceled:
		return "", ErrCanceled
	default:
		return "", ErrActive
	}
}

// Frame projects the current state into a drawable frame.
func (t *Text) Frame() Frame {
	switch t.status {
	case StatusSubmitted:
		return Frame{Lines: []Line{headline(t.status, t.message, span(StyleAnswer, t.effective()))}}
	case StatusCanceled:
		return Frame{Lines: []Line{headline(t.status, t.message, span(StyleMuted, "canceled"))}}
	}

	prefix := cellWidth(markActive) + cellWidth(t.message) + 1
	cur := &Cursor{Row: 0, Col: prefix + cellWidth(string(t.editor.buf[:t.editor.cursor]))}

	answer := span(StyleAnswer, t.editor.String())
	if len(t.editor.buf) == 0 {
		if hint := t.hint(); hint != "" {
			answer = span(StylePlaceholder, hint)
		}
	}

	lines := []Line{headline(t.status, t.message, answer)}
	if t.problem != "" {
		lines = append(lines, row(span(StyleError, t.problem)))
	}
	return Frame{Lines: lines, Cursor: cur}
}

func (t *Text) hint() string {
	if t.placeholder != "" {
		return t.placeholder
	}
	return t.defaultVal
}
