package ask

import "fmt"

// MultiSelect is a multiple-choice list prompt. Up/Down move the
// highlight with wrap-around, Space toggles the highlighted choice in
// and out of the selection, and Submit finalizes the selection as it
// stands — it never toggles the highlighted row itself. Disabled choices
// cannot be toggled, a full selection (max) ignores further toggles, and
// submitting under the minimum count is rejected with a live message.
type MultiSelect[T any] struct {
	message  string
	choices  []Choice[T]
	nav      listNavigator
	pageSize int
	minPick  int
	maxPick  int
	problem  string
	status   Status
}

// NewMultiSelect creates a multiple-choice prompt over the given choices.
// It returns ErrNoChoices when the list is empty.
//
// Example:
//
//	w, err := ask.NewMultiSelect("Extra toppings", ask.Choices("cheese", "onion", "bacon"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	toppings, err := ask.Run(w.WithMax(2))
func NewMultiSelect[T any](message string, choices []Choice[T]) (*MultiSelect[T], error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	return &MultiSelect[T]{
		message:  message,
		choices:  choices,
		nav:      newListNavigator(len(choices)),
		pageSize: defaultPageSize,
	}, nil
}

// WithPageSize bounds the number of rows shown at once.
func (m *MultiSelect[T]) WithPageSize(size int) *MultiSelect[T] {
	if size > 0 {
		m.pageSize = size
	}
	return m
}

// WithMin requires at least n toggled choices before submission.
func (m *MultiSelect[T]) WithMin(n int) *MultiSelect[T] {
	if n > 0 {
		m.minPick = n
	}
	return m
}

// WithMax caps the selection at n toggled choices; toggling beyond the
// cap is ignored.
func (m *MultiSelect[T]) WithMax(n int) *MultiSelect[T] {
	if n > 0 {
		m.maxPick = n
	}
	return m
}

func (m *MultiSelect[T]) validate() {
	if m.nav.toggledCount() < m.minPick {
		m.problem = fmt.Sprintf("select at least %d", m.minPick)
		return
	}
	m.problem = ""
}

// toggleCurrent flips the highlighted choice, honoring the disabled flag
// and the selection cap.
func (m *MultiSelect[T]) toggleCurrent() {
	i := m.nav.index
	if m.choices[i].Disabled {
		return
	}
	if !m.nav.isToggled(i) && m.maxPick > 0 && m.nav.toggledCount() >= m.maxPick {
		return
	}
	m.nav.toggle(i)
	m.validate()
}

// HandleKey applies one key event. Events after submission or
// cancellation are ignored.
func (m *MultiSelect[T]) HandleKey(ev KeyEvent) {
	if m.status != StatusActive {
		return
	}
	switch ev.Key {
	case KeySubmit:
		m.validate()
		if m.problem == "" {
			m.status = StatusSubmitted
		}
	case KeyCancel:
		m.status = StatusCanceled
	case KeyUp:
		m.nav.moveUp()
	case KeyDown:
		m.nav.moveDown()
	case KeyLeft:
		m.nav.moveBy(-m.pageSize)
	case KeyRight:
		m.nav.moveBy(m.pageSize)
	case KeyChar:
		if ev.Rune == ' ' {
			m.toggleCurrent()
		}
	}
}

// Status reports the widget lifecycle state.
func (m *MultiSelect[T]) Status() Status {
	return m.status
}

// Value returns the values of the toggled choices in option order,
// ErrCanceled after a cancel, or ErrActive while the prompt is still
// running.
func (m *MultiSelect[T]) Value() ([]T, error) {
	switch m.status {
	case StatusSubmitted:
		picked := make([]T, 0, m.nav.toggledCount())
		for _, i := range m.nav.toggledIndexes() {
			picked = append(picked, m.choices[i].Value)
		}
		return picked, nil
	case StatusCanceled:
		return nil, ErrCanceled
	default:
		return nil, ErrActive
	}
}

// Frame projects the current state into a drawable frame.
func (m *MultiSelect[T]) Frame() Frame {
	switch m.status {
	case StatusSubmitted:
		titles := ""
		for _, i := range m.nav.toggledIndexes() {
			if titles != "" {
				titles += ", "
			}
			titles += m.choices[i].Title
		}
		return Frame{Lines: []Line{headline(m.status, m.message, span(StyleAnswer, titles))}}
	case StatusCanceled:
		return Frame{Lines: []Line{headline(m.status, m.message, span(StyleMuted, "canceled"))}}
	}

	lines := []Line{headline(m.status, m.message)}
	start, end := pageWindow(m.nav.index, len(m.choices), m.pageSize)
	for i := start; i < end; i++ {
		c := m.choices[i]
		cursor := span(StyleOption, "  ")
		if i == m.nav.index {
			cursor = span(StyleHighlight, "> ")
		}
		box := span(StyleOption, "[ ] ")
		switch {
		case c.Disabled:
			box = span(StyleMuted, "[-] ")
		case m.nav.isToggled(i):
			box = span(StyleMarker, "[x] ")
		}
		style := StyleOption
		if c.Disabled {
			style = StyleMuted
		} else if i == m.nav.index {
			style = StyleHighlight
		}
		spans := []Span{cursor, box, span(style, c.Title)}
		if i == m.nav.index && c.Description != "" {
			spans = append(spans, span(StyleMuted, " - "+c.Description))
		}
		lines = append(lines, Line{Spans: spans})
	}
	lines = append(lines, row(span(StyleMuted, m.countHint())))
	if hint := pageHint(m.nav.index, len(m.choices), m.pageSize); hint != "" {
		lines = append(lines, row(span(StyleMuted, hint)))
	}
	if m.problem != "" {
		lines = append(lines, row(span(StyleError, m.problem)))
	}
	return Frame{Lines: lines}
}

func (m *MultiSelect[T]) countHint() string {
	hint := fmt.Sprintf("%d selected", m.nav.toggledCount())
	if m.minPick > 0 {
		hint += fmt.Sprintf(", min %d", m.minPick)
	}
	if m.maxPick > 0 {
		hint += fmt.Sprintf(", max %d", m.maxPick)
	}
	return hint
}
