package ask

import "fmt"

// Choice is one selectable entry of a Select or MultiSelect prompt. The
// option list is fixed at construction and never mutated during the
// interaction.
type Choice[T any] struct {
	Title       string // row label
	Value       T      // result produced when this choice is picked
	Description string // optional detail shown on the highlighted row
	Disabled    bool   // visible but not selectable
}

// Choices builds a choice list from plain values, using fmt.Sprint of
// each value as its title.
func Choices[T any](values ...T) []Choice[T] {
	cs := make([]Choice[T], len(values))
	for i, v := range values {
		cs[i] = Choice[T]{Title: fmt.Sprint(v), Value: v}
	}
	return cs
}

// Select is a single-choice list prompt. Up/Down move the highlight with
// wrap-around, Left/Right jump by one page, and Submit picks the
// highlighted choice. A disabled choice can be highlighted but not
// submitted.
type Select[T any] struct {
	message  string
	choices  []Choice[T]
	nav      listNavigator
	pageSize int
	problem  string
	status   Status
}

// NewSelect creates a single-choice prompt over the given choices. It
// returns ErrNoChoices when the list is empty.
//
// Example:
//
//	env, err := ask.NewSelect("Deploy to", ask.Choices("dev", "staging", "prod"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	target, err := ask.Run(env)
func NewSelect[T any](message string, choices []Choice[T]) (*Select[T], error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	return &Select[T]{
		message:  message,
		choices:  choices,
		nav:      newListNavigator(len(choices)),
		pageSize: defaultPageSize,
	}, nil
}

const defaultPageSize = 10

// WithPageSize bounds the number of rows shown at once.
func (s *Select[T]) WithPageSize(size int) *Select[T] {
	if size > 0 {
		s.pageSize = size
	}
	return s
}

// HandleKey applies one key event. Events after submission or
// cancellation are ignored.
func (s *Select[T]) HandleKey(ev KeyEvent) {
	if s.status != StatusActive {
		return
	}
	switch ev.Key {
	case KeySubmit:
		if s.choices[s.nav.index].Disabled {
			s.problem = "option is disabled"
			return
		}
		s.problem = ""
		s.status = StatusSubmitted
	case KeyCancel:
		s.status = StatusCanceled
	case KeyUp:
		s.nav.moveUp()
		s.problem = ""
	case KeyDown:
		s.nav.moveDown()
		s.problem = ""
	case KeyLeft:
		s.nav.moveBy(-s.pageSize)
		s.problem = ""
	case KeyRight:
		s.nav.moveBy(s.pageSize)
		s.problem = ""
	}
}

// Status reports the widget lifecycle state.
func (s *Select[T]) Status() Status {
	return s.status
}

// Value returns the value of the chosen option, ErrCanceled after a
// cancel, or ErrActive while the prompt is still running.
func (s *Select[T]) Value() (T, error) {
	var zero T
	switch s.status {
	case StatusSubmitted:
		return s.choices[s.nav.index].Value, nil
	case StatusCanceled:
		return zero, ErrCanceled
	default:
		return zero, ErrActive
	}
}

// Frame projects the current state into a drawable frame.
func (s *Select[T]) Frame() Frame {
	switch s.status {
	case StatusSubmitted:
		return Frame{Lines: []Line{headline(s.status, s.message, span(StyleAnswer, s.choices[s.nav.index].Title))}}
	case StatusCanceled:
		return Frame{Lines: []Line{headline(s.status, s.message, span(StyleMuted, "canceled"))}}
	}

	lines := []Line{headline(s.status, s.message)}
	start, end := pageWindow(s.nav.index, len(s.choices), s.pageSize)
	for i := start; i < end; i++ {
		c := s.choices[i]
		marker := span(StyleOption, "  ")
		style := StyleOption
		if c.Disabled {
			style = StyleMuted
		}
		if i == s.nav.index {
			marker = span(StyleHighlight, "> ")
			if !c.Disabled {
				style = StyleHighlight
			}
		}
		spans := []Span{marker, span(style, c.Title)}
		if i == s.nav.index && c.Description != "" {
			spans = append(spans, span(StyleMuted, " - "+c.Description))
		}
		lines = append(lines, Line{Spans: spans})
	}
	if hint := pageHint(s.nav.index, len(s.choices), s.pageSize); hint != "" {
		lines = append(lines, row(span(StyleMuted, hint)))
	}
	if s.problem != "" {
		lines = append(lines, row(span(StyleError, s.problem)))
	}
	return Frame{Lines: lines}
}

// pageWindow returns the half-open row range visible around index.
func pageWindow(index, length, pageSize int) (start, end int) {
	start = (index / pageSize) * pageSize
	end = min(start+pageSize, length)
	return start, end
}

// pageHint describes the current page when the list spans more than one.
func pageHint(index, length, pageSize int) string {
	pages := (length + pageSize - 1) / pageSize
	if pages <= 1 {
		return ""
	}
	return fmt.Sprintf("page %d/%d", index/pageSize+1, pages)
}
