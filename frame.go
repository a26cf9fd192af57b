package ask

import "github.com/mattn/go-runewidth"

// Style is a semantic span style. Frames carry styles rather than colors
// so the same projection can be painted by any backend; the Theme decides
// what each style looks like.
type Style int

// Span styles used by the built-in widgets.
const (
	StylePrompt Style = iota
	StyleMessage
	StyleAnswer
	StylePlaceholder
	StyleError
	StyleOption
	StyleHighlight
	StyleMarker
	StyleMuted
)

// Span is a run of text drawn in a single style.
type Span struct {
	Style Style
	Text  string
}

// Line is one row of a frame.
type Line struct {
	Spans []Span
}

// Cursor is a text-cursor position within a frame. Row indexes into
// Frame.Lines; Col is measured in display cells from the line start so
// wide characters occupy two cells.
type Cursor struct {
	Row int
	Col int
}

// Frame is the backend-agnostic description of what a widget looks like
// right now: styled lines plus an optional text cursor. Frames are
// recomputed from widget state on every event and never stored.
type Frame struct {
	Lines  []Line
	Cursor *Cursor
}

// Width returns the display width of a line in cells.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += cellWidth(s.Text)
	}
	return w
}

// Text returns the unstyled text of a line.
func (l Line) Text() string {
	t := ""
	for _, s := range l.Spans {
		t += s.Text
	}
	return t
}

func span(st Style, text string) Span {
	return Span{Style: st, Text: text}
}

func row(spans ...Span) Line {
	return Line{Spans: spans}
}

// cellWidth returns the display width of a string in terminal cells.
func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Widget frames share a small fixed vocabulary of prefix marks.
const (
	markActive   = "? "
	markDone     = "✓ "
	markCanceled = "✗ "
)

// headline builds the first frame line for a widget: status mark plus the
// prompt message. Extra spans, if any, follow after a separating space.
func headline(st Status, message string, extra ...Span) Line {
	mark := markActive
	markStyle := StylePrompt
	switch st {
	case StatusSubmitted:
		mark = markDone
	case StatusCanceled:
		mark = markCanceled
		markStyle = StyleMuted
	}
	spans := make([]Span, 0, len(extra)+3)
	spans = append(spans, span(markStyle, mark), span(StyleMessage, message))
	if len(extra) > 0 {
		spans = append(spans, span(StyleMuted, " "))
		spans = append(spans, extra...)
	}
	return Line{Spans: spans}
}
