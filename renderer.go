package ask

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ANSIRenderer paints frames to a terminal using ANSI escape sequences.
//
// Frames are drawn in place: the renderer tracks how many lines the
// previous frame occupied and where it left the cursor, walks back to
// the top of that block, and repaints line by line with clear-to-end so
// shrinking frames leave no residue. The text cursor is hidden while a
// frame is repainted and shown again only when the frame asks for one,
// which keeps list prompts from flashing a stray cursor.
//
// Each Draw issues a single buffered write to minimize flicker on slow
// terminals.
type ANSIRenderer struct {
	output    io.Writer
	theme     *Theme
	width     int // max display cells per line, 0 means unbounded
	lastLines int // lines occupied by the previous frame
	lastRow   int // row within that block where the cursor was left
}

// NewANSIRenderer creates a renderer writing to output with the given
// theme. A nil theme falls back to ThemeDefault.
func NewANSIRenderer(output io.Writer, theme *Theme) *ANSIRenderer {
	if theme == nil {
		theme = ThemeDefault
	}
	return &ANSIRenderer{output: output, theme: theme}
}

// SetWidth bounds painted lines to the given number of display cells. A
// line wider than the terminal wraps physically, which would desync the
// walk-back bookkeeping, so the driver sets this from the terminal size.
// Zero or negative leaves lines unbounded.
func (r *ANSIRenderer) SetWidth(width int) {
	r.width = width
}

// Draw replaces the previously drawn frame with f.
func (r *ANSIRenderer) Draw(f Frame) error {
	lines := f.Lines
	if len(lines) == 0 {
		lines = []Line{{}}
	}
	n := len(lines)

	var b strings.Builder
	b.WriteString("\x1b[?25l")

	// Walk back to the first line of the previous block.
	if r.lastRow > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", r.lastRow)
	}
	b.WriteString("\r")

	for i, line := range lines {
		b.WriteString("\x1b[K")
		b.WriteString(r.theme.FormatLine(clipLine(line, r.width)))
		if i < n-1 {
			b.WriteString("\r\n")
		}
	}

	// Clear surplus rows left over from a taller previous frame.
	if extra := r.lastLines - n; extra > 0 {
		for range extra {
			b.WriteString("\r\n\x1b[K")
		}
		fmt.Fprintf(&b, "\x1b[%dA", extra)
		b.WriteString("\r")
	}

	if f.Cursor != nil {
		if up := n - 1 - f.Cursor.Row; up > 0 {
			fmt.Fprintf(&b, "\x1b[%dA", up)
		}
		b.WriteString("\r")
		if f.Cursor.Col > 0 {
			fmt.Fprintf(&b, "\x1b[%dC", f.Cursor.Col)
		}
		b.WriteString("\x1b[?25h")
		r.lastRow = f.Cursor.Row
	} else {
		r.lastRow = n - 1
	}
	r.lastLines = n

	if _, err := io.WriteString(r.output, b.String()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// clipLine truncates a line to at most width display cells, cutting the
// overflowing span on a rune boundary so wide characters are never split.
func clipLine(l Line, width int) Line {
	if width <= 0 || l.Width() <= width {
		return l
	}
	remain := width
	spans := make([]Span, 0, len(l.Spans))
	for _, s := range l.Spans {
		w := cellWidth(s.Text)
		if w <= remain {
			spans = append(spans, s)
			remain -= w
			continue
		}
		if remain > 0 {
			spans = append(spans, Span{Style: s.Style, Text: runewidth.Truncate(s.Text, remain, "")})
		}
		break
	}
	return Line{Spans: spans}
}
