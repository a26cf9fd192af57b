// Package asktcell runs ask widgets on a tcell screen. Events adapts
// tcell key events to ask key events and Painter draws frames with the
// ask theme mapped onto tcell styles, so a prompt can live inside a
// full-screen tcell application instead of owning the terminal.
package asktcell

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/askkit/ask"
)

// Events adapts a tcell screen to the ask event source contract. Resize
// and mouse events are skipped; the prompt repaints on the next key.
type Events struct {
	screen tcell.Screen
}

var _ ask.EventSource = (*Events)(nil)

// NewEvents returns an event source reading from screen.
func NewEvents(screen tcell.Screen) *Events {
	return &Events{screen: screen}
}

// Next blocks until the screen delivers a key event with an ask
// equivalent. It fails with ask.ErrEOF once the screen is finalized.
func (e *Events) Next() (ask.KeyEvent, error) {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return ask.KeyEvent{}, ask.ErrEOF
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if event, ok := Key(key); ok {
			return event, nil
		}
	}
}

// Key converts a tcell key event into an ask key event. The second
// return value is false for keys with no ask equivalent.
func Key(ev *tcell.EventKey) (ask.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return ask.Char(ev.Rune()), true
	case tcell.KeyEnter:
		return ask.KeyEvent{Key: ask.KeySubmit}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ask.KeyEvent{Key: ask.KeyCancel}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ask.KeyEvent{Key: ask.KeyBackspace}, true
	case tcell.KeyDelete:
		return ask.KeyEvent{Key: ask.KeyDelete}, true
	case tcell.KeyUp:
		return ask.KeyEvent{Key: ask.KeyUp}, true
	case tcell.KeyDown:
		return ask.KeyEvent{Key: ask.KeyDown}, true
	case tcell.KeyLeft:
		return ask.KeyEvent{Key: ask.KeyLeft}, true
	case tcell.KeyRight:
		return ask.KeyEvent{Key: ask.KeyRight}, true
	case tcell.KeyHome, tcell.KeyCtrlA:
		return ask.KeyEvent{Key: ask.KeyHome}, true
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return ask.KeyEvent{Key: ask.KeyEnd}, true
	case tcell.KeyTab, tcell.KeyBacktab:
		return ask.KeyEvent{Key: ask.KeyTab}, true
	}
	return ask.KeyEvent{}, false
}

// Painter draws frames onto a tcell screen starting at the top-left
// corner. Theme colors become tcell foreground styles; the frame cursor
// becomes the hardware cursor.
type Painter struct {
	screen tcell.Screen
	theme  *ask.Theme
}

var _ ask.Renderer = (*Painter)(nil)

// NewPainter returns a renderer drawing on screen. A nil theme uses the
// default.
func NewPainter(screen tcell.Screen, theme *ask.Theme) *Painter {
	if theme == nil {
		theme = ask.ThemeDefault
	}
	return &Painter{screen: screen, theme: theme}
}

// Draw implements ask.Renderer.
func (p *Painter) Draw(f ask.Frame) error {
	p.screen.Clear()
	for y, line := range f.Lines {
		x := 0
		for _, span := range line.Spans {
			style := p.style(span.Style)
			for _, r := range span.Text {
				p.screen.SetContent(x, y, r, nil, style)
				x += runewidth.RuneWidth(r)
			}
		}
	}
	if f.Cursor != nil {
		p.screen.ShowCursor(f.Cursor.Col, f.Cursor.Row)
	} else {
		p.screen.HideCursor()
	}
	p.screen.Show()
	return nil
}

func (p *Painter) style(s ask.Style) tcell.Style {
	c := p.theme.Color(s)
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Bold(c.Bold)
}

// Run drives widget on screen until it submits or cancels. The screen
// must be initialized; the caller keeps ownership and finalizes it. A
// nil theme uses the default.
func Run[T any](screen tcell.Screen, widget ask.Widget[T], theme *ask.Theme) (T, error) {
	return ask.Run(widget,
		ask.WithEvents(NewEvents(screen)),
		ask.WithRenderer(NewPainter(screen, theme)),
	)
}
