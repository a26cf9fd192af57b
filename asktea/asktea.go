// Package asktea hosts ask widgets inside Bubble Tea programs. The
// adapter turns tea.KeyMsg values into ask key events, quits the
// program once the widget reaches a terminal state, and renders frames
// through the ask theme so a prompt looks the same under Bubble Tea as
// under the built-in driver.
package asktea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askkit/ask"
)

// Model adapts a single ask widget to the Bubble Tea component
// contract. Run it as the program root and read the answer from the
// final model:
//
//	p := tea.NewProgram(asktea.New(ask.NewConfirm("Deploy?")))
//	out, err := p.Run()
//	if err != nil {
//		return err
//	}
//	ok, err := out.(asktea.Model[bool]).Value()
//
// A Model can also be embedded in a larger program; forward key
// messages to Update and stop forwarding once Status is terminal.
type Model[T any] struct {
	widget ask.Widget[T]
	theme  *ask.Theme
}

var _ tea.Model = Model[bool]{}

type config struct {
	theme *ask.Theme
}

// Option configures a Model.
type Option func(*config)

// WithTheme sets the color theme used by View. A nil theme keeps the
// default.
func WithTheme(theme *ask.Theme) Option {
	return func(c *config) {
		if theme != nil {
			c.theme = theme
		}
	}
}

// New wraps widget for use inside a Bubble Tea program.
func New[T any](widget ask.Widget[T], opts ...Option) Model[T] {
	cfg := config{theme: ask.ThemeDefault}
	for _, opt := range opts {
		opt(&cfg)
	}
	return Model[T]{widget: widget, theme: cfg.theme}
}

// Init implements tea.Model. Widgets need no startup command.
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update feeds key messages to the widget and quits the program once
// the widget submits or cancels. Non-key messages are ignored.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	for _, event := range Keys(key) {
		m.widget.HandleKey(event)
		if m.widget.Status() != ask.StatusActive {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the widget's current frame through the theme. The frame
// cursor is not drawn; Bubble Tea programs manage the hardware cursor
// themselves.
func (m Model[T]) View() string {
	return strings.Join(m.theme.FormatLines(m.widget.Frame()), "\n")
}

// Status reports the wrapped widget's lifecycle state.
func (m Model[T]) Status() ask.Status {
	return m.widget.Status()
}

// Value returns the widget's answer. It fails with ask.ErrActive while
// the prompt is still running and ask.ErrCanceled after cancellation.
func (m Model[T]) Value() (T, error) {
	return m.widget.Value()
}

// Keys converts a Bubble Tea key message into ask key events. Pasted
// text expands to one event per rune; keys with no ask equivalent
// produce none.
func Keys(msg tea.KeyMsg) []ask.KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		events := make([]ask.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, ask.Char(r))
		}
		return events
	case tea.KeySpace:
		return []ask.KeyEvent{ask.Char(' ')}
	case tea.KeyEnter:
		return []ask.KeyEvent{{Key: ask.KeySubmit}}
	case tea.KeyEsc, tea.KeyCtrlC:
		return []ask.KeyEvent{{Key: ask.KeyCancel}}
	case tea.KeyBackspace:
		return []ask.KeyEvent{{Key: ask.KeyBackspace}}
	case tea.KeyDelete:
		return []ask.KeyEvent{{Key: ask.KeyDelete}}
	case tea.KeyUp:
		return []ask.KeyEvent{{Key: ask.KeyUp}}
	case tea.KeyDown:
		return []ask.KeyEvent{{Key: ask.KeyDown}}
	case tea.KeyLeft:
		return []ask.KeyEvent{{Key: ask.KeyLeft}}
	case tea.KeyRight:
		return []ask.KeyEvent{{Key: ask.KeyRight}}
	case tea.KeyHome, tea.KeyCtrlA:
		return []ask.KeyEvent{{Key: ask.KeyHome}}
	case tea.KeyEnd, tea.KeyCtrlE:
		return []ask.KeyEvent{{Key: ask.KeyEnd}}
	case tea.KeyTab, tea.KeyShiftTab:
		return []ask.KeyEvent{{Key: ask.KeyTab}}
	}
	return nil
}
