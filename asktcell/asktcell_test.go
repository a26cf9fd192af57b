package asktcell

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askkit/ask"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init(), "simulation screen should initialize")
	sim.SetSize(40, 10)
	t.Cleanup(sim.Fini)
	return sim
}

// rowText joins the runes of one screen row, dropping trailing blanks.
func rowText(t *testing.T, sim tcell.SimulationScreen, row int) string {
	t.Helper()

	cells, width, height := sim.GetContents()
	require.Less(t, row, height, "row out of range")

	var b strings.Builder
	for x := 0; x < width; x++ {
		for _, r := range cells[row*width+x].Runes {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestKeyTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ask.KeyEvent
		ok   bool
	}{
		{
			name: "rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone),
			want: ask.Char('y'),
			ok:   true,
		},
		{
			name: "wide rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, '日', tcell.ModNone),
			want: ask.Char('日'),
			ok:   true,
		},
		{
			name: "enter",
			ev:   tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeySubmit},
			ok:   true,
		},
		{
			name: "escape",
			ev:   tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyCancel},
			ok:   true,
		},
		{
			name: "ctrl+c",
			ev:   tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyCancel},
			ok:   true,
		},
		{
			name: "backspace",
			ev:   tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyBackspace},
			ok:   true,
		},
		{
			name: "legacy backspace",
			ev:   tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyBackspace},
			ok:   true,
		},
		{
			name: "delete",
			ev:   tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyDelete},
			ok:   true,
		},
		{
			name: "up",
			ev:   tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyUp},
			ok:   true,
		},
		{
			name: "down",
			ev:   tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyDown},
			ok:   true,
		},
		{
			name: "left",
			ev:   tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyLeft},
			ok:   true,
		},
		{
			name: "right",
			ev:   tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyRight},
			ok:   true,
		},
		{
			name: "home",
			ev:   tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyHome},
			ok:   true,
		},
		{
			name: "ctrl+a acts as home",
			ev:   tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyHome},
			ok:   true,
		},
		{
			name: "end",
			ev:   tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyEnd},
			ok:   true,
		},
		{
			name: "ctrl+e acts as end",
			ev:   tcell.NewEventKey(tcell.KeyCtrlE, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyEnd},
			ok:   true,
		},
		{
			name: "tab",
			ev:   tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyTab},
			ok:   true,
		},
		{
			name: "backtab acts as tab",
			ev:   tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone),
			want: ask.KeyEvent{Key: ask.KeyTab},
			ok:   true,
		},
		{
			name: "unmapped function key",
			ev:   tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone),
			want: ask.KeyEvent{},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Key(tt.ev)
			assert.Equal(t, tt.ok, ok, "translation availability should match")
			assert.Equal(t, tt.want, got, "translated event should match")
		})
	}
}

func TestEventsDeliversKeys(t *testing.T) {
	sim := newSimScreen(t)
	sim.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	events := NewEvents(sim)

	got, err := events.Next()
	require.NoError(t, err)
	assert.Equal(t, ask.Char('y'), got, "rune key should come through first")

	got, err = events.Next()
	require.NoError(t, err)
	assert.Equal(t, ask.KeyEvent{Key: ask.KeySubmit}, got, "enter should follow")
}

func TestEventsSkipsMouseEvents(t *testing.T) {
	sim := newSimScreen(t)
	sim.InjectMouse(3, 3, tcell.Button1, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)

	got, err := NewEvents(sim).Next()
	require.NoError(t, err)
	assert.Equal(t, ask.Char('n'), got, "mouse events should be skipped")
}

func TestEventsFinishedScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init(), "simulation screen should initialize")
	sim.Fini()

	_, err := NewEvents(sim).Next()
	assert.ErrorIs(t, err, ask.ErrEOF, "finalized screen should report EOF")
}

func TestPainterDrawsStyledFrame(t *testing.T) {
	sim := newSimScreen(t)
	painter := NewPainter(sim, nil)

	widget := ask.NewConfirm("Proceed?")
	require.NoError(t, painter.Draw(widget.Frame()))

	assert.Equal(t, "? Proceed? No / Yes", rowText(t, sim, 0), "frame text should land on row zero")

	cells, _, _ := sim.GetContents()
	mark := ask.ThemeDefault.Color(ask.StylePrompt)
	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(mark.R), int32(mark.G), int32(mark.B))).
		Bold(mark.Bold)
	assert.Equal(t, want, cells[0].Style, "mark cell should use the prompt color")
}

func TestPainterCursorPlacement(t *testing.T) {
	sim := newSimScreen(t)
	painter := NewPainter(sim, nil)

	widget := ask.NewText("Name")
	widget.HandleKey(ask.Char('a'))
	require.NoError(t, painter.Draw(widget.Frame()))

	x, y, visible := sim.GetCursor()
	assert.True(t, visible, "active text widget should show the cursor")
	assert.Equal(t, 0, y)
	assert.Equal(t, 8, x, "cursor should sit after the typed rune")

	widget.HandleKey(ask.KeyEvent{Key: ask.KeySubmit})
	require.NoError(t, painter.Draw(widget.Frame()))

	_, _, visible = sim.GetCursor()
	assert.False(t, visible, "submitted frame has no cursor")
}

func TestPainterAdvancesWideRunes(t *testing.T) {
	sim := newSimScreen(t)
	painter := NewPainter(sim, nil)

	widget := ask.NewText("Name")
	widget.HandleKey(ask.Char('日'))
	require.NoError(t, painter.Draw(widget.Frame()))

	assert.Contains(t, rowText(t, sim, 0), "日", "wide rune should be drawn")

	x, _, _ := sim.GetCursor()
	assert.Equal(t, 9, x, "wide rune should advance the cursor two cells")
}

func TestPainterClearsStaleRows(t *testing.T) {
	sim := newSimScreen(t)
	painter := NewPainter(sim, nil)

	tall, err := ask.NewMultiSelect("Pets", ask.Choices("dog", "cat"))
	require.NoError(t, err)
	require.NoError(t, painter.Draw(tall.Frame()))
	require.NotEmpty(t, rowText(t, sim, 1), "tall frame should fill more than one row")

	require.NoError(t, painter.Draw(ask.NewConfirm("Proceed?").Frame()))
	assert.Empty(t, rowText(t, sim, 1), "rows past the new frame should be cleared")
	assert.Empty(t, rowText(t, sim, 2), "rows past the new frame should be cleared")
}

func TestRunOnScreen(t *testing.T) {
	sim := newSimScreen(t)
	sim.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)

	got, err := Run(sim, ask.NewConfirm("Proceed?"), nil)
	require.NoError(t, err)
	assert.True(t, got, "y should mean yes")
	assert.Equal(t, "✓ Proceed? Yes", rowText(t, sim, 0), "final frame should stay on screen")
}

func TestRunOnScreenCancel(t *testing.T) {
	sim := newSimScreen(t)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	_, err := Run(sim, ask.NewConfirm("Proceed?"), nil)
	assert.ErrorIs(t, err, ask.ErrCanceled, "escape should cancel the prompt")
}

func TestRunUsesProvidedTheme(t *testing.T) {
	sim := newSimScreen(t)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	_, err := Run(sim, ask.NewConfirm("Proceed?"), ask.ThemeDark)
	require.NoError(t, err)

	cells, _, _ := sim.GetContents()
	mark := ask.ThemeDark.Color(ask.StylePrompt)
	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(mark.R), int32(mark.G), int32(mark.B))).
		Bold(mark.Bold)
	assert.Equal(t, want, cells[0].Style, "mark cell should use the configured theme")
}
