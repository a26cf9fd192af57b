package ask

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		events []KeyEvent
		want   string
	}{
		{
			name:   "plain input",
			events: script("hello", key(KeySubmit)),
			want:   "hello",
		},
		{
			name:   "backspace edits before submit",
			events: script("hellox", key(KeyBackspace), key(KeySubmit)),
			want:   "hello",
		},
		{
			name:   "cursor movement inserts mid-word",
			events: script("hllo", key(KeyHome), key(KeyRight), Char('e'), key(KeySubmit)),
			want:   "hello",
		},
		{
			name:   "delete removes under the cursor",
			events: script("heello", key(KeyHome), key(KeyRight), key(KeyDelete), key(KeySubmit)),
			want:   "hello",
		},
		{
			name:   "unicode input",
			events: script("日本語", key(KeySubmit)),
			want:   "日本語",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := NewText("Name")
			for _, ev := range tt.events {
				w.HandleKey(ev)
			}

			require.Equal(t, StatusSubmitted, w.Status())
			got, err := w.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextRejectsEmptySubmit(t *testing.T) {
	t.Parallel()

	w := NewText("Name")
	w.HandleKey(key(KeySubmit))

	assert.Equal(t, StatusActive, w.Status(), "empty input must not submit")

	f := w.Frame()
	require.Len(t, f.Lines, 2, "a rejected submit should show an error row")
	assert.Equal(t, "cannot be empty", f.Lines[1].Text())
	assert.Equal(t, StyleError, f.Lines[1].Spans[0].Style)

	// Typing something clears the rejection and submission goes through.
	w.HandleKey(Char('a'))
	assert.Len(t, w.Frame().Lines, 1, "error row should disappear once the input is valid")

	w.HandleKey(key(KeySubmit))
	assert.Equal(t, StatusSubmitted, w.Status())
}

func TestTextDefaultValue(t *testing.T) {
	t.Parallel()

	w := NewText("Name").WithDefault("anonymous")
	w.HandleKey(key(KeySubmit))

	require.Equal(t, StatusSubmitted, w.Status(), "a default makes the empty input submittable")
	got, err := w.Value()
	require.NoError(t, err)
	assert.Equal(t, "anonymous", got)
}

func TestTextDefaultIgnoredWhenTyped(t *testing.T) {
	t.Parallel()

	w := NewText("Name").WithDefault("anonymous")
	for _, ev := range script("alice", key(KeySubmit)) {
		w.HandleKey(ev)
	}

	got, err := w.Value()
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestTextInitialValue(t *testing.T) {
	t.Parallel()

	w := NewText("Name").WithInitial("bob")

	// The initial value is real buffer content, editable as usual.
	w.HandleKey(key(KeyBackspace))
	w.HandleKey(key(KeySubmit))

	got, err := w.Value()
	require.NoError(t, err)
	assert.Equal(t, "bo", got)
}

func TestTextValidator(t *testing.T) {
	t.Parallel()

	noSpaces := func(v string) error {
		if strings.ContainsRune(v, ' ') {
			return errors.New("no spaces allowed")
		}
		return nil
	}

	w := NewText("Project").WithValidator(noSpaces)
	for _, ev := range script("my proj") {
		w.HandleKey(ev)
	}

	// The violation is visible live, before any submit attempt.
	f := w.Frame()
	require.Len(t, f.Lines, 2)
	assert.Equal(t, "no spaces allowed", f.Lines[1].Text())

	w.HandleKey(key(KeySubmit))
	assert.Equal(t, StatusActive, w.Status(), "failing validation must block submission")

	// Deleting back to a valid value clears the message and unblocks.
	for range 5 {
		w.HandleKey(key(KeyBackspace))
	}
	assert.Len(t, w.Frame().Lines, 1)

	w.HandleKey(key(KeySubmit))
	require.Equal(t, StatusSubmitted, w.Status())
	got, err := w.Value()
	require.NoError(t, err)
	assert.Equal(t, "my", got)
}

func TestTextValidatorSeesDefault(t *testing.T) {
	t.Parallel()

	rejected := errors.New("reserved name")
	w := NewText("Name").
		WithDefault("root").
		WithValidator(func(v string) error {
			if v == "root" {
				return rejected
			}
			return nil
		})

	w.HandleKey(key(KeySubmit))
	assert.Equal(t, StatusActive, w.Status(),
		"the default value passes through the validator like typed input")
	assert.Equal(t, "reserved name", w.Frame().Lines[1].Text())
}

func TestTextPlaceholderShownWhileEmpty(t *testing.T) {
	t.Parallel()

	w := NewText("Name").WithPlaceholder("your name")

	f := w.Frame()
	require.Len(t, f.Lines, 1)
	last := f.Lines[0].Spans[len(f.Lines[0].Spans)-1]
	assert.Equal(t, "your name", last.Text)
	assert.Equal(t, StylePlaceholder, last.Style)

	// Any real content replaces the hint.
	w.HandleKey(Char('a'))
	f = w.Frame()
	last = f.Lines[0].Spans[len(f.Lines[0].Spans)-1]
	assert.Equal(t, "a", last.Text)
	assert.Equal(t, StyleAnswer, last.Style)

	// Deleting back to empty brings it back.
	w.HandleKey(key(KeyBackspace))
	f = w.Frame()
	last = f.Lines[0].Spans[len(f.Lines[0].Spans)-1]
	assert.Equal(t, "your name", last.Text)
	assert.Equal(t, StylePlaceholder, last.Style)
}

func TestTextDefaultDoublesAsHint(t *testing.T) {
	t.Parallel()

	w := NewText("Name").WithDefault("anonymous")

	f := w.Frame()
	last := f.Lines[0].Spans[len(f.Lines[0].Spans)-1]
	assert.Equal(t, "anonymous", last.Text,
		"without a placeholder the default value is shown as the hint")
	assert.Equal(t, StylePlaceholder, last.Style)
}

func TestTextCursorColumn(t *testing.T) {
	t.Parallel()

	w := NewText("Name")
	prefix := cellWidth("? ") + cellWidth("Name") + 1

	f := w.Frame()
	require.NotNil(t, f.Cursor)
	assert.Equal(t, 0, f.Cursor.Row)
	assert.Equal(t, prefix, f.Cursor.Col, "the cursor starts right after the message")

	w.HandleKey(Char('a'))
	w.HandleKey(Char('b'))
	assert.Equal(t, prefix+2, w.Frame().Cursor.Col)

	w.HandleKey(key(KeyLeft))
	assert.Equal(t, prefix+1, w.Frame().Cursor.Col)

	// Wide runes advance the cursor by their display width.
	w.HandleKey(Char('日'))
	assert.Equal(t, prefix+3, w.Frame().Cursor.Col)
}

func TestTextCancel(t *testing.T) {
	t.Parallel()

	w := NewText("Name")
	for _, ev := range script("abc", key(KeyCancel)) {
		w.HandleKey(ev)
	}

	assert.Equal(t, StatusCanceled, w.Status())
	got, err := w.Value()
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Empty(t, got, "a canceled prompt never leaks its buffer")

	f := w.Frame()
	assert.Equal(t, "✗ Name canceled", f.Lines[0].Text())
	assert.Nil(t, f.Cursor, "terminal frames carry no cursor")
}

func TestTextSubmittedFrameCollapses(t *testing.T) {
	t.Parallel()

	w := NewText("Name")
	for _, ev := range script("alice", key(KeySubmit)) {
		w.HandleKey(ev)
	}

	f := w.Frame()
	require.Len(t, f.Lines, 1)
	assert.Equal(t, "✓ Name alice", f.Lines[0].Text())
	assert.Nil(t, f.Cursor)
}
