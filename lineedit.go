package ask

// lineEditor is the editable text buffer shared by the text, number, and
// password widgets. The cursor is a rune offset and always satisfies
// 0 <= cursor <= len(buf); every mutation re-clamps it.
type lineEditor struct {
	buf    []rune
	cursor int
}

// handleKey applies a single editing or movement event to the buffer.
// Unknown kinds (Submit, Cancel, Tab, Up, Down) are ignored here; the
// owning widget decides what they mean.
func (e *lineEditor) handleKey(ev KeyEvent) {
	switch ev.Key {
	case KeyChar:
		e.insert(ev.Rune)
	case KeyBackspace:
		e.deleteBefore()
	case KeyDelete:
		e.deleteAt()
	case KeyLeft:
		e.moveLeft()
	case KeyRight:
		e.moveRight()
	case KeyHome:
		e.moveHome()
	case KeyEnd:
		e.moveEnd()
	}
}

func (e *lineEditor) insert(r rune) {
	e.buf = append(e.buf[:e.cursor], append([]rune{r}, e.buf[e.cursor:]...)...)
	e.cursor++
}

// deleteBefore removes the rune left of the cursor. No-op at offset 0.
func (e *lineEditor) deleteBefore() {
	if e.cursor == 0 {
		return
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
}

// deleteAt removes the rune under the cursor. No-op at end of buffer.
func (e *lineEditor) deleteAt() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
}

func (e *lineEditor) moveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *lineEditor) moveRight() {
	if e.cursor < len(e.buf) {
		e.cursor++
	}
}

func (e *lineEditor) moveHome() {
	e.cursor = 0
}

func (e *lineEditor) moveEnd() {
	e.cursor = len(e.buf)
}

// setText replaces the buffer and places the cursor at the end.
func (e *lineEditor) setText(text string) {
	e.buf = []rune(text)
	e.cursor = len(e.buf)
}

func (e *lineEditor) String() string {
	return string(e.buf)
}
