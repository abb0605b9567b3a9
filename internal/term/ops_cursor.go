package term

// CursorUp moves the cursor up n rows, clamped to row 0. It never
// scrolls and never consults the scrolling region — spec.md §9 is
// explicit that this policy is kept apart from index's region-aware
// scrolling, unlike the teacher's own CursorUp which folds both into
// one region-clamped method.
func (t *Terminal) CursorUp(n int) {
	if n <= 0 {
		n = 1
	}
	t.cursor.Y -= n
	if t.cursor.Y < 0 {
		t.cursor.Y = 0
	}
}

// CursorDown moves the cursor down n rows, clamped to the last
// physical row. Never scrolls, never consults the region (spec.md
// §4.2, §9).
func (t *Terminal) CursorDown(n int) {
	if n <= 0 {
		n = 1
	}
	t.cursor.Y += n
	if t.cursor.Y > t.rows-1 {
		t.cursor.Y = t.rows - 1
	}
}

// CursorForward moves the cursor right n columns, clamped to the last
// column. Never triggers wrap or scroll (spec.md §4.2).
func (t *Terminal) CursorForward(n int) {
	if n <= 0 {
		n = 1
	}
	t.cursor.X += n
	if t.cursor.X > t.cols-1 {
		t.cursor.X = t.cols - 1
	}
}

// CursorBack moves the cursor left n columns, clamped to column 0
// (spec.md §4.2).
func (t *Terminal) CursorBack(n int) {
	if n <= 0 {
		n = 1
	}
	t.cursor.X -= n
	if t.cursor.X < 0 {
		t.cursor.X = 0
	}
}

// Backspace moves the cursor one column left; it never wraps to the
// prior line (spec.md §4.2).
func (t *Terminal) Backspace() {
	if t.cursor.X > 0 {
		t.cursor.X--
	}
}

// CarriageReturn moves the cursor to column 0 of the current row
// (spec.md §4.2).
func (t *Terminal) CarriageReturn() {
	t.cursor.X = 0
	t.cursor.PendingWrap = false
}

// Linefeed advances one row via Index, additionally performing a
// carriage return when LNM (SPEC_FULL.md's supplemented mode) is on
// (spec.md §4.2).
func (t *Terminal) Linefeed() {
	t.Index()
	if t.modes.LineFeedNewLine {
		t.cursor.X = 0
	}
}

// SetCursorPos moves the cursor to a 1-indexed (row, col), honoring
// origin mode: when Modes.Origin is set, row/col are relative to the
// scrolling region and clamped to it; otherwise they are absolute and
// clamped to the physical screen (spec.md §4.3). Grounded on
// internal/gopyte/screen.go's CursorPosition, generalized with the
// region-relative branch the teacher's DECOM handling lacks.
func (t *Terminal) SetCursorPos(row, col int) {
	y := row - 1
	x := col - 1

	top, bottom := 0, t.rows-1
	if t.modes.Origin {
		top, bottom = t.region.Top, t.region.Bottom
		y += t.region.Top
	}

	if y < top {
		y = top
	}
	if y > bottom {
		y = bottom
	}
	if x < 0 {
		x = 0
	}
	if x > t.cols-1 {
		x = t.cols - 1
	}

	t.cursor.X, t.cursor.Y = x, y
	t.cursor.PendingWrap = false
}

// SaveCursor stashes the cursor (position, pen, pending-wrap) into the
// single saved-cursor slot, overwriting any earlier save (spec.md
// §4.13).
func (t *Terminal) SaveCursor() {
	t.saved = t.cursor
}

// RestoreCursor loads the cursor from the saved slot. With nothing
// ever saved, the slot holds defaultCursor() — spec.md §4.13's
// specified behavior for restore-before-save.
func (t *Terminal) RestoreCursor() {
	t.cursor = t.saved
}
