package term

import "fmt"

// Print writes a single Unicode scalar at the cursor (spec.md §4.1).
// Grounded on internal/gopyte/screen.go's Draw, split out to a
// per-rune operation and generalized with the deferred-wrap flag the
// teacher's own Draw lacks (pyte's LCF, spec.md §9's "non-negotiable"
// requirement).
func (t *Terminal) Print(c rune) {
	if t.cursor.PendingWrap && t.modes.Autowrap {
		cell := t.screen.GetCell(t.cursor.Y, t.cursor.X)
		cell.Attrs.Wrap = true
		t.Index()
		t.cursor.X = 0
	}

	if t.modes.Insert {
		t.shiftRowRight(t.cursor.Y, t.cursor.X, 1)
	}

	cell := t.screen.GetCell(t.cursor.Y, t.cursor.X)
	*cell = t.cursor.Pen
	cell.Char = c

	t.cursor.X++
	if t.cursor.X == t.cols {
		t.cursor.X = t.cols - 1
		t.cursor.PendingWrap = true
	}
}

// shiftRowRight shifts cells [x, cols-n) to [x+n, cols), discarding the
// n cells pushed off the right edge, and fills [x, x+n) with
// blank(pen). Used by Print under IRM (SPEC_FULL's supplemented insert
// mode) and mirrors InsertCharacters' own shift direction.
func (t *Terminal) shiftRowRight(y, x, n int) {
	row := t.screen.GetRow(y)
	copy(row[x+n:], row[x:len(row)-n])
	b := blank(t.cursor.Pen)
	for i := x; i < x+n && i < len(row); i++ {
		row[i] = b
	}
}

// HorizontalTab walks the cursor to the next tabstop, writing spaces
// with the current pen along the way (spec.md §4.15).
func (t *Terminal) HorizontalTab() {
	for {
		if t.cursor.X == t.cols-1 {
			return
		}
		t.Print(' ')
		if t.tabs.Get(t.cursor.X) {
			return
		}
	}
}

// TabSet marks the cursor's column as a stop (spec.md §4.16).
func (t *Terminal) TabSet() {
	t.tabs.Set(t.cursor.X)
}

// TabClear clears a tabstop per mode (spec.md §4.16). Unknown modes
// are logged and ignored, returning ErrUnimplementedMode.
func (t *Terminal) TabClear(mode TabClearMode) error {
	switch mode {
	case TabClearCurrent:
		t.tabs.Unset(t.cursor.X)
		return nil
	case TabClearAll:
		t.tabs.ClearAll()
		return nil
	default:
		logUnimplementedMode("TabClear", int(mode))
		return fmt.Errorf("%w: TabClear mode %d", ErrUnimplementedMode, mode)
	}
}
