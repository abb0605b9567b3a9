package term

import "fmt"

// InsertCharacters shifts cells [x, cols-n) at the cursor's row right
// by n, discarding cells pushed past the right edge, and blanks the n
// cells uncovered at the cursor (spec.md mirrors insertLines's shift
// direction at the character level; grounded on internal/gopyte/
// screen.go's InsertCharacters).
func (t *Terminal) InsertCharacters(n int) {
	if n <= 0 {
		n = 1
	}
	if n > t.cols-t.cursor.X {
		n = t.cols - t.cursor.X
	}
	t.shiftRowRight(t.cursor.Y, t.cursor.X, n)
}

// DeleteCharacters removes n cells at the cursor, shifting the
// remainder of the row left and filling the uncovered cells at the
// right edge with blank(pen). Pending-wrap is left untouched per
// SPEC_FULL.md's supplemented behavior (spec.md §4.9).
func (t *Terminal) DeleteCharacters(n int) {
	if n <= 0 {
		n = 1
	}
	x := t.cursor.X
	if n > t.cols-x {
		n = t.cols - x
	}
	row := t.screen.GetRow(t.cursor.Y)
	copy(row[x:], row[x+n:])
	b := blank(t.cursor.Pen)
	for i := t.cols - n; i < t.cols; i++ {
		row[i] = b
	}
}

// EraseCharacters blanks n cells starting at the cursor without
// shifting the remainder of the row. Pending-wrap is left untouched
// per SPEC_FULL.md's supplemented behavior (spec.md §4.9).
func (t *Terminal) EraseCharacters(n int) {
	if n <= 0 {
		n = 1
	}
	to := t.cursor.X + n
	if to > t.cols {
		to = t.cols
	}
	t.screen.FillRowRange(t.cursor.Y, t.cursor.X, to, t.cursor.Pen)
}

// EraseDisplay clears cells according to mode (spec.md §4.10). In
// every variant, pending-wrap is cleared, matching the teacher's own
// EraseInDisplay which resets the LCF-equivalent on any erase.
func (t *Terminal) EraseDisplay(mode EraseDisplayMode) error {
	switch mode {
	case EraseBelow:
		t.screen.FillRowRange(t.cursor.Y, t.cursor.X, t.cols, t.cursor.Pen)
		for y := t.cursor.Y + 1; y < t.rows; y++ {
			t.screen.FillRow(y, t.cursor.Pen)
		}
	case EraseAbove:
		t.screen.FillRowRange(t.cursor.Y, 0, t.cursor.X+1, t.cursor.Pen)
		for y := 0; y < t.cursor.Y; y++ {
			t.screen.FillRow(y, t.cursor.Pen)
		}
	case EraseComplete:
		for y := 0; y < t.rows; y++ {
			t.screen.FillRow(y, t.cursor.Pen)
		}
	default:
		logUnimplementedMode("EraseDisplay", int(mode))
		return fmt.Errorf("%w: EraseDisplay mode %d", ErrUnimplementedMode, mode)
	}
	t.cursor.PendingWrap = false
	return nil
}

// EraseLine clears cells on the cursor's row according to mode
// (spec.md §4.11), also clearing pending-wrap.
func (t *Terminal) EraseLine(mode EraseLineMode) error {
	switch mode {
	case EraseLineRight:
		t.screen.FillRowRange(t.cursor.Y, t.cursor.X, t.cols, t.cursor.Pen)
	case EraseLineLeft:
		t.screen.FillRowRange(t.cursor.Y, 0, t.cursor.X+1, t.cursor.Pen)
	case EraseLineComplete:
		t.screen.FillRow(t.cursor.Y, t.cursor.Pen)
	default:
		logUnimplementedMode("EraseLine", int(mode))
		return fmt.Errorf("%w: EraseLine mode %d", ErrUnimplementedMode, mode)
	}
	t.cursor.PendingWrap = false
	return nil
}

// DECALN resets the scrolling region to full screen (which homes the
// cursor to (0,0)), then fills every cell with 'E' under a neutral
// pen: the screen alignment test (spec.md §4.17), grounded on
// internal/gopyte/screen.go's AlignmentDisplay.
func (t *Terminal) DECALN() {
	t.SetScrollingRegion(1, t.rows)

	pen := Pen{}
	for y := 0; y < t.rows; y++ {
		row := t.screen.GetRow(y)
		for x := range row {
			row[x] = pen
			row[x].Char = 'E'
		}
	}
}
