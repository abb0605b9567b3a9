package term

import "log"

// Index advances one row (spec.md §4.4, the "LF semantics" the
// teacher's Linefeed/Index both share). It scrolls the region up only
// when the cursor is on the physical bottom row and inside the region;
// a cursor on the region's bottom row above the physical bottom simply
// moves down. Motion outside the region at the physical bottom is a no-op — the
// region and the physical screen bounds are deliberately kept apart
// per spec.md §9.
func (t *Terminal) Index() {
	t.cursor.PendingWrap = false

	atBottom := t.cursor.Y == t.rows-1
	inRegion := t.region.contains(t.cursor.Y)

	switch {
	case atBottom && inRegion:
		t.ScrollUp(1)
	case atBottom:
		// outside the region at the physical bottom: no-op
	default:
		t.cursor.Y++
	}
}

// ReverseIndex retreats one row, scrolling the region down when the
// cursor is on the region's top row; on row 0 above the region it does
// nothing (spec.md §4.5). Per SPEC_FULL.md's Open Question resolution, this honors the
// region symmetrically with Index rather than only ever consulting row
// 0, matching the teacher's own ReverseIndex (internal/gopyte/
// screen.go), which checks scrollTop the same way Index checks
// scrollBottom.
func (t *Terminal) ReverseIndex() {
	switch {
	case t.cursor.Y == t.region.Top:
		t.ScrollDown(1)
	case t.cursor.Y == 0:
		// no region active at the top, no-op beyond the clamp below
	default:
		t.cursor.Y--
	}
	if t.cursor.Y < 0 {
		t.cursor.Y = 0
	}
}

// ScrollUp shifts every row inside the scrolling region up by n,
// discarding rows scrolled off the top of the region and filling the
// uncovered bottom rows with blank(pen) (spec.md §4.6).
func (t *Terminal) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	t.scrollRegion(n, t.cursor.Pen)
}

// ScrollDown preserves the cursor, moves it to the region's top,
// invokes InsertLines(n), then restores the cursor (spec.md §4.6).
func (t *Terminal) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	saved := t.cursor
	t.cursor.X, t.cursor.Y = 0, t.region.Top
	t.InsertLines(n)
	t.cursor = saved
}

// scrollRegion shifts rows [region.Top, region.Bottom] up by delta
// (delta > 0) within that band only, filling uncovered rows at the
// bottom of the band with blank(pen). It is the primitive behind
// ScrollUp; ScrollDown goes through InsertLines instead.
func (t *Terminal) scrollRegion(delta int, pen Pen) {
	top, bottom := t.region.Top, t.region.Bottom
	height := bottom - top + 1
	if delta >= height {
		for y := top; y <= bottom; y++ {
			t.screen.FillRow(y, pen)
		}
		return
	}
	for y := top; y <= bottom-delta; y++ {
		t.screen.CopyRow(y, y+delta)
	}
	for y := bottom - delta + 1; y <= bottom; y++ {
		t.screen.FillRow(y, pen)
	}
}

// InsertLines inserts n blank lines at the cursor's row within the
// scrolling region, pushing existing lines down (spec.md §4.7). A
// no-op if the cursor is outside the region, per SPEC_FULL.md's Open
// Question resolution.
func (t *Terminal) InsertLines(n int) {
	if !t.region.contains(t.cursor.Y) {
		return
	}
	t.cursor.X = 0

	remaining := t.region.Bottom - t.cursor.Y + 1
	k := n
	if k > remaining {
		k = remaining
	}
	if k <= 0 {
		return
	}

	for r := t.region.Bottom; r >= t.cursor.Y+k; r-- {
		t.screen.CopyRow(r, r-k)
	}
	for y := t.cursor.Y; y < t.cursor.Y+k; y++ {
		t.screen.FillRow(y, t.cursor.Pen)
	}
}

// DeleteLines deletes n lines at the cursor's row within the scrolling
// region, pulling lines below up to fill the gap (spec.md §4.8). A
// no-op if the cursor is outside the region.
func (t *Terminal) DeleteLines(n int) {
	if !t.region.contains(t.cursor.Y) {
		return
	}
	t.cursor.X = 0

	remaining := t.region.Bottom - t.cursor.Y + 1
	k := n
	if k > remaining {
		k = remaining
	}
	if k <= 0 {
		return
	}

	for r := t.cursor.Y; r <= t.region.Bottom-k; r++ {
		t.screen.CopyRow(r, r+k)
	}
	for y := t.region.Bottom - k + 1; y <= t.region.Bottom; y++ {
		t.screen.FillRow(y, t.cursor.Pen)
	}
}

// SetScrollingRegion normalizes and stores a new scrolling region from
// 1-indexed input, then homes the cursor via SetCursorPos(1, 1)
// (spec.md §4.12).
func (t *Terminal) SetScrollingRegion(top, bottom int) {
	tt := top
	if tt <= 0 {
		tt = 1
	}
	bb := bottom
	if bb <= 0 || bb > t.rows {
		bb = t.rows
	}
	if tt >= bb {
		tt, bb = 1, t.rows
	}
	t.region = ScrollRegion{Top: tt - 1, Bottom: bb - 1}
	t.SetCursorPos(1, 1)
}

func logUnimplementedMode(op string, mode int) {
	log.Printf("term: %s: unimplemented mode %d", op, mode)
}
