package term

// Cursor is the engine's editing position plus the pen applied to
// every printed cell and the deferred-wrap flag (LCF).
type Cursor struct {
	X, Y int

	// Pen is the style template copied into every printed cell.
	Pen Pen

	// PendingWrap (the "Last Column Flag") is set when a print just
	// landed in the rightmost column. It is distinct from X == cols,
	// which is never a valid resting position for the cursor.
	PendingWrap bool
}

// defaultCursor is the zero-value cursor a Terminal starts with, also
// placed in the saved-cursor slot so restore with no prior save yields it.
func defaultCursor() Cursor {
	return Cursor{Pen: Pen{}}
}

// ScrollRegion is the closed vertical band (Top and Bottom both
// inclusive) that
// vertical-scrolling primitives operate within. Defaults to the whole
// screen.
type ScrollRegion struct {
	Top, Bottom int
}

// contains reports whether row y falls inside the region.
func (r ScrollRegion) contains(y int) bool {
	return y >= r.Top && y <= r.Bottom
}
