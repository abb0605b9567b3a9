package term

// RGB is a resolved 24-bit color. Cells and the cursor pen carry either
// a resolved RGB or no color at all (the terminal's default).
type RGB struct {
	R, G, B uint8
}

// CellAttrs holds the boolean style bits carried by a cell and by the
// cursor's pen.
type CellAttrs struct {
	Bold      bool
	Underline bool
	Inverse   bool

	// Wrap marks the last cell of a row whose line continues onto the
	// row below via soft wrap (set by Print, read by the renderer).
	Wrap bool
}

// Cell is a single addressable unit of the grid.
type Cell struct {
	// Char is a Unicode scalar value; 0 denotes an empty/erased cell.
	Char rune

	Fg, Bg *RGB
	Attrs  CellAttrs
}

// Pen is the style template copied into every printed cell. Its Char
// field is never meaningful — Print always overwrites it.
type Pen = Cell

// blank returns a cell carrying pen's style but with Char cleared,
// the shape every erase/insert/delete operation fills with.
func blank(pen Pen) Cell {
	c := pen
	c.Char = 0
	return c
}
