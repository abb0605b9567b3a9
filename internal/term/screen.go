package term

import "strings"

// Screen is the addressable 2D grid of styled cells. It implements the
// storage-layer contract spec.md §6 describes as external to the core
// (getCell/getRow/getVisible/copyRow/scroll/resize/testString); this
// package provides a concrete instance of it so Terminal has something
// to operate on. Grounded on internal/gopyte/screen.go's buffer/attrs
// slice-of-slices layout, generalized from parallel rune/Attributes
// arrays to a single grid of Cell.
type Screen struct {
	cols, rows int
	rows_      [][]Cell
}

// newScreen allocates a rows x cols grid, every cell blank under pen.
func newScreen(cols, rows int, pen Pen) *Screen {
	s := &Screen{cols: cols, rows: rows}
	s.rows_ = make([][]Cell, rows)
	for y := range s.rows_ {
		s.rows_[y] = newRow(cols, pen)
	}
	return s
}

func newRow(cols int, pen Pen) []Cell {
	row := make([]Cell, cols)
	b := blank(pen)
	for x := range row {
		row[x] = b
	}
	return row
}

// GetCell returns a pointer to the mutable cell at (y, x).
func (s *Screen) GetCell(y, x int) *Cell {
	return &s.rows_[y][x]
}

// GetRow returns the mutable row slice of length cols at y.
func (s *Screen) GetRow(y int) []Cell {
	return s.rows_[y]
}

// GetVisible returns every row of the visible grid.
func (s *Screen) GetVisible() [][]Cell {
	return s.rows_
}

// CopyRow overwrites row dstY with a copy of row srcY's contents.
func (s *Screen) CopyRow(dstY, srcY int) {
	copy(s.rows_[dstY], s.rows_[srcY])
}

// FillRow overwrites every cell of row y with blank(pen).
func (s *Screen) FillRow(y int, pen Pen) {
	row := s.rows_[y]
	b := blank(pen)
	for x := range row {
		row[x] = b
	}
}

// FillRowRange overwrites cells [from, to) of row y with blank(pen).
func (s *Screen) FillRowRange(y, from, to int, pen Pen) {
	if from < 0 {
		from = 0
	}
	if to > s.cols {
		to = s.cols
	}
	row := s.rows_[y]
	b := blank(pen)
	for x := from; x < to; x++ {
		row[x] = b
	}
}

// Scroll shifts every row of the grid up (positive delta) or down
// (negative delta), discarding rows pushed past the edge and filling
// the rows uncovered at the opposite edge with pen-blank cells. It
// ignores the scrolling region. ScrollUp, InsertLines and DeleteLines
// do not call it: they shift rows within the region via CopyRow and
// FillRow.
func (s *Screen) Scroll(delta int, pen Pen) {
	if delta == 0 {
		return
	}
	if delta > 0 {
		if delta >= s.rows {
			for y := 0; y < s.rows; y++ {
				s.FillRow(y, pen)
			}
			return
		}
		copy(s.rows_[0:], s.rows_[delta:])
		for y := s.rows - delta; y < s.rows; y++ {
			s.rows_[y] = newRow(s.cols, pen)
		}
		return
	}
	delta = -delta
	if delta >= s.rows {
		for y := 0; y < s.rows; y++ {
			s.FillRow(y, pen)
		}
		return
	}
	copy(s.rows_[delta:], s.rows_[0:s.rows-delta])
	for y := 0; y < delta; y++ {
		s.rows_[y] = newRow(s.cols, pen)
	}
}

// Resize grows or shrinks the grid in place. Column growth pads with
// blank(pen); column shrink truncates. Row growth appends blank rows;
// row shrink drops bottom rows. Reflow is explicitly not implemented
// per spec.md's Non-goals ("no history reflow on resize"), matching
// internal/gopyte/screen.go's NativeScreen.Resize which also truncates
// rather than reflows.
func (s *Screen) Resize(cols, rows int, pen Pen) {
	if cols != s.cols {
		for y := range s.rows_ {
			row := s.rows_[y]
			if cols < len(row) {
				s.rows_[y] = row[:cols]
			} else {
				grown := make([]Cell, cols)
				copy(grown, row)
				b := blank(pen)
				for x := len(row); x < cols; x++ {
					grown[x] = b
				}
				s.rows_[y] = grown
			}
		}
		s.cols = cols
	}

	if rows < len(s.rows_) {
		s.rows_ = s.rows_[:rows]
	} else if rows > len(s.rows_) {
		for len(s.rows_) < rows {
			s.rows_ = append(s.rows_, newRow(s.cols, pen))
		}
	}
	s.rows = rows
}

// PlainString serializes the visible grid to UTF-8: rows joined by
// '\n', cells with Char == 0 rendered as a space and trailing blanks
// trimmed from each row, then trailing wholly-blank rows trimmed from
// the bottom of the screen. Matches spec.md §6's contract and §8's
// scenarios, which dump only the printed lines of an 80-row screen
// rather than 80 lines of mostly blank padding.
func (s *Screen) PlainString() string {
	lines := make([]string, s.rows)
	last := -1
	for y, row := range s.rows_ {
		var b strings.Builder
		for _, c := range row {
			if c.Char == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteRune(c.Char)
			}
		}
		line := strings.TrimRight(b.String(), " ")
		lines[y] = line
		if line != "" {
			last = y
		}
	}
	return strings.Join(lines[:last+1], "\n")
}
