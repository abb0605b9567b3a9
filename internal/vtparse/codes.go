package vtparse

// Control characters recognized in the ground state, named the way
// internal/gopyte/control.go names them. The teacher's own streams.go
// references escape/CSI mnemonics (RIS, IND, NEL, RI, HTS, DECSC,
// DECRC, ICH, CUU, ...) that are never defined anywhere in that
// package; they are standard ANSI X3.64 / ECMA-48 / DEC VT100 final
// bytes, redefined here rather than carried over undefined.
const (
	NUL = 0x00
	BEL = 0x07
	BS  = 0x08
	HT  = 0x09
	LF  = 0x0a
	VT  = 0x0b
	FF  = 0x0c
	CR  = 0x0d
	SO  = 0x0e
	SI  = 0x0f
	CAN = 0x18
	SUB = 0x1a
	ESC = 0x1b
	DEL = 0x7f
)

// Escape (ESC x) final bytes handled outside of CSI/OSC.
const (
	escRIS  = 'c' // RIS: full reset
	escIND  = 'D' // IND: index
	escNEL  = 'E' // NEL: next line
	escHTS  = 'H' // HTS: horizontal tab set
	escRI   = 'M' // RI: reverse index
	escDECSC = '7' // DECSC: save cursor
	escDECRC = '8' // DECRC: restore cursor
	escCSI  = '['
	escOSC  = ']'
	escSharp = '#'
)

// ESC # final byte.
const sharpDECALN = '8'

// CSI final bytes, named the way ECMA-48 and the teacher's csi map
// name them (ICH, CUU, CUP, ED, EL, ...).
const (
	csiICH     = '@' // insert characters
	csiCUU     = 'A' // cursor up
	csiCUD     = 'B' // cursor down
	csiCUF     = 'C' // cursor forward
	csiCUB     = 'D' // cursor back
	csiCNL     = 'E' // cursor next line
	csiCPL     = 'F' // cursor preceding line
	csiCHA     = 'G' // cursor to column
	csiCUP     = 'H' // cursor position
	csiED      = 'J' // erase in display
	csiEL      = 'K' // erase in line
	csiIL      = 'L' // insert lines
	csiDL      = 'M' // delete lines
	csiDCH     = 'P' // delete characters
	csiECH     = 'X' // erase characters
	csiHPR     = 'a' // cursor forward (alt)
	csiVPA     = 'd' // cursor to line
	csiVPR     = 'e' // cursor down (alt)
	csiHVP     = 'f' // cursor position (alt)
	csiTBC     = 'g' // tab clear
	csiSM      = 'h' // set mode
	csiRM      = 'l' // reset mode
	csiSGR     = 'm' // select graphic rendition
	csiDECSTBM = 'r' // set scrolling region
	csiHPA     = '`' // cursor to column (alt)
)
