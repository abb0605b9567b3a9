// Package vtparse turns a raw byte stream into calls against a Sink,
// the way internal/gopyte/streams.go's Stream turns bytes into calls
// against a Screen. It is deliberately decoupled from internal/term:
// Sink names only the operations a parser needs, so tests can swap in
// a recording double the way the teacher's mock_screen.go does.
package vtparse

import (
	"log"
	"unicode/utf8"

	"vtengine/internal/term"
)

// Sink is everything a byte stream can drive. *term.Terminal satisfies
// it directly.
type Sink interface {
	Print(r rune)
	Backspace()
	HorizontalTab()
	Linefeed()
	CarriageReturn()
	Index()
	ReverseIndex()
	TabSet()
	TabClear(mode term.TabClearMode) error
	SaveCursor()
	RestoreCursor()
	DECALN()
	CursorUp(n int)
	CursorDown(n int)
	CursorForward(n int)
	CursorBack(n int)
	SetCursorPos(row, col int)
	EraseDisplay(mode term.EraseDisplayMode) error
	EraseLine(mode term.EraseLineMode) error
	InsertLines(n int)
	DeleteLines(n int)
	InsertCharacters(n int)
	DeleteCharacters(n int)
	EraseCharacters(n int)
	SetScrollingRegion(top, bottom int)
	SetAttribute(attr term.Attribute) error
	SetModes(m term.Modes)
	Modes() term.Modes
}

type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateOSC
	stateSharp
)

// Stream is a single-use-per-connection parser: one Sink, one piece of
// mutable parse state, fed incrementally via Feed. Grounded on
// internal/gopyte/streams.go's state machine, generalized from a
// string-keyed handler-name dispatch to a byte-switch dispatch against
// Sink, and from Python-style unbounded ints to clamped CSI params.
type Stream struct {
	sink Sink

	state   parserState
	params  []int
	current int
	haveArg bool
	private bool

	// OnBell is invoked for BEL outside of quoting; nil is a silent
	// no-op, matching spec.md's silence on audible-bell handling (it
	// names no Bell operation on the core engine).
	OnBell func()

	// leftover buffers an incomplete UTF-8 sequence split across Feed
	// calls, so multi-byte runes are never corrupted at a chunk
	// boundary.
	leftover []byte
}

// NewStream constructs a parser that drives sink.
func NewStream(sink Sink) *Stream {
	return &Stream{sink: sink, state: stateGround}
}

const maxCSIParams = 16
const maxCSIParamValue = 9999

// Feed parses data incrementally, dispatching every complete control
// sequence or run of printable text to the Sink as it is recognized.
func (s *Stream) Feed(data []byte) {
	if len(s.leftover) > 0 {
		data = append(s.leftover, data...)
		s.leftover = nil
	}

	i := 0
	for i < len(data) {
		if s.state == stateGround && data[i] >= 0x20 && data[i] != DEL {
			if !utf8.FullRune(data[i:]) {
				s.leftover = append(s.leftover, data[i:]...)
				return
			}
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				i++
				continue
			}
			s.sink.Print(r)
			i += size
			continue
		}

		b := data[i]
		switch s.state {
		case stateGround:
			s.feedGroundControl(b)
		case stateEscape:
			s.feedEscape(b)
		case stateCSI:
			s.feedCSI(b)
		case stateOSC:
			s.feedOSC(b)
		case stateSharp:
			s.feedSharp(b)
		}
		i++
	}
}

func (s *Stream) feedGroundControl(b byte) {
	switch b {
	case ESC:
		s.state = stateEscape
	case BEL:
		if s.OnBell != nil {
			s.OnBell()
		}
	case BS:
		s.sink.Backspace()
	case HT:
		s.sink.HorizontalTab()
	case LF, VT, FF:
		s.sink.Linefeed()
	case CR:
		s.sink.CarriageReturn()
	default:
		// NUL, DEL, SO/SI, and anything else ground doesn't recognize
		// is silently absorbed, matching the teacher's handling of
		// NUL/DEL as a no-op skip.
	}
}

func (s *Stream) feedEscape(b byte) {
	switch b {
	case escCSI:
		s.state = stateCSI
		s.resetCSI()
		return
	case escOSC:
		s.state = stateOSC
		return
	case escSharp:
		// only DECALN is recognized under ESC #; anything else is
		// absorbed once the next byte arrives.
		s.state = stateSharp
		return
	case escIND:
		s.sink.Index()
	case escNEL:
		s.sink.Linefeed()
		s.sink.CarriageReturn()
	case escRI:
		s.sink.ReverseIndex()
	case escHTS:
		s.sink.TabSet()
	case escDECSC:
		s.sink.SaveCursor()
	case escDECRC:
		s.sink.RestoreCursor()
	case escRIS:
		s.sink.SetModes(term.Modes{Autowrap: true})
	}
	s.state = stateGround
}

func (s *Stream) feedSharp(b byte) {
	if b == sharpDECALN {
		s.sink.DECALN()
	}
	s.state = stateGround
}

func (s *Stream) resetCSI() {
	s.params = s.params[:0]
	s.current = 0
	s.haveArg = false
	s.private = false
}

func (s *Stream) feedCSI(b byte) {
	switch {
	case b == '?':
		s.private = true
	case b >= '0' && b <= '9':
		s.current = s.current*10 + int(b-'0')
		if s.current > maxCSIParamValue {
			s.current = maxCSIParamValue
		}
		s.haveArg = true
	case b == ';':
		s.pushParam()
	case b >= 0x40 && b <= 0x7e:
		s.pushParam()
		s.dispatchCSI(b)
		s.state = stateGround
	default:
		// intermediate bytes (e.g. xterm's private markers) are
		// ignored; the sequence still completes on its final byte.
	}
}

func (s *Stream) pushParam() {
	if len(s.params) < maxCSIParams {
		v := 0
		if s.haveArg {
			v = s.current
		}
		s.params = append(s.params, v)
	}
	s.current = 0
	s.haveArg = false
}

func (s *Stream) param(idx, def int) int {
	if idx >= len(s.params) || s.params[idx] == 0 {
		return def
	}
	return s.params[idx]
}

func (s *Stream) dispatchCSI(final byte) {
	p0 := func(def int) int { return s.param(0, def) }

	switch final {
	case csiICH:
		s.sink.InsertCharacters(p0(1))
	case csiCUU:
		s.sink.CursorUp(p0(1))
	case csiCUD:
		s.sink.CursorDown(p0(1))
	case csiCUF, csiHPR:
		s.sink.CursorForward(p0(1))
	case csiCUB:
		s.sink.CursorBack(p0(1))
	case csiCNL:
		s.sink.CursorDown(p0(1))
		s.sink.CarriageReturn()
	case csiCPL:
		s.sink.CursorUp(p0(1))
		s.sink.CarriageReturn()
	case csiCHA, csiHPA:
		col := p0(1)
		row, _ := cursorRow(s.sink)
		s.sink.SetCursorPos(row, col)
	case csiCUP, csiHVP:
		s.sink.SetCursorPos(p0(1), s.param(1, 1))
	case csiED:
		if err := s.sink.EraseDisplay(eraseDisplayMode(p0(0))); err != nil {
			log.Printf("vtparse: ED: %v", err)
		}
	case csiEL:
		if err := s.sink.EraseLine(eraseLineMode(p0(0))); err != nil {
			log.Printf("vtparse: EL: %v", err)
		}
	case csiIL:
		s.sink.InsertLines(p0(1))
	case csiDL:
		s.sink.DeleteLines(p0(1))
	case csiDCH:
		s.sink.DeleteCharacters(p0(1))
	case csiECH:
		s.sink.EraseCharacters(p0(1))
	case csiVPA:
		line := p0(1)
		_, col := cursorRow(s.sink)
		s.sink.SetCursorPos(line, col)
	case csiVPR:
		s.sink.CursorDown(p0(1))
	case csiTBC:
		mode := term.TabClearCurrent
		if p0(0) == 3 {
			mode = term.TabClearAll
		}
		if err := s.sink.TabClear(mode); err != nil {
			log.Printf("vtparse: TBC: %v", err)
		}
	case csiSM:
		s.applyModes(true)
	case csiRM:
		s.applyModes(false)
	case csiSGR:
		s.applySGR()
	case csiDECSTBM:
		s.sink.SetScrollingRegion(p0(1), s.param(1, 0))
	}
}

// cursorRow is a placeholder seam: CHA/HPA/VPA only move one axis, so
// the other axis must be read back from the sink. term.Terminal
// exposes it via CursorPos; Sink intentionally omits that accessor, so
// callers that need it type-assert for it.
func cursorRow(sink Sink) (row, col int) {
	type positioned interface {
		CursorPos() (x, y int)
	}
	if p, ok := sink.(positioned); ok {
		x, y := p.CursorPos()
		return y + 1, x + 1
	}
	return 1, 1
}

func eraseDisplayMode(n int) term.EraseDisplayMode {
	switch n {
	case 1:
		return term.EraseAbove
	case 2, 3:
		return term.EraseComplete
	default:
		return term.EraseBelow
	}
}

func eraseLineMode(n int) term.EraseLineMode {
	switch n {
	case 1:
		return term.EraseLineLeft
	case 2:
		return term.EraseLineComplete
	default:
		return term.EraseLineRight
	}
}

// applyModes flips the handful of SM/RM modes SPEC_FULL.md wires up
// (private, with '?': DECOM origin mode 6, DECAWM autowrap mode 7;
// without '?': IRM insert mode 4, LNM linefeed/newline mode 20) via a
// read-modify-write against
// Sink.Modes/SetModes.
func (s *Stream) applyModes(set bool) {
	type moded interface {
		Modes() term.Modes
		SetModes(term.Modes)
	}
	m, ok := s.sink.(moded)
	if !ok {
		return
	}
	modes := m.Modes()
	for _, p := range s.params {
		if s.private {
			switch p {
			case 6:
				modes.Origin = set
			case 7:
				modes.Autowrap = set
			}
		} else {
			switch p {
			case 4:
				modes.Insert = set
			case 20:
				modes.LineFeedNewLine = set
			}
		}
	}
	m.SetModes(modes)
}

// applySGR walks the parameter list applying each SGR directive in
// turn, including the multi-param 38/48 (256-color and direct-RGB)
// forms (spec.md §4.14).
func (s *Stream) applySGR() {
	params := s.params
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			s.apply(term.Unset())
		case p == 1:
			s.apply(term.Bold())
		case p == 4:
			s.apply(term.Underline())
		case p == 7:
			s.apply(term.Inverse())
		case p >= 30 && p <= 37:
			s.apply(term.Fg8(p - 30))
		case p >= 40 && p <= 47:
			s.apply(term.Bg8(p - 40))
		case p >= 90 && p <= 97:
			s.apply(term.Fg8Bright(p - 90))
		case p >= 100 && p <= 107:
			s.apply(term.Bg8Bright(p - 100))
		case p == 38 || p == 48:
			i = s.applyExtendedColor(params, i, p == 38)
		}
	}
}

// applyExtendedColor consumes the 38;5;n / 38;2;r;g;b run starting at
// index i (inclusive of the 38/48 selector itself) and returns the
// index of the last parameter it consumed.
func (s *Stream) applyExtendedColor(params []int, i int, fg bool) int {
	if i+1 >= len(params) {
		return i
	}
	switch params[i+1] {
	case 5:
		if i+2 >= len(params) {
			return i + 1
		}
		idx := params[i+2]
		if fg {
			s.apply(term.Fg256(idx))
		} else {
			s.apply(term.Bg256(idx))
		}
		return i + 2
	case 2:
		if i+4 >= len(params) {
			return len(params) - 1
		}
		r, g, b := params[i+2], params[i+3], params[i+4]
		if fg {
			s.apply(term.DirectFg(uint8(r), uint8(g), uint8(b)))
		} else {
			s.apply(term.DirectBg(uint8(r), uint8(g), uint8(b)))
		}
		return i + 4
	}
	return i + 1
}

func (s *Stream) apply(attr term.Attribute) {
	if err := s.sink.SetAttribute(attr); err != nil {
		log.Printf("vtparse: SGR: %v", err)
	}
}

func (s *Stream) feedOSC(b byte) {
	// OSC bodies (window title, icon name) are drained and discarded:
	// spec.md names no title/icon state on the core engine. BEL or
	// ST (ESC \) both terminate.
	if b == BEL {
		s.state = stateGround
		return
	}
	if b == ESC {
		// hand the following byte to the escape state: the '\' of ST
		// matches no escape final byte there and is dropped.
		s.state = stateEscape
	}
}
