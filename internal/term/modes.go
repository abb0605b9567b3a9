package term

// Modes holds the boolean mode flags spec.md §6 recognizes.
type Modes struct {
	// Origin: setCursorPos becomes region-relative and clamped to the
	// region (spec.md §4.3). Default off.
	Origin bool

	// Autowrap: when the deferred-wrap flag is set, the next print
	// first advances a line (spec.md §4.1). Default on.
	Autowrap bool

	// ReverseColors is renderer-facing; the core only stores it.
	// Default off.
	ReverseColors bool

	// Insert (IRM), supplemented per SPEC_FULL.md: when on, Print
	// shifts the remainder of the row right by one before writing,
	// rather than overwriting in place. Default off.
	Insert bool

	// LineFeedNewLine (LNM), supplemented per SPEC_FULL.md: when on,
	// Linefeed also performs a carriage return. Default off, so
	// spec.md §4.2's plain-index linefeed is the out-of-the-box
	// behavior every scenario in spec.md §8 assumes.
	LineFeedNewLine bool
}

func defaultModes() Modes {
	return Modes{Autowrap: true}
}

// EraseDisplayMode is the closed set of eraseDisplay variants
// (spec.md §4.10).
type EraseDisplayMode int

const (
	EraseBelow EraseDisplayMode = iota
	EraseAbove
	EraseComplete
)

// EraseLineMode is the closed set of eraseLine variants (spec.md §4.11).
type EraseLineMode int

const (
	EraseLineRight EraseLineMode = iota
	EraseLineLeft
	EraseLineComplete
)

// TabClearMode is the closed set of tabClear variants (spec.md §4.16).
type TabClearMode int

const (
	TabClearCurrent TabClearMode = iota
	TabClearAll
)
