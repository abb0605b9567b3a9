package term

import "github.com/google/uuid"

// Terminal is the single stateful object described by spec.md §3: one
// Screen, one Tabstops set, one Cursor, one saved Cursor, one
// ScrollRegion, dimensions, and mode flags. It has no threads, no I/O,
// and no callbacks (spec.md §5) — every method call completes
// synchronously and is not safe for concurrent use without external
// coordination.
type Terminal struct {
	// ID is a per-instance identifier assigned at construction; it
	// plays no role in emulation semantics, and no log line in this
	// module includes it.
	ID uuid.UUID

	cols, rows int

	screen *Screen
	tabs   *Tabstops

	cursor Cursor
	saved  Cursor

	region ScrollRegion

	modes       Modes
	tabInterval int
}

// New constructs a Terminal of the given size using DefaultConfig's
// remaining knobs. Grounded on internal/gopyte/screen.go's
// NewNativeScreen constructor, generalized to the Cell/RGB/Pen model
// and a separately owned Tabstops/Screen pair.
func New(cols, rows int) *Terminal {
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows = cols, rows
	return NewWithConfig(cfg)
}

// NewWithConfig constructs a Terminal from an explicit Config.
func NewWithConfig(cfg Config) *Terminal {
	t := &Terminal{
		ID:          uuid.New(),
		cols:        cfg.Cols,
		rows:        cfg.Rows,
		tabInterval: cfg.TabInterval,
		modes:       Modes{Autowrap: cfg.Autowrap, Origin: cfg.Origin},
	}
	t.cursor = defaultCursor()
	t.saved = defaultCursor()
	t.region = ScrollRegion{Top: 0, Bottom: cfg.Rows - 1}
	t.screen = newScreen(cfg.Cols, cfg.Rows, t.cursor.Pen)
	t.tabs = newTabstops(cfg.Cols, t.tabInterval)
	return t
}

// Close releases the Screen and Tabstops, matching spec.md §3's
// lifecycle ("destroyed by releasing the Screen and Tabstops"). Go's
// garbage collector reclaims the backing storage; Close exists so
// callers that model explicit teardown (mirroring the source's
// deinit) have somewhere to put it, and so a Terminal cannot
// accidentally be used again after teardown.
func (t *Terminal) Close() {
	t.screen = nil
	t.tabs = nil
}

// Cols and Rows report the current dimensions.
func (t *Terminal) Cols() int { return t.cols }
func (t *Terminal) Rows() int { return t.rows }

// CursorPos reports the 0-indexed cursor position.
func (t *Terminal) CursorPos() (x, y int) { return t.cursor.X, t.cursor.Y }

// PendingWrap reports the deferred-wrap flag.
func (t *Terminal) PendingWrap() bool { return t.cursor.PendingWrap }

// Region reports the current scrolling region.
func (t *Terminal) Region() ScrollRegion { return t.region }

// Modes reports the current mode flags.
func (t *Terminal) Modes() Modes { return t.modes }

// SetModes replaces the mode flags wholesale; callers (typically a
// parser reacting to SM/RM) mutate a copy obtained from Modes and pass
// it back here.
func (t *Terminal) SetModes(m Modes) { t.modes = m }

// PlainString serializes the visible screen (spec.md §6).
func (t *Terminal) PlainString() string { return t.screen.PlainString() }

// Resize changes the terminal's dimensions per spec.md §4.18: tabstops
// rebuild at the default interval if columns changed, the scrolling
// region resets to full screen, and the cursor clamps into bounds.
func (t *Terminal) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	if cols == t.cols && rows == t.rows {
		return
	}

	colsChanged := cols != t.cols
	t.screen.Resize(cols, rows, t.cursor.Pen)
	t.cols, t.rows = cols, rows

	if colsChanged {
		t.tabs.resize(cols, t.tabInterval)
	}

	t.region = ScrollRegion{Top: 0, Bottom: rows - 1}

	if t.cursor.X >= cols {
		t.cursor.X = cols - 1
	}
	if t.cursor.Y >= rows {
		t.cursor.Y = rows - 1
	}
	t.cursor.PendingWrap = false
}
