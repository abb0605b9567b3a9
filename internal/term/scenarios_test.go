package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printAll(t *Terminal, s string) {
	for _, r := range s {
		t.Print(r)
	}
}

func TestScenarioNoControls(t *testing.T) {
	tm := New(80, 80)
	printAll(tm, "hello")
	assert.Equal(t, "hello", tm.PlainString())
	x, y := tm.CursorPos()
	assert.Equal(t, 5, x)
	assert.Equal(t, 0, y)
}

func TestScenarioSoftWrap(t *testing.T) {
	tm := New(3, 80)
	printAll(tm, "hello")
	assert.Equal(t, "hel\nlo", tm.PlainString())
	x, y := tm.CursorPos()
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
	assert.True(t, tm.screen.GetCell(0, 2).Attrs.Wrap)
}

func TestScenarioLinefeedCarriageReturn(t *testing.T) {
	tm := New(80, 80)
	printAll(tm, "hello")
	tm.CarriageReturn()
	tm.Linefeed()
	printAll(tm, "world")
	assert.Equal(t, "hello\nworld", tm.PlainString())
	x, y := tm.CursorPos()
	assert.Equal(t, 5, x)
	assert.Equal(t, 1, y)
}

func TestScenarioDeleteLines(t *testing.T) {
	tm := New(80, 80)
	for _, r := range "ABC" {
		tm.Print(r)
		tm.CarriageReturn()
		tm.Linefeed()
	}
	tm.Print('D')
	tm.CursorUp(2)
	tm.DeleteLines(1)
	tm.Print('E')
	tm.CarriageReturn()
	tm.Linefeed()

	assert.Equal(t, "A\nE\nD", tm.PlainString())
	x, y := tm.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 2, y)
}

func TestScenarioInsertLinesWithRegion(t *testing.T) {
	tm := New(2, 6)
	for _, r := range "ABCDE" {
		tm.Print(r)
		tm.CarriageReturn()
		tm.Linefeed()
	}
	tm.SetScrollingRegion(1, 2)
	tm.SetCursorPos(1, 1)
	tm.InsertLines(1)
	tm.Print('X')

	assert.Equal(t, "X\nA\nC\nD\nE", tm.PlainString())
}

func TestScenarioReverseIndexAtTopScrollsDown(t *testing.T) {
	tm := New(2, 5)
	tm.Print('A')
	tm.CarriageReturn()
	tm.Linefeed()
	tm.Print('B')
	tm.CarriageReturn()
	tm.Linefeed()
	tm.CarriageReturn()
	tm.Linefeed()

	tm.SetCursorPos(1, 1)
	tm.ReverseIndex()
	tm.Print('D')
	tm.CarriageReturn()
	tm.Linefeed()

	tm.SetCursorPos(1, 1)
	tm.ReverseIndex()
	tm.Print('E')
	tm.CarriageReturn()
	tm.Linefeed()

	assert.Equal(t, "E\nD\nA\nB", tm.PlainString())
}

func TestScenarioDECALN(t *testing.T) {
	tm := New(2, 2)
	tm.Print('A')
	tm.CarriageReturn()
	tm.Linefeed()
	tm.Print('B')

	tm.DECALN()

	assert.Equal(t, "EE\nEE", tm.PlainString())
	x, y := tm.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, ScrollRegion{Top: 0, Bottom: 1}, tm.Region())
}

func TestScenarioTabs(t *testing.T) {
	tm := New(80, 5)
	tm.Print('1')
	tm.HorizontalTab()
	x, _ := tm.CursorPos()
	assert.Equal(t, 7, x)

	tm.HorizontalTab()
	x, _ = tm.CursorPos()
	assert.Equal(t, 15, x)
}

func TestScenarioOriginModeClamp(t *testing.T) {
	tm := New(80, 80)
	m := tm.Modes()
	m.Origin = true
	tm.SetModes(m)

	tm.SetScrollingRegion(10, 80)
	tm.SetCursorPos(0, 0)
	x, y := tm.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 9, y)

	tm.SetCursorPos(100, 0)
	x, y = tm.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 79, y)
}

func TestRoundTripLaw(t *testing.T) {
	cases := []string{"a", "hello", "1234567890", "xy"}
	for _, s := range cases {
		tm := New(80, 24)
		printAll(tm, s)
		require.LessOrEqual(t, len(s), tm.Cols())
		assert.Equal(t, s, tm.PlainString())
	}
}

func TestInsertLinesDeleteLinesRestoreBlankRows(t *testing.T) {
	tm := New(10, 10)
	tm.InsertLines(2)
	tm.DeleteLines(2)
	assert.Equal(t, "", tm.PlainString())
}
