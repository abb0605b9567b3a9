package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithConfigDefaults(t *testing.T) {
	tm := New(80, 24)
	require.NotNil(t, tm)
	assert.Equal(t, 80, tm.Cols())
	assert.Equal(t, 24, tm.Rows())
	x, y := tm.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.False(t, tm.PendingWrap())
	assert.True(t, tm.Modes().Autowrap)
	assert.False(t, tm.Modes().Origin)
}

func TestResizeClampsCursorAndResetsRegion(t *testing.T) {
	tm := New(10, 10)
	tm.SetScrollingRegion(3, 8)
	tm.SetCursorPos(10, 10)

	tm.Resize(5, 5)

	assert.Equal(t, 5, tm.Cols())
	assert.Equal(t, 5, tm.Rows())
	x, y := tm.CursorPos()
	assert.Equal(t, 4, x)
	assert.Equal(t, 4, y)
	assert.Equal(t, ScrollRegion{Top: 0, Bottom: 4}, tm.Region())
	assert.False(t, tm.PendingWrap())
}

func TestResizeNoOpWhenUnchanged(t *testing.T) {
	tm := New(10, 10)
	tm.SetScrollingRegion(2, 5)
	before := tm.Region()
	tm.Resize(10, 10)
	assert.Equal(t, before, tm.Region())
}

func TestInvariantPendingWrapImpliesLastColumn(t *testing.T) {
	tm := New(3, 3)
	for _, r := range "abc" {
		tm.Print(r)
	}
	assert.True(t, tm.PendingWrap())
	x, _ := tm.CursorPos()
	assert.Equal(t, tm.Cols()-1, x)
}

func TestCarriageReturnAndLinefeedClearPendingWrap(t *testing.T) {
	tm := New(3, 3)
	for _, r := range "abc" {
		tm.Print(r)
	}
	require.True(t, tm.PendingWrap())
	tm.CarriageReturn()
	assert.False(t, tm.PendingWrap())

	for _, r := range "abc" {
		tm.Print(r)
	}
	require.True(t, tm.PendingWrap())
	tm.Linefeed()
	assert.False(t, tm.PendingWrap())
}

func TestSetCursorPosClearsPendingWrap(t *testing.T) {
	tm := New(3, 3)
	for _, r := range "abc" {
		tm.Print(r)
	}
	require.True(t, tm.PendingWrap())
	tm.SetCursorPos(1, 1)
	assert.False(t, tm.PendingWrap())
}
