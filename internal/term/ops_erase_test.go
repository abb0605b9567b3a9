package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraseCharactersLeavesPendingWrapUntouched(t *testing.T) {
	tm := New(3, 3)
	printAll(tm, "abc")
	require.True(t, tm.PendingWrap())
	tm.EraseCharacters(1)
	assert.True(t, tm.PendingWrap(), "SPEC_FULL.md: eraseChars must not clear pending_wrap")
}

func TestDeleteCharactersLeavesPendingWrapUntouched(t *testing.T) {
	tm := New(3, 3)
	printAll(tm, "abc")
	require.True(t, tm.PendingWrap())
	tm.CursorBack(1)
	tm.DeleteCharacters(1)
	assert.True(t, tm.PendingWrap())
}

func TestEraseDisplayBelow(t *testing.T) {
	tm := New(3, 3)
	printAll(tm, "abc")
	tm.CarriageReturn()
	tm.Linefeed()
	printAll(tm, "def")
	tm.SetCursorPos(1, 2)
	require.NoError(t, tm.EraseDisplay(EraseBelow))
	assert.Equal(t, "a", tm.PlainString())
}

func TestEraseDisplayComplete(t *testing.T) {
	tm := New(3, 3)
	printAll(tm, "abc")
	require.NoError(t, tm.EraseDisplay(EraseComplete))
	assert.Equal(t, "", tm.PlainString())
}

func TestEraseLineRight(t *testing.T) {
	tm := New(5, 1)
	printAll(tm, "abcde")
	tm.SetCursorPos(1, 3)
	require.NoError(t, tm.EraseLine(EraseLineRight))
	assert.Equal(t, "ab", tm.PlainString())
}

func TestEraseLineUnimplementedModeErrors(t *testing.T) {
	tm := New(5, 1)
	err := tm.EraseLine(EraseLineMode(99))
	assert.ErrorIs(t, err, ErrUnimplementedMode)
}

func TestInsertCharactersShiftsRight(t *testing.T) {
	tm := New(5, 1)
	printAll(tm, "abc")
	tm.SetCursorPos(1, 1)
	tm.InsertCharacters(2)
	assert.Equal(t, "  abc", tm.PlainString())
}
