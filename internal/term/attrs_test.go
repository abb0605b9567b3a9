package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAttributeBoldUnderlineInverse(t *testing.T) {
	tm := New(5, 5)
	require.NoError(t, tm.SetAttribute(Bold()))
	require.NoError(t, tm.SetAttribute(Underline()))
	require.NoError(t, tm.SetAttribute(Inverse()))
	assert.True(t, tm.cursor.Pen.Attrs.Bold)
	assert.True(t, tm.cursor.Pen.Attrs.Underline)
	assert.True(t, tm.cursor.Pen.Attrs.Inverse)
}

func TestSetAttributeUnsetClearsPen(t *testing.T) {
	tm := New(5, 5)
	require.NoError(t, tm.SetAttribute(Bold()))
	require.NoError(t, tm.SetAttribute(DirectFg(1, 2, 3)))
	require.NoError(t, tm.SetAttribute(Unset()))
	assert.Equal(t, CellAttrs{}, tm.cursor.Pen.Attrs)
	assert.Nil(t, tm.cursor.Pen.Fg)
	assert.Nil(t, tm.cursor.Pen.Bg)
}

func TestSetAttributeDirectColorAppliesToPrintedCell(t *testing.T) {
	tm := New(5, 5)
	require.NoError(t, tm.SetAttribute(DirectFg(10, 20, 30)))
	tm.Print('x')
	cell := tm.screen.GetCell(0, 0)
	require.NotNil(t, cell.Fg)
	assert.Equal(t, RGB{10, 20, 30}, *cell.Fg)
}

func TestSetAttribute8ColorResolvesFromPalette(t *testing.T) {
	tm := New(5, 5)
	require.NoError(t, tm.SetAttribute(Fg8(1)))
	assert.Equal(t, Color8(1), *tm.cursor.Pen.Fg)
}

func TestSetAttributeInvalidKind(t *testing.T) {
	tm := New(5, 5)
	err := tm.SetAttribute(Attribute{Kind: AttributeKind(999)})
	assert.ErrorIs(t, err, ErrInvalidAttribute)
}

func TestPalette256Layout(t *testing.T) {
	assert.Equal(t, Color8(0), Palette256[0])
	assert.Equal(t, Color8Bright(0), Palette256[8])
	assert.Equal(t, RGB{8, 8, 8}, Palette256[232])
}
