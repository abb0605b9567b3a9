package term

import "fmt"

// AttributeKind tags the closed set of SGR variants setAttribute
// accepts (spec.md §4.14 / §9's "represent each as a tagged sum").
type AttributeKind int

const (
	AttrUnset AttributeKind = iota
	AttrBold
	AttrUnderline
	AttrInverse
	AttrFgDirect
	AttrBgDirect
	AttrFg8
	AttrBg8
	AttrFg8Bright
	AttrBg8Bright
	AttrFg256
	AttrBg256
)

// Attribute is a single SGR directive. RGB is populated for the
// *Direct variants; Index for the *8/*8Bright/*256 variants.
type Attribute struct {
	Kind  AttributeKind
	RGB   RGB
	Index int
}

func Unset() Attribute                   { return Attribute{Kind: AttrUnset} }
func Bold() Attribute                    { return Attribute{Kind: AttrBold} }
func Underline() Attribute               { return Attribute{Kind: AttrUnderline} }
func Inverse() Attribute                 { return Attribute{Kind: AttrInverse} }
func DirectFg(r, g, b uint8) Attribute   { return Attribute{Kind: AttrFgDirect, RGB: RGB{r, g, b}} }
func DirectBg(r, g, b uint8) Attribute   { return Attribute{Kind: AttrBgDirect, RGB: RGB{r, g, b}} }
func Fg8(index int) Attribute            { return Attribute{Kind: AttrFg8, Index: index} }
func Bg8(index int) Attribute            { return Attribute{Kind: AttrBg8, Index: index} }
func Fg8Bright(index int) Attribute      { return Attribute{Kind: AttrFg8Bright, Index: index} }
func Bg8Bright(index int) Attribute      { return Attribute{Kind: AttrBg8Bright, Index: index} }
func Fg256(index int) Attribute          { return Attribute{Kind: AttrFg256, Index: index} }
func Bg256(index int) Attribute          { return Attribute{Kind: AttrBg256, Index: index} }

// SetAttribute mutates the cursor's pen per spec.md §4.14. Unrecognized
// Kind values return ErrInvalidAttribute and leave the pen unchanged.
func (t *Terminal) SetAttribute(attr Attribute) error {
	pen := &t.cursor.Pen
	switch attr.Kind {
	case AttrUnset:
		pen.Fg = nil
		pen.Bg = nil
		pen.Attrs = CellAttrs{}
	case AttrBold:
		pen.Attrs.Bold = true
	case AttrUnderline:
		pen.Attrs.Underline = true
	case AttrInverse:
		pen.Attrs.Inverse = true
	case AttrFgDirect:
		rgb := attr.RGB
		pen.Fg = &rgb
	case AttrBgDirect:
		rgb := attr.RGB
		pen.Bg = &rgb
	case AttrFg8:
		rgb := Color8(attr.Index)
		pen.Fg = &rgb
	case AttrBg8:
		rgb := Color8(attr.Index)
		pen.Bg = &rgb
	case AttrFg8Bright:
		rgb := Color8Bright(attr.Index)
		pen.Fg = &rgb
	case AttrBg8Bright:
		rgb := Color8Bright(attr.Index)
		pen.Bg = &rgb
	case AttrFg256:
		rgb := Color256(attr.Index)
		pen.Fg = &rgb
	case AttrBg256:
		rgb := Color256(attr.Index)
		pen.Bg = &rgb
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidAttribute, attr.Kind)
	}
	return nil
}
