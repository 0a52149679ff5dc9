package psffont

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face adapts a Font to the font.Face interface, so that PSF fonts can be
// used with font.Drawer. Every glyph occupies a Width() by Height() cell
// whose top edge is Ascent above the baseline.
type Face struct {
	f *Font

	// Ascent is the number of rows above the baseline. NewFace sets it to
	// Height() minus one eighth of Height(), rounded down, which suits most
	// console fonts.
	Ascent int
}

var _ font.Face = (*Face)(nil)

// NewFace returns a font.Face drawing glyphs from f.
func NewFace(f *Font) *Face {
	h := int(f.Height())
	return &Face{f: f, Ascent: h - h/8}
}

// Close implements font.Face. It does nothing.
func (face *Face) Close() error { return nil }

// Glyph implements font.Face.
func (face *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	g, ok := face.f.LookupRune(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Round()
	y := dot.Y.Round() - face.Ascent
	m := g.Bitmap()
	dr = m.Bounds().Add(image.Pt(x, y))
	return dr, m, image.Point{}, fixed.I(int(g.Width())), true
}

// GlyphBounds implements font.Face.
func (face *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	if _, ok := face.f.LookupRune(r); !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	w := int(face.f.Width())
	h := int(face.f.Height())
	bounds = fixed.R(0, -face.Ascent, w, h-face.Ascent)
	return bounds, fixed.I(w), true
}

// GlyphAdvance implements font.Face.
func (face *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if _, ok := face.f.LookupRune(r); !ok {
		return 0, false
	}
	return fixed.I(int(face.f.Width())), true
}

// Kern implements font.Face. PSF fonts are monospaced, so this is always 0.
func (face *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face.
func (face *Face) Metrics() font.Metrics {
	h := int(face.f.Height())
	return font.Metrics{
		Height:     fixed.I(h),
		Ascent:     fixed.I(face.Ascent),
		Descent:    fixed.I(h - face.Ascent),
		XHeight:    fixed.I(face.Ascent / 2),
		CapHeight:  fixed.I(face.Ascent),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}
