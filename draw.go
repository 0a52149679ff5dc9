package psffont

import (
	"bytes"
	"image/color"
	"unicode/utf8"
)

// Drawable is an interface which supports setting an x,y coordinate to a color.
// All the image types of the standard library implement it.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// DrawRune displays a single rune in the provided color and position in
// Drawable. The x,y position represents the top-left corner of the glyph.
// Drawable.Set is called for each filled pixel, leaving all other pixels
// as-is. If the font has no glyph for the rune, DrawRune returns false and
// no drawing is done.
func (f *Font) DrawRune(dr Drawable, x, y int, r rune, clr color.Color) bool {
	g, ok := f.LookupRune(r)
	if !ok {
		return false
	}
	f.drawGlyph(dr, x, y, g, clr)
	return true
}

func (f *Font) drawGlyph(dr Drawable, x, y int, g Glyph, clr color.Color) {
	yy := y
	for row := range g.Rows() {
		xx := x
		for filled := range row.Pixels() {
			if filled {
				dr.Set(xx, yy, clr)
			}
			xx++
		}
		yy++
	}
}

// DrawString displays text in the provided color, starting with the top-left
// corner of the first glyph at x,y. Runes without a glyph leave a blank cell.
func (f *Font) DrawString(dr Drawable, x, y int, s string, clr color.Color) {
	w := int(f.Width())
	for _, r := range s {
		f.DrawRune(dr, x, y, r, clr)
		x += w
	}
}

// MeasureString returns the width in pixels of s when drawn with DrawString.
func (f *Font) MeasureString(s string) int {
	return int(f.Width()) * utf8.RuneCountInString(s)
}

///////

// StringDrawable implements Drawable so you can render glyphs as text,
// FIGlet style. Every pixel set is shown as an X.
type StringDrawable struct {
	lines [][]byte
}

// Set marks the pixel at x,y. Unset cells are kept as zero bytes and shown
// as spaces.
func (s *StringDrawable) Set(x, y int, c color.Color) {
	if y >= len(s.lines) {
		s.lines = append(s.lines, make([][]byte, y+1-len(s.lines))...)
	}
	if line := s.lines[y]; x >= len(line) {
		s.lines[y] = append(line, make([]byte, x+1-len(line))...)
	}
	s.lines[y][x] = 'X'
}

// String returns the current string representation of this Drawable.
func (s *StringDrawable) String() string {
	return s.PrefixString("")
}

// PrefixString returns the current string representation of this Drawable with a
// user-provided prefix before each line. Useful for adding output in code comments.
func (s *StringDrawable) PrefixString(p string) string {
	var b bytes.Buffer
	for _, line := range s.lines {
		b.WriteString(p)
		b.Write(bytes.ReplaceAll(line, []byte{0}, []byte(" ")))
		b.WriteByte('\n')
	}
	return b.String()
}
