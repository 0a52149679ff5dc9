package psffont

import (
	"image"
	"iter"
)

// Glyph is the bitmap of one character, read row by row from the top (Next)
// or from the bottom (NextBack). Rows taken from either end are removed from
// the glyph, so a Glyph shrinks as it is read.
//
// A Glyph borrows from the buffer of the [Font] it was looked up in.
// Copy the value to read the same rows again.
type Glyph struct {
	data  []byte
	width uint32
}

// Bytes returns the part of the bitmap which has not been read yet.
// Initially this is Font.Height() rows of Font.Width() bits, each row padded
// to a whole number of bytes.
func (g Glyph) Bytes() []byte {
	return g.data
}

// Width returns the number of pixels in each row.
func (g Glyph) Width() uint32 {
	return g.width
}

// rowSize returns the number of bytes in a row, or false if no further row
// can be read.
func (g Glyph) rowSize() (int, bool) {
	stride, ok := rowStride(g.width)
	if !ok || stride > len(g.data) {
		return 0, false
	}
	return stride, true
}

// Len returns the number of rows left to read.
func (g Glyph) Len() int {
	stride, ok := g.rowSize()
	if !ok {
		return 0
	}
	return len(g.data) / stride
}

// Next removes the top row from the glyph and returns it.
func (g *Glyph) Next() (Row, bool) {
	stride, ok := g.rowSize()
	if !ok {
		return Row{}, false
	}
	row := g.data[:stride:stride]
	g.data = g.data[stride:]
	return newRow(row, int(g.width)), true
}

// NextBack removes the bottom row from the glyph and returns it.
func (g *Glyph) NextBack() (Row, bool) {
	stride, ok := g.rowSize()
	if !ok {
		return Row{}, false
	}
	split := len(g.data) - stride
	row := g.data[split:]
	g.data = g.data[:split:split]
	return newRow(row, int(g.width)), true
}

// Rows iterates over the unread rows from top to bottom.
// The receiver is not consumed.
func (g Glyph) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		glyph := g
		for {
			row, ok := glyph.Next()
			if !ok || !yield(row) {
				return
			}
		}
	}
}

// Backward iterates over the unread rows from bottom to top.
// The receiver is not consumed.
func (g Glyph) Backward() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		glyph := g
		for {
			row, ok := glyph.NextBack()
			if !ok || !yield(row) {
				return
			}
		}
	}
}

// Bitmap rasterizes the unread rows into an alpha mask, with filled pixels
// fully opaque. The mask is Width() pixels wide and Len() pixels tall, or
// empty if there are no rows left.
func (g Glyph) Bitmap() *image.Alpha {
	rows := g.Len()
	if rows == 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	img := image.NewAlpha(image.Rect(0, 0, int(g.width), rows))
	y := 0
	for row := range g.Rows() {
		x := 0
		for filled := range row.Pixels() {
			if filled {
				img.Pix[y*img.Stride+x] = 0xff
			}
			x++
		}
		y++
	}
	return img
}
