package psffont

import "iter"

// Row is one row of a glyph bitmap. It yields whether each pixel should be
// filled, from the left (Next) or from the right (NextBack). Both directions
// narrow the same window of unread pixels, so mixing them never reports a
// pixel twice.
//
// A Row is a small value; copy it to traverse the same pixels again.
type Row struct {
	data  []byte
	bit   int
	width int
}

func newRow(data []byte, width int) Row {
	return Row{data: data, width: width}
}

// Bytes returns the packed pixels of the row. The most significant bit
// corresponds to the leftmost pixel and only the first Width() bits are
// meaningful.
//
// Unlike [Glyph.Bytes], the result does not shrink as pixels are read.
func (r Row) Bytes() []byte {
	return r.data
}

// Width returns the number of pixels in the row still bounded on the right,
// that is the glyph width minus the pixels taken by NextBack.
func (r Row) Width() int {
	return r.width
}

// Len returns the number of pixels left to read.
func (r Row) Len() int {
	return r.width - r.bit
}

// Next returns the leftmost unread pixel. ok is false once the row is
// exhausted.
func (r *Row) Next() (filled, ok bool) {
	if r.bit >= r.width {
		return false, false
	}
	filled = pixelSet(r.data, r.bit)
	r.bit++
	return filled, true
}

// NextBack returns the rightmost unread pixel. ok is false once the row is
// exhausted.
func (r *Row) NextBack() (filled, ok bool) {
	if r.bit >= r.width {
		return false, false
	}
	last := r.width - 1
	filled = pixelSet(r.data, last)
	r.width = last
	return filled, true
}

// Pixels iterates over the unread pixels from left to right.
// The receiver is not consumed.
func (r Row) Pixels() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		row := r
		for {
			px, ok := row.Next()
			if !ok || !yield(px) {
				return
			}
		}
	}
}

// Backward iterates over the unread pixels from right to left.
// The receiver is not consumed.
func (r Row) Backward() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		row := r
		for {
			px, ok := row.NextBack()
			if !ok || !yield(px) {
				return
			}
		}
	}
}
