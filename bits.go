package psffont

import "math"

// pixelMasks maps a pixel position within a byte to its mask. Pixels are
// packed most significant bit first, so position 0 is the leftmost pixel.
var pixelMasks = [8]byte{
	1 << 7,
	1 << 6,
	1 << 5,
	1 << 4,
	1 << 3,
	1 << 2,
	1 << 1,
	1 << 0,
}

// pixelSet reports whether pixel bit of a packed row is filled.
func pixelSet(row []byte, bit int) bool {
	return row[bit>>3]&pixelMasks[bit&7] != 0
}

// rowStride returns the number of bytes taken by one row of a width-pixel
// glyph. ok is false if such rows cannot be addressed, because width is zero
// or does not fit in an int.
func rowStride(width uint32) (stride int, ok bool) {
	if width == 0 || uint64(width) > math.MaxInt {
		return 0, false
	}
	return int((uint64(width) + 7) / 8), true
}
