// Package psffont reads PC Screen Fonts version 2 (PSF2), the fixed-size
// bitmap fonts used by the Linux console. Fonts are read directly from a byte
// buffer, such as an embedded array or a memory-mapped file, without copying:
// the header is checked once by [Parse], after which glyphs are looked up by
// index and read row by row and pixel by pixel.
//
// Glyphs are strictly one bit per pixel. The optional Unicode table which may
// follow the glyph bitmaps is not parsed; [Font.LookupRune] uses the IBM code
// page 437 ordering which most console fonts follow instead.
//
// See the included psfdump tool to inspect a font, and psfembed if you wish
// to include a font in your project as Go source.
package psffont

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/text/encoding/charmap"
)

// FixedHeaderSize is the size of the fixed part of a PSF2 header.
const FixedHeaderSize = 32

// Magic is the signature at the start of every PSF2 font.
var Magic = [4]byte{0x72, 0xb5, 0x4a, 0x86}

// FlagUnicodeTable is set in Font.Flags() when a Unicode table follows
// the glyph bitmaps.
const FlagUnicodeTable = 0x01

var (
	// ErrUnexpectedEnd indicates that the font data ended prematurely.
	ErrUnexpectedEnd = errors.New("unexpected end of font data")

	// ErrBadMagic indicates that the data does not start with the PSF2
	// signature, and probably is not a PSF2 font.
	ErrBadMagic = errors.New("missing PSF2 magic number")
)

// ParseError describes why data could not be parsed as a font.
// Use errors.Is with ErrUnexpectedEnd or ErrBadMagic to test for the cause.
type ParseError struct {
	Size int   // length of the rejected buffer
	Err  error // ErrUnexpectedEnd or ErrBadMagic
	msg  string
}

func (err *ParseError) Error() string {
	if err.msg == "" {
		return "psffont: " + err.Err.Error()
	}
	return "psffont: " + err.Err.Error() + ": " + err.msg
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Source is implemented by anything that can present a font as a read-only,
// contiguous byte slice.
// The bytes must not change while a Font or any Glyph or Row obtained from
// it is in use.
type Source interface {
	Bytes() []byte
}

// Font is a well-formed PSF2 font. All information is read from the
// underlying buffer on demand, and a Font never modifies the buffer, so it
// may be used from several goroutines at once.
type Font struct {
	data []byte
}

// Parse checks that data holds a PSF2 font whose glyph bitmaps all lie
// within data, and returns the font. Data is used in place and not copied.
func Parse(data []byte) (*Font, error) {
	fail := func(err error, format string, args ...any) (*Font, error) {
		perr := &ParseError{Size: len(data), Err: err, msg: fmt.Sprintf(format, args...)}
		Logger().Debug("rejected font", "size", len(data), "err", perr)
		return nil, perr
	}

	if len(data) < FixedHeaderSize {
		return fail(ErrUnexpectedEnd, "%d bytes is too short for a header", len(data))
	}
	if [4]byte(data[0:4]) != Magic {
		return fail(ErrBadMagic, "got % x", data[0:4])
	}

	f := &Font{data: data}
	glyphsSize, ok := mulUint32(f.CharSize(), f.Length())
	if !ok {
		return fail(ErrUnexpectedEnd, "%d glyphs of %d bytes overflow", f.Length(), f.CharSize())
	}
	glyphsEnd, ok := addUint32(f.HeaderSize(), glyphsSize)
	if !ok {
		return fail(ErrUnexpectedEnd, "glyph table at %d of %d bytes overflows", f.HeaderSize(), glyphsSize)
	}
	if uint64(glyphsEnd) > uint64(len(data)) {
		return fail(ErrUnexpectedEnd, "glyph table ends at %d, data at %d bytes", glyphsEnd, len(data))
	}

	Logger().Debug("parsed font",
		slog.Int("size", len(data)),
		slog.Uint64("glyphs", uint64(f.Length())),
		slog.Uint64("width", uint64(f.Width())),
		slog.Uint64("height", uint64(f.Height())))
	return f, nil
}

// Load parses the font presented by src.
func Load(src Source) (*Font, error) {
	return Parse(src.Bytes())
}

// MustParse is like Parse but panics if data is not a valid font.
// It simplifies initialization of global variables holding embedded fonts.
func MustParse(data []byte) *Font {
	f, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return f
}

func mulUint32(a, b uint32) (uint32, bool) {
	p := uint64(a) * uint64(b)
	return uint32(p), p <= math.MaxUint32
}

func addUint32(a, b uint32) (uint32, bool) {
	s := uint64(a) + uint64(b)
	return uint32(s), s <= math.MaxUint32
}

func (f *Font) field(offset int) uint32 {
	return binary.LittleEndian.Uint32(f.data[offset : offset+4])
}

// Bytes returns the whole font buffer.
func (f *Font) Bytes() []byte { return f.data }

// Version returns the format version stored in the header.
// It is not checked by Parse.
func (f *Font) Version() uint32 { return f.field(4) }

// HeaderSize returns the offset of the first glyph bitmap.
func (f *Font) HeaderSize() uint32 { return f.field(8) }

// Flags returns the header flags.
func (f *Font) Flags() uint32 { return f.field(12) }

// HasUnicodeTable reports whether the header announces a Unicode table
// after the glyph bitmaps. The table itself is not read.
func (f *Font) HasUnicodeTable() bool { return f.Flags()&FlagUnicodeTable != 0 }

// Length returns the number of glyphs in the font.
func (f *Font) Length() uint32 { return f.field(16) }

// CharSize returns the number of bytes in each glyph bitmap.
func (f *Font) CharSize() uint32 { return f.field(20) }

// Height returns the number of rows in a glyph.
func (f *Font) Height() uint32 { return f.field(24) }

// Width returns the number of columns in a glyph.
func (f *Font) Width() uint32 { return f.field(28) }

// LookupASCII returns the glyph for the ASCII character c.
func (f *Font) LookupASCII(c byte) (Glyph, bool) {
	return f.Lookup(uint32(c))
}

// Lookup returns the glyph with index i. The result is false if the font
// has no glyph i.
func (f *Font) Lookup(i uint32) (Glyph, bool) {
	if i >= f.Length() {
		return Glyph{}, false
	}
	charSize := uint64(f.CharSize())
	offset := uint64(f.HeaderSize()) + uint64(i)*charSize
	end := offset + charSize
	if end > uint64(len(f.data)) {
		return Glyph{}, false
	}
	return Glyph{
		data:  f.data[offset:end:end],
		width: f.Width(),
	}, true
}

// LookupRune returns the glyph for r, assuming the glyphs are ordered like
// IBM code page 437. The result is false for runes outside the code page.
func (f *Font) LookupRune(r rune) (Glyph, bool) {
	c, ok := charmap.CodePage437.EncodeRune(r)
	if !ok {
		return Glyph{}, false
	}
	return f.Lookup(uint32(c))
}
