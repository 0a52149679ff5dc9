// Package mmapfont opens PSF2 font files by mapping them into memory,
// so that glyphs are read straight from the page cache.
package mmapfont

import (
	"fmt"
	"math"
	"os"

	"github.com/pbnjay/psffont"
)

// File is a font file mapped into memory. It implements psffont.Source.
type File struct {
	name string
	data []byte
	font *psffont.Font
}

// Open maps the named file read-only and parses it as a PSF2 font.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size > math.MaxInt {
		return nil, fmt.Errorf("%s: file too large (%d bytes)", name, size)
	}

	data, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	mf := &File{name: name, data: data}

	mf.font, err = psffont.Load(mf)
	if err != nil {
		_ = unmapFile(data)
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	psffont.Logger().Debug("mapped font file", "name", name, "size", size)
	return mf, nil
}

// Bytes returns the mapped file contents. The slice must not be modified.
func (mf *File) Bytes() []byte {
	return mf.data
}

// Font returns the parsed font.
func (mf *File) Font() *psffont.Font {
	return mf.font
}

// Name returns the name of the file, as passed to Open.
func (mf *File) Name() string {
	return mf.name
}

// Close unmaps the file. The Font and any glyphs or rows obtained from it
// must not be used afterwards.
func (mf *File) Close() error {
	if mf.data == nil {
		return nil
	}
	err := unmapFile(mf.data)
	mf.data = nil
	mf.font = nil
	return err
}
