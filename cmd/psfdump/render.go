package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/pbnjay/psffont"
)

var (
	background = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	grid       = color.RGBA{0xf0, 0xc0, 0xc0, 0xff}
	foreground = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

// label returns the code page 437 character usually found at glyph index i,
// or '.' if there is no printable one.
func label(i uint32) rune {
	if i > 0xff {
		return '.'
	}
	r := charmap.CodePage437.DecodeByte(byte(i))
	if !unicode.IsPrint(r) {
		return '.'
	}
	return r
}

// glyphLines draws a glyph as one string per row.
func glyphLines(g psffont.Glyph) []string {
	var lines []string
	for row := range g.Rows() {
		var b strings.Builder
		for filled := range row.Pixels() {
			if filled {
				b.WriteByte('X')
			} else {
				b.WriteByte(' ')
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// printTable draws the glyphs first to last side by side, as many per line
// as fit into the given number of columns.
func printTable(w io.Writer, f *psffont.Font, first, last uint32, columns int) {
	cellWidth := max(int(f.Width()), 7) + 2
	perLine := max(columns/cellWidth, 1)
	height := int(f.Height())

	for start := uint64(first); start <= uint64(last); start += uint64(perLine) {
		end := min(start+uint64(perLine)-1, uint64(last))

		var cells [][]string
		var head strings.Builder
		for i := start; i <= end; i++ {
			g, _ := f.Lookup(uint32(i))
			cells = append(cells, glyphLines(g))
			fmt.Fprintf(&head, "%-*s", cellWidth, fmt.Sprintf("%#02x %c", i, label(uint32(i))))
		}
		fmt.Fprintln(w, strings.TrimRight(head.String(), " "))

		for y := 0; y < height; y++ {
			var line strings.Builder
			for _, cell := range cells {
				row := ""
				if y < len(cell) {
					row = cell[y]
				}
				fmt.Fprintf(&line, "%-*s", cellWidth, row)
			}
			fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
		}
		fmt.Fprintln(w)
	}
}

// printRows prints every row of the glyphs first to last on its own line,
// prefixed by the glyph's character.
func printRows(w io.Writer, f *psffont.Font, first, last uint32) {
	for i := uint64(first); i <= uint64(last); i++ {
		g, _ := f.Lookup(uint32(i))
		c := label(uint32(i))
		for _, line := range glyphLines(g) {
			fmt.Fprintf(w, "%c  [%s]\n", c, line)
		}
	}
}

// sheet draws the glyphs first to last, 16 per line, separated by a one
// pixel grid.
func sheet(f *psffont.Font, first, last uint32) *image.RGBA {
	w := int(f.Width())
	h := int(f.Height())
	n := 0
	if last >= first {
		n = int(last-first) + 1
	}
	lines := (n + 15) / 16

	img := image.NewRGBA(image.Rect(0, 0, 1+(w+1)*16, 1+(h+1)*lines))
	draw.Draw(img, img.Bounds(), image.NewUniform(grid), image.Point{}, draw.Src)

	fg := image.NewUniform(foreground)
	for k := 0; k < n; k++ {
		x := 1 + (k%16)*(w+1)
		y := 1 + (k/16)*(h+1)
		cell := image.Rect(x, y, x+w, y+h)
		draw.Draw(img, cell, image.NewUniform(background), image.Point{}, draw.Src)

		g, ok := f.Lookup(first + uint32(k))
		if !ok {
			continue
		}
		mask := g.Bitmap()
		draw.DrawMask(img, cell, fg, image.Point{}, mask, image.Point{}, draw.Over)
	}
	return img
}

// textImage renders s on a single line, using f as a font.Face.
func textImage(f *psffont.Font, s string) *image.RGBA {
	const margin = 4
	face := psffont.NewFace(f)
	width := font.MeasureString(face, s).Ceil()

	img := image.NewRGBA(image.Rect(0, 0, width+2*margin, int(f.Height())+2*margin))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(foreground),
		Face: face,
		Dot:  fixed.P(margin, margin+face.Ascent),
	}
	d.DrawString(s)
	return img
}

func writeSheetPNG(name string, f *psffont.Font, first, last uint32) error {
	return savePNG(name, sheet(f, first, last))
}

func writeTextPNG(name string, f *psffont.Font, s string) error {
	return savePNG(name, textImage(f, s))
}

func savePNG(name string, img image.Image) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
