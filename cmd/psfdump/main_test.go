package main

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pbnjay/psffont"
)

// testFont returns a 4x3 font with 67 glyphs, where glyph 'A' is a box and
// glyph 'B' a diagonal.
func testFont(t *testing.T) *psffont.Font {
	t.Helper()
	const n = 67
	hdr := []uint32{0, 32, 0, n, 3, 3, 4}
	data := append([]byte{}, psffont.Magic[:]...)
	for _, v := range hdr {
		data = binary.LittleEndian.AppendUint32(data, v)
	}
	glyphs := make([]byte, 3*n)
	copy(glyphs[3*'A':], []byte{0b11110000, 0b10010000, 0b11110000})
	copy(glyphs[3*'B':], []byte{0b10000000, 0b01000000, 0b00100000})
	f, err := psffont.Parse(append(data, glyphs...))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestParseRange(t *testing.T) {
	cases := []struct {
		in          string
		first, last uint32
		ok          bool
	}{
		{"", 0, 65, true},
		{"65", 65, 65, true},
		{"0x20-0x41", 32, 65, true},
		{"0x41-0x42", 0, 0, false},
		{"32-65", 32, 65, true},
		{"10-5", 0, 0, false},
		{"a-b", 0, 0, false},
		{"66", 0, 0, false},
	}
	for _, c := range cases {
		first, last, err := parseRange(c.in, 66)
		if (err == nil) != c.ok {
			t.Errorf("%q: got error %v", c.in, err)
			continue
		}
		if c.ok && (first != c.first || last != c.last) {
			t.Errorf("%q: got %d-%d, want %d-%d", c.in, first, last, c.first, c.last)
		}
	}

	first, last, err := parseRange("", 0)
	if err != nil || first <= last {
		t.Errorf("empty font: got %d-%d, %v", first, last, err)
	}
}

func TestPrintRows(t *testing.T) {
	var buf bytes.Buffer
	printRows(&buf, testFont(t), 'A', 'B')
	want := "" +
		"A  [XXXX]\n" +
		"A  [X  X]\n" +
		"A  [XXXX]\n" +
		"B  [X   ]\n" +
		"B  [ X  ]\n" +
		"B  [  X ]\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Error(d)
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, testFont(t), 'A', 'B', 80)
	want := "" +
		"0x41 A   0x42 B\n" +
		"XXXX     X\n" +
		"X  X      X\n" +
		"XXXX       X\n" +
		"\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Error(d)
	}

	// one glyph per line when the terminal is narrow
	buf.Reset()
	printTable(&buf, testFont(t), 'A', 'B', 5)
	if n := strings.Count(buf.String(), "0x4"); n != 2 {
		t.Errorf("got %d headings", n)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 10 {
		t.Errorf("got %d lines, want 10", lines)
	}
}

func TestSheet(t *testing.T) {
	f := testFont(t)
	img := sheet(f, 'A', 'B')
	if b := img.Bounds(); b.Dx() != 1+5*16 || b.Dy() != 5 {
		t.Fatalf("got bounds %v", b)
	}
	if img.RGBAAt(0, 0) != grid {
		t.Error("missing grid")
	}
	// glyph 'A' in the first cell, 'B' in the second
	if img.RGBAAt(2, 2) != background || img.RGBAAt(1, 1) != foreground {
		t.Error("glyph 'A' drawn incorrectly")
	}
	if img.RGBAAt(6, 1) != foreground || img.RGBAAt(7, 1) != background {
		t.Error("glyph 'B' drawn incorrectly")
	}
}

func TestTextImage(t *testing.T) {
	f := testFont(t)
	img := textImage(f, "AB")
	if b := img.Bounds(); b.Dx() != 8+8 || b.Dy() != 3+8 {
		t.Fatalf("got bounds %v", b)
	}
	count := 0
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.At(x, y) == color.Color(foreground) {
				count++
			}
		}
	}
	if count != 10+3 {
		t.Errorf("got %d foreground pixels, want 13", count)
	}
}
