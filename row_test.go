package psffont

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRowPixels(t *testing.T) {
	row := newRow([]byte{3, 0}, 9)
	if row.Len() != 9 {
		t.Errorf("got Len %d, want 9", row.Len())
	}
	want := []bool{false, false, false, false, false, false, true, true, false}
	got := slices.Collect(row.Pixels())
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestRowRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for width := 1; width <= 40; width++ {
		for range 10 {
			pixels := make([]bool, width)
			for i := range pixels {
				pixels[i] = rng.IntN(2) == 1
			}
			row := newRow(packRow(pixels), width)
			if d := cmp.Diff(pixels, slices.Collect(row.Pixels())); d != "" {
				t.Fatalf("width %d: %s", width, d)
			}
		}
	}
}

func TestRowPaddingIgnored(t *testing.T) {
	row := newRow([]byte{0b10111111}, 2)
	if d := cmp.Diff([]bool{true, false}, slices.Collect(row.Pixels())); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]bool{false, true}, slices.Collect(row.Backward())); d != "" {
		t.Error(d)
	}
}

func TestRowBackward(t *testing.T) {
	row := newRow([]byte{3, 0x80}, 9)
	fwd := slices.Collect(row.Pixels())
	slices.Reverse(fwd)
	if d := cmp.Diff(fwd, slices.Collect(row.Backward())); d != "" {
		t.Error(d)
	}
}

// TestRowInterleaved tries every combination of front and back steps.
func TestRowInterleaved(t *testing.T) {
	data := []byte{0b10110010, 0b01000000}
	const width = 10
	full := slices.Collect(newRow(data, width).Pixels())

	for pattern := 0; pattern < 1<<width; pattern++ {
		row := newRow(data, width)
		var front, back []bool
		for step := 0; step < width; step++ {
			if row.Len() != width-step {
				t.Fatalf("pattern %b step %d: Len %d", pattern, step, row.Len())
			}
			var px, ok bool
			if pattern&(1<<step) != 0 {
				px, ok = row.NextBack()
				back = append(back, px)
			} else {
				px, ok = row.Next()
				front = append(front, px)
			}
			if !ok {
				t.Fatalf("pattern %b step %d: row ended early", pattern, step)
			}
		}
		if row.Len() != 0 {
			t.Fatalf("pattern %b: Len %d after exhausting row", pattern, row.Len())
		}
		if _, ok := row.Next(); ok {
			t.Fatalf("pattern %b: Next after end", pattern)
		}
		if _, ok := row.NextBack(); ok {
			t.Fatalf("pattern %b: NextBack after end", pattern)
		}

		slices.Reverse(back)
		got := append(front, back...)
		if d := cmp.Diff(full, got); d != "" {
			t.Fatalf("pattern %b: %s", pattern, d)
		}
	}
}

func TestRowBytesUnchanged(t *testing.T) {
	data := []byte{0xf0, 0x0f}
	row := newRow(data, 16)
	row.Next()
	row.NextBack()
	row.Next()
	if d := cmp.Diff(data, row.Bytes()); d != "" {
		t.Error(d)
	}
	if row.Len() != 13 || row.Width() != 15 {
		t.Errorf("got Len %d Width %d, want 13 and 15", row.Len(), row.Width())
	}
}

func TestRowSeqRestartable(t *testing.T) {
	row := newRow([]byte{0xa0}, 3)
	seq := row.Pixels()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if d := cmp.Diff(first, second); d != "" {
		t.Error(d)
	}
	if row.Len() != 3 {
		t.Errorf("iterating consumed the row, Len %d", row.Len())
	}

	n := 0
	for range row.Pixels() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("break stopped after %d pixels", n)
	}
}

func TestPixelMasks(t *testing.T) {
	for pos := range 8 {
		b := byte(0x80) >> pos
		for bit := range 8 {
			if got := pixelSet([]byte{b}, bit); got != (bit == pos) {
				t.Errorf("byte %08b bit %d: got %t", b, bit, got)
			}
		}
	}
}
