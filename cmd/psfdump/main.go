// psfdump is a commandline tool for inspecting PSF2 console fonts. It prints
// the font header followed by the glyphs, drawn with X characters:
//
//	./psfdump -i 65-70 /usr/share/consolefonts/default8x16.psf
//
// Use -txt to print the glyphs one row per line, in the same form the
// pixfont tools use, -s to render a line of text and -png to write the
// glyphs (or the text) to an image instead.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/pbnjay/psffont"
	"github.com/pbnjay/psffont/mmapfont"
)

var (
	verbose    = flag.Bool("v", false, "log debug messages to stderr")
	glyphRange = flag.String("i", "", "glyph index or range to show, e.g. 65 or 32-127 (default all)")
	text       = flag.String("s", "", "text to render instead of the glyph table")
	textForm   = flag.Bool("txt", false, "print one line per glyph row")
	pngName    = flag.String("png", "", "write the output to this PNG file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "USAGE: %s [options] font.psf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *verbose {
		psffont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mf, err := mmapfont.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer mf.Close()
	f := mf.Font()

	first, last, err := parseRange(*glyphRange, f.Length())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch {
	case *pngName != "" && *text != "":
		err = writeTextPNG(*pngName, f, *text)
	case *pngName != "":
		err = writeSheetPNG(*pngName, f, first, last)
	case *text != "":
		sd := &psffont.StringDrawable{}
		f.DrawString(sd, 0, 0, *text, nil)
		fmt.Print(sd.String())
	case *textForm:
		fmt.Println(describe(f))
		printRows(os.Stdout, f, first, last)
	default:
		fmt.Println(describe(f))
		printTable(os.Stdout, f, first, last, terminalWidth())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func describe(f *psffont.Font) string {
	return fmt.Sprintf("<Version: %d, Header: %d, Flags: 0x%08x, Glyphs: %d, Bytes per glyph: %d, Size: %dx%d, Unicode table: %t>",
		f.Version(), f.HeaderSize(), f.Flags(), f.Length(), f.CharSize(), f.Width(), f.Height(), f.HasUnicodeTable())
}

// parseRange parses "a-b" or "a" into an inclusive range of glyph indices.
// An empty string selects all n glyphs.
func parseRange(s string, n uint32) (first, last uint32, err error) {
	if s == "" {
		if n == 0 {
			return 1, 0, nil
		}
		return 0, n - 1, nil
	}
	lo, hi, isRange := strings.Cut(s, "-")
	a, err := strconv.ParseUint(lo, 0, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid glyph range %q: %w", s, err)
	}
	b := a
	if isRange {
		b, err = strconv.ParseUint(hi, 0, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid glyph range %q: %w", s, err)
		}
	}
	if a > b {
		return 0, 0, fmt.Errorf("invalid glyph range %q", s)
	}
	if b >= uint64(n) {
		return 0, 0, fmt.Errorf("glyph range %q exceeds the %d glyphs of the font", s, n)
	}
	return uint32(a), uint32(b), nil
}

// terminalWidth returns the number of columns of the terminal on stdout,
// or 80 when stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
