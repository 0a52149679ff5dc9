// psfembed is a commandline tool for including PSF2 console fonts in Go
// programs. It checks the font and writes a Go package holding the font data:
//
//	./psfembed -o terminus /usr/share/consolefonts/Lat2-Terminus16.psf
//
// Add terminus.go to your project, then use terminus.Font.DrawString(...)
// or psffont.NewFace(terminus.Font) to draw text.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pbnjay/psffont"
	"github.com/pbnjay/psffont/mmapfont"
)

var (
	outName = flag.String("o", "", "package name to create (becomes <name>.go)")
	verbose = flag.Bool("v", false, "log debug messages to stderr")
)

const template = `
	package %s

	import "github.com/pbnjay/psffont"

	// Data holds the PSF2 font %s
	// (%d glyphs of %dx%d pixels).
	var Data = []byte{
	%s}

	// Font is the parsed font.
	var Font = psffont.MustParse(Data)
`

// generate returns the source of a Go package named name which embeds the
// font f. The package comment shows the package name drawn in the font.
func generate(name, source string, f *psffont.Font) ([]byte, error) {
	var data bytes.Buffer
	for i, b := range f.Bytes() {
		fmt.Fprintf(&data, "0x%02x,", b)
		if i%16 == 15 {
			data.WriteByte('\n')
		} else {
			data.WriteByte(' ')
		}
	}
	data.WriteByte('\n')

	var out bytes.Buffer
	sd := &psffont.StringDrawable{}
	f.DrawString(sd, 0, 0, name, nil)
	out.WriteString(sd.PrefixString("// "))
	out.WriteString("\n// Code generated by psfembed. DO NOT EDIT.\n")

	code := fmt.Sprintf(template, name, filepath.Base(source), f.Length(), f.Width(), f.Height(), data.String())
	bcode, err := format.Source([]byte(code))
	if err != nil {
		return nil, err
	}
	out.Write(bcode)
	return out.Bytes(), nil
}

func main() {
	flag.Parse()
	if *outName == "" || flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "USAGE: %s -o name font.psf\n", os.Args[0])
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
	code, err := generate(*outName, flag.Arg(0), mf.Font())
	mf.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outName+".go", code, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Created package file:", *outName+".go")
}
