// rastertrace.dev/skeltrace - a raster skeleton tracer
// Copyright (C) 2026  The Skeltrace Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command skeltrace reads a binary raster, thins it, traces its
// skeleton, and writes the resulting polylines as an SVG file. Input
// may be either the ASCII-art format or a PNG/BMP scan.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"rastertrace.dev/skeltrace"
	"rastertrace.dev/skeltrace/asciiart"
	"rastertrace.dev/skeltrace/imageio"
	"rastertrace.dev/skeltrace/svg"
)

func main() {
	var (
		input     = flag.String("in", "", "input file (ASCII-art, .png, or .bmp)")
		output    = flag.String("out", "out.svg", "output SVG file")
		chunkSize = flag.Int("chunk-size", skeltrace.DefaultOptions().ChunkSize, "recursion base-case chunk size")
		maxIter   = flag.Int("max-iter", skeltrace.DefaultOptions().MaxIter, "recursion depth cap")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "skeltrace: -in is required")
		os.Exit(2)
	}

	if err := run(*input, *output, *chunkSize, *maxIter); err != nil {
		fmt.Fprintf(os.Stderr, "skeltrace: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, chunkSize, maxIter int) error {
	r, err := readRaster(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	skeltrace.Thin(r)

	start := time.Now()
	polylines := skeltrace.Trace(r, skeltrace.Options{ChunkSize: chunkSize, MaxIter: maxIter})
	fmt.Fprintf(os.Stderr, "skeltrace: traced %d polylines in %s\n", len(polylines), time.Since(start))

	doc := svg.Render(polylines, r.W, r.H, svg.Style{})
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

func readRaster(path string) (*skeltrace.Raster, error) {
	switch {
	case strings.HasSuffix(path, ".png"):
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return imageio.Decode(f, imageio.PNG, imageio.Options{})
	case strings.HasSuffix(path, ".bmp"):
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return imageio.Decode(f, imageio.BMP, imageio.Options{})
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return asciiart.Decode(data)
	}
}
