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

// Package asciiart reads the ASCII-art bitmap format used by the
// reference tracer's example input: rows of '0'/'1' characters
// separated by newlines, one character per pixel.
package asciiart

import (
	"fmt"

	"rastertrace.dev/skeltrace"
)

// Decode parses an ASCII-art bitmap into a Raster. '1' marks
// foreground, '0' marks background; any other byte (trailing
// whitespace, carriage returns) is ignored rather than rejected. The
// width is the length of the longest row; shorter rows are implicitly
// padded with background on the right. A trailing newline, or its
// absence, does not change the result.
func Decode(data []byte) (*skeltrace.Raster, error) {
	var rows [][]byte
	var cur []byte
	for _, b := range data {
		switch b {
		case '0', '1':
			cur = append(cur, b)
		case '\n':
			rows = append(rows, cur)
			cur = nil
		default:
			// ignore
		}
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("asciiart: no rows found in input")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	height := len(rows)

	r := skeltrace.NewRaster(width, height)
	for y, row := range rows {
		for x, b := range row {
			if b == '1' {
				r.Set(x, y, true)
			}
		}
	}
	return r, nil
}

// Encode renders a Raster back into the ASCII-art format Decode reads,
// one '0'/'1' row per raster row, newline-terminated.
func Encode(r *skeltrace.Raster) []byte {
	out := make([]byte, 0, r.H*(r.W+1))
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if r.At(x, y) {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
		}
		out = append(out, '\n')
	}
	return out
}
