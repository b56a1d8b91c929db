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

// Package testcases holds canned binary rasters for the scenarios this
// tracer is expected to handle, as an ASCII-art grid of '0'/'1' rows.
package testcases

// TestCase names an ASCII-art raster. Rows must all share the same
// length (the case's width); Rows' count is the case's height.
type TestCase struct {
	Name string
	Rows []string
}

// Width returns the length of the first row, or 0 if there are none.
func (tc TestCase) Width() int {
	if len(tc.Rows) == 0 {
		return 0
	}
	return len(tc.Rows[0])
}

// Height returns the number of rows.
func (tc TestCase) Height() int {
	return len(tc.Rows)
}

// Text joins Rows into the newline-terminated form the asciiart package
// reads, so a TestCase can round-trip through the same parser real
// callers use.
func (tc TestCase) Text() string {
	var out []byte
	for _, row := range tc.Rows {
		out = append(out, row...)
		out = append(out, '\n')
	}
	return string(out)
}
