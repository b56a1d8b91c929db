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

package skeltrace

// Point is a pixel coordinate, 0 ≤ X < W and 0 ≤ Y < H for the raster
// it belongs to.
type Point struct {
	X, Y int
}

// Polyline is an ordered sequence of two or more points. The first and
// last points are its endpoints and carry semantic weight during
// merging; a Polyline is never empty and never a singleton.
type Polyline []Point

// Direction identifies whether a Seam splits a chunk along a row
// (Horizontal) or a column (Vertical), mirroring the direction marker
// of the reference tracer this algorithm is ported from.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Seam is a single scanline coordinate dividing a chunk into two
// sibling chunks.
type Seam struct {
	At  int
	Dir Direction
}

// chunk is a rectangular, in-bounds sub-region of a raster.
type chunk struct {
	x, y, w, h int
}
