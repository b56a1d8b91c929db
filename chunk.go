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

// findSeam picks the best horizontal or vertical split line for a chunk
// that is too large on at least one axis. It reports ok=false if no
// valid seam could be found on any axis that needed one.
//
// When both axes exceed chunkSize, both scans run and a vertical seam
// found by the second scan overwrites a horizontal seam found by the
// first — this ordering quirk is preserved from the reference tracer
// for output determinism.
func findSeam(r *Raster, c chunk, chunkSize int) (Seam, bool) {
	var best Seam
	found := false

	if c.h > chunkSize {
		if s, ok := findHorizontalSeam(r, c); ok {
			best, found = s, true
		}
	}
	if c.w > chunkSize {
		if s, ok := findVerticalSeam(r, c); ok {
			best, found = s, true
		}
	}

	return best, found
}

// findHorizontalSeam scans candidate rows splitting c top/bottom.
func findHorizontalSeam(r *Raster, c chunk) (Seam, bool) {
	bestRow, bestScore, bestDist := -1, -1, -1
	centre := c.y + c.h/2

	for i := c.y + 3; i < c.y+c.h-3; i++ {
		if r.At(c.x, i) || r.At(c.x, i-1) || r.At(c.x+c.w-1, i) || r.At(c.x+c.w-1, i-1) {
			continue
		}

		score := 0
		for j := c.x; j < c.x+c.w; j++ {
			score += r.pixelBit(j, i) + r.pixelBit(j, i-1)
		}

		dist := abs(i - centre)
		if bestRow < 0 || score < bestScore || (score == bestScore && dist < bestDist) {
			bestRow, bestScore, bestDist = i, score, dist
		}
	}

	if bestRow < 0 {
		return Seam{}, false
	}
	return Seam{At: bestRow, Dir: Horizontal}, true
}

// findVerticalSeam scans candidate columns splitting c left/right.
func findVerticalSeam(r *Raster, c chunk) (Seam, bool) {
	bestCol, bestScore, bestDist := -1, -1, -1
	centre := c.x + c.w/2

	for j := c.x + 3; j < c.x+c.w-3; j++ {
		if r.At(j, c.y) || r.At(j-1, c.y) || r.At(j, c.y+c.h-1) || r.At(j-1, c.y+c.h-1) {
			continue
		}

		score := 0
		for i := c.y; i < c.y+c.h; i++ {
			score += r.pixelBit(j, i) + r.pixelBit(j-1, i)
		}

		dist := abs(j - centre)
		if bestCol < 0 || score < bestScore || (score == bestScore && dist < bestDist) {
			bestCol, bestScore, bestDist = j, score, dist
		}
	}

	if bestCol < 0 {
		return Seam{}, false
	}
	return Seam{At: bestCol, Dir: Vertical}, true
}

// split partitions c into its two sibling chunks along seam s.
func (c chunk) split(s Seam) (first, second chunk) {
	if s.Dir == Horizontal {
		return chunk{c.x, c.y, c.w, s.At - c.y},
			chunk{c.x, s.At, c.w, c.y + c.h - s.At}
	}
	return chunk{c.x, c.y, s.At - c.x, c.h},
		chunk{s.At, c.y, c.x + c.w - s.At, c.h}
}
