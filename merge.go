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

// mergeMode is one of the four splice attempts tried, in order, for
// each fragment pulled from the second chunk's fragment list. bit1
// selects which end of the destination (C0) fragment is matched — 0
// for its tail, 1 for its head; bit0 selects which end of the source
// (C1) fragment is matched, using the same convention.
type mergeMode struct {
	bit1, bit0 int
}

// mergeModes is the fixed attempt order from the reference tracer:
// "01", "11", "00", "10" read as (bit1, bit0) pairs.
var mergeModes = [4]mergeMode{
	{bit1: 0, bit0: 1},
	{bit1: 1, bit0: 1},
	{bit1: 0, bit0: 0},
	{bit1: 1, bit0: 0},
}

// mergeAcross joins the fragments of two sibling chunks across the
// seam that split them into c0 (into which the result accumulates) and
// c1 (drained and discarded).
//
// This mirrors the two-pass, append-one-side/prepend-the-other
// accumulation the teacher library uses to build a stroke outline from
// forward and backward passes over a segment list — here the two
// "sides" are the two sibling fragment lists instead of the two edges
// of a stroked line, and splicing replaces offset-point accumulation.
func mergeAcross(c0 fragmentList, c1 fragmentList, seam Seam) fragmentList {
	if len(c0) == 0 {
		return c1
	}
	if len(c1) == 0 {
		return c0
	}

	merged := make([]bool, len(c1))

	for i := len(c1) - 1; i >= 0; i-- {
		frag := c1[i]
		for _, mode := range mergeModes {
			if spliceFragment(c0, frag, mode, seam) {
				merged[i] = true
				break
			}
		}
	}

	for i, frag := range c1 {
		if !merged[i] {
			c0 = append(c0, frag)
		}
	}
	return c0
}

// spliceFragment attempts one merge mode: find a C0 fragment whose
// matching endpoint lands near the seam and near frag's matching
// endpoint on the cross axis, then splice frag into it in place.
// Reports whether a candidate was found and the splice performed.
func spliceFragment(c0 fragmentList, frag Polyline, mode mergeMode, seam Seam) bool {
	c1Idx := 0
	if mode.bit0 == 0 {
		c1Idx = len(frag) - 1
	}
	c1Pt := frag[c1Idx]
	if abs(seamCoord(c1Pt, seam.Dir)-seam.At) > 0 {
		return false
	}

	bestJ, bestDist := -1, -1
	for j, f := range c0 {
		c0Idx := 0
		if mode.bit1 == 0 {
			c0Idx = len(f) - 1
		}
		c0Pt := f[c0Idx]
		if abs(seamCoord(c0Pt, seam.Dir)-seam.At) > 1 {
			continue
		}
		dist := abs(crossCoord(c0Pt, seam.Dir) - crossCoord(c1Pt, seam.Dir))
		if dist >= 4 {
			continue
		}
		if bestJ < 0 || dist < bestDist {
			bestJ, bestDist = j, dist
		}
	}
	if bestJ < 0 {
		return false
	}

	c0[bestJ] = splice(c0[bestJ], frag, mode)
	return true
}

// splice combines a C1 fragment into a C0 fragment according to mode,
// reversing whichever side the mode calls for.
func splice(dst, src Polyline, mode mergeMode) Polyline {
	switch {
	case mode.bit0 == 1 && mode.bit1 == 1:
		return append(reversed(src), dst...)
	case mode.bit0 == 0 && mode.bit1 == 1:
		return append(append(Polyline{}, dst...), src...)
	case mode.bit0 == 1 && mode.bit1 == 0:
		return append(append(Polyline{}, src...), dst...)
	default: // bit0 == 0, bit1 == 0
		return append(dst, reversed(src)...)
	}
}

// reversed returns a new polyline with p's points in reverse order.
func reversed(p Polyline) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

// seamCoord projects a point onto the seam's matching axis: the
// y-coordinate for vertical seams, the x-coordinate for horizontal
// seams. This cross-wiring (rather than the geometrically obvious
// choice) is carried over unchanged from the reference tracer; §8's
// determinism property depends on reproducing it exactly.
func seamCoord(p Point, dir Direction) int {
	if dir == Vertical {
		return p.Y
	}
	return p.X
}

// crossCoord is the complement of seamCoord: the x-coordinate for
// vertical seams, the y-coordinate for horizontal seams. It is used to
// judge how close two candidate endpoints are to each other once both
// qualify under seamCoord.
func crossCoord(p Point, dir Direction) int {
	if dir == Vertical {
		return p.X
	}
	return p.Y
}
