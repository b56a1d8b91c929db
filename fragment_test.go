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

import "testing"

func TestChunkToFragsEmptyChunkYieldsNothing(t *testing.T) {
	r := NewRaster(9, 9)
	c := chunk{x: 0, y: 0, w: 9, h: 9}
	if frags := chunkToFrags(r, c); len(frags) != 0 {
		t.Errorf("expected no fragments for an empty chunk, got %d", len(frags))
	}
}

func TestChunkToFragsDegenerateChunkClampsToNil(t *testing.T) {
	r := NewRaster(1, 1)
	c := chunk{x: 0, y: 0, w: 1, h: 1}
	if frags := chunkToFrags(r, c); frags != nil {
		t.Errorf("a 1x1 chunk has non-positive perimeter, expected nil, got %v", frags)
	}
}

func TestChunkToFragsTwoCrossingsCollapseToOneFragment(t *testing.T) {
	// A horizontal bar through the middle of a 9x9 chunk crosses the
	// boundary exactly twice: once on the left edge, once on the right.
	r := NewRaster(9, 9)
	for x := 0; x < 9; x++ {
		r.Set(x, 4, true)
	}
	c := chunk{x: 0, y: 0, w: 9, h: 9}

	frags := chunkToFrags(r, c)
	if len(frags) != 1 {
		t.Fatalf("expected exactly one fragment for two boundary crossings, got %d", len(frags))
	}
	if len(frags[0]) != 2 {
		t.Fatalf("collapsed fragment should have exactly two points, got %d", len(frags[0]))
	}
}

func TestChunkToFragsFourCrossingsRepositionsCentres(t *testing.T) {
	// A plus sign crosses the 9x9 chunk's boundary four times: top,
	// bottom, left, and right arms.
	r := rasterFromRows([]string{
		"000010000",
		"000010000",
		"000010000",
		"000010000",
		"111111111",
		"000010000",
		"000010000",
		"000010000",
		"000010000",
	})
	c := chunk{x: 0, y: 0, w: 9, h: 9}

	frags := chunkToFrags(r, c)
	if len(frags) != 4 {
		t.Fatalf("expected four fragments for a plus-sign crossing, got %d", len(frags))
	}
	want := Point{X: 4, Y: 4}
	for i, f := range frags {
		if f[1] != want {
			t.Errorf("fragment %d centre = %+v, want %+v (the plus sign's junction)", i, f[1], want)
		}
	}
}
