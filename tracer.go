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

// Options controls the recursive partitioning used by Trace.
type Options struct {
	// ChunkSize is the maximum side length at which recursion bottoms
	// out to the base-case fragment extractor. Must be at least 2, or
	// the boundary walk at the base case degenerates.
	ChunkSize int

	// MaxIter caps recursion depth as a safety valve against
	// pathological input; 0 returns no polylines at all.
	MaxIter int
}

// DefaultOptions returns the options used by the reference tracer this
// implementation is ported from.
func DefaultOptions() Options {
	return Options{ChunkSize: 10, MaxIter: 999}
}

// Trace partitions r recursively and extracts a set of polylines
// approximating the skeleton's shape. r is read but not modified; call
// Thin first if r has not already been thinned.
//
// Tracing is deterministic: the same raster and options always produce
// bit-identical output, because every tie-break in the seam selector
// and the merger resolves by strict improvement over scan order.
func Trace(r *Raster, opts Options) []Polyline {
	whole := chunk{x: 0, y: 0, w: r.W, h: r.H}
	frags := traceChunk(r, whole, opts.ChunkSize, opts.MaxIter)
	return []Polyline(frags)
}

// traceChunk is the recursive core of Trace (§4.F of the design).
func traceChunk(r *Raster, c chunk, chunkSize, maxIter int) fragmentList {
	if maxIter <= 0 {
		return nil
	}
	if c.w <= chunkSize && c.h <= chunkSize {
		return chunkToFrags(r, c)
	}

	seam, ok := findSeam(r, c, chunkSize)
	if !ok {
		return chunkToFrags(r, c)
	}

	first, second := c.split(seam)

	var frags0, frags1 fragmentList
	if r.hasForeground(first.x, first.y, first.w, first.h) {
		frags0 = traceChunk(r, first, chunkSize, maxIter-1)
	}
	if r.hasForeground(second.x, second.y, second.w, second.h) {
		frags1 = traceChunk(r, second, chunkSize, maxIter-1)
	}

	return mergeAcross(frags0, frags1, seam)
}
