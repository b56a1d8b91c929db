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

// fragmentList is an ordered, mutable collection of polylines produced
// by one recursion node. Order carries no meaning to consumers, but the
// merger uses indexed and reverse-order access.
type fragmentList []Polyline

// chunkToFrags converts a chunk small enough to fit within chunk_size on
// both axes into a handful of local polyline stubs, by walking the
// chunk's boundary and recording where the skeleton crosses it.
func chunkToFrags(r *Raster, c chunk) fragmentList {
	perimeter := 2*c.w + 2*c.h - 4
	if perimeter <= 0 {
		return nil
	}

	cx, cy := c.x+c.w/2, c.y+c.h/2

	var frags fragmentList
	on := false
	lj, li := -1, -1   // last foreground boundary pixel seen
	ej, ei := -1, -1   // boundary pixel that started the current fragment

	visit := func(j, i int) {
		fg := r.At(j, i)
		if fg {
			if !on {
				frags = append(frags, Polyline{{X: j, Y: i}, {X: cx, Y: cy}})
				ej, ei = j, i
			}
			lj, li = j, i
			on = true
		} else {
			if on {
				frags[len(frags)-1][0] = Point{X: (ej + lj) / 2, Y: (ei + li) / 2}
			}
			on = false
		}
	}

	for j := c.x; j < c.x+c.w; j++ {
		visit(j, c.y)
	}
	for i := c.y + 1; i < c.y+c.h; i++ {
		visit(c.x+c.w-1, i)
	}
	for j := c.x + c.w - 2; j >= c.x; j-- {
		visit(j, c.y+c.h-1)
	}
	for i := c.y + c.h - 2; i >= c.y+1; i-- {
		visit(c.x, i)
	}

	switch {
	case len(frags) == 2:
		frags = fragmentList{{frags[0][0], frags[1][0]}}
	case len(frags) > 2:
		repositionCentres(r, c, cx, cy, frags)
	}
	return frags
}

// repositionCentres replaces every fragment's centre point (index 1)
// with the brightest 3×3-convolution peak in the chunk's interior,
// breaking ties by Manhattan distance to (cx, cy). If no interior pixel
// is foreground, the centres are left as-is.
func repositionCentres(r *Raster, c chunk, cx, cy int, frags fragmentList) {
	bestJ, bestI, bestScore, bestDist := -1, -1, -1, -1

	for i := c.y + 1; i <= c.y+c.h-2; i++ {
		for j := c.x + 1; j <= c.x+c.w-2; j++ {
			score := 0
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					if r.At(j+dj, i+di) {
						score++
					}
				}
			}
			if score == 0 {
				continue
			}
			dist := abs(j-cx) + abs(i-cy)
			if score > bestScore || (score == bestScore && dist < bestDist) {
				bestJ, bestI, bestScore, bestDist = j, i, score, dist
			}
		}
	}

	if bestScore <= 0 {
		return
	}
	for k := range frags {
		frags[k][1] = Point{X: bestJ, Y: bestI}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
