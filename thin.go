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

// Thin reduces r's foreground to a one-pixel-wide skeleton in place,
// using the Zhang–Suen thinning algorithm. It alternates the two
// sub-iterations and stops once a full pass of both makes no change.
// The one-pixel border is never visited or modified.
func Thin(r *Raster) {
	for {
		changed0 := thinSubiteration(r, 0)
		changed1 := thinSubiteration(r, 1)
		if !changed0 && !changed1 {
			return
		}
	}
}

// thinSubiteration runs one Zhang–Suen sub-iteration (iter 0 or 1) over
// r's interior pixels, marking and then committing deletions. It
// reports whether any pixel's value changed.
func thinSubiteration(r *Raster, iter int) bool {
	w, h := r.W, r.H

	// Mark pass: scan all interior pixels, set the delete bit on those
	// that satisfy the Zhang–Suen removal rule. The mark bit is read
	// nowhere during this pass, so marking P1 never affects the
	// neighbourhood reads of P1's neighbours within the same pass.
	for i := 1; i <= h-2; i++ {
		row := i * w
		for j := 1; j <= w-2; j++ {
			idx := row + j
			if r.Pix[idx]&foregroundBit == 0 {
				continue
			}

			p2 := r.pixelBit(j, i-1)
			p3 := r.pixelBit(j+1, i-1)
			p4 := r.pixelBit(j+1, i)
			p5 := r.pixelBit(j+1, i+1)
			p6 := r.pixelBit(j, i+1)
			p7 := r.pixelBit(j-1, i+1)
			p8 := r.pixelBit(j-1, i)
			p9 := r.pixelBit(j-1, i-1)

			b := p2 + p3 + p4 + p5 + p6 + p7 + p8 + p9
			if b < 2 || b > 6 {
				continue
			}

			a := transitions(p2, p3, p4, p5, p6, p7, p8, p9, p2)
			if a != 1 {
				continue
			}

			var cond bool
			if iter == 0 {
				cond = p2*p4*p6 == 0 && p4*p6*p8 == 0
			} else {
				cond = p2*p4*p8 == 0 && p2*p6*p8 == 0
			}
			if cond {
				r.Pix[idx] |= deleteBit
			}
		}
	}

	// Commit pass: clear bit 0 of every marked pixel, then clear the
	// scratch bit. Track whether any pixel's foreground value changed.
	changed := false
	for idx := range r.Pix {
		old := r.Pix[idx]
		if old&deleteBit != 0 {
			newVal := old &^ (foregroundBit | deleteBit)
			if newVal&foregroundBit != old&foregroundBit {
				changed = true
			}
			r.Pix[idx] = newVal
		}
	}
	return changed
}

// pixelBit returns bit 0 of the pixel at (x, y) as 0 or 1.
func (r *Raster) pixelBit(x, y int) int {
	if r.Pix[y*r.W+x]&foregroundBit != 0 {
		return 1
	}
	return 0
}

// transitions counts 0→1 transitions in the cyclic sequence of 0/1
// values p0..p7 followed by wrap (last argument repeats p0).
func transitions(p0, p1, p2, p3, p4, p5, p6, p7, wrap int) int {
	seq := [9]int{p0, p1, p2, p3, p4, p5, p6, p7, wrap}
	n := 0
	for i := 0; i < 8; i++ {
		if seq[i] == 0 && seq[i+1] == 1 {
			n++
		}
	}
	return n
}
