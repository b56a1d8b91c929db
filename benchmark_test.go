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

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

// ringRaster uses x/image/vector to rasterise an "O" shape (an outer
// circle minus an inner circle) to an alpha-coverage image, then
// binarises it at the 50% coverage mark. This is the same trick the
// teacher library's BenchmarkVectorO uses to manufacture a filled
// shape without a hand-rolled scan-converter — applied here to
// synthesize bitmap input instead of comparing against one.
func ringRaster(size int) *Raster {
	rv := vector.NewRasterizer(size, size)

	cx := float32(size) / 2
	cy := float32(size) / 2
	outerR := float32(size) * 0.45
	innerR := float32(size) * 0.30

	addCircleToVector(rv, cx, cy, outerR, false)
	addCircleToVector(rv, cx, cy, innerR, true)

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	src := image.NewUniform(color.Alpha{A: 255})
	rv.Draw(dst, dst.Bounds(), src, image.Point{})

	r := NewRaster(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if dst.AlphaAt(x, y).A > 127 {
				r.Set(x, y, true)
			}
		}
	}
	return r
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic
// Bézier curves, ported unchanged from the teacher's own benchmark
// helper of the same name.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

func BenchmarkThin(b *testing.B) {
	sizes := []int{20, 100, 400}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			base := ringRaster(size)
			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				r := &Raster{Pix: append([]byte(nil), base.Pix...), W: base.W, H: base.H}
				Thin(r)
			}
		})
	}
}

func BenchmarkTrace(b *testing.B) {
	sizes := []int{20, 100, 400}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			base := ringRaster(size)
			Thin(base)
			opts := DefaultOptions()

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				Trace(base, opts)
			}
		})
	}
}
