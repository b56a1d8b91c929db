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

// Package svg renders a set of polylines produced by skeltrace.Trace as
// a minimal SVG document, one <path> per polyline.
package svg

import (
	"fmt"
	"strings"

	"seehuhn.de/go/pdf/graphics"

	"rastertrace.dev/skeltrace"
)

// Style controls the stroke attributes written on the <svg> root
// element. The zero Style reproduces the tracer's historical fixed
// output exactly: a plain black, 1-unit stroke with no cap or join
// attributes at all.
type Style struct {
	// StrokeWidth overrides the default stroke width of 1 when non-zero.
	StrokeWidth float64

	// Cap, if HasCap is set, is written as a stroke-linecap attribute.
	Cap graphics.LineCapStyle

	// HasCap reports whether Cap should be written; graphics.LineCapStyle's
	// zero value (butt) is also its most common explicit setting, so a
	// bool flag distinguishes "not set" from "set to butt".
	HasCap bool

	// Join, if HasJoin is set, is written as a stroke-linejoin attribute.
	Join    graphics.LineJoinStyle
	HasJoin bool
}

func (s Style) strokeWidth() float64 {
	if s.StrokeWidth == 0 {
		return 1
	}
	return s.StrokeWidth
}

func capName(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "round"
	case graphics.LineCapSquare:
		return "square"
	case graphics.LineCapButt:
		return "butt"
	default:
		return "butt"
	}
}

func joinName(j graphics.LineJoinStyle) string {
	switch j {
	case graphics.LineJoinRound:
		return "round"
	case graphics.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// Render writes polylines as an SVG document of the given pixel
// dimensions. Each polyline becomes one <path> with a single "M ... L
// ..." data string; a polyline of fewer than two points is skipped, as
// it cannot be drawn as a line.
func Render(polylines []skeltrace.Polyline, width, height int, style Style) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" fill="none" stroke="black" stroke-width="%g"`,
		width, height, style.strokeWidth())
	if style.HasCap {
		fmt.Fprintf(&b, ` stroke-linecap="%s"`, capName(style.Cap))
	}
	if style.HasJoin {
		fmt.Fprintf(&b, ` stroke-linejoin="%s"`, joinName(style.Join))
	}
	b.WriteString(">\n")

	for _, p := range polylines {
		if len(p) < 2 {
			continue
		}
		b.WriteString(`<path d="`)
		fmt.Fprintf(&b, "M%d,%d", p[0].X, p[0].Y)
		for _, pt := range p[1:] {
			fmt.Fprintf(&b, " L%d,%d", pt.X, pt.Y)
		}
		b.WriteString(`"/>` + "\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}
