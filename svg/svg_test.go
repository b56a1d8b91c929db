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

package svg

import (
	"strings"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"rastertrace.dev/skeltrace"
)

func TestRenderBasic(t *testing.T) {
	lines := []skeltrace.Polyline{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}},
	}
	out := Render(lines, 9, 9, Style{})

	if !strings.Contains(out, `width="9" height="9"`) {
		t.Errorf("missing dimensions in %q", out)
	}
	if !strings.Contains(out, `stroke="black" stroke-width="1"`) {
		t.Errorf("default style should be fixed stroke black/1, got %q", out)
	}
	if strings.Contains(out, "stroke-linecap") || strings.Contains(out, "stroke-linejoin") {
		t.Errorf("zero Style must not emit cap/join attributes, got %q", out)
	}
	if !strings.Contains(out, `d="M0,0 L4,0 L4,4"`) {
		t.Errorf("unexpected path data in %q", out)
	}
}

func TestRenderSkipsDegeneratePolylines(t *testing.T) {
	lines := []skeltrace.Polyline{
		{{X: 1, Y: 1}},
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
	}
	out := Render(lines, 2, 2, Style{})

	if strings.Count(out, "<path") != 1 {
		t.Errorf("expected exactly one path, got %q", out)
	}
}

func TestRenderCapAndJoin(t *testing.T) {
	lines := []skeltrace.Polyline{{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	style := Style{
		StrokeWidth: 2,
		HasCap:      true,
		Cap:         graphics.LineCapRound,
		HasJoin:     true,
		Join:        graphics.LineJoinBevel,
	}
	out := Render(lines, 4, 4, style)

	if !strings.Contains(out, `stroke-width="2"`) {
		t.Errorf("stroke width override not applied: %q", out)
	}
	if !strings.Contains(out, `stroke-linecap="round"`) {
		t.Errorf("cap not applied: %q", out)
	}
	if !strings.Contains(out, `stroke-linejoin="bevel"`) {
		t.Errorf("join not applied: %q", out)
	}
}
