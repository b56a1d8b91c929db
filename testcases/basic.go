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

package testcases

// basicCases covers the handful of named scenarios a skeleton tracer is
// expected to handle without crashing or losing connectivity: nothing at
// all, a single isolated foreground pixel, a straight stroke, a
// four-way junction, and a diagonal line that never touches a
// 4-connected neighbor.
var basicCases = []TestCase{
	{
		Name: "empty",
		Rows: []string{
			"0000000000",
			"0000000000",
			"0000000000",
			"0000000000",
			"0000000000",
			"0000000000",
			"0000000000",
			"0000000000",
			"0000000000",
			"0000000000",
		},
	},
	{
		Name: "single-pixel",
		Rows: []string{
			"000",
			"010",
			"000",
		},
	},
	{
		Name: "horizontal-stroke",
		Rows: []string{
			"000000000",
			"111111111",
			"000000000",
		},
	},
	{
		Name: "plus-sign",
		Rows: []string{
			"000010000",
			"000010000",
			"000010000",
			"000010000",
			"111111111",
			"000010000",
			"000010000",
			"000010000",
			"000010000",
		},
	},
	{
		Name: "diagonal",
		Rows: []string{
			"100000000",
			"010000000",
			"001000000",
			"000100000",
			"000010000",
			"000001000",
			"000000100",
			"000000010",
			"000000001",
		},
	},
}
