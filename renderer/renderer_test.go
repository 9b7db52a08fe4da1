// This file is part of imsdl.
//
// imsdl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// imsdl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with imsdl.  If not, see <https://www.gnu.org/licenses/>.

package renderer

import (
	"testing"

	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/test"
)

func TestProjection(t *testing.T) {
	proj := projection(640, 360)

	// transform the corners of the GUI space
	apply := func(x, y float32) (float32, float32) {
		cx := proj[0][0]*x + proj[1][0]*y + proj[3][0]
		cy := proj[0][1]*x + proj[1][1]*y + proj[3][1]
		return cx, cy
	}

	x, y := apply(0, 0)
	test.ExpectEquality(t, x, -1.0)
	test.ExpectEquality(t, y, 1.0)

	x, y = apply(640, 360)
	test.ExpectApproximate(t, x, 1.0, 0.0001)
	test.ExpectApproximate(t, y, -1.0, 0.0001)
}

func TestScissor(t *testing.T) {
	clip := gui.Rect{Min: gui.Pos2{X: 10, Y: 20}, Max: gui.Pos2{X: 110, Y: 70}}

	x, y, w, h := scissor(clip, gui.Vec2{X: 1, Y: 1}, 640, 360)
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 290)
	test.ExpectEquality(t, w, 100)
	test.ExpectEquality(t, h, 50)

	// high DPI framebuffer
	x, y, w, h = scissor(clip, gui.Vec2{X: 2, Y: 2}, 1280, 720)
	test.ExpectEquality(t, x, 20)
	test.ExpectEquality(t, y, 580)
	test.ExpectEquality(t, w, 200)
	test.ExpectEquality(t, h, 100)

	// partially outside of the framebuffer
	clip = gui.Rect{Min: gui.Pos2{X: 600, Y: -10}, Max: gui.Pos2{X: 700, Y: 10}}
	x, y, w, h = scissor(clip, gui.Vec2{X: 1, Y: 1}, 640, 360)
	test.ExpectEquality(t, x, 600)
	test.ExpectEquality(t, y, 350)
	test.ExpectEquality(t, w, 40)
	test.ExpectEquality(t, h, 10)

	// entirely outside
	clip = gui.Rect{Min: gui.Pos2{X: 700, Y: 0}, Max: gui.Pos2{X: 800, Y: 10}}
	_, _, w, h = scissor(clip, gui.Vec2{X: 1, Y: 1}, 640, 360)
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, h, 0)
}

func TestVertexLayout(t *testing.T) {
	test.ExpectEquality(t, vertexSize, 20)
	test.ExpectEquality(t, vertexOffsetPos, 0)
	test.ExpectEquality(t, vertexOffsetUV, 8)
	test.ExpectEquality(t, vertexOffsetCol, 16)
}
