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

package gui_test

import (
	"reflect"
	"testing"

	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/test"
)

func vertex(x, y float32) gui.Vertex {
	return gui.Vertex{
		Pos:   gui.Pos2{X: x, Y: y},
		Color: gui.NewColor32(255, 255, 255, 255),
	}
}

// a single list with two commands. the second command uses the vertices at
// the end of the list only
func twoCommandList() gui.DrawList {
	clip := gui.Rect{Max: gui.Pos2{X: 100, Y: 100}}
	return gui.DrawList{
		Vertices: []gui.Vertex{
			vertex(0, 0), vertex(10, 0), vertex(10, 10),
			vertex(20, 20), vertex(30, 20), vertex(30, 30), vertex(20, 30),
		},
		Indices: []uint32{0, 1, 2, 3, 4, 5, 3, 5, 6},
		Commands: []gui.DrawCommand{
			{ClipRect: clip, Texture: 1, IndexOffset: 0, ElementCount: 3},
			{ClipRect: clip, Texture: 2, IndexOffset: 3, ElementCount: 6},
		},
	}
}

func TestTessellateRebase(t *testing.T) {
	prims := gui.Tessellate([]gui.DrawList{twoCommandList()})
	test.DemandEquality(t, len(prims), 2)

	test.ExpectEquality(t, prims[0].Mesh.Texture, gui.TextureID(1))
	test.ExpectEquality(t, len(prims[0].Mesh.Vertices), 3)
	test.ExpectSuccess(t, reflect.DeepEqual(prims[0].Mesh.Indices, []uint32{0, 1, 2}))

	test.ExpectEquality(t, prims[1].Mesh.Texture, gui.TextureID(2))
	test.ExpectEquality(t, len(prims[1].Mesh.Vertices), 4)
	test.ExpectSuccess(t, reflect.DeepEqual(prims[1].Mesh.Indices, []uint32{0, 1, 2, 0, 2, 3}))
	test.ExpectEquality(t, prims[1].Mesh.Vertices[0], vertex(20, 20))
	test.ExpectEquality(t, prims[1].Mesh.Vertices[3], vertex(20, 30))
}

func TestTessellateIdempotent(t *testing.T) {
	lists := []gui.DrawList{twoCommandList(), twoCommandList()}
	a := gui.Tessellate(lists)
	b := gui.Tessellate(lists)
	test.ExpectEquality(t, len(a), 4)
	test.ExpectSuccess(t, reflect.DeepEqual(a, b))

	// the draw lists must not have been altered
	test.ExpectSuccess(t, reflect.DeepEqual(lists[0], twoCommandList()))

	// altering the output must not alter a later result
	a[0].Mesh.Indices[0] = 99
	c := gui.Tessellate(lists)
	test.ExpectSuccess(t, reflect.DeepEqual(b, c))
}

func TestTessellateSkips(t *testing.T) {
	list := twoCommandList()

	// empty clipping rectangle
	list.Commands[0].ClipRect = gui.Rect{}

	// index range beyond the end of the index buffer
	list.Commands = append(list.Commands, gui.DrawCommand{
		ClipRect:     list.Commands[1].ClipRect,
		IndexOffset:  6,
		ElementCount: 6,
	})

	// no elements
	list.Commands = append(list.Commands, gui.DrawCommand{
		ClipRect: list.Commands[1].ClipRect,
	})

	prims := gui.Tessellate([]gui.DrawList{list})
	test.DemandEquality(t, len(prims), 1)
	test.ExpectEquality(t, prims[0].Mesh.Texture, gui.TextureID(2))

	test.ExpectEquality(t, len(gui.Tessellate(nil)), 0)
}

func TestTessellateBadVertex(t *testing.T) {
	list := twoCommandList()
	list.Indices[4] = 50

	prims := gui.Tessellate([]gui.DrawList{list})
	test.DemandEquality(t, len(prims), 2)

	// the first triangle of the second command is dropped
	test.ExpectSuccess(t, reflect.DeepEqual(prims[1].Mesh.Indices, []uint32{0, 1, 2}))
	test.ExpectEquality(t, prims[1].Mesh.Vertices[0], vertex(20, 20))
	test.ExpectEquality(t, prims[1].Mesh.Vertices[1], vertex(30, 30))
}

func TestColor32(t *testing.T) {
	c := gui.NewColor32(1, 2, 3, 4)
	test.ExpectEquality(t, uint32(c), 0x04030201)
	r, g, b, a := c.RGBA()
	test.ExpectEquality(t, r, 1)
	test.ExpectEquality(t, g, 2)
	test.ExpectEquality(t, b, 3)
	test.ExpectEquality(t, a, 4)
}
