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

package dearimgui

import (
	"unsafe"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/imsdl/gui"
)

// drawLists copies the most recently rendered imgui draw data into Go memory.
// the imgui buffers are only valid until the next call to imgui.NewFrame().
func drawLists(dd imgui.DrawData) []gui.DrawList {
	if !dd.Valid() {
		return nil
	}

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	indexSize := imgui.IndexBufferLayout()

	var lists []gui.DrawList

	for _, cl := range dd.CommandLists() {
		var list gui.DrawList

		vb, vbSize := cl.VertexBuffer()
		if vbSize > 0 {
			raw := unsafe.Slice((*byte)(vb), vbSize)
			list.Vertices = make([]gui.Vertex, vbSize/vertexSize)
			for i := range list.Vertices {
				v := raw[i*vertexSize:]
				list.Vertices[i] = gui.Vertex{
					Pos:   *(*gui.Pos2)(unsafe.Pointer(&v[posOffset])),
					UV:    *(*gui.Pos2)(unsafe.Pointer(&v[uvOffset])),
					Color: *(*gui.Color32)(unsafe.Pointer(&v[colOffset])),
				}
			}
		}

		ib, ibSize := cl.IndexBuffer()
		if ibSize > 0 {
			raw := unsafe.Slice((*byte)(ib), ibSize)
			list.Indices = make([]uint32, ibSize/indexSize)
			for i := range list.Indices {
				switch indexSize {
				case 2:
					list.Indices[i] = uint32(*(*uint16)(unsafe.Pointer(&raw[i*2])))
				case 4:
					list.Indices[i] = *(*uint32)(unsafe.Pointer(&raw[i*4]))
				}
			}
		}

		var offset int
		for _, cmd := range cl.Commands() {
			n := cmd.ElementCount()
			if !cmd.HasUserCallback() {
				clip := cmd.ClipRect()
				list.Commands = append(list.Commands, gui.DrawCommand{
					ClipRect: gui.Rect{
						Min: gui.Pos2{X: clip.X, Y: clip.Y},
						Max: gui.Pos2{X: clip.Z, Y: clip.W},
					},
					Texture:      gui.TextureID(cmd.TextureID()),
					IndexOffset:  offset,
					ElementCount: n,
				})
			}
			offset += n
		}

		lists = append(lists, list)
	}

	return lists
}
