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

package gui

// TextureID identifies a texture known to the renderer.
type TextureID uintptr

// Color32 is an RGBA colour packed into 32 bits with the red component in the
// least significant byte.
type Color32 uint32

// NewColor32 creates a Color32 from the individual components.
func NewColor32(r, g, b, a uint8) Color32 {
	return Color32(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// RGBA returns the individual components of the colour.
func (c Color32) RGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Vertex is a single point in a mesh. The memory layout of the type is
// suitable for sending directly to the GPU: two float32 for position, two
// float32 for texture coordinates and four bytes of colour.
type Vertex struct {
	Pos   Pos2
	UV    Pos2
	Color Color32
}

// DrawCommand is a run of indices in a DrawList that share a clipping
// rectangle and a texture.
type DrawCommand struct {
	ClipRect     Rect
	Texture      TextureID
	IndexOffset  int
	ElementCount int
}

// DrawList is a list of triangles as produced by the GUI. Indices refer to
// entries in Vertices and Commands divide the indices into runs.
type DrawList struct {
	Vertices []Vertex
	Indices  []uint32
	Commands []DrawCommand
}

// Mesh is a self-contained list of triangles using a single texture.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
}

// ClippedPrimitive is a mesh that should be painted with a scissor rectangle.
type ClippedPrimitive struct {
	ClipRect Rect
	Mesh     Mesh
}
