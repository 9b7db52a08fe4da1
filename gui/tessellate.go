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

// Tessellate converts draw lists into clipped primitives ready for a renderer.
// Every draw command with a positive clipping rectangle and at least one
// complete triangle becomes one primitive, in the same order as the commands.
// Each primitive carries only the vertices its own indices refer to.
//
// The draw lists are not altered and nothing is shared between the draw lists
// and the returned primitives. Calling the function again with the same draw
// lists produces an equal result.
func Tessellate(lists []DrawList) []ClippedPrimitive {
	var prims []ClippedPrimitive

	for _, list := range lists {
		// remap is reused for every command in the list. an entry of zero
		// means the vertex has not been seen, otherwise the entry is the new
		// index plus one
		remap := make([]uint32, len(list.Vertices))

		for _, cmd := range list.Commands {
			if !cmd.ClipRect.IsPositive() {
				continue
			}

			indices, ok := commandIndices(list, cmd)
			if !ok {
				continue
			}

			clear(remap)

			mesh := Mesh{
				Texture: cmd.Texture,
				Indices: make([]uint32, 0, len(indices)),
			}

			for t := 0; t+3 <= len(indices); t += 3 {
				tri := indices[t : t+3]

				// triangles that refer to vertices outside of the list are dropped
				if tri[0] >= uint32(len(list.Vertices)) ||
					tri[1] >= uint32(len(list.Vertices)) ||
					tri[2] >= uint32(len(list.Vertices)) {
					continue
				}

				for _, idx := range tri {
					if remap[idx] == 0 {
						mesh.Vertices = append(mesh.Vertices, list.Vertices[idx])
						remap[idx] = uint32(len(mesh.Vertices))
					}
					mesh.Indices = append(mesh.Indices, remap[idx]-1)
				}
			}

			if len(mesh.Indices) == 0 {
				continue
			}

			prims = append(prims, ClippedPrimitive{
				ClipRect: cmd.ClipRect,
				Mesh:     mesh,
			})
		}
	}

	return prims
}

// commandIndices returns the indices for the command. returns false if the
// command does not refer to a valid run of indices.
func commandIndices(list DrawList, cmd DrawCommand) ([]uint32, bool) {
	if cmd.ElementCount < 3 || cmd.IndexOffset < 0 {
		return nil, false
	}
	end := cmd.IndexOffset + cmd.ElementCount
	if end > len(list.Indices) {
		return nil, false
	}
	return list.Indices[cmd.IndexOffset:end], true
}
