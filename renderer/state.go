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

import "github.com/go-gl/gl/v3.2-core/gl"

// glState is the GL state altered by the renderer. The state is saved before
// painting and restored afterwards so that the renderer can share the GL
// context with other code.
type glState struct {
	activeTexture      int32
	program            int32
	texture            int32
	sampler            int32
	arrayBuffer        int32
	elementArrayBuffer int32
	vertexArray        int32
	polygonMode        [2]int32
	viewport           [4]int32
	scissorBox         [4]int32
	blendSrcRGB        int32
	blendDstRGB        int32
	blendSrcAlpha      int32
	blendDstAlpha      int32
	blendEquationRGB   int32
	blendEquationAlpha int32

	enabled map[uint32]bool
}

// the capabilities that are changed by the renderer.
var capabilities = []uint32{gl.BLEND, gl.CULL_FACE, gl.DEPTH_TEST, gl.SCISSOR_TEST}

func saveState() *glState {
	st := &glState{
		enabled: make(map[uint32]bool, len(capabilities)),
	}
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &st.activeTexture)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &st.program)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &st.texture)
	gl.GetIntegerv(gl.SAMPLER_BINDING, &st.sampler)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &st.arrayBuffer)
	gl.GetIntegerv(gl.ELEMENT_ARRAY_BUFFER_BINDING, &st.elementArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &st.vertexArray)
	gl.GetIntegerv(gl.POLYGON_MODE, &st.polygonMode[0])
	gl.GetIntegerv(gl.VIEWPORT, &st.viewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &st.scissorBox[0])
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &st.blendSrcRGB)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &st.blendDstRGB)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &st.blendSrcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &st.blendDstAlpha)
	gl.GetIntegerv(gl.BLEND_EQUATION_RGB, &st.blendEquationRGB)
	gl.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &st.blendEquationAlpha)
	for _, c := range capabilities {
		st.enabled[c] = gl.IsEnabled(c)
	}
	return st
}

func (st *glState) restore() {
	gl.UseProgram(uint32(st.program))
	gl.BindTexture(gl.TEXTURE_2D, uint32(st.texture))
	gl.BindSampler(0, uint32(st.sampler))
	gl.ActiveTexture(uint32(st.activeTexture))
	gl.BindVertexArray(uint32(st.vertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(st.arrayBuffer))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(st.elementArrayBuffer))
	gl.BlendEquationSeparate(uint32(st.blendEquationRGB), uint32(st.blendEquationAlpha))
	gl.BlendFuncSeparate(uint32(st.blendSrcRGB), uint32(st.blendDstRGB), uint32(st.blendSrcAlpha), uint32(st.blendDstAlpha))
	for c, on := range st.enabled {
		if on {
			gl.Enable(c)
		} else {
			gl.Disable(c)
		}
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(st.polygonMode[0]))
	gl.Viewport(st.viewport[0], st.viewport[1], st.viewport[2], st.viewport[3])
	gl.Scissor(st.scissorBox[0], st.scissorBox[1], st.scissorBox[2], st.scissorBox[3])
}
