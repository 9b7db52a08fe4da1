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
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/renderer/shaders"
)

// guiShader is the shader program used to paint GUI meshes.
type guiShader struct {
	handle uint32

	// uniforms
	projMtx int32
	texture int32

	// vertex attributes
	position int32
	uv       int32
	color    int32
}

func newGUIShader() (*guiShader, error) {
	sh := &guiShader{}
	err := sh.compile(string(shaders.GUIVertexShader), string(shaders.GUIFragmentShader))
	if err != nil {
		return nil, err
	}
	return sh, nil
}

func (sh *guiShader) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

// compile and link the shader program.
func (sh *guiShader) compile(vert string, frag string) error {
	sh.destroy()

	vertHandle, err := compileShader(gl.VERTEX_SHADER, vert)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, frag)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragHandle)

	sh.handle = gl.CreateProgram()
	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)

	var linked int32
	gl.GetProgramiv(sh.handle, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		var length int32
		gl.GetProgramiv(sh.handle, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(sh.handle, length, nil, gl.Str(log))
		sh.destroy()
		return fmt.Errorf("link: %s", strings.TrimRight(log, "\x00"))
	}

	sh.projMtx = gl.GetUniformLocation(sh.handle, gl.Str("ProjMtx\x00"))
	sh.texture = gl.GetUniformLocation(sh.handle, gl.Str("Texture\x00"))
	sh.position = gl.GetAttribLocation(sh.handle, gl.Str("Position\x00"))
	sh.uv = gl.GetAttribLocation(sh.handle, gl.Str("UV\x00"))
	sh.color = gl.GetAttribLocation(sh.handle, gl.Str("Color\x00"))

	return nil
}

func compileShader(typ uint32, source string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var compiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &compiled)
	if compiled == gl.FALSE {
		var length int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(handle, length, nil, gl.Str(log))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}

	return handle, nil
}

// the layout of gui.Vertex in memory.
var (
	vertexSize      = int32(unsafe.Sizeof(gui.Vertex{}))
	vertexOffsetPos = unsafe.Offsetof(gui.Vertex{}.Pos)
	vertexOffsetUV  = unsafe.Offsetof(gui.Vertex{}.UV)
	vertexOffsetCol = unsafe.Offsetof(gui.Vertex{}.Color)
)

// use the shader program with the projection and texture. the vertex array
// must already be bound.
func (sh *guiShader) use(proj [4][4]float32, texture uint32) {
	gl.UseProgram(sh.handle)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.Uniform1i(sh.texture, 0)
	gl.UniformMatrix4fv(sh.projMtx, 1, false, &proj[0][0])

	// rely on the combined texture/sampler state
	gl.BindSampler(0, 0)

	gl.EnableVertexAttribArray(uint32(sh.position))
	gl.EnableVertexAttribArray(uint32(sh.uv))
	gl.EnableVertexAttribArray(uint32(sh.color))
	gl.VertexAttribPointerWithOffset(uint32(sh.position), 2, gl.FLOAT, false, vertexSize, vertexOffsetPos)
	gl.VertexAttribPointerWithOffset(uint32(sh.uv), 2, gl.FLOAT, false, vertexSize, vertexOffsetUV)
	gl.VertexAttribPointerWithOffset(uint32(sh.color), 4, gl.UNSIGNED_BYTE, true, vertexSize, vertexOffsetCol)
}
