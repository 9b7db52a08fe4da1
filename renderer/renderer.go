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

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/logger"
)

// Renderer paints clipped primitives to the current GL framebuffer.
type Renderer struct {
	shader *guiShader

	vboHandle      uint32
	elementsHandle uint32

	fontTexture uint32
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer() (*Renderer, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	rnd := &Renderer{}

	rnd.shader, err = newGUIShader()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	gl.GenBuffers(1, &rnd.vboHandle)
	gl.GenBuffers(1, &rnd.elementsHandle)

	logger.Logf(logger.Allow, "renderer", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "renderer", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "renderer", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return rnd, nil
}

// Destroy releases all GL resources used by the renderer.
func (rnd *Renderer) Destroy() {
	if rnd.vboHandle != 0 {
		gl.DeleteBuffers(1, &rnd.vboHandle)
		rnd.vboHandle = 0
	}
	if rnd.elementsHandle != 0 {
		gl.DeleteBuffers(1, &rnd.elementsHandle)
		rnd.elementsHandle = 0
	}
	if rnd.fontTexture != 0 {
		gl.DeleteTextures(1, &rnd.fontTexture)
		rnd.fontTexture = 0
	}
	if rnd.shader != nil {
		rnd.shader.destroy()
	}
}

// SetFontTexture uploads the font atlas. The pixels are a single alpha value
// per pixel. Returns the ID that primitives should use to refer to the
// texture.
func (rnd *Renderer) SetFontTexture(width int, height int, pixels []byte) (gui.TextureID, error) {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return 0, fmt.Errorf("renderer: font texture is size %dx%d but has %d pixels", width, height, len(pixels))
	}

	if rnd.fontTexture == 0 {
		gl.GenTextures(1, &rnd.fontTexture)
	}

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	defer gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))

	gl.BindTexture(gl.TEXTURE_2D, rnd.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	return gui.TextureID(rnd.fontTexture), nil
}

// Clear the framebuffer with the colour.
func (rnd *Renderer) Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Render the primitives. The window size is the size of the GUI coordinate
// space and the framebuffer size is the size in pixels. The two differ on high
// DPI displays.
func (rnd *Renderer) Render(prims []gui.ClippedPrimitive, window gui.Vec2, framebuffer gui.Vec2) {
	// nothing to do when minimised
	if framebuffer.X <= 0 || framebuffer.Y <= 0 || window.X <= 0 || window.Y <= 0 {
		return
	}

	st := saveState()
	defer st.restore()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Viewport(0, 0, int32(framebuffer.X), int32(framebuffer.Y))

	proj := projection(window.X, window.Y)
	scale := gui.Vec2{X: framebuffer.X / window.X, Y: framebuffer.Y / window.Y}

	// the VAO is recreated every frame so that the renderer does not need to
	// know which GL context it is using
	var vaoHandle uint32
	gl.GenVertexArrays(1, &vaoHandle)
	gl.BindVertexArray(vaoHandle)
	defer gl.DeleteVertexArrays(1, &vaoHandle)

	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vboHandle)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rnd.elementsHandle)

	for _, p := range prims {
		x, y, w, h := scissor(p.ClipRect, scale, framebuffer.X, framebuffer.Y)
		if w == 0 || h == 0 {
			continue
		}
		if len(p.Mesh.Vertices) == 0 || len(p.Mesh.Indices) == 0 {
			continue
		}

		gl.BufferData(gl.ARRAY_BUFFER, len(p.Mesh.Vertices)*int(vertexSize), gl.Ptr(p.Mesh.Vertices), gl.STREAM_DRAW)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(p.Mesh.Indices)*4, gl.Ptr(p.Mesh.Indices), gl.STREAM_DRAW)

		texture := uint32(p.Mesh.Texture)
		if texture == 0 {
			texture = rnd.fontTexture
		}
		rnd.shader.use(proj, texture)

		gl.Scissor(x, y, w, h)
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(p.Mesh.Indices)), gl.UNSIGNED_INT, 0)
	}
}
