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

import "github.com/jetsetilly/imsdl/gui"

// orthographic projection of the GUI coordinate space, with the origin at
// the top-left, onto GL clip space.
func projection(width float32, height float32) [4][4]float32 {
	return [4][4]float32{
		{2.0 / width, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -height, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}
}

// scissor converts a clipping rectangle in GUI coordinates to a GL scissor
// box in framebuffer pixels. GL scissor boxes have their origin at the
// bottom-left of the framebuffer.
//
// The returned size is zero if the clipping rectangle lies entirely outside
// of the framebuffer.
func scissor(clip gui.Rect, scale gui.Vec2, fbw float32, fbh float32) (x, y, w, h int32) {
	fb := gui.Rect{Max: gui.Pos2{X: fbw, Y: fbh}}
	r := gui.Rect{
		Min: gui.Pos2{X: clip.Min.X * scale.X, Y: clip.Min.Y * scale.Y},
		Max: gui.Pos2{X: clip.Max.X * scale.X, Y: clip.Max.Y * scale.Y},
	}.Intersect(fb)

	if !r.IsPositive() {
		return 0, 0, 0, 0
	}

	return int32(r.Min.X), int32(fbh - r.Max.Y), int32(r.Width()), int32(r.Height())
}
