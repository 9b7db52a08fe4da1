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

// Context is implemented by an immediate-mode GUI. BeginFrame() and EndFrame()
// are always called in pairs and the host issues draw calls to the GUI
// library in between the two.
type Context interface {
	// BeginFrame starts a new frame with the input collected since the
	// previous frame. Ownership of the input passes to the Context.
	BeginFrame(input RawInput)

	// EndFrame closes the current frame and returns what the GUI produced.
	EndFrame() FullOutput

	// WantsPointerInput returns true if the GUI is interested in pointer input.
	// For example, when the pointer is over a GUI window.
	WantsPointerInput() bool

	// WantsKeyboardInput returns true if the GUI is interested in keyboard
	// input. For example, when a text field has focus.
	WantsKeyboardInput() bool
}
