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

// Package platform connects SDL to an immediate-mode GUI.
//
// The Platform type collects SDL events, translated into the neutral events of
// the gui package, and gives them to a gui.Context once per frame. The output
// of the frame is reflected back onto SDL: the mouse cursor is changed to the
// shape requested by the GUI and any text copied by the GUI is written to the
// clipboard.
//
// A typical host loop looks like this:
//
//	plt, err := platform.NewPlatform(w, h, ctx, platform.SDLCursors{})
//
//	for running {
//		plt.UpdateTime(seconds)
//		plt.BeginFrame()
//		// imgui widget calls
//		out, err := plt.EndFrame(platform.SDLClipboard{})
//		render(plt.Tessellate(out))
//
//		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
//			plt.HandleEvent(ev, platform.SDLKeyboard{}, platform.SDLClipboard{})
//		}
//	}
//
// The Platform does not initialise SDL, create windows or render anything. It
// must be used from the thread that SDL was initialised on.
//
// Access to the keyboard state, the clipboard and the system cursors is by way
// of the KeyboardState, Clipboard and Cursors interfaces. The SDL
// implementations of these are SDLKeyboard, SDLClipboard and SDLCursors.
// SystemClipboard is an alternative Clipboard that talks to the operating
// system directly.
package platform
