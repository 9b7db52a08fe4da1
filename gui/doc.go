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

// Package gui is the neutral representation of input to and output from an
// immediate-mode GUI. Nothing in the package refers to a windowing system or
// to a particular GUI library.
//
// Input for a single frame is collected in a RawInput. The RawInput contains
// an ordered list of Event values, a type switch being the intended way of
// handling them:
//
//	for _, ev := range input.Events {
//		switch ev := ev.(type) {
//		case gui.EventPointerMoved:
//			...
//		case gui.EventKey:
//			...
//		}
//	}
//
// A Context implementation consumes the RawInput at the start of the frame and
// produces a FullOutput at the end of the frame. The FullOutput contains the
// draw lists for the frame and a PlatformOutput: the cursor icon the GUI would
// like to see, any text copied to the clipboard and whether the GUI wants
// pointer or keyboard input.
//
// The Tessellate() function converts draw lists into a list of
// ClippedPrimitive, each primitive being a self-contained mesh with a
// clipping rectangle, ready for a renderer.
package gui
