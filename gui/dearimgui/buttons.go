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

import "github.com/jetsetilly/imsdl/gui"

// the number of mouse buttons forwarded to imgui.
const numButtons = 3

// imgui mouse button indexes for each pointer button.
func buttonIndex(b gui.PointerButton) (int, bool) {
	switch b {
	case gui.PointerPrimary:
		return 0, true
	case gui.PointerSecondary:
		return 1, true
	case gui.PointerMiddle:
		return 2, true
	}
	return 0, false
}

// trickleButton is a mechanism that allows a mouse button down/up event that
// occurs in the same frame to be seen by the dear imgui io system.
//
// as of dear imgui version 1.87 this has been solved with the
// AddMouseButtonEvent() function. we're not currently using that version of
// dear imgui but we should consider replacing this type if we ever do.
type trickleButton int

// list of valid trickleButton values.
const (
	trickleNone trickleButton = iota
	trickleDown
	trickleUp
)

// mouseButtons is the button state forwarded to imgui at the start of each
// frame.
type mouseButtons struct {
	down    [numButtons]bool
	trickle [numButtons]trickleButton
}

// startFrame is called before any button events for the frame are applied.
// releases deferred from the previous frame take effect now.
func (mb *mouseButtons) startFrame() {
	for i := range mb.trickle {
		if mb.trickle[i] == trickleUp {
			mb.down[i] = false
		}
		mb.trickle[i] = trickleNone
	}
}

func (mb *mouseButtons) press(i int) {
	mb.down[i] = true
	mb.trickle[i] = trickleDown
}

// release the button. if trickle is true and the button was pressed in the
// same frame then the release is deferred until the next frame.
func (mb *mouseButtons) release(i int, trickle bool) {
	if trickle && mb.trickle[i] == trickleDown {
		mb.trickle[i] = trickleUp
		return
	}
	mb.down[i] = false
	mb.trickle[i] = trickleNone
}
