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

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/imsdl/gui"
)

// imgui-go does not name the not-allowed cursor.
const mouseCursorNotAllowed imgui.MouseCursorID = 8

// cursorIcon converts an imgui mouse cursor to the equivalent gui.CursorIcon.
func cursorIcon(c imgui.MouseCursorID) gui.CursorIcon {
	switch c {
	case imgui.MouseCursorNone:
		return gui.CursorNone
	case imgui.MouseCursorArrow:
		return gui.CursorDefault
	case imgui.MouseCursorTextInput:
		return gui.CursorText
	case imgui.MouseCursorResizeAll:
		return gui.CursorMove
	case imgui.MouseCursorResizeNS:
		return gui.CursorResizeVertical
	case imgui.MouseCursorResizeEW:
		return gui.CursorResizeHorizontal
	case imgui.MouseCursorResizeNESW:
		return gui.CursorResizeNeSw
	case imgui.MouseCursorResizeNWSE:
		return gui.CursorResizeNwSe
	case imgui.MouseCursorHand:
		return gui.CursorPointingHand
	case mouseCursorNotAllowed:
		return gui.CursorNotAllowed
	}
	return gui.CursorDefault
}
