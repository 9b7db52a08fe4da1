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

// clipboard implements the imgui.Clipboard interface. imgui never sees the
// platform clipboard. text pasted by the platform arrives as a text event and
// is held until imgui asks for it. text copied by imgui is held until the end
// of the frame.
type clipboard struct {
	paste  string
	copied string
}

// Text implements the imgui.Clipboard interface.
func (cb *clipboard) Text() (string, error) {
	return cb.paste, nil
}

// SetText implements the imgui.Clipboard interface.
func (cb *clipboard) SetText(text string) {
	cb.copied = text
}

// endFrame returns the copied text and resets the clipboard for the next frame.
func (cb *clipboard) endFrame() string {
	s := cb.copied
	cb.copied = ""
	cb.paste = ""
	return s
}
