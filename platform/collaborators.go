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

package platform

import "github.com/veandco/go-sdl2/sdl"

// KeyboardState gives access to the current state of the modifier keys.
type KeyboardState interface {
	ModState() sdl.Keymod
}

// Clipboard is the platform clipboard.
type Clipboard interface {
	HasText() bool
	Text() (string, error)
	SetText(text string) error
}

// Cursors creates system cursors.
type Cursors interface {
	Create(id sdl.SystemCursor) (Cursor, error)
}

// Cursor is a cursor created by the Cursors interface.
type Cursor interface {
	// Set makes the cursor the active cursor
	Set()

	// Free releases the resources used by the cursor. The platform frees the
	// previous cursor once its replacement has been set
	Free()
}
