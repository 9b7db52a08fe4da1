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

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLKeyboard implements the KeyboardState interface with SDL.
type SDLKeyboard struct{}

// ModState implements the KeyboardState interface.
func (SDLKeyboard) ModState() sdl.Keymod {
	return sdl.GetModState()
}

// SDLClipboard implements the Clipboard interface with SDL. The SDL video
// subsystem must be initialised.
type SDLClipboard struct{}

// HasText implements the Clipboard interface.
func (SDLClipboard) HasText() bool {
	return sdl.HasClipboardText()
}

// Text implements the Clipboard interface.
func (SDLClipboard) Text() (string, error) {
	return sdl.GetClipboardText()
}

// SetText implements the Clipboard interface.
func (SDLClipboard) SetText(text string) error {
	return sdl.SetClipboardText(text)
}

// SDLCursors implements the Cursors interface with SDL.
type SDLCursors struct{}

// Create implements the Cursors interface.
func (SDLCursors) Create(id sdl.SystemCursor) (Cursor, error) {
	c := sdl.CreateSystemCursor(id)
	if c == nil {
		if err := sdl.GetError(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("sdl: cannot create system cursor %d", id)
	}
	return sdlCursor{c: c}, nil
}

type sdlCursor struct {
	c *sdl.Cursor
}

func (cur sdlCursor) Set() {
	sdl.SetCursor(cur.c)
}

func (cur sdlCursor) Free() {
	sdl.FreeCursor(cur.c)
}
