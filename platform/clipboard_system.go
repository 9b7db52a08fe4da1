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
	"github.com/atotto/clipboard"
)

// SystemClipboard implements the Clipboard interface by talking to the
// operating system clipboard directly, rather than through SDL. On Linux this
// requires one of the xclip, xsel or wl-clipboard tools to be installed.
type SystemClipboard struct{}

// Available returns false if the system clipboard cannot be used.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// HasText implements the Clipboard interface.
func (SystemClipboard) HasText() bool {
	if clipboard.Unsupported {
		return false
	}
	s, err := clipboard.ReadAll()
	return err == nil && s != ""
}

// Text implements the Clipboard interface.
func (SystemClipboard) Text() (string, error) {
	return clipboard.ReadAll()
}

// SetText implements the Clipboard interface.
func (SystemClipboard) SetText(text string) error {
	return clipboard.WriteAll(text)
}
