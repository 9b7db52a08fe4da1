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

import "strings"

// Key is a keyboard key, independent of the keyboard layout or the windowing
// system. The zero value is not a valid key.
type Key int

// List of valid Key values.
const (
	KeyArrowDown Key = iota + 1
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp

	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// KeyCount is one more than the largest Key value. Useful for sizing
	// tables indexed by Key.
	KeyCount
)

var keyNames = [...]string{
	"ArrowDown", "ArrowLeft", "ArrowRight", "ArrowUp",
	"Escape", "Tab", "Backspace", "Enter", "Space",
	"Insert", "Delete", "Home", "End", "PageUp", "PageDown",
	"Num0", "Num1", "Num2", "Num3", "Num4", "Num5", "Num6", "Num7", "Num8", "Num9",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// IsValid returns true if the key is one of the listed Key values.
func (k Key) IsValid() bool {
	return k > 0 && k < KeyCount
}

func (k Key) String() string {
	if !k.IsValid() {
		return "unknown key"
	}
	return keyNames[k-1]
}

// PointerButton identifies a mouse button, or the equivalent on a pointing
// device that isn't a mouse.
type PointerButton int

// List of valid PointerButton values. The values match the button indexes used
// by most immediate-mode GUI libraries.
const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
)

func (b PointerButton) String() string {
	switch b {
	case PointerPrimary:
		return "primary"
	case PointerSecondary:
		return "secondary"
	case PointerMiddle:
		return "middle"
	}
	return "unknown button"
}

// Modifiers is the state of the keyboard modifier keys.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool

	// the Command key on Apple keyboards
	MacCmd bool

	// Command is the modifier used for shortcuts such as copy and paste. It is
	// derived from the other modifiers according to the conventions of the host
	// operating system.
	Command bool
}

// IsNone returns true if no modifier is active.
func (m Modifiers) IsNone() bool {
	return m == Modifiers{}
}

func (m Modifiers) String() string {
	if m.IsNone() {
		return "none"
	}

	s := make([]string, 0, 5)
	if m.Alt {
		s = append(s, "alt")
	}
	if m.Ctrl {
		s = append(s, "ctrl")
	}
	if m.Shift {
		s = append(s, "shift")
	}
	if m.MacCmd {
		s = append(s, "maccmd")
	}
	if m.Command {
		s = append(s, "command")
	}
	return strings.Join(s, "+")
}
