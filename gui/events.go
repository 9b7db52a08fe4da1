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

import "fmt"

// Event is an input event for an immediate-mode GUI. Only the types in this
// package implement the Event interface.
type Event interface {
	fmt.Stringer
	event()
}

// EventPointerMoved is sent when the pointer moves. Pos is the new position.
type EventPointerMoved struct {
	Pos Pos2
}

// EventPointerButton is sent when a pointer button is pressed or released.
// Pos is the position of the pointer at the time of the event.
type EventPointerButton struct {
	Pos       Pos2
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

// EventKey is sent when a key is pressed or released.
type EventKey struct {
	Key       Key
	Pressed   bool
	Modifiers Modifiers
}

// EventText is text input. This may be more than one character.
type EventText struct {
	Text string

	// the text was read from the clipboard when the V key was pressed. the
	// event comes immediately before the key event for V
	Clipboard bool
}

// EventScroll is a scroll request. Delta is measured in points.
type EventScroll struct {
	Delta Vec2
}

// EventZoom is a zoom request. A Factor greater than one means zoom in.
type EventZoom struct {
	Factor float32
}

// EventCopy is a request to copy the current selection to the clipboard.
type EventCopy struct{}

// EventCut is a request to cut the current selection to the clipboard.
type EventCut struct{}

func (_ EventPointerMoved) event()  {}
func (_ EventPointerButton) event() {}
func (_ EventKey) event()           {}
func (_ EventText) event()          {}
func (_ EventScroll) event()        {}
func (_ EventZoom) event()          {}
func (_ EventCopy) event()          {}
func (_ EventCut) event()           {}

func (ev EventPointerMoved) String() string {
	return fmt.Sprintf("pointer moved %s", ev.Pos)
}

func (ev EventPointerButton) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s button pressed %s (%s)", ev.Button, ev.Pos, ev.Modifiers)
	}
	return fmt.Sprintf("%s button released %s (%s)", ev.Button, ev.Pos, ev.Modifiers)
}

func (ev EventKey) String() string {
	if ev.Pressed {
		return fmt.Sprintf("key %s pressed (%s)", ev.Key, ev.Modifiers)
	}
	return fmt.Sprintf("key %s released (%s)", ev.Key, ev.Modifiers)
}

func (ev EventText) String() string {
	if ev.Clipboard {
		return fmt.Sprintf("clipboard text %q", ev.Text)
	}
	return fmt.Sprintf("text %q", ev.Text)
}

func (ev EventScroll) String() string {
	return fmt.Sprintf("scroll %s", ev.Delta)
}

func (ev EventZoom) String() string {
	return fmt.Sprintf("zoom x%.4f", ev.Factor)
}

func (_ EventCopy) String() string {
	return "copy"
}

func (_ EventCut) String() string {
	return "cut"
}
