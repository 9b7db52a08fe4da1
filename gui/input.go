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

// RawInput is the input for a single GUI frame.
type RawInput struct {
	// the area of the screen available to the GUI. nil if the screen has not
	// changed since the previous frame
	ScreenRect *Rect

	// time in seconds since an arbitrary epoch. nil if the time is not known
	Time *float64

	// state of the modifier keys at the end of the frame
	Modifiers Modifiers

	// events in the order they were received
	Events []Event
}

// Push an event onto the end of the event list.
func (in *RawInput) Push(ev Event) {
	in.Events = append(in.Events, ev)
}

// SetScreenRect stores a copy of the rectangle as the screen area.
func (in *RawInput) SetScreenRect(r Rect) {
	in.ScreenRect = &r
}

// SetTime stores the time in seconds.
func (in *RawInput) SetTime(seconds float64) {
	in.Time = &seconds
}

// Take returns the current input and leaves an empty RawInput in its place.
// Ownership of the event list passes to the caller.
func (in *RawInput) Take() RawInput {
	t := *in
	*in = RawInput{}
	return t
}
