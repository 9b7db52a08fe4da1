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

// CursorIcon is the shape of the mouse cursor requested by the GUI. The zero
// value is CursorDefault.
type CursorIcon int

// List of valid CursorIcon values.
const (
	CursorDefault CursorIcon = iota
	CursorNone
	CursorContextMenu
	CursorHelp
	CursorPointingHand
	CursorProgress
	CursorWait
	CursorCell
	CursorCrosshair
	CursorText
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorMove
	CursorNoDrop
	CursorNotAllowed
	CursorGrab
	CursorGrabbing
	CursorAllScroll
	CursorResizeHorizontal
	CursorResizeNeSw
	CursorResizeNwSe
	CursorResizeVertical
	CursorZoomIn
	CursorZoomOut
)

var cursorNames = [...]string{
	"Default", "None", "ContextMenu", "Help", "PointingHand", "Progress",
	"Wait", "Cell", "Crosshair", "Text", "VerticalText", "Alias", "Copy",
	"Move", "NoDrop", "NotAllowed", "Grab", "Grabbing", "AllScroll",
	"ResizeHorizontal", "ResizeNeSw", "ResizeNwSe", "ResizeVertical",
	"ZoomIn", "ZoomOut",
}

func (c CursorIcon) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return "unknown cursor"
	}
	return cursorNames[c]
}

// PlatformOutput is the part of the frame output that is of interest to the
// windowing system rather than the renderer.
type PlatformOutput struct {
	// the cursor the GUI would like to see for the next frame
	CursorIcon CursorIcon

	// text copied or cut by the GUI during the frame. empty if nothing was copied
	CopiedText string

	// the GUI is interested in pointer or keyboard input. the host can use
	// these to decide whether input should also be used elsewhere
	WantsPointerInput  bool
	WantsKeyboardInput bool
}

// FullOutput is everything produced by the GUI for a single frame.
type FullOutput struct {
	PlatformOutput PlatformOutput

	// draw lists in the order they should be painted
	Shapes []DrawList
}
