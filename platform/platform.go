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
	"github.com/jetsetilly/imsdl/curated"
	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform collects SDL events for a gui.Context and reflects the output of
// the gui.Context back onto SDL.
type Platform struct {
	ctx     gui.Context
	cursors Cursors

	// input accumulated since the start of the previous frame
	input gui.RawInput

	// modifier state and pointer position persist from frame to frame
	modifiers gui.Modifiers
	pointer   gui.Pos2

	// the cursor currently installed
	cursor Cursor

	// BeginFrame() has been called without a matching EndFrame()
	frameOpen bool
}

// NewPlatform is the preferred method of initialisation for the Platform type.
// The width and height arguments are the initial size of the screen available
// to the GUI.
func NewPlatform(width int32, height int32, ctx gui.Context, cursors Cursors) (*Platform, error) {
	if ctx == nil {
		return nil, curated.Errorf(NoContext)
	}

	cur, err := cursors.Create(sdl.SYSTEM_CURSOR_ARROW)
	if err != nil {
		return nil, curated.Errorf(CursorUnavailable, err)
	}
	cur.Set()

	plt := &Platform{
		ctx:     ctx,
		cursors: cursors,
		cursor:  cur,
	}
	plt.input.SetScreenRect(screenRect(width, height))

	logger.Logf(logger.Allow, "platform", "screen size %dx%d", width, height)

	return plt, nil
}

func screenRect(width int32, height int32) gui.Rect {
	return gui.Rect{
		Max: gui.Pos2{X: float32(width), Y: float32(height)},
	}
}

// Destroy frees the resources used by the platform. The Platform should not be
// used after this call.
func (plt *Platform) Destroy() {
	if plt.cursor != nil {
		plt.cursor.Free()
		plt.cursor = nil
	}
}

// Context returns the GUI context that was given to NewPlatform().
func (plt *Platform) Context() gui.Context {
	return plt.ctx
}

// UpdateTime sets the time of the next frame. The value is in seconds since
// an arbitrary epoch that must not change.
func (plt *Platform) UpdateTime(seconds float64) {
	plt.input.SetTime(seconds)
}

// BeginFrame gives the input accumulated since the previous frame to the GUI
// context and starts a new frame. The GUI context is returned for
// convenience.
//
// The previous frame is ended if EndFrame() has not been called. Any output
// from that frame is lost.
func (plt *Platform) BeginFrame() gui.Context {
	if plt.frameOpen {
		out := plt.ctx.EndFrame()
		logger.Logf(logger.Allow, "platform", "unended frame discarded (%d draw lists)", len(out.Shapes))
	}

	input := plt.input.Take()
	plt.input.Modifiers = plt.modifiers

	plt.ctx.BeginFrame(input)
	plt.frameOpen = true

	return plt.ctx
}

// EndFrame ends the current frame and returns the output of the GUI context.
// Copied text is written to the clipboard and the cursor is changed to the
// shape requested by the GUI.
//
// Returns an error matching FrameNotOpen if there is no current frame,
// ClipboardWriteFailed if copied text could not be written and
// CursorUnavailable if the cursor could not be created. The frame is ended in
// every case.
func (plt *Platform) EndFrame(clip Clipboard) (gui.FullOutput, error) {
	if !plt.frameOpen {
		return gui.FullOutput{}, curated.Errorf(FrameNotOpen)
	}
	plt.frameOpen = false

	out := plt.ctx.EndFrame()

	if out.PlatformOutput.CopiedText != "" {
		err := clip.SetText(out.PlatformOutput.CopiedText)
		if err != nil {
			return gui.FullOutput{}, curated.Errorf(ClipboardWriteFailed, err)
		}
	}

	cur, err := plt.cursors.Create(TranslateCursor(out.PlatformOutput.CursorIcon))
	if err != nil {
		return gui.FullOutput{}, curated.Errorf(CursorUnavailable, err)
	}
	cur.Set()
	if plt.cursor != nil {
		plt.cursor.Free()
	}
	plt.cursor = cur

	return out, nil
}

// Tessellate converts the shapes of the frame output into clipped primitives
// suitable for rendering.
func (plt *Platform) Tessellate(out gui.FullOutput) []gui.ClippedPrimitive {
	return gui.Tessellate(out.Shapes)
}

// WantsPointerInput returns true if the GUI is interested in pointer input.
func (plt *Platform) WantsPointerInput() bool {
	return plt.ctx.WantsPointerInput()
}

// WantsKeyboardInput returns true if the GUI is interested in keyboard input.
func (plt *Platform) WantsKeyboardInput() bool {
	return plt.ctx.WantsKeyboardInput()
}
