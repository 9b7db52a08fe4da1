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
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/prefs"
	"github.com/jetsetilly/imsdl/test"
)

func TestTrickle(t *testing.T) {
	var mb mouseButtons

	// press and release in the same frame. the button is down for the whole of
	// this frame and up for the next
	mb.startFrame()
	mb.press(0)
	mb.release(0, true)
	test.ExpectSuccess(t, mb.down[0])

	mb.startFrame()
	test.ExpectFailure(t, mb.down[0])

	// press in one frame and release in the next takes effect immediately
	mb.startFrame()
	mb.press(1)
	test.ExpectSuccess(t, mb.down[1])
	mb.startFrame()
	test.ExpectSuccess(t, mb.down[1])
	mb.release(1, true)
	test.ExpectFailure(t, mb.down[1])

	// no trickling
	mb.startFrame()
	mb.press(2)
	mb.release(2, false)
	test.ExpectFailure(t, mb.down[2])
}

func TestButtonIndex(t *testing.T) {
	i, ok := buttonIndex(gui.PointerPrimary)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, 0)
	i, ok = buttonIndex(gui.PointerSecondary)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, 1)
	i, ok = buttonIndex(gui.PointerMiddle)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, i, 2)
	_, ok = buttonIndex(gui.PointerButton(10))
	test.ExpectFailure(t, ok)
}

func TestCursorIcon(t *testing.T) {
	test.ExpectEquality(t, cursorIcon(imgui.MouseCursorArrow), gui.CursorDefault)
	test.ExpectEquality(t, cursorIcon(imgui.MouseCursorNone), gui.CursorNone)
	test.ExpectEquality(t, cursorIcon(imgui.MouseCursorTextInput), gui.CursorText)
	test.ExpectEquality(t, cursorIcon(imgui.MouseCursorResizeAll), gui.CursorMove)
	test.ExpectEquality(t, cursorIcon(imgui.MouseCursorResizeNS), gui.CursorResizeVertical)
	test.ExpectEquality(t, cursorIcon(imgui.MouseCursorResizeEW), gui.CursorResizeHorizontal)
	test.ExpectEquality(t, cursorIcon(imgui.MouseCursorResizeNESW), gui.CursorResizeNeSw)
	test.ExpectEquality(t, cursorIcon(imgui.MouseCursorResizeNWSE), gui.CursorResizeNwSe)
	test.ExpectEquality(t, cursorIcon(imgui.MouseCursorHand), gui.CursorPointingHand)
	test.ExpectEquality(t, cursorIcon(mouseCursorNotAllowed), gui.CursorNotAllowed)
	test.ExpectEquality(t, cursorIcon(100), gui.CursorDefault)
}

func TestTextOrigin(t *testing.T) {
	cmd := gui.Modifiers{Ctrl: true, Command: true}
	events := []gui.Event{
		gui.EventText{Text: "typed"},
		gui.EventText{Text: "hello", Clipboard: true},
		gui.EventKey{Key: gui.KeyV, Pressed: true, Modifiers: cmd},
		gui.EventText{Text: "hello", Clipboard: true},
		gui.EventKey{Key: gui.KeyV, Pressed: true},
		gui.EventText{Text: "v"},

		// typed text followed by a V key press is still typed
		gui.EventText{Text: ","},
		gui.EventKey{Key: gui.KeyV, Pressed: true},
		gui.EventText{Text: ","},
		gui.EventKey{Key: gui.KeyV, Pressed: true, Modifiers: cmd},

		gui.EventText{Text: "last", Clipboard: true},
	}
	test.ExpectEquality(t, textOrigin(events, 0), textTyped)
	test.ExpectEquality(t, textOrigin(events, 1), textPasted)
	test.ExpectEquality(t, textOrigin(events, 3), textUnwanted)
	test.ExpectEquality(t, textOrigin(events, 5), textTyped)
	test.ExpectEquality(t, textOrigin(events, 6), textTyped)
	test.ExpectEquality(t, textOrigin(events, 8), textTyped)
	test.ExpectEquality(t, textOrigin(events, 10), textUnwanted)
}

func TestClipboard(t *testing.T) {
	var cb clipboard
	s, err := cb.Text()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	cb.paste = "hello"
	cb.SetText("copied")
	s, _ = cb.Text()
	test.ExpectEquality(t, s, "hello")

	test.ExpectEquality(t, cb.endFrame(), "copied")
	test.ExpectEquality(t, cb.endFrame(), "")
	s, _ = cb.Text()
	test.ExpectEquality(t, s, "")
}

// newTestContext creates a Context with preferences taken from the command
// line string.
func newTestContext(t *testing.T, cmdline string) *Context {
	t.Helper()
	prefs.PushCommandLineStack(cmdline)
	p, err := NewPreferences()
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)

	ctx, err := NewContext(p)
	test.DemandSuccess(t, err)
	return ctx
}

func frameInput(mod gui.Modifiers, events ...gui.Event) gui.RawInput {
	var in gui.RawInput
	in.SetScreenRect(gui.Rect{Max: gui.Pos2{X: 640, Y: 360}})
	in.Modifiers = mod
	for _, ev := range events {
		in.Push(ev)
	}
	return in
}

func TestPasteThroughClipboard(t *testing.T) {
	ctx := newTestContext(t, "")
	defer ctx.Destroy()

	cmd := gui.Modifiers{Ctrl: true, Command: true}
	ctx.BeginFrame(frameInput(cmd,
		gui.EventText{Text: "hello", Clipboard: true},
		gui.EventKey{Key: gui.KeyV, Pressed: true, Modifiers: cmd},
	))
	test.ExpectEquality(t, ctx.clipboard.paste, "hello")
	test.ExpectSuccess(t, imgui.IsKeyDown(int(gui.KeyV)))
	_ = ctx.EndFrame()

	// the paste content only lasts for the frame
	test.ExpectEquality(t, ctx.clipboard.paste, "")

	// V without the command modifier. the clipboard contents are not pasted
	ctx.BeginFrame(frameInput(gui.Modifiers{},
		gui.EventKey{Key: gui.KeyV, Pressed: false, Modifiers: cmd},
		gui.EventText{Text: "hello", Clipboard: true},
		gui.EventKey{Key: gui.KeyV, Pressed: true},
		gui.EventText{Text: "v"},
	))
	test.ExpectEquality(t, ctx.clipboard.paste, "")
	_ = ctx.EndFrame()
}

func TestScrollLineHeight(t *testing.T) {
	ctx := newTestContext(t, "dearimgui.scrolllineheight::4")
	defer ctx.Destroy()

	ctx.BeginFrame(frameInput(gui.Modifiers{},
		gui.EventScroll{Delta: gui.Vec2{X: 16, Y: 16}},
	))
	h, v := imgui.CurrentIO().MouseWheel()
	test.ExpectApproximate(t, h, 4.0, 0.0001)
	test.ExpectApproximate(t, v, 4.0, 0.0001)
	_ = ctx.EndFrame()

	// scroll deltas accumulate within a frame
	ctx.BeginFrame(frameInput(gui.Modifiers{},
		gui.EventScroll{Delta: gui.Vec2{X: 8, Y: 8}},
		gui.EventScroll{Delta: gui.Vec2{X: 8, Y: 8}},
	))
	h, v = imgui.CurrentIO().MouseWheel()
	test.ExpectApproximate(t, h, 4.0, 0.0001)
	test.ExpectApproximate(t, v, 4.0, 0.0001)
	_ = ctx.EndFrame()
}

func TestZoomFonts(t *testing.T) {
	ctx := newTestContext(t, "dearimgui.zoomfonts::true; dearimgui.zoommin::0.5; dearimgui.zoommax::3.0")
	defer ctx.Destroy()

	ctx.BeginFrame(frameInput(gui.Modifiers{}, gui.EventZoom{Factor: 100}))
	test.ExpectApproximate(t, ctx.Zoom(), 100.0, 0.0001)
	test.ExpectApproximate(t, ctx.fontScale(), 3.0, 0.0001)
	_ = ctx.EndFrame()

	ctx.BeginFrame(frameInput(gui.Modifiers{}, gui.EventZoom{Factor: 0.0001}))
	test.ExpectApproximate(t, ctx.Zoom(), 0.01, 0.0001)
	test.ExpectApproximate(t, ctx.fontScale(), 0.5, 0.0001)
	_ = ctx.EndFrame()

	ctx.BeginFrame(frameInput(gui.Modifiers{}, gui.EventZoom{Factor: 150}))
	test.ExpectApproximate(t, ctx.fontScale(), 1.5, 0.0001)
	_ = ctx.EndFrame()
}

func TestModifierKeys(t *testing.T) {
	ctx := newTestContext(t, "")
	defer ctx.Destroy()

	ctx.BeginFrame(frameInput(gui.Modifiers{Ctrl: true, Command: true}))
	test.ExpectSuccess(t, imgui.IsKeyDown(keyIndexCtrl))
	test.ExpectFailure(t, imgui.IsKeyDown(keyIndexShift))
	test.ExpectFailure(t, imgui.IsKeyDown(keyIndexAlt))
	test.ExpectFailure(t, imgui.IsKeyDown(keyIndexSuper))
	_ = ctx.EndFrame()

	ctx.BeginFrame(frameInput(gui.Modifiers{Shift: true, Alt: true, MacCmd: true, Command: true}))
	test.ExpectFailure(t, imgui.IsKeyDown(keyIndexCtrl))
	test.ExpectSuccess(t, imgui.IsKeyDown(keyIndexShift))
	test.ExpectSuccess(t, imgui.IsKeyDown(keyIndexAlt))
	test.ExpectSuccess(t, imgui.IsKeyDown(keyIndexSuper))
	_ = ctx.EndFrame()

	ctx.BeginFrame(frameInput(gui.Modifiers{}))
	test.ExpectFailure(t, imgui.IsKeyDown(keyIndexShift))
	test.ExpectFailure(t, imgui.IsKeyDown(keyIndexAlt))
	test.ExpectFailure(t, imgui.IsKeyDown(keyIndexSuper))
	_ = ctx.EndFrame()
}
