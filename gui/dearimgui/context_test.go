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

package dearimgui_test

import (
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/gui/dearimgui"
	"github.com/jetsetilly/imsdl/prefs"
	"github.com/jetsetilly/imsdl/test"
)

func TestPreferences(t *testing.T) {
	p, err := dearimgui.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ScrollLineHeight.Get().(float64), 8.0)
	test.ExpectEquality(t, p.TrickleButtons.Get().(bool), true)
	test.ExpectEquality(t, p.IniFilename.String(), "")

	test.ExpectFailure(t, p.ScrollLineHeight.Set(0.0))
	test.ExpectEquality(t, p.ScrollLineHeight.Get().(float64), 8.0)

	prefs.PushCommandLineStack("dearimgui.scrolllineheight::16; dearimgui.tricklebuttons::false")
	defer prefs.PopCommandLineStack()

	p, err = dearimgui.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ScrollLineHeight.Get().(float64), 16.0)
	test.ExpectEquality(t, p.TrickleButtons.Get().(bool), false)
}

func TestFrame(t *testing.T) {
	ctx, err := dearimgui.NewContext(nil)
	test.DemandSuccess(t, err)
	defer ctx.Destroy()

	w, h, pixels := ctx.FontTexture()
	test.ExpectSuccess(t, w > 0 && h > 0)
	test.ExpectEquality(t, len(pixels), w*h)

	var in gui.RawInput
	in.SetScreenRect(gui.Rect{Max: gui.Pos2{X: 640, Y: 360}})
	in.SetTime(1.0)

	ctx.BeginFrame(in.Take())
	imgui.Text("hello")
	out := ctx.EndFrame()

	test.ExpectEquality(t, out.PlatformOutput.CursorIcon, gui.CursorDefault)
	test.ExpectEquality(t, out.PlatformOutput.CopiedText, "")
	test.ExpectFailure(t, out.PlatformOutput.WantsKeyboardInput)
	test.ExpectSuccess(t, len(out.Shapes) > 0)
	test.ExpectSuccess(t, len(gui.Tessellate(out.Shapes)) > 0)

	// a second frame with zoom. zoom has no effect on the fonts by default but
	// is still accumulated
	in.SetTime(1.5)
	in.Push(gui.EventZoom{Factor: 2.0})
	ctx.BeginFrame(in.Take())
	_ = ctx.EndFrame()
	test.ExpectApproximate(t, ctx.Zoom(), 2.0, 0.0001)

	// ending a frame that was never started
	out = ctx.EndFrame()
	test.ExpectEquality(t, len(out.Shapes), 0)
}
