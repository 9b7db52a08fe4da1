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
	"unsafe"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/logger"
)

// the time step used when the frame time is not known.
const defaultDeltaTime = 1.0 / 60.0

// imgui key indexes for the modifier keys. these follow the gui.Key values,
// which are used as the imgui key indexes for all other keys.
const (
	keyIndexCtrl = int(gui.KeyCount) + iota
	keyIndexShift
	keyIndexAlt
	keyIndexSuper
)

// Context implements the gui.Context interface for Dear ImGui.
type Context struct {
	imgui *imgui.Context
	io    imgui.IO
	prefs *Preferences

	clipboard clipboard
	buttons   mouseButtons

	// modifiers at the end of the most recent frame
	modifiers gui.Modifiers

	// the most recent screen size and time
	displaySize imgui.Vec2
	time        float64
	timeValid   bool

	// accumulated zoom factor
	zoom float32

	frameOpen bool
}

// NewContext is the preferred method of initialisation for the Context type.
// If prefs is nil then the default preferences are used.
func NewContext(prefs *Preferences) (*Context, error) {
	if prefs == nil {
		var err error
		prefs, err = NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ctx := &Context{
		imgui: imgui.CreateContext(nil),
		prefs: prefs,
		zoom:  1.0,
	}

	err := ctx.imgui.SetCurrent()
	if err != nil {
		return nil, err
	}

	ctx.io = imgui.CurrentIO()
	ctx.io.SetIniFilename(prefs.IniFilename.String())
	ctx.io.SetClipboard(&ctx.clipboard)
	ctx.io.SetBackendFlags(imgui.BackendFlagsHasMouseCursors)

	for k := gui.KeyArrowDown; k < gui.KeyCount; k++ {
		if ik, ok := imguiKeys[k]; ok {
			ctx.io.KeyMap(ik, int(k))
		}
	}

	// the font atlas must be built before the first frame
	img := ctx.io.Fonts().TextureDataAlpha8()
	logger.Logf(logger.Allow, "dearimgui", "font atlas %dx%d", img.Width, img.Height)
	logger.Logf(logger.Allow, "dearimgui", "version %s", imgui.Version())

	return ctx, nil
}

// the gui.Key values that imgui needs to know about for navigation and
// shortcuts.
var imguiKeys = map[gui.Key]int{
	gui.KeyTab:        imgui.KeyTab,
	gui.KeyArrowLeft:  imgui.KeyLeftArrow,
	gui.KeyArrowRight: imgui.KeyRightArrow,
	gui.KeyArrowUp:    imgui.KeyUpArrow,
	gui.KeyArrowDown:  imgui.KeyDownArrow,
	gui.KeyPageUp:     imgui.KeyPageUp,
	gui.KeyPageDown:   imgui.KeyPageDown,
	gui.KeyHome:       imgui.KeyHome,
	gui.KeyEnd:        imgui.KeyEnd,
	gui.KeyInsert:     imgui.KeyInsert,
	gui.KeyDelete:     imgui.KeyDelete,
	gui.KeyBackspace:  imgui.KeyBackspace,
	gui.KeySpace:      imgui.KeySpace,
	gui.KeyEnter:      imgui.KeyEnter,
	gui.KeyEscape:     imgui.KeyEscape,
	gui.KeyA:          imgui.KeyA,
	gui.KeyC:          imgui.KeyC,
	gui.KeyV:          imgui.KeyV,
	gui.KeyX:          imgui.KeyX,
	gui.KeyY:          imgui.KeyY,
	gui.KeyZ:          imgui.KeyZ,
}

// Destroy the imgui context. The Context should not be used after this call.
func (ctx *Context) Destroy() {
	if ctx.imgui == nil {
		return
	}
	ctx.imgui.Destroy()
	ctx.imgui = nil
}

// Zoom returns the zoom factor accumulated from zoom events.
func (ctx *Context) Zoom() float32 {
	return ctx.zoom
}

// FontTexture returns the font atlas as an alpha only image.
func (ctx *Context) FontTexture() (width int, height int, pixels []byte) {
	img := ctx.io.Fonts().TextureDataAlpha8()
	if img == nil {
		return 0, 0, nil
	}
	return img.Width, img.Height, unsafe.Slice((*byte)(img.Pixels), img.Width*img.Height)
}

// SetFontTextureID tells imgui which texture the renderer has created for the
// font atlas.
func (ctx *Context) SetFontTextureID(id gui.TextureID) {
	ctx.io.Fonts().SetTextureID(imgui.TextureID(id))
}

// BeginFrame implements the gui.Context interface.
func (ctx *Context) BeginFrame(input gui.RawInput) {
	if ctx.frameOpen {
		logger.Log(logger.Allow, "dearimgui", "frame started before previous frame ended")
		imgui.EndFrame()
	}

	err := ctx.imgui.SetCurrent()
	if err != nil {
		logger.Log(logger.Allow, "dearimgui", err)
		return
	}

	if input.ScreenRect != nil {
		size := input.ScreenRect.Size()
		ctx.displaySize = imgui.Vec2{X: max(0, size.X), Y: max(0, size.Y)}
	}
	ctx.io.SetDisplaySize(ctx.displaySize)

	dt := float32(defaultDeltaTime)
	if input.Time != nil {
		if ctx.timeValid && *input.Time > ctx.time {
			dt = float32(*input.Time - ctx.time)
		}
		ctx.time = *input.Time
		ctx.timeValid = true
	}
	ctx.io.SetDeltaTime(dt)

	ctx.buttons.startFrame()
	ctx.applyEvents(input.Events)
	for i, down := range ctx.buttons.down {
		ctx.io.SetMouseButtonDown(i, down)
	}

	ctx.modifiers = input.Modifiers
	ctx.applyModifiers()

	if ctx.prefs.ZoomFonts.Get().(bool) {
		ctx.io.SetFontGlobalScale(ctx.fontScale())
	}

	imgui.NewFrame()
	ctx.frameOpen = true
}

func (ctx *Context) applyEvents(events []gui.Event) {
	lineHeight := float32(ctx.prefs.ScrollLineHeight.Get().(float64))
	trickle := ctx.prefs.TrickleButtons.Get().(bool)

	for i, ev := range events {
		switch ev := ev.(type) {
		case gui.EventPointerMoved:
			ctx.io.SetMousePosition(imgui.Vec2{X: ev.Pos.X, Y: ev.Pos.Y})

		case gui.EventPointerButton:
			ctx.io.SetMousePosition(imgui.Vec2{X: ev.Pos.X, Y: ev.Pos.Y})
			if b, ok := buttonIndex(ev.Button); ok {
				if ev.Pressed {
					ctx.buttons.press(b)
				} else {
					ctx.buttons.release(b, trickle)
				}
			}

		case gui.EventKey:
			if ev.Key.IsValid() {
				if ev.Pressed {
					ctx.io.KeyPress(int(ev.Key))
				} else {
					ctx.io.KeyRelease(int(ev.Key))
				}
			}

		case gui.EventText:
			switch textOrigin(events, i) {
			case textPasted:
				ctx.clipboard.paste = ev.Text
			case textTyped:
				ctx.io.AddInputCharacters(ev.Text)
			}

		case gui.EventScroll:
			ctx.io.AddMouseWheelDelta(ev.Delta.X/lineHeight, ev.Delta.Y/lineHeight)

		case gui.EventZoom:
			ctx.zoom *= ev.Factor

		case gui.EventCopy, gui.EventCut:
			// imgui recognises the copy and cut shortcuts from the key events
		}
	}
}

// textSource is the origin of a text event.
type textSource int

const (
	// typed by the user
	textTyped textSource = iota

	// clipboard contents sent ahead of a command+V key press
	textPasted

	// clipboard contents sent ahead of a V key press without the command
	// modifier. the key press produces a text event of its own
	textUnwanted
)

// textOrigin decides where the text event at index i came from.
//
// imgui ignores character input while the ctrl key is held so pasted text
// must be given to imgui through the clipboard interface instead.
func textOrigin(events []gui.Event, i int) textSource {
	if ev, ok := events[i].(gui.EventText); !ok || !ev.Clipboard {
		return textTyped
	}
	if i+1 < len(events) {
		ev, ok := events[i+1].(gui.EventKey)
		if ok && ev.Pressed && ev.Key == gui.KeyV && ev.Modifiers.Command {
			return textPasted
		}
	}
	return textUnwanted
}

// applyModifiers sets the modifier keys in imgui. imgui reads the modifiers
// through the KeysDown array so each modifier is forwarded as a pseudo key.
func (ctx *Context) applyModifiers() {
	set := func(idx int, down bool) {
		if down {
			ctx.io.KeyPress(idx)
		} else {
			ctx.io.KeyRelease(idx)
		}
	}
	set(keyIndexCtrl, ctx.modifiers.Ctrl)
	set(keyIndexShift, ctx.modifiers.Shift)
	set(keyIndexAlt, ctx.modifiers.Alt)
	set(keyIndexSuper, ctx.modifiers.MacCmd)
	ctx.io.KeyCtrl(keyIndexCtrl, keyIndexCtrl)
	ctx.io.KeyShift(keyIndexShift, keyIndexShift)
	ctx.io.KeyAlt(keyIndexAlt, keyIndexAlt)
	ctx.io.KeySuper(keyIndexSuper, keyIndexSuper)
}

// fontScale returns the zoom factor clamped to the limits in the preferences.
func (ctx *Context) fontScale() float32 {
	lo := float32(ctx.prefs.ZoomMin.Get().(float64))
	hi := float32(ctx.prefs.ZoomMax.Get().(float64))
	return min(max(ctx.zoom, lo), hi)
}

// EndFrame implements the gui.Context interface.
func (ctx *Context) EndFrame() gui.FullOutput {
	if !ctx.frameOpen {
		return gui.FullOutput{}
	}
	ctx.frameOpen = false

	imgui.Render()

	return gui.FullOutput{
		PlatformOutput: gui.PlatformOutput{
			CursorIcon:         cursorIcon(imgui.MouseCursor()),
			CopiedText:         ctx.clipboard.endFrame(),
			WantsPointerInput:  ctx.io.WantCaptureMouse(),
			WantsKeyboardInput: ctx.io.WantCaptureKeyboard(),
		},
		Shapes: drawLists(imgui.RenderedDrawData()),
	}
}

// WantsPointerInput implements the gui.Context interface.
func (ctx *Context) WantsPointerInput() bool {
	return ctx.io.WantCaptureMouse()
}

// WantsKeyboardInput implements the gui.Context interface.
func (ctx *Context) WantsKeyboardInput() bool {
	return ctx.io.WantCaptureKeyboard()
}
