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
	"bytes"
	"math"

	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of points scrolled for each step of the mouse wheel.
const wheelPoints = 8.0

// dividing the vertical wheel delta by this value, and taking the exponent,
// gives the zoom factor.
const zoomDivisor = 125.0

// HandleEvent translates the SDL event and adds it to the input for the next
// frame. Events that have no meaning to the GUI are ignored.
//
// The KeyboardState is used to decide if a mouse wheel event is a zoom. The
// Clipboard is read when the V key is pressed.
func (plt *Platform) HandleEvent(ev sdl.Event, kb KeyboardState, clip Clipboard) {
	switch ev := ev.(type) {
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			plt.input.SetScreenRect(screenRect(ev.Data1, ev.Data2))
		}

	case *sdl.MouseButtonEvent:
		button, ok := TranslateButton(ev.Button)
		if !ok {
			return
		}
		plt.input.Push(gui.EventPointerButton{
			Pos:       plt.pointer,
			Button:    button,
			Pressed:   ev.Type == sdl.MOUSEBUTTONDOWN,
			Modifiers: plt.modifiers,
		})

	case *sdl.MouseMotionEvent:
		plt.pointer = gui.Pos2{X: float32(ev.X), Y: float32(ev.Y)}
		plt.input.Push(gui.EventPointerMoved{Pos: plt.pointer})

	case *sdl.MouseWheelEvent:
		delta := gui.Vec2{
			X: float32(ev.X) * wheelPoints,
			Y: float32(ev.Y) * wheelPoints,
		}

		// the modifier state is read from the keyboard rather than from the
		// modifiers collected from key events
		mod := kb.ModState()
		if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
			plt.input.Push(gui.EventZoom{Factor: float32(math.Exp(float64(delta.Y) / zoomDivisor))})
		} else {
			plt.input.Push(gui.EventScroll{Delta: delta})
		}

	case *sdl.KeyboardEvent:
		key, ok := TranslateKey(ev.Keysym.Sym)
		if !ok {
			return
		}
		plt.setModifiers(TranslateModifiers(ev.Keysym.Mod))

		switch ev.Type {
		case sdl.KEYDOWN:
			switch key {
			case gui.KeyC:
				plt.input.Push(gui.EventCopy{})
			case gui.KeyX:
				plt.input.Push(gui.EventCut{})
			case gui.KeyV:
				plt.paste(clip)
			}
			plt.input.Push(gui.EventKey{Key: key, Pressed: true, Modifiers: plt.modifiers})
		case sdl.KEYUP:
			plt.input.Push(gui.EventKey{Key: key, Pressed: false, Modifiers: plt.modifiers})
		}

	case *sdl.TextInputEvent:
		plt.input.Push(gui.EventText{Text: textInput(ev.Text[:])})
	}
}

func (plt *Platform) setModifiers(mod gui.Modifiers) {
	plt.modifiers = mod
	plt.input.Modifiers = mod
}

// paste adds the contents of the clipboard as a text event.
func (plt *Platform) paste(clip Clipboard) {
	if !clip.HasText() {
		return
	}
	s, err := clip.Text()
	if err != nil {
		logger.Log(logger.Allow, "platform", err)
		return
	}
	plt.input.Push(gui.EventText{Text: s, Clipboard: true})
}

// textInput returns the text in the SDL text input buffer. The text ends at
// the first zero byte.
func textInput(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
