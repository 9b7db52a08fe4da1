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
	"github.com/jetsetilly/imsdl/gui"
	"github.com/veandco/go-sdl2/sdl"
)

// the keys recognised by the platform. any other key is ignored.
var keys = map[sdl.Keycode]gui.Key{
	sdl.K_LEFT:      gui.KeyArrowLeft,
	sdl.K_UP:        gui.KeyArrowUp,
	sdl.K_RIGHT:     gui.KeyArrowRight,
	sdl.K_DOWN:      gui.KeyArrowDown,
	sdl.K_ESCAPE:    gui.KeyEscape,
	sdl.K_TAB:       gui.KeyTab,
	sdl.K_BACKSPACE: gui.KeyBackspace,
	sdl.K_SPACE:     gui.KeySpace,
	sdl.K_RETURN:    gui.KeyEnter,
	sdl.K_INSERT:    gui.KeyInsert,
	sdl.K_HOME:      gui.KeyHome,
	sdl.K_DELETE:    gui.KeyDelete,
	sdl.K_END:       gui.KeyEnd,
	sdl.K_PAGEDOWN:  gui.KeyPageDown,
	sdl.K_PAGEUP:    gui.KeyPageUp,

	sdl.K_0: gui.KeyNum0, sdl.K_KP_0: gui.KeyNum0,
	sdl.K_1: gui.KeyNum1, sdl.K_KP_1: gui.KeyNum1,
	sdl.K_2: gui.KeyNum2, sdl.K_KP_2: gui.KeyNum2,
	sdl.K_3: gui.KeyNum3, sdl.K_KP_3: gui.KeyNum3,
	sdl.K_4: gui.KeyNum4, sdl.K_KP_4: gui.KeyNum4,
	sdl.K_5: gui.KeyNum5, sdl.K_KP_5: gui.KeyNum5,
	sdl.K_6: gui.KeyNum6, sdl.K_KP_6: gui.KeyNum6,
	sdl.K_7: gui.KeyNum7, sdl.K_KP_7: gui.KeyNum7,
	sdl.K_8: gui.KeyNum8, sdl.K_KP_8: gui.KeyNum8,
	sdl.K_9: gui.KeyNum9, sdl.K_KP_9: gui.KeyNum9,

	sdl.K_a: gui.KeyA,
	sdl.K_b: gui.KeyB,
	sdl.K_c: gui.KeyC,
	sdl.K_d: gui.KeyD,
	sdl.K_e: gui.KeyE,
	sdl.K_f: gui.KeyF,
	sdl.K_g: gui.KeyG,
	sdl.K_h: gui.KeyH,
	sdl.K_i: gui.KeyI,
	sdl.K_j: gui.KeyJ,
	sdl.K_k: gui.KeyK,
	sdl.K_l: gui.KeyL,
	sdl.K_m: gui.KeyM,
	sdl.K_n: gui.KeyN,
	sdl.K_o: gui.KeyO,
	sdl.K_p: gui.KeyP,
	sdl.K_q: gui.KeyQ,
	sdl.K_r: gui.KeyR,
	sdl.K_s: gui.KeyS,
	sdl.K_t: gui.KeyT,
	sdl.K_u: gui.KeyU,
	sdl.K_v: gui.KeyV,
	sdl.K_w: gui.KeyW,
	sdl.K_x: gui.KeyX,
	sdl.K_y: gui.KeyY,
	sdl.K_z: gui.KeyZ,
}

// TranslateKey converts an SDL keycode to a gui.Key. Returns false if the
// keycode is not recognised.
func TranslateKey(k sdl.Keycode) (gui.Key, bool) {
	key, ok := keys[k]
	return key, ok
}

// Keycodes returns every SDL keycode that TranslateKey() recognises.
func Keycodes() []sdl.Keycode {
	k := make([]sdl.Keycode, 0, len(keys))
	for c := range keys {
		k = append(k, c)
	}
	return k
}

// TranslateButton converts an SDL mouse button to a gui.PointerButton.
// Returns false if the button is not recognised.
func TranslateButton(b uint8) (gui.PointerButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return gui.PointerPrimary, true
	case sdl.BUTTON_MIDDLE:
		return gui.PointerMiddle, true
	case sdl.BUTTON_RIGHT:
		return gui.PointerSecondary, true
	}
	return 0, false
}

// TranslateModifiers converts the SDL modifier state to gui.Modifiers.
//
// The Command modifier is set if either the left ctrl key or the left GUI key
// is held.
func TranslateModifiers(mod uint16) gui.Modifiers {
	held := func(mask uint16) bool {
		return mod&mask == mask
	}
	return gui.Modifiers{
		Alt:     held(sdl.KMOD_LALT) || held(sdl.KMOD_RALT),
		Ctrl:    held(sdl.KMOD_LCTRL) || held(sdl.KMOD_RCTRL),
		Shift:   held(sdl.KMOD_LSHIFT) || held(sdl.KMOD_RSHIFT),
		MacCmd:  held(sdl.KMOD_LGUI),
		Command: held(sdl.KMOD_LCTRL) || held(sdl.KMOD_LGUI),
	}
}

// TranslateCursor converts a gui.CursorIcon to the SDL system cursor that
// most closely resembles it. Cursors with no resemblance are shown as an arrow.
func TranslateCursor(c gui.CursorIcon) sdl.SystemCursor {
	switch c {
	case gui.CursorCrosshair:
		return sdl.SYSTEM_CURSOR_CROSSHAIR
	case gui.CursorDefault:
		return sdl.SYSTEM_CURSOR_ARROW
	case gui.CursorGrab:
		return sdl.SYSTEM_CURSOR_HAND
	case gui.CursorGrabbing:
		return sdl.SYSTEM_CURSOR_SIZEALL
	case gui.CursorMove:
		return sdl.SYSTEM_CURSOR_SIZEALL
	case gui.CursorPointingHand:
		return sdl.SYSTEM_CURSOR_HAND
	case gui.CursorResizeHorizontal:
		return sdl.SYSTEM_CURSOR_SIZEWE
	case gui.CursorResizeNeSw:
		return sdl.SYSTEM_CURSOR_SIZENESW
	case gui.CursorResizeNwSe:
		return sdl.SYSTEM_CURSOR_SIZENWSE
	case gui.CursorResizeVertical:
		return sdl.SYSTEM_CURSOR_SIZENS
	case gui.CursorText:
		return sdl.SYSTEM_CURSOR_IBEAM
	case gui.CursorNotAllowed, gui.CursorNoDrop:
		return sdl.SYSTEM_CURSOR_NO
	case gui.CursorWait:
		return sdl.SYSTEM_CURSOR_WAIT
	}
	return sdl.SYSTEM_CURSOR_ARROW
}
