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

package platform_test

import (
	"errors"

	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/platform"
	"github.com/veandco/go-sdl2/sdl"
)

type keyboard sdl.Keymod

func (kb keyboard) ModState() sdl.Keymod {
	return sdl.Keymod(kb)
}

type clipboard struct {
	text      string
	written   []string
	failWrite bool
}

func (cb *clipboard) HasText() bool {
	return cb.text != ""
}

func (cb *clipboard) Text() (string, error) {
	return cb.text, nil
}

func (cb *clipboard) SetText(text string) error {
	if cb.failWrite {
		return errors.New("clipboard is broken")
	}
	cb.written = append(cb.written, text)
	return nil
}

type cursor struct {
	id    sdl.SystemCursor
	set   int
	freed int
}

func (cur *cursor) Set() {
	cur.set++
}

func (cur *cursor) Free() {
	cur.freed++
}

type cursors struct {
	created []*cursor
	fail    bool
}

func (c *cursors) Create(id sdl.SystemCursor) (platform.Cursor, error) {
	if c.fail {
		return nil, errors.New("no cursors today")
	}
	cur := &cursor{id: id}
	c.created = append(c.created, cur)
	return cur, nil
}

func (c *cursors) last() *cursor {
	if len(c.created) == 0 {
		return nil
	}
	return c.created[len(c.created)-1]
}

// context records the input for every frame and returns a preset output.
type context struct {
	inputs []gui.RawInput
	output gui.FullOutput
	ended  int

	wantsPointer  bool
	wantsKeyboard bool
}

func (ctx *context) BeginFrame(input gui.RawInput) {
	ctx.inputs = append(ctx.inputs, input)
}

func (ctx *context) EndFrame() gui.FullOutput {
	ctx.ended++
	return ctx.output
}

func (ctx *context) WantsPointerInput() bool {
	return ctx.wantsPointer
}

func (ctx *context) WantsKeyboardInput() bool {
	return ctx.wantsKeyboard
}

func (ctx *context) last() gui.RawInput {
	if len(ctx.inputs) == 0 {
		return gui.RawInput{}
	}
	return ctx.inputs[len(ctx.inputs)-1]
}

// keyEvent creates an SDL keyboard event.
func keyEvent(typ uint32, sym sdl.Keycode, mod uint16) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		Type: typ,
		Keysym: sdl.Keysym{
			Sym: sym,
			Mod: mod,
		},
	}
}
