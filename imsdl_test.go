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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/imsdl/modalflag"
	"github.com/jetsetilly/imsdl/platform"
	"github.com/jetsetilly/imsdl/prefs"
	"github.com/jetsetilly/imsdl/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestQuit(t *testing.T) {
	test.ExpectSuccess(t, quit(&sdl.QuitEvent{Type: sdl.QUIT}))
	test.ExpectSuccess(t, quit(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_CLOSE}))
	test.ExpectFailure(t, quit(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED}))

	esc := &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}
	test.ExpectSuccess(t, quit(esc))
	esc.Type = sdl.KEYUP
	test.ExpectFailure(t, quit(esc))

	test.ExpectFailure(t, quit(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_a}}))
	test.ExpectFailure(t, quit(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION}))
}

func TestClipboardChoice(t *testing.T) {
	p, err := newDemoPreferences()
	test.DemandSuccess(t, err)

	_, ok := clipboard(p).(platform.SDLClipboard)
	test.ExpectSuccess(t, ok)

	// the system clipboard may not be available on the test machine, in which
	// case the SDL clipboard is used instead
	test.DemandSuccess(t, p.clipboard.Set(clipboardSystem))
	switch clipboard(p).(type) {
	case platform.SystemClipboard:
		test.ExpectSuccess(t, platform.SystemClipboard{}.Available())
	case platform.SDLClipboard:
		test.ExpectFailure(t, platform.SystemClipboard{}.Available())
	default:
		t.Errorf("unexpected clipboard type")
	}
}

func TestRunRejectsBadPrefs(t *testing.T) {
	w := &test.CompareWriter{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs([]string{"-prefs", "demo.width::0"})
	err := run(md, w)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestLoadPrefs(t *testing.T) {
	demoPrefs, guiPrefs, err := loadPrefs("demo.fps::30; dearimgui.zoomfonts::true; unknown::1", false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, demoPrefs.fps.Get().(int), 30)
	test.ExpectEquality(t, guiPrefs.ZoomFonts.Get().(bool), true)
	test.ExpectEquality(t, guiPrefs.IniFilename.Get().(string), "")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// the ini flag does not override an ini file given on the command line
	_, guiPrefs, err = loadPrefs("dearimgui.inifile::test.ini", true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, guiPrefs.IniFilename.Get().(string), "test.ini")
}

func TestKeysMode(t *testing.T) {
	w := &test.CompareWriter{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs([]string{"extra"})
	test.ExpectFailure(t, keys(md, w))
}

func TestVersionMode(t *testing.T) {
	w := &test.CompareWriter{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs(nil)
	test.DemandSuccess(t, showVersion(md, w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "imsdl "))
}
