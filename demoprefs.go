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
	"fmt"
	"strings"

	"github.com/jetsetilly/imsdl/prefs"
)

// list of valid values for the demo.clipboard preference.
const (
	clipboardSDL    = "SDL"
	clipboardSystem = "SYSTEM"
)

// demoPreferences are the preferences of the demo host. the platform adapter
// and the dearimgui context have their own preferences.
type demoPreferences struct {
	grp *prefs.Group

	// initial size of the window
	width  prefs.Int
	height prefs.Int

	// frame rate cap. zero means the loop is paced only by the swap interval
	fps prefs.Int

	// which clipboard backend to use. SDL or SYSTEM
	clipboard prefs.String
}

func (p *demoPreferences) String() string {
	return p.grp.String()
}

func newDemoPreferences() (*demoPreferences, error) {
	p := &demoPreferences{
		grp: prefs.NewGroup(),
	}

	p.grp.Add("demo.width", &p.width)
	p.grp.Add("demo.height", &p.height)
	p.grp.Add("demo.fps", &p.fps)
	p.grp.Add("demo.clipboard", &p.clipboard)

	positive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("window dimensions must be positive")
		}
		return nil
	}
	p.width.SetHookPre(positive)
	p.height.SetHookPre(positive)

	p.fps.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("fps cap cannot be negative")
		}
		return nil
	})

	p.clipboard.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case clipboardSDL, clipboardSystem:
			return nil
		}
		return fmt.Errorf("clipboard must be one of %s or %s", clipboardSDL, clipboardSystem)
	})

	err := p.setDefaults()
	if err != nil {
		return nil, err
	}

	err = p.grp.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *demoPreferences) setDefaults() error {
	if err := p.width.Set(800); err != nil {
		return err
	}
	if err := p.height.Set(600); err != nil {
		return err
	}
	if err := p.fps.Set(60); err != nil {
		return err
	}
	return p.clipboard.Set(clipboardSDL)
}

// useSystemClipboard returns true if the clipboard preference asks for the
// operating system clipboard rather than the SDL clipboard.
func (p *demoPreferences) useSystemClipboard() bool {
	return strings.ToUpper(p.clipboard.Get().(string)) == clipboardSystem
}
