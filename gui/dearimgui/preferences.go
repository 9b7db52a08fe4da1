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
	"fmt"

	"github.com/jetsetilly/imsdl/prefs"
)

// Preferences for the Context type.
type Preferences struct {
	grp *prefs.Group

	// file used by imgui to store window positions. an empty string means
	// window positions are not saved
	IniFilename prefs.String

	// the number of points scrolled by a single line of imgui scrolling
	ScrollLineHeight prefs.Float

	// a press and release of a mouse button in the same frame is spread over
	// two frames. without this short clicks, such as those made by tapping a
	// touchpad, are lost
	TrickleButtons prefs.Bool

	// zoom events scale the size of all fonts
	ZoomFonts prefs.Bool

	// the upper and lower limits of the font scale when ZoomFonts is true
	ZoomMin prefs.Float
	ZoomMax prefs.Float
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// the group name used when preferences are specified on the command line.
const prefsGroup = "dearimgui"

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are set to their defaults and then updated with any values
// found on the command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}

	p.grp.Add(fmt.Sprintf("%s.inifile", prefsGroup), &p.IniFilename)
	p.grp.Add(fmt.Sprintf("%s.scrolllineheight", prefsGroup), &p.ScrollLineHeight)
	p.grp.Add(fmt.Sprintf("%s.tricklebuttons", prefsGroup), &p.TrickleButtons)
	p.grp.Add(fmt.Sprintf("%s.zoomfonts", prefsGroup), &p.ZoomFonts)
	p.grp.Add(fmt.Sprintf("%s.zoommin", prefsGroup), &p.ZoomMin)
	p.grp.Add(fmt.Sprintf("%s.zoommax", prefsGroup), &p.ZoomMax)

	p.ScrollLineHeight.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("scroll line height must be positive")
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	err = p.grp.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.IniFilename.Set(""); err != nil {
		return err
	}
	if err := p.ScrollLineHeight.Set(8.0); err != nil {
		return err
	}
	if err := p.TrickleButtons.Set(true); err != nil {
		return err
	}
	if err := p.ZoomFonts.Set(false); err != nil {
		return err
	}
	if err := p.ZoomMin.Set(0.5); err != nil {
		return err
	}
	return p.ZoomMax.Set(3.0)
}
