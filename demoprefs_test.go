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
	"testing"

	"github.com/jetsetilly/imsdl/prefs"
	"github.com/jetsetilly/imsdl/test"
)

func TestDemoPreferencesDefaults(t *testing.T) {
	p, err := newDemoPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.String(), "demo.clipboard::SDL; demo.fps::60; demo.height::600; demo.width::800")
	test.ExpectEquality(t, p.useSystemClipboard(), false)
}

func TestDemoPreferencesCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("demo.width::1024; demo.clipboard::system; demo.unknown::1")
	p, err := newDemoPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.width.Get().(int), 1024)
	test.ExpectEquality(t, p.useSystemClipboard(), true)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "demo.unknown::1")
}

func TestDemoPreferencesInvalid(t *testing.T) {
	prefs.PushCommandLineStack("demo.height::0")
	_, err := newDemoPreferences()
	test.ExpectFailure(t, err)
	prefs.PopCommandLineStack()

	p, err := newDemoPreferences()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.clipboard.Set("X11"))
	test.ExpectFailure(t, p.fps.Set(-1))
	test.ExpectSuccess(t, p.fps.Set(0))
}
