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
	"io"
	"sort"
	"strings"

	"github.com/jetsetilly/imsdl/modalflag"
	"github.com/jetsetilly/imsdl/platform"
	"github.com/veandco/go-sdl2/sdl"
)

// keys prints the table of SDL keys recognised by the platform.
func keys(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	bySDL := md.AddBool("sdl", false, "sort table by SDL key name")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	printKeys(output, sdl.GetKeyName, *bySDL)
	return nil
}

// printKeys writes one line per recognised keycode. the name function returns
// the SDL name of the keycode.
func printKeys(output io.Writer, name func(sdl.Keycode) string, bySDL bool) {
	type entry struct {
		name string
		key  string
		code sdl.Keycode
	}

	var tab []entry
	width := 0
	for _, c := range platform.Keycodes() {
		k, _ := platform.TranslateKey(c)
		e := entry{name: name(c), key: k.String(), code: c}
		width = max(width, len(e.name))
		tab = append(tab, e)
	}

	sort.Slice(tab, func(i, j int) bool {
		if bySDL {
			if tab[i].name != tab[j].name {
				return strings.ToLower(tab[i].name) < strings.ToLower(tab[j].name)
			}
			return tab[i].code < tab[j].code
		}

		ki, _ := platform.TranslateKey(tab[i].code)
		kj, _ := platform.TranslateKey(tab[j].code)
		if ki != kj {
			return ki < kj
		}
		return tab[i].code < tab[j].code
	})

	for _, e := range tab {
		fmt.Fprintf(output, "%-*s  %s\n", width, e.name, e.key)
	}
}
