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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a named collection of preference values.
type Group struct {
	entries map[string]Preference
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Preference),
	}
}

// Add a preference value to the group under the key name. Adding a key that
// already exists replaces the earlier value.
func (grp *Group) Add(key string, p Preference) {
	grp.entries[key] = p
}

// Get the preference value for the key.
func (grp *Group) Get(key string) (Preference, bool) {
	p, ok := grp.entries[key]
	return p, ok
}

// ApplyCommandLine sets every value in the group for which there is a
// matching key in the top group of the command line stack. The first error
// encountered is returned but the remaining values are still applied.
func (grp *Group) ApplyCommandLine() error {
	var first error
	for _, key := range grp.keys() {
		ok, v := GetCommandLinePref(key)
		if !ok {
			continue
		}
		if err := grp.entries[key].Set(v); err != nil && first == nil {
			first = fmt.Errorf("prefs: %s: %w", key, err)
		}
	}
	return first
}

// Reset all values in the group.
func (grp *Group) Reset() error {
	for _, key := range grp.keys() {
		if err := grp.entries[key].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}
	return nil
}

// String returns the group in the same "key::value; key::value" form used
// by the command line stack. Keys are sorted.
func (grp *Group) String() string {
	s := strings.Builder{}
	for _, key := range grp.keys() {
		s.WriteString(fmt.Sprintf("%s::%s; ", key, grp.entries[key].String()))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

func (grp *Group) keys() []string {
	keys := make([]string, 0, len(grp.entries))
	for k := range grp.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
