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

// Package prefs holds typed preference values. Each value can be set from a
// Go value of the natural type or from a string, which is how values arrive
// from the command line.
//
// Values can be collected into a Group under a key name. The Group can then
// apply any values for those keys found on the command line stack:
//
//	var width prefs.Int
//	_ = width.Set(800)
//
//	grp := prefs.NewGroup()
//	grp.Add("window.width", &width)
//
//	prefs.PushCommandLineStack("window.width::1024")
//	err := grp.ApplyCommandLine()
//
// The command line stack is a stack of key/value groups. Each group is
// created from a string of the form "key::value; key::value". Values are
// removed from the top group as they are used and any unused values can be
// reported by PopCommandLineStack().
package prefs
