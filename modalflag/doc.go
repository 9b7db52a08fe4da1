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

// Package modalflag parses command lines that are divided into modes. Each
// mode has its own set of flags and may be followed by a sub-mode. For
// example:
//
//	imsdl -fps 30 KEYS -sorted
//
// The first call to Parse() handles the -fps flag and recognises KEYS as the
// sub-mode. A call to NewMode() followed by a second call to Parse() handles
// the flags of the KEYS mode.
//
// The package is a thin layer over the flag package of the standard library.
// Help messages are amended to list the available sub-modes.
package modalflag
