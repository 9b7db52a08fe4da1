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

// Package paths contains functions to prepare paths to imsdl resources.
//
// The ResourcePath() function prepends the resource with the appropriate
// config directory. For example, the following returns the path of the file
// used by Dear ImGui to remember window positions.
//
//	pth, err := paths.ResourcePath("", "imgui.ini")
//
// The policy of ResourcePath() is simple: if the base resource path, ".imsdl",
// is present in the program's current directory then that is the base path
// that will be used. If it is not present then the user's config directory is
// used, as returned by os.UserConfigDir().
//
// On a modern Linux system, the path returned by the example above will be:
//
//	/home/user/.config/imsdl/imgui.ini
package paths
