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

package platform

// Sentinel error patterns. Test for these with curated.Is() or curated.Has().
const (
	CursorUnavailable    = "platform: cursor unavailable: %v"
	ClipboardWriteFailed = "platform: clipboard write failed: %v"
	FrameNotOpen         = "platform: end of frame without a beginning"
	NoContext            = "platform: no GUI context"
)
