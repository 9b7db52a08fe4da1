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

package gui

import "fmt"

// Pos2 is a position in screen coordinates.
type Pos2 struct {
	X, Y float32
}

func (p Pos2) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Vec2 is a two dimensional vector. Used for sizes and deltas.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) String() string {
	return fmt.Sprintf("[%.1f, %.1f]", v.X, v.Y)
}

// Rect is an axis aligned rectangle.
type Rect struct {
	Min Pos2
	Max Pos2
}

// Width of rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height of rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Size of rectangle.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width(), Y: r.Height()}
}

// IsPositive returns true if the rectangle has a positive area.
func (r Rect) IsPositive() bool {
	return r.Max.X > r.Min.X && r.Max.Y > r.Min.Y
}

// Intersect returns the rectangle covered by both r and o. The result may
// not be positive.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Pos2{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
		Max: Pos2{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s-%s", r.Min, r.Max)
}
