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

// Package dearimgui implements the gui.Context interface with Dear ImGui, by
// way of the imgui-go bindings.
//
// The RawInput given to BeginFrame() is applied to the imgui IO structure and
// imgui.NewFrame() is called. The host is then free to call any imgui widget
// function. EndFrame() calls imgui.Render() and converts the resulting draw
// data, along with the requested mouse cursor and any copied text, into a
// gui.FullOutput.
//
// Dear ImGui has a single current context. The Context type makes its own
// context current at the start of every frame, so more than one Context can
// exist, but calls to imgui widget functions always apply to the Context that
// most recently started a frame.
//
// The Preferences type configures the behaviour of the Context. Preferences
// can be altered from the command line through the prefs package.
package dearimgui
