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

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/version"
)

// demo is the state of the example GUI drawn every frame.
type demo struct {
	text    string
	clicks  int
	showAll bool
}

// the information about the platform that the example GUI displays.
type demoStatus struct {
	zoom          float32
	wantsPointer  bool
	wantsKeyboard bool
	screen        gui.Vec2
}

func newDemo() *demo {
	return &demo{
		text: "type here. ctrl+c, ctrl+x and ctrl+v use the clipboard",
	}
}

// draw the example GUI. must be called between BeginFrame() and EndFrame().
func (dem *demo) draw(status demoStatus) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 20}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 420, Y: 300}, imgui.ConditionFirstUseEver)

	if imgui.Begin(version.ApplicationName) {
		imgui.Text("SDL input through Dear ImGui")
		imgui.Separator()

		if imgui.Button("Click") {
			dem.clicks++
		}
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("clicked %d times", dem.clicks))

		imgui.InputTextMultiline("##text", &dem.text)

		imgui.Separator()
		imgui.Text(fmt.Sprintf("screen: %s", status.screen))
		imgui.Text(fmt.Sprintf("zoom: %.2f", status.zoom))
		imgui.Text(fmt.Sprintf("wants pointer: %v", status.wantsPointer))
		imgui.Text(fmt.Sprintf("wants keyboard: %v", status.wantsKeyboard))

		imgui.Checkbox("show imgui demo window", &dem.showAll)
	}
	imgui.End()

	if dem.showAll {
		imgui.ShowDemoWindow(&dem.showAll)
	}
}
