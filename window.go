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

	"github.com/jetsetilly/imsdl/gui"
	"github.com/jetsetilly/imsdl/logger"
	"github.com/jetsetilly/imsdl/version"
	"github.com/veandco/go-sdl2/sdl"
)

// window is the SDL window and the GL 3.2 context the demo draws into.
type window struct {
	sdl       *sdl.Window
	glContext sdl.GLContext
}

func newWindow(width int, height int) (*window, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &window{}

	v, _, _ := version.Version()
	win.sdl, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, v),
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.glContext, err = win.sdl.GLCreateContext()
	if err != nil {
		win.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = win.sdl.GLMakeCurrent(win.glContext)
	if err != nil {
		win.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// vsync is not required. the fps limiter paces the loop if the swap
	// interval cannot be set
	err = sdl.GLSetSwapInterval(1)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(1): %v", err)
	}

	// text input events are required for the GUI to receive characters
	sdl.StartTextInput()

	return win, nil
}

func (win *window) destroy() {
	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}
	if win.sdl != nil {
		err := win.sdl.Destroy()
		if err != nil {
			logger.Logf(logger.Allow, "sdl", "destroy window: %v", err)
		}
		win.sdl = nil
	}
	sdl.Quit()
}

// size returns the size of the window in points and the size of the drawable
// area in pixels. the two differ on high DPI displays.
func (win *window) size() (points gui.Vec2, pixels gui.Vec2) {
	w, h := win.sdl.GetSize()
	dw, dh := win.sdl.GLGetDrawableSize()
	return gui.Vec2{X: float32(w), Y: float32(h)}, gui.Vec2{X: float32(dw), Y: float32(dh)}
}

func (win *window) swap() {
	win.sdl.GLSwap()
}
