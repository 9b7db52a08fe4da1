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
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/imsdl/gui/dearimgui"
	"github.com/jetsetilly/imsdl/logger"
	"github.com/jetsetilly/imsdl/modalflag"
	"github.com/jetsetilly/imsdl/paths"
	"github.com/jetsetilly/imsdl/platform"
	"github.com/jetsetilly/imsdl/prefs"
	"github.com/jetsetilly/imsdl/renderer"
	"github.com/jetsetilly/imsdl/statsview"
	"github.com/jetsetilly/imsdl/version"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL and GL calls must all be made from the thread SDL was initialised on.
// LockOSThread() in init() guarantees that main() runs on that thread.
func init() {
	runtime.LockOSThread()
}

// number of log entries shown after a mode has failed.
const errorTail = 10

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "KEYS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, os.Stdout)

	case "KEYS":
		err = keys(md, os.Stdout)

	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		logger.Tail(os.Stdout, errorTail)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")
	ini := md.AddBool("ini", false, "remember window positions between sessions")
	cmdlinePrefs := md.AddString("prefs", "", "preferences. eg. \"demo.fps::30; dearimgui.zoomfonts::true\"")

	if statsview.Available() {
		md.AdditionalHelp(fmt.Sprintf("the stats server is available at %s", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(output)
	}

	demoPrefs, guiPrefs, err := loadPrefs(*cmdlinePrefs, *ini)
	if err != nil {
		return err
	}

	return host(demoPrefs, guiPrefs)
}

// loadPrefs creates the preferences for the demo and for the dearimgui
// context, with values from the command line taking priority over the
// defaults.
func loadPrefs(cmdline string, ini bool) (*demoPreferences, *dearimgui.Preferences, error) {
	// preferences from the command line are consumed as each preference group
	// is created
	prefs.PushCommandLineStack(cmdline)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "imsdl", "unused preferences: %s", unused)
		}
	}()

	demoPrefs, err := newDemoPreferences()
	if err != nil {
		return nil, nil, err
	}

	guiPrefs, err := dearimgui.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	// an ini file on the command line takes priority over the ini flag
	if ini && guiPrefs.IniFilename.Get().(string) == "" {
		pth, err := paths.ResourcePath("", "imgui.ini")
		if err != nil {
			return nil, nil, err
		}
		err = guiPrefs.IniFilename.Set(pth)
		if err != nil {
			return nil, nil, err
		}
	}

	logger.Logf(logger.Allow, "imsdl", "preferences: %s", demoPrefs)
	logger.Logf(logger.Allow, "imsdl", "preferences: %s", guiPrefs)

	return demoPrefs, guiPrefs, nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}

// clipboard returns the clipboard backend named by the demo preferences.
func clipboard(demoPrefs *demoPreferences) platform.Clipboard {
	if demoPrefs.useSystemClipboard() {
		sys := platform.SystemClipboard{}
		if sys.Available() {
			return sys
		}
		logger.Log(logger.Allow, "imsdl", "system clipboard not available. using SDL clipboard")
	}
	return platform.SDLClipboard{}
}

// host creates the window and runs the host loop until the window is closed.
func host(demoPrefs *demoPreferences, guiPrefs *dearimgui.Preferences) error {
	win, err := newWindow(demoPrefs.width.Get().(int), demoPrefs.height.Get().(int))
	if err != nil {
		return err
	}
	defer win.destroy()

	ctx, err := dearimgui.NewContext(guiPrefs)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	rnd, err := renderer.NewRenderer()
	if err != nil {
		return err
	}
	defer rnd.Destroy()

	id, err := rnd.SetFontTexture(ctx.FontTexture())
	if err != nil {
		return err
	}
	ctx.SetFontTextureID(id)

	points, _ := win.size()
	plt, err := platform.NewPlatform(int32(points.X), int32(points.Y), ctx, platform.SDLCursors{})
	if err != nil {
		return err
	}
	defer plt.Destroy()

	var lim *fpsLimiter
	if fps := demoPrefs.fps.Get().(int); fps > 0 {
		lim, err = newFPSLimiter(fps)
		if err != nil {
			return err
		}
		defer lim.stop()
	}

	clip := clipboard(demoPrefs)
	kb := platform.SDLKeyboard{}
	dem := newDemo()

	// ctrl-c in the terminal ends the loop in the same way as closing the
	// window
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Reset(os.Interrupt)

	freq := float64(sdl.GetPerformanceFrequency())
	epoch := sdl.GetPerformanceCounter()

	for running := true; running; {
		plt.UpdateTime(float64(sdl.GetPerformanceCounter()-epoch) / freq)

		points, pixels := win.size()

		plt.BeginFrame()
		dem.draw(demoStatus{
			zoom:          ctx.Zoom(),
			wantsPointer:  plt.WantsPointerInput(),
			wantsKeyboard: plt.WantsKeyboardInput(),
			screen:        points,
		})

		out, err := plt.EndFrame(clip)
		if err != nil {
			logger.Log(logger.Allow, "imsdl", err)
		}

		rnd.Clear(0.1, 0.1, 0.12)
		rnd.Render(plt.Tessellate(out), points, pixels)
		win.swap()

		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if quit(ev) {
				running = false
			}
			plt.HandleEvent(ev, kb, clip)
		}

		select {
		case <-intChan:
			running = false
		default:
		}

		if lim != nil {
			lim.wait()
		}
	}

	return nil
}

// quit returns true if the event should end the host loop.
func quit(ev sdl.Event) bool {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.WindowEvent:
		return ev.Event == sdl.WINDOWEVENT_CLOSE
	case *sdl.KeyboardEvent:
		return ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE
	}
	return false
}
