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
	"time"
)

// fpsLimiter paces the host loop to a fixed number of frames per second.
type fpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
	quit chan bool
}

func newFPSLimiter(framesPerSecond int) (*fpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, fmt.Errorf("limiter: frames per second must be positive (%d)", framesPerSecond)
	}

	lim := &fpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan bool),
		quit:            make(chan bool),
	}

	// run ticker concurrently
	go func() {
		adjustedSecondPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			time.Sleep(adjustedSecondPerFrame)
			nt := time.Now()
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			adjustedSecondPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim, nil
}

// wait for the next tick. returns immediately once the limiter has been
// stopped.
func (lim *fpsLimiter) wait() {
	select {
	case <-lim.tick:
	case <-lim.quit:
	}
}

// stop the ticker goroutine. must be called no more than once.
func (lim *fpsLimiter) stop() {
	close(lim.quit)
}
