// This file is part of myopengl.
//
// myopengl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// myopengl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with myopengl.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"time"
)

// FPS measures the number of frames per second over a fixed interval.
type FPS struct {
	interval time.Duration

	frames int
	start  time.Time

	// replaced during testing
	now func() time.Time
}

// NewFPS is the preferred method of initialisation for the FPS type.
func NewFPS(interval time.Duration) *FPS {
	f := &FPS{
		interval: interval,
		now:      time.Now,
	}
	f.start = f.now()
	return f
}

// Frame should be called once per frame. It returns the frames per second
// and true once the interval has passed since the last measurement. Otherwise
// it returns false.
func (f *FPS) Frame() (float64, bool) {
	f.frames++

	now := f.now()
	d := now.Sub(f.start)
	if d < f.interval {
		return 0, false
	}

	fps := CalcFPS(f.frames, d.Seconds())
	f.frames = 0
	f.start = now

	return fps, true
}

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second.
func CalcFPS(numFrames int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numFrames) / duration
}
