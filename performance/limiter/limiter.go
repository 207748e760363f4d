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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"time"

	"myopengl/curated"
)

// Error is the pattern used for errors from the limiter package.
const Error = "limiter: %v"

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	framesPerSecond int
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	d, err := secondsPerFrame(framesPerSecond)
	if err != nil {
		return nil, err
	}

	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(d),
	}

	return lim, nil
}

func secondsPerFrame(framesPerSecond int) (time.Duration, error) {
	if framesPerSecond <= 0 {
		return 0, curated.Errorf(Error, curated.Errorf("frame rate must be positive (%d)", framesPerSecond))
	}
	return time.Second / time.Duration(framesPerSecond), nil
}

// SetLimit changes the limit at which the FpsLimiter waits
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	d, err := secondsPerFrame(framesPerSecond)
	if err != nil {
		return err
	}
	lim.framesPerSecond = framesPerSecond
	lim.ticker.Reset(d)
	return nil
}

// Limit returns the current limit.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until trigger
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
