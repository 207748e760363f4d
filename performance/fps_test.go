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
	"testing"
	"time"

	"myopengl/test"
)

func TestCalcFPS(t *testing.T) {
	test.ExpectEquality(t, CalcFPS(120, 2.0), 60.0)
	test.ExpectEquality(t, CalcFPS(10, 0), 0.0)
}

func TestFPS(t *testing.T) {
	clk := time.Unix(0, 0)

	f := NewFPS(time.Second)
	f.now = func() time.Time { return clk }
	f.start = clk

	// 30 frames in the first half second. no measurement yet
	for range 30 {
		clk = clk.Add(time.Second / 60)
		_, ok := f.Frame()
		test.ExpectFailure(t, ok)
	}

	// the measurement arrives once the interval has passed
	var fps float64
	var ok bool
	for !ok {
		clk = clk.Add(time.Second / 60)
		fps, ok = f.Frame()
	}
	test.ExpectApproximate(t, fps, 60.0, 0.01)

	// the count restarts after a measurement
	clk = clk.Add(time.Second * 2)
	fps, ok = f.Frame()
	test.ExpectSuccess(t, ok)
	test.ExpectApproximate(t, fps, 0.5, 0.01)
}
