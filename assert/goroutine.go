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

// Package assert contains checks for conditions that indicate a programming
// error. A failed check panics.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine records the goroutine that owns a resource. The zero value owns
// nothing and every check against it passes.
type Goroutine struct {
	id uint64
}

// Claim the resource for the calling goroutine.
func (g *Goroutine) Claim() {
	g.id = GetGoRoutineID()
}

// Release the resource so that it can be claimed by another goroutine.
func (g *Goroutine) Release() {
	g.id = 0
}

// Check panics if the resource has been claimed and the calling goroutine is
// not the one that claimed it.
func (g *Goroutine) Check(resource string) {
	if g.id == 0 {
		return
	}
	if id := GetGoRoutineID(); id != g.id {
		panic(fmt.Sprintf("%s used on goroutine %d but owned by goroutine %d", resource, id, g.id))
	}
}
