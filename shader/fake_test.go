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

package shader_test

import (
	"strings"

	"myopengl/shader"
)

// fakeGL records the objects created and deleted by the shader package. A
// source containing the word "broken" fails to compile and a source containing
// "unlinkable" compiles but fails to link.
type fakeGL struct {
	next uint32

	shaders  map[uint32]string
	programs map[uint32][]uint32

	deletedShaders  []uint32
	deletedPrograms []uint32

	// program currently in use
	inUse uint32

	// active uniforms and their locations
	active  map[string]int32
	lookups map[string]int

	// most recent value set for each location
	values map[int32][]float32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		next:     1,
		shaders:  make(map[uint32]string),
		programs: make(map[uint32][]uint32),
		active: map[string]int32{
			"offset":    0,
			"texture1":  1,
			"tint":      2,
			"transform": 3,
			"position":  4,
			"enabled":   5,
		},
		lookups: make(map[string]int),
		values:  make(map[int32][]float32),
	}
}

func (gl *fakeGL) handle() uint32 {
	h := gl.next
	gl.next++
	return h
}

func (gl *fakeGL) CreateShader(_ shader.Stage) uint32 {
	h := gl.handle()
	gl.shaders[h] = ""
	return h
}

func (gl *fakeGL) ShaderSource(h uint32, source string) {
	gl.shaders[h] = source
}

func (gl *fakeGL) CompileShader(_ uint32) {
}

func (gl *fakeGL) ShaderStatus(h uint32) (bool, string) {
	if strings.Contains(gl.shaders[h], "broken") {
		return false, "0:1(1): error: syntax error\x00"
	}
	return true, ""
}

func (gl *fakeGL) DeleteShader(h uint32) {
	gl.deletedShaders = append(gl.deletedShaders, h)
	delete(gl.shaders, h)
}

func (gl *fakeGL) CreateProgram() uint32 {
	h := gl.handle()
	gl.programs[h] = nil
	return h
}

func (gl *fakeGL) AttachShader(p uint32, h uint32) {
	gl.programs[p] = append(gl.programs[p], h)
}

func (gl *fakeGL) LinkProgram(_ uint32) {
}

func (gl *fakeGL) ProgramStatus(p uint32) (bool, string) {
	for _, h := range gl.programs[p] {
		if strings.Contains(gl.shaders[h], "unlinkable") {
			return false, ""
		}
	}
	return true, ""
}

func (gl *fakeGL) DeleteProgram(p uint32) {
	gl.deletedPrograms = append(gl.deletedPrograms, p)
	delete(gl.programs, p)
}

func (gl *fakeGL) UseProgram(p uint32) {
	gl.inUse = p
}

func (gl *fakeGL) GetUniformLocation(_ uint32, name string) int32 {
	gl.lookups[name]++
	if loc, ok := gl.active[name]; ok {
		return loc
	}
	return -1
}

func (gl *fakeGL) Uniform1i(loc int32, v int32) {
	gl.values[loc] = []float32{float32(v)}
}

func (gl *fakeGL) Uniform1f(loc int32, v float32) {
	gl.values[loc] = []float32{v}
}

func (gl *fakeGL) Uniform3f(loc int32, x, y, z float32) {
	gl.values[loc] = []float32{x, y, z}
}

func (gl *fakeGL) Uniform4f(loc int32, x, y, z, w float32) {
	gl.values[loc] = []float32{x, y, z, w}
}

func (gl *fakeGL) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.values[loc] = m[:]
}

// count of how many times a handle appears in a list of deleted handles
func count(deleted []uint32, h uint32) int {
	var n int
	for _, d := range deleted {
		if d == h {
			n++
		}
	}
	return n
}
