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

package opengl

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"myopengl/shader"
)

// Driver implements the shader.GL interface with go-gl.
type Driver struct{}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	owner.Check("opengl")
	switch stage {
	case shader.Vertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shader.Fragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	panic("opengl: unsupported shader stage")
}

func (Driver) ShaderSource(handle uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(handle, 1, csource, nil)
}

func (Driver) CompileShader(handle uint32) {
	gl.CompileShader(handle)
}

func (Driver) ShaderStatus(handle uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))

	return false, log
}

func (Driver) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

func (Driver) CreateProgram() uint32 {
	owner.Check("opengl")
	return gl.CreateProgram()
}

func (Driver) AttachShader(program uint32, handle uint32) {
	gl.AttachShader(program, handle)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) ProgramStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

	return false, log
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (Driver) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (Driver) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (Driver) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (Driver) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
