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

package shader

// Stage identifies a stage in the shader pipeline.
type Stage int

// List of valid Stage values.
const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return "unknown stage"
}

// GL is the part of the OpenGL API used by the shader package. Implementations
// must only be used from the thread that owns the OpenGL context.
type GL interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)

	// ShaderStatus returns whether the shader compiled successfully. If it did
	// not then the info log from the driver is also returned.
	ShaderStatus(shader uint32) (bool, string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32)

	// ProgramStatus returns whether the program linked successfully. If it did
	// not then the info log from the driver is also returned.
	ProgramStatus(program uint32) (bool, string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// GetUniformLocation returns -1 if the name is not an active uniform in
	// the program.
	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, m *[16]float32)
}
