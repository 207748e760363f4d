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

import (
	"myopengl/logger"
)

func (sh *Shader) mustBeLoaded() {
	if sh.id == 0 {
		panic("shader: no program loaded")
	}
}

// Use installs the program as part of the current rendering state.
func (sh *Shader) Use() {
	sh.mustBeLoaded()
	sh.gl.UseProgram(sh.id)
}

// location returns the cached location of the named uniform. inactive uniforms
// have a location of -1, which OpenGL silently ignores when setting values.
func (sh *Shader) location(name string) int32 {
	sh.mustBeLoaded()

	if loc, ok := sh.uniforms[name]; ok {
		return loc
	}

	loc := sh.gl.GetUniformLocation(sh.id, name)
	if loc < 0 {
		logger.Logf(logger.Allow, "shader", "uniform %s is not active in program %d", name, sh.id)
	}
	sh.uniforms[name] = loc

	return loc
}

// The uniform setters apply to the program currently in use. Call Use() first.

// SetInt sets an integer uniform value. Also used for sampler uniforms.
func (sh *Shader) SetInt(name string, value int32) {
	sh.gl.Uniform1i(sh.location(name), value)
}

// SetBool sets a boolean uniform value.
func (sh *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	sh.gl.Uniform1i(sh.location(name), v)
}

// SetFloat sets a float uniform value.
func (sh *Shader) SetFloat(name string, value float32) {
	sh.gl.Uniform1f(sh.location(name), value)
}

// SetVec3 sets a vec3 uniform value.
func (sh *Shader) SetVec3(name string, x, y, z float32) {
	sh.gl.Uniform3f(sh.location(name), x, y, z)
}

// SetVec4 sets a vec4 uniform value.
func (sh *Shader) SetVec4(name string, x, y, z, w float32) {
	sh.gl.Uniform4f(sh.location(name), x, y, z, w)
}

// SetMat4 sets a mat4 uniform value. The matrix is in column-major order.
func (sh *Shader) SetMat4(name string, m [16]float32) {
	sh.gl.UniformMatrix4fv(sh.location(name), &m)
}
