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
	"testing"

	"myopengl/shader"
	"myopengl/test"
)

func TestUniforms(t *testing.T) {
	gl := newFakeGL()
	sh, err := shader.NewFromSource(gl, vertexSource, fragmentSource)
	test.DemandSuccess(t, err)
	sh.Use()

	sh.SetFloat("offset", 0.25)
	test.ExpectEquality(t, gl.values[0][0], 0.25)

	sh.SetInt("texture1", 3)
	test.ExpectEquality(t, gl.values[1][0], 3)

	sh.SetBool("enabled", true)
	test.ExpectEquality(t, gl.values[5][0], 1)
	sh.SetBool("enabled", false)
	test.ExpectEquality(t, gl.values[5][0], 0)

	sh.SetVec3("position", 1, 2, 3)
	test.ExpectEquality(t, len(gl.values[4]), 3)
	test.ExpectEquality(t, gl.values[4][2], 3)

	sh.SetVec4("tint", 0.1, 0.2, 0.3, 0.4)
	test.ExpectEquality(t, len(gl.values[2]), 4)
	test.ExpectEquality(t, gl.values[2][3], 0.4)

	m := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0.5, 0, 0, 1}
	sh.SetMat4("transform", m)
	test.ExpectEquality(t, len(gl.values[3]), 16)
	test.ExpectEquality(t, gl.values[3][12], 0.5)
}

func TestUniformLocationCache(t *testing.T) {
	gl := newFakeGL()
	sh, err := shader.NewFromSource(gl, vertexSource, fragmentSource)
	test.DemandSuccess(t, err)
	sh.Use()

	for i := range 10 {
		sh.SetFloat("offset", float32(i))
		sh.SetFloat("inactive", float32(i))
	}
	test.ExpectEquality(t, gl.lookups["offset"], 1)
	test.ExpectEquality(t, gl.lookups["inactive"], 1)

	// values for inactive uniforms are passed to GL with location -1
	test.ExpectEquality(t, gl.values[-1][0], 9)
	test.ExpectEquality(t, gl.values[0][0], 9)

	// the cache does not survive destruction of the program
	sh.Destroy()
	test.DemandSuccess(t, sh.LoadSource(vertexSource, fragmentSource))
	sh.Use()
	sh.SetFloat("offset", 1)
	test.ExpectEquality(t, gl.lookups["offset"], 2)
}
