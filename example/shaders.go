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

package example

import (
	"github.com/chewxy/math32"

	"myopengl/config"
	"myopengl/mesh"
	"myopengl/opengl"
	"myopengl/shader"
)

// the shaders example draws a single triangle with a colour for each vertex.
// the triangle moves from side to side and pulses in brightness.
type shaders struct {
	gl  shader.GL
	cfg config.Example

	program *shader.Shader
	mesh    *opengl.Mesh
}

// position and colour of each vertex
var shadersVertices = []float32{
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
}

func (ex *shaders) Setup() error {
	var err error

	ex.program, err = shader.NewFromFiles(ex.gl, ex.cfg.VertexShader, ex.cfg.FragmentShader)
	if err != nil {
		return err
	}

	ex.mesh, err = opengl.NewMesh(shadersVertices, mesh.Layout{3, 3}, nil)
	if err != nil {
		return err
	}

	return nil
}

func (ex *shaders) Render(t float32) {
	ex.program.Use()
	ex.program.SetFloat("offset", 0.25*math32.Sin(t))

	b := brightness(t)
	ex.program.SetVec4("tint", b, b, b, 1.0)

	ex.mesh.Draw()
}

// brightness returns a value that cycles between 0.5 and 1.0 about once every
// three seconds.
func brightness(t float32) float32 {
	return 0.75 + 0.25*math32.Cos(t*2.0)
}

func (ex *shaders) Shaders() []*shader.Shader {
	if ex.program == nil {
		return nil
	}
	return []*shader.Shader{ex.program}
}

func (ex *shaders) Destroy() {
	if ex.mesh != nil {
		ex.mesh.Destroy()
	}
	if ex.program != nil {
		ex.program.Destroy()
	}
}
