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
	glsl "myopengl/assets/shaders"
	"myopengl/mesh"
	"myopengl/opengl"
	"myopengl/shader"
)

// the triangle example draws three triangles. the lower two with a yellow
// program and the upper one with a green program.
type triangle struct {
	gl shader.GL

	yellow *shader.Shader
	green  *shader.Shader

	meshes []*opengl.Mesh
}

var triangleVertices = [][]float32{
	{
		-0.8, -0.8, 0.0,
		0.0, -0.8, 0.0,
		-0.4, 0.0, 0.0,
	},
	{
		0.0, -0.8, 0.0,
		0.8, -0.8, 0.0,
		0.4, 0.0, 0.0,
	},
	{
		-0.4, 0.0, 0.0,
		0.4, 0.0, 0.0,
		0.0, 0.8, 0.0,
	},
}

func (ex *triangle) Setup() error {
	var err error

	ex.yellow, err = shader.NewFromSource(ex.gl, string(glsl.TriangleVertexShader), string(glsl.YellowShader))
	if err != nil {
		return err
	}

	ex.green, err = shader.NewFromSource(ex.gl, string(glsl.TriangleVertexShader), string(glsl.GreenShader))
	if err != nil {
		return err
	}

	for _, v := range triangleVertices {
		m, err := opengl.NewMesh(v, mesh.Layout{3}, nil)
		if err != nil {
			return err
		}
		ex.meshes = append(ex.meshes, m)
	}

	return nil
}

func (ex *triangle) Render(_ float32) {
	ex.yellow.Use()
	ex.meshes[0].Draw()
	ex.meshes[1].Draw()

	ex.green.Use()
	ex.meshes[2].Draw()
}

func (ex *triangle) Shaders() []*shader.Shader {
	var l []*shader.Shader
	for _, sh := range []*shader.Shader{ex.yellow, ex.green} {
		if sh != nil {
			l = append(l, sh)
		}
	}
	return l
}

func (ex *triangle) Destroy() {
	for i := len(ex.meshes) - 1; i >= 0; i-- {
		ex.meshes[i].Destroy()
	}
	ex.meshes = ex.meshes[:0]

	if ex.green != nil {
		ex.green.Destroy()
	}
	if ex.yellow != nil {
		ex.yellow.Destroy()
	}
}
