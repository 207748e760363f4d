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
	"myopengl/logger"
	"myopengl/mesh"
	"myopengl/opengl"
	"myopengl/shader"
	"myopengl/texture"
)

// the textures example draws a rotating quad with a texture. the texture is
// tinted by the colour of each vertex.
type textures struct {
	gl  shader.GL
	cfg config.Example

	program *shader.Shader
	mesh    *opengl.Mesh
	texture *opengl.Texture
}

// position, colour and texture coordinates of each vertex
var texturesVertices = []float32{
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,
}

var texturesIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// texture unit used for the texture
const textureUnit = 0

func (ex *textures) Setup() error {
	var err error

	ex.program, err = shader.NewFromFiles(ex.gl, ex.cfg.VertexShader, ex.cfg.FragmentShader)
	if err != nil {
		return err
	}

	ex.mesh, err = opengl.NewMesh(texturesVertices, mesh.Layout{3, 3, 2}, texturesIndices)
	if err != nil {
		return err
	}

	// the example continues with a plain white texture if the image can't be
	// loaded
	img, err := texture.Load(ex.cfg.Texture, texture.Options{
		FlipVertical: ex.cfg.FlipTexture,
		MaxSize:      ex.cfg.MaxTextureSize,
	})
	if err != nil {
		logger.Log(logger.Allow, "example", err)
	}
	ex.texture = opengl.NewTexture(img)

	return nil
}

func (ex *textures) Render(t float32) {
	ex.texture.Bind(textureUnit)

	// uniforms are set every frame because a reload replaces the program
	ex.program.Use()
	ex.program.SetInt("texture1", textureUnit)
	ex.program.SetBool("useVertexColor", true)
	ex.program.SetMat4("transform", rotateZ(t*0.5))

	ex.mesh.Draw()
}

// rotateZ returns a column-major matrix for a rotation about the Z axis.
func rotateZ(angle float32) [16]float32 {
	s, c := math32.Sincos(angle)
	return [16]float32{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (ex *textures) Shaders() []*shader.Shader {
	if ex.program == nil {
		return nil
	}
	return []*shader.Shader{ex.program}
}

func (ex *textures) Destroy() {
	if ex.texture != nil {
		ex.texture.Destroy()
	}
	if ex.mesh != nil {
		ex.mesh.Destroy()
	}
	if ex.program != nil {
		ex.program.Destroy()
	}
}
