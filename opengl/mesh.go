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
	"github.com/go-gl/gl/v3.2-core/gl"

	"myopengl/curated"
	"myopengl/mesh"
)

// Mesh is a vertex array object and the buffers it refers to. If the mesh was
// created with indices then it is drawn with an element buffer.
type Mesh struct {
	vao uint32
	vbo uint32
	ebo uint32

	// number of vertices or indices to draw
	count int32
}

// NewMesh uploads the interleaved vertex data to the GPU. Each attribute in
// the layout is enabled at the location matching its index in the layout.
// Indices may be nil, in which case the vertices are drawn in order.
func NewMesh(vertices []float32, layout mesh.Layout, indices []uint32) (*Mesh, error) {
	n, err := layout.Vertices(vertices)
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}
	if n == 0 {
		return nil, curated.Errorf(Error, "mesh has no vertices")
	}
	if err := mesh.Indices(indices, n); err != nil {
		return nil, curated.Errorf(Error, err)
	}

	owner.Check("opengl")

	m := &Mesh{
		count: int32(n),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.count = int32(len(indices))
	}

	stride := layout.Stride()
	for i, offset := range layout.Offsets() {
		gl.VertexAttribPointerWithOffset(uint32(i), int32(layout[i]), gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(i))
	}

	// the element buffer binding is part of the vertex array state so it must
	// not be unbound while the vertex array is bound
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m, nil
}

// Draw the mesh as triangles with the program currently in use.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Destroy deletes the vertex array and buffers. It is safe to call more than
// once.
func (m *Mesh) Destroy() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
