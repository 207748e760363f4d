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

// Package mesh describes how interleaved vertex data is laid out in a vertex
// buffer. It has no dependency on OpenGL and is used by the opengl package
// when configuring vertex attribute pointers.
package mesh

import (
	"myopengl/curated"
)

// Size of a float32 in bytes.
const floatSize = 4

// Error is the pattern used for mesh errors.
const Error = "mesh: %v"

// Layout lists the number of float32 components of each vertex attribute in
// the order they are interleaved. The index of each entry is the attribute
// location in the vertex shader.
//
// For example, a vertex with a vec3 position, a vec3 colour and a vec2 texture
// coordinate has a layout of Layout{3, 3, 2}.
type Layout []int

// Components returns the number of float32 values per vertex.
func (l Layout) Components() int {
	var n int
	for _, c := range l {
		n += c
	}
	return n
}

// Stride returns the size in bytes of one vertex.
func (l Layout) Stride() int32 {
	return int32(l.Components() * floatSize)
}

// Offsets returns the byte offset of each attribute from the start of the
// vertex.
func (l Layout) Offsets() []uintptr {
	o := make([]uintptr, len(l))
	var n int
	for i, c := range l {
		o[i] = uintptr(n * floatSize)
		n += c
	}
	return o
}

// Vertices returns the number of vertices in the data. An error is returned if
// the layout is not valid or if the data does not contain a whole number of
// vertices.
func (l Layout) Vertices(data []float32) (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	c := l.Components()
	if len(data)%c != 0 {
		return 0, curated.Errorf(Error, curated.Errorf("%d values is not a whole number of %d component vertices", len(data), c))
	}
	return len(data) / c, nil
}

// Validate checks that the layout has at least one attribute and that every
// attribute has between one and four components.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return curated.Errorf(Error, "empty layout")
	}
	for i, c := range l {
		if c < 1 || c > 4 {
			return curated.Errorf(Error, curated.Errorf("attribute %d has %d components", i, c))
		}
	}
	return nil
}

// Indices checks that every index refers to a vertex in a mesh with the
// specified number of vertices.
func Indices(indices []uint32, vertices int) error {
	for i, idx := range indices {
		if int(idx) >= vertices {
			return curated.Errorf(Error, curated.Errorf("index %d (%d) out of range for %d vertices", i, idx, vertices))
		}
	}
	return nil
}
