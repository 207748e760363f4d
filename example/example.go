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

// Package example contains the example programs and the frame loop that runs
// them.
//
// Each example is created with New() but no GPU objects are created until
// Run() calls Setup(), by which time the OpenGL context is current.
package example

import (
	"strings"

	"myopengl/config"
	"myopengl/curated"
	"myopengl/shader"
)

// Error is the pattern used for errors from the example package.
const Error = "example: %v"

// UnknownExample is found in the chain of an Error if New() is called with a
// name it doesn't recognise.
const UnknownExample = "unknown example (%s)"

// Names of the examples.
const (
	Triangle = "TRIANGLE"
	Shaders  = "SHADERS"
	Textures = "TEXTURES"
)

// Names lists every example in the order they appear on the command line.
var Names = []string{Triangle, Shaders, Textures}

// Example is implemented by each example program.
type Example interface {
	// Setup creates the GPU objects used by the example
	Setup() error

	// Render draws one frame. The argument is the number of seconds since the
	// window was created
	Render(t float32)

	// Shaders returns every shader used by the example
	Shaders() []*shader.Shader

	// Destroy releases every GPU object created by Setup(). It must be safe to
	// call even if Setup() failed or was never called
	Destroy()
}

// New creates the named example. The name is not case sensitive.
func New(name string, gl shader.GL, cfg config.Example) (Example, error) {
	switch strings.ToUpper(name) {
	case Triangle:
		return &triangle{gl: gl}, nil
	case Shaders:
		return &shaders{gl: gl, cfg: cfg}, nil
	case Textures:
		return &textures{gl: gl, cfg: cfg}, nil
	}
	return nil, curated.Errorf(Error, curated.Errorf(UnknownExample, name))
}
