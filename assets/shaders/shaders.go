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

// Package shaders embeds the GLSL used by the triangle example. The shaders
// used by the other examples are loaded from disk so that they can be edited
// while the example is running.
package shaders

import _ "embed"

//go:embed "triangle.vert"
var TriangleVertexShader []byte

//go:embed "yellow.frag"
var YellowShader []byte

//go:embed "green.frag"
var GreenShader []byte
