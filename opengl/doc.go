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

// Package opengl is the only package in myopengl that calls OpenGL directly.
//
// The Driver type implements the shader.GL interface. Mesh and Texture manage
// vertex data and texture objects respectively.
//
// Init() must be called once the OpenGL context has been made current and
// every function in the package must be called from the thread that owns the
// context.
package opengl
