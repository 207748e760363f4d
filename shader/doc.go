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

// Package shader loads, compiles and links a GLSL vertex and fragment shader
// pair into an OpenGL program.
//
// A Shader owns a single program handle. The handle is zero until a program
// has been loaded and is deleted exactly once, either by Destroy() or when a
// successful Reload() replaces it:
//
//	sh, err := shader.NewFromFiles(drv, "shaders.vert", "shaders.frag")
//	if err != nil {
//		return err
//	}
//	defer sh.Destroy()
//
//	sh.Use()
//	sh.SetFloat("offset", 0.5)
//
// The intermediate shader objects for each stage are always deleted, whether
// or not the program links.
//
// The package does not call OpenGL directly. Calls are made through the GL
// interface, which is implemented by the opengl package.
//
// All errors returned by the package are curated errors with the Error
// pattern. The chain will contain one of FileError, CompileError, LinkError,
// AlreadyLoaded or NoSourceFiles to indicate the specific problem.
package shader
