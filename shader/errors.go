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

package shader

// Error is the pattern of every error returned by the shader package.
const Error = "shader: %v"

// Specific errors found in the chain of an Error.
const (
	FileError     = "file: %v"
	CompileError  = "compile %s: %s"
	LinkError     = "link: %s"
	AlreadyLoaded = "program %d already loaded"
	NoSourceFiles = "reload: no source files"
)

// info log text to use when the driver doesn't provide any.
const noInfoLog = "no information from driver"
