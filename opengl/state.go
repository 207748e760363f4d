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

	"myopengl/assert"
	"myopengl/curated"
	"myopengl/logger"
)

// Error is the pattern used for errors from the opengl package.
const Error = "opengl: %v"

// the goroutine that called Init(). OpenGL objects must be created on the
// thread that owns the context, which is only guaranteed if the goroutine
// has locked itself to that thread.
var owner assert.Goroutine

// Init loads the OpenGL function pointers for the current context. It should
// be called after the window platform has created the context and from the
// same goroutine.
func Init() error {
	owner.Claim()

	err := gl.Init()
	if err != nil {
		return curated.Errorf(Error, err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "opengl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "opengl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "opengl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf(logger.Allow, "opengl", "glsl: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return nil
}

// Clear the colour buffer with the colour.
func Clear(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Viewport sets the viewport to cover the entire framebuffer.
func Viewport(width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Wireframe draws polygons as outlines if set to true.
func Wireframe(set bool) {
	if set {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}
