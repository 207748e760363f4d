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

package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"myopengl/curated"
	"myopengl/logger"
)

type glfwWindow struct {
	handlers
	window *glfw.Window
}

// NewGLFW creates a window using GLFW.
func NewGLFW(cfg Config) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, curated.Errorf(Error, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, contextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, contextMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, curated.Errorf(Error, err)
	}
	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	plt := &glfwWindow{
		window: window,
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width int, height int) {
		plt.resize(width, height)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
			plt.key(KeyEscape)
		case glfw.KeyF5:
			plt.key(KeyReload)
		case glfw.KeyW:
			plt.key(KeyWireframe)
		}
	})

	logger.Logf(logger.Allow, "platform", "glfw %s", glfw.GetVersionString())

	return plt, nil
}

func (plt *glfwWindow) ShouldClose() bool {
	return plt.window.ShouldClose()
}

func (plt *glfwWindow) ProcessEvents() {
	glfw.PollEvents()
}

func (plt *glfwWindow) Swap() {
	plt.window.SwapBuffers()
}

func (plt *glfwWindow) FramebufferSize() (int, int) {
	return plt.window.GetFramebufferSize()
}

func (plt *glfwWindow) Time() float64 {
	return glfw.GetTime()
}

func (plt *glfwWindow) Destroy() {
	if plt.window != nil {
		plt.window.Destroy()
		plt.window = nil
	}
	glfw.Terminate()
}
