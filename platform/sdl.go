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
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"myopengl/curated"
	"myopengl/logger"
)

type sdlWindow struct {
	handlers

	window    *sdl.Window
	glContext sdl.GLContext

	shouldClose bool

	// performance counter value when window was created
	start uint64
}

// NewSDL creates a window using SDL.
func NewSDL(cfg Config) (Window, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(Error, fmt.Errorf("failed to initialize SDL2: %w", err))
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, contextMajor)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, contextMinor)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(Error, fmt.Errorf("failed to create window: %w", err))
	}

	plt := &sdlWindow{
		window: window,
	}

	plt.glContext, err = window.GLCreateContext()
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf(Error, fmt.Errorf("failed to create OpenGL context: %w", err))
	}
	err = window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf(Error, fmt.Errorf("failed to set current OpenGL context: %w", err))
	}

	if cfg.VSync {
		_ = sdl.GLSetSwapInterval(1)
	} else {
		_ = sdl.GLSetSwapInterval(0)
	}

	plt.start = sdl.GetPerformanceCounter()

	v := sdl.Version{}
	sdl.GetVersion(&v)
	logger.Logf(logger.Allow, "platform", "sdl %d.%d.%d", v.Major, v.Minor, v.Patch)

	return plt, nil
}

func (plt *sdlWindow) ShouldClose() bool {
	return plt.shouldClose
}

func (plt *sdlWindow) ProcessEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			plt.shouldClose = true

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				break
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				plt.shouldClose = true
				plt.key(KeyEscape)
			case sdl.K_F5:
				plt.key(KeyReload)
			case sdl.K_w:
				plt.key(KeyWireframe)
			}

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				plt.resize(plt.FramebufferSize())
			}
		}
	}
}

func (plt *sdlWindow) Swap() {
	plt.window.GLSwap()
}

func (plt *sdlWindow) FramebufferSize() (int, int) {
	w, h := plt.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (plt *sdlWindow) Time() float64 {
	return float64(sdl.GetPerformanceCounter()-plt.start) / float64(sdl.GetPerformanceFrequency())
}

func (plt *sdlWindow) Destroy() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		_ = plt.window.Destroy()
		plt.window = nil
	}
	sdl.Quit()
}
