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

// Package platform creates a window with an OpenGL 3.3 core profile context
// and delivers window events to the frame loop.
//
// Two backends are available. GLFW is the default and SDL can be selected by
// name with New(). Both backends behave the same from the point of view of
// the frame loop: the Escape key closes the window, F5 and W are reported
// through the key handler and changes to the size of the framebuffer are
// reported through the resize handler.
//
// Windows must be created, used and destroyed on the main thread.
package platform

import (
	"strings"

	"myopengl/curated"
)

// Error is the pattern used for errors from the platform package.
const Error = "platform: %v"

// UnknownPlatform is found in the chain of an Error if New() is called with a
// name it doesn't recognise.
const UnknownPlatform = "unknown platform (%s)"

// Names of the available platforms.
const (
	GLFW = "GLFW"
	SDL  = "SDL"
)

// Config describes the window to create.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// OpenGL context version requested by every backend.
const (
	contextMajor = 3
	contextMinor = 3
)

// Key is a key press that is meaningful to the frame loop.
type Key int

// List of valid Key values.
const (
	KeyEscape Key = iota
	KeyReload
	KeyWireframe
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyReload:
		return "reload"
	case KeyWireframe:
		return "wireframe"
	}
	return "unknown key"
}

// Window is implemented by each platform backend.
type Window interface {
	// ShouldClose returns true once the window has been asked to close
	ShouldClose() bool

	// ProcessEvents handles all pending window events. Key and resize
	// handlers are called from ProcessEvents()
	ProcessEvents()

	// Swap the front and back buffers
	Swap()

	// FramebufferSize returns the size of the framebuffer in pixels. This may
	// differ from the window size on high density displays
	FramebufferSize() (int, int)

	// Time returns the number of seconds since the window was created
	Time() float64

	SetKeyHandler(func(Key))
	SetResizeHandler(func(width int, height int))

	// Destroy the window and context and shut down the backend
	Destroy()
}

// New creates a window using the named platform. The name is not case
// sensitive.
func New(name string, cfg Config) (Window, error) {
	switch strings.ToUpper(name) {
	case GLFW:
		return NewGLFW(cfg)
	case SDL:
		return NewSDL(cfg)
	}
	return nil, curated.Errorf(Error, curated.Errorf(UnknownPlatform, name))
}

// Valid returns true if the name is one of the available platforms.
func Valid(name string) bool {
	switch strings.ToUpper(name) {
	case GLFW, SDL:
		return true
	}
	return false
}

// handlers are shared by the backends.
type handlers struct {
	onKey    func(Key)
	onResize func(int, int)
}

func (h *handlers) SetKeyHandler(f func(Key)) {
	h.onKey = f
}

func (h *handlers) SetResizeHandler(f func(int, int)) {
	h.onResize = f
}

func (h *handlers) key(k Key) {
	if h.onKey != nil {
		h.onKey(k)
	}
}

func (h *handlers) resize(width int, height int) {
	if h.onResize != nil {
		h.onResize(width, height)
	}
}
