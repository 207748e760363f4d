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

package example

import (
	"context"
	"time"

	"myopengl/logger"
	"myopengl/opengl"
	"myopengl/performance"
	"myopengl/performance/limiter"
	"myopengl/platform"
	"myopengl/prefs"
	"myopengl/shader"
)

// Options for the frame loop.
type Options struct {
	ClearColor [4]float32

	// reload shaders when their source files change
	Watch bool

	// the W key toggles the value. may be nil, in which case wireframe
	// drawing is not available
	Wireframe *prefs.Bool

	// maximum number of frames per second. zero for no limit
	FPSCap int
}

// how often the frame rate is logged
const fpsInterval = 5 * time.Second

// Run the example in the window until the window is closed or the context is
// cancelled. The example is destroyed before Run() returns.
//
// Run() must be called from the thread that owns the OpenGL context.
func Run(ctx context.Context, win platform.Window, ex Example, opts Options) error {
	defer ex.Destroy()

	if err := ex.Setup(); err != nil {
		return err
	}

	var w *shader.Watcher
	if opts.Watch {
		var err error
		w, err = shader.NewWatcher(ex.Shaders()...)
		if err != nil {
			logger.Log(logger.Allow, "example", err)
		} else {
			defer w.Close()
		}
	}

	var lim *limiter.FpsLimiter
	if opts.FPSCap > 0 {
		var err error
		lim, err = limiter.NewFPSLimiter(opts.FPSCap)
		if err != nil {
			return err
		}
		defer lim.Stop()
	}

	loop(ctx, win, ex, opts, w, lim)

	return nil
}

// loop is the frame loop. the watcher and limiter may be nil.
func loop(ctx context.Context, win platform.Window, ex Example, opts Options, w *shader.Watcher, lim *limiter.FpsLimiter) {
	if opts.Wireframe != nil {
		opts.Wireframe.SetHookPost(func(v prefs.Value) error {
			opengl.Wireframe(v.(bool))
			return nil
		})
		defer opts.Wireframe.SetHookPost(nil)
		opengl.Wireframe(opts.Wireframe.Get().(bool))
	}

	win.SetKeyHandler(func(k platform.Key) {
		switch k {
		case platform.KeyReload:
			reload(ex.Shaders())
		case platform.KeyWireframe:
			if opts.Wireframe != nil {
				_ = opts.Wireframe.Set(!opts.Wireframe.Get().(bool))
			}
		}
	})
	win.SetResizeHandler(opengl.Viewport)

	opengl.Viewport(win.FramebufferSize())

	fps := performance.NewFPS(fpsInterval)

	for !win.ShouldClose() && ctx.Err() == nil {
		win.ProcessEvents()

		if w != nil {
			reload(w.Poll())
		}

		opengl.Clear(opts.ClearColor)
		ex.Render(float32(win.Time()))
		win.Swap()

		if rate, ok := fps.Frame(); ok {
			logger.Logf(logger.Allow, "example", "%.1f fps", rate)
		}

		if lim != nil {
			lim.Wait()
		}
	}
}

// reload every shader that was loaded from disk. a shader that fails to
// reload keeps its existing program.
func reload(list []*shader.Shader) {
	for _, sh := range list {
		if !sh.Reloadable() {
			continue
		}
		if err := sh.Reload(); err != nil {
			logger.Log(logger.Allow, "example", err)
		}
	}
}
