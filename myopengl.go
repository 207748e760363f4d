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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"myopengl/config"
	"myopengl/example"
	"myopengl/logger"
	"myopengl/modalflag"
	"myopengl/opengl"
	"myopengl/performance"
	"myopengl/platform"
	"myopengl/statsview"
	"myopengl/version"
)

// windowing systems and OpenGL contexts must be serviced from the main thread.
// locking the thread in init() guarantees the main goroutine stays on it.
func init() {
	runtime.LockOSThread()
}

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. this is
// required because the window platform and the OpenGL context must be created
// and used on the main thread.
type mainSync struct {
	state chan stateRequest

	// functions sent on the run channel are called on the main thread. the
	// result is returned on the result channel
	run    chan func() error
	result chan error
}

// onMainThread runs the function on the main thread and waits for it to
// finish.
func (sync *mainSync) onMainThread(f func() error) error {
	sync.run <- f
	return <-sync.result
}

// #mainthread
func main() {
	sync := &mainSync{
		state:  make(chan stateRequest),
		run:    make(chan func() error),
		result: make(chan error),
	}

	// the context is cancelled on ctrl-c. the frame loop ends when that
	// happens and the program shuts down normally
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(ctx, sync)

	done := false
	for !done {
		select {
		case f := <-sync.run:
			sync.result <- f()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	stop()
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to run
// the example on the main thread and to quit.
func launch(ctx context.Context, sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes(example.Triangle, example.Shaders, example.Textures, "CONFIG", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		// 10
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "CONFIG":
		err = writeConfig(md)

	case "VERSION":
		err = showVersion(md)

	default:
		err = runExample(ctx, md, sync)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func runExample(ctx context.Context, md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	plt := md.AddString("platform", platform.GLFW, "window platform: GLFW, SDL")
	configFile := md.AddString("config", "", "TOML file describing the examples")
	vsync := md.AddBool("vsync", true, "synchronise with the vertical refresh of the monitor")
	width := md.AddInt("width", 0, "window width (zero for the example default)")
	height := md.AddInt("height", 0, "window height (zero for the example default)")
	watch := md.AddBool("watch", false, "reload shaders when their source files change")
	log := md.AddBool("log", false, "echo log to stdout")
	fpsCap := md.AddInt("fpscap", 0, "maximum frames per second (zero for no limit)")
	cpuProfile := md.AddString("cpuprofile", "", "write cpu profile to file")
	memProfile := md.AddString("memprofile", "", "write heap profile to file on exit")
	stats := md.AddBool("statsview", false, "run stats server (requires statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}

	cfg := config.Default()
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	}

	exCfg, err := cfg.Example(md.Mode())
	if err != nil {
		return err
	}
	if *width > 0 {
		exCfg.Width = *width
	}
	if *height > 0 {
		exCfg.Height = *height
	}

	prf, err := newPreferences()
	if err != nil {
		return err
	}

	// command line arguments override the preference if they have been
	// specified explicitly
	if md.Visited("platform") {
		if !platform.Valid(*plt) {
			return fmt.Errorf("unknown platform: %s", *plt)
		}
		_ = prf.platform.Set(strings.ToUpper(*plt))
	}
	if md.Visited("vsync") {
		_ = prf.vsync.Set(*vsync)
	}

	ex, err := example.New(md.Mode(), opengl.Driver{}, exCfg)
	if err != nil {
		return err
	}

	if *fpsCap < 0 {
		return fmt.Errorf("fpscap cannot be negative")
	}

	err = performance.Profile(*cpuProfile, *memProfile, func() error {
		return sync.onMainThread(func() error {
			return runWindow(ctx, prf, ex, exCfg, example.Options{
				ClearColor: exCfg.ClearColor,
				Watch:      *watch,
				Wireframe:  &prf.wireframe,
				FPSCap:     *fpsCap,
			})
		})
	})
	if err != nil {
		return err
	}

	// save preferences before finishing successfully
	return prf.save()
}

// runWindow creates the window and runs the example in it. must be called on
// the main thread.
func runWindow(ctx context.Context, prf *preferences, ex example.Example, exCfg config.Example, opts example.Options) error {
	win, err := platform.New(prf.platform.String(), platform.Config{
		Title:  version.Title(exCfg.Title),
		Width:  exCfg.Width,
		Height: exCfg.Height,
		VSync:  prf.vsync.Get().(bool),
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	err = opengl.Init()
	if err != nil {
		return err
	}

	return example.Run(ctx, win, ex, opts)
}

func writeConfig(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Writes the default example configuration as TOML to stdout or to the named file.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return config.Write(os.Stdout, config.Default())
	case 1:
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		err = config.Write(f, config.Default())
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
