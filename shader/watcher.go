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

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"myopengl/curated"
	"myopengl/logger"
)

// WatcherError is the pattern used for errors from NewWatcher().
const WatcherError = "shader watcher: %v"

// Watcher notices changes to the source files of one or more shaders. Shaders
// that were not loaded from disk are ignored.
//
// File system events are received on a separate goroutine but the Watcher
// never calls GL. The render thread should call Poll() once per frame and
// reload the shaders it returns.
type Watcher struct {
	watcher *fsnotify.Watcher

	// cleaned path of source file -> shaders using that file. not changed
	// after NewWatcher() returns
	files map[string][]*Shader

	crit    sync.Mutex
	pending []*Shader

	done      chan bool
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWatcher starts watching the source files of the shaders.
//
// The directory containing each file is watched rather than the file itself.
// Many editors save a file by writing a new file and renaming it over the
// original, which would otherwise end the watch.
func NewWatcher(shaders ...*Shader) (*Watcher, error) {
	w := &Watcher{
		files: make(map[string][]*Shader),
		done:  make(chan bool),
	}

	var err error
	w.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(WatcherError, err)
	}

	dirs := make(map[string]bool)

	for _, sh := range shaders {
		if !sh.Reloadable() {
			continue
		}

		vert, frag := sh.Files()
		for _, f := range []string{vert, frag} {
			f, err = filepath.Abs(f)
			if err != nil {
				w.watcher.Close()
				return nil, curated.Errorf(WatcherError, err)
			}
			w.files[f] = append(w.files[f], sh)
			dirs[filepath.Dir(f)] = true
		}
	}

	for d := range dirs {
		if err := w.watcher.Add(d); err != nil {
			w.watcher.Close()
			return nil, curated.Errorf(WatcherError, err)
		}
		logger.Logf(logger.Allow, "watcher", "watching %s", d)
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			shaders, ok := w.files[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			w.crit.Lock()
			for _, sh := range shaders {
				w.add(sh)
			}
			w.crit.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "watcher", err)
		}
	}
}

// add shader to pending list if it isn't already there. must be called with
// the critical section locked.
func (w *Watcher) add(sh *Shader) {
	for _, p := range w.pending {
		if p == sh {
			return
		}
	}
	w.pending = append(w.pending, sh)
}

// Poll returns the shaders whose source files have changed since the previous
// call to Poll(). Each shader appears at most once however many file events
// were received. Returns nil if nothing has changed.
func (w *Watcher) Poll() []*Shader {
	w.crit.Lock()
	defer w.crit.Unlock()

	p := w.pending
	w.pending = nil
	return p
}

// Close stops watching. Pending changes are discarded. Calling Close() more
// than once has no further effect.
func (w *Watcher) Close() error {
	var err error

	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()

		w.crit.Lock()
		w.pending = nil
		w.crit.Unlock()
	})

	if err != nil {
		return curated.Errorf(WatcherError, err)
	}
	return nil
}
