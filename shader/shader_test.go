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

package shader_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"myopengl/curated"
	"myopengl/shader"
	"myopengl/test"
)

const vertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() {
	gl_Position = vec4(aPos, 1.0);
}
`

const fragmentSource = `#version 330 core
out vec4 FragColor;
void main() {
	FragColor = vec4(1.0, 1.0, 0.0, 1.0);
}
`

// writeSources writes the vertex and fragment source to a temporary directory
// and returns the paths.
func writeSources(t *testing.T, vert string, frag string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vertPath := filepath.Join(dir, "test.vert")
	fragPath := filepath.Join(dir, "test.frag")
	test.DemandSuccess(t, os.WriteFile(vertPath, []byte(vert), 0644))
	test.DemandSuccess(t, os.WriteFile(fragPath, []byte(frag), 0644))
	return vertPath, fragPath
}

func TestLoad(t *testing.T) {
	gl := newFakeGL()
	vert, frag := writeSources(t, vertexSource, fragmentSource)

	sh, err := shader.NewFromFiles(gl, vert, frag)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, sh.ID(), 0)
	test.ExpectSuccess(t, sh.Loaded())
	test.ExpectSuccess(t, sh.Reloadable())

	// both stage objects have been deleted and the program remains
	test.ExpectEquality(t, len(gl.shaders), 0)
	test.ExpectEquality(t, len(gl.deletedShaders), 2)
	test.ExpectEquality(t, len(gl.programs), 1)
	test.ExpectEquality(t, len(gl.programs[sh.ID()]), 2)

	v, f := sh.Files()
	test.ExpectEquality(t, v, vert)
	test.ExpectEquality(t, f, frag)

	sh.Use()
	test.ExpectEquality(t, gl.inUse, sh.ID())
}

func TestLoadSource(t *testing.T) {
	gl := newFakeGL()

	sh, err := shader.NewFromSource(gl, vertexSource, fragmentSource)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, sh.Loaded())
	test.ExpectFailure(t, sh.Reloadable())
	test.ExpectEquality(t, len(gl.shaders), 0)

	err = sh.Reload()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, shader.Error))
	test.ExpectSuccess(t, curated.Has(err, shader.NoSourceFiles))
}

func TestLoadTwice(t *testing.T) {
	gl := newFakeGL()
	vert, frag := writeSources(t, vertexSource, fragmentSource)

	sh, err := shader.NewFromFiles(gl, vert, frag)
	test.DemandSuccess(t, err)
	id := sh.ID()

	err = sh.Load(vert, frag)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, shader.AlreadyLoaded))
	test.ExpectEquality(t, sh.ID(), id)
	test.ExpectEquality(t, len(gl.programs), 1)
}

func TestMissingFile(t *testing.T) {
	gl := newFakeGL()
	vert, _ := writeSources(t, vertexSource, fragmentSource)

	sh, err := shader.NewFromFiles(gl, vert, filepath.Join(t.TempDir(), "missing.frag"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, sh == nil)
	test.ExpectSuccess(t, curated.Is(err, shader.Error))
	test.ExpectSuccess(t, curated.Has(err, shader.FileError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	// no GL objects are created if a file can't be read
	test.ExpectEquality(t, gl.next, 1)
}

func TestCompileError(t *testing.T) {
	for _, stage := range []shader.Stage{shader.Vertex, shader.Fragment} {
		gl := newFakeGL()

		vert := vertexSource
		frag := fragmentSource
		if stage == shader.Vertex {
			vert = "broken"
		} else {
			frag = "broken"
		}

		sh, err := shader.NewFromSource(gl, vert, frag)
		test.ExpectFailure(t, err, stage)
		test.ExpectSuccess(t, sh == nil, stage)
		test.ExpectSuccess(t, curated.Has(err, shader.CompileError), stage)
		test.ExpectSuccess(t, strings.Contains(err.Error(), "syntax error"), stage)
		test.ExpectSuccess(t, strings.Contains(err.Error(), stage.String()), stage)

		// every stage object created has been deleted and no program has
		// been created
		test.ExpectEquality(t, len(gl.shaders), 0, stage)
		test.ExpectEquality(t, len(gl.programs), 0, stage)
	}
}

func TestLinkError(t *testing.T) {
	gl := newFakeGL()

	sh, err := shader.NewFromSource(gl, vertexSource, "unlinkable")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, sh == nil)
	test.ExpectSuccess(t, curated.Has(err, shader.LinkError))

	// an empty info log is replaced with something meaningful
	test.ExpectSuccess(t, strings.Contains(err.Error(), "no information from driver"))

	test.ExpectEquality(t, len(gl.shaders), 0)
	test.ExpectEquality(t, len(gl.programs), 0)
	test.ExpectEquality(t, len(gl.deletedPrograms), 1)
}

func TestDestroy(t *testing.T) {
	gl := newFakeGL()

	sh, err := shader.NewFromSource(gl, vertexSource, fragmentSource)
	test.DemandSuccess(t, err)
	id := sh.ID()

	sh.Destroy()
	sh.Destroy()
	test.ExpectEquality(t, sh.ID(), 0)
	test.ExpectFailure(t, sh.Loaded())
	test.ExpectEquality(t, count(gl.deletedPrograms, id), 1)
	test.ExpectEquality(t, len(gl.deletedPrograms), 1)

	// a destroyed shader can be loaded again
	test.ExpectSuccess(t, sh.LoadSource(vertexSource, fragmentSource))
	test.ExpectInequality(t, sh.ID(), id)
}

func TestDestroyUnloaded(t *testing.T) {
	gl := newFakeGL()
	sh := shader.New(gl)
	sh.Destroy()
	test.ExpectEquality(t, len(gl.deletedPrograms), 0)
}

func TestReload(t *testing.T) {
	gl := newFakeGL()
	vert, frag := writeSources(t, vertexSource, fragmentSource)

	sh, err := shader.NewFromFiles(gl, vert, frag)
	test.DemandSuccess(t, err)
	first := sh.ID()

	// a failed reload leaves the first program in place
	test.DemandSuccess(t, os.WriteFile(frag, []byte("broken"), 0644))
	err = sh.Reload()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, shader.CompileError))
	test.ExpectEquality(t, sh.ID(), first)
	test.ExpectEquality(t, count(gl.deletedPrograms, first), 0)
	test.ExpectEquality(t, len(gl.programs), 1)

	// a successful reload replaces the program and deletes the first
	test.DemandSuccess(t, os.WriteFile(frag, []byte(fragmentSource), 0644))
	test.ExpectSuccess(t, sh.Reload())
	test.ExpectInequality(t, sh.ID(), first)
	test.ExpectEquality(t, count(gl.deletedPrograms, first), 1)
	test.ExpectEquality(t, len(gl.programs), 1)

	// the replaced program is deleted only once
	sh.Destroy()
	test.ExpectEquality(t, count(gl.deletedPrograms, first), 1)
	test.ExpectEquality(t, len(gl.programs), 0)
}

func TestUnloadedPanics(t *testing.T) {
	sh := shader.New(newFakeGL())

	expectPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic on unloaded shader", name)
			}
		}()
		f()
	}

	expectPanic("Use", sh.Use)
	expectPanic("SetInt", func() { sh.SetInt("texture1", 0) })
	expectPanic("SetFloat", func() { sh.SetFloat("offset", 0.5) })
}
