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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"myopengl/logger"
	"myopengl/shader"
	"myopengl/test"
)

// stubGL hands out handles and fails to compile any source containing the word
// "broken". Uniforms are ignored.
type stubGL struct {
	next    uint32
	sources map[uint32]string
	deleted []uint32
}

func newStubGL() *stubGL {
	return &stubGL{next: 1, sources: make(map[uint32]string)}
}

func (gl *stubGL) handle() uint32 {
	gl.next++
	return gl.next - 1
}

func (gl *stubGL) CreateShader(_ shader.Stage) uint32   { return gl.handle() }
func (gl *stubGL) ShaderSource(h uint32, source string) { gl.sources[h] = source }
func (gl *stubGL) CompileShader(_ uint32)               {}
func (gl *stubGL) DeleteShader(h uint32)                { delete(gl.sources, h) }
func (gl *stubGL) CreateProgram() uint32                { return gl.handle() }
func (gl *stubGL) AttachShader(_ uint32, _ uint32)      {}
func (gl *stubGL) LinkProgram(_ uint32)                 {}
func (gl *stubGL) UseProgram(_ uint32)                  {}

func (gl *stubGL) ShaderStatus(h uint32) (bool, string) {
	if strings.Contains(gl.sources[h], "broken") {
		return false, "0:1(1): error: syntax error"
	}
	return true, ""
}

func (gl *stubGL) ProgramStatus(_ uint32) (bool, string) {
	return true, ""
}

func (gl *stubGL) DeleteProgram(p uint32) {
	gl.deleted = append(gl.deleted, p)
}

func (gl *stubGL) GetUniformLocation(_ uint32, _ string) int32 { return -1 }
func (gl *stubGL) Uniform1i(_ int32, _ int32)                  {}
func (gl *stubGL) Uniform1f(_ int32, _ float32)                {}
func (gl *stubGL) Uniform3f(_ int32, _, _, _ float32)          {}
func (gl *stubGL) Uniform4f(_ int32, _, _, _, _ float32)       {}
func (gl *stubGL) UniformMatrix4fv(_ int32, _ *[16]float32)    {}

const (
	stubVertex   = "#version 330 core\nvoid main() {}\n"
	stubFragment = "#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
)

// fromFiles writes the sources to a new directory and loads a shader from them.
// returns the shader and the path of the fragment source.
func fromFiles(t *testing.T, gl shader.GL) (*shader.Shader, string) {
	t.Helper()
	dir := t.TempDir()
	vert := filepath.Join(dir, "stub.vert")
	frag := filepath.Join(dir, "stub.frag")
	test.DemandSuccess(t, os.WriteFile(vert, []byte(stubVertex), 0644))
	test.DemandSuccess(t, os.WriteFile(frag, []byte(stubFragment), 0644))

	sh, err := shader.NewFromFiles(gl, vert, frag)
	test.DemandSuccess(t, err)
	return sh, frag
}

func TestReload(t *testing.T) {
	gl := newStubGL()

	good, _ := fromFiles(t, gl)
	bad, badFrag := fromFiles(t, gl)

	// shaders from source are skipped
	embedded, err := shader.NewFromSource(gl, stubVertex, stubFragment)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, os.WriteFile(badFrag, []byte("broken"), 0644))

	goodID := good.ID()
	badID := bad.ID()
	embeddedID := embedded.ID()

	logger.Clear()
	reload([]*shader.Shader{good, bad, embedded})

	var log strings.Builder
	logger.Write(&log)

	// the failed reload is logged and the previous program is kept
	test.ExpectEquality(t, bad.ID(), badID)
	test.ExpectSuccess(t, strings.Contains(log.String(), "example: shader: compile"))
	test.ExpectSuccess(t, strings.Contains(log.String(), "syntax error"))

	// the successful reload replaces the program
	test.ExpectInequality(t, good.ID(), goodID)
	test.ExpectEquality(t, len(gl.deleted), 1)
	test.ExpectEquality(t, gl.deleted[0], goodID)

	test.ExpectEquality(t, embedded.ID(), embeddedID)
	test.ExpectFailure(t, strings.Contains(log.String(), "no source files"))
}
