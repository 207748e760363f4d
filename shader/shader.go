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
	"os"
	"strings"

	"myopengl/curated"
	"myopengl/logger"
)

// Shader is a linked vertex and fragment shader program.
type Shader struct {
	gl GL

	// zero if there is no program loaded
	id uint32

	// paths of the source files. empty if the program was loaded from source
	vertexPath   string
	fragmentPath string

	// uniform locations are looked up once per name and cached until the
	// program changes
	uniforms map[string]int32
}

// New returns a Shader with no program loaded.
func New(gl GL) *Shader {
	return &Shader{
		gl:       gl,
		uniforms: make(map[string]int32),
	}
}

// NewFromFiles is the preferred method of initialisation for the Shader type
// when the GLSL source is on disk. It creates a Shader and calls Load().
func NewFromFiles(gl GL, vertexPath string, fragmentPath string) (*Shader, error) {
	sh := New(gl)
	if err := sh.Load(vertexPath, fragmentPath); err != nil {
		return nil, err
	}
	return sh, nil
}

// NewFromSource creates a Shader from GLSL source in memory. Shaders created
// this way cannot be reloaded.
func NewFromSource(gl GL, vertexSource string, fragmentSource string) (*Shader, error) {
	sh := New(gl)
	if err := sh.LoadSource(vertexSource, fragmentSource); err != nil {
		return nil, err
	}
	return sh, nil
}

// Load reads the vertex and fragment shader source from disk, compiles and
// links them. It is an error to call Load() if a program is already loaded.
func (sh *Shader) Load(vertexPath string, fragmentPath string) error {
	if sh.id != 0 {
		return curated.Errorf(Error, curated.Errorf(AlreadyLoaded, sh.id))
	}

	id, err := sh.buildFromFiles(vertexPath, fragmentPath)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	sh.id = id
	sh.vertexPath = vertexPath
	sh.fragmentPath = fragmentPath
	logger.Logf(logger.Allow, "shader", "program %d from %s and %s", sh.id, vertexPath, fragmentPath)

	return nil
}

// LoadSource compiles and links the vertex and fragment shader source. It is
// an error to call LoadSource() if a program is already loaded.
func (sh *Shader) LoadSource(vertexSource string, fragmentSource string) error {
	if sh.id != 0 {
		return curated.Errorf(Error, curated.Errorf(AlreadyLoaded, sh.id))
	}

	id, err := sh.build(vertexSource, fragmentSource)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	sh.id = id
	logger.Logf(logger.Allow, "shader", "program %d from source", sh.id)

	return nil
}

// Reloadable returns true if the program was loaded from files on disk.
func (sh *Shader) Reloadable() bool {
	return sh.vertexPath != "" && sh.fragmentPath != ""
}

// Files returns the paths of the vertex and fragment shader source. The
// strings will be empty if the shader was created from source in memory.
func (sh *Shader) Files() (string, string) {
	return sh.vertexPath, sh.fragmentPath
}

// Reload the shader program from the files it was originally loaded from. The
// existing program is replaced only if the new program compiles and links. On
// error the existing program remains in place.
//
// The caller must call Use() and set uniforms again after a successful reload.
func (sh *Shader) Reload() error {
	if !sh.Reloadable() {
		return curated.Errorf(Error, curated.Errorf(NoSourceFiles))
	}

	id, err := sh.buildFromFiles(sh.vertexPath, sh.fragmentPath)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	old := sh.id
	sh.id = id
	clear(sh.uniforms)

	if old != 0 {
		sh.gl.DeleteProgram(old)
	}
	logger.Logf(logger.Allow, "shader", "program %d replaced by %d", old, sh.id)

	return nil
}

// ID returns the program handle. Zero if no program is loaded.
func (sh *Shader) ID() uint32 {
	return sh.id
}

// Loaded returns true if there is a program loaded.
func (sh *Shader) Loaded() bool {
	return sh.id != 0
}

// Destroy deletes the program. It is safe to call more than once.
func (sh *Shader) Destroy() {
	if sh.id != 0 {
		sh.gl.DeleteProgram(sh.id)
		sh.id = 0
	}
	clear(sh.uniforms)
}

// buildFromFiles reads both files before compiling either stage.
func (sh *Shader) buildFromFiles(vertexPath string, fragmentPath string) (uint32, error) {
	vertexSource, err := readFile(vertexPath)
	if err != nil {
		return 0, err
	}

	fragmentSource, err := readFile(fragmentPath)
	if err != nil {
		return 0, err
	}

	return sh.build(vertexSource, fragmentSource)
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		logger.Logf(logger.Allow, "shader", "error reading %s: %v", path, err)
		return "", curated.Errorf(FileError, err)
	}
	return string(b), nil
}

// build compiles both stages and links them into a new program. the stage
// objects are deleted in all cases.
func (sh *Shader) build(vertexSource string, fragmentSource string) (uint32, error) {
	vert, err := sh.compile(Vertex, vertexSource)
	if err != nil {
		return 0, err
	}
	defer sh.gl.DeleteShader(vert)

	frag, err := sh.compile(Fragment, fragmentSource)
	if err != nil {
		return 0, err
	}
	defer sh.gl.DeleteShader(frag)

	return sh.link(vert, frag)
}

func (sh *Shader) compile(stage Stage, source string) (uint32, error) {
	handle := sh.gl.CreateShader(stage)
	sh.gl.ShaderSource(handle, source)
	sh.gl.CompileShader(handle)

	if ok, log := sh.gl.ShaderStatus(handle); !ok {
		sh.gl.DeleteShader(handle)
		log = infoLog(log)
		logger.Logf(logger.Allow, "shader", "error compiling %s shader: %s", stage, log)
		return 0, curated.Errorf(CompileError, stage, log)
	}

	return handle, nil
}

func (sh *Shader) link(vert uint32, frag uint32) (uint32, error) {
	program := sh.gl.CreateProgram()
	sh.gl.AttachShader(program, vert)
	sh.gl.AttachShader(program, frag)
	sh.gl.LinkProgram(program)

	if ok, log := sh.gl.ProgramStatus(program); !ok {
		sh.gl.DeleteProgram(program)
		log = infoLog(log)
		logger.Logf(logger.Allow, "shader", "error linking shaders: %s", log)
		return 0, curated.Errorf(LinkError, log)
	}

	return program, nil
}

// infoLog tidies the info log returned by the driver.
func infoLog(log string) string {
	log = strings.TrimSpace(strings.TrimRight(log, "\x00"))
	if log == "" {
		return noInfoLog
	}
	return log
}
