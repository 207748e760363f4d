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

// Package config describes each of the example programs. The description can
// be changed by loading a TOML file:
//
//	[shaders]
//	title = "shaders (hot reload)"
//	width = 1024
//	height = 768
//	vertex_shader = "my.vert"
//
// Keys that are not in the file keep their default value. Unknown keys are an
// error. A file containing the defaults can be created with Write().
package config

import (
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"myopengl/curated"
)

// Error is the pattern used for errors from the config package.
const Error = "config: %v"

// Specific errors found in the chain of an Error.
const (
	UnknownKeys    = "unknown keys: %s"
	UnknownExample = "unknown example: %s"
	InvalidValue   = "%s: %s"
)

// Example describes one example program.
type Example struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	ClearColor [4]float32 `toml:"clear_color"`

	// paths to GLSL source. not used by the triangle example, which uses
	// embedded shaders
	VertexShader   string `toml:"vertex_shader,omitempty"`
	FragmentShader string `toml:"fragment_shader,omitempty"`

	// path to the texture image. only used by the textures example
	Texture        string `toml:"texture,omitempty"`
	FlipTexture    bool   `toml:"flip_texture,omitempty"`
	MaxTextureSize int    `toml:"max_texture_size,omitempty"`
}

// Config is the description of every example.
type Config struct {
	Triangle Example `toml:"triangle"`
	Shaders  Example `toml:"shaders"`
	Textures Example `toml:"textures"`
}

var defaultClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

// Default returns the built in description of the examples.
func Default() Config {
	return Config{
		Triangle: Example{
			Title:      "triangle",
			Width:      800,
			Height:     600,
			ClearColor: defaultClearColor,
		},
		Shaders: Example{
			Title:          "shaders",
			Width:          800,
			Height:         600,
			ClearColor:     defaultClearColor,
			VertexShader:   "assets/shaders/shaders.vert",
			FragmentShader: "assets/shaders/shaders.frag",
		},
		Textures: Example{
			Title:          "textures",
			Width:          800,
			Height:         600,
			ClearColor:     defaultClearColor,
			VertexShader:   "assets/shaders/textures.vert",
			FragmentShader: "assets/shaders/textures.frag",
			Texture:        "assets/textures/container.png",
			FlipTexture:    true,
			MaxTextureSize: 2048,
		},
	}
}

// Load the TOML file over the default configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, curated.Errorf(Error, err)
	}

	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, 0, len(u))
		for _, k := range u {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, curated.Errorf(Error, curated.Errorf(UnknownKeys, strings.Join(keys, ", ")))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Write the configuration as TOML.
func Write(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return curated.Errorf(Error, err)
	}
	return nil
}

// Validate checks the values of every example.
func (cfg Config) Validate() error {
	for _, e := range []struct {
		name string
		ex   Example
	}{
		{name: "triangle", ex: cfg.Triangle},
		{name: "shaders", ex: cfg.Shaders},
		{name: "textures", ex: cfg.Textures},
	} {
		if err := e.ex.validate(); err != nil {
			return curated.Errorf(Error, curated.Errorf(InvalidValue, e.name, err))
		}
	}
	return nil
}

func (ex Example) validate() error {
	if ex.Width <= 0 || ex.Height <= 0 {
		return curated.Errorf("window size must be positive (%dx%d)", ex.Width, ex.Height)
	}
	for _, c := range ex.ClearColor {
		if c < 0.0 || c > 1.0 {
			return curated.Errorf("clear colour components must be between 0.0 and 1.0")
		}
	}
	if ex.MaxTextureSize < 0 {
		return curated.Errorf("maximum texture size cannot be negative")
	}
	return nil
}

// Example returns the description of the named example. The name is not case
// sensitive.
func (cfg Config) Example(name string) (Example, error) {
	switch strings.ToLower(name) {
	case "triangle":
		return cfg.Triangle, nil
	case "shaders":
		return cfg.Shaders, nil
	case "textures":
		return cfg.Textures, nil
	}
	return Example{}, curated.Errorf(Error, curated.Errorf(UnknownExample, name))
}
