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

// Package version reports the name of the application and the version of the
// build. The version number can be set at build time with:
//
//	go build -ldflags "-X myopengl/version.number=v0.1.0"
//
// If no number is set the version is taken from the VCS information embedded
// by the Go toolchain, if it's available.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the application. Used in window titles and
// for the resources directory.
const ApplicationName = "myopengl"

// set by the linker
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Title returns a string suitable for a window title.
func Title(example string) string {
	if example == "" {
		return ApplicationName
	}
	return fmt.Sprintf("%s - %s", ApplicationName, example)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	} else {
		version = number
	}
}
