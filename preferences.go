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
	"myopengl/platform"
	"myopengl/prefs"
	"myopengl/resources"
)

// name of the preferences file in the resources directory.
const prefsFile = "preferences"

// preferences that persist between runs of the program.
type preferences struct {
	dsk *prefs.Disk

	platform  prefs.String
	vsync     prefs.Bool
	wireframe prefs.Bool
}

func newPreferences() (*preferences, error) {
	p := &preferences{}

	// defaults. overwritten by the values in the preferences file
	_ = p.platform.Set(platform.GLFW)
	_ = p.vsync.Set(true)
	_ = p.wireframe.Set(false)

	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("platform", &p.platform)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vsync", &p.vsync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("wireframe", &p.wireframe)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	// a preferences file from another version of the program may name a
	// platform that isn't available
	if !platform.Valid(p.platform.String()) {
		_ = p.platform.Set(platform.GLFW)
	}

	return p, nil
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
