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

// Package prefs facilitates the storage of preferences to disk. Preference
// values are typed (Bool, Int, Float, String) and are registered with a Disk
// instance under a key:
//
//	dsk, err := prefs.NewDisk(pth)
//	var vsync prefs.Bool
//	err = dsk.Add("vsync", &vsync)
//	err = dsk.Load()
//
// The preferences file is a plain text file with one "key :: value" entry per
// line, preceded by a warning not to edit the file by hand. Entries in the file
// that have not been registered with the Disk instance are preserved when the
// file is saved, so different parts of the program can share the same file.
//
// Each preference type can be given a hook function that is called after the
// value has been set. This is useful for applying the preference to the live
// system as soon as it changes.
package prefs
