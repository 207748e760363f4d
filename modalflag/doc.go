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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("TRIANGLE", "SHADERS", "TEXTURES")
//	p, err := md.Parse()
//
// If the first non-flag argument matches one of the sub-modes (case
// insensitive) then that mode is selected and the argument is consumed.
// Otherwise the first sub-mode in the list is the default. The selected mode is
// returned by Mode() and the history of selected modes by Path().
//
// Flags for the selected mode are added after a call to NewMode(), followed by
// another call to Parse(). The remaining arguments are available through
// RemainingArgs() and GetArg().
//
// A "-help" flag is handled automatically. Parse() returns ParseHelp in that
// case and the help message will have been written to the Output io.Writer.
package modalflag
