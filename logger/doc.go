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

// Package logger is the central log for the application. Entries are tagged
// with a short string naming the part of the program that made the entry, for
// example "shader" or "platform".
//
// Logging requests must be accompanied by a Permission value. The Allow value
// can be used when a log entry should always be made.
//
// The detail of a log entry can be a string, an error, a fmt.Stringer or any
// other value. Values other than those are formatted with the %v verb.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count. The central log holds a limited number of entries
// with the oldest entries being dropped first.
//
// Entries can be echoed to an io.Writer as they are made with SetEcho(). The
// Colorizer type can be used to decorate echoed output for a terminal.
package logger
