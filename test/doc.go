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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare two values of
// the same comparable type. ExpectApproximate() compares floating point values
// within a tolerance.
//
// The ExpectSuccess() and ExpectFailure() functions accept bool, error and nil
// values. A success value is true, a nil error or nil. A failure value is
// false or a non-nil error.
//
// The Demand*() variants stop the test immediately on failure.
//
// CompareWriter captures output written to it so that it can be compared with
// an expected string.
package test
