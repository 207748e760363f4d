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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns should be stored as a const string, suitably named
// and commented. For example, the shader package declares:
//
//	const CompileError = "compile %s: %s"
//
// and callers test for it with:
//
//	if curated.Has(err, shader.CompileError) {
//		...
//	}
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the error chain.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'curated'
// and false if the error is 'uncurated'. We can think of the difference as
// being 'expected' and 'unexpected' depending on how we choose to handle the
// result of the function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of chains
// as being composed of parts separated by the sub-string ': '. For example:
//
//	part 1: part 2: part 3
//
// So that a shader error wrapping another shader error reads:
//
//	shader: link: error: undefined variable
//
// and not:
//
//	shader: shader: link: error: undefined variable
//
// Curated errors also take part in the standard library errors package. Any
// value given to Errorf() that is itself an error is returned by Unwrap(), so
// errors.Is() and errors.As() will find, for example, an fs.ErrNotExist that
// caused a shader file error.
package curated
