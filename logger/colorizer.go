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

package logger

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is dimmed and details that look like errors are drawn in red.
//
// Color is only applied if the underlying io.Writer is a terminal that
// supports it.
type Colorizer struct {
	out *termenv.Output
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: termenv.NewOutput(out)}
}

// Write implements the io.Writer interface. It expects to be given one log
// entry per call, as provided by the logger's echo mechanism.
func (c Colorizer) Write(p []byte) (int, error) {
	s := strings.TrimSuffix(string(p), "\n")

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		_, err := c.out.WriteString(s + "\n")
		return len(p), err
	}

	d := c.out.String(detail)
	if looksLikeError(detail) {
		d = d.Foreground(c.out.Color("1"))
	}

	_, err := c.out.WriteString(c.out.String(tag+":").Faint().String() + " " + d.String() + "\n")
	return len(p), err
}

func looksLikeError(detail string) bool {
	d := strings.ToLower(detail)
	return strings.Contains(d, "error") || strings.Contains(d, "fail")
}
