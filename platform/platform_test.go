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

package platform_test

import (
	"testing"

	"myopengl/curated"
	"myopengl/platform"
	"myopengl/test"
)

func TestValid(t *testing.T) {
	test.ExpectSuccess(t, platform.Valid("glfw"))
	test.ExpectSuccess(t, platform.Valid("SDL"))
	test.ExpectFailure(t, platform.Valid("vulkan"))
	test.ExpectFailure(t, platform.Valid(""))
}

func TestUnknownPlatform(t *testing.T) {
	// an unknown platform is rejected before any window system is touched
	w, err := platform.New("vulkan", platform.Config{Width: 800, Height: 600})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, w == nil)
	test.ExpectSuccess(t, curated.Is(err, platform.Error))
	test.ExpectSuccess(t, curated.Has(err, platform.UnknownPlatform))
}

func TestKeyString(t *testing.T) {
	test.ExpectEquality(t, platform.KeyEscape.String(), "escape")
	test.ExpectEquality(t, platform.KeyReload.String(), "reload")
	test.ExpectEquality(t, platform.KeyWireframe.String(), "wireframe")
}
