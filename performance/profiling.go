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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"myopengl/curated"
)

// Error is the pattern used for errors from the performance package.
const Error = "performance: %v"

// Profile calls the run function. If cpuFile is not empty then a CPU profile
// of the run function is written to that file. If memFile is not empty then a
// heap profile is written to that file after the run function has returned.
func Profile(cpuFile string, memFile string, run func() error) error {
	err := cpuProfile(cpuFile, run)
	if err != nil {
		return err
	}
	return memProfile(memFile)
}

func cpuProfile(outFile string, run func() error) error {
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf(Error, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(Error, err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

func memProfile(outFile string) error {
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf(Error, err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(Error, err)
		}
	}

	return nil
}
