// seehuhn.de/go/pdfstress - generate oversized PDF files for stress testing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package profile records CPU and heap profiles of a stress test run.
package profile

import (
	"errors"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/m-mizutani/goerr/v2"
)

// Profiler collects the profiles requested on the command line.
type Profiler struct {
	cpu     *os.File
	memPath string
}

// Start begins CPU profiling if cpuPath is non-empty.  A heap profile is
// written to memPath, if non-empty, when the profiler is stopped.
func Start(cpuPath, memPath string) (*Profiler, error) {
	p := &Profiler{memPath: memPath}
	if cpuPath == "" {
		return p, nil
	}

	f, err := os.Create(cpuPath)
	if err != nil {
		return nil, goerr.Wrap(err, "cannot create CPU profile", goerr.V("path", cpuPath))
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()
		return nil, goerr.Wrap(err, "cannot start CPU profile", goerr.V("path", cpuPath))
	}
	p.cpu = f
	return p, nil
}

// Stop ends CPU profiling and writes the heap profile.
// It is safe to call Stop more than once.
func (p *Profiler) Stop() error {
	var errs []error
	if p.cpu != nil {
		pprof.StopCPUProfile()
		errs = append(errs, p.cpu.Close())
		p.cpu = nil
	}
	if p.memPath != "" {
		errs = append(errs, writeHeap(p.memPath))
		p.memPath = ""
	}
	return errors.Join(errs...)
}

func writeHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "cannot create memory profile", goerr.V("path", path))
	}
	defer f.Close()

	// collect up-to-date statistics
	runtime.GC()
	err = pprof.Lookup("allocs").WriteTo(f, 0)
	if err != nil {
		return goerr.Wrap(err, "cannot write memory profile", goerr.V("path", path))
	}
	return f.Close()
}

// Memory describes the memory use of the process.
type Memory struct {
	// HeapInuse is the number of bytes in in-use heap spans.
	HeapInuse uint64

	// Sys is the total memory obtained from the operating system.
	Sys uint64

	// NumGC counts completed garbage collection cycles.
	NumGC uint32
}

// ReadMemory returns the current memory statistics.
func ReadMemory() Memory {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Memory{
		HeapInuse: m.HeapInuse,
		Sys:       m.Sys,
		NumGC:     m.NumGC,
	}
}
