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

// Package pdfops post-processes stress test files with pdfcpu.
//
// The operations work on files.  Where an output name equal to the input
// name is allowed, pdfcpu writes to a temporary file which then replaces
// the input.
package pdfops

import (
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// newConfig returns a pdfcpu configuration for reading generated files.
func newConfig() *model.Configuration {
	// pdfcpu otherwise creates a configuration directory on first use.
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Optimize writes a compacted copy of in to out.  Duplicate objects, for
// example the content streams of identical pages, are stored only once.
func Optimize(in, out string) error {
	err := api.OptimizeFile(in, out, newConfig())
	if err != nil {
		return goerr.Wrap(err, "cannot optimize file", goerr.V("in", in), goerr.V("out", out))
	}
	return nil
}

// PageCount returns the number of pages in a file.
func PageCount(path string) (int, error) {
	newConfig()
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, goerr.Wrap(err, "cannot count pages", goerr.V("path", path))
	}
	return n, nil
}
