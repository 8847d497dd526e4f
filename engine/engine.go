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

// Package engine selects a PDF engine by name.
package engine

import (
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"seehuhn.de/go/pdfstress/engine/fpdf"
	"seehuhn.de/go/pdfstress/engine/native"
	"seehuhn.de/go/pdfstress/stress"
)

var engines = map[string]stress.NewEngineFunc{
	"native": func(cfg *stress.Config) (stress.Engine, error) {
		e, err := native.New(cfg)
		if err != nil {
			return nil, err
		}
		return e, nil
	},
	"fpdf": func(cfg *stress.Config) (stress.Engine, error) {
		e, err := fpdf.New(cfg)
		if err != nil {
			return nil, err
		}
		return e, nil
	},
}

// Lookup returns the constructor for the named engine.
// Names are case-insensitive.
func Lookup(name string) (stress.NewEngineFunc, error) {
	newEngine, ok := engines[strings.ToLower(name)]
	if !ok {
		return nil, goerr.Wrap(stress.ErrInvalidConfig, "unknown engine",
			goerr.V("engine", name), goerr.V("known", Names()))
	}
	return newEngine, nil
}

// Names lists the available engines.
func Names() []string {
	res := make([]string, 0, len(engines))
	for name := range engines {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
