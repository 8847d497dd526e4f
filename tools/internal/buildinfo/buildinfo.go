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

// Package buildinfo reports the version of the pdfstress binaries.
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// Version returns the module version of the running binary.  For builds from
// a source checkout the abbreviated VCS revision is used instead.  If no
// information is available, "devel" is returned.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}
	return version(info)
}

func version(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "devel"
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return rev
}

// Libraries lists the versions of the PDF libraries linked into the binary,
// in the form "path@version".
func Libraries() []string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	var res []string
	for _, dep := range info.Deps {
		if isPDFLibrary(dep.Path) {
			res = append(res, dep.Path+"@"+dep.Version)
		}
	}
	return res
}

func isPDFLibrary(path string) bool {
	switch {
	case path == "seehuhn.de/go/pdf":
		return true
	case strings.HasPrefix(path, "github.com/go-pdf/"):
		return true
	case strings.HasPrefix(path, "github.com/pdfcpu/"):
		return true
	case path == "github.com/tsawler/tabula":
		return true
	}
	return false
}
