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

package stress

import "io"

// Engine is an in-memory PDF document, built by some PDF library.
//
// The font and page geometry are fixed when the engine is created.
type Engine interface {
	// AddPage appends a new page and writes text onto it, wrapping lines
	// at the cell width.  If automatic page breaks are enabled, text which
	// does not fit is continued on further pages.
	AddPage(text string) error

	// NumPages returns the number of pages in the document so far,
	// including pages created by automatic page breaks.
	NumPages() int

	// WriteTo serializes the document.  It can be called only once.
	// If no pages have been added, a single blank page is written.
	WriteTo(w io.Writer) (int64, error)

	// Close releases the memory held by the document.
	Close() error
}

// NewEngineFunc creates an engine for a validated configuration.
type NewEngineFunc func(cfg *Config) (Engine, error)
