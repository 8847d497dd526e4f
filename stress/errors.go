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

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrInvalidConfig is returned (wrapped) when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFinalized is returned when a finalized document is used again.
	ErrFinalized = errors.New("document already finalized")

	// ErrNotInitialized is returned by the methods of a zero Generator.
	ErrNotInitialized = errors.New("document not initialized")
)

// TagResourceFailure marks errors caused by running out of a resource while
// building or writing a document: memory exhaustion reported by the engine,
// or I/O failures on the output file.
var TagResourceFailure = goerr.NewTag("resource_failure")

// IsResourceFailure reports whether err is a ResourceFailure.
func IsResourceFailure(err error) bool {
	return goerr.HasTag(err, TagResourceFailure)
}
