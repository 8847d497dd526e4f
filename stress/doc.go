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

// Package stress generates very large PDF documents, for testing how PDF
// consumers cope with resource-hungry input.
//
// A [Generator] owns one in-memory document.  Every call to
// [Generator.AddPageWithText] appends a page holding a block of repeated
// text, laid out with wrapping multi-line semantics.  [Generator.Finalize]
// serializes the accumulated document to disk exactly once:
//
//	Uninitialized → Initialized → (Accumulating)* → Finalized
//
// The PDF itself is produced by an [Engine].  The engines live in the
// sub-packages of seehuhn.de/go/pdfstress/engine.
//
// [Generate] runs the complete job described by a [Config]:
//
//	cfg := stress.Default()
//	cfg.Pages = 100
//	newEngine, err := engine.Lookup(cfg.Engine)
//	...
//	res, err := stress.Generate(ctx, cfg, newEngine, nil)
package stress
