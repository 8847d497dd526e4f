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
	"slices"
	"strings"
)

// MM is the length of one millimetre in PDF units.
const MM = 72 / 25.4

// Geometry of the text cell.  Both engines use the same values, so that a
// given Config leads to the same line breaks and page breaks.
const (
	// Margin is the left, right and top page margin.
	Margin = 10 * MM

	// CellPadding is the horizontal padding inside the text cell.
	CellPadding = Margin / 10

	// BreakMargin is the distance from the bottom edge of the page below
	// which no text line is placed when automatic page breaks are enabled.
	BreakMargin = 2 * Margin
)

// PaperSize is the size of a page in PDF units.
type PaperSize struct {
	Width, Height float64
}

var papers = map[string]PaperSize{
	"a3":     {841.89, 1190.55},
	"a4":     {595.28, 841.89},
	"a5":     {420.94, 595.28},
	"letter": {612, 792},
	"legal":  {612, 1008},
}

// LookupPaper returns the paper size with the given name.
// Names are case-insensitive.
func LookupPaper(name string) (PaperSize, bool) {
	p, ok := papers[strings.ToLower(name)]
	return p, ok
}

// PaperNames lists the known paper sizes.
func PaperNames() []string {
	res := make([]string, 0, len(papers))
	for name := range papers {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// TextWidth returns the width available for a line of text.
func (p PaperSize) TextWidth() float64 {
	return p.Width - 2*Margin - 2*CellPadding
}
