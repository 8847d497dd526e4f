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

package pdfops

import (
	"fmt"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"seehuhn.de/go/pdfstress/stress"
)

// Watermark describes text drawn behind the content of every page.
type Watermark struct {
	Text string

	// FontSize is the size of the watermark text in points.
	FontSize float64

	// Rotation is the angle of the text, in degrees counter-clockwise.
	Rotation float64

	// Opacity is between 0 (invisible) and 1 (opaque).
	Opacity float64
}

// NewWatermark returns a watermark with the usual settings: 72pt Helvetica,
// rotated by 45 degrees, at 30% opacity.
func NewWatermark(text string) *Watermark {
	return &Watermark{
		Text:     text,
		FontSize: 72,
		Rotation: 45,
		Opacity:  0.3,
	}
}

func (wm *Watermark) check() error {
	switch {
	case wm.Text == "":
		return goerr.Wrap(stress.ErrInvalidConfig, "empty watermark text")
	case !(wm.FontSize > 0):
		return goerr.Wrap(stress.ErrInvalidConfig, "invalid watermark size", goerr.V("size", wm.FontSize))
	case !(wm.Opacity > 0 && wm.Opacity <= 1):
		return goerr.Wrap(stress.ErrInvalidConfig, "invalid watermark opacity", goerr.V("opacity", wm.Opacity))
	}
	return nil
}

// AddWatermark writes a copy of in to out, with the watermark added to
// every page.  The output name may equal the input name.
func AddWatermark(in, out string, wm *Watermark) error {
	if err := wm.check(); err != nil {
		return err
	}
	desc := fmt.Sprintf("fontname:Helvetica, points:%g, rotation:%g, opacity:%g, scalefactor:1 abs",
		wm.FontSize, wm.Rotation, wm.Opacity)
	err := api.AddTextWatermarksFile(in, out, nil, false, wm.Text, desc, newConfig())
	if err != nil {
		return goerr.Wrap(err, "cannot add watermark", goerr.V("in", in), goerr.V("out", out))
	}
	return nil
}

// Page number styles.
const (
	NumberPlain  = "plain"   // 1, 2, 3, ...
	NumberPage   = "page"    // Page 1, Page 2, ...
	NumberPageOf = "page-of" // Page 1 of N, ...
)

var numberFormats = map[string]string{
	NumberPlain:  "%p",
	NumberPage:   "Page %p",
	NumberPageOf: "Page %p of %P",
}

// numberOffsets maps the page number positions to the offset from the
// page edge, in points.
var numberOffsets = map[string]string{
	"bc": "0 20",
	"bl": "20 20",
	"br": "-20 20",
	"tc": "0 -20",
	"tl": "20 -20",
	"tr": "-20 -20",
}

// PageNumbers describes page numbers stamped onto every page.
type PageNumbers struct {
	// Style is one of NumberPlain, NumberPage or NumberPageOf.
	Style string

	// Position is one of "bc", "bl", "br", "tc", "tl" or "tr", for bottom or
	// top, and centre, left or right.
	Position string

	// FontSize is the size of the page numbers in points.
	FontSize float64
}

// NewPageNumbers returns plain 12pt page numbers at the bottom centre of
// the page.
func NewPageNumbers() *PageNumbers {
	return &PageNumbers{
		Style:    NumberPlain,
		Position: "bc",
		FontSize: 12,
	}
}

// NumberStyles lists the valid values for PageNumbers.Style.
func NumberStyles() []string {
	res := make([]string, 0, len(numberFormats))
	for style := range numberFormats {
		res = append(res, style)
	}
	slices.Sort(res)
	return res
}

// AddPageNumbers writes a copy of in to out, with page numbers on every
// page.  The output name may equal the input name.
func AddPageNumbers(in, out string, pn *PageNumbers) error {
	if err := pn.check(); err != nil {
		return err
	}
	desc := fmt.Sprintf("fontname:Helvetica, points:%g, position:%s, offset:%s, rotation:0, opacity:1, scalefactor:1 abs",
		pn.FontSize, pn.Position, numberOffsets[pn.Position])
	err := api.AddTextWatermarksFile(in, out, nil, true, numberFormats[pn.Style], desc, newConfig())
	if err != nil {
		return goerr.Wrap(err, "cannot add page numbers", goerr.V("in", in), goerr.V("out", out))
	}
	return nil
}

func (pn *PageNumbers) check() error {
	if _, ok := numberFormats[pn.Style]; !ok {
		return goerr.Wrap(stress.ErrInvalidConfig, "unknown page number style",
			goerr.V("style", pn.Style), goerr.V("known", NumberStyles()))
	}
	if _, ok := numberOffsets[pn.Position]; !ok {
		return goerr.Wrap(stress.ErrInvalidConfig, "unknown page number position",
			goerr.V("position", pn.Position))
	}
	if !(pn.FontSize > 0) {
		return goerr.Wrap(stress.ErrInvalidConfig, "invalid page number size", goerr.V("size", pn.FontSize))
	}
	return nil
}
