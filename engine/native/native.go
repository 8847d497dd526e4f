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

// Package native builds stress test documents with seehuhn.de/go/pdf.
//
// Pages are written to an in-memory PDF file as soon as they are complete.
// The finished file is copied to the output when the document is written.
package native

import (
	"bytes"
	"errors"
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics/content"
	"seehuhn.de/go/pdf/graphics/content/builder"

	"seehuhn.de/go/pdfstress/stress"
	"seehuhn.de/go/pdfstress/wrap"
)

// Engine is a PDF document under construction.
type Engine struct {
	doc *document.MultiPage
	buf *bytes.Buffer

	setFont func(b *builder.Builder)
	measure *builder.Builder
	widths  map[string]float64

	paper      stress.PaperSize
	lineHeight float64
	baseline   float64
	perPage    int

	numPages int
	written  bool
}

var (
	errWritten = errors.New("document already written")
	errClosed  = errors.New("document closed")
)

// New creates an empty document for the given configuration.
func New(cfg *stress.Config) (*Engine, error) {
	paper := cfg.PaperSize()
	buf := &bytes.Buffer{}
	doc, err := document.WriteMultiPage(buf, &pdf.Rectangle{URx: paper.Width, URy: paper.Height}, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	F := standard.Font(cfg.StandardFont()).New()
	size := cfg.FontSize
	setFont := func(b *builder.Builder) {
		b.TextSetFont(F, size)
	}

	// Text widths are measured on a separate builder, so that the
	// content streams of the pages only contain what is shown.
	measure := builder.New(content.Page, nil)
	setFont(measure)
	if measure.Err != nil {
		return nil, measure.Err
	}

	e := &Engine{
		doc:        doc,
		buf:        buf,
		setFont:    setFont,
		measure:    measure,
		widths:     make(map[string]float64),
		paper:      paper,
		lineHeight: cfg.LineHeight,
		baseline:   cfg.Baseline(),
	}
	if cfg.AutoPageBreak {
		e.perPage = wrap.PerPage(stress.Margin, paper.Height-stress.BreakMargin, cfg.LineHeight)
	}
	return e, nil
}

// AddPage implements the [stress.Engine] interface.
func (e *Engine) AddPage(text string) error {
	if e.written {
		return errWritten
	}
	if e.doc == nil {
		return errClosed
	}

	lines := wrap.Lines(text, e.paper.TextWidth(), e.width)
	if e.measure.Err != nil {
		return e.measure.Err
	}

	for _, chunk := range wrap.Pages(lines, e.perPage) {
		page := e.doc.AddPage()
		e.numPages++
		e.setFont(page.Builder)
		e.showLines(page, chunk)
		err := page.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// width returns the width of s in the document font.
func (e *Engine) width(s string) float64 {
	w, ok := e.widths[s]
	if !ok {
		w = e.measure.TextLayout(nil, s).TotalWidth()
		e.widths[s] = w
	}
	return w
}

// showLines places lines in the text cell at the top of the page.
func (e *Engine) showLines(page *document.Page, lines []string) {
	if len(lines) == 0 {
		return
	}

	x := stress.Margin + stress.CellPadding
	y := e.paper.Height - stress.Margin - e.baseline

	page.TextBegin()
	for i, line := range lines {
		switch i {
		case 0:
			page.TextFirstLine(x, y)
		case 1:
			page.TextSecondLine(0, -e.lineHeight)
		default:
			page.TextNextLine()
		}
		page.TextShow(line)
	}
	page.TextEnd()
}

// NumPages implements the [stress.Engine] interface.
func (e *Engine) NumPages() int {
	return e.numPages
}

// WriteTo implements the [stress.Engine] interface.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	if e.written {
		return 0, errWritten
	}
	if e.doc == nil {
		return 0, errClosed
	}
	e.written = true

	// A PDF page tree cannot be empty.
	if e.numPages == 0 {
		page := e.doc.AddPage()
		e.numPages++
		err := page.Close()
		if err != nil {
			return 0, err
		}
	}

	err := e.doc.Close()
	if err != nil {
		return 0, err
	}
	return e.buf.WriteTo(w)
}

// Close implements the [stress.Engine] interface.
func (e *Engine) Close() error {
	e.doc = nil
	e.buf = nil
	e.widths = nil
	return nil
}
