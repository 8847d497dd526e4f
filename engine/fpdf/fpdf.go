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

// Package fpdf builds stress test documents with github.com/go-pdf/fpdf.
//
// FPDF keeps the complete document in memory until it is written, and
// places text using its MultiCell method.
package fpdf

import (
	"errors"
	"io"
	"strings"

	gofpdf "github.com/go-pdf/fpdf"

	"seehuhn.de/go/pdfstress/stress"
)

// Engine is a PDF document under construction.
type Engine struct {
	pdf        *gofpdf.Fpdf
	translate  func(string) string
	lineHeight float64
	written    bool
}

var (
	errWritten = errors.New("document already written")
	errClosed  = errors.New("document closed")
)

// New creates an empty document for the given configuration.
func New(cfg *stress.Config) (*Engine, error) {
	paper := cfg.PaperSize()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: paper.Width, Ht: paper.Height},
	})
	pdf.SetMargins(stress.Margin, stress.Margin, stress.Margin)
	pdf.SetCellMargin(stress.CellPadding)
	pdf.SetAutoPageBreak(cfg.AutoPageBreak, stress.BreakMargin)
	pdf.SetProducer("seehuhn.de/go/pdfstress", false)

	family, style := fontFamily(cfg.StandardFont())
	pdf.SetFont(family, style, cfg.FontSize)
	if err := pdf.Error(); err != nil {
		return nil, err
	}

	e := &Engine{
		pdf:        pdf,
		translate:  pdf.UnicodeTranslatorFromDescriptor(""),
		lineHeight: cfg.LineHeight,
	}
	return e, nil
}

// fontFamily converts a standard font name into an FPDF font family and
// style.
func fontFamily(name string) (family, style string) {
	family, variant, _ := strings.Cut(name, "-")
	if variant == "Bold" {
		style = "B"
	}
	return family, style
}

// AddPage implements the [stress.Engine] interface.
func (e *Engine) AddPage(text string) error {
	if e.written {
		return errWritten
	}
	if e.pdf == nil {
		return errClosed
	}

	e.pdf.AddPage()
	e.pdf.MultiCell(0, e.lineHeight, e.translate(text), "", "", false)
	return e.pdf.Error()
}

// NumPages implements the [stress.Engine] interface.
func (e *Engine) NumPages() int {
	if e.pdf == nil {
		return 0
	}
	return e.pdf.PageCount()
}

// WriteTo implements the [stress.Engine] interface.
//
// FPDF adds a blank page to documents without pages.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	if e.written {
		return 0, errWritten
	}
	if e.pdf == nil {
		return 0, errClosed
	}
	e.written = true

	cw := &countingWriter{w: w}
	err := e.pdf.Output(cw)
	return cw.n, err
}

// Close implements the [stress.Engine] interface.
func (e *Engine) Close() error {
	e.pdf = nil
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
