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

package main

import (
	"io"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/pdfstress/stress"
)

// printer formats numbers for the messages shown to the user.
var printer = message.NewPrinter(language.English)

// progressLine shows the number of pages written so far on a terminal.
type progressLine struct {
	w      io.Writer
	active bool
}

// newProgress returns a progress display, or nil if w is not a terminal.
func newProgress(w io.Writer) *progressLine {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return &progressLine{w: w}
}

// Func returns the callback for [stress.Generate].
func (p *progressLine) Func() stress.ProgressFunc {
	if p == nil {
		return nil
	}
	return p.update
}

func (p *progressLine) update(done, total int) {
	p.active = true
	printer.Fprintf(p.w, "\r%d / %d pages (%d%%)", done, total, 100*done/max(total, 1))
}

// Done ends the progress line.
func (p *progressLine) Done() {
	if p == nil || !p.active {
		return
	}
	io.WriteString(p.w, "\n")
	p.active = false
}
