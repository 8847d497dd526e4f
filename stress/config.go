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
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Default values for the fields of a Config.
const (
	DefaultPages      = 50000
	DefaultToken      = "STRESS TEST"
	DefaultRepeat     = 500
	DefaultFont       = "Arial"
	DefaultFontSize   = 12
	DefaultLineHeight = 10 * MM
	DefaultPaper      = "A4"
	DefaultEngine     = "native"
	DefaultOutput     = "massive_stress_test.pdf"
)

// Config describes one generation run.
type Config struct {
	// Pages is the number of pages to add.
	Pages int

	// Token is the string which is repeated to fill each page.
	Token string

	// Repeat is the number of repetitions of Token per page.
	Repeat int

	// Font is the name of one of the PDF standard fonts.  "Arial" is
	// accepted as an alias for Helvetica.
	Font string

	// FontSize is the font size in PDF units.
	FontSize float64

	// LineHeight is the distance between consecutive baselines, in PDF units.
	LineHeight float64

	// Paper is the name of the page size, for example "A4" or "Letter".
	Paper string

	// AutoPageBreak, if set, continues text which does not fit onto a
	// page on a new page.  Otherwise, overflowing lines are placed below
	// the bottom edge of the page.
	AutoPageBreak bool

	// Engine selects the PDF library used to build the document.
	Engine string

	// Output is the name of the output file.
	Output string

	// Atomic, if set, makes Finalize write to a temporary file which then
	// replaces Output.  Otherwise a failed write can leave a truncated file
	// behind.
	Atomic bool
}

// Default returns the configuration of the classic stress test:
// 50,000 A4 pages, each holding "STRESS TEST" 500 times in 12pt Helvetica.
func Default() *Config {
	return &Config{
		Pages:         DefaultPages,
		Token:         DefaultToken,
		Repeat:        DefaultRepeat,
		Font:          DefaultFont,
		FontSize:      DefaultFontSize,
		LineHeight:    DefaultLineHeight,
		Paper:         DefaultPaper,
		AutoPageBreak: true,
		Engine:        DefaultEngine,
		Output:        DefaultOutput,
	}
}

// Validate checks the configuration for consistency.
// All errors returned wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Pages < 0 {
		return goerr.Wrap(ErrInvalidConfig, "negative page count", goerr.V("pages", c.Pages))
	}
	if c.Repeat < 0 {
		return goerr.Wrap(ErrInvalidConfig, "negative repeat count", goerr.V("repeat", c.Repeat))
	}
	if c.Repeat > 0 && strings.TrimSpace(c.Token) == "" {
		return goerr.Wrap(ErrInvalidConfig, "empty token")
	}
	if err := checkTextSize(c.Token, c.Repeat); err != nil {
		return err
	}
	if _, ok := StandardFont(c.Font); !ok {
		return goerr.Wrap(ErrInvalidConfig, "unknown font", goerr.V("font", c.Font))
	}
	if !(c.FontSize > 0) {
		return goerr.Wrap(ErrInvalidConfig, "font size must be positive", goerr.V("font_size", c.FontSize))
	}
	if !(c.LineHeight > 0) {
		return goerr.Wrap(ErrInvalidConfig, "line height must be positive", goerr.V("line_height", c.LineHeight))
	}
	paper, ok := LookupPaper(c.Paper)
	if !ok {
		return goerr.Wrap(ErrInvalidConfig, "unknown paper size",
			goerr.V("paper", c.Paper), goerr.V("known", PaperNames()))
	}
	if paper.TextWidth() < c.FontSize {
		return goerr.Wrap(ErrInvalidConfig, "font too large for the page", goerr.V("font_size", c.FontSize))
	}
	if c.Output == "" {
		return goerr.Wrap(ErrInvalidConfig, "missing output file name")
	}
	return nil
}

// PaperSize returns the page size.
// The configuration must have been validated.
func (c *Config) PaperSize() PaperSize {
	p, _ := LookupPaper(c.Paper)
	return p
}

// StandardFont returns the PDF standard font name of c.Font.
// The configuration must have been validated.
func (c *Config) StandardFont() string {
	name, _ := StandardFont(c.Font)
	return name
}

// Text returns the text block written onto every page.
func (c *Config) Text() string {
	return Text(c.Token, c.Repeat)
}

// Baseline returns the distance from the top edge of a line cell to the
// baseline of the text in that cell.
func (c *Config) Baseline() float64 {
	return c.LineHeight/2 + 0.3*c.FontSize
}
