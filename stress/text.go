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

// MaxTextSize is the largest text block, in bytes, which can be placed on a
// single page.
const MaxTextSize = 1 << 28

// checkTextSize returns an error wrapping ErrInvalidConfig, if the text
// block for token and n would exceed MaxTextSize.
func checkTextSize(token string, n int) error {
	l := len(strings.TrimSpace(token))
	if l == 0 || n <= MaxTextSize/(l+1) {
		return nil
	}
	return goerr.Wrap(ErrInvalidConfig, "text block too large",
		goerr.V("token_length", l), goerr.V("repeat", n), goerr.V("limit", MaxTextSize))
}

// Text returns the text block for one page: token repeated n times,
// separated by single spaces.
//
// Surrounding white space is removed from the token first, so that
// "STRESS TEST " and "STRESS TEST" give the same block.
//
// The result is only bounded by n.  Callers should keep the text below
// MaxTextSize, as [Config.Validate] and [Generator.AddPageWithText] do.
func Text(token string, n int) string {
	token = strings.TrimSpace(token)
	if token == "" || n <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(min(n, MaxTextSize/(len(token)+1)) * (len(token) + 1))
	for i := range n {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token)
	}
	return b.String()
}

// standardFonts maps lower-case font names to the names of the PDF
// standard fonts.  The aliases follow the conventions of FPDF.
var standardFonts = map[string]string{
	"arial":          "Helvetica",
	"helvetica":      "Helvetica",
	"arial-bold":     "Helvetica-Bold",
	"helvetica-bold": "Helvetica-Bold",
	"times":          "Times-Roman",
	"times-roman":    "Times-Roman",
	"times-bold":     "Times-Bold",
	"courier":        "Courier",
	"courier-bold":   "Courier-Bold",
}

// StandardFont returns the PDF standard font name for the given font name,
// for example "Helvetica" for "Arial".
func StandardFont(name string) (string, bool) {
	res, ok := standardFonts[strings.ToLower(strings.TrimSpace(name))]
	return res, ok
}
