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

// Package verify inspects generated stress test files.
//
// Structural validation and page counting use pdfcpu, the text on a sample
// page is extracted with tabula.  Neither shares code with the engines, so
// a file which passes [Check] can be read by independent implementations.
package verify

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/tsawler/tabula"

	"seehuhn.de/go/pdfstress/stress"
)

var (
	// ErrInvalid is returned by [Check] if pdfcpu rejects the file.
	ErrInvalid = errors.New("invalid PDF file")

	// ErrMismatch is returned by [Report.Match] if a file does not
	// correspond to the generation parameters.
	ErrMismatch = errors.New("file does not match expectation")
)

// Options control [Check].
type Options struct {
	// SamplePage is the 1-based page used for text extraction.
	// The default is the first page.
	SamplePage int

	// SkipValidation disables the structural check.
	SkipValidation bool
}

// Report summarizes a PDF file.
type Report struct {
	Path string
	Size int64

	// Pages is the number of physical pages.
	Pages int

	// Width and Height give the size of the first page in PDF units.
	Width, Height float64

	// Valid is true if the file passed the structural check.
	Valid bool

	// SampleText is the text found on the sample page.
	SampleText string
}

var disableConfigDir sync.Once

// Check reads the PDF file at path and returns a [Report].
func Check(ctx context.Context, path string, opt *Options) (*Report, error) {
	if opt == nil {
		opt = &Options{}
	}
	logger := ctxlog.From(ctx)

	// pdfcpu otherwise creates a configuration directory on first use.
	disableConfigDir.Do(api.DisableConfigDir)

	fi, err := os.Stat(path)
	if err != nil {
		return nil, goerr.Wrap(err, "cannot access file",
			goerr.V("path", path), goerr.Tag(stress.TagResourceFailure))
	}
	res := &Report{
		Path: path,
		Size: fi.Size(),
	}

	if !opt.SkipValidation {
		conf := model.NewDefaultConfiguration()
		conf.ValidationMode = model.ValidationRelaxed
		err = api.ValidateFile(path, conf)
		if err != nil {
			return res, goerr.Wrap(errors.Join(ErrInvalid, err), "validation failed",
				goerr.V("path", path))
		}
		res.Valid = true
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	res.Pages, err = api.PageCountFile(path)
	if err != nil {
		return res, goerr.Wrap(err, "cannot count pages", goerr.V("path", path))
	}
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return res, goerr.Wrap(err, "cannot read page size", goerr.V("path", path))
	}
	if len(dims) > 0 {
		res.Width = dims[0].Width
		res.Height = dims[0].Height
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	page := opt.SamplePage
	if page <= 0 {
		page = 1
	}
	if page > res.Pages {
		return res, goerr.Wrap(ErrMismatch, "sample page out of range",
			goerr.V("page", page), goerr.V("pages", res.Pages))
	}
	text, warnings, err := tabula.Open(path).Pages(page).Text()
	if err != nil {
		return res, goerr.Wrap(err, "cannot extract text",
			goerr.V("path", path), goerr.V("page", page))
	}
	if len(warnings) > 0 {
		logger.Debug("text extraction produced warnings",
			"page", page, "warnings", len(warnings))
	}
	res.SampleText = strings.TrimSpace(text)

	logger.Info("checked file",
		"path", path,
		"size", res.Size,
		"pages", res.Pages,
		"valid", res.Valid)
	return res, nil
}

// Expectation describes how a file was generated.
// Zero fields are not checked.
type Expectation struct {
	// Pages is the number of add-page operations.  Since one logical page may
	// span several physical pages, this is a lower bound for the page count.
	Pages int

	Token  string
	Repeat int
}

// Match checks whether r is consistent with exp.
//
// The sample text must consist of the words of the expected text block, or
// of a prefix of them if the block continues on the next page.
func (r *Report) Match(exp *Expectation) error {
	if exp.Pages > 0 && r.Pages < exp.Pages {
		return goerr.Wrap(ErrMismatch, "too few pages",
			goerr.V("pages", r.Pages), goerr.V("expected", exp.Pages))
	}

	if exp.Token == "" {
		return nil
	}
	want := strings.Fields(stress.Text(exp.Token, exp.Repeat))
	got := strings.Fields(r.SampleText)
	if len(got) == 0 && len(want) > 0 {
		return goerr.Wrap(ErrMismatch, "no text on sample page")
	}
	if len(got) > len(want) {
		return goerr.Wrap(ErrMismatch, "unexpected text",
			goerr.V("words", len(got)), goerr.V("expected", len(want)))
	}
	for i, word := range got {
		if word != want[i] {
			return goerr.Wrap(ErrMismatch, "unexpected text",
				goerr.V("word", i), goerr.V("got", word), goerr.V("expected", want[i]))
		}
	}
	return nil
}
