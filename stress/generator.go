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
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

type state int

const (
	stateUninitialized state = iota
	stateInitialized
	stateAccumulating
	stateFinalized
)

// Generator accumulates the pages of one document.
// A Generator must not be used concurrently.
type Generator struct {
	cfg   *Config
	eng   Engine
	state state
	pages int
}

// New validates cfg, creates an empty document using newEngine and selects
// the configured font.
func New(cfg *Config, newEngine NewEngineFunc) (*Generator, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create document", goerr.V("engine", cfg.Engine))
	}

	g := &Generator{
		cfg:   cfg,
		eng:   eng,
		state: stateInitialized,
	}
	return g, nil
}

// AddPageWithText appends a new page, holding token repeated n times.
// Text blocks larger than MaxTextSize are rejected with ErrInvalidConfig.
func (g *Generator) AddPageWithText(token string, n int) error {
	switch g.state {
	case stateUninitialized:
		return ErrNotInitialized
	case stateFinalized:
		return ErrFinalized
	}

	err := checkTextSize(token, n)
	if err != nil {
		return err
	}

	err = g.eng.AddPage(Text(token, n))
	if err != nil {
		return goerr.Wrap(err, "failed to add page",
			goerr.V("page", g.pages+1), goerr.V("engine", g.cfg.Engine),
			goerr.Tag(TagResourceFailure))
	}
	g.pages++
	g.state = stateAccumulating
	return nil
}

// Pages returns the number of successful calls to AddPageWithText.
func (g *Generator) Pages() int {
	return g.pages
}

// PhysicalPages returns the number of pages in the document.  This can be
// larger than Pages, if automatic page breaks occurred.
func (g *Generator) PhysicalPages() int {
	if g.eng == nil {
		return 0
	}
	return g.eng.NumPages()
}

// Finalize writes the document to the file with the given name,
// replacing any existing file.  It returns the number of bytes written.
//
// After Finalize has been called, the generator cannot be used any more,
// even if Finalize failed.
func (g *Generator) Finalize(path string) (int64, error) {
	switch g.state {
	case stateUninitialized:
		return 0, ErrNotInitialized
	case stateFinalized:
		return 0, ErrFinalized
	}
	g.state = stateFinalized
	defer g.eng.Close()

	if g.cfg.Atomic {
		return g.writeAtomic(path)
	}

	fd, err := os.Create(path)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create output file",
			goerr.V("path", path), goerr.Tag(TagResourceFailure))
	}
	n, err := g.eng.WriteTo(fd)
	if err != nil {
		fd.Close()
		return n, goerr.Wrap(err, "failed to write document",
			goerr.V("path", path), goerr.V("written", n), goerr.Tag(TagResourceFailure))
	}
	err = fd.Close()
	if err != nil {
		return n, goerr.Wrap(err, "failed to close output file",
			goerr.V("path", path), goerr.Tag(TagResourceFailure))
	}
	return n, nil
}

func (g *Generator) writeAtomic(path string) (int64, error) {
	fd, err := os.CreateTemp(filepath.Dir(path), ".pdfstress-*.tmp")
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create temporary file",
			goerr.V("path", path), goerr.Tag(TagResourceFailure))
	}
	tmpName := fd.Name()

	// CreateTemp uses mode 0600, but the result should look like a file
	// made by os.Create.
	err = fd.Chmod(0o644)
	if err != nil {
		fd.Close()
		os.Remove(tmpName)
		return 0, goerr.Wrap(err, "failed to set file mode",
			goerr.V("path", tmpName), goerr.Tag(TagResourceFailure))
	}

	n, err := g.eng.WriteTo(fd)
	if err != nil {
		fd.Close()
		os.Remove(tmpName)
		return n, goerr.Wrap(err, "failed to write document",
			goerr.V("path", tmpName), goerr.V("written", n), goerr.Tag(TagResourceFailure))
	}
	err = fd.Close()
	if err != nil {
		os.Remove(tmpName)
		return n, goerr.Wrap(err, "failed to close temporary file",
			goerr.V("path", tmpName), goerr.Tag(TagResourceFailure))
	}

	err = os.Rename(tmpName, path)
	if err != nil {
		os.Remove(tmpName)
		return n, goerr.Wrap(err, "failed to rename output file",
			goerr.V("from", tmpName), goerr.V("to", path), goerr.Tag(TagResourceFailure))
	}
	return n, nil
}

// Discard releases the document without writing it.
// This has no effect on a finalized generator.
func (g *Generator) Discard() error {
	if g.state == stateUninitialized || g.state == stateFinalized {
		return nil
	}
	g.state = stateFinalized
	return g.eng.Close()
}
