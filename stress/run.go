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
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// progressInterval is the number of pages between progress reports.
const progressInterval = 1000

// ProgressFunc is called periodically by Generate, with the number of
// pages added so far and the total number of pages.
type ProgressFunc func(done, total int)

// Result summarizes a completed run.
type Result struct {
	Path          string
	Pages         int
	PhysicalPages int
	Size          int64
	Elapsed       time.Duration
}

// Generate creates the document described by cfg and writes it to
// cfg.Output.  The progress function may be nil.
//
// The context is checked between pages.  If it is cancelled, no output file
// is written.  The final write cannot be interrupted.
func Generate(ctx context.Context, cfg *Config, newEngine NewEngineFunc, progress ProgressFunc) (*Result, error) {
	logger := ctxlog.From(ctx)
	start := time.Now()

	g, err := New(cfg, newEngine)
	if err != nil {
		return nil, err
	}
	logger.Info("generating document",
		slog.String("engine", cfg.Engine),
		slog.Int("pages", cfg.Pages),
		slog.Int("repeat", cfg.Repeat),
		slog.String("font", cfg.StandardFont()),
		slog.String("output", cfg.Output))

	for i := range cfg.Pages {
		if err := ctx.Err(); err != nil {
			g.Discard()
			return nil, goerr.Wrap(err, "generation interrupted", goerr.V("pages", i))
		}

		err = g.AddPageWithText(cfg.Token, cfg.Repeat)
		if err != nil {
			g.Discard()
			return nil, err
		}

		done := i + 1
		if done%progressInterval == 0 || done == cfg.Pages {
			logger.Debug("pages added",
				slog.Int("pages", done),
				slog.Int("physical", g.PhysicalPages()))
			if progress != nil {
				progress(done, cfg.Pages)
			}
		}
	}

	physical := g.PhysicalPages()
	size, err := g.Finalize(cfg.Output)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Path:          cfg.Output,
		Pages:         g.Pages(),
		PhysicalPages: max(physical, 1),
		Size:          size,
		Elapsed:       time.Since(start),
	}
	logger.Info("document written",
		slog.String("path", res.Path),
		slog.Int("pages", res.Pages),
		slog.Int("physical", res.PhysicalPages),
		slog.Int64("bytes", res.Size),
		slog.Duration("elapsed", res.Elapsed))
	return res, nil
}
