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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"seehuhn.de/go/pdfstress/engine"
	"seehuhn.de/go/pdfstress/pdfops"
	"seehuhn.de/go/pdfstress/stress"
	"seehuhn.de/go/pdfstress/tools/internal/buildinfo"
	"seehuhn.de/go/pdfstress/tools/internal/profile"
)

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "pages",
			Value:   stress.DefaultPages,
			Sources: cli.EnvVars("PDFSTRESS_PAGES"),
			Usage:   "number of pages to add",
		},
		&cli.StringFlag{
			Name:    "token",
			Value:   stress.DefaultToken,
			Sources: cli.EnvVars("PDFSTRESS_TOKEN"),
			Usage:   "text repeated on every page",
		},
		&cli.IntFlag{
			Name:    "repeat",
			Value:   stress.DefaultRepeat,
			Sources: cli.EnvVars("PDFSTRESS_REPEAT"),
			Usage:   "repetitions of the token per page",
		},
		&cli.StringFlag{
			Name:    "font",
			Value:   stress.DefaultFont,
			Sources: cli.EnvVars("PDFSTRESS_FONT"),
			Usage:   "font name (Arial, Helvetica, Times, Courier, ...)",
		},
		&cli.FloatFlag{
			Name:    "font-size",
			Value:   stress.DefaultFontSize,
			Sources: cli.EnvVars("PDFSTRESS_FONT_SIZE"),
			Usage:   "font size in points",
		},
		&cli.FloatFlag{
			Name:    "line-height",
			Value:   stress.DefaultLineHeight / stress.MM,
			Sources: cli.EnvVars("PDFSTRESS_LINE_HEIGHT"),
			Usage:   "line height in millimetres",
		},
		&cli.StringFlag{
			Name:    "paper",
			Value:   stress.DefaultPaper,
			Sources: cli.EnvVars("PDFSTRESS_PAPER"),
			Usage:   "paper size (" + strings.Join(stress.PaperNames(), ", ") + ")",
		},
		&cli.StringFlag{
			Name:    "engine",
			Value:   stress.DefaultEngine,
			Sources: cli.EnvVars("PDFSTRESS_ENGINE"),
			Usage:   "PDF engine (" + strings.Join(engine.Names(), ", ") + ")",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   stress.DefaultOutput,
			Sources: cli.EnvVars("PDFSTRESS_OUTPUT"),
			Usage:   "output file name",
		},
		&cli.BoolFlag{
			Name:    "atomic",
			Sources: cli.EnvVars("PDFSTRESS_ATOMIC"),
			Usage:   "write to a temporary file and rename it on success",
		},
		&cli.BoolFlag{
			Name:    "no-page-break",
			Sources: cli.EnvVars("PDFSTRESS_NO_PAGE_BREAK"),
			Usage:   "clip text which does not fit onto a page",
		},
		&cli.BoolFlag{
			Name:    "optimize",
			Sources: cli.EnvVars("PDFSTRESS_OPTIMIZE"),
			Usage:   "store identical objects only once",
		},
		&cli.StringFlag{
			Name:    "watermark",
			Sources: cli.EnvVars("PDFSTRESS_WATERMARK"),
			Usage:   "draw `TEXT` behind the content of every page",
		},
		&cli.StringFlag{
			Name:    "page-numbers",
			Sources: cli.EnvVars("PDFSTRESS_PAGE_NUMBERS"),
			Usage:   "add page numbers (" + strings.Join(pdfops.NumberStyles(), ", ") + ")",
		},
		&cli.StringFlag{
			Name:    "number-position",
			Value:   "bc",
			Sources: cli.EnvVars("PDFSTRESS_NUMBER_POSITION"),
			Usage:   "page number position (bc, bl, br, tc, tl, tr)",
		},
		&cli.StringFlag{
			Name:    "encrypt",
			Sources: cli.EnvVars("PDFSTRESS_ENCRYPT"),
			Usage:   "encrypt the output with `PASSWORD`",
		},
		&cli.StringFlag{
			Name:    "cpuprofile",
			Sources: cli.EnvVars("PDFSTRESS_CPUPROFILE"),
			Usage:   "write a CPU profile to `FILE`",
		},
		&cli.StringFlag{
			Name:    "memprofile",
			Sources: cli.EnvVars("PDFSTRESS_MEMPROFILE"),
			Usage:   "write a memory profile to `FILE`",
		},
	}
}

// configFromFlags collects the generation parameters.
func configFromFlags(cmd *cli.Command) *stress.Config {
	cfg := stress.Default()
	cfg.Pages = cmd.Int("pages")
	cfg.Token = cmd.String("token")
	cfg.Repeat = cmd.Int("repeat")
	cfg.Font = cmd.String("font")
	cfg.FontSize = cmd.Float("font-size")
	cfg.LineHeight = cmd.Float("line-height") * stress.MM
	cfg.Paper = cmd.String("paper")
	cfg.Engine = cmd.String("engine")
	cfg.Output = cmd.String("output")
	cfg.Atomic = cmd.Bool("atomic")
	cfg.AutoPageBreak = !cmd.Bool("no-page-break")
	return cfg
}

// variantFromFlags collects the changes applied after generation.
func variantFromFlags(cmd *cli.Command) *pdfops.Variant {
	v := &pdfops.Variant{
		Optimize: cmd.Bool("optimize"),
		Password: cmd.String("encrypt"),
	}
	if text := cmd.String("watermark"); text != "" {
		v.Watermark = pdfops.NewWatermark(text)
	}
	if style := cmd.String("page-numbers"); style != "" {
		v.PageNumbers = pdfops.NewPageNumbers()
		v.PageNumbers.Style = style
		v.PageNumbers.Position = cmd.String("number-position")
	}
	return v
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return goerr.New("unexpected arguments", goerr.V("args", cmd.Args().Slice()))
	}

	cfg := configFromFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}
	newEngine, err := engine.Lookup(cfg.Engine)
	if err != nil {
		return err
	}

	variant := variantFromFlags(cmd)
	if err := variant.Check(); err != nil {
		return err
	}

	prof, err := profile.Start(cmd.String("cpuprofile"), cmd.String("memprofile"))
	if err != nil {
		return err
	}
	defer prof.Stop()

	logger := ctxlog.From(ctx)
	logger.Debug("libraries", "versions", buildinfo.Libraries())

	progress := newProgress(cmd.Root().ErrWriter)
	res, err := stress.Generate(ctx, cfg, newEngine, progress.Func())
	progress.Done()
	if err != nil {
		return err
	}

	mem := profile.ReadMemory()
	logger.Info("memory use",
		"heap_inuse", mem.HeapInuse,
		"sys", mem.Sys,
		"num_gc", mem.NumGC)

	if err := prof.Stop(); err != nil {
		return err
	}

	if !variant.IsZero() {
		err := variant.Apply(ctx, res.Path)
		if err != nil {
			return err
		}
		fi, err := os.Stat(res.Path)
		if err != nil {
			return goerr.Wrap(err, "cannot access output file", goerr.V("path", res.Path))
		}
		res.Size = fi.Size()
	}

	out := cmd.Root().Writer
	printer.Fprintf(out, "wrote %s: %d pages (%d physical), %d bytes in %.1fs\n",
		res.Path, res.Pages, res.PhysicalPages, res.Size, res.Elapsed.Seconds())
	if res.PhysicalPages > res.Pages && res.Pages > 0 {
		fmt.Fprintf(out, "text overflow: %.1f physical pages per page\n",
			float64(res.PhysicalPages)/float64(res.Pages))
	}
	return nil
}
