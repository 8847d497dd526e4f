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

// Pdf-stress writes very large PDF files, for testing how PDF consumers
// cope with resource-hungry input.
//
// Without arguments, a file "massive_stress_test.pdf" with 50,000 pages
// of repeated text is written to the current directory.  Flags select
// encrypted, watermarked or page-numbered variants of the output.
//
// Sub-commands:
//
//	verify   check a generated file
//	merge    concatenate files in memory-limited batches
//	unlock   remove the password from an encrypted file
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"seehuhn.de/go/pdfstress/tools/internal/buildinfo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		os.Exit(1)
	}
}

// app is the pdf-stress command line tool.
type app struct {
	cmd *cli.Command

	// logger is replaced by the logger configured on the command line,
	// once the flags have been parsed.
	logger *slog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}
	a.cmd = &cli.Command{
		Name:      "pdf-stress",
		Usage:     "generate oversized PDF files for stress testing",
		Version:   buildinfo.Version(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     append(generateFlags(), loggingFlags()...),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger, err := newLogger(stderr, cmd.String("log-level"), cmd.String("log-format"))
			if err != nil {
				return ctx, err
			}
			a.logger = logger
			return ctxlog.With(ctx, logger), nil
		},
		Action: generateAction,
		Commands: []*cli.Command{
			verifyCommand(),
			mergeCommand(),
			unlockCommand(),
		},
	}
	return a
}

// Run executes the command given by args.  A failure is logged once,
// using the configured logger, and then returned.
func (a *app) Run(ctx context.Context, args []string) error {
	err := a.cmd.Run(ctx, args)
	if err != nil {
		a.logger.Error("command failed", slog.Any("error", err))
	}
	return err
}
