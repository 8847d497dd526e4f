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

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"seehuhn.de/go/pdfstress/pdfops"
)

func mergeCommand() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "concatenate files in memory-limited batches",
		ArgsUsage: "OUTPUT INPUT...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "memory-limit",
				Value:   1024,
				Sources: cli.EnvVars("PDFSTRESS_MEMORY_LIMIT"),
				Usage:   "total input size merged in one step, in MiB (-1 for no limit)",
			},
			&cli.IntFlag{
				Name:    "batch-files",
				Value:   pdfops.DefaultMaxFiles,
				Sources: cli.EnvVars("PDFSTRESS_BATCH_FILES"),
				Usage:   "number of files merged in one step",
			},
			&cli.StringFlag{
				Name:    "temp-dir",
				Sources: cli.EnvVars("PDFSTRESS_TEMP_DIR"),
				Usage:   "directory for intermediate files",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 2 {
				return goerr.New("output and input file names expected", goerr.V("args", cmd.Args().Slice()))
			}
			args := cmd.Args().Slice()
			output, inputs := args[0], args[1:]

			limit := int64(cmd.Int("memory-limit"))
			if limit < 0 {
				limit = 0
			} else if limit == 0 {
				return goerr.New("memory limit must be positive, or -1 for no limit")
			}
			if cmd.Int("batch-files") < 2 {
				return goerr.New("at least two files per batch are needed",
					goerr.V("batch_files", cmd.Int("batch-files")))
			}

			res, err := pdfops.Merge(ctx, inputs, output, &pdfops.MergeOptions{
				MemoryLimit: limit << 20,
				MaxFiles:    cmd.Int("batch-files"),
				TempDir:     cmd.String("temp-dir"),
			})
			if err != nil {
				return err
			}

			printer.Fprintf(cmd.Root().Writer, "wrote %s: %d pages from %d files in %d batches\n",
				output, res.Pages, res.Files, res.Batches)
			return nil
		},
	}
}
