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

	"seehuhn.de/go/pdfstress/verify"
)

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "check a generated file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "expect-pages",
				Sources: cli.EnvVars("PDFSTRESS_EXPECT_PAGES"),
				Usage:   "minimum number of pages",
			},
			&cli.StringFlag{
				Name:    "expect-token",
				Sources: cli.EnvVars("PDFSTRESS_EXPECT_TOKEN"),
				Usage:   "token expected on the sample page",
			},
			&cli.IntFlag{
				Name:    "expect-repeat",
				Value:   500,
				Sources: cli.EnvVars("PDFSTRESS_EXPECT_REPEAT"),
				Usage:   "repetitions of the token per page",
			},
			&cli.IntFlag{
				Name:    "sample-page",
				Value:   1,
				Sources: cli.EnvVars("PDFSTRESS_SAMPLE_PAGE"),
				Usage:   "page used for text extraction",
			},
			&cli.BoolFlag{
				Name:    "skip-validation",
				Sources: cli.EnvVars("PDFSTRESS_SKIP_VALIDATION"),
				Usage:   "do not check the file structure",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return goerr.New("exactly one file name expected", goerr.V("args", cmd.Args().Slice()))
			}
			fname := cmd.Args().First()

			report, err := verify.Check(ctx, fname, &verify.Options{
				SamplePage:     cmd.Int("sample-page"),
				SkipValidation: cmd.Bool("skip-validation"),
			})
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			printer.Fprintf(out, "file:   %s\n", report.Path)
			printer.Fprintf(out, "size:   %d bytes\n", report.Size)
			printer.Fprintf(out, "pages:  %d\n", report.Pages)
			printer.Fprintf(out, "paper:  %.2f x %.2f\n", report.Width, report.Height)
			if !cmd.Bool("skip-validation") {
				printer.Fprintf(out, "valid:  %t\n", report.Valid)
			}
			printer.Fprintf(out, "sample: %s\n", excerpt(report.SampleText, 60))

			return report.Match(&verify.Expectation{
				Pages:  cmd.Int("expect-pages"),
				Token:  cmd.String("expect-token"),
				Repeat: cmd.Int("expect-repeat"),
			})
		},
	}
}

// excerpt shortens s to at most n runes.
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
