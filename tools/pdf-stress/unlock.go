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

func unlockCommand() *cli.Command {
	return &cli.Command{
		Name:      "unlock",
		Usage:     "remove the password from an encrypted file",
		ArgsUsage: "INPUT [OUTPUT]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "password",
				Sources:  cli.EnvVars("PDFSTRESS_PASSWORD"),
				Usage:    "password of the input file",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			n := cmd.Args().Len()
			if n < 1 || n > 2 {
				return goerr.New("input and optional output file name expected", goerr.V("args", cmd.Args().Slice()))
			}
			in := cmd.Args().Get(0)
			out := in
			if n == 2 {
				out = cmd.Args().Get(1)
			}

			err := pdfops.Decrypt(in, out, cmd.String("password"))
			if err != nil {
				return err
			}
			printer.Fprintf(cmd.Root().Writer, "wrote %s\n", out)
			return nil
		},
	}
}
