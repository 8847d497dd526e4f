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

package pdfops

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"seehuhn.de/go/pdfstress/stress"
)

// DefaultMaxFiles is the default number of files merged in one step.
// This keeps the number of open file descriptors bounded.
const DefaultMaxFiles = 500

// MergeOptions control [Merge].
type MergeOptions struct {
	// MemoryLimit is the largest total input size, in bytes, merged in one
	// step.  Zero means no limit.
	MemoryLimit int64

	// MaxFiles is the largest number of files merged in one step.
	// If this is zero, DefaultMaxFiles is used.
	MaxFiles int

	// TempDir holds the intermediate files.  The default is the directory
	// of the output file.
	TempDir string
}

// MergeResult summarizes a completed merge.
type MergeResult struct {
	Files   int
	Batches int
	Pages   int
}

// Merge concatenates the input files into output.
//
// The inputs are split into batches of at most MaxFiles files with a total
// size of at most MemoryLimit bytes.  A single file larger than the limit
// forms a batch of its own.  If there is more than one batch, every batch is
// merged into an intermediate file first, and the intermediate files are
// then merged into output without a limit.
func Merge(ctx context.Context, inputs []string, output string, opt *MergeOptions) (*MergeResult, error) {
	if opt == nil {
		opt = &MergeOptions{}
	}
	if len(inputs) == 0 {
		return nil, goerr.Wrap(stress.ErrInvalidConfig, "no input files")
	}
	logger := ctxlog.From(ctx)

	sizes := make([]int64, len(inputs))
	for i, fname := range inputs {
		fi, err := os.Stat(fname)
		if err != nil {
			return nil, goerr.Wrap(err, "cannot access input file",
				goerr.V("path", fname), goerr.Tag(stress.TagResourceFailure))
		}
		sizes[i] = fi.Size()
	}

	maxFiles := opt.MaxFiles
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	batches := planBatches(sizes, opt.MemoryLimit, maxFiles)
	logger.Info("merging files",
		"files", len(inputs),
		"batches", len(batches),
		"output", output)

	if len(batches) == 1 {
		err := mergeFiles(inputs, output)
		if err != nil {
			return nil, err
		}
	} else {
		dir := opt.TempDir
		if dir == "" {
			dir = filepath.Dir(output)
		}

		var parts []string
		var temps []string
		defer func() {
			for _, fname := range temps {
				os.Remove(fname)
			}
		}()
		for i, batch := range batches {
			if err := ctx.Err(); err != nil {
				return nil, goerr.Wrap(err, "merge interrupted", goerr.V("batch", i+1))
			}

			files := make([]string, len(batch))
			for j, k := range batch {
				files[j] = inputs[k]
			}
			if len(files) == 1 {
				parts = append(parts, files[0])
				continue
			}

			tmp, err := os.CreateTemp(dir, fmt.Sprintf("merge-batch-%d-*.pdf", i+1))
			if err != nil {
				return nil, goerr.Wrap(err, "cannot create intermediate file",
					goerr.V("dir", dir), goerr.Tag(stress.TagResourceFailure))
			}
			tmp.Close()
			temps = append(temps, tmp.Name())

			err = mergeFiles(files, tmp.Name())
			if err != nil {
				return nil, err
			}
			parts = append(parts, tmp.Name())
			logger.Debug("batch merged",
				"batch", i+1,
				"files", len(files),
				"path", tmp.Name())
		}

		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "merge interrupted")
		}
		err := mergeFiles(parts, output)
		if err != nil {
			return nil, err
		}
	}

	pages, err := PageCount(output)
	if err != nil {
		return nil, err
	}
	res := &MergeResult{
		Files:   len(inputs),
		Batches: len(batches),
		Pages:   pages,
	}
	logger.Info("merge complete", "output", output, "pages", pages)
	return res, nil
}

// planBatches splits files with the given sizes into consecutive groups.
// A group is closed when adding the next file would exceed limit bytes
// (if limit > 0), or when it holds maxFiles files.
func planBatches(sizes []int64, limit int64, maxFiles int) [][]int {
	var res [][]int
	var cur []int
	var curSize int64
	for i, size := range sizes {
		full := limit > 0 && curSize+size > limit || len(cur) >= maxFiles
		if len(cur) > 0 && full {
			res = append(res, cur)
			cur = nil
			curSize = 0
		}
		cur = append(cur, i)
		curSize += size
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

func mergeFiles(files []string, out string) error {
	if len(files) == 1 {
		return copyFile(files[0], out)
	}
	err := api.MergeCreateFile(files, out, false, newConfig())
	if err != nil {
		return goerr.Wrap(err, "cannot merge files",
			goerr.V("files", len(files)), goerr.V("out", out))
	}
	return nil
}

func copyFile(in, out string) error {
	src, err := os.Open(in)
	if err != nil {
		return goerr.Wrap(err, "cannot open input file",
			goerr.V("path", in), goerr.Tag(stress.TagResourceFailure))
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return goerr.Wrap(err, "cannot create output file",
			goerr.V("path", out), goerr.Tag(stress.TagResourceFailure))
	}
	_, err = io.Copy(dst, src)
	if err != nil {
		dst.Close()
		return goerr.Wrap(err, "cannot copy file",
			goerr.V("from", in), goerr.V("to", out), goerr.Tag(stress.TagResourceFailure))
	}
	err = dst.Close()
	if err != nil {
		return goerr.Wrap(err, "cannot close output file",
			goerr.V("path", out), goerr.Tag(stress.TagResourceFailure))
	}
	return nil
}
