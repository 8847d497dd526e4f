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
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"seehuhn.de/go/pdfstress/stress"
	"seehuhn.de/go/pdfstress/verify"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	app := newApp(stdout, stderr)
	err := app.Run(context.Background(), append([]string{"pdf-stress"}, args...))
	if stderr.Len() > 0 {
		t.Log(stderr.String())
	}
	return stdout.String(), stderr.String(), err
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runApp(t, args...)
	return stdout, err
}

func TestGenerateAndVerify(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.pdf")

	out, err := run(t,
		"--engine", "fpdf",
		"--pages", "3",
		"--token", "X",
		"--repeat", "2",
		"-o", fname)
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("3 pages (3 physical)")

	fi, err := os.Stat(fname)
	gt.NoError(t, err).Required()
	gt.N(t, fi.Size()).Greater(0)

	out, err = run(t, "verify",
		"--expect-pages", "3",
		"--expect-token", "X",
		"--expect-repeat", "2",
		fname)
	gt.NoError(t, err)
	gt.S(t, out).Contains("pages:  3")
	gt.S(t, out).Contains("valid:  true")

	_, err = run(t, "verify", "--expect-pages", "4", fname)
	gt.True(t, errors.Is(err, verify.ErrMismatch))
}

func TestGenerateNative(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "out.pdf")

	_, err := run(t,
		"--pages", "2",
		"--repeat", "50",
		"--atomic",
		"--log-level", "debug",
		"--log-format", "json",
		"--cpuprofile", filepath.Join(dir, "cpu.prof"),
		"--memprofile", filepath.Join(dir, "mem.prof"),
		"--output", fname)
	gt.NoError(t, err).Required()

	for _, name := range []string{"out.pdf", "cpu.prof", "mem.prof"} {
		_, err := os.Stat(filepath.Join(dir, name))
		gt.NoError(t, err)
	}

	out, err := run(t, "verify",
		"--expect-pages", "2",
		"--expect-token", "STRESS TEST",
		"--expect-repeat", "50",
		fname)
	gt.NoError(t, err)
	gt.S(t, out).Contains("sample: STRESS TEST STRESS TEST")
}

func TestUnwritable(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "out.pdf")

	_, err := run(t, "--pages", "1", "--repeat", "1", "-o", fname)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, stress.TagResourceFailure))

	_, err = os.Stat(fname)
	gt.True(t, errors.Is(err, os.ErrNotExist))
}

func TestErrorLoggedOnce(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "out.pdf")

	stdout, stderr, err := runApp(t, "--pages", "1", "--repeat", "1", "--log-format", "json", "-o", fname)
	gt.Error(t, err)
	gt.Equal(t, strings.Count(stderr, "command failed"), 1)
	gt.S(t, stderr).Contains(`"msg":"command failed"`)
	gt.Equal(t, stdout, "")

	// invalid logging flags fall back to the default text logger
	_, stderr, err = runApp(t, "--pages", "1", "--log-level", "loud")
	gt.Error(t, err)
	gt.Equal(t, strings.Count(stderr, "command failed"), 1)
	gt.S(t, stderr).Contains("level=ERROR")
}

func TestBadArguments(t *testing.T) {
	_, err := run(t, "--engine", "latex", "--pages", "1")
	gt.True(t, errors.Is(err, stress.ErrInvalidConfig))

	_, err = run(t, "--pages=-1")
	gt.True(t, errors.Is(err, stress.ErrInvalidConfig))

	_, err = run(t, "--log-format", "xml", "--pages", "1")
	gt.Error(t, err)

	_, err = run(t, "--pages", "1", "extra")
	gt.Error(t, err)

	_, err = run(t, "verify")
	gt.Error(t, err)
}

func TestMerge(t *testing.T) {
	dir := t.TempDir()
	var args []string
	merged := filepath.Join(dir, "merged.pdf")
	args = append(args, "merge", "--batch-files", "2", merged)
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		fname := filepath.Join(dir, name)
		_, err := run(t, "--engine", "fpdf", "--pages", "2", "--repeat", "2", "-o", fname)
		gt.NoError(t, err).Required()
		args = append(args, fname)
	}

	out, err := run(t, args...)
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("6 pages from 3 files in 2 batches")

	out, err = run(t, "verify", "--expect-pages", "6", merged)
	gt.NoError(t, err)
	gt.S(t, out).Contains("valid:  true")

	_, err = run(t, "merge", merged)
	gt.Error(t, err)
	_, err = run(t, "merge", "--memory-limit", "0", merged, args[4])
	gt.Error(t, err)
	_, err = run(t, "merge", merged, filepath.Join(dir, "missing.pdf"))
	gt.True(t, stress.IsResourceFailure(err))
}

func TestEncryptedVariant(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "locked.pdf")

	_, err := run(t,
		"--engine", "fpdf",
		"--pages", "2",
		"--repeat", "2",
		"--watermark", "DRAFT",
		"--page-numbers", "page-of",
		"--encrypt", "secret",
		"-o", fname)
	gt.NoError(t, err).Required()

	_, err = run(t, "verify", "--skip-validation", fname)
	gt.Error(t, err)

	_, err = run(t, "unlock", "--password", "wrong", fname)
	gt.Error(t, err)

	plain := filepath.Join(dir, "plain.pdf")
	out, err := run(t, "unlock", "--password", "secret", fname, plain)
	gt.NoError(t, err).Required()
	gt.S(t, out).Contains("wrote " + plain)

	out, err = run(t, "verify", "--expect-pages", "2", plain)
	gt.NoError(t, err)
	gt.S(t, out).Contains("valid:  true")
}

func TestBadVariant(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.pdf")

	_, err := run(t, "--pages", "1", "--page-numbers", "roman", "-o", fname)
	gt.True(t, errors.Is(err, stress.ErrInvalidConfig))

	// the settings are checked before generation starts
	_, err = os.Stat(fname)
	gt.True(t, os.IsNotExist(err))
}

func TestExcerpt(t *testing.T) {
	gt.Equal(t, excerpt("abc", 5), "abc")
	gt.Equal(t, excerpt("abcdefgh", 5), "ab...")
}

func TestProgress(t *testing.T) {
	gt.True(t, newProgress(&bytes.Buffer{}) == nil)

	var none *progressLine
	gt.True(t, none.Func() == nil)
	none.Done()

	buf := &bytes.Buffer{}
	p := &progressLine{w: buf}
	p.Func()(1000, 2500)
	p.Done()
	p.Done()
	gt.Equal(t, buf.String(), "\r1,000 / 2,500 pages (40%)\n")
}
