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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder is an Engine which keeps the page texts and writes them out as
// plain text, one page per line.
type recorder struct {
	pages   []string
	written bool
	closed  bool

	addErr   error
	writeErr error
}

func (r *recorder) AddPage(text string) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.pages = append(r.pages, text)
	return nil
}

func (r *recorder) NumPages() int {
	return len(r.pages)
}

func (r *recorder) WriteTo(w io.Writer) (int64, error) {
	if r.written {
		return 0, errors.New("already written")
	}
	r.written = true
	if r.writeErr != nil {
		n, _ := io.WriteString(w, "%PDF-")
		return int64(n), r.writeErr
	}
	var total int64
	for _, p := range r.pages {
		n, err := fmt.Fprintln(w, p)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func newRecorder(rec *recorder) NewEngineFunc {
	return func(*Config) (Engine, error) {
		return rec, nil
	}
}

func testConfig(t *testing.T) *Config {
	cfg := Default()
	cfg.Pages = 3
	cfg.Token = "X"
	cfg.Repeat = 2
	cfg.Output = filepath.Join(t.TempDir(), "test.pdf")
	return cfg
}

func TestGeneratorPages(t *testing.T) {
	cfg := testConfig(t)
	rec := &recorder{}
	g, err := New(cfg, newRecorder(rec))
	if err != nil {
		t.Fatal(err)
	}

	if g.Pages() != 0 {
		t.Errorf("new document has %d pages", g.Pages())
	}
	for k := 1; k <= 5; k++ {
		err = g.AddPageWithText("X", 2)
		if err != nil {
			t.Fatal(err)
		}
		if g.Pages() != k || g.PhysicalPages() != k {
			t.Errorf("after %d pages: Pages()=%d, PhysicalPages()=%d", k, g.Pages(), g.PhysicalPages())
		}
	}

	want := []string{"X X", "X X", "X X", "X X", "X X"}
	if d := cmp.Diff(want, rec.pages); d != "" {
		t.Errorf("page texts (-want +got):\n%s", d)
	}
}

func TestGeneratorFinalized(t *testing.T) {
	cfg := testConfig(t)
	rec := &recorder{}
	g, err := New(cfg, newRecorder(rec))
	if err != nil {
		t.Fatal(err)
	}
	err = g.AddPageWithText("X", 1)
	if err != nil {
		t.Fatal(err)
	}
	_, err = g.Finalize(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	if !rec.closed {
		t.Error("engine not closed after Finalize")
	}

	err = g.AddPageWithText("X", 1)
	if !errors.Is(err, ErrFinalized) {
		t.Errorf("AddPageWithText after Finalize: got %v, want ErrFinalized", err)
	}
	_, err = g.Finalize(cfg.Output)
	if !errors.Is(err, ErrFinalized) {
		t.Errorf("second Finalize: got %v, want ErrFinalized", err)
	}
	if g.Pages() != 1 {
		t.Errorf("finalized document has %d pages, want 1", g.Pages())
	}
}

func TestGeneratorZero(t *testing.T) {
	var g Generator
	err := g.AddPageWithText("X", 1)
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("got %v, want ErrNotInitialized", err)
	}
	_, err = g.Finalize("unused.pdf")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("got %v, want ErrNotInitialized", err)
	}
	if g.PhysicalPages() != 0 {
		t.Error("zero generator has pages")
	}
}

func TestGeneratorInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Font = "Zapf Chancery"
	called := false
	_, err := New(cfg, func(*Config) (Engine, error) {
		called = true
		return &recorder{}, nil
	})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got %v, want ErrInvalidConfig", err)
	}
	if called {
		t.Error("engine created for invalid configuration")
	}
}

func TestAddPageFailure(t *testing.T) {
	cfg := testConfig(t)
	errOOM := errors.New("out of memory")
	g, err := New(cfg, newRecorder(&recorder{addErr: errOOM}))
	if err != nil {
		t.Fatal(err)
	}

	err = g.AddPageWithText("X", 2)
	if !errors.Is(err, errOOM) {
		t.Errorf("got %v, want %v", err, errOOM)
	}
	if !IsResourceFailure(err) {
		t.Errorf("error %v is not a resource failure", err)
	}
	if g.Pages() != 0 {
		t.Errorf("failed page was counted")
	}
}

func TestAddPageTooLarge(t *testing.T) {
	cfg := testConfig(t)
	rec := &recorder{}
	g, err := New(cfg, newRecorder(rec))
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{math.MaxInt, math.MaxInt64 / 4, MaxTextSize/2 + 1} {
		err = g.AddPageWithText("X", n)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("repeat %d: got %v, want %v", n, err, ErrInvalidConfig)
		}
		if IsResourceFailure(err) {
			t.Errorf("repeat %d: oversized text reported as resource failure", n)
		}
	}
	if g.Pages() != 0 || len(rec.pages) != 0 {
		t.Errorf("rejected pages were added")
	}

	err = g.AddPageWithText("X", 2)
	if err != nil {
		t.Fatal(err)
	}
}

func TestFinalizeUnwritable(t *testing.T) {
	for _, atomic := range []bool{false, true} {
		t.Run(fmt.Sprintf("atomic=%t", atomic), func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Atomic = atomic
			g, err := New(cfg, newRecorder(&recorder{}))
			if err != nil {
				t.Fatal(err)
			}
			err = g.AddPageWithText("X", 2)
			if err != nil {
				t.Fatal(err)
			}

			path := filepath.Join(t.TempDir(), "no", "such", "dir", "test.pdf")
			_, err = g.Finalize(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !IsResourceFailure(err) {
				t.Errorf("error %v is not a resource failure", err)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("error %v does not wrap fs.ErrNotExist", err)
			}
			if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("output file exists after failure: %v", err)
			}
		})
	}
}

func TestFinalizeOverwrite(t *testing.T) {
	cfg := testConfig(t)
	err := os.WriteFile(cfg.Output, []byte(strings.Repeat("old content\n", 100)), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	for range 2 {
		g, err := New(cfg, newRecorder(&recorder{}))
		if err != nil {
			t.Fatal(err)
		}
		for range 3 {
			err = g.AddPageWithText("X", 2)
			if err != nil {
				t.Fatal(err)
			}
		}
		n, err := g.Finalize(cfg.Output)
		if err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(cfg.Output)
		if err != nil {
			t.Fatal(err)
		}
		if int64(len(data)) != n {
			t.Errorf("file has %d bytes, Finalize reported %d", len(data), n)
		}
		if got := string(data); got != "X X\nX X\nX X\n" {
			t.Errorf("unexpected file contents %q", got)
		}
	}
}

func TestFinalizeAtomicKeepsOld(t *testing.T) {
	cfg := testConfig(t)
	cfg.Atomic = true
	old := []byte("old content\n")
	err := os.WriteFile(cfg.Output, old, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	errDiskFull := errors.New("no space left on device")
	g, err := New(cfg, newRecorder(&recorder{writeErr: errDiskFull}))
	if err != nil {
		t.Fatal(err)
	}
	err = g.AddPageWithText("X", 2)
	if err != nil {
		t.Fatal(err)
	}
	_, err = g.Finalize(cfg.Output)
	if !errors.Is(err, errDiskFull) || !IsResourceFailure(err) {
		t.Errorf("got %v, want a resource failure wrapping %v", err, errDiskFull)
	}

	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(old) {
		t.Errorf("existing file was modified: %q", data)
	}

	entries, err := os.ReadDir(filepath.Dir(cfg.Output))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary file left behind: %v", entries)
	}
}

func TestDiscard(t *testing.T) {
	cfg := testConfig(t)
	rec := &recorder{}
	g, err := New(cfg, newRecorder(rec))
	if err != nil {
		t.Fatal(err)
	}
	err = g.Discard()
	if err != nil {
		t.Fatal(err)
	}
	if !rec.closed {
		t.Error("engine not closed")
	}
	if rec.written {
		t.Error("discarded document was written")
	}
	_, err = g.Finalize(cfg.Output)
	if !errors.Is(err, ErrFinalized) {
		t.Errorf("got %v, want ErrFinalized", err)
	}
}

func TestGenerate(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pages = 2500
	rec := &recorder{}

	var reports [][2]int
	progress := func(done, total int) {
		reports = append(reports, [2]int{done, total})
	}

	res, err := Generate(context.Background(), cfg, newRecorder(rec), progress)
	if err != nil {
		t.Fatal(err)
	}

	if res.Pages != 2500 || res.PhysicalPages != 2500 || res.Path != cfg.Output {
		t.Errorf("unexpected result %+v", res)
	}
	if len(rec.pages) != 2500 {
		t.Errorf("engine received %d pages, want 2500", len(rec.pages))
	}
	want := [][2]int{{1000, 2500}, {2000, 2500}, {2500, 2500}}
	if d := cmp.Diff(want, reports); d != "" {
		t.Errorf("progress reports (-want +got):\n%s", d)
	}

	fi, err := os.Stat(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() != res.Size {
		t.Errorf("file size %d, result says %d", fi.Size(), res.Size)
	}
}

func TestGenerateNoPages(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pages = 0
	rec := &recorder{}
	res, err := Generate(context.Background(), cfg, newRecorder(rec), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Pages != 0 {
		t.Errorf("got %d pages, want 0", res.Pages)
	}
	if !rec.written {
		t.Error("document was not written")
	}
}

func TestGenerateCancelled(t *testing.T) {
	cfg := testConfig(t)
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, cfg, newRecorder(rec), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if rec.written || !rec.closed {
		t.Errorf("written=%t closed=%t, want false/true", rec.written, rec.closed)
	}
	if _, err := os.Stat(cfg.Output); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("output file exists after cancellation")
	}
}
