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

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Variant lists the changes applied to a generated file.
// Zero fields are skipped.
type Variant struct {
	Optimize    bool
	Watermark   *Watermark
	PageNumbers *PageNumbers

	// Password, if set, encrypts the file.  Encryption is applied last.
	Password string
}

// IsZero reports whether v leaves a file unchanged.
func (v *Variant) IsZero() bool {
	return v == nil || !v.Optimize && v.Watermark == nil && v.PageNumbers == nil && v.Password == ""
}

// Check reports invalid settings without touching any file.
func (v *Variant) Check() error {
	if v.IsZero() {
		return nil
	}
	if v.Watermark != nil {
		if err := v.Watermark.check(); err != nil {
			return err
		}
	}
	if v.PageNumbers != nil {
		if err := v.PageNumbers.check(); err != nil {
			return err
		}
	}
	return nil
}

// Apply modifies the file at path in place.
func (v *Variant) Apply(ctx context.Context, path string) error {
	if v.IsZero() {
		return nil
	}
	logger := ctxlog.From(ctx)

	type step struct {
		name string
		run  func() error
	}
	var steps []step
	if v.Optimize {
		steps = append(steps, step{"optimize", func() error { return Optimize(path, path) }})
	}
	if v.Watermark != nil {
		steps = append(steps, step{"watermark", func() error { return AddWatermark(path, path, v.Watermark) }})
	}
	if v.PageNumbers != nil {
		steps = append(steps, step{"page numbers", func() error { return AddPageNumbers(path, path, v.PageNumbers) }})
	}
	if v.Password != "" {
		steps = append(steps, step{"encrypt", func() error { return Encrypt(path, path, v.Password) }})
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "post-processing interrupted", goerr.V("step", s.name))
		}
		err := s.run()
		if err != nil {
			return goerr.Wrap(err, "post-processing failed", goerr.V("step", s.name))
		}
		logger.Debug("post-processing step done", "step", s.name, "path", path)
	}
	return nil
}
