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
	"github.com/m-mizutani/goerr/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"seehuhn.de/go/pdfstress/stress"
)

// KeyLength is the AES key length, in bits, used by [Encrypt].
const KeyLength = 128

// Encrypt writes an encrypted copy of in to out.  The password is used as
// both user and owner password, so it is required to open the file.
// The output name may equal the input name.
func Encrypt(in, out, password string) error {
	if password == "" {
		return goerr.Wrap(stress.ErrInvalidConfig, "empty password")
	}
	conf := newConfig()
	aes := model.NewAESConfiguration(password, password, KeyLength)
	aes.ValidationMode = conf.ValidationMode

	err := api.EncryptFile(in, out, aes)
	if err != nil {
		return goerr.Wrap(err, "cannot encrypt file", goerr.V("in", in), goerr.V("out", out))
	}
	return nil
}

// Decrypt writes a copy of the encrypted file in to out, with the
// encryption removed.  The output name may equal the input name.
func Decrypt(in, out, password string) error {
	conf := newConfig()
	conf.UserPW = password
	conf.OwnerPW = password

	err := api.DecryptFile(in, out, conf)
	if err != nil {
		return goerr.Wrap(err, "cannot decrypt file", goerr.V("in", in), goerr.V("out", out))
	}
	return nil
}
