// Copyright 2026 The VTCore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package termmode

import (
	gdencoding "github.com/gdamore/encoding"
	"golang.org/x/text/encoding"
)

// LocaleEncodings maps a POSIX locale codeset name (the $codeset
// component of LC_ALL/LC_CTYPE/LANG, e.g. "ISO8859-15") to the
// gdamore/encoding charmap that reads it. It starts with ISO8859-1 and
// ISO8859-15; callers needing a codeset not listed here may add their
// own golang.org/x/text/encoding.Encoding with RegisterLocaleEncoding.
// Grounded on tcell's encoding.go RegisterEncoding/GetEncoding
// registry, wired to github.com/gdamore/encoding per SPEC_FULL.md 8
// rather than tcell's own x/text-only subset, since that is the
// dependency named there.
var LocaleEncodings = map[string]encoding.Encoding{
	"ISO8859-1":  gdencoding.ISO8859_1,
	"ISO8859-15": gdencoding.ISO8859_15,
}

// RegisterLocaleEncoding adds or overrides the codeset -> encoding
// mapping LocaleDecoder consults by name.
func RegisterLocaleEncoding(codeset string, enc encoding.Encoding) {
	LocaleEncodings[codeset] = enc
}

// LocaleDecoder transcodes raw bytes read from a non-UTF-8 locale
// (ISO-8859-*, etc.) to UTF-8 before they are fed to the byte
// interpreter's UTF-8 sub-parser. Grounded on spec.md 4.4's UTF-8
// sub-parser boundary and SPEC_FULL.md 8's "termmode/interpreter
// boundary" wiring.
type LocaleDecoder struct {
	dec *encoding.Decoder
}

// NewLocaleDecoder builds a transcoder for enc.
func NewLocaleDecoder(enc encoding.Encoding) *LocaleDecoder {
	return &LocaleDecoder{dec: enc.NewDecoder()}
}

// NewLocaleDecoderByName looks codeset up in LocaleEncodings. A
// codeset of "UTF-8", "ASCII", "POSIX", "C", or one not present in the
// table returns a nil *LocaleDecoder and no error: the caller should
// feed bytes to the interpreter unchanged, matching tcell's own
// GetEncoding contract where the native encodings return nil.
func NewLocaleDecoderByName(codeset string) (*LocaleDecoder, error) {
	switch codeset {
	case "", "UTF-8", "ASCII", "POSIX", "C":
		return nil, nil
	}
	enc, ok := LocaleEncodings[codeset]
	if !ok {
		return nil, nil
	}
	return NewLocaleDecoder(enc), nil
}

// ToUTF8 transcodes raw locale bytes to UTF-8.
func (d *LocaleDecoder) ToUTF8(raw []byte) ([]byte, error) {
	return d.dec.Bytes(raw)
}
