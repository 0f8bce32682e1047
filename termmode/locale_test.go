package termmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLocaleDecoderByNameUTF8VariantsReturnNil(t *testing.T) {
	for _, codeset := range []string{"", "UTF-8", "ASCII", "POSIX", "C"} {
		dec, err := NewLocaleDecoderByName(codeset)
		assert.NoError(t, err)
		assert.Nil(t, dec)
	}
}

func TestNewLocaleDecoderByNameUnknownCodesetReturnsNil(t *testing.T) {
	dec, err := NewLocaleDecoderByName("NOT-A-REAL-CODESET")
	assert.NoError(t, err)
	assert.Nil(t, dec)
}

func TestNewLocaleDecoderByNameKnownCodesetBuildsDecoder(t *testing.T) {
	dec, err := NewLocaleDecoderByName("ISO8859-1")
	assert.NoError(t, err)
	assert.NotNil(t, dec)
}

func TestLocaleDecoderToUTF8TranscodesLatin1(t *testing.T) {
	dec, err := NewLocaleDecoderByName("ISO8859-1")
	assert.NoError(t, err)
	// 0xE9 in ISO-8859-1 is U+00E9 LATIN SMALL LETTER E WITH ACUTE.
	out, err := dec.ToUTF8([]byte{0xE9})
	assert.NoError(t, err)
	assert.Equal(t, "é", string(out))
}

func TestRegisterLocaleEncodingAddsCodeset(t *testing.T) {
	enc := LocaleEncodings["ISO8859-15"]
	RegisterLocaleEncoding("CUSTOM-TEST-CODESET", enc)
	dec, err := NewLocaleDecoderByName("CUSTOM-TEST-CODESET")
	assert.NoError(t, err)
	assert.NotNil(t, dec)
}
