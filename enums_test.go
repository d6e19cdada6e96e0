package elasticemail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodingType_Codes(t *testing.T) {
	tests := []struct {
		v    EncodingType
		code int
		name string
	}{
		{EncodingTypeNone, 0, "None"},
		{EncodingTypeRaw7Bit, 1, "Raw7Bit"},
		{EncodingTypeRaw8Bit, 2, "Raw8Bit"},
		{EncodingTypeQuotedPrintable, 3, "QuotedPrintable"},
		{EncodingTypeBase64, 4, "Base64"},
		{EncodingTypeUue, 5, "Uue"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, int(tt.v), tt.name)
		assert.Equal(t, tt.name, tt.v.String())

		got, err := ParseEncodingType(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.v, got)
	}
}

func TestContactStatus_Codes(t *testing.T) {
	want := map[ContactStatus]int{
		ContactStatusTransactional: -2,
		ContactStatusEngaged:       -1,
		ContactStatusActive:        0,
		ContactStatusBounced:       1,
		ContactStatusUnsubscribed:  2,
		ContactStatusAbuse:         3,
		ContactStatusInactive:      4,
		ContactStatusStale:         5,
		ContactStatusNotConfirmed:  6,
	}
	for s, code := range want {
		assert.Equal(t, code, int(s), s.String())
		assert.True(t, s.Valid(), s.String())
	}
}

func TestExportAndCompressionCodes(t *testing.T) {
	assert.Equal(t, 1, int(ExportFileFormatCsv))
	assert.Equal(t, 2, int(ExportFileFormatXML))
	assert.Equal(t, 3, int(ExportFileFormatJSON))
	assert.Equal(t, 0, int(CompressionFormatNone))
	assert.Equal(t, 1, int(CompressionFormatZip))
}

func TestEnum_ParseRejects(t *testing.T) {
	for _, in := range []string{"", "4", "base-64", "Gzip"} {
		_, err := ParseEncodingType(in)
		assert.ErrorIs(t, err, ErrInvalidEnum, in)
	}
	_, err := ParseContactStatus("-2")
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestEnum_ParseCaseInsensitive(t *testing.T) {
	got, err := ParseContactStatus("notconfirmed")
	require.NoError(t, err)
	assert.Equal(t, ContactStatusNotConfirmed, got)
}

func TestEnum_OutOfRange(t *testing.T) {
	v := EncodingType(6)
	assert.False(t, v.Valid())
	assert.Equal(t, "EncodingType(6)", v.String())

	_, err := v.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestEnum_TextRoundTrip(t *testing.T) {
	var f ExportFileFormat
	require.NoError(t, f.UnmarshalText([]byte("Json")))
	assert.Equal(t, ExportFileFormatJSON, f)

	b, err := f.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Json", string(b))

	var c CompressionFormat
	require.NoError(t, c.UnmarshalText([]byte("zip")))
	assert.Equal(t, CompressionFormatZip, c)
	assert.ErrorIs(t, c.UnmarshalText([]byte("1")), ErrInvalidEnum)
}
