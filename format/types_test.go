package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		cType    CompressionType
		expected string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionTuya, "Tuya"},
		{CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestParseCompressionType(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4, CompressionTuya} {
		parsed, ok := ParseCompressionType(c.String())
		require.True(t, ok, c.String())
		require.Equal(t, c, parsed)
	}

	parsed, ok := ParseCompressionType("zstd")
	require.True(t, ok)
	require.Equal(t, CompressionZstd, parsed)

	_, ok = ParseCompressionType("brotli")
	require.False(t, ok)
}

func TestCompressionLevel(t *testing.T) {
	require.True(t, LevelLiteral.Valid())
	require.True(t, LevelDefault.Valid())
	require.True(t, LevelMax.Valid())
	require.False(t, CompressionLevel(10).Valid())

	require.False(t, LevelLiteral.Matching())
	for l := CompressionLevel(1); l <= LevelMax; l++ {
		require.True(t, l.Matching(), "level %d", l)
	}
}
