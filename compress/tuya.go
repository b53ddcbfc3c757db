package compress

import (
	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/lz"
)

// TuyaCompressor adapts the Tuya IR block format to Codec.
//
// It is what tuya.Codec runs between the timing serializer and Base64, and it can also compress
// a code library payload, although the general-purpose codecs usually do better there.
type TuyaCompressor struct {
	level format.CompressionLevel
}

var _ Codec = (*TuyaCompressor)(nil)

// NewTuyaCompressor creates a Tuya compressor at the given level.
//
// Level format.LevelLiteral stores literal blocks only; levels 1..9 search for back-references.
// Out-of-range levels fail with errs.ErrInvalidLevel.
func NewTuyaCompressor(level format.CompressionLevel) (TuyaCompressor, error) {
	if _, err := lz.Compress(nil, level); err != nil {
		return TuyaCompressor{}, err
	}

	return TuyaCompressor{level: level}, nil
}

// Level returns the configured compression level.
func (c TuyaCompressor) Level() format.CompressionLevel {
	return c.level
}

// Compress encodes data as a block stream. An empty input yields an empty stream.
func (c TuyaCompressor) Compress(data []byte) ([]byte, error) {
	return lz.Compress(data, c.level)
}

// Decompress replays a block stream. Malformed streams fail with a *errs.FormatError.
func (c TuyaCompressor) Decompress(data []byte) ([]byte, error) {
	return lz.Decompress(data)
}
