package compress

import (
	"fmt"

	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
)

// Compressor compresses a complete payload: either one raw timing buffer or the record payload
// of a code library.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// The input slice is not modified. Implementations may return data itself when they do
	// not transform it (see NoOpCompressor); callers must not mutate data afterwards in that case.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original payload, or an error when data is corrupt or was
	// produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression of a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 for an empty original.
//
// Short IR signals often compress to slightly more than their raw size because every literal
// run costs a header byte; a ratio above 1.0 is normal there.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage. It is negative when compression grew
// the payload.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for compressionType.
//
// target describes what the codec is for and only appears in the error message.
// The Tuya codec is created at format.LevelDefault.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionTuya:
		return NewTuyaCompressor(format.LevelDefault)
	default:
		return nil, fmt.Errorf("%w for %s: %s", errs.ErrUnsupportedCodec, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionTuya: TuyaCompressor{level: format.LevelDefault},
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCodec, compressionType)
}
