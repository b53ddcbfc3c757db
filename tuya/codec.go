package tuya

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/arloliu/tuyair/compress"
	"github.com/arloliu/tuyair/encoding"
	"github.com/arloliu/tuyair/endian"
	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/internal/options"
)

// Codec encodes and decodes Tuya IR codes.
type Codec struct {
	level      format.CompressionLevel
	compressor compress.TuyaCompressor
	engine     endian.EndianEngine
}

// CodecOption configures a Codec.
type CodecOption = options.Option[*Codec]

// WithCompressionLevel sets the block compression level used by Encode.
//
// format.LevelLiteral stores literal blocks only. Levels 1..9 enable back-references and
// produce identical output. The default is format.LevelDefault.
func WithCompressionLevel(level format.CompressionLevel) CodecOption {
	return options.New(func(c *Codec) error {
		if !level.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
		}
		c.level = level

		return nil
	})
}

// NewCodec creates a Codec.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	c := &Codec{
		level:  format.LevelDefault,
		engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	compressor, err := compress.NewTuyaCompressor(c.level)
	if err != nil {
		return nil, err
	}
	c.compressor = compressor

	return c, nil
}

// Level returns the compression level used by Encode.
func (c *Codec) Level() format.CompressionLevel {
	return c.level
}

// Encode converts a raw timing signal into a Tuya code string.
//
// Timings above 65535 are clamped to 65535; this is lossy and Decode returns the clamped
// value. Negative timings are rejected with errs.ErrNegativeTiming. An empty signal encodes
// to an empty string.
func (c *Codec) Encode(signal []int) (string, error) {
	for i, t := range signal {
		if t < 0 {
			return "", &errs.EncodeError{
				Stage: errs.StageValidate,
				Err:   fmt.Errorf("%w: timing %d at index %d", errs.ErrNegativeTiming, t, i),
			}
		}
	}

	encoder := encoding.NewTimingEncoder(c.engine)
	defer encoder.Finish()
	encoder.WriteSlice(signal)

	stream, err := c.compressor.Compress(encoder.Bytes())
	if err != nil {
		return "", &errs.EncodeError{Stage: errs.StageCompress, Err: err}
	}

	return base64.StdEncoding.EncodeToString(stream), nil
}

// Decode converts a Tuya code string back into its raw timing signal.
//
// Whitespace anywhere in code is ignored. An empty code decodes to an empty, non-nil signal.
func (c *Codec) Decode(code string) ([]int, error) {
	stream, err := decodeBase64(code)
	if err != nil {
		return nil, err
	}

	raw, err := c.compressor.Decompress(stream)
	if err != nil {
		return nil, &errs.DecodeError{Stage: errs.StageDecompress, Err: err}
	}

	signal, err := encoding.NewTimingDecoder(c.engine).Decode(raw)
	if err != nil {
		return nil, &errs.DecodeError{Stage: errs.StageDeserialize, Err: err}
	}

	return signal, nil
}

// decodeBase64 strips whitespace from code and decodes it with strict standard Base64.
func decodeBase64(code string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, code)

	stream, err := base64.StdEncoding.Strict().DecodeString(compact)
	if err != nil {
		return nil, &errs.DecodeError{
			Stage: errs.StageBase64,
			Err:   fmt.Errorf("%w: %w", errs.ErrInvalidBase64, err),
		}
	}

	return stream, nil
}
