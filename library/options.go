package library

import (
	"github.com/arloliu/tuyair/compress"
	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/internal/options"
	"github.com/arloliu/tuyair/tuya"
)

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*Builder]

// WithCompression sets the codec of the library payload. The default is format.CompressionZstd.
func WithCompression(compression format.CompressionType) BuilderOption {
	return options.New(func(b *Builder) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		b.header.Flag.CompressionType = compression

		return nil
	})
}

// WithValidation makes Add decode every code before accepting it, so a library never stores a
// code its devices would reject. It is off by default.
func WithValidation(enabled bool) BuilderOption {
	return options.NoError(func(b *Builder) {
		b.validate = enabled
	})
}

// WithCodec sets the Tuya codec used by AddSignal and by validation.
func WithCodec(codec *tuya.Codec) BuilderOption {
	return options.NoError(func(b *Builder) {
		if codec != nil {
			b.codec = codec
		}
	})
}

// OpenOption configures Open.
type OpenOption = options.Option[*Library]

// WithDecodeCodec sets the Tuya codec Library.Signal decodes with.
func WithDecodeCodec(codec *tuya.Codec) OpenOption {
	return options.NoError(func(l *Library) {
		if codec != nil {
			l.codec = codec
		}
	})
}
