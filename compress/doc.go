// Package compress provides the payload codecs used by tuyair.
//
// Two payload kinds go through a Codec:
//
//  1. The raw timing buffer of a single IR code. Tuya devices only understand the Tuya block
//     format, so tuya.Codec always uses TuyaCompressor here.
//  2. The record payload of a code library file (see package library). Any codec works; the
//     choice is stored in the library header.
//
// Supported algorithms:
//   - None: pass-through (format.CompressionNone)
//   - Zstd: best ratio for library files (format.CompressionZstd)
//   - S2: fastest (format.CompressionS2)
//   - LZ4: fast decompression (format.CompressionLZ4)
//   - Tuya: the IR block format (format.CompressionTuya)
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	compressed, err := codec.Compress(payload)
//
// GetCodec returns shared instances; CreateCodec builds a new one. Every codec is safe for
// concurrent use. Encoders and decoders that carry state (Zstd, LZ4) are pooled internally.
//
// # Zstd backends
//
// The default build uses the pure-Go github.com/klauspost/compress/zstd. Building with
// -tags gozstd and cgo enabled swaps in github.com/valyala/gozstd. Both write standard
// Zstandard frames.
package compress
