// Package tuyair converts raw infrared timing signals to and from the Base64 code strings
// Tuya IR blasters accept, and stores named codes in compact library files.
//
// A Tuya code is built in three steps: every timing (in microseconds) is written as a
// little-endian uint16, the bytes are compressed with a small LZ77 block format (8KiB
// window, literal runs of up to 32 bytes, references of 3 to 264 bytes), and the result is
// Base64 encoded. Decoding reverses the steps.
//
// # Basic Usage
//
//	code, _ := tuyair.Encode([]int{9000, 4500, 560, 1690, 560, 560})
//	// code == "CygjlBEwApoGMAIwAg=="
//
//	signal, _ := tuyair.Decode(code)
//	// signal == []int{9000, 4500, 560, 1690, 560, 560}
//
// Timings above 65535 are clamped, so a round trip is exact only for values in 0..65535.
//
// # Code Libraries
//
// A library stores a remote's worth of codes keyed by function name:
//
//	builder, _ := tuyair.NewLibraryBuilder()
//	_ = builder.AddSignal("POWER", powerSignal)
//	_ = builder.Add("MUTE", muteCode)
//	data, _ := builder.Finish()
//
//	lib, _ := tuyair.OpenLibrary(data)
//	code, ok := lib.Code("POWER")
//
// # Package Structure
//
// This package wraps the most common calls. The tuya package holds the codec, lz the block
// format, library the library file format and irdb the IRDB batch conversion.
package tuyair

import (
	"fmt"

	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/internal/hash"
	"github.com/arloliu/tuyair/library"
	"github.com/arloliu/tuyair/tuya"
)

var defaultCodec = mustCodec(tuya.NewCodec())

func mustCodec(c *tuya.Codec, err error) *tuya.Codec {
	if err != nil {
		panic(err)
	}

	return c
}

// NewCodec creates a Tuya codec. Without options it encodes at format.LevelDefault.
func NewCodec(opts ...tuya.CodecOption) (*tuya.Codec, error) {
	return tuya.NewCodec(opts...)
}

// Encode converts a raw timing signal into a Tuya code string at the default level.
//
// Negative timings fail with errs.ErrNegativeTiming; timings above 65535 are clamped.
func Encode(signal []int) (string, error) {
	return defaultCodec.Encode(signal)
}

// EncodeWithLevel is Encode at the given compression level.
//
// Level 0 emits literal blocks only; levels 1..9 enable back-references and produce the same
// output. Other levels fail with errs.ErrInvalidLevel.
func EncodeWithLevel(signal []int, level int) (string, error) {
	if level < 0 || level > int(format.LevelMax) {
		return "", fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}

	codec, err := tuya.NewCodec(tuya.WithCompressionLevel(format.CompressionLevel(level)))
	if err != nil {
		return "", err
	}

	return codec.Encode(signal)
}

// Decode converts a Tuya code string back into its timing signal. Whitespace in code is
// ignored.
func Decode(code string) ([]int, error) {
	return defaultCodec.Decode(code)
}

// NewLibraryBuilder creates a code library builder.
func NewLibraryBuilder(opts ...library.BuilderOption) (*library.Builder, error) {
	return library.NewBuilder(opts...)
}

// OpenLibrary parses a code library produced by a library builder.
func OpenLibrary(data []byte, opts ...library.OpenOption) (*library.Library, error) {
	return library.Open(data, opts...)
}

// FunctionID returns the 64-bit identifier a library indexes a function name under.
//
// Equal names always produce equal IDs; distinct names collide with negligible probability,
// and libraries resolve such collisions by name.
func FunctionID(name string) uint64 {
	return hash.ID(name)
}
