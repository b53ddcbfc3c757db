package section

import (
	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
)

// Flag is the packed options field and compression type at the start of the header.
type Flag struct {
	// Options packs the magic number (bits 4-15) and option bits (0-3).
	// Bit 0 is set when two function names in the library hash to the same ID.
	Options uint16

	// CompressionType is the codec of the payload.
	CompressionType format.CompressionType
}

var validCompressions = map[format.CompressionType]struct{}{
	format.CompressionNone: {},
	format.CompressionZstd: {},
	format.CompressionS2:   {},
	format.CompressionLZ4:  {},
	format.CompressionTuya: {},
}

// NewFlag creates a version 1 flag for the given payload compression.
func NewFlag(compression format.CompressionType) Flag {
	return Flag{
		Options:         MagicLibraryV1,
		CompressionType: compression,
	}
}

// HasCollision reports whether the collision bit is set.
func (f Flag) HasCollision() bool {
	return f.Options&CollisionMask != 0
}

// SetCollision sets or clears the collision bit.
func (f *Flag) SetCollision(collision bool) {
	if collision {
		f.Options |= CollisionMask
	} else {
		f.Options &^= CollisionMask
	}
}

// MagicNumber returns bits 4-15 of Options.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, reserved bits and compression type.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicLibraryV1 || f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidMagicNumber
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return errs.ErrUnsupportedCodec
	}

	return nil
}
