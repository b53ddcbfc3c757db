package section

import "math"

const (
	// Bit masks of the Flag field.
	CollisionMask    = 0x0001 // Two function names share an ID (bit 0)
	ReservedBitsMask = 0x000E // Reserved, must be zero (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Magic number (bits 4-15)

	// MagicLibraryV1 identifies version 1 of the library format.
	MagicLibraryV1 = 0x7A10
)

const (
	HeaderSize     = 16             // fixed header size in bytes
	IndexEntrySize = 16             // fixed index entry size in bytes
	IndexOffset    = HeaderSize     // byte offset where the index starts
	MaxOffset      = math.MaxUint32 // largest payload offset an index entry can hold
	MaxFunctions   = math.MaxUint16 // largest number of functions in one library
)
