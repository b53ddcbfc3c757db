package section

import (
	"github.com/arloliu/tuyair/endian"
	"github.com/arloliu/tuyair/errs"
)

// IndexEntry locates one function record in the uncompressed payload.
type IndexEntry struct {
	// FunctionID is the xxHash64 of the function name.
	//
	// Offset: 0, Size: 8 bytes
	FunctionID uint64

	// Offset is the absolute byte offset of the record in the payload.
	//
	// Offset: 8, Size: 4 bytes
	Offset uint32

	// Length is the byte length of the record.
	//
	// Offset: 12, Size: 4 bytes
	Length uint32
}

// NewIndexEntry creates an index entry.
func NewIndexEntry(functionID uint64, offset, length uint32) IndexEntry {
	return IndexEntry{
		FunctionID: functionID,
		Offset:     offset,
		Length:     length,
	}
}

// End returns the payload offset just past the record.
func (e IndexEntry) End() uint64 {
	return uint64(e.Offset) + uint64(e.Length)
}

// WriteToSlice writes the entry to data at offset and returns the next write position.
// data must have IndexEntrySize bytes available at offset.
func (e IndexEntry) WriteToSlice(data []byte, offset int) int {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint64(data[offset:offset+8], e.FunctionID)
	engine.PutUint32(data[offset+8:offset+12], e.Offset)
	engine.PutUint32(data[offset+12:offset+16], e.Length)

	return offset + IndexEntrySize
}

// ParseIndexEntry parses an IndexEntry from the start of data.
func ParseIndexEntry(data []byte) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	engine := endian.GetLittleEndianEngine()

	return IndexEntry{
		FunctionID: engine.Uint64(data[0:8]),
		Offset:     engine.Uint32(data[8:12]),
		Length:     engine.Uint32(data[12:16]),
	}, nil
}
