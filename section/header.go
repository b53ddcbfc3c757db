package section

import (
	"github.com/arloliu/tuyair/endian"
	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
)

// Header is the fixed-size section at the start of a library file.
type Header struct {
	// Flag holds the magic number, options and compression type.
	Flag Flag // byte offset 0-2, byte 3 reserved
	// Count is the number of functions, and of index entries.
	Count uint32 // byte offset 4-7
	// PayloadSize is the size of the payload after decompression.
	PayloadSize uint32 // byte offset 8-11
	// Checksum is the low 32 bits of the xxHash64 of the uncompressed payload.
	Checksum uint32 // byte offset 12-15
}

// NewHeader creates a header for a payload compressed with compression.
// Count, PayloadSize and Checksum are filled in by the builder.
func NewHeader(compression format.CompressionType) *Header {
	return &Header{Flag: NewFlag(compression)}
}

// Parse parses the header from exactly HeaderSize bytes and validates its flag.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.Flag.Options = engine.Uint16(data[0:2])
	h.Flag.CompressionType = format.CompressionType(data[2])
	h.Count = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint32(data[12:16])

	return h.Flag.Validate()
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = engine.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, byte(h.Flag.CompressionType), 0)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.PayloadSize)

	return engine.AppendUint32(dst, h.Checksum)
}

// IndexSize returns the size in bytes of the index that follows the header.
func (h *Header) IndexSize() int {
	return int(h.Count) * IndexEntrySize
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
