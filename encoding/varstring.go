package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/internal/pool"
)

// VarStringEncoder encodes strings with a uvarint length prefix.
//
// Each string is encoded as:
//   - uvarint: length in bytes
//   - N bytes: string data
//
// Unlike a fixed one-byte prefix this has no length limit, which suits Tuya codes of a few
// hundred characters.
//
// Note: The VarStringEncoder is NOT a ColumnarEncoder.
type VarStringEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewVarStringEncoder creates an encoder backed by a pooled library buffer.
func NewVarStringEncoder() *VarStringEncoder {
	return &VarStringEncoder{buf: pool.GetLibraryBuffer()}
}

// VarStringSize returns the encoded size of text.
func VarStringSize(text string) int {
	var prefix [binary.MaxVarintLen64]byte
	return binary.PutUvarint(prefix[:], uint64(len(text))) + len(text)
}

// Write encodes a single string.
func (e *VarStringEncoder) Write(text string) {
	e.count++
	e.buf.Grow(VarStringSize(text))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(text)))
	e.buf.B = append(e.buf.B, text...)
}

// WriteSlice encodes texts in order, growing the buffer once.
func (e *VarStringEncoder) WriteSlice(texts []string) {
	total := 0
	for _, text := range texts {
		total += VarStringSize(text)
	}
	e.buf.Grow(total)

	for _, text := range texts {
		e.Write(text)
	}
}

// Bytes returns the encoded data. The slice shares the encoder's buffer; do not modify it.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of strings encoded.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the total size of encoded data in bytes.
func (e *VarStringEncoder) Size() int {
	return e.buf.Len()
}

// Reset drops the encoded strings but keeps the buffer.
func (e *VarStringEncoder) Reset() {
	e.buf.Reset()
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *VarStringEncoder) Finish() {
	if e.buf != nil {
		pool.PutLibraryBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// ReadVarString decodes one string from the front of data and returns the rest.
//
// A missing or oversized length prefix fails with errs.ErrMalformedPayload.
func ReadVarString(data []byte) (string, []byte, error) {
	n, size := binary.Uvarint(data)
	if size <= 0 {
		return "", nil, fmt.Errorf("%w: bad string length prefix", errs.ErrMalformedPayload)
	}
	if uint64(len(data)-size) < n {
		return "", nil, fmt.Errorf("%w: string of %d bytes exceeds %d remaining",
			errs.ErrMalformedPayload, n, len(data)-size)
	}
	end := size + int(n) //nolint:gosec

	return string(data[size:end]), data[end:], nil
}

// HasVarStringPrefix reports whether data starts with text in encoded form, without allocating.
func HasVarStringPrefix(data []byte, text string) bool {
	n, size := binary.Uvarint(data)
	if size <= 0 || n != uint64(len(text)) || len(data)-size < len(text) {
		return false
	}

	return string(data[size:size+len(text)]) == text
}
