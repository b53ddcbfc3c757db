package encoding

import "iter"

// ColumnarEncoder appends fixed-layout values of type T to an internal buffer.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of encoded values.
	Size() int

	// Reset clears the encoded values so the encoder can start a new sequence.
	// The internal buffer capacity is kept.
	Reset()

	// Finish returns buffer resources to the pool.
	//
	// Use defer to ensure it is called even in error paths:
	//
	//	encoder := NewTimingEncoder(engine)
	//	defer encoder.Finish()
	//
	//	encoder.WriteSlice(signal)
	//	payload := bytes.Clone(encoder.Bytes())
	Finish()

	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values of type T from a payload produced by the matching encoder.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator over the first count values in data.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false when index is out of range.
	At(data []byte, index int, count int) (T, bool)
}
