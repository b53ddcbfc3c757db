package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/tuyair/endian"
	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/internal/pool"
)

const (
	// TimingSize is the number of bytes a timing occupies in the raw payload.
	TimingSize = 2
	// MaxTiming is the largest timing the payload can carry, in microseconds.
	MaxTiming = math.MaxUint16
)

// TimingEncoder serializes IR timings as fixed 16-bit values.
//
// Timings above MaxTiming are clamped to MaxTiming. This is lossy and one-way; Clamped reports
// how many values were affected. Negative timings are not meaningful here and are stored as 0
// (and counted as clamped); callers that care reject them before writing.
type TimingEncoder struct {
	buf     *pool.ByteBuffer
	count   int
	clamped int
	engine  endian.EndianEngine
}

var _ ColumnarEncoder[int] = (*TimingEncoder)(nil)

// NewTimingEncoder creates a timing encoder using the given byte order.
//
// Tuya payloads are little-endian; use endian.GetLittleEndianEngine() for them.
//
// Example:
//
//	encoder := NewTimingEncoder(endian.GetLittleEndianEngine())
//	defer encoder.Finish()
//	encoder.WriteSlice([]int{9000, 4500, 560, 1690})
//	payload := encoder.Bytes() // 8 bytes
func NewTimingEncoder(engine endian.EndianEngine) *TimingEncoder {
	return &TimingEncoder{
		engine: engine,
		buf:    pool.GetPayloadBuffer(),
	}
}

// Write encodes a single timing.
func (e *TimingEncoder) Write(timing int) {
	e.count++

	start := e.buf.Len()
	e.buf.ExtendOrGrow(TimingSize)
	e.engine.PutUint16(e.buf.Bytes()[start:], e.clamp(timing))
}

// WriteSlice encodes timings in order, growing the buffer once.
func (e *TimingEncoder) WriteSlice(timings []int) {
	n := len(timings)
	if n == 0 {
		return
	}
	e.count += n

	start := e.buf.Len()
	e.buf.ExtendOrGrow(n * TimingSize)
	buf := e.buf.Bytes()

	for i, t := range timings {
		offset := start + i*TimingSize
		e.engine.PutUint16(buf[offset:offset+TimingSize], e.clamp(t))
	}
}

// Bytes returns the raw payload written so far.
func (e *TimingEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded timings.
func (e *TimingEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *TimingEncoder) Size() int {
	return e.buf.Len()
}

// Clamped returns how many written timings were outside 0..MaxTiming.
func (e *TimingEncoder) Clamped() int {
	return e.clamped
}

// Reset drops the encoded timings but keeps the buffer, so the encoder can be reused without
// going back to the pool.
func (e *TimingEncoder) Reset() {
	e.buf.Reset()
	e.count = 0
	e.clamped = 0
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *TimingEncoder) Finish() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
	e.clamped = 0
}

func (e *TimingEncoder) clamp(t int) uint16 {
	switch {
	case t > MaxTiming:
		e.clamped++
		return MaxTiming
	case t < 0:
		e.clamped++
		return 0
	default:
		return uint16(t)
	}
}

// TimingDecoder reads 16-bit timings from a raw payload. It is stateless.
type TimingDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[int] = TimingDecoder{}

// NewTimingDecoder creates a timing decoder; engine must match the encoder's.
func NewTimingDecoder(engine endian.EndianEngine) TimingDecoder {
	return TimingDecoder{engine: engine}
}

// Decode reads every timing in data.
//
// The payload must be a whole number of 16-bit groups; a dangling byte fails with a
// *errs.FormatError wrapping errs.ErrMalformedPayload. An empty payload yields an empty,
// non-nil signal.
func (d TimingDecoder) Decode(data []byte) ([]int, error) {
	if rem := len(data) % TimingSize; rem != 0 {
		return nil, &errs.FormatError{
			Offset: len(data) - rem,
			Err:    errs.ErrMalformedPayload,
			Detail: fmt.Sprintf("%d trailing byte(s) after %d timings", rem, len(data)/TimingSize),
		}
	}

	signal := make([]int, 0, len(data)/TimingSize)
	for t := range d.All(data, len(data)/TimingSize) {
		signal = append(signal, t)
	}

	return signal, nil
}

// All returns an iterator over the first count timings in data.
// It yields nothing when data is not a whole number of timings.
func (d TimingDecoder) All(data []byte, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(data)%TimingSize != 0 {
			return
		}

		for i := range count {
			start := i * TimingSize
			if start+TimingSize > len(data) {
				return
			}
			if !yield(int(d.engine.Uint16(data[start : start+TimingSize]))) {
				return
			}
		}
	}
}

// At returns the timing at index.
func (d TimingDecoder) At(data []byte, index int, count int) (int, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * TimingSize
	if start+TimingSize > len(data) {
		return 0, false
	}

	return int(d.engine.Uint16(data[start : start+TimingSize])), true
}
