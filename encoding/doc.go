// Package encoding serializes the fixed-layout parts of tuyair formats.
//
// TimingEncoder and TimingDecoder convert IR timings to and from the raw payload that the
// Tuya block compressor works on: one unsigned 16-bit value per timing, in the byte order of
// the given endian engine (little-endian for Tuya codes). Both implement the generic
// ColumnarEncoder and ColumnarDecoder interfaces.
//
// VarStringEncoder and ReadVarString handle the uvarint length-prefixed strings that make up
// the records of a code library payload.
//
// Encoders draw their buffers from internal pools. Call Finish when done:
//
//	encoder := encoding.NewTimingEncoder(endian.GetLittleEndianEngine())
//	defer encoder.Finish()
//
//	encoder.WriteSlice([]int{9000, 4500, 560, 1690})
//	payload := bytes.Clone(encoder.Bytes())
package encoding
