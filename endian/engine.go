// Package endian provides the byte order used by raw timing payloads and library archives.
//
// Tuya payloads and tuyair library files are always little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//	encoder := encoding.NewTimingEncoder(engine)
//
// The big-endian engine exists for tests and for tooling that inspects foreign dumps.
//
// EndianEngine values are stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so a single value can both
// patch fixed-size fields in place and append new ones.
//
// binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine writes the least significant byte first.
func IsLittleEndian(engine EndianEngine) bool {
	var buf [2]byte
	engine.PutUint16(buf[:], 0x0102)

	return buf[0] == 0x02
}
