// Package section defines the fixed-size binary structures of a tuyair code library file.
//
// A library file is laid out as:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (16 bytes)                            │
//	│  - Flag (2 bytes): magic number and options  │
//	│  - Compression type (1 byte)                 │
//	│  - Reserved (1 byte, zero)                   │
//	│  - Function count (4 bytes)                  │
//	│  - Payload size (4 bytes, uncompressed)      │
//	│  - Payload checksum (4 bytes)                │
//	├──────────────────────────────────────────────┤
//	│ Index (count × 16 bytes)                     │
//	│  - Function ID (8 bytes, xxHash64 of name)   │
//	│  - Record offset (4 bytes)                   │
//	│  - Record length (4 bytes)                   │
//	├──────────────────────────────────────────────┤
//	│ Payload (compressed, to end of file)         │
//	│  - uvarint name length, name                 │
//	│  - uvarint code length, Tuya code            │
//	└──────────────────────────────────────────────┘
//
// Every multi-byte field is little-endian. Record offsets and lengths refer to the payload after
// decompression. The checksum is the low 32 bits of the xxHash64 of the uncompressed payload.
package section
