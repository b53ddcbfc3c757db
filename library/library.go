package library

import (
	"fmt"
	"iter"

	"github.com/arloliu/tuyair/compress"
	"github.com/arloliu/tuyair/encoding"
	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/internal/hash"
	"github.com/arloliu/tuyair/internal/options"
	"github.com/arloliu/tuyair/section"
	"github.com/arloliu/tuyair/tuya"
)

// Library is a parsed library file. It is immutable and safe for concurrent use.
type Library struct {
	header  section.Header
	entries []section.IndexEntry
	payload []byte
	byID    map[uint64][]int // function ID → entry indexes, more than one on collision
	codec   *tuya.Codec
}

// Open parses and verifies a library file.
//
// The payload is decompressed eagerly, its checksum verified and every index entry
// bounds-checked, so lookups on the returned Library cannot fail on corrupt data.
// An uncompressed library references data directly; do not modify data afterwards.
func Open(data []byte, opts ...OpenOption) (*Library, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	indexEnd := section.IndexOffset + header.IndexSize()
	if header.Count > section.MaxFunctions || len(data) < indexEnd {
		return nil, fmt.Errorf("%w: %d entries declared, %d bytes after header",
			errs.ErrInvalidIndexEntrySize, header.Count, len(data)-section.HeaderSize)
	}

	codec, err := compress.GetCodec(header.Flag.CompressionType)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[indexEnd:])
	if err != nil {
		return nil, fmt.Errorf("decompress library payload: %w", err)
	}
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header declares %d",
			errs.ErrMalformedPayload, len(payload), header.PayloadSize)
	}
	if hash.Checksum(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	lib := &Library{
		header:  header,
		entries: make([]section.IndexEntry, header.Count),
		payload: payload,
		byID:    make(map[uint64][]int, header.Count),
	}

	for i := range lib.entries {
		start := section.IndexOffset + i*section.IndexEntrySize
		entry, err := section.ParseIndexEntry(data[start:indexEnd])
		if err != nil {
			return nil, err
		}
		if entry.End() > uint64(len(payload)) {
			return nil, fmt.Errorf("%w: entry %d ends at %d, payload is %d bytes",
				errs.ErrOffsetOutOfRange, i, entry.End(), len(payload))
		}
		if _, _, err := parseRecord(lib.record(entry)); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		lib.entries[i] = entry
		lib.byID[entry.FunctionID] = append(lib.byID[entry.FunctionID], i)
	}

	if err := options.Apply(lib, opts...); err != nil {
		return nil, err
	}
	if lib.codec == nil {
		if lib.codec, err = tuya.NewCodec(); err != nil {
			return nil, err
		}
	}

	return lib, nil
}

// Len returns the number of functions.
func (l *Library) Len() int {
	return len(l.entries)
}

// Compression returns the codec of the stored payload.
func (l *Library) Compression() format.CompressionType {
	return l.header.Flag.CompressionType
}

// HasCollision reports whether two function names in the library share an ID.
func (l *Library) HasCollision() bool {
	return l.header.Flag.HasCollision()
}

// PayloadSize returns the uncompressed payload size in bytes.
func (l *Library) PayloadSize() int {
	return len(l.payload)
}

// Code returns the Tuya code stored under function.
func (l *Library) Code(function string) (string, bool) {
	for _, i := range l.byID[hash.ID(function)] {
		record := l.record(l.entries[i])
		if !encoding.HasVarStringPrefix(record, function) {
			continue
		}
		_, code, _ := parseRecord(record)

		return code, true
	}

	return "", false
}

// Signal decodes the code stored under function.
//
// The second result is false when the function is not in the library.
func (l *Library) Signal(function string) ([]int, bool, error) {
	code, ok := l.Code(function)
	if !ok {
		return nil, false, nil
	}

	signal, err := l.codec.Decode(code)
	if err != nil {
		return nil, true, fmt.Errorf("function %q: %w", function, err)
	}

	return signal, true, nil
}

// Functions returns the function names in the order they were added.
func (l *Library) Functions() []string {
	names := make([]string, 0, len(l.entries))
	for name := range l.All() {
		names = append(names, name)
	}

	return names
}

// All returns an iterator over function names and codes in the order they were added.
func (l *Library) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range l.entries {
			name, code, _ := parseRecord(l.record(e))
			if !yield(name, code) {
				return
			}
		}
	}
}

func (l *Library) record(e section.IndexEntry) []byte {
	return l.payload[e.Offset:e.End()]
}

// parseRecord splits a record into its name and code. The record must be consumed exactly.
func parseRecord(record []byte) (string, string, error) {
	name, rest, err := encoding.ReadVarString(record)
	if err != nil {
		return "", "", err
	}
	if name == "" {
		return "", "", errs.ErrInvalidFunctionName
	}

	code, rest, err := encoding.ReadVarString(rest)
	if err != nil {
		return "", "", err
	}
	if len(rest) != 0 {
		return "", "", fmt.Errorf("%w: %d trailing bytes in record", errs.ErrMalformedPayload, len(rest))
	}

	return name, code, nil
}
