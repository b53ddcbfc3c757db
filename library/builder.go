package library

import (
	"fmt"

	"github.com/arloliu/tuyair/compress"
	"github.com/arloliu/tuyair/encoding"
	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/internal/collision"
	"github.com/arloliu/tuyair/internal/hash"
	"github.com/arloliu/tuyair/internal/options"
	"github.com/arloliu/tuyair/section"
	"github.com/arloliu/tuyair/tuya"
)

// Builder collects named codes and serializes them into a library file.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	header   *section.Header
	entries  []section.IndexEntry
	payload  *encoding.VarStringEncoder
	tracker  *collision.Tracker
	codec    *tuya.Codec
	validate bool
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	codec, err := tuya.NewCodec()
	if err != nil {
		return nil, err
	}

	b := &Builder{
		header:  section.NewHeader(format.CompressionZstd),
		entries: make([]section.IndexEntry, 0, 32),
		payload: encoding.NewVarStringEncoder(),
		tracker: collision.NewTracker(),
		codec:   codec,
	}

	if err := options.Apply(b, opts...); err != nil {
		b.payload.Finish()
		return nil, err
	}

	return b, nil
}

// Add stores code under function.
//
// It fails with errs.ErrInvalidFunctionName for an empty name, errs.ErrFunctionAlreadyAdded for
// a repeated name and errs.ErrTooManyFunctions past section.MaxFunctions. With WithValidation
// enabled, a code that does not decode fails with the codec's *errs.DecodeError. Errors do not
// repeat the function name; callers add it where they report them.
func (b *Builder) Add(function string, code string) error {
	if len(b.entries) >= section.MaxFunctions {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManyFunctions, section.MaxFunctions)
	}

	if b.validate {
		if _, err := b.codec.Decode(code); err != nil {
			return err
		}
	}

	offset := b.payload.Size()
	recordLen := encoding.VarStringSize(function) + encoding.VarStringSize(code)
	if uint64(offset)+uint64(recordLen) > section.MaxOffset {
		return fmt.Errorf("%w: payload exceeds %d bytes", errs.ErrOffsetOutOfRange, uint64(section.MaxOffset))
	}

	id := hash.ID(function)
	if err := b.tracker.TrackFunction(function, id); err != nil {
		return err
	}

	b.payload.WriteSlice([]string{function, code})

	b.entries = append(b.entries, section.NewIndexEntry(id, uint32(offset), uint32(recordLen))) //nolint:gosec

	return nil
}

// AddSignal encodes signal with the builder's codec and stores it under function.
func (b *Builder) AddSignal(function string, signal []int) error {
	code, err := b.codec.Encode(signal)
	if err != nil {
		return err
	}

	return b.Add(function, code)
}

// Len returns the number of functions added so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Finish serializes the library and resets the builder for reuse.
//
// It fails with errs.ErrNoFunctionsAdded when nothing was added.
func (b *Builder) Finish() ([]byte, error) {
	if len(b.entries) == 0 {
		return nil, errs.ErrNoFunctionsAdded
	}

	codec, err := compress.GetCodec(b.header.Flag.CompressionType)
	if err != nil {
		return nil, err
	}

	raw := b.payload.Bytes()
	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress library payload: %w", err)
	}

	b.header.Count = uint32(len(b.entries)) //nolint:gosec
	b.header.PayloadSize = uint32(len(raw)) //nolint:gosec
	b.header.Checksum = hash.Checksum(raw)
	b.header.Flag.SetCollision(b.tracker.HasCollision())

	indexSize := b.header.IndexSize()
	out := make([]byte, 0, section.HeaderSize+indexSize+len(compressed))
	out = b.header.AppendTo(out)

	index := make([]byte, indexSize)
	pos := 0
	for _, e := range b.entries {
		pos = e.WriteToSlice(index, pos)
	}
	out = append(out, index...)
	out = append(out, compressed...)

	b.reset()

	return out, nil
}

// Release returns the builder's buffers to the pool. The builder must not be used afterwards.
func (b *Builder) Release() {
	b.payload.Finish()
}

func (b *Builder) reset() {
	b.entries = b.entries[:0]
	b.payload.Reset()
	b.tracker.Reset()
	b.header.Count = 0
	b.header.PayloadSize = 0
	b.header.Checksum = 0
	b.header.Flag.SetCollision(false)
}
