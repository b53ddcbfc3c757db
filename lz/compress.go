package lz

import (
	"fmt"

	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
)

// Compress encodes src as a block stream at the given level.
//
// Level 0 emits literal blocks only. Levels 1..9 run the greedy matcher; they produce identical
// output. An empty src yields an empty stream.
func Compress(src []byte, level format.CompressionLevel) ([]byte, error) {
	// Worst case is all literals: one header byte per MaxLiteral bytes.
	dst := make([]byte, 0, len(src)+(len(src)+MaxLiteral-1)/MaxLiteral)

	return AppendCompressed(dst, src, level)
}

// AppendCompressed appends the block stream for src to dst.
func AppendCompressed(dst []byte, src []byte, level format.CompressionLevel) ([]byte, error) {
	if !level.Valid() {
		return dst, fmt.Errorf("%w: %d (want %d..%d)", errs.ErrInvalidLevel, level, format.LevelLiteral, format.LevelMax)
	}

	if !level.Matching() {
		return AppendLiterals(dst, src), nil
	}

	m := NewMatcher(src)
	defer m.Release()

	var err error
	pos, blockStart := 0, 0
	for pos < len(src) {
		match, ok := m.Find(pos)
		if !ok {
			pos++
			continue
		}

		dst = AppendLiterals(dst, src[blockStart:pos])
		if dst, err = AppendReference(dst, match.Length, match.Distance); err != nil {
			return dst, err
		}

		pos += match.Length
		blockStart = pos
	}

	return AppendLiterals(dst, src[blockStart:pos]), nil
}
