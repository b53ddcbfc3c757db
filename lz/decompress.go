package lz

import (
	"fmt"
	"iter"

	"github.com/arloliu/tuyair/errs"
)

// Decompress replays the block stream src and returns the decoded bytes.
//
// A block that declares more bytes than remain in src fails with errs.ErrTruncatedBlock.
// A reference reaching before the start of the output fails with errs.ErrInvalidDistance.
// Both are reported as *errs.FormatError carrying the offset of the offending header.
func Decompress(src []byte) ([]byte, error) {
	out := make([]byte, 0, 2*len(src))

	for off := 0; off < len(src); {
		blk, next, err := readBlock(src, off)
		if err != nil {
			return nil, err
		}

		if blk.Kind == BlockLiteral {
			out = append(out, blk.Literal...)
			off = next

			continue
		}

		if blk.Distance > len(out) {
			return nil, &errs.FormatError{
				Offset: off,
				Err:    errs.ErrInvalidDistance,
				Detail: fmt.Sprintf("distance %d with %d bytes decoded", blk.Distance, len(out)),
			}
		}

		start := len(out) - blk.Distance
		if blk.Distance >= blk.Length {
			out = append(out, out[start:start+blk.Length]...)
		} else {
			// Overlapping copy: each appended byte becomes a source for the next one.
			for k := range blk.Length {
				out = append(out, out[start+k])
			}
		}
		off = next
	}

	return out, nil
}

// Blocks returns an iterator over the blocks of src without replaying them.
//
// Iteration stops after the first error, which is yielded with a zero Block.
// Distances are not checked against the decoded size; use Decompress for that.
func Blocks(src []byte) iter.Seq2[Block, error] {
	return func(yield func(Block, error) bool) {
		for off := 0; off < len(src); {
			blk, next, err := readBlock(src, off)
			if err != nil {
				yield(Block{}, err)
				return
			}
			if !yield(blk, nil) {
				return
			}
			off = next
		}
	}
}

// readBlock parses the block whose header is at src[off] and returns it with the offset of the
// next header.
func readBlock(src []byte, off int) (Block, int, error) {
	header := src[off]
	pos := off + 1
	l := int(header >> 5)
	d := int(header & 0x1F)

	if l == 0 {
		n := d + 1
		if len(src)-pos < n {
			return Block{}, off, &errs.FormatError{
				Offset: off,
				Err:    errs.ErrTruncatedBlock,
				Detail: fmt.Sprintf("literal declares %d bytes, %d remain", n, len(src)-pos),
			}
		}

		return Block{Kind: BlockLiteral, Literal: src[pos : pos+n], Offset: off}, pos + n, nil
	}

	need := 1
	if l == lengthFieldMax {
		need = 2
	}
	if len(src)-pos < need {
		return Block{}, off, &errs.FormatError{
			Offset: off,
			Err:    errs.ErrTruncatedBlock,
			Detail: fmt.Sprintf("reference needs %d more bytes, %d remain", need, len(src)-pos),
		}
	}

	if l == lengthFieldMax {
		l += int(src[pos])
		pos++
	}
	d = (d<<8 | int(src[pos])) + 1
	pos++

	return Block{Kind: BlockReference, Length: l + 2, Distance: d, Offset: off}, pos, nil
}
