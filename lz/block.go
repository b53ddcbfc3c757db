package lz

import (
	"fmt"

	"github.com/arloliu/tuyair/errs"
)

// Block format constants.
const (
	WindowSize = 1 << 13 // Maximum back-reference distance.
	MinMatch   = 3       // Shortest match worth a reference block.
	MaxMatch   = 255 + 9 // Longest reference block (7 + 255 + 2).
	MaxLiteral = 1 << 5  // Maximum bytes carried by one literal block.

	lengthFieldMax = 7 // 3-bit length field value that signals an extension byte.
)

// BlockKind distinguishes literal and reference blocks.
type BlockKind uint8

const (
	BlockLiteral   BlockKind = iota + 1 // BlockLiteral carries raw bytes.
	BlockReference                      // BlockReference copies already decoded bytes.
)

func (k BlockKind) String() string {
	switch k {
	case BlockLiteral:
		return "literal"
	case BlockReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Block is one decoded unit of a compressed stream.
//
// Literal is set for literal blocks and aliases the source stream.
// Length and Distance are set for reference blocks.
type Block struct {
	Kind     BlockKind
	Literal  []byte
	Length   int
	Distance int
	// Offset is the position of the header byte in the compressed stream.
	Offset int
}

func (b Block) String() string {
	if b.Kind == BlockLiteral {
		return fmt.Sprintf("literal(%d)", len(b.Literal))
	}

	return fmt.Sprintf("reference(length=%d, distance=%d)", b.Length, b.Distance)
}

// EncodedSize returns the number of stream bytes the block occupies.
func (b Block) EncodedSize() int {
	if b.Kind == BlockLiteral {
		return 1 + len(b.Literal)
	}
	if b.Length-2 >= lengthFieldMax {
		return 3
	}

	return 2
}

// AppendLiteral appends a single literal block carrying data to dst.
//
// data must hold 1..MaxLiteral bytes.
func AppendLiteral(dst []byte, data []byte) ([]byte, error) {
	if len(data) == 0 || len(data) > MaxLiteral {
		return dst, fmt.Errorf("%w: literal block of %d bytes", errs.ErrInvalidLength, len(data))
	}

	dst = append(dst, byte(len(data)-1))

	return append(dst, data...), nil
}

// AppendLiterals appends data to dst as consecutive literal blocks of at most MaxLiteral bytes.
// Empty data appends nothing.
func AppendLiterals(dst []byte, data []byte) []byte {
	for len(data) > 0 {
		n := min(len(data), MaxLiteral)
		dst = append(dst, byte(n-1))
		dst = append(dst, data[:n]...)
		data = data[n:]
	}

	return dst
}

// AppendReference appends a reference block to dst.
//
// length must be within MinMatch..MaxMatch and distance within 1..WindowSize;
// anything else is an encoder bug and is rejected rather than wrapped.
func AppendReference(dst []byte, length int, distance int) ([]byte, error) {
	if length < MinMatch || length > MaxMatch {
		return dst, fmt.Errorf("%w: reference length %d", errs.ErrInvalidLength, length)
	}
	if distance < 1 || distance > WindowSize {
		return dst, fmt.Errorf("%w: reference distance %d", errs.ErrInvalidDistance, distance)
	}

	l := length - 2
	d := distance - 1

	if l >= lengthFieldMax {
		return append(dst, byte(lengthFieldMax<<5|d>>8), byte(l-lengthFieldMax), byte(d&0xFF)), nil
	}

	return append(dst, byte(l<<5|d>>8), byte(d&0xFF)), nil
}
