package tuya

import (
	"github.com/arloliu/tuyair/compress"
	"github.com/arloliu/tuyair/encoding"
	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/lz"
)

// Info describes the structure of a Tuya code.
type Info struct {
	compress.CompressionStats

	// Timings is the number of timings in the decoded signal.
	Timings int
	// LiteralBlocks and ReferenceBlocks count the blocks of the compressed stream.
	LiteralBlocks   int
	ReferenceBlocks int
	// LiteralBytes is the number of payload bytes stored verbatim.
	LiteralBytes int
	// CopiedBytes is the number of payload bytes produced by back-references.
	CopiedBytes int
	// LongestReference is the longest back-reference length, 0 when there is none.
	LongestReference int
	// Signal is the decoded signal.
	Signal []int
}

// Blocks returns the total number of blocks.
func (i Info) Blocks() int {
	return i.LiteralBlocks + i.ReferenceBlocks
}

// Inspect decodes code and reports its block structure.
//
// It fails exactly where Decode fails, with the same errors.
func (c *Codec) Inspect(code string) (Info, error) {
	stream, err := decodeBase64(code)
	if err != nil {
		return Info{}, err
	}

	raw, err := c.compressor.Decompress(stream)
	if err != nil {
		return Info{}, &errs.DecodeError{Stage: errs.StageDecompress, Err: err}
	}

	signal, err := encoding.NewTimingDecoder(c.engine).Decode(raw)
	if err != nil {
		return Info{}, &errs.DecodeError{Stage: errs.StageDeserialize, Err: err}
	}

	info := Info{
		CompressionStats: compress.CompressionStats{
			Algorithm:      format.CompressionTuya,
			OriginalSize:   int64(len(raw)),
			CompressedSize: int64(len(stream)),
		},
		Timings: len(signal),
		Signal:  signal,
	}

	// The stream already decompressed cleanly, so block parsing cannot fail here.
	for blk := range lz.Blocks(stream) {
		switch blk.Kind {
		case lz.BlockLiteral:
			info.LiteralBlocks++
			info.LiteralBytes += len(blk.Literal)
		case lz.BlockReference:
			info.ReferenceBlocks++
			info.CopiedBytes += blk.Length
			info.LongestReference = max(info.LongestReference, blk.Length)
		}
	}

	return info, nil
}
