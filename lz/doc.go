/*
Package lz implements the LZ77-family block format used inside Tuya IR codes.

The compressed stream is a sequence of blocks written back to back with no separators.
Every block starts with one header byte; its top 3 bits select the kind:

	literal   : 000LLLLL <L+1 raw bytes>                     1..32 bytes
	reference : lllDDDDD [ext] dddddddd                      length 3..264, distance 1..8192

For a reference block the 3-bit field holds length-2. When it is 7 an extension byte
follows the header and is added to it, giving lengths up to 7+255+2 = 264. The 13-bit
distance is stored as distance-1, high 5 bits in the header and low 8 bits in the last byte.

The greedy compressor scans the input once. At every position it looks for the longest
match within the last WindowSize bytes, preferring the nearest one on ties, and emits a
reference block when the match is at least MinMatch bytes long. Level 0 skips matching.

# Examples

Compress and decompress:

	stream, err := lz.Compress(raw, format.LevelDefault)
	if err != nil {
		return err
	}
	out, err := lz.Decompress(stream)

Walk the blocks of a stream without replaying it:

	for blk, err := range lz.Blocks(stream) {
		if err != nil {
			return err
		}
		fmt.Println(blk)
	}
*/
package lz
