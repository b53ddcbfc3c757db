package compress

// ZstdCompressor compresses with Zstandard. It gives the smallest code library files.
//
// The default build uses github.com/klauspost/compress/zstd. Building with cgo and the gozstd
// tag switches to github.com/valyala/gozstd; both produce standard frames and can read each
// other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
