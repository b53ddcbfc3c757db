package format

type (
	CompressionType  uint8
	CompressionLevel uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionTuya CompressionType = 0x5 // CompressionTuya represents the Tuya IR block format.
)

const (
	// LevelLiteral disables match search; the stream is made of literal blocks only.
	LevelLiteral CompressionLevel = 0
	// LevelDefault is the level Tuya-compatible tools use for every code.
	LevelDefault CompressionLevel = 2
	// LevelMax is the highest accepted level. Levels 1..9 all enable greedy matching.
	LevelMax CompressionLevel = 9
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionTuya:
		return "Tuya"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a name as printed by String, or its lowercase form, back to its type.
// An empty name reads as CompressionNone.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "None", "none", "":
		return CompressionNone, true
	case "Zstd", "zstd":
		return CompressionZstd, true
	case "S2", "s2":
		return CompressionS2, true
	case "LZ4", "lz4":
		return CompressionLZ4, true
	case "Tuya", "tuya":
		return CompressionTuya, true
	default:
		return 0, false
	}
}

// Valid reports whether the level is within LevelLiteral..LevelMax.
func (l CompressionLevel) Valid() bool {
	return l <= LevelMax
}

// Matching reports whether the level enables back-reference search.
func (l CompressionLevel) Matching() bool {
	return l != LevelLiteral
}
