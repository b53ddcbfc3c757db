package errs

import "fmt"

// Stage identifies the codec pipeline step that failed.
type Stage uint8

const (
	StageValidate    Stage = iota + 1 // StageValidate checks the input signal.
	StageSerialize                    // StageSerialize converts timings to or from little-endian bytes.
	StageCompress                     // StageCompress emits the block stream.
	StageBase64                       // StageBase64 wraps or unwraps the code string.
	StageDecompress                   // StageDecompress replays the block stream.
	StageDeserialize                  // StageDeserialize reads timings back from the raw payload.
)

func (s Stage) String() string {
	switch s {
	case StageValidate:
		return "validate"
	case StageSerialize:
		return "serialize"
	case StageCompress:
		return "compress"
	case StageBase64:
		return "base64"
	case StageDecompress:
		return "decompress"
	case StageDeserialize:
		return "deserialize"
	default:
		return "unknown"
	}
}

// FormatError reports a malformed compressed stream or raw payload.
//
// Offset is the byte position in the input where the offending block or group starts.
type FormatError struct {
	Offset int
	Err    error
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("format error at offset %d: %v", e.Offset, e.Err)
	}

	return fmt.Sprintf("format error at offset %d: %v: %s", e.Offset, e.Err, e.Detail)
}

func (e *FormatError) Unwrap() error { return e.Err }

// EncodeError is returned by every failing encode call.
type EncodeError struct {
	Stage Stage
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("tuya encode failed at %s stage: %v", e.Stage, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError is returned by every failing decode call.
type DecodeError struct {
	Stage Stage
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tuya decode failed at %s stage: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
