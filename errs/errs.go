// Package errs defines the sentinel errors and structured error types shared by tuyair packages.
//
// Sentinels are meant for errors.Is checks. Call sites add context with
// fmt.Errorf("%w: ...") or by wrapping them in FormatError, EncodeError or DecodeError.
package errs

import "errors"

// Codec errors.
var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrTruncatedBlock   = errors.New("truncated block")
	ErrInvalidDistance  = errors.New("back-reference distance out of range")
	ErrInvalidLength    = errors.New("block length out of range")
	ErrInvalidBase64    = errors.New("invalid base64 code string")
	ErrNegativeTiming   = errors.New("negative timing")
	ErrInvalidLevel     = errors.New("invalid compression level")
)

// Library archive errors.
var (
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidMagicNumber    = errors.New("invalid magic number")
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")
	ErrOffsetOutOfRange      = errors.New("offset out of range")
	ErrChecksumMismatch      = errors.New("payload checksum mismatch")
	ErrInvalidFunctionName   = errors.New("invalid function name")
	ErrFunctionAlreadyAdded  = errors.New("function already added")
	ErrTooManyFunctions      = errors.New("too many functions")
	ErrNoFunctionsAdded      = errors.New("no functions added")
	ErrUnsupportedCodec      = errors.New("unsupported compression type")
)

// IRDB and interchange errors.
var (
	ErrInvalidRow       = errors.New("invalid irdb row")
	ErrUnknownProtocol  = errors.New("unknown protocol")
	ErrInvalidTiming    = errors.New("invalid raw timing")
	ErrMissingParameter = errors.New("protocol parameter not supported")
)
