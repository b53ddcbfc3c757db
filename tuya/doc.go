// Package tuya converts IR raw timing signals to and from Tuya IR code strings.
//
// A Tuya code is produced in three steps:
//
//  1. every timing is clamped to 0..65535 and written as a little-endian uint16
//  2. the bytes are compressed into the Tuya block format (see package lz)
//  3. the block stream is wrapped in standard Base64 with padding
//
// Decoding runs the same steps backwards. Line breaks and other whitespace inside a code are
// ignored, so codes copied from wrapped text decode unchanged.
//
// # Usage
//
//	codec, err := tuya.NewCodec()
//	if err != nil {
//		return err
//	}
//
//	code, err := codec.Encode([]int{9000, 4500, 560, 1690, 560, 560})
//	// code == "CygjlBEwApoGMAIwAg=="
//
//	signal, err := codec.Decode(code)
//
// # Errors
//
// Encode failures are *errs.EncodeError and decode failures are *errs.DecodeError. Both record
// the failing errs.Stage and wrap a sentinel from package errs:
//
//	var decodeErr *errs.DecodeError
//	if errors.As(err, &decodeErr) && decodeErr.Stage == errs.StageBase64 {
//		// not Base64 at all
//	}
//	if errors.Is(err, errs.ErrTruncatedBlock) {
//		// code was cut short
//	}
//
// A Codec is immutable after NewCodec and safe for concurrent use.
package tuya
