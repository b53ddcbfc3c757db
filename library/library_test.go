package library

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/internal/hash"
	"github.com/arloliu/tuyair/section"
	"github.com/arloliu/tuyair/tuya"
)

var remote = []struct {
	function string
	code     string
}{
	{"POWER", "BSgjlBEwAsABAZoG4AEL4AMBQBfAG8AL4AMD4Acr4A8/4A9DAUCc"},
	{"MUTE", "CygjlBEwApoGMAIwAg=="},
	{"VOLUME_UP", "AzACmgbg5QMBQJw="},
	{"VOLUME_DOWN", "AWQA4EUB"},
}

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
	format.CompressionTuya,
}

func buildRemote(t *testing.T, opts ...BuilderOption) []byte {
	t.Helper()

	builder, err := NewBuilder(opts...)
	require.NoError(t, err)
	defer builder.Release()

	for _, r := range remote {
		require.NoError(t, builder.Add(r.function, r.code))
	}
	require.Equal(t, len(remote), builder.Len())

	data, err := builder.Finish()
	require.NoError(t, err)

	return data
}

func TestLibrary_RoundTrip(t *testing.T) {
	for _, compression := range allCompressions {
		t.Run(compression.String(), func(t *testing.T) {
			data := buildRemote(t, WithCompression(compression))

			lib, err := Open(data)
			require.NoError(t, err)
			require.Equal(t, len(remote), lib.Len())
			require.Equal(t, compression, lib.Compression())
			require.False(t, lib.HasCollision())

			for _, r := range remote {
				code, ok := lib.Code(r.function)
				require.True(t, ok, r.function)
				require.Equal(t, r.code, code)
			}

			_, ok := lib.Code("CHANNEL_UP")
			require.False(t, ok)

			require.Equal(t, []string{"POWER", "MUTE", "VOLUME_UP", "VOLUME_DOWN"}, lib.Functions())
		})
	}
}

func TestLibrary_Layout(t *testing.T) {
	data := buildRemote(t, WithCompression(format.CompressionNone))

	header, err := section.ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint32(len(remote)), header.Count)
	require.Equal(t, format.CompressionNone, header.Flag.CompressionType)

	payload := data[section.HeaderSize+header.IndexSize():]
	require.Equal(t, int(header.PayloadSize), len(payload))
	require.Equal(t, hash.Checksum(payload), header.Checksum)

	first, err := section.ParseIndexEntry(data[section.IndexOffset:])
	require.NoError(t, err)
	require.Equal(t, hash.ID("POWER"), first.FunctionID)
	require.Equal(t, uint32(0), first.Offset)
	require.Equal(t, uint32(1+5+1+len(remote[0].code)), first.Length)
	require.Equal(t, byte(5), payload[0])
	require.Equal(t, "POWER", string(payload[1:6]))
}

func TestLibrary_AllStopsEarly(t *testing.T) {
	lib, err := Open(buildRemote(t))
	require.NoError(t, err)

	var seen []string
	for name, code := range lib.All() {
		require.NotEmpty(t, code)
		seen = append(seen, name)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []string{"POWER", "MUTE"}, seen)
}

func TestLibrary_Signal(t *testing.T) {
	builder, err := NewBuilder()
	require.NoError(t, err)

	header := []int{9000, 4500, 560, 1690, 560, 560}
	require.NoError(t, builder.AddSignal("HEADER", header))
	require.NoError(t, builder.Add("BROKEN", "IAA="))

	data, err := builder.Finish()
	require.NoError(t, err)

	lib, err := Open(data)
	require.NoError(t, err)

	code, ok := lib.Code("HEADER")
	require.True(t, ok)
	require.Equal(t, "CygjlBEwApoGMAIwAg==", code)

	signal, ok, err := lib.Signal("HEADER")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, header, signal)

	_, ok, err = lib.Signal("MISSING")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = lib.Signal("BROKEN")
	require.True(t, ok)
	require.ErrorIs(t, err, errs.ErrInvalidDistance)
}

func TestBuilder_Errors(t *testing.T) {
	builder, err := NewBuilder()
	require.NoError(t, err)

	_, err = builder.Finish()
	require.ErrorIs(t, err, errs.ErrNoFunctionsAdded)

	require.ErrorIs(t, builder.Add("", "AWQA4EUB"), errs.ErrInvalidFunctionName)
	require.NoError(t, builder.Add("POWER", "AWQA4EUB"))
	require.ErrorIs(t, builder.Add("POWER", "Af//"), errs.ErrFunctionAlreadyAdded)
	require.EqualError(t, builder.Add("POWER", "Af//"), errs.ErrFunctionAlreadyAdded.Error())
	require.ErrorIs(t, builder.AddSignal("NEGATIVE", []int{-1}), errs.ErrNegativeTiming)
	require.Equal(t, 1, builder.Len())

	_, err = NewBuilder(WithCompression(format.CompressionType(0x0F)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCodec)
}

func TestBuilder_Validation(t *testing.T) {
	codec, err := tuya.NewCodec(tuya.WithCompressionLevel(format.LevelLiteral))
	require.NoError(t, err)

	builder, err := NewBuilder(WithValidation(true), WithCodec(codec))
	require.NoError(t, err)

	require.ErrorIs(t, builder.Add("BAD_BASE64", "***"), errs.ErrInvalidBase64)
	require.ErrorIs(t, builder.Add("TRUNCATED", "BSgj"), errs.ErrTruncatedBlock)
	require.NoError(t, builder.Add("POWER", "AWQA4EUB"))

	require.NoError(t, builder.AddSignal("HEADER", []int{100, 100, 100, 100}))
	data, err := builder.Finish()
	require.NoError(t, err)

	lib, err := Open(data)
	require.NoError(t, err)
	code, ok := lib.Code("HEADER")
	require.True(t, ok)
	require.Equal(t, "B2QAZABkAGQA", code, "literal-only codec stores no back-references")
}

func TestBuilder_FinishResets(t *testing.T) {
	builder, err := NewBuilder(WithCompression(format.CompressionS2))
	require.NoError(t, err)

	require.NoError(t, builder.Add("POWER", "AWQA4EUB"))
	first, err := builder.Finish()
	require.NoError(t, err)
	require.Equal(t, 0, builder.Len())

	require.NoError(t, builder.Add("POWER", "Af//"))
	second, err := builder.Finish()
	require.NoError(t, err)

	lib, err := Open(first)
	require.NoError(t, err)
	code, _ := lib.Code("POWER")
	require.Equal(t, "AWQA4EUB", code)

	lib, err = Open(second)
	require.NoError(t, err)
	code, _ = lib.Code("POWER")
	require.Equal(t, "Af//", code)
}

func TestLibrary_Collision(t *testing.T) {
	builder, err := NewBuilder(WithCompression(format.CompressionNone))
	require.NoError(t, err)
	require.NoError(t, builder.Add("POWER", "AWQA4EUB"))
	require.NoError(t, builder.Add("MUTE", "Af//"))
	data, err := builder.Finish()
	require.NoError(t, err)

	// Give POWER the ID of MUTE, as if xxHash64 collided.
	second := section.IndexOffset + section.IndexEntrySize
	copy(data[section.IndexOffset:section.IndexOffset+8], data[second:second+8])
	data[0] |= section.CollisionMask

	lib, err := Open(data)
	require.NoError(t, err)
	require.True(t, lib.HasCollision())

	// Both entries share one ID; the stored names tell them apart.
	code, ok := lib.Code("MUTE")
	require.True(t, ok)
	require.Equal(t, "Af//", code)

	_, ok = lib.Code("POWER")
	require.False(t, ok, "POWER is no longer indexed under its own ID")
	require.Equal(t, []string{"POWER", "MUTE"}, lib.Functions())
}

func TestOpen_Corruption(t *testing.T) {
	valid := buildRemote(t, WithCompression(format.CompressionNone))
	payloadStart := section.HeaderSize + len(remote)*section.IndexEntrySize

	corrupt := func(mutate func([]byte) []byte) []byte {
		data := append([]byte(nil), valid...)
		return mutate(data)
	}

	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"empty", nil, errs.ErrInvalidHeaderSize},
		{"short header", valid[:10], errs.ErrInvalidHeaderSize},
		{"bad magic", corrupt(func(d []byte) []byte { d[1] = 0x00; return d }), errs.ErrInvalidMagicNumber},
		{"bad compression", corrupt(func(d []byte) []byte { d[2] = 0x00; return d }), errs.ErrUnsupportedCodec},
		{"truncated index", valid[:section.HeaderSize+20], errs.ErrInvalidIndexEntrySize},
		{"truncated payload", valid[:len(valid)-1], errs.ErrMalformedPayload},
		{"flipped payload byte", corrupt(func(d []byte) []byte { d[len(d)-1] ^= 0x01; return d }), errs.ErrChecksumMismatch},
		{
			"offset out of range",
			corrupt(func(d []byte) []byte { d[section.IndexOffset+8] = 0xFF; return d }),
			errs.ErrOffsetOutOfRange,
		},
		{
			"record length mismatch",
			corrupt(func(d []byte) []byte { d[section.IndexOffset+12]--; return d }),
			errs.ErrMalformedPayload,
		},
		{
			"bad name prefix",
			corrupt(func(d []byte) []byte {
				d[payloadStart] = 0x7F
				return fixChecksum(d, payloadStart)
			}),
			errs.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, err := Open(tt.data)
			require.Nil(t, lib)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestOpen_CompressedCorruption(t *testing.T) {
	data := buildRemote(t, WithCompression(format.CompressionTuya))
	payloadStart := section.HeaderSize + len(remote)*section.IndexEntrySize

	data[payloadStart] = 0x20 // reference header with nothing decoded yet

	_, err := Open(data)
	require.ErrorIs(t, err, errs.ErrInvalidDistance)
}

func fixChecksum(data []byte, payloadStart int) []byte {
	header, _ := section.ParseHeader(data)
	header.Checksum = hash.Checksum(data[payloadStart:])
	copy(data, header.Bytes())

	return data
}

func BenchmarkLibrary_Code(b *testing.B) {
	builder, err := NewBuilder()
	require.NoError(b, err)
	for i := range 200 {
		require.NoError(b, builder.Add(fmt.Sprintf("KEY_%03d", i), remote[i%len(remote)].code))
	}
	data, err := builder.Finish()
	require.NoError(b, err)

	lib, err := Open(data)
	require.NoError(b, err)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = lib.Code("KEY_150")
	}
}
