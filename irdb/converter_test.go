package irdb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/tuya"
)

// necCode is the Tuya code of NEC address 0x04 command 0x08 at the default level.
const necCode = "BSgjlBEwAsABAZoG4AEL4AMBQBfAG8AL4AMD4Acr4A8/4A9DAUCc"

func necTimings(t *testing.T) []int {
	t.Helper()
	signal, err := necProtocol.Encode(Args{Device: 0x04, Function: 0x08})
	require.NoError(t, err)

	return Absolute(signal)
}

func newObservedConverter(t *testing.T, opts ...ConverterOption) (*Converter, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)

	opts = append([]ConverterOption{
		WithLogger(zap.New(core)),
		WithRegistry(NewRegistry(necProtocol, echoProtocol)),
	}, opts...)

	c, err := NewConverter(opts...)
	require.NoError(t, err)

	return c, logs
}

func TestConverter_EncodeEntries(t *testing.T) {
	c, logs := newObservedConverter(t)

	report := c.EncodeEntries([]Entry{
		{Function: "POWER", Signal: necTimings(t)},
		{Function: "BROKEN", Signal: []int{560, -1}},
		{Function: "EMPTY", Signal: []int{}},
	})

	require.Len(t, report.Results, 3)
	assert.Equal(t, 2, report.Succeeded())
	assert.Equal(t, 1, report.Failed())

	assert.True(t, report.Results[0].OK())
	assert.Equal(t, "POWER", report.Results[0].Name)
	assert.Equal(t, necCode, report.Results[0].Value)

	require.ErrorIs(t, report.Results[1].Err, errs.ErrNegativeTiming)
	require.ErrorIs(t, report.Err(), errs.ErrNegativeTiming)
	assert.Contains(t, report.Err().Error(), "BROKEN")

	assert.Empty(t, report.Results[2].Value)
	assert.Equal(t, []string{necCode, ""}, report.Values())

	assert.Equal(t, 1, logs.FilterMessage("encode failed").Len())
	summary := logs.FilterMessage("batch finished").All()
	require.Len(t, summary, 1)
	assert.Equal(t, "encode", summary[0].ContextMap()["op"])
	assert.Equal(t, int64(2), summary[0].ContextMap()["succeeded"])
	assert.Equal(t, int64(1), summary[0].ContextMap()["failed"])
}

func TestConverter_EncodeEntriesLiteralLevel(t *testing.T) {
	codec, err := tuya.NewCodec(tuya.WithCompressionLevel(format.LevelLiteral))
	require.NoError(t, err)

	c, _ := newObservedConverter(t, WithCodec(codec))
	report := c.EncodeEntries([]Entry{{Function: "RAMP", Signal: []int{100, 100, 100, 100}}})

	require.NoError(t, report.Err())
	assert.Equal(t, "B2QAZABkAGQA", report.Results[0].Value)
}

func TestConverter_DecodeCodes(t *testing.T) {
	c, logs := newObservedConverter(t)

	report := c.DecodeCodes([]NamedCode{
		{Function: "POWER", Code: necCode},
		{Function: "GARBAGE", Code: "!!!"},
		{Function: "TRUNCATED", Code: "Hw=="},
	})

	require.Len(t, report.Results, 3)
	assert.Equal(t, necTimings(t), report.Results[0].Value)
	require.ErrorIs(t, report.Results[1].Err, errs.ErrInvalidBase64)
	require.ErrorIs(t, report.Results[2].Err, errs.ErrTruncatedBlock)
	assert.Equal(t, 1, report.Succeeded())
	assert.Equal(t, 2, logs.FilterMessage("decode failed").Len())
}

func TestConverter_GenerateRows(t *testing.T) {
	c, logs := newObservedConverter(t)

	rows := []Row{
		{FunctionName: "POWER", Protocol: "NEC", Device: "4", SubDevice: "-1", Function: "8", Path: "codes/Acme/TV/4,-1.csv"},
		{FunctionName: "MUTE", Protocol: "Sharp{1}", Device: "1", SubDevice: "2", Function: "3"},
		{FunctionName: "INPUT", Protocol: "Sharp1", Device: "1", SubDevice: "", Function: "3"},
		{FunctionName: "SUB", Protocol: "NEC", Device: "4", SubDevice: "5", Function: "8"},
		{FunctionName: "ALIEN", Protocol: "Bogus", Device: "1", Function: "1"},
		{FunctionName: "TEXT", Protocol: "NEC", Device: "four", Function: "8"},
		{FunctionName: "RANGE", Protocol: "NEC", Device: "4", Function: "300"},
	}

	report := c.GenerateRows(rows)
	require.Len(t, report.Results, len(rows))
	assert.Equal(t, 3, report.Succeeded())
	assert.Equal(t, 4, report.Failed())

	power := report.Results[0].Value
	assert.Equal(t, "POWER", power.Function)
	assert.Equal(t, "NEC", power.Protocol)
	assert.Equal(t, "codes/Acme/TV/4,-1.csv", power.Path)
	assert.Equal(t, necTimings(t), power.Signal)

	assert.Equal(t, Entry{Function: "MUTE", Signal: []int{1, 2, 3}, Protocol: "Sharp1"}, report.Results[1].Value)
	assert.Equal(t, []int{1, 0, 3}, report.Results[2].Value.Signal)

	require.ErrorIs(t, report.Results[3].Err, errs.ErrMissingParameter)
	require.ErrorIs(t, report.Results[4].Err, errs.ErrUnknownProtocol)
	require.ErrorIs(t, report.Results[5].Err, errs.ErrInvalidRow)
	require.Error(t, report.Results[6].Err)
	assert.Contains(t, report.Results[6].Err.Error(), "NEC(device=4, sub=0, function=300)")

	assert.Equal(t, 4, logs.FilterMessage("generate failed").Len())
}

func TestConverter_ProtocolOverride(t *testing.T) {
	c, _ := newObservedConverter(t, WithProtocolOverride("Sharp{1}"))

	report := c.GenerateRows([]Row{
		{FunctionName: "POWER", Protocol: "NEC", Device: "4", SubDevice: "7", Function: "8"},
		{FunctionName: "MUTE", Protocol: "Bogus", Device: "1", Function: "2"},
	})

	require.NoError(t, report.Err())
	assert.Equal(t, []int{4, 7, 8}, report.Results[0].Value.Signal)
	assert.Equal(t, "Sharp1", report.Results[1].Value.Protocol)
}

func TestConverter_GenerateThenEncode(t *testing.T) {
	c, _ := newObservedConverter(t)

	rows, err := ReadRows(strings.NewReader("functionname,protocol,device,subdevice,function\nPOWER,NEC,4,-1,8\n"))
	require.NoError(t, err)

	generated := c.GenerateRows(rows)
	require.NoError(t, generated.Err())

	encoded := c.EncodeEntries(generated.Values())
	require.NoError(t, encoded.Err())
	assert.Equal(t, []string{necCode}, encoded.Values())
}

func TestConverter_Defaults(t *testing.T) {
	c, err := NewConverter(WithLogger(nil), WithCodec(nil), WithRegistry(nil))
	require.NoError(t, err)

	report := c.GenerateRows([]Row{{FunctionName: "POWER", Protocol: "NEC"}})
	require.ErrorIs(t, report.Err(), errs.ErrUnknownProtocol)

	encoded := c.EncodeEntries([]Entry{{Function: "ONE", Signal: []int{9000, 4500, 560, 1690, 560, 560}}})
	require.NoError(t, encoded.Err())
	assert.Equal(t, "CygjlBEwApoGMAIwAg==", encoded.Results[0].Value)
}

func TestReport_Empty(t *testing.T) {
	var report Report[string]
	assert.Equal(t, 0, report.Succeeded())
	assert.Equal(t, 0, report.Failed())
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Values())
}

func TestLogger(t *testing.T) {
	require.NotNil(t, Logger())

	previous := Logger()
	defer SetLogger(previous)

	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))

	c, err := NewConverter()
	require.NoError(t, err)
	c.EncodeEntries(nil)

	assert.Equal(t, 1, logs.FilterMessage("batch finished").Len())
}
