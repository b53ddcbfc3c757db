package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())

	require.True(t, IsLittleEndian(GetLittleEndianEngine()))
	require.False(t, IsLittleEndian(GetBigEndianEngine()))
}

func TestEngine_TimingLayout(t *testing.T) {
	tests := []struct {
		name     string
		engine   EndianEngine
		expected []byte
	}{
		{"little endian", GetLittleEndianEngine(), []byte{0x28, 0x23}},
		{"big endian", GetBigEndianEngine(), []byte{0x23, 0x28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 2)
			tt.engine.PutUint16(buf, 9000)
			require.Equal(t, tt.expected, buf)
			require.Equal(t, uint16(9000), tt.engine.Uint16(buf))

			appended := tt.engine.AppendUint16([]byte{0xFF}, 9000)
			require.Equal(t, append([]byte{0xFF}, tt.expected...), appended)
		})
	}
}

func TestEngine_HeaderFields(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint32(nil, 0xDEADBEEF)
	buf = engine.AppendUint64(buf, 0x0102030405060708)

	require.Len(t, buf, 12)
	require.Equal(t, uint32(0xDEADBEEF), engine.Uint32(buf[0:4]))
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf[4:12]))
	require.Equal(t, byte(0xEF), buf[0])
}
