package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
	require.True(t, IsBigEndian(GetBigEndianEngine()))
	require.False(t, IsBigEndian(GetLittleEndianEngine()))
}

func TestCellRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		width int
		value uint64
	}{
		{"byte", 1, 0x56},
		{"minifloat", 2, 0x3C00},
		{"float32 bits", 4, 0x42200000},
		{"wide", 8, 0x0102030405060708},
	}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				buf := AppendCell(engine, []byte{0xAA}, tt.width, tt.value)
				require.Len(t, buf, 1+tt.width)
				require.Equal(t, byte(0xAA), buf[0])
				require.Equal(t, tt.value, Cell(engine, buf[1:], tt.width))

				put := make([]byte, tt.width)
				PutCell(engine, put, tt.width, tt.value)
				require.Equal(t, buf[1:], put)
			})
		}
	}
}

func TestCellByteOrder(t *testing.T) {
	le := AppendCell(GetLittleEndianEngine(), nil, 2, 0x3C00)
	be := AppendCell(GetBigEndianEngine(), nil, 2, 0x3C00)
	require.Equal(t, []byte{0x00, 0x3C}, le)
	require.Equal(t, []byte{0x3C, 0x00}, be)
}

func TestCellTruncatesToWidth(t *testing.T) {
	engine := GetLittleEndianEngine()
	buf := AppendCell(engine, nil, 1, 0x1FF)
	require.Equal(t, []byte{0xFF}, buf)
	require.Equal(t, uint64(0xFF), Cell(engine, buf, 1))
}

func TestValidCellWidth(t *testing.T) {
	for _, w := range []int{1, 2, 4, 8} {
		require.True(t, ValidCellWidth(w))
	}
	for _, w := range []int{0, 3, 5, 16, -1} {
		require.False(t, ValidCellWidth(w))
	}

	require.Panics(t, func() { AppendCell(GetLittleEndianEngine(), nil, 3, 1) })
	require.Panics(t, func() { PutCell(GetLittleEndianEngine(), make([]byte, 8), 5, 1) })
	require.Panics(t, func() { Cell(GetLittleEndianEngine(), make([]byte, 8), 0) })
}

func BenchmarkAppendCell(b *testing.B) {
	engine := GetLittleEndianEngine()
	buf := make([]byte, 0, 2)
	for b.Loop() {
		buf = AppendCell(engine, buf[:0], 2, 0x3C00)
	}
}
