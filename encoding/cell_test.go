package encoding

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pec/endian"
)

func TestCellEncoder_Widths(t *testing.T) {
	values := []uint64{0, 1, 0x56, 0xFF}

	for _, width := range []int{1, 2, 4, 8} {
		for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
			enc := NewCellEncoder(engine, width)
			enc.Write(values[0])
			enc.WriteSlice(values[1:])

			require.Equal(t, len(values), enc.Len())
			require.Equal(t, len(values)*width, enc.Size())
			require.Equal(t, width, enc.Width())

			dec := NewCellDecoder(engine, width)
			require.Equal(t, values, slices.Collect(dec.All(enc.Bytes(), len(values))))

			got, err := dec.DecodeInto(nil, enc.Bytes(), len(values))
			require.NoError(t, err)
			require.Equal(t, values, got)

			v, ok := dec.At(enc.Bytes(), 2, len(values))
			require.True(t, ok)
			require.Equal(t, uint64(0x56), v)

			enc.Finish()
		}
	}
}

func TestCellEncoder_MinifloatColumn(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	enc := NewCellEncoder(engine, 2)
	defer enc.Finish()

	enc.WriteSlice([]uint64{0x3C00, 0xBC00})
	require.Equal(t, []byte{0x00, 0x3C, 0x00, 0xBC}, enc.Bytes())

	enc.Reset()
	require.Equal(t, 2, enc.Len(), "Reset keeps accumulated cells")
}

func TestCellEncoder_Truncates(t *testing.T) {
	enc := NewCellEncoder(endian.GetBigEndianEngine(), 1)
	defer enc.Finish()

	enc.Write(0x1234)
	require.Equal(t, []byte{0x34}, enc.Bytes())
}

func TestCellEncoder_Finish(t *testing.T) {
	enc := NewCellEncoder(endian.GetLittleEndianEngine(), 4)
	enc.Write(7)
	enc.Finish()

	require.Equal(t, 0, enc.Len())
	require.Panics(t, func() { enc.Write(1) })
	require.Panics(t, func() { enc.WriteSlice([]uint64{1}) })
	require.Panics(t, func() { enc.Bytes() })
	require.Panics(t, func() { enc.Size() })

	enc.Finish()
}

func TestCellEncoder_InvalidWidth(t *testing.T) {
	require.Panics(t, func() { NewCellEncoder(endian.GetLittleEndianEngine(), 3) })
	require.Panics(t, func() { NewCellDecoder(endian.GetLittleEndianEngine(), 0) })
}

func TestCellDecoder_Bounds(t *testing.T) {
	dec := NewCellDecoder(endian.GetLittleEndianEngine(), 2)
	data := []byte{0x01, 0x00, 0x02, 0x00}

	_, ok := dec.At(data, -1, 2)
	require.False(t, ok)
	_, ok = dec.At(data, 2, 2)
	require.False(t, ok)
	_, ok = dec.At(data, 2, 3)
	require.False(t, ok, "data shorter than count")

	require.Empty(t, slices.Collect(dec.All(data, 3)))
	require.Empty(t, slices.Collect(dec.All(data, 0)))

	_, err := dec.DecodeInto(nil, data, 3)
	require.Error(t, err)
	_, err = dec.DecodeInto(nil, data[:3], 1)
	require.Error(t, err)
}

func BenchmarkCellEncoder_WriteSlice(b *testing.B) {
	values := make([]uint64, 1000)
	for i := range values {
		values[i] = uint64(i)
	}

	engine := endian.GetLittleEndianEngine()
	for b.Loop() {
		enc := NewCellEncoder(engine, 2)
		enc.WriteSlice(values)
		enc.Finish()
	}
}
