package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ColumnID(tt.data))
		})
	}

	assert.NotEqual(t, ColumnID("relIso"), ColumnID("dB"))
}

func TestChecksum(t *testing.T) {
	require.Equal(t, uint32(0x51d8e999), Checksum(nil))
	require.Equal(t, uint32(0xdb678139), Checksum([]byte("test")))
}

func TestPayloadDigest_MatchesChecksum(t *testing.T) {
	parts := [][]byte{[]byte("this is a longer "), []byte("test string "), nil, []byte("to hash")}

	d := NewPayloadDigest()
	var all []byte
	for _, p := range parts {
		d.Write(p)
		all = append(all, p...)
	}

	require.Equal(t, Checksum(all), d.Sum32())
	require.Equal(t, uint32(0x7ee59dbd), d.Sum32())
}

func BenchmarkColumnID(b *testing.B) {
	for b.Loop() {
		ColumnID("trueNumPU")
	}
}
