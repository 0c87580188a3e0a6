// Package hash derives the 64-bit column identifiers stored in a tuple index.
package hash

import "github.com/cespare/xxhash/v2"

// ColumnID returns the xxHash64 of a column name.
func ColumnID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum returns the low 32 bits of the xxHash64 of data, as stored in tuple headers.
func Checksum(data []byte) uint32 {
	return uint32(xxhash.Sum64(data)) //nolint: gosec
}

// PayloadDigest accumulates a checksum over consecutive column payloads.
type PayloadDigest struct {
	d *xxhash.Digest
}

// NewPayloadDigest creates an empty digest.
func NewPayloadDigest() PayloadDigest {
	return PayloadDigest{d: xxhash.New()}
}

// Write adds b to the digest.
func (p PayloadDigest) Write(b []byte) {
	_, _ = p.d.Write(b)
}

// Sum32 returns the low 32 bits of the digest.
func (p PayloadDigest) Sum32() uint32 {
	return uint32(p.d.Sum64()) //nolint: gosec
}
