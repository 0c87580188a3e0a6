// Package compress provides the codecs applied to tuple column payloads.
//
// Every column of a tuple is compressed independently after its cells have been encoded,
// so a reader can decompress only the columns it needs. The codec is chosen per tuple and
// recorded in the tuple header:
//
//   - None (format.CompressionNone): payload stored as is
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	stored, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(stored)
//
// # Zstandard Implementations
//
// The default Zstd codec is pure Go (github.com/klauspost/compress/zstd) with pooled
// encoders and decoders. Building with the gozstd tag and cgo enabled switches to the
// C library binding github.com/valyala/gozstd; both produce standard zstd frames and
// read each other's output.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use.
package compress
