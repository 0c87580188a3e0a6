package format

type (
	CompressionType uint8
	RecordKind      uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindGeneratorInfo RecordKind = 0x1 // KindGeneratorInfo represents generator-level event information.
	KindLepton        RecordKind = 0x2 // KindLepton represents charged lepton candidates.
	KindPileUpInfo    RecordKind = 0x3 // KindPileUpInfo represents pile-up information.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression converts a case-sensitive lower-case name ("none", "zstd", "s2", "lz4")
// into a CompressionType. The second return value is false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (k RecordKind) String() string {
	switch k {
	case KindGeneratorInfo:
		return "GeneratorInfo"
	case KindLepton:
		return "Lepton"
	case KindPileUpInfo:
		return "PileUpInfo"
	default:
		return "Unknown"
	}
}

// IsValid reports whether k is one of the known record kinds.
func (k RecordKind) IsValid() bool {
	return k >= KindGeneratorInfo && k <= KindPileUpInfo
}
