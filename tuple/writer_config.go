package tuple

import (
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/pec/compress"
	"github.com/arloliu/pec/endian"
	"github.com/arloliu/pec/format"
	"github.com/arloliu/pec/internal/hash"
	"github.com/arloliu/pec/internal/options"
	"github.com/arloliu/pec/section"
)

// WriterConfig holds the settings of a Writer. It is populated through WriterOption
// values only.
type WriterConfig struct {
	header    *section.TupleHeader
	engine    endian.EndianEngine
	keepNames bool
	logger    *zap.Logger
	columnID  func(string) uint64
}

func newWriterConfig(kind format.RecordKind) *WriterConfig {
	header := section.NewTupleHeader(kind, time.Now())

	return &WriterConfig{
		header:   header,
		engine:   header.Flag.GetEndianEngine(),
		logger:   zap.NewNop(),
		columnID: hash.ColumnID,
	}
}

func (c *WriterConfig) setCompression(comp format.CompressionType) error {
	if _, err := compress.CreateCodec(comp, "column"); err != nil {
		return err
	}
	c.header.Flag.Compression = comp

	return nil
}

func (c *WriterConfig) setBigEndian(big bool) {
	if big {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
	c.engine = c.header.Flag.GetEndianEngine()
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*WriterConfig]

// WithCompression sets the codec applied to every column payload. The default is zstd.
func WithCompression(comp format.CompressionType) WriterOption {
	return options.New(func(c *WriterConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes little-endian tuples. This is the default.
func WithLittleEndian() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.setBigEndian(false)
	})
}

// WithBigEndian writes big-endian tuples.
func WithBigEndian() WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.setBigEndian(true)
	})
}

// WithColumnNames stores the column names payload even when the column IDs are
// collision free. Readers then report names for every column.
func WithColumnNames(enabled bool) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.keepNames = enabled
	})
}

// WithCreatedAt overrides the creation time recorded in the header.
func WithCreatedAt(t time.Time) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.header.CreatedAt = t.UnixMicro()
	})
}

// WithLogger sets the logger for tuple statistics and collision warnings. A nil logger
// disables logging.
func WithLogger(logger *zap.Logger) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
