package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/format"
	"github.com/arloliu/pec/nibble"
)

func TestGeneratorInfo_ResetState(t *testing.T) {
	g := NewGeneratorInfo()
	require.Equal(t, 0, g.ProcessID())
	require.Equal(t, 0.0, g.Weight())
	require.Equal(t, 0.0, g.PdfQScale())

	for i := range 2 {
		x, err := g.PdfX(i)
		require.NoError(t, err)
		require.Equal(t, 0.0, x)

		id, err := g.PdfID(i)
		require.NoError(t, err)
		require.Equal(t, nibble.Gluon, id)
	}
	require.Equal(t, format.KindGeneratorInfo, g.Kind())
}

func TestGeneratorInfo_PdfX(t *testing.T) {
	g := NewGeneratorInfo()

	require.NoError(t, g.SetPdfX(0, 0.5))
	x, err := g.PdfX(0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, x, 0.5*math.Ldexp(1, -13))

	require.NoError(t, g.SetPdfX(1, 1.0))
	x, err = g.PdfX(1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, x, math.Ldexp(1, -13))

	// below the normal range
	require.NoError(t, g.SetPdfX(1, 1e-3))
	x, err = g.PdfX(1)
	require.NoError(t, err)
	require.InDelta(t, 1e-3, x, math.Ldexp(1, -21))

	// smallest subnormal step is 2^-20; half of it rounds to zero
	require.NoError(t, g.SetPdfX(1, 1e-7))
	x, err = g.PdfX(1)
	require.NoError(t, err)
	require.Zero(t, x)

	require.NoError(t, g.SetPdfX(1, math.Ldexp(1, -20)))
	x, err = g.PdfX(1)
	require.NoError(t, err)
	require.Equal(t, math.Ldexp(1, -20), x)

	for _, bad := range []float64{0, -0.1, 1.0001, math.NaN(), math.Inf(1)} {
		require.ErrorIs(t, g.SetPdfX(0, bad), errs.ErrInvalidArgument, "x=%v", bad)
	}

	require.ErrorIs(t, g.SetPdfX(2, 0.5), errs.ErrOutOfRange)
	require.ErrorIs(t, g.SetPdfX(-1, 0.5), errs.ErrOutOfRange)
	_, err = g.PdfX(2)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	x, err = g.PdfX(0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, x, 1e-4, "failed setters must not modify the record")
}

func TestGeneratorInfo_SetPdfXs(t *testing.T) {
	g := NewGeneratorInfo()
	require.NoError(t, g.SetPdfXs(0.25, 0.125))

	require.ErrorIs(t, g.SetPdfXs(0.3, 2), errs.ErrInvalidArgument)

	x1, err := g.PdfX(0)
	require.NoError(t, err)
	require.Equal(t, 0.25, x1)

	x2, err := g.PdfX(1)
	require.NoError(t, err)
	require.Equal(t, 0.125, x2)
}

func TestGeneratorInfo_PdfIDs(t *testing.T) {
	g := NewGeneratorInfo()

	require.NoError(t, g.SetPdfIDs(1, 0))
	require.Equal(t, uint64(0x56), g.AppendCells(nil)[4])

	require.NoError(t, g.SetPdfID(1, -2))
	id1, err := g.PdfID(0)
	require.NoError(t, err)
	require.Equal(t, 1, id1)
	id2, err := g.PdfID(1)
	require.NoError(t, err)
	require.Equal(t, -2, id2)

	require.ErrorIs(t, g.SetPdfID(0, 21), errs.ErrInvalidArgument)
	require.ErrorIs(t, g.SetPdfIDs(-6, 0), errs.ErrInvalidArgument)
	require.ErrorIs(t, g.SetPdfID(3, 1), errs.ErrOutOfRange)
	_, err = g.PdfID(3)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	id1, err = g.PdfID(0)
	require.NoError(t, err)
	require.Equal(t, 1, id1)
}

func TestGeneratorInfo_WeightAndScale(t *testing.T) {
	g := NewGeneratorInfo()

	require.NoError(t, g.SetWeight(-1.0))
	require.Equal(t, -1.0, g.Weight())

	require.NoError(t, g.SetWeight(1e7))
	require.Equal(t, 131008.0, g.Weight())

	require.ErrorIs(t, g.SetWeight(math.NaN()), errs.ErrInvalidArgument)

	require.NoError(t, g.SetPdfQScale(172.5))
	require.InDelta(t, 172.5, g.PdfQScale(), 172.5*math.Ldexp(1, -13))
	require.ErrorIs(t, g.SetPdfQScale(-3), errs.ErrInvalidArgument)
	require.ErrorIs(t, g.SetPdfQScale(math.NaN()), errs.ErrInvalidArgument)
}

func TestGeneratorInfo_ProcessID(t *testing.T) {
	g := NewGeneratorInfo()
	require.NoError(t, g.SetProcessID(-42))
	require.Equal(t, -42, g.ProcessID())
	require.NoError(t, g.SetProcessID(math.MaxInt16))
	require.ErrorIs(t, g.SetProcessID(math.MaxInt16+1), errs.ErrInvalidArgument)
	require.ErrorIs(t, g.SetProcessID(math.MinInt16-1), errs.ErrInvalidArgument)
	require.Equal(t, math.MaxInt16, g.ProcessID())
}

func TestGeneratorInfo_ResetIsIdempotent(t *testing.T) {
	g := NewGeneratorInfo()
	require.NoError(t, g.SetProcessID(7))
	require.NoError(t, g.SetWeight(2))
	require.NoError(t, g.SetPdfXs(0.1, 0.2))
	require.NoError(t, g.SetPdfIDs(2, -1))
	require.NoError(t, g.SetPdfQScale(91))

	g.Reset()
	require.Equal(t, *NewGeneratorInfo(), *g)
	g.Reset()
	require.Equal(t, *NewGeneratorInfo(), *g)
}

func TestGeneratorInfo_Cells(t *testing.T) {
	g := NewGeneratorInfo()
	require.NoError(t, g.SetProcessID(-3))
	require.NoError(t, g.SetWeight(0.75))
	require.NoError(t, g.SetPdfXs(0.5, 0.03))
	require.NoError(t, g.SetPdfIDs(-1, 2))
	require.NoError(t, g.SetPdfQScale(80))

	cells := g.AppendCells(nil)
	require.Len(t, cells, len(g.Columns()))

	loaded := NewGeneratorInfo()
	require.NoError(t, loaded.LoadCells(cells))
	require.Equal(t, *g, *loaded)

	require.ErrorIs(t, loaded.LoadCells(cells[:3]), errs.ErrInvalidArgument)
}
