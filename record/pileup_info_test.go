package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/format"
)

func TestPileUpInfo_Counts(t *testing.T) {
	p := NewPileUpInfo()
	require.Equal(t, format.KindPileUpInfo, p.Kind())

	require.NoError(t, p.SetNumPV(23))
	require.Equal(t, 23, p.NumPV())
	require.NoError(t, p.SetNumPV(1000))
	require.Equal(t, 255, p.NumPV())
	require.ErrorIs(t, p.SetNumPV(-1), errs.ErrInvalidArgument)

	require.NoError(t, p.SetInTimeNumPU(17))
	require.Equal(t, 17, p.InTimeNumPU())
	require.ErrorIs(t, p.SetInTimeNumPU(-5), errs.ErrInvalidArgument)
	require.Equal(t, 17, p.InTimeNumPU())
}

func TestPileUpInfo_Densities(t *testing.T) {
	p := NewPileUpInfo()

	require.NoError(t, p.SetRho(12.34))
	require.InDelta(t, 12.34, p.Rho(), 12.34*math.Ldexp(1, -13))

	require.NoError(t, p.SetTrueNumPU(0.1))
	require.InDelta(t, 0.1, p.TrueNumPU(), math.Ldexp(1, -15))

	require.ErrorIs(t, p.SetRho(-1), errs.ErrInvalidArgument)
	require.ErrorIs(t, p.SetTrueNumPU(math.NaN()), errs.ErrInvalidArgument)
}

func TestPileUpInfo_ResetAndCells(t *testing.T) {
	p := NewPileUpInfo()
	require.NoError(t, p.SetNumPV(30))
	require.NoError(t, p.SetRho(20.5))
	require.NoError(t, p.SetTrueNumPU(27.25))
	require.NoError(t, p.SetInTimeNumPU(29))

	loaded := NewPileUpInfo()
	require.NoError(t, loaded.LoadCells(p.AppendCells(nil)))
	require.Equal(t, *p, *loaded)

	p.Reset()
	require.Equal(t, PileUpInfo{}, *p)
	require.Equal(t, 0.0, p.Rho())
}
