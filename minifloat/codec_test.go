package minifloat

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pec/errs"
)

func allCodecs() map[string]Codec[uint16] {
	return map[string]Codec[uint16]{
		"weight":    Weight,
		"pdfX":      PdfX,
		"pdfQScale": PdfQScale,
		"relIso":    RelIso,
		"dB":        ImpactParameter,
		"rho":       Rho,
		"trueNumPU": TrueNumPU,
	}
}

func TestCodec_KnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec[uint16]
		value float64
		cell  uint16
		lossy bool
	}{
		{"weight one", Weight, 1.0, 0x3C00, false},
		{"weight minus one", Weight, -1.0, 0xBC00, false},
		{"weight half", Weight, 0.5, 0x3800, false},
		{"weight two", Weight, 2.0, 0x4000, false},
		{"weight min normal", Weight, math.Ldexp(1, -14), 0x0400, false},
		{"weight max", Weight, 131008, 0x7FFF, false},
		{"weight tie rounds down to even", Weight, 1 + math.Ldexp(1, -11), 0x3C00, true},
		{"weight tie rounds up to even", Weight, 1 + 3*math.Ldexp(1, -11), 0x3C02, true},
		{"weight mantissa carry", Weight, 2 - math.Ldexp(1, -12), 0x4000, true},
		{"pdfX half", PdfX, 0.5, 0xE000, false},
		{"pdfX min normal", PdfX, math.Ldexp(1, -7), 0x2000, false},
		{"pdfX subnormal", PdfX, math.Ldexp(1, -8), 0x1000, false},
		{"qscale one", PdfQScale, 1.0, 0x1000, false},
		{"qscale max", PdfQScale, 32764, 0xFFFF, false},
		{"relIso min normal", RelIso, 0.5, 0x2000, false},
		{"relIso subnormal", RelIso, 0.25, 0x1000, false},
		{"relIso smallest subnormal", RelIso, math.Ldexp(1, -14), 0x0001, false},
		{"relIso subnormal rounds into normal", RelIso, 0.5 - math.Ldexp(1, -16), 0x2000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.cell, tt.codec.Encode(tt.value))
			if !tt.lossy {
				require.Equal(t, tt.value, tt.codec.Decode(tt.cell))
			}
		})
	}
}

func TestCodec_Ranges(t *testing.T) {
	require.Equal(t, 131008.0, Weight.Max())
	require.Equal(t, math.Ldexp(1, -14), Weight.MinNormal())
	require.Equal(t, 0.99993896484375, PdfX.Max())
	require.Equal(t, math.Ldexp(1, -7), PdfX.MinNormal())
	require.Equal(t, 32764.0, PdfQScale.Max())
	require.Equal(t, 1.0, PdfQScale.MinNormal())
	require.Equal(t, 63.99609375, RelIso.Max())
	require.Equal(t, 0.5, RelIso.MinNormal())
	require.Equal(t, 0.25, Rho.MinNormal())
	require.Equal(t, 8191.0, Rho.Max())
}

func TestCodec_Zero(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, uint16(0), c.Encode(0))
			require.Equal(t, uint16(0), c.Encode(math.Copysign(0, -1)))
			require.Equal(t, 0.0, c.Decode(0))
			require.False(t, math.Signbit(c.Decode(0)))
		})
	}
}

func TestCodec_NaNAndInfinity(t *testing.T) {
	require.Equal(t, uint16(0), Weight.Encode(math.NaN()))
	require.Equal(t, uint16(0x7FFF), Weight.Encode(math.Inf(1)))
	require.Equal(t, uint16(0xFFFF), Weight.Encode(math.Inf(-1)))
	require.Equal(t, uint16(0xFFFF), PdfX.Encode(math.Inf(1)))
	require.Equal(t, uint16(0), PdfX.Encode(math.Inf(-1)))
	require.Equal(t, uint16(0), RelIso.Encode(math.NaN()))
}

func TestCodec_Saturation(t *testing.T) {
	require.Equal(t, Weight.Max(), Weight.Decode(Weight.Encode(1e9)))
	require.Equal(t, -Weight.Max(), Weight.Decode(Weight.Encode(-1e9)))
	require.Equal(t, PdfX.Max(), PdfX.Decode(PdfX.Encode(1.0)))
	require.Equal(t, PdfQScale.Max(), PdfQScale.Decode(PdfQScale.Encode(1e6)))

	// clamp formats never go below the smallest normal magnitude
	require.Equal(t, Weight.MinNormal(), Weight.Decode(Weight.Encode(1e-9)))
	require.Equal(t, -Weight.MinNormal(), Weight.Decode(Weight.Encode(-1e-9)))
	require.Equal(t, 1.0, PdfQScale.Decode(PdfQScale.Encode(0.3)))
}

func TestCodec_UnsignedNegative(t *testing.T) {
	for _, c := range []Codec[uint16]{PdfX, PdfQScale, RelIso, ImpactParameter, Rho, TrueNumPU} {
		require.Equal(t, uint16(0), c.Encode(-0.3))
		require.Equal(t, uint16(0), c.Encode(-1e9))
	}
}

func TestCodec_UnderflowPolicies(t *testing.T) {
	base := Format{MantissaBits: 13, ExponentBits: 3, Bias: 1}

	t.Run("clamp", func(t *testing.T) {
		f := base
		f.Underflow = UnderflowClamp
		c := MustNew[uint16](f)
		require.Equal(t, uint16(0x2000), c.Encode(0.01))
		require.Equal(t, uint16(0x2000), c.Encode(0.3))
	})

	t.Run("flush", func(t *testing.T) {
		f := base
		f.Underflow = UnderflowFlush
		c := MustNew[uint16](f)
		require.Equal(t, uint16(0), c.Encode(0.01))
		require.Equal(t, uint16(0), c.Encode(0.2))
		require.Equal(t, uint16(0x2000), c.Encode(0.25))
		require.Equal(t, uint16(0x2000), c.Encode(0.3))
	})

	t.Run("subnormal", func(t *testing.T) {
		f := base
		f.Underflow = UnderflowSubnormal
		c := MustNew[uint16](f)
		require.Equal(t, uint16(0x1000), c.Encode(0.25))
		require.Equal(t, uint16(0), c.Encode(math.Ldexp(1, -16)))
		require.Equal(t, 0.25, c.Decode(0x1000))
	})

	t.Run("decode is policy independent", func(t *testing.T) {
		clamp := base
		clamp.Underflow = UnderflowClamp
		sub := base
		sub.Underflow = UnderflowSubnormal
		a, b := MustNew[uint16](clamp), MustNew[uint16](sub)
		for cell := range 1 << 16 {
			require.Equal(t, a.Decode(uint16(cell)), b.Decode(uint16(cell)))
		}
	})
}

func TestCodec_RoundTripBound(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			f := c.Format()
			lo, hi := c.MinNormal(), c.Max()
			bound := math.Ldexp(1, -int(f.MantissaBits)-1)

			for range 5000 {
				v := lo * math.Pow(hi/lo, rng.Float64())
				got := c.Decode(c.Encode(v))
				require.LessOrEqual(t, math.Abs(got-v), v*bound, "v=%v got=%v", v, got)

				if f.Signed {
					got = c.Decode(c.Encode(-v))
					require.LessOrEqual(t, math.Abs(got+v), v*bound, "v=%v got=%v", -v, got)
				}
			}
		})
	}
}

func TestCodec_NormalCellsAreFixedPoints(t *testing.T) {
	for name, c := range allCodecs() {
		t.Run(name, func(t *testing.T) {
			f := c.Format()
			for cell := range 1 << 16 {
				e := (cell >> f.MantissaBits) & (1<<f.ExponentBits - 1)
				subnormal := f.Underflow == UnderflowSubnormal && cell != 0
				if e == 0 && !subnormal {
					continue
				}
				require.Equal(t, uint16(cell), c.Encode(c.Decode(uint16(cell))), "cell=%#04x", cell)
			}
		})
	}
}

func TestCodec_UnsignedDecodeIsMonotonic(t *testing.T) {
	for _, c := range []Codec[uint16]{PdfX, PdfQScale, RelIso, Rho} {
		prev := c.Decode(0)
		for cell := 1; cell < 1<<16; cell++ {
			v := c.Decode(uint16(cell))
			require.Greater(t, v, prev, "cell=%#04x", cell)
			prev = v
		}
	}
}

func TestNew_Validation(t *testing.T) {
	f8 := Format{MantissaBits: 4, ExponentBits: 4, Bias: 7}

	c8, err := New[uint8](f8)
	require.NoError(t, err)
	require.Equal(t, uint8(0x80), c8.Encode(1.0))
	require.Equal(t, 1.0, c8.Decode(0x80))
	require.Equal(t, uint8(0xFF), c8.Encode(1e9))

	_, err = New[uint16](f8)
	require.ErrorIs(t, err, errs.ErrInvalidFormat)

	_, err = New[uint8](WeightFormat)
	require.ErrorIs(t, err, errs.ErrInvalidFormat)

	bad := []Format{
		{MantissaBits: 16, ExponentBits: 0},
		{Signed: true, MantissaBits: 12, ExponentBits: 4},
		{MantissaBits: 4, ExponentBits: 4, Bias: 2000},
		{MantissaBits: 4, ExponentBits: 4, Bias: -2000},
	}
	for _, f := range bad {
		require.ErrorIs(t, f.Validate(), errs.ErrInvalidFormat, f.String())
	}

	require.Panics(t, func() { MustNew[uint16](f8) })
}

func TestFormat_Step(t *testing.T) {
	require.Equal(t, math.Ldexp(1, -10), WeightFormat.Step(1.0))
	require.Equal(t, math.Ldexp(1, -10), WeightFormat.Step(-1.5))
	require.Equal(t, math.Ldexp(1, -24), WeightFormat.Step(1e-9))
	require.Equal(t, 64.0, WeightFormat.Step(1e9))
	require.Equal(t, math.Ldexp(1, -14), RelIsoFormat.Step(0.1))
}

func TestFormat_String(t *testing.T) {
	s := WeightFormat.String()
	require.Contains(t, s, "signed=true")
	require.Contains(t, s, "bias=14")
	require.Contains(t, s, "underflow=clamp")
	require.Equal(t, "unknown", UnderflowPolicy(9).String())
}

func TestFields(t *testing.T) {
	fields := Fields()
	require.Len(t, fields, 7)

	for _, f := range fields {
		require.NoError(t, f.Format.Validate(), f.Name)
		require.Equal(t, uint(16), f.Format.Width(), f.Name)
	}
}

func TestCodec_Concurrent(t *testing.T) {
	values := []float64{0.001, 0.5, 0.75, 3.25, 17.5, 1000}
	want := make([]uint16, len(values))
	for i, v := range values {
		want[i] = Rho.Encode(v)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				for i, v := range values {
					if Rho.Encode(v) != want[i] {
						t.Errorf("unexpected cell for %v", v)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkCodec_Encode(b *testing.B) {
	var sink uint16
	for b.Loop() {
		sink = Weight.Encode(12.345)
	}
	_ = sink
}

func BenchmarkCodec_Decode(b *testing.B) {
	var sink float64
	for b.Loop() {
		sink = Weight.Decode(0x4A2C)
	}
	_ = sink
}
