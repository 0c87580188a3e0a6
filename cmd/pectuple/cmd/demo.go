package cmd

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/pec/format"
	"github.com/arloliu/pec/record"
	"github.com/arloliu/pec/tuple"
)

type demoOptions struct {
	kind        string
	rows        int
	out         string
	compression string
	bigEndian   bool
	names       bool
	seed        uint64
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a tuple of synthetic records",
		Long: `Write a tuple of synthetic records of one kind.

Example:
  pectuple demo --kind lepton --rows 10000 --out leptons.pec`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := buildDemo(opts)
			if err != nil {
				return err
			}

			if err := os.WriteFile(opts.out, data, 0o644); err != nil { //nolint: gosec
				return fmt.Errorf("failed to write %s: %w", opts.out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d %s rows, %d bytes, to %s\n", opts.rows, opts.kind, len(data), opts.out)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "lepton", "record kind: generator, lepton or pileup")
	cmd.Flags().IntVar(&opts.rows, "rows", 1000, "number of records")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "demo.pec", "output file")
	cmd.Flags().StringVar(&opts.compression, "compression", "zstd", "column compression: none, zstd, s2 or lz4")
	cmd.Flags().BoolVar(&opts.bigEndian, "big-endian", false, "write a big-endian tuple")
	cmd.Flags().BoolVar(&opts.names, "names", false, "store the column names payload")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed")

	return cmd
}

func buildDemo(opts demoOptions) ([]byte, error) {
	if opts.rows <= 0 {
		return nil, fmt.Errorf("rows must be positive, got %d", opts.rows)
	}

	comp, ok := format.ParseCompression(opts.compression)
	if !ok {
		return nil, fmt.Errorf("unknown compression %q", opts.compression)
	}

	writerOpts := []tuple.WriterOption{
		tuple.WithCompression(comp),
		tuple.WithColumnNames(opts.names),
		tuple.WithLogger(logger),
	}
	if opts.bigEndian {
		writerOpts = append(writerOpts, tuple.WithBigEndian())
	}

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9E3779B97F4A7C15)) //nolint: gosec

	logger.Info("generating demo tuple",
		zap.String("kind", opts.kind),
		zap.Int("rows", opts.rows),
		zap.Stringer("compression", comp))

	switch opts.kind {
	case "generator":
		return fillDemo(record.NewGeneratorInfo, opts.rows, rng, randomGeneratorInfo, writerOpts)
	case "lepton":
		return pooledDemo(record.NewLepton, opts.rows, rng, randomLepton, writerOpts)
	case "pileup":
		return fillDemo(record.NewPileUpInfo, opts.rows, rng, randomPileUpInfo, writerOpts)
	default:
		return nil, fmt.Errorf("unknown record kind %q", opts.kind)
	}
}

// fillDemo writes rows through the writer's own record.
func fillDemo[R record.Record](newRecord func() R, rows int, rng *rand.Rand,
	fill func(R, *rand.Rand) error, opts []tuple.WriterOption,
) ([]byte, error) {
	w, err := tuple.NewWriter(newRecord, opts...)
	if err != nil {
		return nil, err
	}

	for range rows {
		if err := w.Fill(func(rec R) error { return fill(rec, rng) }); err != nil {
			return nil, err
		}
	}

	return w.Finish()
}

// pooledDemo builds each record from a pool and appends it.
func pooledDemo[R record.Record](newRecord func() R, rows int, rng *rand.Rand,
	fill func(R, *rand.Rand) error, opts []tuple.WriterOption,
) ([]byte, error) {
	w, err := tuple.NewWriter(newRecord, opts...)
	if err != nil {
		return nil, err
	}

	pool := record.NewPool(newRecord)
	for range rows {
		rec := pool.Get()
		err := fill(rec, rng)
		if err == nil {
			err = w.Append(rec)
		}
		pool.Put(rec)
		if err != nil {
			return nil, err
		}
	}

	return w.Finish()
}

func randomGeneratorInfo(g *record.GeneratorInfo, rng *rand.Rand) error {
	if err := g.SetProcessID(rng.IntN(10)); err != nil {
		return err
	}

	weight := 1.0
	if rng.IntN(10) == 0 {
		weight = -1.0
	}
	if err := g.SetWeight(weight * (0.5 + rng.Float64())); err != nil {
		return err
	}

	x1 := math.Exp(-6 * rng.Float64())
	x2 := math.Exp(-6 * rng.Float64())
	if err := g.SetPdfXs(x1, x2); err != nil {
		return err
	}
	if err := g.SetPdfIDs(rng.IntN(16)-5, rng.IntN(16)-5); err != nil {
		return err
	}

	return g.SetPdfQScale(math.Sqrt(x1 * x2 * 13000 * 13000))
}

func randomLepton(l *record.Lepton, rng *rand.Rand) error {
	pt := 5 + rng.ExpFloat64()*30
	eta := 2.5 * (2*rng.Float64() - 1)
	phi := math.Pi * (2*rng.Float64() - 1)
	mass := 0.000511
	if rng.IntN(2) == 0 {
		mass = 0.10566
	}
	if err := l.SetPtEtaPhiM(pt, eta, phi, mass); err != nil {
		return err
	}

	if err := l.SetCharge(1 - 2*rng.IntN(2)); err != nil {
		return err
	}
	for bit := range 4 {
		if err := l.SetBit(bit, rng.Float64() < 0.8); err != nil {
			return err
		}
	}
	if err := l.SetRelIso(rng.ExpFloat64() * 0.1); err != nil {
		return err
	}

	return l.SetDB(rng.NormFloat64() * 0.01)
}

func randomPileUpInfo(p *record.PileUpInfo, rng *rand.Rand) error {
	mu := 20 + 40*rng.Float64()
	if err := p.SetTrueNumPU(mu); err != nil {
		return err
	}
	if err := p.SetInTimeNumPU(max(0, int(mu+rng.NormFloat64()*math.Sqrt(mu)))); err != nil {
		return err
	}
	if err := p.SetNumPV(int(0.7 * mu)); err != nil {
		return err
	}

	return p.SetRho(0.5 * mu * (0.8 + 0.4*rng.Float64()))
}
