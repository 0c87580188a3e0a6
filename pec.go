// Package pec stores physics event records with lossy minifloat fields in compact
// columnar tuples.
//
// The building blocks live in sub-packages:
//
//   - minifloat: 8/16-bit floating-point cells with a per-field Format
//   - nibble: two parton codes packed into one byte
//   - record: GeneratorInfo, Lepton and PileUpInfo with validating setters
//   - tuple: columnar Writer and Reader for any record kind
//
// This package adds thin constructors for the common cases.
//
// # Basic Usage
//
//	w, err := pec.NewLeptonWriter(tuple.WithCompression(format.CompressionZstd))
//	err = w.Fill(func(l *record.Lepton) error {
//	    if err := l.SetPtEtaPhiM(35.2, -0.8, 1.9, 0.000511); err != nil {
//	        return err
//	    }
//	    return l.SetCharge(-1)
//	})
//	data, err := w.Finish()
//
//	r, rec, err := pec.Open(data)
//	err = r.Load(0, rec)
//	lep := rec.(*record.Lepton)
package pec

import (
	"github.com/arloliu/pec/record"
	"github.com/arloliu/pec/tuple"
)

// NewGeneratorInfoWriter creates a tuple writer for generator information records.
func NewGeneratorInfoWriter(opts ...tuple.WriterOption) (*tuple.Writer[*record.GeneratorInfo], error) {
	return tuple.NewWriter(record.NewGeneratorInfo, opts...)
}

// NewLeptonWriter creates a tuple writer for lepton candidates.
func NewLeptonWriter(opts ...tuple.WriterOption) (*tuple.Writer[*record.Lepton], error) {
	return tuple.NewWriter(record.NewLepton, opts...)
}

// NewPileUpInfoWriter creates a tuple writer for pile-up information records.
func NewPileUpInfoWriter(opts ...tuple.WriterOption) (*tuple.Writer[*record.PileUpInfo], error) {
	return tuple.NewWriter(record.NewPileUpInfo, opts...)
}

// Open decodes a tuple and returns it together with an empty record of the stored kind,
// ready to be passed to Reader.Load or Reader.Rows.
//
// Returns:
//   - *tuple.Reader: decoded tuple
//   - record.Record: reset record matching the tuple kind
//   - error: any decoding error of tuple.NewReader
func Open(data []byte) (*tuple.Reader, record.Record, error) {
	r, err := tuple.NewReader(data)
	if err != nil {
		return nil, nil, err
	}

	rec, err := record.New(r.Kind())
	if err != nil {
		return nil, nil, err
	}

	return r, rec, nil
}
