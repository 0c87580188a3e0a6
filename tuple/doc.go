// Package tuple persists physics records column by column.
//
// A Writer collects records of one kind, splits every record into its fixed-width
// cells and stores each column as an independently compressed payload. A Reader
// validates the result and loads rows back into caller-owned records. See package
// section for the binary layout.
//
// # Writing
//
//	w, err := tuple.NewWriter(record.NewLepton, tuple.WithCompression(format.CompressionZstd))
//	for _, l := range event.Leptons {
//	    err = w.Fill(func(rec *record.Lepton) error {
//	        if err := rec.SetPtEtaPhiM(l.Pt, l.Eta, l.Phi, l.M); err != nil {
//	            return err
//	        }
//	        return rec.SetCharge(l.Q)
//	    })
//	}
//	data, err := w.Finish()
//
// Fill lends the writer's own record to the callback after resetting it, so values of
// the previous row never leak into the next one. Append stores a record the caller
// owns instead.
//
// # Reading
//
//	r, err := tuple.NewReader(data)
//	lep := record.NewLepton()
//	for row, err := range r.Rows(lep) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(row, lep.Pt(), lep.Charge())
//	}
//
// # Thread Safety
//
// Writers and Readers are not safe for concurrent use. Separate instances may be used
// from separate goroutines.
package tuple
