// Package record provides the compact per-event data holders persisted in pec tuples.
//
// Each record owns a small set of narrow integer cells. Physical quantities are validated
// by the setters and then stored through a field-specific minifloat codec (package
// minifloat) or the parton-code packer (package nibble); getters decode on every call and
// never fail except for index arguments.
//
// Records are mutable, single-owner values. The intended lifecycle is:
//
//	rec := record.NewLepton()    // reset state
//	_ = rec.SetCharge(-1)        // filled once per event
//	q := rec.Charge()            // read back by a consumer
//	rec.Reset()                  // reused for the next event
//
// A Pool hands out reset records for reuse across events. Records are not safe for
// concurrent use; give each goroutine its own instance.
//
// # Host Integration
//
// Every record implements Record, the capability set a persistence collaborator needs:
// its kind, a fixed column schema, and conversion of the stored cells to and from a flat
// []uint64 row. Package tuple builds on it.
package record
