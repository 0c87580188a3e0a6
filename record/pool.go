package record

import "sync"

// Pool recycles records of one type across events.
//
// Get always returns a record in the reset state, so a producer never observes values
// left over from a previous event. A Pool is safe for concurrent use; the records it
// hands out are not.
type Pool[R Record] struct {
	p sync.Pool
}

// NewPool creates a pool that allocates new records with newRecord.
func NewPool[R Record](newRecord func() R) *Pool[R] {
	return &Pool[R]{
		p: sync.Pool{New: func() any { return newRecord() }},
	}
}

// Get returns a reset record owned by the caller.
func (p *Pool[R]) Get() R {
	rec, _ := p.p.Get().(R)
	rec.Reset()

	return rec
}

// Put returns rec to the pool. The caller must not use rec afterwards.
func (p *Pool[R]) Put(rec R) {
	p.p.Put(rec)
}
