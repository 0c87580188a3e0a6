// Package collision detects column-ID hash collisions while a tuple schema is built.
package collision

import (
	"fmt"

	"github.com/arloliu/pec/errs"
)

// Tracker records column names with their IDs in schema order.
//
// Two distinct names sharing an ID are not an error: the tracker only raises a flag, and
// the writer then stores the names alongside the index so readers can tell the columns
// apart.
type Tracker struct {
	names        map[uint64]string
	ordered      []string
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:   make(map[uint64]string),
		ordered: make([]string, 0),
	}
}

// TrackColumn records name under id.
//
// Returns:
//   - error: ErrInvalidColumnName if name is empty or was already tracked
func (t *Tracker) TrackColumn(name string, id uint64) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalidColumnName)
	}

	if existing, ok := t.names[id]; ok {
		if existing == name {
			return fmt.Errorf("%w: duplicate column %q", errs.ErrInvalidColumnName, name)
		}
		t.hasCollision = true
	}

	t.names[id] = name
	t.ordered = append(t.ordered, name)

	return nil
}

// HasCollision reports whether two tracked names share an ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in the order they were added.
func (t *Tracker) Names() []string {
	return t.ordered
}

// Count returns the number of tracked columns.
func (t *Tracker) Count() int {
	return len(t.ordered)
}

// Reset clears the tracker, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.names)
	t.ordered = t.ordered[:0]
	t.hasCollision = false
}
