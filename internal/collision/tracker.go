// Package collision tracks function names added to a code library and detects ID collisions.
package collision

import (
	"github.com/arloliu/tuyair/errs"
)

// Tracker records function names and their IDs while a library is being built.
//
// Two different names hashing to the same ID are not an error: the collision flag is set and
// readers fall back to comparing names stored in the payload. Adding the same name twice is.
type Tracker struct {
	names        map[string]struct{} // Every tracked name, for duplicate detection
	ids          map[uint64]string   // ID → first name seen with it
	namesList    []string            // Insertion order
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[string]struct{}),
		ids:       make(map[uint64]string),
		namesList: make([]string, 0),
	}
}

// TrackFunction tracks a function name with its ID.
//
// Returns errs.ErrInvalidFunctionName for an empty name and errs.ErrFunctionAlreadyAdded when
// the name was tracked before.
func (t *Tracker) TrackFunction(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidFunctionName
	}

	if _, exists := t.names[name]; exists {
		return errs.ErrFunctionAlreadyAdded
	}

	if _, exists := t.ids[id]; exists {
		t.hasCollision = true
	} else {
		t.ids[id] = name
	}

	t.names[name] = struct{}{}
	t.namesList = append(t.namesList, name)

	return nil
}

// HasCollision reports whether two tracked names share an ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in the order TrackFunction accepted them.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of tracked functions.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked names and the collision state, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.names)
	clear(t.ids)
	t.namesList = t.namesList[:0]
	t.hasCollision = false
}
