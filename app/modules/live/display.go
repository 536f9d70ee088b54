package live

import (
	"sync"

	"github.com/google/uuid"
)

// ExpansionState tracks which rows show hole-by-hole detail. Rows are keyed
// by participant ID, not array index: ranks shift between refresh cycles and
// an index-keyed toggle would land on the wrong player.
type ExpansionState struct {
	mu       sync.Mutex
	expanded map[uuid.UUID]bool
}

// NewExpansionState builds an empty expansion set.
func NewExpansionState() *ExpansionState {
	return &ExpansionState{expanded: make(map[uuid.UUID]bool)}
}

// Toggle flips a row's expansion and returns the new state.
func (e *ExpansionState) Toggle(participantID uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.expanded[participantID] {
		delete(e.expanded, participantID)
		return false
	}
	e.expanded[participantID] = true
	return true
}

// IsExpanded reports a row's current expansion.
func (e *ExpansionState) IsExpanded(participantID uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.expanded[participantID]
}

// Retain drops expansion state for participants no longer on the board.
// Called after each refresh with the current participant set.
func (e *ExpansionState) Retain(participantIDs []uuid.UUID) {
	keep := make(map[uuid.UUID]bool, len(participantIDs))
	for _, id := range participantIDs {
		keep[id] = true
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for id := range e.expanded {
		if !keep[id] {
			delete(e.expanded, id)
		}
	}
}

// Expanded returns the currently expanded participant IDs.
func (e *ExpansionState) Expanded() []uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]uuid.UUID, 0, len(e.expanded))
	for id := range e.expanded {
		out = append(out, id)
	}
	return out
}
