package spacetest

import (
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlspace/space"
)

// Agent is a minimal space.Locatable fixture: a unique identity plus a
// position. Enough to exercise the entity-accepting metric variants.
type Agent struct {
	ID  uuid.UUID
	pos space.Position
}

// NewAgent creates an Agent at pos (deep-copied) with a fresh random ID.
func NewAgent(pos space.Position) *Agent {
	return &Agent{
		ID:  uuid.New(),
		pos: slices.Clone(pos),
	}
}

// Position returns the agent's current position. Callers must not mutate it.
func (a *Agent) Position() space.Position { return a.pos }

// MoveTo replaces the agent's position with a copy of pos.
func (a *Agent) MoveTo(pos space.Position) {
	a.pos = slices.Clone(pos)
}
