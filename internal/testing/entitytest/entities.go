// Package entitytest provides in-memory entities for tests that need
// domain.Entity or domain.Player values without a running host.
package entitytest

import (
	"github.com/google/uuid"

	"github.com/osse101/PaperAPI_Go/internal/domain"
)

// Entity is a fixed-value domain.Entity
type Entity struct {
	ID         uuid.UUID
	EntityType domain.EntityType
	EntityName string
}

// NewEntity creates an entity with a random UUID
func NewEntity(entityType domain.EntityType, name string) *Entity {
	return &Entity{ID: uuid.New(), EntityType: entityType, EntityName: name}
}

func (e *Entity) UniqueID() uuid.UUID     { return e.ID }
func (e *Entity) Type() domain.EntityType { return e.EntityType }
func (e *Entity) Name() string            { return e.EntityName }

// Player is a fixed-value domain.Player
type Player struct {
	Entity
	Display string
}

// NewPlayer creates a player whose display name equals its name
func NewPlayer(name string) *Player {
	return &Player{
		Entity:  Entity{ID: uuid.New(), EntityType: domain.EntityTypePlayer, EntityName: name},
		Display: name,
	}
}

func (p *Player) DisplayName() string { return p.Display }

var (
	_ domain.Entity = (*Entity)(nil)
	_ domain.Player = (*Player)(nil)
)
