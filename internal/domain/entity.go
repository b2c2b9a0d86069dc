package domain

import "github.com/google/uuid"

// EntityType identifies the kind of an entity
type EntityType string

// Entity is a host-owned game object. Events hold it by reference and never mutate it.
type Entity interface {
	UniqueID() uuid.UUID
	Type() EntityType
	Name() string
}

// Player is an entity controlled by a connected client
type Player interface {
	Entity
	// DisplayName is the formatted name shown in chat and the tab list
	DisplayName() string
}
