package event

import (
	"context"
	"errors"

	"github.com/osse101/PaperAPI_Go/internal/domain"
)

var (
	ErrNilHandler        = errors.New(ErrMsgNilHandler)
	ErrInvalidPriority   = errors.New(ErrMsgInvalidPriority)
	ErrEventTypeMismatch = errors.New(ErrMsgEventTypeMismatch)
)

// Event is anything the host can dispatch to registered handlers.
// Each concrete event type owns exactly one HandlerList, returned by Handlers.
type Event interface {
	EventName() string
	Handlers() *HandlerList
}

// Cancellable events let listeners suppress the host's default action
type Cancellable interface {
	IsCancelled() bool
	SetCancelled(cancel bool)
}

// PlayerEvent is an event scoped to a single player
type PlayerEvent interface {
	Player() domain.Player
}

// Cancellation implements Cancellable for embedding. The zero value is not cancelled.
// It is not safe for concurrent use; dispatch happens on one goroutine.
type Cancellation struct {
	cancelled bool
}

func (c *Cancellation) IsCancelled() bool { return c.cancelled }

func (c *Cancellation) SetCancelled(cancel bool) { c.cancelled = cancel }

// PlayerScope implements PlayerEvent for embedding
type PlayerScope struct {
	player domain.Player
}

// NewPlayerScope binds an event to the player it concerns
func NewPlayerScope(player domain.Player) PlayerScope {
	return PlayerScope{player: player}
}

func (s PlayerScope) Player() domain.Player { return s.player }

// Handler is a function that handles an event
type Handler func(ctx context.Context, ev Event) error

// IsCancelled reports whether ev is cancellable and currently cancelled
func IsCancelled(ev Event) bool {
	c, ok := ev.(Cancellable)
	return ok && c.IsCancelled()
}
