package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/PaperAPI_Go/internal/logger"
)

// Bus defines the interface for dispatching events to their handler lists
type Bus interface {
	Call(ctx context.Context, ev Event) error
}

// MemoryBus dispatches synchronously on the caller's goroutine
type MemoryBus struct{}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{}
}

// Call runs every handler registered on the event's HandlerList in priority order.
// A failing handler does not stop the others; all errors are returned together.
func (b *MemoryBus) Call(ctx context.Context, ev Event) error {
	log := logger.FromContext(ctx)
	regs := ev.Handlers().Handlers()
	log.Debug(LogMsgDispatchStarted, "event", ev.EventName(), "handlers", len(regs))

	var errs []error
	for _, reg := range regs {
		if reg.IgnoreCancelled && IsCancelled(ev) {
			log.Debug(LogMsgHandlerSkipped, "event", ev.EventName(), "owner", reg.Owner)
			continue
		}
		if err := reg.Handler(ctx, ev); err != nil {
			log.Warn(LogMsgHandlerFailed,
				"event", ev.EventName(),
				"owner", reg.Owner,
				"priority", reg.Priority.String(),
				"error", err)
			errs = append(errs, err)
		}
	}

	log.Debug(LogMsgDispatchFinished, "event", ev.EventName(), "cancelled", IsCancelled(ev))

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), ev.EventName(), errors.Join(errs...))
	}
	return nil
}

// CallEvent dispatches ev and reports whether the host should go ahead with
// the default action, i.e. the event is not cancellable or was not cancelled.
func CallEvent(ctx context.Context, bus Bus, ev Event) (bool, error) {
	err := bus.Call(ctx, ev)
	return !IsCancelled(ev), err
}
