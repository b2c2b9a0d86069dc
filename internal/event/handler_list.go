package event

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registration is one handler subscribed to a HandlerList
type Registration struct {
	// Owner names the plugin or subsystem that registered the handler
	Owner    string
	Priority Priority
	// IgnoreCancelled skips the handler while the event is cancelled
	IgnoreCancelled bool
	Handler         Handler
}

// HandlerList holds the handlers of one event type.
// The dispatcher reads a baked, priority-sorted snapshot that is rebuilt after changes.
type HandlerList struct {
	mu    sync.Mutex
	regs  []Registration
	baked []Registration
	stale bool
}

// NewHandlerList creates an empty handler list
func NewHandlerList() *HandlerList {
	return &HandlerList{}
}

// Register adds a handler
func (l *HandlerList) Register(reg Registration) error {
	if reg.Handler == nil {
		return ErrNilHandler
	}
	if !reg.Priority.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPriority, reg.Priority)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.regs = append(l.regs, reg)
	l.stale = true
	return nil
}

// Unregister removes every handler registered by owner and returns how many were removed
func (l *HandlerList) Unregister(owner string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.regs[:0]
	removed := 0
	for _, reg := range l.regs {
		if reg.Owner == owner {
			removed++
			continue
		}
		kept = append(kept, reg)
	}
	// clear the tail so dropped handlers can be collected
	for i := len(kept); i < len(l.regs); i++ {
		l.regs[i] = Registration{}
	}
	l.regs = kept

	if removed > 0 {
		l.stale = true
	}
	return removed
}

// Handlers returns the registrations in dispatch order.
// The returned slice is shared and must not be modified.
func (l *HandlerList) Handlers() []Registration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stale || l.baked == nil {
		baked := make([]Registration, len(l.regs))
		copy(baked, l.regs)
		sort.SliceStable(baked, func(i, j int) bool {
			return baked[i].Priority < baked[j].Priority
		})
		l.baked = baked
		l.stale = false
	}
	return l.baked
}

// Len returns the number of registered handlers
func (l *HandlerList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.regs)
}

// Subscribe registers a handler typed to the concrete event T
func Subscribe[T Event](list *HandlerList, owner string, priority Priority, ignoreCancelled bool, fn func(ctx context.Context, ev T) error) error {
	if fn == nil {
		return ErrNilHandler
	}
	return list.Register(Registration{
		Owner:           owner,
		Priority:        priority,
		IgnoreCancelled: ignoreCancelled,
		Handler: func(ctx context.Context, ev Event) error {
			typed, ok := ev.(T)
			if !ok {
				return fmt.Errorf("%w: got %s", ErrEventTypeMismatch, ev.EventName())
			}
			return fn(ctx, typed)
		},
	})
}
