package metrics

import (
	"context"

	"github.com/osse101/PaperAPI_Go/internal/cooldown"
	"github.com/osse101/PaperAPI_Go/internal/event"
	"github.com/osse101/PaperAPI_Go/internal/logger"
)

// EventMetricsCollector watches dispatches and attack outcomes and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes a monitor handler on each handler list.
// Monitor handlers run last, so they see the final cancellation state.
func (e *EventMetricsCollector) Register(lists ...*event.HandlerList) error {
	for _, list := range lists {
		if err := list.Register(event.Registration{
			Owner:    CollectorOwner,
			Priority: event.PriorityMonitor,
			Handler:  e.HandleEvent,
		}); err != nil {
			return err
		}
	}
	logger.Debug(LogMsgCollectorRegistered, "lists", len(lists))
	return nil
}

// Unregister removes the collector's handlers
func (e *EventMetricsCollector) Unregister(lists ...*event.HandlerList) {
	for _, list := range lists {
		list.Unregister(CollectorOwner)
	}
}

// HandleEvent records a dispatch
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, ev event.Event) error {
	name := ev.EventName()
	EventsDispatched.WithLabelValues(name).Inc()
	if event.IsCancelled(ev) {
		EventsCancelled.WithLabelValues(name).Inc()
	}
	return nil
}

// ObserveAttack implements cooldown.Observer
func (e *EventMetricsCollector) ObserveAttack(result cooldown.AttackResult) {
	AttackStrength.Observe(float64(result.Strength))
	if result.DispatchFailed {
		EventHandlerErrors.WithLabelValues(event.NameAttackEntityCooldownReset).Inc()
	}
	switch {
	case result.Reset:
		AttackCooldown.WithLabelValues(OutcomeReset).Inc()
	case result.Cancelled:
		AttackCooldown.WithLabelValues(OutcomeSuppressed).Inc()
	default:
		AttackCooldown.WithLabelValues(OutcomeUntracked).Inc()
	}
}

var _ cooldown.Observer = (*EventMetricsCollector)(nil)
