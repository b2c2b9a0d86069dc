package main

import (
	"context"

	"github.com/osse101/PaperAPI_Go/internal/domain"
	"github.com/osse101/PaperAPI_Go/internal/event"
	"github.com/osse101/PaperAPI_Go/internal/logger"
)

const (
	listenerOwner = "paper-api"

	logMsgResetSuppressed = "Cooldown reset suppressed for practice target"
)

// registerListeners wires the built-in listeners. Armor stands are practice
// targets: hitting one keeps the swing charge instead of spending it.
func registerListeners(list *event.HandlerList) error {
	return event.Subscribe(list, listenerOwner, event.PriorityNormal, true, keepChargeOnArmorStand)
}

func keepChargeOnArmorStand(ctx context.Context, ev *event.AttackEntityCooldownResetEvent) error {
	if ev.AttackedEntity().Type() != domain.EntityTypeArmorStand {
		return nil
	}
	ev.SetCancelled(true)
	logger.FromContext(ctx).Debug(logMsgResetSuppressed,
		"player", ev.Player().Name(),
		"strength", ev.CooledAttackStrength())
	return nil
}
