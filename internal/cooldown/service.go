package cooldown

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/osse101/PaperAPI_Go/internal/domain"
)

var (
	// ErrUnknownPlayer is returned for players that are not tracked
	ErrUnknownPlayer = errors.New(ErrMsgUnknownPlayer)

	// ErrInvalidAttackSpeed is returned for zero or negative attack speeds
	ErrInvalidAttackSpeed = errors.New(ErrMsgInvalidAttackSpeed)
)

// Service tracks attack strength cooldowns the way the host does
type Service interface {
	// Track starts tracking a player holding the given weapon material
	Track(player domain.Player, material string) error

	// Forget stops tracking a player
	Forget(id uuid.UUID)

	// Equip switches the weapon a player holds, changing their attack speed
	Equip(id uuid.UUID, material string) error

	// SetAttackSpeed overrides a player's attack speed without restarting the swing
	SetAttackSpeed(id uuid.UUID, speed float64) error

	// Strength returns the attack strength scale in [0, 1]
	Strength(id uuid.UUID, adjustTicks float32) (float32, error)

	// Tick advances every tracked player by one game tick
	Tick()

	// Attack processes a player's attack on target, firing the cooldown reset event
	// and resetting the cooldown unless a listener cancels it
	Attack(ctx context.Context, player domain.Player, target domain.Entity) (AttackResult, error)
}

// AttackResult describes what happened to a player's cooldown during an attack
type AttackResult struct {
	PlayerID uuid.UUID
	TargetID uuid.UUID
	// Strength is the attack strength sampled when the attack was initiated
	Strength float32
	// Reset is true when the cooldown was reset
	Reset bool
	// Cancelled is true when a listener cancelled the reset. Reset and Cancelled
	// are both false when the player stopped being tracked during dispatch.
	Cancelled bool
	// DispatchFailed is true when at least one listener returned an error
	DispatchFailed bool
}

// Observer receives every attack outcome
type Observer interface {
	ObserveAttack(result AttackResult)
}
