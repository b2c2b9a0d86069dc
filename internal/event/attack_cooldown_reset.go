package event

import "github.com/osse101/PaperAPI_Go/internal/domain"

var attackEntityCooldownResetHandlers = NewHandlerList()

// AttackEntityCooldownResetHandlers returns the handler list shared by every
// AttackEntityCooldownResetEvent
func AttackEntityCooldownResetHandlers() *HandlerList {
	return attackEntityCooldownResetHandlers
}

// AttackEntityCooldownResetEvent is fired while processing a player's attack on an
// entity, right before the player's attack strength cooldown is reset.
//
// Cancelling it leaves the player's attack strength where it was instead of
// resetting it.
type AttackEntityCooldownResetEvent struct {
	PlayerScope
	Cancellation

	attackedEntity       domain.Entity
	cooledAttackStrength float32
}

// NewAttackEntityCooldownResetEvent is called by the host only
func NewAttackEntityCooldownResetEvent(player domain.Player, attackedEntity domain.Entity, cooledAttackStrength float32) *AttackEntityCooldownResetEvent {
	return &AttackEntityCooldownResetEvent{
		PlayerScope:          NewPlayerScope(player),
		attackedEntity:       attackedEntity,
		cooledAttackStrength: cooledAttackStrength,
	}
}

// CooledAttackStrength is the player's attack strength when the attack was initiated
func (e *AttackEntityCooldownResetEvent) CooledAttackStrength() float32 {
	return e.cooledAttackStrength
}

// AttackedEntity is the entity the player attacked
func (e *AttackEntityCooldownResetEvent) AttackedEntity() domain.Entity {
	return e.attackedEntity
}

func (e *AttackEntityCooldownResetEvent) EventName() string {
	return NameAttackEntityCooldownReset
}

func (e *AttackEntityCooldownResetEvent) Handlers() *HandlerList {
	return attackEntityCooldownResetHandlers
}

var (
	_ Event       = (*AttackEntityCooldownResetEvent)(nil)
	_ PlayerEvent = (*AttackEntityCooldownResetEvent)(nil)
	_ Cancellable = (*AttackEntityCooldownResetEvent)(nil)
)
