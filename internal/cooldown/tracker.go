package cooldown

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/PaperAPI_Go/internal/domain"
	"github.com/osse101/PaperAPI_Go/internal/event"
	"github.com/osse101/PaperAPI_Go/internal/logger"
)

type playerState struct {
	ticker      int
	attackSpeed float64
}

// delayTicks is the number of ticks needed to reach full strength
func (s *playerState) delayTicks() float32 {
	return float32(1.0 / s.attackSpeed * domain.TicksPerSecond)
}

type tracker struct {
	config   Config
	bus      event.Bus
	observer Observer

	mu      sync.Mutex
	players map[uuid.UUID]*playerState
}

// NewTracker creates an in-memory attack cooldown Service.
// observer may be nil.
func NewTracker(config Config, bus event.Bus, observer Observer) Service {
	return &tracker{
		config:   config,
		bus:      bus,
		observer: observer,
		players:  make(map[uuid.UUID]*playerState),
	}
}

func (t *tracker) Track(player domain.Player, material string) error {
	if player == nil {
		return domain.ErrNilEntity
	}
	speed := t.config.AttackSpeedFor(material)

	t.mu.Lock()
	t.players[player.UniqueID()] = &playerState{attackSpeed: speed}
	t.mu.Unlock()

	logger.Debug(LogMsgPlayerTracked, "player", player.Name(), "material", material, "attack_speed", speed)
	return nil
}

func (t *tracker) Forget(id uuid.UUID) {
	t.mu.Lock()
	_, ok := t.players[id]
	delete(t.players, id)
	t.mu.Unlock()

	if ok {
		logger.Debug(LogMsgPlayerForgotten, "player_id", id)
	}
}

func (t *tracker) Equip(id uuid.UUID, material string) error {
	speed := t.config.AttackSpeedFor(material)

	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.players[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	state.attackSpeed = speed
	// switching items restarts the swing
	state.ticker = 0
	return nil
}

func (t *tracker) SetAttackSpeed(id uuid.UUID, speed float64) error {
	if !ValidAttackSpeed(speed) {
		return fmt.Errorf("%w: %v", ErrInvalidAttackSpeed, speed)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.players[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	state.attackSpeed = speed
	return nil
}

func (t *tracker) Strength(id uuid.UUID, adjustTicks float32) (float32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.players[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	return t.strengthLocked(state, adjustTicks), nil
}

func (t *tracker) strengthLocked(state *playerState, adjustTicks float32) float32 {
	if t.config.DevMode {
		return FullStrength
	}
	scale := (float32(state.ticker) + adjustTicks) / state.delayTicks()
	switch {
	case scale < 0:
		return 0
	case scale > FullStrength:
		return FullStrength
	default:
		return scale
	}
}

func (t *tracker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, state := range t.players {
		state.ticker++
	}
}

func (t *tracker) Attack(ctx context.Context, player domain.Player, target domain.Entity) (AttackResult, error) {
	if player == nil || target == nil {
		return AttackResult{}, domain.ErrNilEntity
	}

	strength, err := t.Strength(player.UniqueID(), AttackAdjustTicks)
	if err != nil {
		return AttackResult{}, err
	}

	if _, ok := logger.DispatchIDFromContext(ctx); !ok {
		ctx = logger.WithDispatchID(ctx, logger.GenerateDispatchID())
	}
	log := logger.FromContext(ctx)

	// Listeners run without the tracker lock so they may query Strength.
	ev := event.NewAttackEntityCooldownResetEvent(player, target, strength)
	proceed, err := event.CallEvent(ctx, t.bus, ev)
	if err != nil {
		log.Warn(LogMsgDispatchFailed, "player", player.Name(), "error", err)
	}

	result := AttackResult{
		PlayerID:       player.UniqueID(),
		TargetID:       target.UniqueID(),
		Strength:       strength,
		Cancelled:      !proceed,
		DispatchFailed: err != nil,
	}

	if proceed {
		t.mu.Lock()
		if state, ok := t.players[player.UniqueID()]; ok {
			state.ticker = 0
			result.Reset = true
		}
		t.mu.Unlock()
	} else {
		log.Debug(LogMsgResetSuppressed,
			"player", player.Name(),
			"target", target.Name(),
			"strength", strength)
	}

	if t.observer != nil {
		t.observer.ObserveAttack(result)
	}
	return result, nil
}
