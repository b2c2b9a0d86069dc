package cooldown_bench

import (
	"context"
	"testing"

	"github.com/osse101/PaperAPI_Go/internal/cooldown"
	"github.com/osse101/PaperAPI_Go/internal/domain"
	"github.com/osse101/PaperAPI_Go/internal/event"
	"github.com/osse101/PaperAPI_Go/internal/testing/entitytest"
)

// --- Stubs (Zero-overhead observer for benchmarking) ---

type StubObserver struct{}

func (StubObserver) ObserveAttack(cooldown.AttackResult) {}

// BenchmarkAttack measures a full attack: strength sample, event dispatch
// through five listeners and the conditional reset
func BenchmarkAttack(b *testing.B) {
	list := event.AttackEntityCooldownResetHandlers()
	const owner = "bench"
	for _, p := range []event.Priority{event.PriorityLow, event.PriorityNormal, event.PriorityNormal, event.PriorityHigh, event.PriorityMonitor} {
		if err := event.Subscribe(list, owner, p, true, func(_ context.Context, ev *event.AttackEntityCooldownResetEvent) error {
			_ = ev.CooledAttackStrength()
			return nil
		}); err != nil {
			b.Fatal(err)
		}
	}
	b.Cleanup(func() { list.Unregister(owner) })

	tracker := cooldown.NewTracker(cooldown.Config{}, event.NewMemoryBus(), StubObserver{})
	player := entitytest.NewPlayer("bench")
	target := entitytest.NewEntity(domain.EntityTypeZombie, "zombie")
	if err := tracker.Track(player, cooldown.MaterialDiamondSword); err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tracker.Tick()
		if _, err := tracker.Attack(ctx, player, target); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTick measures advancing a populated server by one tick
func BenchmarkTick(b *testing.B) {
	tracker := cooldown.NewTracker(cooldown.Config{}, event.NewMemoryBus(), StubObserver{})
	for i := 0; i < 200; i++ {
		if err := tracker.Track(entitytest.NewPlayer("p"), cooldown.MaterialIronAxe); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tracker.Tick()
	}
}
