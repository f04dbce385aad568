package game

import (
	"testing"

	"github.com/peterkuimelis/monbattle/internal/log"
)

// scriptedRNG returns queued values in order, then a fixed default.
// Used in tests to drive every chance roll deterministically.
type scriptedRNG struct {
	floats     []float64
	ints       []int
	fallback   float64
	floatCalls int
}

func newScriptedRNG(fallback float64, floats ...float64) *scriptedRNG {
	return &scriptedRNG{fallback: fallback, floats: floats}
}

func (r *scriptedRNG) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return r.fallback
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRNG) queue(floats ...float64) *scriptedRNG {
	r.floats = append(r.floats, floats...)
	return r
}

func (r *scriptedRNG) queueInts(ints ...int) *scriptedRNG {
	r.ints = append(r.ints, ints...)
	return r
}

// species builds a test species with flat stats.
func species(name string, types []Element, hp, atk, def, spa, spd, spe int, abilities ...string) *Species {
	return &Species{
		Name:      name,
		Types:     types,
		BaseStats: baseStats(hp, atk, def, spa, spd, spe),
		Abilities: abilities,
	}
}

// flatSpecies has 100 in every stat, so max HP at level 50 is 160.
func flatSpecies(name string, types ...Element) *Species {
	return species(name, types, 100, 100, 100, 100, 100, 100)
}

func physical(name string, t Element, power int) *Move {
	return &Move{Name: name, Type: t, Category: CategoryPhysical, Power: power, Accuracy: 100, PP: 10, Target: targetSelected}
}

func special(name string, t Element, power int) *Move {
	return &Move{Name: name, Type: t, Category: CategorySpecial, Power: power, Accuracy: 100, PP: 10, Target: targetSelected}
}

func statusMove(name string, t Element) *Move {
	return &Move{Name: name, Type: t, Category: CategoryStatus, Accuracy: 0, PP: 10, Target: targetSelected}
}

func combatant(t *testing.T, sp *Species, moves ...*Move) *Combatant {
	t.Helper()
	c, err := NewCombatant(sp, DefaultLevel, moves)
	if err != nil {
		t.Fatalf("NewCombatant(%s): %v", sp.Name, err)
	}
	return c
}

// newTestBattle builds a battle with a MemoryLogger and the given RNG.
func newTestBattle(t *testing.T, rng RNG, player, cpu []*Combatant) (*Battle, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	b, err := NewBattle(BattleConfig{Player: player, CPU: cpu, Logger: logger, RNG: rng})
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	return b, logger
}

func team(members ...*Combatant) []*Combatant { return members }

// hasDetail reports whether any event carries exactly the given message.
func hasDetail(events []log.BattleEvent, details string) bool {
	for _, e := range events {
		if e.Details == details {
			return true
		}
	}
	return false
}
