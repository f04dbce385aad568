package game

import (
	"math/rand"
	"testing"
)

func TestCalculateDamageBaseline(t *testing.T) {
	attacker := combatant(t, flatSpecies("alpha", TypeNormal), physical("strike", TypeNormal, 90))
	defender := combatant(t, flatSpecies("beta", TypeWater), physical("strike", TypeNormal, 90))

	// no crit, maximum random factor
	res := CalculateDamage(attacker, defender, attacker.Moves[0].Move, newScriptedRNG(0.5, 0.9, 1.0))
	if res.Damage != 61 {
		t.Errorf("expected 61 damage, got %d", res.Damage)
	}
	if res.Effectiveness != 1 || res.Critical || res.Ability != nil {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestCalculateDamageCritical(t *testing.T) {
	attacker := combatant(t, flatSpecies("alpha", TypeNormal), physical("strike", TypeNormal, 90))
	defender := combatant(t, flatSpecies("beta", TypeWater), physical("strike", TypeNormal, 90))

	res := CalculateDamage(attacker, defender, attacker.Moves[0].Move, newScriptedRNG(0.5, 0.0, 1.0))
	if !res.Critical {
		t.Fatal("expected a critical hit for roll 0")
	}
	if res.Damage != 92 {
		t.Errorf("expected 92 damage, got %d", res.Damage)
	}
}

func TestBurnHalvesPhysicalOnly(t *testing.T) {
	defender := combatant(t, flatSpecies("beta", TypeWater), physical("strike", TypeNormal, 90))

	burned := combatant(t, flatSpecies("alpha", TypeNormal), physical("strike", TypeNormal, 90), special("beam", TypeNormal, 90))
	burned.SetStatus(StatusBurn, 0)

	res := CalculateDamage(burned, defender, burned.Moves[0].Move, newScriptedRNG(0.5, 0.9, 1.0))
	if res.Damage != 31 {
		t.Errorf("burned physical: expected 31, got %d", res.Damage)
	}

	res = CalculateDamage(burned, defender, burned.Moves[1].Move, newScriptedRNG(0.5, 0.9, 1.0))
	if res.Damage != 61 {
		t.Errorf("burned special: expected 61, got %d", res.Damage)
	}

	// the halving applies after stages: +2 attack doubles, burn halves back
	burned.Stages.Attack = 2
	res = CalculateDamage(burned, defender, burned.Moves[0].Move, newScriptedRNG(0.5, 0.9, 1.0))
	if res.Damage != 61 {
		t.Errorf("burned physical at +2: expected 61, got %d", res.Damage)
	}
}

func TestTypeBoostAppliesToMatchingMoves(t *testing.T) {
	attacker := combatant(t, flatSpecies("alpha", TypeFire), special("flame", TypeFire, 90), special("beam", TypeNormal, 90))
	defender := combatant(t, flatSpecies("beta", TypeNormal), physical("strike", TypeNormal, 90))
	attacker.BoostedType = TypeFire

	res := CalculateDamage(attacker, defender, attacker.Moves[0].Move, newScriptedRNG(0.5, 0.9, 1.0))
	if res.Damage != 92 {
		t.Errorf("boosted fire move: expected 92, got %d", res.Damage)
	}
	res = CalculateDamage(attacker, defender, attacker.Moves[1].Move, newScriptedRNG(0.5, 0.9, 1.0))
	if res.Damage != 41 {
		t.Errorf("unboosted normal move: expected 41, got %d", res.Damage)
	}
}

func TestCalculateDamageCanRoundToZero(t *testing.T) {
	attacker := combatant(t, species("weak", []Element{TypeNormal}, 100, 5, 100, 100, 100, 100), physical("ember", TypeFire, 10))
	defender := combatant(t, species("wall", []Element{TypeWater, TypeRock}, 100, 100, 250, 100, 100, 100), physical("strike", TypeNormal, 90))
	defender.Stages.Defense = 6

	res := CalculateDamage(attacker, defender, attacker.Moves[0].Move, newScriptedRNG(0.5, 0.9, 0.0))
	if res.Effectiveness != 0.25 {
		t.Fatalf("expected 0.25 effectiveness, got %v", res.Effectiveness)
	}
	if res.Damage != 0 {
		t.Errorf("expected damage to floor to 0, got %d", res.Damage)
	}
}

func TestCalculateDamageImmunities(t *testing.T) {
	attacker := combatant(t, flatSpecies("alpha", TypeNormal), physical("strike", TypeNormal, 90), special("shock", TypeElectric, 90))
	ghost := combatant(t, flatSpecies("spirit", TypeGhost), physical("strike", TypeNormal, 90))

	rng := newScriptedRNG(0.5)
	res := CalculateDamage(attacker, ghost, attacker.Moves[0].Move, rng)
	if res.Damage != 0 || res.Effectiveness != 0 || res.Ability != nil {
		t.Errorf("type immunity: got %+v", res)
	}

	absorber := combatant(t, species("lanturn", []Element{TypeWater}, 100, 100, 100, 100, 100, 100, "volt-absorb"),
		physical("strike", TypeNormal, 90))
	rng = newScriptedRNG(0.5)
	res = CalculateDamage(attacker, absorber, attacker.Moves[1].Move, rng)
	if res.Ability == nil || res.Ability.Ability != "volt-absorb" || res.Damage != 0 {
		t.Fatalf("ability immunity: got %+v", res)
	}
	if rng.floatCalls != 0 {
		t.Errorf("ability immunity should not roll, rolled %d times", rng.floatCalls)
	}
}

func TestCalculateDamageStatusMove(t *testing.T) {
	attacker := combatant(t, flatSpecies("alpha", TypeNormal), statusMove("glare", TypeNormal))
	defender := combatant(t, flatSpecies("beta", TypeNormal), statusMove("glare", TypeNormal))
	res := CalculateDamage(attacker, defender, attacker.Moves[0].Move, newScriptedRNG(0.5))
	if res.Damage != 0 || res.Effectiveness != 1 {
		t.Errorf("status move: got %+v", res)
	}
}

func TestCalculateDamageDeterministic(t *testing.T) {
	attacker := combatant(t, flatSpecies("alpha", TypeFire), special("flame", TypeFire, 90))
	defender := combatant(t, flatSpecies("beta", TypeGrass), physical("strike", TypeNormal, 90))

	roll := func(seed int64) []int {
		rng := rand.New(rand.NewSource(seed))
		var out []int
		for i := 0; i < 50; i++ {
			out = append(out, CalculateDamage(attacker, defender, attacker.Moves[0].Move, rng).Damage)
		}
		return out
	}

	a, b := roll(42), roll(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("roll %d differs between identical seeds: %d vs %d", i, a[i], b[i])
		}
		if a[i] <= 0 {
			t.Fatalf("roll %d: super effective hit did no damage", i)
		}
	}
}

func TestAccuracyCheck(t *testing.T) {
	attacker := combatant(t, flatSpecies("alpha", TypeNormal), physical("strike", TypeNormal, 90))
	defender := combatant(t, flatSpecies("beta", TypeNormal), physical("strike", TypeNormal, 90))

	sure := physical("swift", TypeNormal, 60)
	sure.Accuracy = 0
	rng := newScriptedRNG(0.99)
	defender.Stages.Evasion = 6
	if !AccuracyCheck(attacker, defender, sure, rng) || rng.floatCalls != 0 {
		t.Errorf("accuracy 0 must hit without a roll (rolls=%d)", rng.floatCalls)
	}
	defender.Stages.Evasion = 0

	if !AccuracyCheck(attacker, defender, physical("strike", TypeNormal, 90), newScriptedRNG(0.999)) {
		t.Error("accuracy 100 at neutral stages should hit on roll 0.999")
	}

	shaky := physical("shaky", TypeNormal, 90)
	shaky.Accuracy = 50
	if AccuracyCheck(attacker, defender, shaky, newScriptedRNG(0.5)) {
		t.Error("accuracy 50 should miss on roll 0.5")
	}
	if !AccuracyCheck(attacker, defender, shaky, newScriptedRNG(0.49)) {
		t.Error("accuracy 50 should hit on roll 0.49")
	}

	// +1 evasion scales accuracy by 3/4
	defender.Stages.Evasion = 1
	if AccuracyCheck(attacker, defender, physical("strike", TypeNormal, 90), newScriptedRNG(0.76)) {
		t.Error("+1 evasion: roll 0.76 should miss")
	}
	if !AccuracyCheck(attacker, defender, physical("strike", TypeNormal, 90), newScriptedRNG(0.74)) {
		t.Error("+1 evasion: roll 0.74 should hit")
	}
}
