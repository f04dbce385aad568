package game

import "math"

const (
	critChance      = 0.0625
	critMultiplier  = 1.5
	stabMultiplier  = 1.5
	boostMultiplier = 1.5
	randomFloor     = 0.85
	randomSpread    = 0.15
)

// DamageResult is the outcome of a single attack's damage roll.
type DamageResult struct {
	Damage        int
	Effectiveness float64
	Critical      bool
	Ability       *AbilityEffect
}

// baseDamage is the floored level/power/stat-ratio term shared by every hit.
func baseDamage(level, power int, attack, defense float64) float64 {
	return math.Floor((float64(2*level)/5+2)*float64(power)*attack/defense/50 + 2)
}

// CalculateDamage rolls the damage of move from attacker against defender.
// Draw order: critical roll, then random factor.
func CalculateDamage(attacker, defender *Combatant, move *Move, rng RNG) DamageResult {
	if move.Category == CategoryStatus || move.Power <= 0 {
		return DamageResult{Effectiveness: 1}
	}

	if effect := ResolveAbility(defender, move.Type); effect != nil {
		return DamageResult{Effectiveness: 0, Ability: effect}
	}

	atkStat, defStat := StatAttack, StatDefense
	if move.Category == CategorySpecial {
		atkStat, defStat = StatSpecialAttack, StatSpecialDefense
	}
	attack := float64(attacker.EffectiveStat(atkStat))
	defense := float64(max(1, defender.EffectiveStat(defStat)))
	if move.Category == CategoryPhysical && attacker.Status == StatusBurn {
		attack /= 2
	}

	eff := Effectiveness(move.Type, defender.Species.Types)
	if eff == 0 {
		return DamageResult{Effectiveness: 0}
	}

	stab := 1.0
	if attacker.HasType(move.Type) {
		stab = stabMultiplier
	}

	crit := rng.Float64() < critChance
	critMult := 1.0
	if crit {
		critMult = critMultiplier
	}

	random := randomFloor + rng.Float64()*randomSpread

	boost := 1.0
	if attacker.BoostedType != "" && attacker.BoostedType == move.Type {
		boost = boostMultiplier
	}

	base := baseDamage(attacker.Level, move.Power, attack, defense)
	damage := math.Floor(base * stab * eff * critMult * random * boost)

	return DamageResult{
		Damage:        int(damage),
		Effectiveness: eff,
		Critical:      crit,
	}
}

// AccuracyCheck reports whether move lands. Moves without an accuracy value
// always hit and consume no roll.
func AccuracyCheck(attacker, defender *Combatant, move *Move, rng RNG) bool {
	if move.Accuracy <= 0 {
		return true
	}
	stage := clampStage(attacker.Stages.Accuracy - defender.Stages.Evasion)
	threshold := float64(move.Accuracy) * AccuracyMultiplier(stage)
	return rng.Float64()*100 < threshold
}
