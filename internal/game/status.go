package game

import "fmt"

// RNG is the source of randomness for every chance roll in a battle.
// *math/rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

const (
	paralysisBlockChance = 0.25
	freezeHoldChance     = 0.8
	confusionHitChance   = 0.33
	confusionPower       = 40
)

// BlockReason is why a combatant could not execute its move.
type BlockReason int

const (
	BlockNone BlockReason = iota
	BlockParalysis
	BlockSleep
	BlockFreeze
	BlockConfusion
	BlockFlinch
)

func (r BlockReason) String() string {
	switch r {
	case BlockNone:
		return "none"
	case BlockParalysis:
		return "paralysis"
	case BlockSleep:
		return "sleep"
	case BlockFreeze:
		return "freeze"
	case BlockConfusion:
		return "confusion"
	case BlockFlinch:
		return "flinch"
	default:
		return "unknown"
	}
}

// Message narrates the block for the named combatant.
func (r BlockReason) Message(name string) string {
	switch r {
	case BlockParalysis:
		return fmt.Sprintf("%s is paralyzed! It can't move!", name)
	case BlockSleep:
		return fmt.Sprintf("%s is fast asleep.", name)
	case BlockFreeze:
		return fmt.Sprintf("%s is frozen solid!", name)
	case BlockConfusion:
		return "It hurt itself in its confusion!"
	case BlockFlinch:
		return fmt.Sprintf("%s flinched and couldn't move!", name)
	default:
		return ""
	}
}

// ActionCheck is the outcome of the pre-move checks. It describes what
// happened without applying it; the resolver applies the consequences.
type ActionCheck struct {
	Reason     BlockReason
	Woke       bool // sleep counter was already 0
	Thawed     bool
	Confused   bool // the confusion roll was made
	SelfDamage int  // confusion self-hit damage
}

func (a ActionCheck) Allowed() bool { return a.Reason == BlockNone }

// CheckAction evaluates, in fixed precedence, whether c can execute its move.
// The first blocking reason wins.
func CheckAction(c *Combatant, rng RNG) ActionCheck {
	var check ActionCheck

	switch c.Status {
	case StatusParalysis:
		if rng.Float64() < paralysisBlockChance {
			check.Reason = BlockParalysis
			return check
		}
	case StatusSleep:
		if c.StatusTurns > 0 {
			check.Reason = BlockSleep
			return check
		}
		check.Woke = true
	case StatusFreeze:
		if rng.Float64() < freezeHoldChance {
			check.Reason = BlockFreeze
			return check
		}
		check.Thawed = true
	}

	if c.Volatiles.Has(VolatileConfusion) && c.ConfusionTurns > 0 {
		check.Confused = true
		if rng.Float64() < confusionHitChance {
			check.Reason = BlockConfusion
			check.SelfDamage = ConfusionDamage(c)
			return check
		}
	}

	if c.Volatiles.Has(VolatileFlinch) {
		check.Reason = BlockFlinch
	}
	return check
}

// ConfusionDamage is the self-hit damage: a typeless physical hit of power 40
// using the combatant's own stage-adjusted attack and defense.
func ConfusionDamage(c *Combatant) int {
	atk := float64(c.EffectiveStat(StatAttack))
	def := float64(max(1, c.EffectiveStat(StatDefense)))
	return int(baseDamage(c.Level, confusionPower, atk, def))
}

// IsImmuneToStatus reports whether status cannot be inflicted on c.
func IsImmuneToStatus(c *Combatant, s Status) bool {
	if c.Status != StatusNone {
		return true
	}
	switch s {
	case StatusBurn:
		return c.HasType(TypeFire)
	case StatusParalysis:
		return c.HasType(TypeElectric)
	case StatusPoison, StatusBadPoison:
		return c.HasType(TypePoison) || c.HasType(TypeSteel)
	case StatusFreeze:
		return c.HasType(TypeIce)
	}
	return false
}

// IsImmuneToConfusion reports whether c is already confused.
func IsImmuneToConfusion(c *Combatant) bool {
	return c.Volatiles.Has(VolatileConfusion)
}

// EndOfTurnStatusDamage returns the residual damage c takes this tick.
func EndOfTurnStatusDamage(c *Combatant) int {
	switch c.Status {
	case StatusBurn, StatusPoison:
		return c.MaxHP / 16
	case StatusBadPoison:
		return c.MaxHP * max(1, c.StatusTurns) / 16
	default:
		return 0
	}
}

// SleepTurns draws the sleep duration, uniform in {1,2,3}.
func SleepTurns(rng RNG) int { return 1 + rng.Intn(3) }

// ConfusionTurns draws the confusion duration, uniform in {1,2,3,4}.
func ConfusionTurns(rng RNG) int { return 1 + rng.Intn(4) }

// tickConditions advances the per-turn counters of c and reports whether
// confusion wore off.
func tickConditions(c *Combatant) (snappedOut bool) {
	switch c.Status {
	case StatusSleep:
		if c.StatusTurns > 0 {
			c.StatusTurns--
		}
	case StatusBadPoison:
		c.StatusTurns++
	}
	if c.Volatiles.Has(VolatileConfusion) {
		if c.ConfusionTurns > 0 {
			c.ConfusionTurns--
		}
		if c.ConfusionTurns == 0 {
			c.removeVolatile(VolatileConfusion)
			return true
		}
	}
	return false
}

// InflictMessage narrates a newly applied status.
func InflictMessage(name string, s Status) string {
	switch s {
	case StatusParalysis:
		return fmt.Sprintf("%s is paralyzed! It may be unable to move!", name)
	case StatusBurn:
		return fmt.Sprintf("%s was burned!", name)
	case StatusPoison:
		return fmt.Sprintf("%s was poisoned!", name)
	case StatusBadPoison:
		return fmt.Sprintf("%s was badly poisoned!", name)
	case StatusSleep:
		return fmt.Sprintf("%s fell asleep!", name)
	case StatusFreeze:
		return fmt.Sprintf("%s was frozen solid!", name)
	default:
		return ""
	}
}

// ResidualMessage narrates end-of-turn status damage.
func ResidualMessage(name string, s Status) string {
	if s == StatusBurn {
		return fmt.Sprintf("%s is hurt by its burn!", name)
	}
	return fmt.Sprintf("%s is hurt by poison!", name)
}
