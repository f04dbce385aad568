package game

import (
	"fmt"

	"github.com/peterkuimelis/monbattle/internal/log"
)

// userTargets are target descriptors that aim a status move at its user.
var userTargets = map[string]bool{
	"user":            true,
	"users-field":     true,
	"user-or-ally":    true,
	"ally":            true,
	"user-and-allies": true,
}

// rollChance reports whether a percentage-gated effect fires. Chances of 0
// (unconditional) or >= 100 fire without consuming a roll.
func (b *Battle) rollChance(chance int) bool {
	if chance <= 0 || chance >= 100 {
		return true
	}
	return b.rng.Float64()*100 < float64(chance)
}

// executeMove runs mv from side's active combatant against the opponent.
func (b *Battle) executeMove(side Side, mv *BattleMove) {
	gs := b.State
	foe := side.Opponent()
	attacker, defender := gs.Active(side), gs.Active(foe)

	b.log(log.NewMoveUsedEvent(gs.Turn, int(side), attacker.Name, mv.DisplayName()))

	if !AccuracyCheck(attacker, defender, mv.Move, b.rng) {
		b.log(log.NewMissEvent(gs.Turn, int(side), attacker.Name))
		return
	}

	if mv.Category == CategoryStatus || mv.Power <= 0 {
		b.applyStatusMove(side, mv)
		return
	}

	res := CalculateDamage(attacker, defender, mv.Move, b.rng)
	b.diag.Debug().
		Str("move", mv.Name).
		Int("dmg", res.Damage).
		Float64("eff", res.Effectiveness).
		Bool("crit", res.Critical).
		Msg("damage roll")

	if res.Ability != nil {
		b.applyAbility(foe, res.Ability)
		return
	}
	if res.Effectiveness == 0 {
		b.log(log.NewNoEffectEvent(gs.Turn, int(foe), defender.Name))
		return
	}

	lost := defender.ApplyDamage(res.Damage)
	b.log(log.NewDamageEvent(gs.Turn, int(foe), defender.Name, lost, defender.HP, defender.MaxHP))
	if res.Critical {
		b.log(log.NewCriticalEvent(gs.Turn, int(side)))
	}
	if res.Effectiveness != 1 {
		b.log(log.NewEffectivenessEvent(gs.Turn, int(foe), res.Effectiveness))
	}

	b.applyDrain(side, mv, lost)

	if defender.Fainted() {
		return
	}

	if ailment := mv.Meta.Ailment; ailment != "" && mv.Meta.AilmentChance > 0 && b.rollChance(mv.Meta.AilmentChance) {
		b.inflictAilment(foe, ailment, false)
	}
	if chance := mv.Meta.FlinchChance; chance > 0 && b.rollChance(chance) {
		defender.addVolatile(VolatileFlinch)
	}
	if len(mv.StatChanges) > 0 && b.rollChance(mv.Meta.StatChance) {
		target := foe
		// Guaranteed stat changes on damaging moves are costs or buffs on the user.
		if mv.Meta.StatChance <= 0 || mv.Meta.StatChance >= 100 {
			target = side
		}
		if !gs.Active(target).Fainted() {
			b.applyStatChanges(target, mv.StatChanges)
		}
	}
}

// applyDrain heals or hurts the attacker by the move's share of damage dealt.
func (b *Battle) applyDrain(side Side, mv *BattleMove, dealt int) {
	drain := mv.Meta.Drain
	if drain == 0 || dealt <= 0 {
		return
	}
	attacker := b.State.Active(side)
	if drain > 0 {
		healed := attacker.Heal(max(1, dealt*drain/100))
		if healed > 0 {
			b.log(log.NewDrainEvent(b.State.Turn, int(side), attacker.Name, healed))
		}
		return
	}
	lost := attacker.ApplyDamage(max(1, dealt*-drain/100))
	b.log(log.NewRecoilEvent(b.State.Turn, int(side), attacker.Name, lost))
}

// applyStatusMove resolves a status-category move: healing, stat changes,
// then ailment.
func (b *Battle) applyStatusMove(side Side, mv *BattleMove) {
	gs := b.State
	user := gs.Active(side)
	foe := side.Opponent()
	acted := false

	if healing := mv.Meta.Healing; healing > 0 {
		acted = true
		if user.HP >= user.MaxHP {
			b.log(log.NewEvent(gs.Turn, int(side), log.EventMessage, user.Name, fmt.Sprintf("%s's HP is full!", user.Name)))
		} else {
			healed := user.Heal(max(1, user.MaxHP*healing/100))
			b.log(log.NewHealEvent(gs.Turn, int(side), user.Name, healed, user.HP, user.MaxHP))
		}
	}

	if len(mv.StatChanges) > 0 && b.rollChance(mv.Meta.StatChance) {
		acted = true
		target := foe
		if userTargets[mv.Target] {
			target = side
		}
		b.applyStatChanges(target, mv.StatChanges)
	}

	if ailment := mv.Meta.Ailment; ailment != "" && b.rollChance(mv.Meta.AilmentChance) {
		acted = true
		b.inflictAilment(foe, ailment, true)
	}

	if !acted {
		b.log(log.NewEvent(gs.Turn, int(side), log.EventMessage, "", "But nothing happened!"))
	}
}

// inflictAilment applies a status or confusion to side's active combatant.
// announce narrates failures, as status moves do.
func (b *Battle) inflictAilment(side Side, ailment string, announce bool) {
	gs := b.State
	c := gs.Active(side)

	if ailment == "confusion" {
		if IsImmuneToConfusion(c) {
			if announce {
				b.log(log.NewEvent(gs.Turn, int(side), log.EventStatusFailed, c.Name, fmt.Sprintf("%s is already confused!", c.Name)))
			}
			return
		}
		c.Confuse(ConfusionTurns(b.rng))
		b.log(log.NewEvent(gs.Turn, int(side), log.EventStatusApplied, c.Name, fmt.Sprintf("%s became confused!", c.Name)))
		return
	}

	status, ok := ParseStatus(ailment)
	if !ok {
		return
	}
	if IsImmuneToStatus(c, status) {
		if announce {
			msg := fmt.Sprintf("It doesn't affect %s...", c.Name)
			if c.Status != StatusNone {
				msg = "But it failed!"
			}
			b.log(log.NewEvent(gs.Turn, int(side), log.EventStatusFailed, c.Name, msg))
		}
		return
	}

	sleep := 0
	if status == StatusSleep {
		sleep = SleepTurns(b.rng)
	}
	c.SetStatus(status, sleep)
	b.log(log.NewEvent(gs.Turn, int(side), log.EventStatusApplied, c.Name, InflictMessage(c.Name, status)))
}

// applyStatChanges applies each change to side's active combatant.
// Unknown stats are skipped silently.
func (b *Battle) applyStatChanges(side Side, changes []StatChange) {
	gs := b.State
	c := gs.Active(side)
	for _, sc := range changes {
		next, actual, maxed := ApplyStatChange(c.Stages, sc.Stat, sc.Change)
		if actual == 0 && !maxed {
			continue
		}
		c.Stages = next
		ev := log.NewEvent(gs.Turn, int(side), log.EventStatChange, c.Name,
			StatChangeMessage(c.Name, sc.Stat, sc.Change, actual, maxed))
		ev.Amount = actual
		b.log(ev)
	}
}

// applyAbility resolves an immunity ability in place of the move's effects.
func (b *Battle) applyAbility(side Side, eff *AbilityEffect) {
	gs := b.State
	c := gs.Active(side)
	b.log(log.NewEvent(gs.Turn, int(side), log.EventAbility, c.Name, AbilityMessage(c.Name, eff.Ability)))

	acted := false
	if eff.Heal > 0 && c.HP < c.MaxHP {
		healed := c.Heal(eff.Heal)
		b.log(log.NewHealEvent(gs.Turn, int(side), c.Name, healed, c.HP, c.MaxHP))
		acted = true
	}
	if eff.Boost != nil {
		b.applyStatChanges(side, []StatChange{*eff.Boost})
		acted = true
	}
	if eff.TypeBoost != "" {
		acted = true
		label := DisplayName(eff.Ability)
		if c.BoostedType == eff.TypeBoost {
			b.log(log.NewEvent(gs.Turn, int(side), log.EventMessage, c.Name,
				fmt.Sprintf("%s's %s is already active!", c.Name, label)))
		} else {
			c.BoostedType = eff.TypeBoost
			b.log(log.NewEvent(gs.Turn, int(side), log.EventMessage, c.Name,
				fmt.Sprintf("The power of %s's %s-type moves rose!", c.Name, DisplayName(string(eff.TypeBoost)))))
		}
	}
	if !acted {
		b.log(log.NewNoEffectEvent(gs.Turn, int(side), c.Name))
	}
}
