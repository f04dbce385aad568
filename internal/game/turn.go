package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/monbattle/internal/log"
)

// actOutcome is how a single action slot ended.
type actOutcome int

const (
	actDone    actOutcome = iota
	actBlocked            // the actor could not move
	actStopped            // faint handling ran; the turn is over
)

// beginTurn claims the resolver, advances the turn counter and expires flinches.
func (b *Battle) beginTurn() error {
	if err := b.fsm.Event(context.Background(), evBeginTurn); err != nil {
		return ErrTurnInProgress
	}
	gs := b.State
	gs.Turn++
	b.log(log.NewTurnEvent(gs.Turn))
	for _, side := range []Side{SidePlayer, SideCPU} {
		gs.Active(side).removeVolatile(VolatileFlinch)
	}
	return nil
}

// resolveMoveTurn runs a turn in which the player attacks with mv.
func (b *Battle) resolveMoveTurn(mv *BattleMove) {
	cpuTeam := b.State.Team(SideCPU)

	if ShouldCPUSwitch(cpuTeam, b.rng) {
		target := SelectCPUSwitchTarget(cpuTeam)
		b.diag.Debug().Int("turn", b.State.Turn).Int("target", target).Msg("cpu switches")
		// The player's chosen attack still lands before the switch.
		if b.act(SidePlayer, mv) == actStopped {
			return
		}
		b.switchIn(SideCPU, target)
		b.endOfTurn([2]Side{SidePlayer, SideCPU})
		return
	}

	cpuMove := SelectCPUMove(b.State.Active(SideCPU), b.rng)
	if cpuMove == nil {
		b.cpuOutOfMoves()
		return
	}
	cpuMove.CurrentPP--

	order := b.turnOrder(mv, cpuMove)
	moves := map[Side]*BattleMove{SidePlayer: mv, SideCPU: cpuMove}

	switch b.act(order[0], moves[order[0]]) {
	case actStopped:
		return
	case actBlocked:
		// A blocked first actor takes the second actor's slot with it.
	default:
		if b.act(order[1], moves[order[1]]) == actStopped {
			return
		}
	}
	b.endOfTurn(order)
}

// resolveSecondSlot lets the CPU act after a player item use or switch.
func (b *Battle) resolveSecondSlot() {
	cpuTeam := b.State.Team(SideCPU)
	if ShouldCPUSwitch(cpuTeam, b.rng) {
		b.switchIn(SideCPU, SelectCPUSwitchTarget(cpuTeam))
	} else {
		mv := SelectCPUMove(cpuTeam.ActiveMember(), b.rng)
		if mv == nil {
			b.cpuOutOfMoves()
			return
		}
		mv.CurrentPP--
		if b.act(SideCPU, mv) == actStopped {
			return
		}
	}
	b.endOfTurn([2]Side{SidePlayer, SideCPU})
}

func (b *Battle) cpuOutOfMoves() {
	cpu := b.State.Active(SideCPU)
	b.log(log.NewEvent(b.State.Turn, int(SideCPU), log.EventNoMoves, cpu.Name,
		fmt.Sprintf("%s has no moves left!", cpu.Name)))
	b.endBattle(SidePlayer, "The CPU has no moves left!")
}

// turnOrder sorts the two actors: priority, then effective speed, then a coin flip.
func (b *Battle) turnOrder(playerMove, cpuMove *BattleMove) [2]Side {
	playerFirst := [2]Side{SidePlayer, SideCPU}
	cpuFirst := [2]Side{SideCPU, SidePlayer}

	if playerMove.Priority != cpuMove.Priority {
		if playerMove.Priority > cpuMove.Priority {
			return playerFirst
		}
		return cpuFirst
	}

	ps := b.State.Active(SidePlayer).EffectiveSpeed()
	cs := b.State.Active(SideCPU).EffectiveSpeed()
	b.diag.Debug().Int("playerSpeed", ps).Int("cpuSpeed", cs).Msg("turn order")
	switch {
	case ps > cs:
		return playerFirst
	case cs > ps:
		return cpuFirst
	case b.rng.Float64() < 0.5:
		return playerFirst
	default:
		return cpuFirst
	}
}

// act runs the pre-move checks for side's active combatant and, if it can
// move, executes mv against the opponent.
func (b *Battle) act(side Side, mv *BattleMove) actOutcome {
	gs := b.State
	attacker := gs.Active(side)
	defender := gs.Active(side.Opponent())

	check := CheckAction(attacker, b.rng)
	if check.Woke {
		attacker.ClearStatus()
		b.log(log.NewEvent(gs.Turn, int(side), log.EventStatusCured, attacker.Name, attacker.Name+" woke up!"))
	}
	if check.Thawed {
		attacker.ClearStatus()
		b.log(log.NewEvent(gs.Turn, int(side), log.EventStatusCured, attacker.Name, attacker.Name+" thawed out!"))
	}
	if check.Confused {
		b.log(log.NewEvent(gs.Turn, int(side), log.EventConfused, attacker.Name, attacker.Name+" is confused!"))
	}

	if !check.Allowed() {
		if check.Reason == BlockFlinch {
			attacker.removeVolatile(VolatileFlinch)
		}
		ev := log.NewEvent(gs.Turn, int(side), log.EventActionBlocked, attacker.Name, check.Reason.Message(attacker.Name))
		ev.Move = mv.DisplayName()
		b.log(ev)

		if check.Reason == BlockConfusion {
			lost := attacker.ApplyDamage(check.SelfDamage)
			hit := log.NewDamageEvent(gs.Turn, int(side), attacker.Name, lost, attacker.HP, attacker.MaxHP)
			hit.Type = log.EventSelfHit
			b.log(hit)
			if attacker.Fainted() {
				b.handleFaints([2]Side{side, side.Opponent()})
				return actStopped
			}
		}
		return actBlocked
	}

	b.executeMove(side, mv)

	if defender.Fainted() || attacker.Fainted() {
		b.handleFaints([2]Side{side.Opponent(), side})
		return actStopped
	}
	return actDone
}

// endOfTurn applies residual status damage and ticks counters, in order.
func (b *Battle) endOfTurn(order [2]Side) {
	gs := b.State
	for _, side := range order {
		c := gs.Active(side)
		if c.Fainted() {
			continue
		}
		if dmg := EndOfTurnStatusDamage(c); dmg > 0 {
			status := c.Status
			lost := c.ApplyDamage(dmg)
			ev := log.NewEvent(gs.Turn, int(side), log.EventStatusDamage, c.Name, ResidualMessage(c.Name, status))
			ev.Amount = lost
			b.log(ev)
			if c.Fainted() {
				continue
			}
		}
		if tickConditions(c) {
			b.log(log.NewEvent(gs.Turn, int(side), log.EventConfusionEnd, c.Name,
				fmt.Sprintf("%s snapped out of its confusion!", c.Name)))
		}
	}

	if gs.Active(SidePlayer).Fainted() || gs.Active(SideCPU).Fainted() {
		b.handleFaints(order)
		return
	}
	b.transition(evFinishTurn)
}

// handleFaints narrates fainted actives in order and moves the battle to
// its next phase: ended, forced switch, switch prompt, or idle.
func (b *Battle) handleFaints(order [2]Side) {
	gs := b.State
	for _, side := range order {
		if c := gs.Active(side); c.Fainted() {
			c.ClearStatus()
			c.Volatiles = 0
			b.log(log.NewFaintEvent(gs.Turn, int(side), c.Name))
		}
	}

	for _, side := range order {
		if gs.Team(side).AllFainted() {
			b.endBattle(side.Opponent(), "")
			return
		}
	}

	playerDown := gs.Active(SidePlayer).Fainted()
	cpuDown := gs.Active(SideCPU).Fainted()
	if cpuDown {
		b.pendingCPU = SelectCPUSwitchTarget(gs.Team(SideCPU))
		b.diag.Debug().Int("pending", b.pendingCPU).Msg("cpu replacement chosen")
	}

	switch {
	case playerDown:
		b.transition(evForceSwitch)
	case cpuDown && gs.Team(SidePlayer).HasViableSwitch():
		b.log(log.NewEvent(gs.Turn, int(SideCPU), log.EventMessage, "",
			"The CPU is about to send out its next combatant. Will you switch?"))
		b.transition(evPromptSwitch)
	case cpuDown:
		b.revealCPU()
		b.transition(evFinishTurn)
	}
}

// revealCPU sends in the CPU's pre-selected replacement.
func (b *Battle) revealCPU() {
	idx := b.pendingCPU
	if idx < 0 {
		idx = SelectCPUSwitchTarget(b.State.Team(SideCPU))
	}
	b.pendingCPU = -1
	if idx >= 0 {
		b.switchIn(SideCPU, idx)
	}
}

// switchIn makes index the side's active combatant. Stages travel with the
// combatant; volatile conditions end on withdrawal.
func (b *Battle) switchIn(side Side, index int) {
	team := b.State.Team(side)
	from := team.ActiveMember()
	from.Volatiles = 0
	from.ConfusionTurns = 0
	team.Active = index
	to := team.ActiveMember()

	if from.Fainted() {
		b.log(log.NewSendOutEvent(b.State.Turn, int(side), to.Name))
		return
	}
	b.log(log.NewSwitchEvent(b.State.Turn, int(side), from.Name, to.Name))
}
