package game

import "github.com/samber/lo"

const (
	cpuStatusMoveChance = 0.4
	cpuStrongestChance  = 0.5
	cpuSwitchThreshold  = 40.0
	cpuSwitchChance     = 0.8
)

// SelectCPUMove picks the CPU's move. It returns nil when no move has PP.
func SelectCPUMove(c *Combatant, rng RNG) *BattleMove {
	available := c.AvailableMoves()
	if len(available) == 0 {
		return nil
	}

	statusMoves := lo.Filter(available, func(m *BattleMove, _ int) bool {
		return m.Category == CategoryStatus
	})
	if len(statusMoves) > 0 && rng.Float64() < cpuStatusMoveChance {
		return statusMoves[rng.Intn(len(statusMoves))]
	}

	damaging := lo.Filter(available, func(m *BattleMove, _ int) bool {
		return m.Category != CategoryStatus && m.Power > 0
	})
	if len(damaging) == 0 {
		return available[rng.Intn(len(available))]
	}

	if rng.Float64() < cpuStrongestChance {
		// MaxBy keeps the first of equal candidates
		return lo.MaxBy(damaging, func(a, b *BattleMove) bool { return a.Power > b.Power })
	}
	return damaging[rng.Intn(len(damaging))]
}

// ShouldCPUSwitch decides whether the CPU withdraws its active combatant.
// The random trigger is only rolled when a switch is warranted.
func ShouldCPUSwitch(team *Team, rng RNG) bool {
	if team.ActiveMember().HPPercent() > cpuSwitchThreshold {
		return false
	}
	healthier := lo.SomeBy(benched(team), func(c *Combatant) bool {
		return c.HPPercent() > cpuSwitchThreshold
	})
	if !healthier {
		return false
	}
	return rng.Float64() < cpuSwitchChance
}

// SelectCPUSwitchTarget returns the index of the benched, non-fainted member
// with the highest HP percentage, or -1 when there is none.
func SelectCPUSwitchTarget(team *Team) int {
	best, bestPct := -1, 0.0
	for i, c := range team.Members {
		if !team.CanSwitchTo(i) {
			continue
		}
		if pct := c.HPPercent(); best == -1 || pct > bestPct {
			best, bestPct = i, pct
		}
	}
	return best
}

func benched(team *Team) []*Combatant {
	return lo.Filter(team.Members, func(c *Combatant, i int) bool {
		return team.CanSwitchTo(i)
	})
}
