package game

import "fmt"

// StatStages holds the seven stage modifiers, each in [-6, +6].
type StatStages struct {
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
	Accuracy       int
	Evasion        int
}

// Get returns the stage for a stat. Unknown stats read as 0.
func (s StatStages) Get(stat Stat) int {
	switch stat {
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatSpecialAttack:
		return s.SpecialAttack
	case StatSpecialDefense:
		return s.SpecialDefense
	case StatSpeed:
		return s.Speed
	case StatAccuracy:
		return s.Accuracy
	case StatEvasion:
		return s.Evasion
	default:
		return 0
	}
}

// with returns a copy with the stat set to v. ok is false for unknown stats.
func (s StatStages) with(stat Stat, v int) (StatStages, bool) {
	switch stat {
	case StatAttack:
		s.Attack = v
	case StatDefense:
		s.Defense = v
	case StatSpecialAttack:
		s.SpecialAttack = v
	case StatSpecialDefense:
		s.SpecialDefense = v
	case StatSpeed:
		s.Speed = v
	case StatAccuracy:
		s.Accuracy = v
	case StatEvasion:
		s.Evasion = v
	default:
		return s, false
	}
	return s, true
}

func clampStage(v int) int {
	return max(stageLimitNeg, min(stageLimit, v))
}

// StatMultiplier converts a stage to a multiplier for the five battle stats.
func StatMultiplier(stage int) float64 {
	stage = clampStage(stage)
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

// AccuracyMultiplier converts an accuracy or evasion stage to a multiplier.
func AccuracyMultiplier(stage int) float64 {
	stage = clampStage(stage)
	if stage >= 0 {
		return float64(3+stage) / 3
	}
	return 3 / float64(3-stage)
}

// ApplyStatChange returns the new stages after adding delta to stat, the
// change actually realized, and whether a non-zero request was fully
// absorbed by the clamp. Unknown stats leave the stages untouched.
func ApplyStatChange(stages StatStages, stat Stat, delta int) (StatStages, int, bool) {
	current := stages.Get(stat)
	next := clampStage(current + delta)
	updated, ok := stages.with(stat, next)
	if !ok {
		return stages, 0, false
	}
	actual := next - current
	return updated, actual, delta != 0 && actual == 0
}

// StatDisplayName formats a stat id for narration, e.g. "Special Attack".
func StatDisplayName(stat Stat) string {
	return DisplayName(string(stat))
}

// StatChangeMessage narrates the outcome of a stage change.
func StatChangeMessage(name string, stat Stat, requested, actual int, maxedOut bool) string {
	label := StatDisplayName(stat)
	if maxedOut {
		if requested > 0 {
			return fmt.Sprintf("%s's %s won't go any higher!", name, label)
		}
		return fmt.Sprintf("%s's %s won't go any lower!", name, label)
	}

	verb := "rose"
	magnitude := actual
	if actual < 0 {
		verb = "fell"
		magnitude = -actual
	}
	switch {
	case magnitude >= 3:
		return fmt.Sprintf("%s's %s %s drastically!", name, label, verb)
	case magnitude == 2:
		return fmt.Sprintf("%s's %s %s sharply!", name, label, verb)
	default:
		return fmt.Sprintf("%s's %s %s!", name, label, verb)
	}
}
