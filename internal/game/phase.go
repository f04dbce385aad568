package game

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
)

// Phase is the resolver's state between and during turns.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseResolving    Phase = "resolving"
	PhaseForcedSwitch Phase = "awaiting_forced_switch"
	PhaseSwitchPrompt Phase = "awaiting_switch_prompt"
	PhaseEnded        Phase = "ended"
)

const (
	evBeginTurn    = "begin_turn"
	evFinishTurn   = "finish_turn"
	evForceSwitch  = "force_switch"
	evPromptSwitch = "prompt_switch"
	evSwitchDone   = "switch_done"
	evEndBattle    = "end_battle"
)

func newPhaseMachine(diag *zerolog.Logger) *fsm.FSM {
	return fsm.NewFSM(
		string(PhaseIdle),
		fsm.Events{
			{Name: evBeginTurn, Src: []string{string(PhaseIdle)}, Dst: string(PhaseResolving)},
			{Name: evFinishTurn, Src: []string{string(PhaseResolving)}, Dst: string(PhaseIdle)},
			{Name: evForceSwitch, Src: []string{string(PhaseResolving)}, Dst: string(PhaseForcedSwitch)},
			{Name: evPromptSwitch, Src: []string{string(PhaseResolving)}, Dst: string(PhaseSwitchPrompt)},
			{Name: evSwitchDone, Src: []string{string(PhaseForcedSwitch), string(PhaseSwitchPrompt)}, Dst: string(PhaseIdle)},
			{Name: evEndBattle, Src: []string{string(PhaseIdle), string(PhaseResolving)}, Dst: string(PhaseEnded)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				diag.Debug().Str("event", e.Event).Str("from", e.Src).Str("to", e.Dst).Msg("phase")
			},
		},
	)
}

// Phase returns the current resolver phase.
func (b *Battle) Phase() Phase {
	return Phase(b.fsm.Current())
}

// transition fires a phase event. The resolver only fires events that are
// legal from its current phase, so a failure is a programming error.
func (b *Battle) transition(event string) {
	if err := b.fsm.Event(context.Background(), event); err != nil {
		b.diag.Error().Err(err).Str("event", event).Str("phase", b.fsm.Current()).Msg("illegal phase transition")
	}
}

// checkIdle refuses full-turn intents outside the idle phase.
func (b *Battle) checkIdle() error {
	switch b.Phase() {
	case PhaseIdle:
		return nil
	case PhaseResolving:
		return ErrTurnInProgress
	case PhaseEnded:
		return ErrBattleOver
	default:
		return ErrSwitchRequired
	}
}
