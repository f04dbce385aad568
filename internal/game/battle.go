package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/looplab/fsm"
	"github.com/peterkuimelis/monbattle/internal/log"
	"github.com/rs/zerolog"
)

// PlayerController supplies the player's intents to Battle.Run.
type PlayerController interface {
	// ChooseIntent waits for the player's next intent in the given phase.
	ChooseIntent(ctx context.Context, state *BattleState, phase Phase) (Intent, error)

	// Reject reports a refused intent; the same decision will be asked again.
	Reject(ctx context.Context, err error) error

	// Notify sends a battle event (no response needed).
	Notify(ctx context.Context, event log.BattleEvent) error
}

// BattleConfig holds configuration for creating a new battle.
type BattleConfig struct {
	Player   []*Combatant
	CPU      []*Combatant
	Logger   log.EventLogger
	Seed     int64 // RNG seed (0 for random)
	RNG      RNG   // overrides Seed when set
	Bag      Bag   // player's items (nil = NewBag)
	Diag     zerolog.Logger
	MaxTurns int // Run stops after this many turns (0 = 500)
}

// IntentKind enumerates the player's possible intents.
type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentItem
	IntentSwitch
	IntentStay
	IntentRun
)

func (k IntentKind) String() string {
	switch k {
	case IntentMove:
		return "move"
	case IntentItem:
		return "item"
	case IntentSwitch:
		return "switch"
	case IntentStay:
		return "stay"
	case IntentRun:
		return "run"
	default:
		return "unknown"
	}
}

// Intent is one player decision.
type Intent struct {
	Kind  IntentKind
	Index int // move slot or team index
	Item  ItemUse
}

// TurnResult is the complete narration of one intent and where it left the battle.
type TurnResult struct {
	Events []log.BattleEvent
	Phase  Phase
	Winner Side
}

// Battle resolves a single-player battle against the CPU policy.
type Battle struct {
	State  *BattleState
	Logger log.EventLogger
	Bag    Bag

	rng        RNG
	diag       zerolog.Logger
	fsm        *fsm.FSM
	pendingCPU int // pre-selected, unrevealed CPU replacement (-1 = none)
	maxTurns   int
	startBag   Bag
	logStart   int // first event of the current battle in Logger
}

// NewBattle creates a battle from the given config and sends out both leads.
func NewBattle(cfg BattleConfig) (*Battle, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	rng := cfg.RNG
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = 500 // safety limit
	}

	bag := cfg.Bag
	if bag == nil {
		bag = NewBag()
	}

	b := &Battle{
		Logger:   logger,
		startBag: bag.clone(),
		rng:      rng,
		diag:     cfg.Diag,
		maxTurns: maxTurns,
	}
	b.fsm = newPhaseMachine(&b.diag)
	if err := b.Reset(cfg.Player, cfg.CPU); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset starts a fresh battle with the given teams.
func (b *Battle) Reset(player, cpu []*Combatant) error {
	playerTeam, err := NewTeam(player)
	if err != nil {
		return fmt.Errorf("player team: %w", err)
	}
	cpuTeam, err := NewTeam(cpu)
	if err != nil {
		return fmt.Errorf("cpu team: %w", err)
	}

	b.State = &BattleState{Teams: [2]*Team{playerTeam, cpuTeam}, Winner: SideNone}
	b.Bag = b.startBag.clone()
	b.logStart = len(b.Logger.Events())
	b.pendingCPU = -1
	b.fsm.SetState(string(PhaseIdle))

	b.log(log.NewSendOutEvent(0, int(SidePlayer), playerTeam.ActiveMember().Name))
	b.log(log.NewSendOutEvent(0, int(SideCPU), cpuTeam.ActiveMember().Name))
	return nil
}

// Rematch restarts the battle with both rosters restored to full condition
// and the bag restocked.
func (b *Battle) Rematch() error {
	fresh := func(t *Team) []*Combatant {
		out := make([]*Combatant, len(t.Members))
		for i, c := range t.Members {
			out[i] = c.Fresh()
		}
		return out
	}
	return b.Reset(fresh(b.State.Teams[SidePlayer]), fresh(b.State.Teams[SideCPU]))
}

// Submit dispatches an intent to the matching operation.
func (b *Battle) Submit(in Intent) (TurnResult, error) {
	switch in.Kind {
	case IntentMove:
		return b.UseMove(in.Index)
	case IntentItem:
		return b.UseItem(in.Item)
	case IntentSwitch:
		return b.Switch(in.Index)
	case IntentStay:
		return b.StayIn()
	case IntentRun:
		return b.Flee()
	default:
		return TurnResult{}, fmt.Errorf("unknown intent %d", in.Kind)
	}
}

// UseMove resolves a full turn in which the player uses the move in slot index.
func (b *Battle) UseMove(index int) (TurnResult, error) {
	if err := b.checkIdle(); err != nil {
		return TurnResult{}, err
	}
	player := b.State.Active(SidePlayer)
	if index < 0 || index >= len(player.Moves) {
		return TurnResult{}, fmt.Errorf("%w: slot %d", ErrInvalidMove, index)
	}
	mv := player.Moves[index]
	if mv.CurrentPP <= 0 {
		return TurnResult{}, fmt.Errorf("%w: %s", ErrNoPP, mv.DisplayName())
	}

	mark := len(b.Logger.Events())
	if err := b.beginTurn(); err != nil {
		return TurnResult{}, err
	}
	mv.CurrentPP--
	b.resolveMoveTurn(mv)
	return b.result(mark), nil
}

// UseItem resolves a full turn in which the player uses an item.
func (b *Battle) UseItem(use ItemUse) (TurnResult, error) {
	if err := b.checkIdle(); err != nil {
		return TurnResult{}, err
	}
	it, target, err := checkItem(b.State.Team(SidePlayer), use)
	if err != nil {
		return TurnResult{}, err
	}
	if b.Bag[it.Name] <= 0 {
		return TurnResult{}, fmt.Errorf("%w: %s", ErrNoItemsLeft, DisplayName(it.Name))
	}

	mark := len(b.Logger.Events())
	if err := b.beginTurn(); err != nil {
		return TurnResult{}, err
	}
	b.Bag[it.Name]--
	ev := log.NewEvent(b.State.Turn, int(SidePlayer), log.EventItemUsed, target.Name, applyItem(it, target, use.Move))
	ev.Move = DisplayName(it.Name)
	b.log(ev)
	b.resolveSecondSlot()
	return b.result(mark), nil
}

// Switch handles a switch request. In the idle phase it is a full-turn
// action; while a switch decision is pending it answers that decision.
func (b *Battle) Switch(index int) (TurnResult, error) {
	phase := b.Phase()
	switch phase {
	case PhaseResolving:
		return TurnResult{}, ErrTurnInProgress
	case PhaseEnded:
		return TurnResult{}, ErrBattleOver
	}
	team := b.State.Team(SidePlayer)
	if !team.CanSwitchTo(index) {
		return TurnResult{}, fmt.Errorf("%w: %d", ErrInvalidSwitch, index)
	}

	mark := len(b.Logger.Events())
	switch phase {
	case PhaseIdle:
		if err := b.beginTurn(); err != nil {
			return TurnResult{}, err
		}
		b.switchIn(SidePlayer, index)
		b.resolveSecondSlot()
	case PhaseForcedSwitch:
		b.switchIn(SidePlayer, index)
		if b.pendingCPU >= 0 {
			b.revealCPU()
		}
		b.transition(evSwitchDone)
	case PhaseSwitchPrompt:
		b.switchIn(SidePlayer, index)
		b.revealCPU()
		b.transition(evSwitchDone)
	}
	return b.result(mark), nil
}

// StayIn declines the optional switch offered before the CPU's replacement
// is revealed.
func (b *Battle) StayIn() (TurnResult, error) {
	switch b.Phase() {
	case PhaseSwitchPrompt:
	case PhaseResolving:
		return TurnResult{}, ErrTurnInProgress
	case PhaseEnded:
		return TurnResult{}, ErrBattleOver
	case PhaseForcedSwitch:
		return TurnResult{}, ErrSwitchRequired
	default:
		return TurnResult{}, ErrNoSwitchNeeded
	}

	mark := len(b.Logger.Events())
	b.revealCPU()
	b.transition(evSwitchDone)
	return b.result(mark), nil
}

// Flee attempts to run away. Base speed decides; stages and paralysis are ignored.
func (b *Battle) Flee() (TurnResult, error) {
	if err := b.checkIdle(); err != nil {
		return TurnResult{}, err
	}

	mark := len(b.Logger.Events())
	if err := b.beginTurn(); err != nil {
		return TurnResult{}, err
	}
	player, cpu := b.State.Active(SidePlayer), b.State.Active(SideCPU)
	if player.BaseStat(StatSpeed) >= cpu.BaseStat(StatSpeed) {
		b.log(log.NewEvent(b.State.Turn, int(SidePlayer), log.EventRun, player.Name, "Got away safely!"))
		b.endBattle(SideNone, "You got away safely!")
	} else {
		b.log(log.NewEvent(b.State.Turn, int(SidePlayer), log.EventRun, player.Name, "Can't escape!"))
		b.transition(evFinishTurn)
	}
	return b.result(mark), nil
}

// Run drives the battle with a controller until it ends. Events already
// logged for the current battle are replayed to the controller first.
// Returns the winner (SideNone for a flee or turn limit).
func (b *Battle) Run(ctx context.Context, ctrl PlayerController) (Side, error) {
	for _, ev := range b.Logger.Events()[b.logStart:] {
		if err := ctrl.Notify(ctx, ev); err != nil {
			return SideNone, err
		}
	}

	for b.Phase() != PhaseEnded {
		if err := ctx.Err(); err != nil {
			return SideNone, err
		}
		if b.State.Turn >= b.maxTurns && b.Phase() == PhaseIdle {
			b.endBattle(SideNone, fmt.Sprintf("Turn limit reached (%d turns)", b.maxTurns))
			return SideNone, nil
		}

		in, err := ctrl.ChooseIntent(ctx, b.State, b.Phase())
		if err != nil {
			return SideNone, err
		}
		res, err := b.Submit(in)
		if err != nil {
			if err := ctrl.Reject(ctx, err); err != nil {
				return SideNone, err
			}
			continue
		}
		for _, ev := range res.Events {
			if err := ctrl.Notify(ctx, ev); err != nil {
				return SideNone, err
			}
		}
	}
	return b.State.Winner, nil
}

// Snapshot returns a copy of the battle state that later turns will not change.
func (b *Battle) Snapshot() *BattleState {
	return b.State.Clone()
}

func (b *Battle) log(ev log.BattleEvent) {
	b.Logger.Log(ev)
}

// result collects the events logged since mark.
func (b *Battle) result(mark int) TurnResult {
	all := b.Logger.Events()
	events := make([]log.BattleEvent, len(all)-mark)
	copy(events, all[mark:])
	return TurnResult{Events: events, Phase: b.Phase(), Winner: b.State.Winner}
}

func (b *Battle) endBattle(winner Side, reason string) {
	gs := b.State
	gs.Over = true
	gs.Winner = winner
	gs.Result = reason
	if winner != SideNone {
		ev := log.NewWinEvent(gs.Turn, int(winner), reason)
		gs.Result = ev.Details
		b.log(ev)
	}
	b.transition(evEndBattle)
	b.diag.Debug().Int("turn", gs.Turn).Stringer("winner", winner).Msg("battle ended")
}
