package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/peterkuimelis/monbattle/internal/game"
	"github.com/peterkuimelis/monbattle/internal/log"
	"github.com/samber/lo"
)

// NetworkController implements game.PlayerController over a connection.
type NetworkController struct {
	conn   net.Conn
	enc    *json.Encoder
	dec    *json.Decoder
	battle *game.Battle
	mu     sync.Mutex
}

// NewNetworkController creates a new controller for the given connection.
// dec continues a decoder that already read from conn (nil starts a new one)
// so bytes it buffered are not lost.
func NewNetworkController(conn net.Conn, dec *json.Decoder, battle *game.Battle) *NetworkController {
	if dec == nil {
		dec = json.NewDecoder(conn)
	}
	return &NetworkController{
		conn:   conn,
		enc:    json.NewEncoder(conn),
		dec:    dec,
		battle: battle,
	}
}

// BuildStateView creates a StateView from the player's perspective.
func BuildStateView(b *game.Battle) *StateView {
	gs := b.State
	sv := &StateView{
		Turn:   gs.Turn,
		Phase:  string(b.Phase()),
		Over:   gs.Over,
		Result: gs.Result,
	}
	if gs.Over && gs.Winner != game.SideNone {
		sv.Winner = gs.Winner.String()
	}

	you := gs.Team(game.SidePlayer)
	sv.You.Active = you.Active
	for _, c := range you.Members {
		sv.You.Members = append(sv.You.Members, CombatantViewOf(c, true))
	}

	cpu := gs.Team(game.SideCPU)
	sv.CPU = OpponentView{
		Active:    CombatantViewOf(cpu.ActiveMember(), false),
		Remaining: cpu.Remaining(),
		Size:      len(cpu.Members),
	}

	for _, name := range game.ItemNames() {
		sv.Bag = append(sv.Bag, BagView{Item: name, Name: game.DisplayName(name), Count: b.Bag[name]})
	}
	return sv
}

// CombatantViewOf describes c. Move slots are only shown to their owner.
func CombatantViewOf(c *game.Combatant, owner bool) CombatantView {
	cv := CombatantView{
		Name:     c.Name,
		Species:  c.Species.Name,
		Types:    lo.Map(c.Species.Types, func(t game.Element, _ int) string { return string(t) }),
		Level:    c.Level,
		HP:       c.HP,
		MaxHP:    c.MaxHP,
		Status:   c.Status.Abbrev(),
		Confused: c.Volatiles.Has(game.VolatileConfusion),
		Fainted:  c.Fainted(),
	}
	for _, stat := range []game.Stat{game.StatAttack, game.StatDefense, game.StatSpecialAttack,
		game.StatSpecialDefense, game.StatSpeed, game.StatAccuracy, game.StatEvasion} {
		if v := c.Stages.Get(stat); v != 0 {
			if cv.Stages == nil {
				cv.Stages = map[string]int{}
			}
			cv.Stages[string(stat)] = v
		}
	}
	if owner {
		for i, m := range c.Moves {
			cv.Moves = append(cv.Moves, MoveView{
				Index:    i,
				Name:     m.DisplayName(),
				Type:     string(m.Type),
				Category: m.Category.String(),
				Power:    m.Power,
				PP:       m.CurrentPP,
				MaxPP:    m.MaxPP,
			})
		}
	}
	return cv
}

// EventViewOf converts an engine event for the wire.
func EventViewOf(ev log.BattleEvent) EventView {
	side := ""
	if ev.Side >= 0 {
		side = game.Side(ev.Side).String()
	}
	return EventView{
		Seq:       ev.Seq,
		Turn:      ev.Turn,
		Side:      side,
		Type:      ev.Type.String(),
		Combatant: ev.Combatant,
		Move:      ev.Move,
		Amount:    ev.Amount,
		Details:   ev.Details,
	}
}

// EventViews converts a slice of engine events.
func EventViews(events []log.BattleEvent) []EventView {
	return lo.Map(events, func(ev log.BattleEvent, _ int) EventView { return EventViewOf(ev) })
}

// send sends a server message to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

// recv reads a client message. Must be called with mu held.
func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// ChooseIntent implements game.PlayerController. Messages that do not map
// to an intent are answered with an error and the prompt is repeated.
func (nc *NetworkController) ChooseIntent(ctx context.Context, state *game.BattleState, phase game.Phase) (game.Intent, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return game.Intent{}, err
		}
		if err := nc.send(ServerMessage{Type: MsgState, State: BuildStateView(nc.battle)}); err != nil {
			return game.Intent{}, fmt.Errorf("send state: %w", err)
		}

		msg, err := nc.recv()
		if err != nil {
			return game.Intent{}, fmt.Errorf("recv intent: %w", err)
		}
		in, err := msg.Intent()
		if err == nil {
			return in, nil
		}
		if err := nc.send(ServerMessage{Type: MsgError, Error: err.Error()}); err != nil {
			return game.Intent{}, fmt.Errorf("send error: %w", err)
		}
	}
}

// Reject implements game.PlayerController.
func (nc *NetworkController) Reject(ctx context.Context, err error) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: MsgError, Error: err.Error()})
}

// Notify implements game.PlayerController.
func (nc *NetworkController) Notify(ctx context.Context, event log.BattleEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: MsgEvents, Events: []EventView{EventViewOf(event)}})
}

// SendBattleOver sends a battle_over message with the final state.
func (nc *NetworkController) SendBattleOver() error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	sv := BuildStateView(nc.battle)
	return nc.send(ServerMessage{Type: MsgBattleOver, State: sv, Winner: sv.Winner, Result: sv.Result})
}

// AwaitRematch blocks for the client's answer after a battle. It reports
// whether the client asked for another battle.
func (nc *NetworkController) AwaitRematch() (bool, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	msg, err := nc.recv()
	if err != nil {
		return false, err
	}
	return msg.Type == MsgRematch, nil
}
