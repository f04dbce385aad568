package net

import (
	"fmt"

	"github.com/peterkuimelis/monbattle/internal/game"
)

// Message types for the newline-delimited JSON protocol.

// Client → server message types.
const (
	MsgJoin    = "join"
	MsgMove    = "move"
	MsgSwitch  = "switch"
	MsgStay    = "stay"
	MsgItem    = "item"
	MsgRun     = "run"
	MsgRematch = "rematch"
	MsgState   = "state"
)

// Server → client message types.
const (
	MsgEvents     = "events"
	MsgError      = "error"
	MsgBattleOver = "battle_over"
)

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type    string      `json:"type"`
	Session string      `json:"session,omitempty"`
	Events  []EventView `json:"events,omitempty"`
	State   *StateView  `json:"state,omitempty"`
	Error   string      `json:"error,omitempty"`

	// For "battle_over"
	Winner string `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`
}

// EventView is a battle event as sent to clients.
type EventView struct {
	Seq       int    `json:"seq"`
	Turn      int    `json:"turn"`
	Side      string `json:"side,omitempty"`
	Type      string `json:"type"`
	Combatant string `json:"combatant,omitempty"`
	Move      string `json:"move,omitempty"`
	Amount    int    `json:"amount,omitempty"`
	Details   string `json:"details"`
}

// StateView is the battle from the player's perspective.
type StateView struct {
	Turn   int          `json:"turn"`
	Phase  string       `json:"phase"`
	You    TeamView     `json:"you"`
	CPU    OpponentView `json:"cpu"`
	Bag    []BagView    `json:"bag"`
	Over   bool         `json:"over"`
	Winner string       `json:"winner,omitempty"`
	Result string       `json:"result,omitempty"`
}

// TeamView shows the player's full roster.
type TeamView struct {
	Active  int             `json:"active"`
	Members []CombatantView `json:"members"`
}

// OpponentView hides the CPU's bench: only the active combatant and a count.
type OpponentView struct {
	Active    CombatantView `json:"active"`
	Remaining int           `json:"remaining"`
	Size      int           `json:"size"`
}

// CombatantView describes one combatant.
type CombatantView struct {
	Name     string         `json:"name"`
	Species  string         `json:"species"`
	Types    []string       `json:"types"`
	Level    int            `json:"level"`
	HP       int            `json:"hp"`
	MaxHP    int            `json:"max_hp"`
	Status   string         `json:"status,omitempty"`
	Confused bool           `json:"confused,omitempty"`
	Fainted  bool           `json:"fainted,omitempty"`
	Stages   map[string]int `json:"stages,omitempty"`
	Moves    []MoveView     `json:"moves,omitempty"` // only for your own team
}

// MoveView is one move slot.
type MoveView struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Power    int    `json:"power,omitempty"`
	PP       int    `json:"pp"`
	MaxPP    int    `json:"max_pp"`
}

// BagView is one bag entry.
type BagView struct {
	Item  string `json:"item"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "move" (slot) and "switch" (team index)
	Index int `json:"index,omitempty"`

	// For "item"
	Item   string `json:"item,omitempty"`
	Target int    `json:"target,omitempty"`
	Move   int    `json:"move,omitempty"`

	// For "join" (initial handshake). Team numbers are 1-indexed; 0 = random.
	Team    int   `json:"team,omitempty"`
	CPUTeam int   `json:"cpu_team,omitempty"`
	Seed    int64 `json:"seed,omitempty"`
}

// Intent converts a turn message into an engine intent.
func (m ClientMessage) Intent() (game.Intent, error) {
	switch m.Type {
	case MsgMove:
		return game.Intent{Kind: game.IntentMove, Index: m.Index}, nil
	case MsgSwitch:
		return game.Intent{Kind: game.IntentSwitch, Index: m.Index}, nil
	case MsgStay:
		return game.Intent{Kind: game.IntentStay}, nil
	case MsgItem:
		return game.Intent{Kind: game.IntentItem, Item: game.ItemUse{Item: m.Item, Target: m.Target, Move: m.Move}}, nil
	case MsgRun:
		return game.Intent{Kind: game.IntentRun}, nil
	default:
		return game.Intent{}, fmt.Errorf("unexpected message type %q", m.Type)
	}
}
