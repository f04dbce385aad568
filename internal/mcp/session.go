package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/peterkuimelis/monbattle/internal/game"
	battlenet "github.com/peterkuimelis/monbattle/internal/net"
)

// DecisionType identifies what the battle is waiting for.
type DecisionType string

const (
	DecisionChooseAction DecisionType = "choose_action"
	DecisionForcedSwitch DecisionType = "forced_switch"
	DecisionSwitchPrompt DecisionType = "switch_prompt"
	DecisionGameOver     DecisionType = "game_over"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Session  string                `json:"session"`
	Events   []battlenet.EventView `json:"events"`
	State    *battlenet.StateView  `json:"state,omitempty"`
	Pending  DecisionType          `json:"pending"`
	Hint     string                `json:"hint,omitempty"`
	GameOver bool                  `json:"game_over"`
	Winner   string                `json:"winner,omitempty"`
	Result   string                `json:"result,omitempty"`
}

var (
	// activeSession is the singleton battle session (one per stdio process).
	activeSession *battlenet.Session
	sessionMu     sync.Mutex
)

func currentSession() *battlenet.Session {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	return activeSession
}

// replaceSession installs sess unless a battle is still in progress.
func replaceSession(sess *battlenet.Session) error {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	if activeSession != nil && !activeSession.Over() {
		return fmt.Errorf("a battle is already running (session %s); finish it or use run_away first", activeSession.ID)
	}
	activeSession = sess
	return nil
}

// decisionFor maps the battle phase onto the decision the agent must make.
func decisionFor(sv *battlenet.StateView) DecisionType {
	if sv.Over {
		return DecisionGameOver
	}
	switch game.Phase(sv.Phase) {
	case game.PhaseForcedSwitch:
		return DecisionForcedSwitch
	case game.PhaseSwitchPrompt:
		return DecisionSwitchPrompt
	default:
		return DecisionChooseAction
	}
}

func hintFor(d DecisionType) string {
	switch d {
	case DecisionForcedSwitch:
		return "Your combatant fainted. Use switch_combatant with a non-fainted team index."
	case DecisionSwitchPrompt:
		return "The CPU is about to send in a replacement. Use switch_combatant to switch or stay_in to keep your combatant."
	case DecisionGameOver:
		return "The battle is over. Use rematch to play again or start_battle for new teams."
	default:
		return "Use use_move, switch_combatant, use_item or run_away."
	}
}

// newResponse builds the tool response for a session reply.
func newResponse(msg battlenet.ServerMessage) *ToolResponse {
	resp := &ToolResponse{
		Session: msg.Session,
		Events:  msg.Events,
		State:   msg.State,
	}
	if resp.Events == nil {
		resp.Events = []battlenet.EventView{}
	}
	if msg.State != nil {
		resp.Pending = decisionFor(msg.State)
		resp.Hint = hintFor(resp.Pending)
		resp.GameOver = msg.State.Over
		resp.Winner = msg.State.Winner
		resp.Result = msg.State.Result
	}
	return resp
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
