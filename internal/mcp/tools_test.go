package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

const testTeams = `
teams:
  - name: "Sweeper"
    members:
      - species: mewtwo
        level: 100
        moves: [psychic]
  - name: "Fodder"
    members:
      - species: machamp
        level: 5
        moves: [karate-chop]
`

type toolHandler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func setup(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.yaml")
	if err := os.WriteFile(path, []byte(testTeams), 0o644); err != nil {
		t.Fatal(err)
	}
	SetTeamsFile(path)
	activeSession = nil
	t.Cleanup(func() { activeSession = nil })
}

func call(t *testing.T, h toolHandler, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func decode(t *testing.T, res *mcp.CallToolResult) ToolResponse {
	t.Helper()
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", text(t, res))
	}
	var resp ToolResponse
	if err := json.Unmarshal([]byte(text(t, res)), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestToolsRequireBattle(t *testing.T) {
	setup(t)
	res := call(t, handleUseMove, map[string]any{"index": 0})
	if !res.IsError || !strings.Contains(text(t, res), "start_battle") {
		t.Errorf("expected a start_battle hint, got %q", text(t, res))
	}
}

func TestBattleThroughTools(t *testing.T) {
	setup(t)

	start := decode(t, call(t, handleStartBattle, map[string]any{"team": 1, "cpu_team": 2, "seed": 4}))
	if start.Pending != DecisionChooseAction || start.Session == "" || len(start.Events) != 2 {
		t.Fatalf("unexpected start response: %+v", start)
	}

	again := call(t, handleStartBattle, map[string]any{"team": 1})
	if !again.IsError {
		t.Error("a second battle should be refused while one is running")
	}

	bad := call(t, handleSwitchCombatant, map[string]any{"index": 0})
	if !bad.IsError || !strings.Contains(text(t, bad), string(DecisionChooseAction)) {
		t.Errorf("expected a refusal naming the pending decision, got %q", text(t, bad))
	}

	over := decode(t, call(t, handleUseMove, map[string]any{"index": 0}))
	if !over.GameOver || over.Winner != "player" || over.Pending != DecisionGameOver {
		t.Fatalf("expected player win, got %+v", over)
	}

	state := decode(t, call(t, handleGetBattleState, nil))
	if !state.GameOver || len(state.Events) != 0 {
		t.Errorf("state should report the finished battle without events: %+v", state)
	}

	re := decode(t, call(t, handleRematch, nil))
	if re.GameOver || re.Pending != DecisionChooseAction || len(re.Events) != 2 {
		t.Errorf("unexpected rematch response: %+v", re)
	}

	fled := decode(t, call(t, handleRunAway, nil))
	if !fled.GameOver || fled.Winner != "" {
		t.Errorf("running away should end the battle without a winner: %+v", fled)
	}

	if res := call(t, handleStartBattle, nil); res.IsError {
		t.Errorf("a new battle should replace a finished one: %s", text(t, res))
	}
}

func TestUseItemArguments(t *testing.T) {
	setup(t)
	decode(t, call(t, handleStartBattle, map[string]any{"team": 1, "cpu_team": 2}))

	res := call(t, handleUseItem, map[string]any{"item": "potion", "target": 0})
	if !res.IsError || !strings.Contains(text(t, res), "won't have any effect") {
		t.Errorf("expected a full-HP refusal, got %q", text(t, res))
	}
	res = call(t, handleUseItem, map[string]any{"item": "elixir", "target": 0})
	if !res.IsError {
		t.Error("expected unknown item refusal")
	}
}
