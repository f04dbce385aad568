package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	battlenet "github.com/peterkuimelis/monbattle/internal/net"
	"github.com/rs/zerolog"
)

// teamsFile is the path to the teams YAML file, set by main.
var teamsFile string

// diag receives session diagnostics, set by main.
var diag = zerolog.Nop()

// SetTeamsFile sets the path to the teams YAML file.
func SetTeamsFile(path string) {
	teamsFile = path
}

// SetLogger sets the diagnostics logger for new sessions.
func SetLogger(l zerolog.Logger) {
	diag = l
}

// RegisterTools adds all battle tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startBattleTool(), handleStartBattle)
	s.AddTool(useMoveTool(), handleUseMove)
	s.AddTool(switchCombatantTool(), handleSwitchCombatant)
	s.AddTool(stayInTool(), handleStayIn)
	s.AddTool(useItemTool(), handleUseItem)
	s.AddTool(runAwayTool(), handleRunAway)
	s.AddTool(rematchTool(), handleRematch)
	s.AddTool(getBattleStateTool(), handleGetBattleState)
}

// --- Tool definitions ---

func startBattleTool() mcp.Tool {
	return mcp.NewTool("start_battle",
		mcp.WithDescription("Start a new battle against the CPU. You control the player side. "+
			"Returns the send-out narration, the battle state and the pending decision."),
		mcp.WithNumber("team", mcp.Description("Your team number (1-indexed from teams.yaml); omit or 0 for a random team")),
		mcp.WithNumber("cpu_team", mcp.Description("The CPU's team number; omit or 0 for a random team")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for a reproducible battle; omit or 0 for a random seed")),
	)
}

func useMoveTool() mcp.Tool {
	return mcp.NewTool("use_move",
		mcp.WithDescription("Use one of your active combatant's moves. The CPU then acts and the turn resolves."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based move slot of the active combatant")),
	)
}

func switchCombatantTool() mcp.Tool {
	return mcp.NewTool("switch_combatant",
		mcp.WithDescription("Switch to another team member. Costs your turn when used as a normal action; "+
			"also answers a forced switch or the switch prompt."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index into your team's members")),
	)
}

func stayInTool() mcp.Tool {
	return mcp.NewTool("stay_in",
		mcp.WithDescription("Keep your combatant in when offered a switch before the CPU sends in its replacement."),
	)
}

func useItemTool() mcp.Tool {
	return mcp.NewTool("use_item",
		mcp.WithDescription("Use an item from the bag on a team member. Costs your turn."),
		mcp.WithString("item", mcp.Required(), mcp.Description("Item id, e.g. potion, super-potion, revive, ether")),
		mcp.WithNumber("target", mcp.Required(), mcp.Description("0-based index into your team's members")),
		mcp.WithNumber("move", mcp.Description("0-based move slot for ether and max-ether")),
	)
}

func runAwayTool() mcp.Tool {
	return mcp.NewTool("run_away",
		mcp.WithDescription("Flee the battle. Ends the battle with no winner."),
	)
}

func rematchTool() mcp.Tool {
	return mcp.NewTool("rematch",
		mcp.WithDescription("Restart the finished battle with the same teams restored to full health."),
	)
}

func getBattleStateTool() mcp.Tool {
	return mcp.NewTool("get_battle_state",
		mcp.WithDescription("Get the current battle state and pending decision without acting. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartBattle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	team := request.GetInt("team", 0)
	cpuTeam := request.GetInt("cpu_team", 0)
	if team < 0 || cpuTeam < 0 {
		return mcp.NewToolResultError("team numbers must be >= 0"), nil
	}

	sess, err := battlenet.NewSession(battlenet.SessionConfig{
		TeamFile: teamsFile,
		Team:     team,
		CPUTeam:  cpuTeam,
		Seed:     int64(request.GetInt("seed", 0)),
		Diag:     diag,
	})
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start battle: %v", err), nil
	}
	if err := replaceSession(sess); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(respondJSON(newResponse(sess.Welcome()))), nil
}

func handleUseMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return submit(battlenet.ClientMessage{Type: battlenet.MsgMove, Index: request.GetInt("index", -1)})
}

func handleSwitchCombatant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return submit(battlenet.ClientMessage{Type: battlenet.MsgSwitch, Index: request.GetInt("index", -1)})
}

func handleStayIn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return submit(battlenet.ClientMessage{Type: battlenet.MsgStay})
}

func handleUseItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return submit(battlenet.ClientMessage{
		Type:   battlenet.MsgItem,
		Item:   request.GetString("item", ""),
		Target: request.GetInt("target", -1),
		Move:   request.GetInt("move", 0),
	})
}

func handleRunAway(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return submit(battlenet.ClientMessage{Type: battlenet.MsgRun})
}

func handleRematch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return submit(battlenet.ClientMessage{Type: battlenet.MsgRematch})
}

func handleGetBattleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return submit(battlenet.ClientMessage{Type: battlenet.MsgState})
}

// submit hands msg to the active session. Refused intents are reported as
// tool errors; the battle is unchanged by them.
func submit(msg battlenet.ClientMessage) (*mcp.CallToolResult, error) {
	sess := currentSession()
	if sess == nil {
		return mcp.NewToolResultError("No battle is running. Use start_battle first."), nil
	}

	reply := sess.Handle(msg)
	if reply.Type == battlenet.MsgError {
		return mcp.NewToolResultErrorf("%s (pending decision: %s)", reply.Error, decisionFor(reply.State)), nil
	}
	return mcp.NewToolResultText(respondJSON(newResponse(reply))), nil
}
