package net

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/peterkuimelis/monbattle/internal/game"
)

const (
	hpBarWidth = 20
	nameWidth  = 12
)

// errHelp asks the REPL to print the command list.
var errHelp = errors.New("help requested")

// Client connects to a battle server and provides a terminal REPL.
type Client struct {
	conn     net.Conn
	in       *bufio.Reader
	out      io.Writer
	playback Playback
}

// NewClient creates a REPL client reading commands from in and writing to out.
// The connection is attached by Connect or Server.Play.
func NewClient(in io.Reader, out io.Writer, playback Playback) *Client {
	return &Client{in: bufio.NewReader(in), out: out, playback: playback}
}

// Connect dials a server, sends the team choice, and runs the REPL.
func Connect(ctx context.Context, addr string, join ClientMessage, client *Client) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	join.Type = MsgJoin
	if err := json.NewEncoder(conn).Encode(join); err != nil {
		return fmt.Errorf("send join: %w", err)
	}
	fmt.Fprintln(client.out, "Connected! Waiting for the battle to start...")

	client.conn = conn
	return client.RunREPL(ctx)
}

// RunREPL reads server messages and handles them interactively. It returns
// nil when the player quits or the server closes the connection.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)

	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out, "Connection closed.")
				return nil
			}
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case MsgEvents:
			if err := c.playback.Play(ctx, msg.Events, c.renderEvent); err != nil {
				return err
			}

		case MsgError:
			fmt.Fprintf(c.out, "! %s\n", msg.Error)

		case MsgState:
			c.renderState(msg.State)
			reply, ok := c.readCommand(msg.State)
			if !ok {
				return nil
			}
			if err := enc.Encode(reply); err != nil {
				return fmt.Errorf("send %s: %w", reply.Type, err)
			}

		case MsgBattleOver:
			c.renderBattleOver(msg)
			fmt.Fprint(c.out, "Play again? (y/n): ")
			if !c.readYesNo() {
				return nil
			}
			if err := enc.Encode(ClientMessage{Type: MsgRematch}); err != nil {
				return fmt.Errorf("send rematch: %w", err)
			}
		}
	}
}

func (c *Client) renderEvent(ev EventView) error {
	_, err := fmt.Fprintf(c.out, "T%-2d %s\n", ev.Turn, ev.Details)
	return err
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}
	out := c.out

	fmt.Fprintln(out)
	fmt.Fprintln(out, "╔══════════════════════════════════════════════════════╗")
	cpu := sv.CPU
	fmt.Fprintf(out, "║  CPU  %s  (%d/%d left)\n", formatCombatant(cpu.Active), cpu.Remaining, cpu.Size)
	fmt.Fprintln(out, "║──────────────────────────────────────────────────────")
	if sv.You.Active < len(sv.You.Members) {
		fmt.Fprintf(out, "║  YOU  %s\n", formatCombatant(sv.You.Members[sv.You.Active]))
	}
	fmt.Fprintln(out, "╚══════════════════════════════════════════════════════╝")

	switch game.Phase(sv.Phase) {
	case game.PhaseForcedSwitch:
		fmt.Fprintln(out, "Your combatant fainted! Choose a replacement:")
		renderTeam(out, sv.You)
		return
	case game.PhaseSwitchPrompt:
		fmt.Fprintln(out, "Switch before the CPU sends in its next combatant? (number to switch, k to keep)")
		renderTeam(out, sv.You)
		return
	}

	fmt.Fprintf(out, "Turn %d\n", sv.Turn+1)
	if sv.You.Active < len(sv.You.Members) {
		fmt.Fprintln(out, "Moves:")
		for _, m := range sv.You.Members[sv.You.Active].Moves {
			fmt.Fprintf(out, "  %d) %s %s PP %d/%d\n", m.Index+1,
				runewidth.FillRight(m.Name, 16), runewidth.FillRight(m.Type, 9), m.PP, m.MaxPP)
		}
	}
	fmt.Fprintln(out, "Team:")
	renderTeam(out, sv.You)
	fmt.Fprintln(out, "Commands: 1-4 move | s N switch | i ITEM N [MOVE] item | r run | ? help")
}

func renderTeam(out io.Writer, team TeamView) {
	for i, m := range team.Members {
		marker := " "
		if i == team.Active {
			marker = "*"
		}
		fmt.Fprintf(out, " %s%d) %s\n", marker, i+1, formatCombatant(m))
	}
}

func (c *Client) renderBattleOver(msg ServerMessage) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "═══════════════════════════════════")
	fmt.Fprintln(c.out, "          BATTLE OVER")
	fmt.Fprintln(c.out, "═══════════════════════════════════")
	fmt.Fprintln(c.out, msg.Result)
	fmt.Fprintln(c.out, "═══════════════════════════════════")
}

// formatCombatant renders a name, HP bar and status tag on one line.
func formatCombatant(cv CombatantView) string {
	name := runewidth.FillRight(runewidth.Truncate(cv.Name, nameWidth, "…"), nameWidth)
	line := fmt.Sprintf("%s Lv%-3d %s %3d/%-3d", name, cv.Level, hpBar(cv.HP, cv.MaxHP, hpBarWidth), cv.HP, cv.MaxHP)
	switch {
	case cv.Fainted:
		line += " FNT"
	case cv.Status != "":
		line += " " + cv.Status
	}
	if cv.Confused {
		line += " (confused)"
	}
	return line
}

// hpBar draws a fixed-width bar. Any HP above zero shows at least one block.
func hpBar(hp, maxHP, width int) string {
	filled := 0
	if maxHP > 0 && hp > 0 {
		filled = max(1, hp*width/maxHP)
	}
	filled = min(filled, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// readCommand prompts until a valid command is entered. ok is false when
// input ends or the player quits.
func (c *Client) readCommand(sv *StateView) (ClientMessage, bool) {
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return ClientMessage{}, false
		}
		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return ClientMessage{}, false
		}
		msg, perr := ParseCommand(line, game.Phase(sv.Phase))
		if errors.Is(perr, errHelp) {
			printHelp(c.out)
			continue
		}
		if perr != nil {
			fmt.Fprintf(c.out, "%v\n", perr)
			continue
		}
		return msg, true
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "  1-4             use that move")
	fmt.Fprintln(out, "  s N             switch to team member N")
	fmt.Fprintln(out, "  k               keep your combatant in (when offered a switch)")
	fmt.Fprintln(out, "  i ITEM N [MOVE] use ITEM on team member N, e.g. 'i potion 1' or 'i ether 2 3'")
	fmt.Fprintln(out, "  r               run away")
	fmt.Fprintln(out, "  q               quit")
}

// ParseCommand turns a REPL line into a client message. Numbers are
// 1-indexed. While a switch decision is pending a bare number switches.
func ParseCommand(line string, phase game.Phase) (ClientMessage, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return ClientMessage{}, errors.New("enter a command (? for help)")
	}
	switching := phase == game.PhaseForcedSwitch || phase == game.PhaseSwitchPrompt

	number := func(s, what string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return 0, fmt.Errorf("%s must be a positive number, got %q", what, s)
		}
		return n - 1, nil
	}

	switch cmd := fields[0]; cmd {
	case "?", "h", "help":
		return ClientMessage{}, errHelp
	case "k", "keep", "stay":
		return ClientMessage{Type: MsgStay}, nil
	case "r", "run":
		return ClientMessage{Type: MsgRun}, nil
	case "s", "switch":
		if len(fields) != 2 {
			return ClientMessage{}, errors.New("usage: s N")
		}
		idx, err := number(fields[1], "team member")
		if err != nil {
			return ClientMessage{}, err
		}
		return ClientMessage{Type: MsgSwitch, Index: idx}, nil
	case "i", "item":
		if len(fields) < 3 || len(fields) > 4 {
			return ClientMessage{}, errors.New("usage: i ITEM N [MOVE]")
		}
		target, err := number(fields[2], "team member")
		if err != nil {
			return ClientMessage{}, err
		}
		msg := ClientMessage{Type: MsgItem, Item: fields[1], Target: target}
		if len(fields) == 4 {
			if msg.Move, err = number(fields[3], "move"); err != nil {
				return ClientMessage{}, err
			}
		}
		return msg, nil
	default:
		idx, err := number(cmd, "choice")
		if err != nil {
			return ClientMessage{}, fmt.Errorf("unknown command %q (? for help)", cmd)
		}
		if switching {
			return ClientMessage{Type: MsgSwitch, Index: idx}, nil
		}
		return ClientMessage{Type: MsgMove, Index: idx}, nil
	}
}

func (c *Client) readYesNo() bool {
	for {
		line, err := c.in.ReadString('\n')
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprint(c.out, "Enter y or n: ")
	}
}
