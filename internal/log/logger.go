package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// EventLogger is the interface for logging battle events.
type EventLogger interface {
	Log(event BattleEvent)
	Events() []BattleEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []BattleEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event BattleEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []BattleEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []BattleEvent {
	var result []BattleEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() BattleEvent {
	if len(l.events) == 0 {
		return BattleEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event BattleEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// SideName returns "You", "CPU" or "" for display.
func SideName(side int) string {
	switch side {
	case 0:
		return "You"
	case 1:
		return "CPU"
	default:
		return ""
	}
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e BattleEvent) string {
	who := e.Combatant
	if who == "" {
		who = SideName(e.Side)
	}
	// Pad by display width so wide names keep the column aligned
	who = runewidth.FillRight(runewidth.Truncate(who, 14, "…"), 14)

	return fmt.Sprintf("T%-2d %s| %s", e.Turn, who, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []BattleEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int) BattleEvent {
	return BattleEvent{
		Turn:    turn,
		Side:    -1,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d ===", turn),
	}
}

func NewSendOutEvent(turn, side int, name string) BattleEvent {
	details := fmt.Sprintf("Go! %s!", name)
	if side == 1 {
		details = fmt.Sprintf("CPU sent out %s!", name)
	}
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventSendOut,
		Combatant: name,
		Details:   details,
	}
}

func NewSwitchEvent(turn, side int, from, to string) BattleEvent {
	details := fmt.Sprintf("Come back, %s! Go, %s!", from, to)
	if side == 1 {
		details = fmt.Sprintf("CPU withdrew %s and sent out %s!", from, to)
	}
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventSwitch,
		Combatant: to,
		Details:   details,
	}
}

func NewMoveUsedEvent(turn, side int, name, move string) BattleEvent {
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventMoveUsed,
		Combatant: name,
		Move:      move,
		Details:   fmt.Sprintf("%s used %s!", name, move),
	}
}

func NewMissEvent(turn, side int, name string) BattleEvent {
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventMiss,
		Combatant: name,
		Details:   fmt.Sprintf("%s's attack missed!", name),
	}
}

func NewDamageEvent(turn, side int, name string, damage, hp, maxHP int) BattleEvent {
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventDamage,
		Combatant: name,
		Amount:    damage,
		Details:   fmt.Sprintf("%s took %d damage (%d/%d HP)", name, damage, hp, maxHP),
	}
}

func NewCriticalEvent(turn, side int) BattleEvent {
	return BattleEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventCritical,
		Details: "A critical hit!",
	}
}

// NewEffectivenessEvent narrates a non-neutral, non-zero multiplier.
func NewEffectivenessEvent(turn, side int, multiplier float64) BattleEvent {
	details := "It's not very effective..."
	if multiplier > 1 {
		details = "It's super effective!"
	}
	return BattleEvent{
		Turn:    turn,
		Side:    side,
		Type:    EventEffectiveness,
		Details: details,
	}
}

func NewNoEffectEvent(turn, side int, name string) BattleEvent {
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventNoEffect,
		Combatant: name,
		Details:   fmt.Sprintf("It doesn't affect %s...", name),
	}
}

func NewHealEvent(turn, side int, name string, amount, hp, maxHP int) BattleEvent {
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventHeal,
		Combatant: name,
		Amount:    amount,
		Details:   fmt.Sprintf("%s restored %d HP (%d/%d HP)", name, amount, hp, maxHP),
	}
}

func NewDrainEvent(turn, side int, name string, amount int) BattleEvent {
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventDrain,
		Combatant: name,
		Amount:    amount,
		Details:   fmt.Sprintf("%s drained %d HP from its target!", name, amount),
	}
}

func NewRecoilEvent(turn, side int, name string, amount int) BattleEvent {
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventRecoil,
		Combatant: name,
		Amount:    amount,
		Details:   fmt.Sprintf("%s is damaged by recoil! (-%d HP)", name, amount),
	}
}

func NewFaintEvent(turn, side int, name string) BattleEvent {
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      EventFaint,
		Combatant: name,
		Details:   fmt.Sprintf("%s fainted!", name),
	}
}

func NewWinEvent(turn, winner int, reason string) BattleEvent {
	details := "You won the battle!"
	if winner == 1 {
		details = "You lost the battle..."
	}
	if reason != "" {
		details = reason + " " + details
	}
	return BattleEvent{
		Turn:    turn,
		Side:    winner,
		Type:    EventWin,
		Details: details,
	}
}

// NewEvent builds an event whose message is composed by the caller.
func NewEvent(turn, side int, t EventType, name, details string) BattleEvent {
	return BattleEvent{
		Turn:      turn,
		Side:      side,
		Type:      t,
		Combatant: name,
		Details:   details,
	}
}
