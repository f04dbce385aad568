package log

// EventType enumerates all observable battle events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventSendOut
	EventSwitch
	EventMoveUsed
	EventMiss
	EventDamage
	EventCritical
	EventEffectiveness
	EventNoEffect
	EventHeal
	EventDrain
	EventRecoil
	EventStatChange
	EventStatusApplied
	EventStatusFailed
	EventConfused
	EventActionBlocked
	EventSelfHit
	EventStatusCured // woke up or thawed out, found at move time
	EventStatusDamage
	EventConfusionEnd
	EventAbility
	EventFaint
	EventItemUsed
	EventRun
	EventNoMoves
	EventWin
	EventMessage
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventSendOut:
		return "SendOut"
	case EventSwitch:
		return "Switch"
	case EventMoveUsed:
		return "MoveUsed"
	case EventMiss:
		return "Miss"
	case EventDamage:
		return "Damage"
	case EventCritical:
		return "Critical"
	case EventEffectiveness:
		return "Effectiveness"
	case EventNoEffect:
		return "NoEffect"
	case EventHeal:
		return "Heal"
	case EventDrain:
		return "Drain"
	case EventRecoil:
		return "Recoil"
	case EventStatChange:
		return "StatChange"
	case EventStatusApplied:
		return "StatusApplied"
	case EventStatusFailed:
		return "StatusFailed"
	case EventConfused:
		return "Confused"
	case EventActionBlocked:
		return "ActionBlocked"
	case EventSelfHit:
		return "SelfHit"
	case EventStatusCured:
		return "StatusCured"
	case EventStatusDamage:
		return "StatusDamage"
	case EventConfusionEnd:
		return "ConfusionEnd"
	case EventAbility:
		return "Ability"
	case EventFaint:
		return "Faint"
	case EventItemUsed:
		return "ItemUsed"
	case EventRun:
		return "Run"
	case EventNoMoves:
		return "NoMoves"
	case EventWin:
		return "Win"
	case EventMessage:
		return "Message"
	default:
		return "Unknown"
	}
}

// BattleEvent represents a single narrated step of a battle.
type BattleEvent struct {
	Seq       int       // monotonic sequence number
	Turn      int       // which turn (1-based, 0 before the first turn)
	Side      int       // acting side (0 = player, 1 = cpu, -1 = none)
	Type      EventType // event type
	Combatant string    // display name of the combatant concerned (if applicable)
	Move      string    // display name of the move (if applicable)
	Amount    int       // HP delta, stage delta, etc.
	Details   string    // human-readable message
}
