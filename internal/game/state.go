package game

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	DefaultLevel  = 50
	MaxTeamSize   = 6
	MaxMoves      = 4
	defaultBase   = 100
	stageLimit    = 6
	stageLimitNeg = -6
)

// Species is the static definition of a combatant kind.
type Species struct {
	ID        int
	Name      string // hyphenated identifier, e.g. "mr-mime"
	Types     []Element
	BaseStats map[Stat]int
	Abilities []string
	MovePool  []string
}

// StatChange is a signed stage delta for a single stat.
type StatChange struct {
	Stat   Stat
	Change int
}

// MoveMeta carries the optional secondary-effect data of a move.
// Chances are percentages; 0 means "always" where an effect is present.
type MoveMeta struct {
	Ailment       string // "paralysis", "burn", "confusion", ...
	AilmentChance int
	FlinchChance  int
	StatChance    int
	Drain         int // positive drains, negative is recoil
	Healing       int // percent of max HP restored by recovery moves
}

// Move is the static definition of a move.
type Move struct {
	Name        string
	Type        Element
	Category    Category
	Power       int // 0 for pure status moves
	Accuracy    int // 0 means the move never misses
	Priority    int
	PP          int
	Target      string // "selected-pokemon", "user", ...
	StatChanges []StatChange
	Meta        MoveMeta
}

// BattleMove is a move slot with its remaining PP.
type BattleMove struct {
	*Move
	CurrentPP int
	MaxPP     int
}

func newBattleMove(m *Move) *BattleMove {
	return &BattleMove{Move: m, CurrentPP: m.PP, MaxPP: m.PP}
}

// DisplayName returns the move's title-cased name.
func (m *BattleMove) DisplayName() string {
	return DisplayName(m.Name)
}

// Combatant is one team member with its battle-only fields.
type Combatant struct {
	Species *Species
	Name    string
	Level   int
	HP      int
	MaxHP   int
	Moves   []*BattleMove

	Status      Status
	StatusTurns int // sleep: turns left; badly-poisoned: damage multiplier

	Volatiles      Volatile
	ConfusionTurns int

	Stages      StatStages
	BoostedType Element // damage-type boost granted by an ability, "" when inactive
}

// MaxHPFor derives max HP from the base HP stat and level.
func MaxHPFor(baseHP, level int) int {
	return 2*baseHP*level/100 + level + 10
}

// NewCombatant builds a fresh combatant at full HP and PP.
func NewCombatant(sp *Species, level int, moves []*Move) (*Combatant, error) {
	if sp == nil {
		return nil, fmt.Errorf("nil species")
	}
	if len(moves) == 0 || len(moves) > MaxMoves {
		return nil, fmt.Errorf("%s: need 1-%d moves, got %d", sp.Name, MaxMoves, len(moves))
	}
	if level <= 0 {
		level = DefaultLevel
	}
	c := &Combatant{
		Species: sp,
		Name:    DisplayName(sp.Name),
		Level:   level,
	}
	c.MaxHP = MaxHPFor(c.BaseStat(StatHP), level)
	c.HP = c.MaxHP
	for _, m := range moves {
		c.Moves = append(c.Moves, newBattleMove(m))
	}
	return c, nil
}

// Fresh returns a copy of c restored to its pre-battle condition.
func (c *Combatant) Fresh() *Combatant {
	moves := make([]*Move, len(c.Moves))
	for i, m := range c.Moves {
		moves[i] = m.Move
	}
	fresh, _ := NewCombatant(c.Species, c.Level, moves)
	return fresh
}

func (c *Combatant) Fainted() bool { return c.HP <= 0 }

// HPPercent returns current HP as a percentage of max HP.
func (c *Combatant) HPPercent() float64 {
	if c.MaxHP == 0 {
		return 0
	}
	return float64(c.HP) / float64(c.MaxHP) * 100
}

func (c *Combatant) HasType(t Element) bool {
	return lo.Contains(c.Species.Types, t)
}

func (c *Combatant) HasAbility(name string) bool {
	return lo.Contains(c.Species.Abilities, name)
}

// BaseStat returns the species base value, defaulting to 100 when absent.
func (c *Combatant) BaseStat(s Stat) int {
	if v, ok := c.Species.BaseStats[s]; ok && v > 0 {
		return v
	}
	return defaultBase
}

// EffectiveStat applies the stat's stage multiplier to its base value.
func (c *Combatant) EffectiveStat(s Stat) int {
	return int(float64(c.BaseStat(s)) * StatMultiplier(c.Stages.Get(s)))
}

// EffectiveSpeed is the turn-order speed: stage-adjusted, halved if paralyzed.
func (c *Combatant) EffectiveSpeed() int {
	speed := c.EffectiveStat(StatSpeed)
	if c.Status == StatusParalysis {
		speed /= 2
	}
	return speed
}

// ApplyDamage lowers HP by amount, never below zero, and returns the HP lost.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > c.HP {
		amount = c.HP
	}
	c.HP -= amount
	return amount
}

// Heal raises HP by amount, never above max HP, and returns the HP gained.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 || c.Fainted() {
		return 0
	}
	if c.HP+amount > c.MaxHP {
		amount = c.MaxHP - c.HP
	}
	c.HP += amount
	return amount
}

// SetStatus inflicts a non-volatile status and initialises its counter.
func (c *Combatant) SetStatus(s Status, sleepTurns int) {
	c.Status = s
	switch s {
	case StatusSleep:
		c.StatusTurns = sleepTurns
	case StatusBadPoison:
		c.StatusTurns = 1
	default:
		c.StatusTurns = 0
	}
}

// ClearStatus removes any non-volatile status.
func (c *Combatant) ClearStatus() {
	c.Status = StatusNone
	c.StatusTurns = 0
}

func (c *Combatant) addVolatile(v Volatile)    { c.Volatiles |= v }
func (c *Combatant) removeVolatile(v Volatile) { c.Volatiles &^= v }

// Confuse sets the confusion volatile for the given number of turns.
func (c *Combatant) Confuse(turns int) {
	c.addVolatile(VolatileConfusion)
	c.ConfusionTurns = turns
}

// AvailableMoves returns the move slots that still have PP.
func (c *Combatant) AvailableMoves() []*BattleMove {
	return lo.Filter(c.Moves, func(m *BattleMove, _ int) bool {
		return m.CurrentPP > 0
	})
}

// Team is an ordered roster with an active pointer.
type Team struct {
	Members []*Combatant
	Active  int
}

// NewTeam validates the roster size and returns a team led by its first member.
func NewTeam(members []*Combatant) (*Team, error) {
	if len(members) == 0 || len(members) > MaxTeamSize {
		return nil, fmt.Errorf("team needs 1-%d members, got %d", MaxTeamSize, len(members))
	}
	return &Team{Members: members}, nil
}

// ActiveMember returns the combatant currently on the field.
func (t *Team) ActiveMember() *Combatant {
	return t.Members[t.Active]
}

// AllFainted reports whether every member has 0 HP.
func (t *Team) AllFainted() bool {
	return lo.EveryBy(t.Members, func(c *Combatant) bool { return c.Fainted() })
}

// CanSwitchTo reports whether index is a legal switch target.
func (t *Team) CanSwitchTo(index int) bool {
	if index < 0 || index >= len(t.Members) || index == t.Active {
		return false
	}
	return !t.Members[index].Fainted()
}

// HasViableSwitch reports whether any benched member can come in.
func (t *Team) HasViableSwitch() bool {
	for i := range t.Members {
		if t.CanSwitchTo(i) {
			return true
		}
	}
	return false
}

// Remaining counts members that have not fainted.
func (t *Team) Remaining() int {
	return lo.CountBy(t.Members, func(c *Combatant) bool { return !c.Fainted() })
}

// BattleState is the mutable battle data owned by the turn resolver.
type BattleState struct {
	Turn   int
	Teams  [2]*Team
	Winner Side
	Result string
	Over   bool
}

func (s *BattleState) Team(side Side) *Team {
	return s.Teams[side]
}

func (s *BattleState) Active(side Side) *Combatant {
	return s.Teams[side].ActiveMember()
}

// Clone returns a deep copy that shares only the static species and move data.
func (s *BattleState) Clone() *BattleState {
	cp := *s
	for i, t := range s.Teams {
		if t == nil {
			continue
		}
		team := &Team{Active: t.Active, Members: make([]*Combatant, len(t.Members))}
		for j, c := range t.Members {
			team.Members[j] = c.clone()
		}
		cp.Teams[i] = team
	}
	return &cp
}

func (c *Combatant) clone() *Combatant {
	cp := *c
	cp.Moves = make([]*BattleMove, len(c.Moves))
	for i, m := range c.Moves {
		slot := *m
		cp.Moves[i] = &slot
	}
	return &cp
}
