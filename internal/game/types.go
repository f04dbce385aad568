package game

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Element is an elemental type shared by combatants and moves.
type Element string

const (
	TypeNormal   Element = "normal"
	TypeFire     Element = "fire"
	TypeWater    Element = "water"
	TypeElectric Element = "electric"
	TypeGrass    Element = "grass"
	TypeIce      Element = "ice"
	TypeFighting Element = "fighting"
	TypePoison   Element = "poison"
	TypeGround   Element = "ground"
	TypeFlying   Element = "flying"
	TypePsychic  Element = "psychic"
	TypeBug      Element = "bug"
	TypeRock     Element = "rock"
	TypeGhost    Element = "ghost"
	TypeDragon   Element = "dragon"
	TypeDark     Element = "dark"
	TypeSteel    Element = "steel"
	TypeFairy    Element = "fairy"
)

// Category determines which stat pair a move uses.
type Category int

const (
	CategoryPhysical Category = iota
	CategorySpecial
	CategoryStatus
)

func (c Category) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategorySpecial:
		return "special"
	case CategoryStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Stat names a battle stat. Values match the hyphenated data-source names.
type Stat string

const (
	StatHP             Stat = "hp"
	StatAttack         Stat = "attack"
	StatDefense        Stat = "defense"
	StatSpecialAttack  Stat = "special-attack"
	StatSpecialDefense Stat = "special-defense"
	StatSpeed          Stat = "speed"
	StatAccuracy       Stat = "accuracy"
	StatEvasion        Stat = "evasion"
)

// Status is a non-volatile condition. A combatant holds at most one.
type Status int

const (
	StatusNone Status = iota
	StatusParalysis
	StatusBurn
	StatusPoison
	StatusBadPoison
	StatusSleep
	StatusFreeze
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusParalysis:
		return "paralysis"
	case StatusBurn:
		return "burn"
	case StatusPoison:
		return "poison"
	case StatusBadPoison:
		return "badly-poisoned"
	case StatusSleep:
		return "sleep"
	case StatusFreeze:
		return "freeze"
	default:
		return "unknown"
	}
}

// Abbrev returns the short status tag shown next to HP bars.
func (s Status) Abbrev() string {
	switch s {
	case StatusParalysis:
		return "PAR"
	case StatusBurn:
		return "BRN"
	case StatusPoison:
		return "PSN"
	case StatusBadPoison:
		return "TOX"
	case StatusSleep:
		return "SLP"
	case StatusFreeze:
		return "FRZ"
	default:
		return ""
	}
}

// ParseStatus maps an ailment name to a non-volatile status.
// Returns false for volatile ailments (confusion) and unknown names.
func ParseStatus(ailment string) (Status, bool) {
	switch ailment {
	case "paralysis":
		return StatusParalysis, true
	case "burn":
		return StatusBurn, true
	case "poison":
		return StatusPoison, true
	case "badly-poisoned", "toxic":
		return StatusBadPoison, true
	case "sleep":
		return StatusSleep, true
	case "freeze":
		return StatusFreeze, true
	default:
		return StatusNone, false
	}
}

// Volatile is a set of short-lived conditions that may coexist.
type Volatile uint8

const (
	VolatileConfusion Volatile = 1 << iota
	VolatileFlinch
)

func (v Volatile) Has(flag Volatile) bool { return v&flag != 0 }

// Side identifies one of the two teams.
type Side int

const (
	SideNone   Side = -1
	SidePlayer Side = 0
	SideCPU    Side = 1
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideCPU:
		return "cpu"
	default:
		return "none"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideCPU
	}
	return SidePlayer
}

var titleCaser = cases.Title(language.English)

// DisplayName turns a hyphenated identifier into a title-cased label,
// e.g. "thunder-punch" becomes "Thunder Punch".
func DisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "-", " "))
}
