package game

import (
	"fmt"
	"sort"
)

// ItemKind classifies what an item does.
type ItemKind int

const (
	ItemHeal ItemKind = iota
	ItemRevive
	ItemRestorePP
)

func (k ItemKind) String() string {
	switch k {
	case ItemHeal:
		return "heal"
	case ItemRevive:
		return "revive"
	case ItemRestorePP:
		return "restore-pp"
	default:
		return "unknown"
	}
}

// Full is the magnitude meaning "restore everything".
const Full = -1

// Item is a usable bag item. For revives the magnitude is a percent of max HP.
type Item struct {
	Name      string
	Kind      ItemKind
	Magnitude int
	Starting  int // quantity in a fresh bag
}

// ItemRegistry maps item ids to definitions.
var ItemRegistry = map[string]*Item{
	"potion":       {Name: "potion", Kind: ItemHeal, Magnitude: 20, Starting: 5},
	"super-potion": {Name: "super-potion", Kind: ItemHeal, Magnitude: 50, Starting: 3},
	"hyper-potion": {Name: "hyper-potion", Kind: ItemHeal, Magnitude: 200, Starting: 2},
	"max-potion":   {Name: "max-potion", Kind: ItemHeal, Magnitude: Full, Starting: 1},
	"revive":       {Name: "revive", Kind: ItemRevive, Magnitude: 50, Starting: 2},
	"max-revive":   {Name: "max-revive", Kind: ItemRevive, Magnitude: 100, Starting: 1},
	"ether":        {Name: "ether", Kind: ItemRestorePP, Magnitude: 10, Starting: 2},
	"max-ether":    {Name: "max-ether", Kind: ItemRestorePP, Magnitude: Full, Starting: 1},
}

// LookupItem returns the item with the given id.
func LookupItem(name string) (*Item, error) {
	it, ok := ItemRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	return it, nil
}

// ItemNames returns all item ids in sorted order.
func ItemNames() []string {
	names := make([]string, 0, len(ItemRegistry))
	for name := range ItemRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bag holds the player's item quantities by item id.
type Bag map[string]int

// NewBag returns a bag stocked with every item's starting quantity.
func NewBag() Bag {
	bag := make(Bag, len(ItemRegistry))
	for name, it := range ItemRegistry {
		bag[name] = it.Starting
	}
	return bag
}

func (b Bag) clone() Bag {
	out := make(Bag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// ItemUse is the player's intent to use an item.
type ItemUse struct {
	Item   string
	Target int // team index
	Move   int // move slot, for PP restores
}

// checkItem validates an item use against the team without mutating it.
func checkItem(team *Team, use ItemUse) (*Item, *Combatant, error) {
	it, err := LookupItem(use.Item)
	if err != nil {
		return nil, nil, err
	}
	if use.Target < 0 || use.Target >= len(team.Members) {
		return nil, nil, fmt.Errorf("%w: index %d", ErrInvalidTarget, use.Target)
	}
	target := team.Members[use.Target]

	switch it.Kind {
	case ItemHeal:
		if target.Fainted() || target.HP >= target.MaxHP {
			return nil, nil, fmt.Errorf("%w: %s on %s", ErrItemNoEffect, it.Name, target.Name)
		}
	case ItemRevive:
		if !target.Fainted() {
			return nil, nil, fmt.Errorf("%w: %s is not fainted", ErrItemNoEffect, target.Name)
		}
	case ItemRestorePP:
		if target.Fainted() {
			return nil, nil, fmt.Errorf("%w: %s has fainted", ErrItemNoEffect, target.Name)
		}
		if use.Move < 0 || use.Move >= len(target.Moves) {
			return nil, nil, fmt.Errorf("%w: move %d", ErrInvalidTarget, use.Move)
		}
		if m := target.Moves[use.Move]; m.CurrentPP >= m.MaxPP {
			return nil, nil, fmt.Errorf("%w: %s PP is full", ErrItemNoEffect, m.DisplayName())
		}
	}
	return it, target, nil
}

// applyItem applies a validated item and returns the narration.
func applyItem(it *Item, target *Combatant, moveIndex int) string {
	label := DisplayName(it.Name)
	switch it.Kind {
	case ItemHeal:
		amount := it.Magnitude
		if amount == Full {
			amount = target.MaxHP
		}
		healed := target.Heal(amount)
		return fmt.Sprintf("You used a %s! %s recovered %d HP.", label, target.Name, healed)
	case ItemRevive:
		target.HP = max(1, target.MaxHP*it.Magnitude/100)
		target.ClearStatus()
		target.Volatiles = 0
		target.ConfusionTurns = 0
		return fmt.Sprintf("You used a %s! %s was revived!", label, target.Name)
	case ItemRestorePP:
		m := target.Moves[moveIndex]
		before := m.CurrentPP
		if it.Magnitude == Full {
			m.CurrentPP = m.MaxPP
		} else {
			m.CurrentPP = min(m.MaxPP, m.CurrentPP+it.Magnitude)
		}
		return fmt.Sprintf("You used an %s! %s's %s regained %d PP.", label, target.Name, m.DisplayName(), m.CurrentPP-before)
	}
	return ""
}
