package game

import "fmt"

// AbilityEffect is what an immunity ability does to an incoming move.
// Zero-valued fields mean that part of the effect is absent.
type AbilityEffect struct {
	Ability   string
	Heal      int         // HP to restore, already capped by the caller's max HP
	Boost     *StatChange // one-shot stage boost
	TypeBoost Element     // sets the persistent damage-type boost
}

type abilityRule struct {
	healQuarter bool
	boost       *StatChange
	typeBoost   Element
}

// immunityAbilities lists, per incoming move type, the abilities that absorb
// it in lookup order.
var immunityAbilities = map[Element][]string{
	TypeGround:   {"levitate"},
	TypeElectric: {"volt-absorb", "lightning-rod", "motor-drive"},
	TypeWater:    {"water-absorb", "storm-drain", "dry-skin"},
	TypeFire:     {"flash-fire", "well-baked-body"},
	TypeGrass:    {"sap-sipper"},
}

var abilityRules = map[string]abilityRule{
	"levitate":        {},
	"volt-absorb":     {healQuarter: true},
	"water-absorb":    {healQuarter: true},
	"dry-skin":        {healQuarter: true},
	"lightning-rod":   {boost: &StatChange{Stat: StatSpecialAttack, Change: 1}},
	"motor-drive":     {boost: &StatChange{Stat: StatSpeed, Change: 1}},
	"storm-drain":     {boost: &StatChange{Stat: StatSpecialAttack, Change: 1}},
	"well-baked-body": {boost: &StatChange{Stat: StatDefense, Change: 2}},
	"sap-sipper":      {boost: &StatChange{Stat: StatAttack, Change: 1}},
	"flash-fire":      {typeBoost: TypeFire},
}

// ResolveAbility returns the immunity effect the defender's abilities have
// on a move of the given type, or nil when none applies.
func ResolveAbility(defender *Combatant, moveType Element) *AbilityEffect {
	for _, name := range immunityAbilities[moveType] {
		if !defender.HasAbility(name) {
			continue
		}
		rule := abilityRules[name]
		effect := &AbilityEffect{Ability: name, TypeBoost: rule.typeBoost}
		if rule.healQuarter {
			effect.Heal = defender.MaxHP / 4
		}
		if rule.boost != nil {
			boost := *rule.boost
			effect.Boost = &boost
		}
		return effect
	}
	return nil
}

// AbilityMessage announces the ability taking the hit.
func AbilityMessage(name, ability string) string {
	return fmt.Sprintf("%s's %s took the attack!", name, DisplayName(ability))
}
