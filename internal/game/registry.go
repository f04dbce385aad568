package game

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

func baseStats(hp, atk, def, spa, spd, spe int) map[Stat]int {
	return map[Stat]int{
		StatHP: hp, StatAttack: atk, StatDefense: def,
		StatSpecialAttack: spa, StatSpecialDefense: spd, StatSpeed: spe,
	}
}

// SpeciesRegistry maps species ids to their definitions.
var SpeciesRegistry = map[string]*Species{
	"bulbasaur": {ID: 1, Name: "bulbasaur", Types: []Element{TypeGrass, TypePoison}, BaseStats: baseStats(45, 49, 49, 65, 65, 45),
		Abilities: []string{"overgrow", "chlorophyll"},
		MovePool:  []string{"tackle", "vine-whip", "razor-leaf", "growl", "sleep-powder", "poison-powder", "growth", "sludge"}},
	"ivysaur": {ID: 2, Name: "ivysaur", Types: []Element{TypeGrass, TypePoison}, BaseStats: baseStats(60, 62, 63, 80, 80, 60),
		Abilities: []string{"overgrow", "chlorophyll"},
		MovePool:  []string{"tackle", "vine-whip", "razor-leaf", "sleep-powder", "poison-powder", "growth", "sludge", "giga-drain"}},
	"venusaur": {ID: 3, Name: "venusaur", Types: []Element{TypeGrass, TypePoison}, BaseStats: baseStats(80, 82, 83, 100, 100, 80),
		Abilities: []string{"overgrow", "chlorophyll"},
		MovePool:  []string{"giga-drain", "energy-ball", "sludge-bomb", "earthquake", "sleep-powder", "toxic", "growth", "body-slam"}},
	"charmander": {ID: 4, Name: "charmander", Types: []Element{TypeFire}, BaseStats: baseStats(39, 52, 43, 60, 50, 65),
		Abilities: []string{"blaze", "solar-power"},
		MovePool:  []string{"scratch", "ember", "growl", "smokescreen", "fire-fang", "flame-charge", "dragon-claw"}},
	"charmeleon": {ID: 5, Name: "charmeleon", Types: []Element{TypeFire}, BaseStats: baseStats(58, 64, 58, 80, 65, 80),
		Abilities: []string{"blaze", "solar-power"},
		MovePool:  []string{"scratch", "ember", "flamethrower", "fire-fang", "smokescreen", "dragon-claw", "flame-charge"}},
	"charizard": {ID: 6, Name: "charizard", Types: []Element{TypeFire, TypeFlying}, BaseStats: baseStats(78, 84, 78, 109, 85, 100),
		Abilities: []string{"blaze", "solar-power"},
		MovePool:  []string{"flamethrower", "fire-blast", "air-slash", "dragon-claw", "heat-wave", "wing-attack", "swords-dance", "flare-blitz"}},
	"squirtle": {ID: 7, Name: "squirtle", Types: []Element{TypeWater}, BaseStats: baseStats(44, 48, 65, 50, 64, 43),
		Abilities: []string{"torrent", "rain-dish"},
		MovePool:  []string{"tackle", "water-gun", "tail-whip", "withdraw", "bubble-beam", "bite", "aqua-jet"}},
	"wartortle": {ID: 8, Name: "wartortle", Types: []Element{TypeWater}, BaseStats: baseStats(59, 63, 80, 65, 80, 58),
		Abilities: []string{"torrent", "rain-dish"},
		MovePool:  []string{"water-gun", "bubble-beam", "bite", "withdraw", "aqua-jet", "waterfall", "ice-punch"}},
	"blastoise": {ID: 9, Name: "blastoise", Types: []Element{TypeWater}, BaseStats: baseStats(79, 83, 100, 85, 105, 78),
		Abilities: []string{"torrent", "rain-dish"},
		MovePool:  []string{"surf", "hydro-pump", "ice-beam", "crunch", "waterfall", "withdraw", "earthquake", "blizzard"}},
	"pikachu": {ID: 25, Name: "pikachu", Types: []Element{TypeElectric}, BaseStats: baseStats(35, 55, 40, 50, 50, 90),
		Abilities: []string{"static", "lightning-rod"},
		MovePool:  []string{"thunder-shock", "thunderbolt", "thunder", "quick-attack", "thunder-wave", "iron-tail", "agility", "double-team"}},
	"arcanine": {ID: 59, Name: "arcanine", Types: []Element{TypeFire}, BaseStats: baseStats(90, 110, 80, 100, 80, 95),
		Abilities: []string{"intimidate", "flash-fire", "justified"},
		MovePool:  []string{"flare-blitz", "extreme-speed", "crunch", "fire-fang", "flamethrower", "will-o-wisp", "bite", "close-combat"}},
	"alakazam": {ID: 65, Name: "alakazam", Types: []Element{TypePsychic}, BaseStats: baseStats(55, 50, 45, 135, 95, 120),
		Abilities: []string{"synchronize", "inner-focus", "magic-guard"},
		MovePool:  []string{"psychic", "psybeam", "shadow-ball", "energy-ball", "calm-mind", "recover", "hypnosis", "nasty-plot"}},
	"machamp": {ID: 68, Name: "machamp", Types: []Element{TypeFighting}, BaseStats: baseStats(90, 130, 80, 65, 85, 55),
		Abilities: []string{"guts", "no-guard", "steadfast"},
		MovePool:  []string{"cross-chop", "close-combat", "karate-chop", "submission", "drain-punch", "stone-edge", "bulk-up", "thunder-punch"}},
	"golem": {ID: 76, Name: "golem", Types: []Element{TypeRock, TypeGround}, BaseStats: baseStats(80, 120, 130, 55, 65, 45),
		Abilities: []string{"rock-head", "sturdy", "sand-veil"},
		MovePool:  []string{"earthquake", "rock-slide", "stone-edge", "rock-throw", "harden", "double-edge", "fire-punch", "sand-attack"}},
	"gengar": {ID: 94, Name: "gengar", Types: []Element{TypeGhost, TypePoison}, BaseStats: baseStats(60, 65, 60, 130, 75, 110),
		Abilities: []string{"cursed-body"},
		MovePool:  []string{"shadow-ball", "sludge-bomb", "lick", "confuse-ray", "hypnosis", "thunderbolt", "nasty-plot", "shadow-claw"}},
	"lapras": {ID: 131, Name: "lapras", Types: []Element{TypeWater, TypeIce}, BaseStats: baseStats(130, 85, 80, 85, 95, 60),
		Abilities: []string{"water-absorb", "shell-armor", "hydration"},
		MovePool:  []string{"surf", "ice-beam", "blizzard", "body-slam", "psychic", "thunderbolt", "confuse-ray", "ice-shard"}},
	"snorlax": {ID: 143, Name: "snorlax", Types: []Element{TypeNormal}, BaseStats: baseStats(160, 110, 65, 65, 110, 30),
		Abilities: []string{"immunity", "thick-fat", "gluttony"},
		MovePool:  []string{"body-slam", "headbutt", "double-edge", "earthquake", "crunch", "amnesia", "slack-off", "mega-punch"}},
	"dragonite": {ID: 149, Name: "dragonite", Types: []Element{TypeDragon, TypeFlying}, BaseStats: baseStats(91, 134, 95, 100, 100, 80),
		Abilities: []string{"inner-focus", "multiscale"},
		MovePool:  []string{"dragon-claw", "extreme-speed", "dragon-dance", "draco-meteor", "wing-attack", "thunder-wave", "fire-punch", "earthquake"}},
	"mewtwo": {ID: 150, Name: "mewtwo", Types: []Element{TypePsychic}, BaseStats: baseStats(106, 110, 90, 154, 90, 130),
		Abilities: []string{"pressure", "unnerve"},
		MovePool:  []string{"psychic", "aura-sphere", "shadow-ball", "ice-beam", "recover", "calm-mind", "psycho-cut", "thunderbolt"}},
}

// LookupSpecies returns the species with the given id.
func LookupSpecies(name string) (*Species, error) {
	sp, ok := SpeciesRegistry[name]
	if !ok {
		return nil, fmt.Errorf("species not found in registry: %q", name)
	}
	return sp, nil
}

// LookupMove returns the move with the given id.
func LookupMove(name string) (*Move, error) {
	m, ok := MoveRegistry[name]
	if !ok {
		return nil, fmt.Errorf("move not found in registry: %q", name)
	}
	return m, nil
}

// SpeciesNames returns every registered species id ordered by dex number.
func SpeciesNames() []string {
	names := lo.Keys(SpeciesRegistry)
	sort.Slice(names, func(i, j int) bool {
		return SpeciesRegistry[names[i]].ID < SpeciesRegistry[names[j]].ID
	})
	return names
}

// BuildCombatant creates a combatant from registry ids. An empty move list
// draws up to four moves from the species' move pool.
func BuildCombatant(species string, level int, moveNames []string, rng RNG) (*Combatant, error) {
	sp, err := LookupSpecies(species)
	if err != nil {
		return nil, err
	}
	if len(moveNames) == 0 {
		moveNames = randomSubset(sp.MovePool, MaxMoves, rng)
	}
	moves := make([]*Move, 0, len(moveNames))
	for _, name := range moveNames {
		m, err := LookupMove(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", species, err)
		}
		moves = append(moves, m)
	}
	return NewCombatant(sp, level, moves)
}

// RandomTeam builds a team of distinct species with random move sets.
func RandomTeam(size int, rng RNG) ([]*Combatant, error) {
	size = max(1, min(size, MaxTeamSize))
	var members []*Combatant
	for _, name := range randomSubset(SpeciesNames(), size, rng) {
		c, err := BuildCombatant(name, DefaultLevel, nil, rng)
		if err != nil {
			return nil, err
		}
		members = append(members, c)
	}
	return members, nil
}

// randomSubset draws n distinct elements with a partial Fisher-Yates shuffle.
func randomSubset(pool []string, n int, rng RNG) []string {
	picked := append([]string(nil), pool...)
	n = min(n, len(picked))
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:n]
}
