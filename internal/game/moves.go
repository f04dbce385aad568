package game

const (
	targetSelected     = "selected-pokemon"
	targetUser         = "user"
	targetAllOpponents = "all-opponents"
	targetAllOther     = "all-other-pokemon"
)

func stat(s Stat, change int) StatChange { return StatChange{Stat: s, Change: change} }

// MoveRegistry holds every move a roster member can learn.
var MoveRegistry = map[string]*Move{
	// normal
	"tackle":       {Name: "tackle", Type: TypeNormal, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 35, Target: targetSelected},
	"scratch":      {Name: "scratch", Type: TypeNormal, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 35, Target: targetSelected},
	"quick-attack": {Name: "quick-attack", Type: TypeNormal, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Target: targetSelected},
	"extreme-speed": {Name: "extreme-speed", Type: TypeNormal, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 5, Priority: 2,
		Target: targetSelected},
	"headbutt": {Name: "headbutt", Type: TypeNormal, Category: CategoryPhysical, Power: 70, Accuracy: 100, PP: 15, Target: targetSelected,
		Meta: MoveMeta{FlinchChance: 30}},
	"body-slam": {Name: "body-slam", Type: TypeNormal, Category: CategoryPhysical, Power: 85, Accuracy: 100, PP: 15, Target: targetSelected,
		Meta: MoveMeta{Ailment: "paralysis", AilmentChance: 30}},
	"mega-punch": {Name: "mega-punch", Type: TypeNormal, Category: CategoryPhysical, Power: 80, Accuracy: 85, PP: 20, Target: targetSelected},
	"double-edge": {Name: "double-edge", Type: TypeNormal, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 15, Target: targetSelected,
		Meta: MoveMeta{Drain: -33}},
	"swift": {Name: "swift", Type: TypeNormal, Category: CategorySpecial, Power: 60, PP: 20, Target: targetAllOpponents},
	"growl": {Name: "growl", Type: TypeNormal, Category: CategoryStatus, Accuracy: 100, PP: 40, Target: targetAllOpponents,
		StatChanges: []StatChange{stat(StatAttack, -1)}},
	"tail-whip": {Name: "tail-whip", Type: TypeNormal, Category: CategoryStatus, Accuracy: 100, PP: 30, Target: targetAllOpponents,
		StatChanges: []StatChange{stat(StatDefense, -1)}},
	"smokescreen": {Name: "smokescreen", Type: TypeNormal, Category: CategoryStatus, Accuracy: 100, PP: 20, Target: targetSelected,
		StatChanges: []StatChange{stat(StatAccuracy, -1)}},
	"harden": {Name: "harden", Type: TypeNormal, Category: CategoryStatus, PP: 30, Target: targetUser,
		StatChanges: []StatChange{stat(StatDefense, 1)}},
	"double-team": {Name: "double-team", Type: TypeNormal, Category: CategoryStatus, PP: 15, Target: targetUser,
		StatChanges: []StatChange{stat(StatEvasion, 1)}},
	"swords-dance": {Name: "swords-dance", Type: TypeNormal, Category: CategoryStatus, PP: 20, Target: targetUser,
		StatChanges: []StatChange{stat(StatAttack, 2)}},
	"growth": {Name: "growth", Type: TypeNormal, Category: CategoryStatus, PP: 20, Target: targetUser,
		StatChanges: []StatChange{stat(StatAttack, 1), stat(StatSpecialAttack, 1)}},
	"recover": {Name: "recover", Type: TypeNormal, Category: CategoryStatus, PP: 5, Target: targetUser,
		Meta: MoveMeta{Healing: 50}},
	"slack-off": {Name: "slack-off", Type: TypeNormal, Category: CategoryStatus, PP: 5, Target: targetUser,
		Meta: MoveMeta{Healing: 50}},

	// fire
	"ember": {Name: "ember", Type: TypeFire, Category: CategorySpecial, Power: 40, Accuracy: 100, PP: 25, Target: targetSelected,
		Meta: MoveMeta{Ailment: "burn", AilmentChance: 10}},
	"flamethrower": {Name: "flamethrower", Type: TypeFire, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15, Target: targetSelected,
		Meta: MoveMeta{Ailment: "burn", AilmentChance: 10}},
	"fire-blast": {Name: "fire-blast", Type: TypeFire, Category: CategorySpecial, Power: 110, Accuracy: 85, PP: 5, Target: targetSelected,
		Meta: MoveMeta{Ailment: "burn", AilmentChance: 10}},
	"heat-wave": {Name: "heat-wave", Type: TypeFire, Category: CategorySpecial, Power: 95, Accuracy: 90, PP: 10, Target: targetAllOpponents,
		Meta: MoveMeta{Ailment: "burn", AilmentChance: 10}},
	"fire-punch": {Name: "fire-punch", Type: TypeFire, Category: CategoryPhysical, Power: 75, Accuracy: 100, PP: 15, Target: targetSelected,
		Meta: MoveMeta{Ailment: "burn", AilmentChance: 10}},
	"fire-fang": {Name: "fire-fang", Type: TypeFire, Category: CategoryPhysical, Power: 65, Accuracy: 95, PP: 15, Target: targetSelected,
		Meta: MoveMeta{Ailment: "burn", AilmentChance: 10, FlinchChance: 10}},
	"flare-blitz": {Name: "flare-blitz", Type: TypeFire, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 15, Target: targetSelected,
		Meta: MoveMeta{Ailment: "burn", AilmentChance: 10, Drain: -33}},
	"flame-charge": {Name: "flame-charge", Type: TypeFire, Category: CategoryPhysical, Power: 50, Accuracy: 100, PP: 20, Target: targetSelected,
		StatChanges: []StatChange{stat(StatSpeed, 1)}, Meta: MoveMeta{StatChance: 100}},
	"will-o-wisp": {Name: "will-o-wisp", Type: TypeFire, Category: CategoryStatus, Accuracy: 85, PP: 15, Target: targetSelected,
		Meta: MoveMeta{Ailment: "burn"}},

	// water
	"water-gun": {Name: "water-gun", Type: TypeWater, Category: CategorySpecial, Power: 40, Accuracy: 100, PP: 25, Target: targetSelected},
	"aqua-jet": {Name: "aqua-jet", Type: TypeWater, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 20, Priority: 1,
		Target: targetSelected},
	"bubble-beam": {Name: "bubble-beam", Type: TypeWater, Category: CategorySpecial, Power: 65, Accuracy: 100, PP: 20, Target: targetSelected,
		StatChanges: []StatChange{stat(StatSpeed, -1)}, Meta: MoveMeta{StatChance: 10}},
	"waterfall": {Name: "waterfall", Type: TypeWater, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15, Target: targetSelected,
		Meta: MoveMeta{FlinchChance: 20}},
	"surf":       {Name: "surf", Type: TypeWater, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15, Target: targetAllOther},
	"hydro-pump": {Name: "hydro-pump", Type: TypeWater, Category: CategorySpecial, Power: 110, Accuracy: 80, PP: 5, Target: targetSelected},
	"withdraw": {Name: "withdraw", Type: TypeWater, Category: CategoryStatus, PP: 40, Target: targetUser,
		StatChanges: []StatChange{stat(StatDefense, 1)}},

	// electric
	"thunder-shock": {Name: "thunder-shock", Type: TypeElectric, Category: CategorySpecial, Power: 40, Accuracy: 100, PP: 30,
		Target: targetSelected, Meta: MoveMeta{Ailment: "paralysis", AilmentChance: 10}},
	"thunderbolt": {Name: "thunderbolt", Type: TypeElectric, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15,
		Target: targetSelected, Meta: MoveMeta{Ailment: "paralysis", AilmentChance: 10}},
	"thunder": {Name: "thunder", Type: TypeElectric, Category: CategorySpecial, Power: 110, Accuracy: 70, PP: 10,
		Target: targetSelected, Meta: MoveMeta{Ailment: "paralysis", AilmentChance: 30}},
	"thunder-punch": {Name: "thunder-punch", Type: TypeElectric, Category: CategoryPhysical, Power: 75, Accuracy: 100, PP: 15,
		Target: targetSelected, Meta: MoveMeta{Ailment: "paralysis", AilmentChance: 10}},
	"thunder-wave": {Name: "thunder-wave", Type: TypeElectric, Category: CategoryStatus, Accuracy: 90, PP: 20, Target: targetSelected,
		Meta: MoveMeta{Ailment: "paralysis"}},

	// grass
	"vine-whip":  {Name: "vine-whip", Type: TypeGrass, Category: CategoryPhysical, Power: 45, Accuracy: 100, PP: 25, Target: targetSelected},
	"razor-leaf": {Name: "razor-leaf", Type: TypeGrass, Category: CategoryPhysical, Power: 55, Accuracy: 95, PP: 25, Target: targetAllOpponents},
	"giga-drain": {Name: "giga-drain", Type: TypeGrass, Category: CategorySpecial, Power: 75, Accuracy: 100, PP: 10, Target: targetSelected,
		Meta: MoveMeta{Drain: 50}},
	"energy-ball": {Name: "energy-ball", Type: TypeGrass, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Target: targetSelected,
		StatChanges: []StatChange{stat(StatSpecialDefense, -1)}, Meta: MoveMeta{StatChance: 10}},
	"sleep-powder": {Name: "sleep-powder", Type: TypeGrass, Category: CategoryStatus, Accuracy: 75, PP: 15, Target: targetSelected,
		Meta: MoveMeta{Ailment: "sleep"}},

	// ice
	"ice-shard": {Name: "ice-shard", Type: TypeIce, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 30, Priority: 1,
		Target: targetSelected},
	"ice-punch": {Name: "ice-punch", Type: TypeIce, Category: CategoryPhysical, Power: 75, Accuracy: 100, PP: 15, Target: targetSelected,
		Meta: MoveMeta{Ailment: "freeze", AilmentChance: 10}},
	"ice-beam": {Name: "ice-beam", Type: TypeIce, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Target: targetSelected,
		Meta: MoveMeta{Ailment: "freeze", AilmentChance: 10}},
	"blizzard": {Name: "blizzard", Type: TypeIce, Category: CategorySpecial, Power: 110, Accuracy: 70, PP: 5, Target: targetAllOpponents,
		Meta: MoveMeta{Ailment: "freeze", AilmentChance: 10}},

	// fighting
	"karate-chop": {Name: "karate-chop", Type: TypeFighting, Category: CategoryPhysical, Power: 50, Accuracy: 100, PP: 25,
		Target: targetSelected},
	"cross-chop": {Name: "cross-chop", Type: TypeFighting, Category: CategoryPhysical, Power: 100, Accuracy: 80, PP: 5, Target: targetSelected},
	"submission": {Name: "submission", Type: TypeFighting, Category: CategoryPhysical, Power: 80, Accuracy: 80, PP: 20, Target: targetSelected,
		Meta: MoveMeta{Drain: -25}},
	"drain-punch": {Name: "drain-punch", Type: TypeFighting, Category: CategoryPhysical, Power: 75, Accuracy: 100, PP: 10,
		Target: targetSelected, Meta: MoveMeta{Drain: 50}},
	"close-combat": {Name: "close-combat", Type: TypeFighting, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 5,
		Target: targetSelected, StatChanges: []StatChange{stat(StatDefense, -1), stat(StatSpecialDefense, -1)}},
	"aura-sphere": {Name: "aura-sphere", Type: TypeFighting, Category: CategorySpecial, Power: 80, PP: 20, Target: targetSelected},
	"bulk-up": {Name: "bulk-up", Type: TypeFighting, Category: CategoryStatus, PP: 20, Target: targetUser,
		StatChanges: []StatChange{stat(StatAttack, 1), stat(StatDefense, 1)}},

	// poison
	"sludge": {Name: "sludge", Type: TypePoison, Category: CategorySpecial, Power: 65, Accuracy: 100, PP: 20, Target: targetSelected,
		Meta: MoveMeta{Ailment: "poison", AilmentChance: 30}},
	"sludge-bomb": {Name: "sludge-bomb", Type: TypePoison, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Target: targetSelected,
		Meta: MoveMeta{Ailment: "poison", AilmentChance: 30}},
	"poison-powder": {Name: "poison-powder", Type: TypePoison, Category: CategoryStatus, Accuracy: 75, PP: 35, Target: targetSelected,
		Meta: MoveMeta{Ailment: "poison"}},
	"toxic": {Name: "toxic", Type: TypePoison, Category: CategoryStatus, Accuracy: 90, PP: 10, Target: targetSelected,
		Meta: MoveMeta{Ailment: "badly-poisoned"}},

	// ground / rock
	"earthquake": {Name: "earthquake", Type: TypeGround, Category: CategoryPhysical, Power: 100, Accuracy: 100, PP: 10, Target: targetAllOther},
	"sand-attack": {Name: "sand-attack", Type: TypeGround, Category: CategoryStatus, Accuracy: 100, PP: 15, Target: targetSelected,
		StatChanges: []StatChange{stat(StatAccuracy, -1)}},
	"rock-throw": {Name: "rock-throw", Type: TypeRock, Category: CategoryPhysical, Power: 50, Accuracy: 90, PP: 15, Target: targetSelected},
	"rock-slide": {Name: "rock-slide", Type: TypeRock, Category: CategoryPhysical, Power: 75, Accuracy: 90, PP: 10, Target: targetAllOpponents,
		Meta: MoveMeta{FlinchChance: 30}},
	"stone-edge": {Name: "stone-edge", Type: TypeRock, Category: CategoryPhysical, Power: 100, Accuracy: 80, PP: 5, Target: targetSelected},

	// flying
	"wing-attack": {Name: "wing-attack", Type: TypeFlying, Category: CategoryPhysical, Power: 60, Accuracy: 100, PP: 35, Target: targetSelected},
	"air-slash": {Name: "air-slash", Type: TypeFlying, Category: CategorySpecial, Power: 75, Accuracy: 95, PP: 15, Target: targetSelected,
		Meta: MoveMeta{FlinchChance: 30}},

	// psychic
	"psybeam": {Name: "psybeam", Type: TypePsychic, Category: CategorySpecial, Power: 65, Accuracy: 100, PP: 20, Target: targetSelected,
		Meta: MoveMeta{Ailment: "confusion", AilmentChance: 10}},
	"psychic": {Name: "psychic", Type: TypePsychic, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Target: targetSelected,
		StatChanges: []StatChange{stat(StatSpecialDefense, -1)}, Meta: MoveMeta{StatChance: 10}},
	"psycho-cut": {Name: "psycho-cut", Type: TypePsychic, Category: CategoryPhysical, Power: 70, Accuracy: 100, PP: 20, Target: targetSelected},
	"hypnosis": {Name: "hypnosis", Type: TypePsychic, Category: CategoryStatus, Accuracy: 60, PP: 20, Target: targetSelected,
		Meta: MoveMeta{Ailment: "sleep"}},
	"calm-mind": {Name: "calm-mind", Type: TypePsychic, Category: CategoryStatus, PP: 20, Target: targetUser,
		StatChanges: []StatChange{stat(StatSpecialAttack, 1), stat(StatSpecialDefense, 1)}},
	"agility": {Name: "agility", Type: TypePsychic, Category: CategoryStatus, PP: 30, Target: targetUser,
		StatChanges: []StatChange{stat(StatSpeed, 2)}},
	"amnesia": {Name: "amnesia", Type: TypePsychic, Category: CategoryStatus, PP: 20, Target: targetUser,
		StatChanges: []StatChange{stat(StatSpecialDefense, 2)}},

	// ghost
	"lick": {Name: "lick", Type: TypeGhost, Category: CategoryPhysical, Power: 30, Accuracy: 100, PP: 30, Target: targetSelected,
		Meta: MoveMeta{Ailment: "paralysis", AilmentChance: 30}},
	"shadow-claw": {Name: "shadow-claw", Type: TypeGhost, Category: CategoryPhysical, Power: 70, Accuracy: 100, PP: 15, Target: targetSelected},
	"shadow-ball": {Name: "shadow-ball", Type: TypeGhost, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 15, Target: targetSelected,
		StatChanges: []StatChange{stat(StatSpecialDefense, -1)}, Meta: MoveMeta{StatChance: 20}},
	"confuse-ray": {Name: "confuse-ray", Type: TypeGhost, Category: CategoryStatus, Accuracy: 100, PP: 10, Target: targetSelected,
		Meta: MoveMeta{Ailment: "confusion"}},

	// dragon / dark / steel
	"dragon-claw": {Name: "dragon-claw", Type: TypeDragon, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15, Target: targetSelected},
	"draco-meteor": {Name: "draco-meteor", Type: TypeDragon, Category: CategorySpecial, Power: 130, Accuracy: 90, PP: 5, Target: targetSelected,
		StatChanges: []StatChange{stat(StatSpecialAttack, -2)}, Meta: MoveMeta{StatChance: 100}},
	"dragon-dance": {Name: "dragon-dance", Type: TypeDragon, Category: CategoryStatus, PP: 20, Target: targetUser,
		StatChanges: []StatChange{stat(StatAttack, 1), stat(StatSpeed, 1)}},
	"bite": {Name: "bite", Type: TypeDark, Category: CategoryPhysical, Power: 60, Accuracy: 100, PP: 25, Target: targetSelected,
		Meta: MoveMeta{FlinchChance: 30}},
	"crunch": {Name: "crunch", Type: TypeDark, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15, Target: targetSelected,
		StatChanges: []StatChange{stat(StatDefense, -1)}, Meta: MoveMeta{StatChance: 20}},
	"nasty-plot": {Name: "nasty-plot", Type: TypeDark, Category: CategoryStatus, PP: 20, Target: targetUser,
		StatChanges: []StatChange{stat(StatSpecialAttack, 2)}},
	"iron-tail": {Name: "iron-tail", Type: TypeSteel, Category: CategoryPhysical, Power: 100, Accuracy: 75, PP: 15, Target: targetSelected,
		StatChanges: []StatChange{stat(StatDefense, -1)}, Meta: MoveMeta{StatChance: 30}},
}
