// Package tables provides the default adversary cost table and party threshold table, and loads overrides from JSON.
package tables

import "github.com/jonathan/encounter-diversifier/internal/types"

// XP awarded per challenge rating
const (
	xpCR0      = 10
	xpCREighth = 25
	xpCRQtr    = 50
	xpCRHalf   = 100
	xpCR1      = 200
)

// srdMonsters lists SRD 2014 monsters of challenge rating 1 or lower
var srdMonsters = map[string]int{
	"awakened-shrub":    xpCR0,
	"baboon":            xpCR0,
	"badger":            xpCR0,
	"bat":               xpCR0,
	"cat":               xpCR0,
	"commoner":          xpCR0,
	"crab":              xpCR0,
	"deer":              xpCR0,
	"eagle":             xpCR0,
	"frog":              xpCR0,
	"giant-fire-beetle": xpCR0,
	"goat":              xpCR0,
	"hawk":              xpCR0,
	"hyena":             xpCR0,
	"jackal":            xpCR0,
	"lizard":            xpCR0,
	"owl":               xpCR0,
	"rat":               xpCR0,
	"raven":             xpCR0,
	"scorpion":          xpCR0,
	"spider":            xpCR0,
	"vulture":           xpCR0,
	"weasel":            xpCR0,

	"bandit":          xpCREighth,
	"blood-hawk":      xpCREighth,
	"camel":           xpCREighth,
	"cultist":         xpCREighth,
	"flying-snake":    xpCREighth,
	"giant-crab":      xpCREighth,
	"giant-rat":       xpCREighth,
	"giant-weasel":    xpCREighth,
	"guard":           xpCREighth,
	"kobold":          xpCREighth,
	"mastiff":         xpCREighth,
	"merfolk":         xpCREighth,
	"mule":            xpCREighth,
	"noble":           xpCREighth,
	"poisonous-snake": xpCREighth,
	"pony":            xpCREighth,
	"stirge":          xpCREighth,
	"tribal-warrior":  xpCREighth,

	"acolyte":               xpCRQtr,
	"axe-beak":              xpCRQtr,
	"blink-dog":             xpCRQtr,
	"boar":                  xpCRQtr,
	"constrictor-snake":     xpCRQtr,
	"draft-horse":           xpCRQtr,
	"dretch":                xpCRQtr,
	"elk":                   xpCRQtr,
	"flying-sword":          xpCRQtr,
	"giant-badger":          xpCRQtr,
	"giant-bat":             xpCRQtr,
	"giant-centipede":       xpCRQtr,
	"giant-frog":            xpCRQtr,
	"giant-lizard":          xpCRQtr,
	"giant-owl":             xpCRQtr,
	"giant-poisonous-snake": xpCRQtr,
	"giant-wolf-spider":     xpCRQtr,
	"goblin":                xpCRQtr,
	"panther":               xpCRQtr,
	"pseudodragon":          xpCRQtr,
	"riding-horse":          xpCRQtr,
	"skeleton":              xpCRQtr,
	"sprite":                xpCRQtr,
	"swarm-of-bats":         xpCRQtr,
	"swarm-of-rats":         xpCRQtr,
	"swarm-of-ravens":       xpCRQtr,
	"violet-fungus":         xpCRQtr,
	"wolf":                  xpCRQtr,
	"zombie":                xpCRQtr,

	"ape":              xpCRHalf,
	"black-bear":       xpCRHalf,
	"cockatrice":       xpCRHalf,
	"crocodile":        xpCRHalf,
	"dust-mephit":      xpCRHalf,
	"giant-goat":       xpCRHalf,
	"giant-wasp":       xpCRHalf,
	"gnoll":            xpCRHalf,
	"gray-ooze":        xpCRHalf,
	"hobgoblin":        xpCRHalf,
	"ice-mephit":       xpCRHalf,
	"lizardfolk":       xpCRHalf,
	"magma-mephit":     xpCRHalf,
	"orc":              xpCRHalf,
	"rust-monster":     xpCRHalf,
	"sahuagin":         xpCRHalf,
	"satyr":            xpCRHalf,
	"scout":            xpCRHalf,
	"shadow":           xpCRHalf,
	"swarm-of-insects": xpCRHalf,
	"thug":             xpCRHalf,
	"warhorse":         xpCRHalf,
	"worg":             xpCRHalf,

	"animated-armor": xpCR1,
	"brown-bear":     xpCR1,
	"bugbear":        xpCR1,
	"death-dog":      xpCR1,
	"dire-wolf":      xpCR1,
	"dryad":          xpCR1,
	"duergar":        xpCR1,
	"ghoul":          xpCR1,
	"giant-eagle":    xpCR1,
	"giant-hyena":    xpCR1,
	"giant-octopus":  xpCR1,
	"giant-spider":   xpCR1,
	"giant-toad":     xpCR1,
	"giant-vulture":  xpCR1,
	"half-ogre":      xpCR1,
	"harpy":          xpCR1,
	"hippogriff":     xpCR1,
	"imp":            xpCR1,
	"lion":           xpCR1,
	"quasit":         xpCR1,
	"specter":        xpCR1,
	"spy":            xpCR1,
	"tiger":          xpCR1,
}

// SRDCostTable returns a fresh copy of the built-in monster cost table
func SRDCostTable() types.CostTable {
	costs := make(types.CostTable, len(srdMonsters))
	for id, xp := range srdMonsters {
		costs[id] = xp
	}
	return costs
}
