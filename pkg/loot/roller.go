// Package loot performs weighted random selection over a location's reward
// table, with reputation-driven weighting of top-tier entries.
package loot

import (
	"math/rand"

	"github.com/scrapline/claimd/pkg/catalog"
	"github.com/scrapline/claimd/pkg/players"
)

const (
	// bonusPerRep is the rare/legendary weight bonus per brotherhood
	// reputation point
	bonusPerRep = 0.002
	// bonusCap caps the reputation bonus at +20%
	bonusCap = 0.20
)

// Roller selects reward entries from a table
type Roller struct {
	randFloat func() float64
}

// NewRoller creates a Roller backed by the shared math/rand source
func NewRoller() *Roller {
	return &Roller{randFloat: rand.Float64}
}

// NewRollerWithRand creates a Roller with an injected uniform [0,1) source
func NewRollerWithRand(randFloat func() float64) *Roller {
	return &Roller{randFloat: randFloat}
}

// ReputationBonus returns the extra probability mass applied to rare and
// legendary entries for a given brotherhood reputation. Never negative,
// capped at bonusCap.
func ReputationBonus(rep int) float64 {
	bonus := float64(rep) * bonusPerRep
	if bonus < 0 {
		return 0
	}
	if bonus > bonusCap {
		return bonusCap
	}
	return bonus
}

// Roll selects one entry from the table, or nil for an empty table. The
// player's brotherhood reputation boosts rare and legendary weights; common
// and uncommon weights are unaffected. Selection walks entries in table
// order subtracting effective weights from a uniform draw in [0, total).
func (r *Roller) Roll(table []catalog.RewardEntry, p *players.Player) *catalog.RewardEntry {
	if len(table) == 0 {
		return nil
	}

	bonus := ReputationBonus(p.Factions[players.FactionBrotherhood])

	total := 0.0
	for i := range table {
		total += effectiveWeight(&table[i], bonus)
	}
	if total <= 0 {
		return nil
	}

	remainder := r.randFloat() * total
	for i := range table {
		remainder -= effectiveWeight(&table[i], bonus)
		if remainder <= 0 {
			return &table[i]
		}
	}

	// Floating error can leave a sliver of remainder past the last entry
	return &table[len(table)-1]
}

func effectiveWeight(e *catalog.RewardEntry, bonus float64) float64 {
	if e.Rarity == players.RarityRare || e.Rarity == players.RarityLegendary {
		return e.Weight * (1 + bonus)
	}
	return e.Weight
}
