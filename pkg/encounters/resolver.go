// Package encounters resolves the random narrative side effect of a claim.
package encounters

import (
	"math/rand"

	"github.com/scrapline/claimd/pkg/players"
)

// Probability bands for the single uniform draw. Order matters: each band
// is [lower, upper).
const (
	hostileUpper  = 0.18
	friendlyUpper = 0.28
	aidUpper      = 0.34
)

const encounterHPDelta = 12

// Resolver performs encounter rolls against player state
type Resolver struct {
	randFloat func() float64
}

// NewResolver creates a Resolver backed by the shared math/rand source
func NewResolver() *Resolver {
	return &Resolver{randFloat: rand.Float64}
}

// NewResolverWithRand creates a Resolver with an injected uniform [0,1) source
func NewResolverWithRand(randFloat func() float64) *Resolver {
	return &Resolver{randFloat: randFloat}
}

// Resolve draws once and applies the outcome to the player in place. Health
// changes are clamped to [0, MaxHP]. Returns a description of what happened,
// or the empty string when nothing did.
func (r *Resolver) Resolve(p *players.Player) string {
	roll := r.randFloat()

	switch {
	case roll < hostileUpper:
		p.HP -= encounterHPDelta
		p.ClampHP()
		p.Factions[players.FactionRaiders] += 4
		return "Ambushed by raiders on the way out. Lost 12 HP fighting through; the raiders respect the effort (+4 rep)."
	case roll < friendlyUpper:
		p.Factions[players.FactionBrotherhood] += 6
		return "A Brotherhood patrol passed through and traded intel (+6 rep)."
	case roll < aidUpper:
		p.HP += encounterHPDelta
		p.ClampHP()
		p.Factions[players.FactionVault] += 5
		return "A vault medic patched you up (+12 HP, +5 vault rep)."
	default:
		return ""
	}
}
