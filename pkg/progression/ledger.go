// Package progression applies currency and experience rewards and resolves
// level-up transitions.
package progression

import "github.com/scrapline/claimd/pkg/players"

const (
	// XPPerLevel scales the level-up threshold: a player levels when
	// experience reaches level × XPPerLevel
	XPPerLevel = 100
	// MaxHPPerLevel is the max-health gain per level-up
	MaxHPPerLevel = 10
)

// Grant adds caps unconditionally and experience with leveling applied.
// Leveling loops so a single large grant can cross several levels; each
// level-up subtracts the threshold, raises max health and refills current
// health. The threshold is fixed at the level held when the grant arrives,
// so one oversized grant can chain multiple level-ups against it.
// Returns whether at least one level-up occurred.
func Grant(p *players.Player, caps, xp int) bool {
	p.Caps += caps
	p.XP += xp

	threshold := p.Level * XPPerLevel
	leveled := false
	for p.XP >= threshold {
		p.XP -= threshold
		p.Level++
		p.MaxHP += MaxHPPerLevel
		p.HP = p.MaxHP
		leveled = true
	}
	return leveled
}
