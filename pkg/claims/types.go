package claims

import (
	"time"

	"github.com/scrapline/claimd/pkg/players"
)

// Settlement reports the advisory outcome of the external mint step. A
// failed settlement never rolls back local state; Error is recorded so a
// reconciliation job can retry later with Amount.
type Settlement struct {
	Amount        int    `json:"amount"`
	TransactionID string `json:"transactionId,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Summary is the player snapshot attached to operation results
type Summary struct {
	Wallet string                  `json:"wallet"`
	Caps   int                     `json:"caps"`
	Level  int                     `json:"level"`
	XP     int                     `json:"xp"`
	HP     int                     `json:"hp"`
	MaxHP  int                     `json:"maxHp"`
	Items  int                     `json:"items"`
	Gear   map[players.Slot]string `json:"gear"`
}

// Result is the consolidated outcome of a successful claim
type Result struct {
	Location        string        `json:"location"`
	Loot            *players.Item `json:"loot,omitempty"`
	Encounter       string        `json:"encounter,omitempty"`
	Event           string        `json:"event,omitempty"`
	CapsEarned      int           `json:"capsEarned"`
	XPEarned        int           `json:"xpEarned"`
	LeveledUp       bool          `json:"leveledUp"`
	Player          Summary       `json:"player"`
	Settlement      Settlement    `json:"settlement"`
	CooldownExpires time.Time     `json:"cooldownExpires"`
}

// EquipResult is the outcome of a successful equip
type EquipResult struct {
	Item   players.Item `json:"item"`
	Slot   players.Slot `json:"slot"`
	Player Summary      `json:"player"`
}

// CraftResult is the outcome of a successful craft
type CraftResult struct {
	Item   players.Item `json:"item"`
	Player Summary      `json:"player"`
}

func summarize(p *players.Player) Summary {
	gear := make(map[players.Slot]string, len(p.Gear))
	for slot, item := range p.Gear {
		gear[slot] = item.Name
	}
	return Summary{
		Wallet: p.Wallet,
		Caps:   p.Caps,
		Level:  p.Level,
		XP:     p.XP,
		HP:     p.HP,
		MaxHP:  p.MaxHP,
		Items:  len(p.Inventory),
		Gear:   gear,
	}
}
