package players

import "time"

// Faction names form a fixed set; reputation outside it is rejected.
const (
	FactionBrotherhood = "brotherhood"
	FactionRaiders     = "raiders"
	FactionVault       = "vault"
)

// Factions lists the fixed faction set in display order.
var Factions = []string{FactionBrotherhood, FactionRaiders, FactionVault}

// ValidFaction reports whether name is part of the fixed faction set.
func ValidFaction(name string) bool {
	for _, f := range Factions {
		if f == name {
			return true
		}
	}
	return false
}

// Category classifies a reward or crafted item.
type Category string

const (
	CategoryMaterial   Category = "material"
	CategoryConsumable Category = "consumable"
	CategoryWeapon     Category = "weapon"
	CategoryHead       Category = "head"
	CategoryBody       Category = "body"
	CategoryAccessory  Category = "accessory"
	CategoryArtifact   Category = "artifact"
)

// Rarity is the tier of a reward-table entry or item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Slot identifies an equipment slot. Slot names double as the equippable
// category names.
type Slot string

const (
	SlotHead      Slot = "head"
	SlotBody      Slot = "body"
	SlotWeapon    Slot = "weapon"
	SlotAccessory Slot = "accessory"
)

// SlotFor returns the equipment slot for an item category, or false when the
// category is not equippable.
func SlotFor(c Category) (Slot, bool) {
	switch c {
	case CategoryHead:
		return SlotHead, true
	case CategoryBody:
		return SlotBody, true
	case CategoryWeapon:
		return SlotWeapon, true
	case CategoryAccessory:
		return SlotAccessory, true
	}
	return "", false
}

// Stats holds the category-specific numeric payload of an item. Zero values
// mean the stat is absent.
type Stats struct {
	Attack   int `json:"attack,omitempty"`
	Defense  int `json:"defense,omitempty"`
	Carry    int `json:"carry,omitempty"`
	Heal     int `json:"heal,omitempty"`
	Ammo     int `json:"ammo,omitempty"`
	Charisma int `json:"charisma,omitempty"`
}

// Item is a materialized reward or crafted object owned by one player.
// ID is unique per instance; DefID names the reward-table entry or recipe
// output the instance was materialized from, and is what crafting counts.
type Item struct {
	ID        string    `json:"id"`
	DefID     string    `json:"defId"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Rarity    Rarity    `json:"rarity"`
	Stats     Stats     `json:"stats"`
	Source    string    `json:"source"` // location id or "crafting"
	TokenID   string    `json:"tokenId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Player is the full mutable record for one wallet.
type Player struct {
	Wallet    string         `json:"wallet"`
	Caps      int            `json:"caps"`
	Level     int            `json:"level"`
	XP        int            `json:"xp"`
	HP        int            `json:"hp"`
	MaxHP     int            `json:"maxHp"`
	Factions  map[string]int `json:"factions"`
	Inventory []Item         `json:"inventory"`
	Gear      map[Slot]Item  `json:"gear"`
	LastClaim time.Time      `json:"lastClaim"`
}

// NewPlayer returns a fresh player record with default values.
func NewPlayer(wallet string) *Player {
	factions := make(map[string]int, len(Factions))
	for _, f := range Factions {
		factions[f] = 0
	}
	return &Player{
		Wallet:    wallet,
		Caps:      0,
		Level:     1,
		XP:        0,
		HP:        100,
		MaxHP:     100,
		Factions:  factions,
		Inventory: []Item{},
		Gear:      make(map[Slot]Item),
	}
}

// FindItem returns the index of the inventory item with the given id, or -1.
func (p *Player) FindItem(itemID string) int {
	for i := range p.Inventory {
		if p.Inventory[i].ID == itemID {
			return i
		}
	}
	return -1
}

// ClampHP forces HP back into [0, MaxHP].
func (p *Player) ClampHP() {
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	if p.HP < 0 {
		p.HP = 0
	}
}

// Source represents a backing store for player records
type Source interface {
	// LoadPlayer loads the record for a wallet.
	// Returns ErrPlayerNotFound if no record exists.
	LoadPlayer(wallet string) (*Player, error)
	// SavePlayer persists the record, replacing any previous version
	SavePlayer(p *Player) error
}
