// Package inventory owns the equip state machine and crafting: the two
// operations that rearrange or transform a player's item collection.
package inventory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/scrapline/claimd/pkg/catalog"
	"github.com/scrapline/claimd/pkg/players"
)

// equipBaseHP is the max-health floor that a defense-bearing item adds onto
const equipBaseHP = 100

// Manager performs equip and craft mutations against player records. The
// caller is responsible for holding the player's lock.
type Manager struct {
	catalog *catalog.Catalog
	now     func() time.Time
	newID   func() string
}

// NewManager creates a Manager over the static catalog
func NewManager(c *catalog.Catalog) *Manager {
	return &Manager{
		catalog: c,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Equip places the inventory item with the given id into its category's
// gear slot, displacing any previous occupant back to plain inventory.
// Inventory length never changes. A defense stat on the item rewrites max
// health to equipBaseHP + defense; only the most recently equipped
// defense-bearing item counts.
func (m *Manager) Equip(p *players.Player, itemID string) (players.Item, players.Slot, error) {
	idx := p.FindItem(itemID)
	if idx < 0 {
		return players.Item{}, "", ErrItemNotFound
	}

	item := p.Inventory[idx]
	slot, ok := players.SlotFor(item.Category)
	if !ok {
		return players.Item{}, "", ErrNotEquippable
	}

	p.Gear[slot] = item

	if item.Stats.Defense > 0 {
		p.MaxHP = equipBaseHP + item.Stats.Defense
		p.ClampHP()
	}

	return item, slot, nil
}

// Craft consumes the recipe's required materials and appends exactly one new
// item built from the recipe template. A shortfall in any single material
// aborts before anything is removed; the error names the first deficiency
// in sorted material order.
func (m *Manager) Craft(p *players.Player, recipeID string) (players.Item, error) {
	rec, err := m.catalog.Recipe(recipeID)
	if err != nil {
		return players.Item{}, err
	}

	counts := make(map[string]int)
	for i := range p.Inventory {
		counts[p.Inventory[i].DefID]++
	}

	// Deterministic shortfall reporting
	defIDs := make([]string, 0, len(rec.Inputs))
	for defID := range rec.Inputs {
		defIDs = append(defIDs, defID)
	}
	sort.Strings(defIDs)

	for _, defID := range defIDs {
		required := rec.Inputs[defID]
		if counts[defID] < required {
			return players.Item{}, &ShortfallError{
				DefID:    defID,
				Required: required,
				Have:     counts[defID],
			}
		}
	}

	// All requirements met, consume count-exact per material
	remaining := make(map[string]int, len(rec.Inputs))
	for defID, qty := range rec.Inputs {
		remaining[defID] = qty
	}
	kept := p.Inventory[:0:0]
	for _, item := range p.Inventory {
		if remaining[item.DefID] > 0 {
			remaining[item.DefID]--
			continue
		}
		kept = append(kept, item)
	}
	p.Inventory = kept

	crafted := players.Item{
		ID:        m.newID(),
		DefID:     rec.ID,
		Name:      rec.Name,
		Category:  rec.Category,
		Rarity:    rec.Rarity,
		Stats:     rec.Stats,
		Source:    "crafting",
		CreatedAt: m.now(),
	}
	p.Inventory = append(p.Inventory, crafted)

	return crafted, nil
}

// Materialize turns a reward-table entry into an owned inventory item
// sourced from the given location.
func (m *Manager) Materialize(entry *catalog.RewardEntry, locationID string) players.Item {
	return players.Item{
		ID:        m.newID(),
		DefID:     entry.ID,
		Name:      entry.Name,
		Category:  entry.Category,
		Rarity:    entry.Rarity,
		Stats:     entry.Stats,
		Source:    locationID,
		CreatedAt: m.now(),
	}
}
