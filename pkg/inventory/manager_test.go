package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/scrapline/claimd/pkg/catalog"
	"github.com/scrapline/claimd/pkg/players"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	c, err := catalog.New(nil, []catalog.Recipe{
		{
			ID:       "scrap-blade",
			Name:     "Scrap Blade",
			Category: players.CategoryWeapon,
			Rarity:   players.RarityUncommon,
			Stats:    players.Stats{Attack: 14},
			Inputs:   map[string]int{"scrap-metal": 3, "leather-strap": 1},
		},
	})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	m := NewManager(c)
	m.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	seq := 0
	m.newID = func() string {
		seq++
		return string(rune('a' + seq - 1))
	}
	return m
}

func material(id, defID string) players.Item {
	return players.Item{ID: id, DefID: defID, Category: players.CategoryMaterial, Rarity: players.RarityCommon}
}

func TestEquip(t *testing.T) {
	m := testManager(t)

	t.Run("item not found", func(t *testing.T) {
		p := players.NewPlayer("0xabc")
		_, _, err := m.Equip(p, "ghost")
		if err != ErrItemNotFound {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("not equippable category", func(t *testing.T) {
		p := players.NewPlayer("0xabc")
		p.Inventory = append(p.Inventory, material("m1", "scrap-metal"))
		_, _, err := m.Equip(p, "m1")
		if err != ErrNotEquippable {
			t.Errorf("expected ErrNotEquippable, got %v", err)
		}
	})

	t.Run("equip fills slot without changing inventory", func(t *testing.T) {
		p := players.NewPlayer("0xabc")
		p.Inventory = append(p.Inventory, players.Item{
			ID: "w1", DefID: "pipe-rifle", Category: players.CategoryWeapon,
			Rarity: players.RarityCommon, Stats: players.Stats{Attack: 9},
		})

		item, slot, err := m.Equip(p, "w1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot != players.SlotWeapon {
			t.Errorf("slot = %q, want weapon", slot)
		}
		if item.ID != "w1" {
			t.Errorf("equipped item id = %q, want w1", item.ID)
		}
		if len(p.Inventory) != 1 {
			t.Errorf("inventory length changed to %d", len(p.Inventory))
		}
		if p.Gear[players.SlotWeapon].ID != "w1" {
			t.Errorf("gear slot holds %q", p.Gear[players.SlotWeapon].ID)
		}
	})

	t.Run("overwriting occupant keeps both items in inventory", func(t *testing.T) {
		p := players.NewPlayer("0xabc")
		p.Inventory = append(p.Inventory,
			players.Item{ID: "w1", Category: players.CategoryWeapon},
			players.Item{ID: "w2", Category: players.CategoryWeapon},
		)

		if _, _, err := m.Equip(p, "w1"); err != nil {
			t.Fatalf("first equip: %v", err)
		}
		if _, _, err := m.Equip(p, "w2"); err != nil {
			t.Fatalf("second equip: %v", err)
		}

		if p.Gear[players.SlotWeapon].ID != "w2" {
			t.Errorf("slot holds %q, want w2", p.Gear[players.SlotWeapon].ID)
		}
		if len(p.Inventory) != 2 {
			t.Errorf("inventory length = %d, want 2 (displaced item not deleted)", len(p.Inventory))
		}
	})

	t.Run("defense stat rewrites max health", func(t *testing.T) {
		p := players.NewPlayer("0xabc")
		p.Inventory = append(p.Inventory, players.Item{
			ID: "b1", Category: players.CategoryBody, Stats: players.Stats{Defense: 25},
		})

		if _, _, err := m.Equip(p, "b1"); err != nil {
			t.Fatalf("equip: %v", err)
		}
		if p.MaxHP != 125 {
			t.Errorf("maxHp = %d, want 125", p.MaxHP)
		}
		if p.HP != 100 {
			t.Errorf("hp = %d, want unchanged 100", p.HP)
		}
	})

	t.Run("lower defense clamps current health", func(t *testing.T) {
		p := players.NewPlayer("0xabc")
		p.MaxHP = 140
		p.HP = 140
		p.Inventory = append(p.Inventory, players.Item{
			ID: "b2", Category: players.CategoryBody, Stats: players.Stats{Defense: 10},
		})

		if _, _, err := m.Equip(p, "b2"); err != nil {
			t.Fatalf("equip: %v", err)
		}
		if p.MaxHP != 110 {
			t.Errorf("maxHp = %d, want 110", p.MaxHP)
		}
		if p.HP != 110 {
			t.Errorf("hp = %d, want clamped to 110", p.HP)
		}
	})
}

func TestCraft(t *testing.T) {
	t.Run("unknown recipe", func(t *testing.T) {
		m := testManager(t)
		p := players.NewPlayer("0xabc")
		_, err := m.Craft(p, "fusion-core")
		if err != catalog.ErrRecipeNotFound {
			t.Errorf("expected ErrRecipeNotFound, got %v", err)
		}
	})

	t.Run("shortfall mutates nothing and names the material", func(t *testing.T) {
		m := testManager(t)
		p := players.NewPlayer("0xabc")
		p.Inventory = append(p.Inventory,
			material("m1", "scrap-metal"),
			material("m2", "scrap-metal"),
			material("m3", "leather-strap"),
		)

		_, err := m.Craft(p, "scrap-blade")
		var shortfall *ShortfallError
		if !errors.As(err, &shortfall) {
			t.Fatalf("expected ShortfallError, got %v", err)
		}
		if shortfall.DefID != "scrap-metal" || shortfall.Required != 3 || shortfall.Have != 2 {
			t.Errorf("unexpected shortfall detail: %+v", shortfall)
		}
		if len(p.Inventory) != 3 {
			t.Errorf("inventory mutated on failed craft: %d items", len(p.Inventory))
		}
	})

	t.Run("success consumes exact counts and appends one item", func(t *testing.T) {
		m := testManager(t)
		p := players.NewPlayer("0xabc")
		p.Inventory = append(p.Inventory,
			material("m1", "scrap-metal"),
			material("m2", "scrap-metal"),
			material("m3", "leather-strap"),
			material("m4", "scrap-metal"),
			material("m5", "scrap-metal"), // surplus, must survive
		)

		crafted, err := m.Craft(p, "scrap-blade")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 5 items - 4 consumed + 1 crafted
		if len(p.Inventory) != 2 {
			t.Fatalf("inventory length = %d, want 2", len(p.Inventory))
		}

		scrapLeft := 0
		for _, item := range p.Inventory {
			if item.DefID == "scrap-metal" {
				scrapLeft++
			}
		}
		if scrapLeft != 1 {
			t.Errorf("scrap-metal remaining = %d, want 1", scrapLeft)
		}

		if crafted.DefID != "scrap-blade" || crafted.Source != "crafting" {
			t.Errorf("unexpected crafted item: %+v", crafted)
		}
		if crafted.Stats.Attack != 14 {
			t.Errorf("crafted attack = %d, want 14", crafted.Stats.Attack)
		}
		if crafted.CreatedAt.IsZero() {
			t.Error("crafted item missing creation timestamp")
		}

		last := p.Inventory[len(p.Inventory)-1]
		if last.ID != crafted.ID {
			t.Error("crafted item not appended to inventory")
		}
	})
}

func TestMaterialize(t *testing.T) {
	m := testManager(t)
	entry := &catalog.RewardEntry{
		ID: "plasma-cutter", Name: "Plasma Cutter",
		Category: players.CategoryWeapon, Rarity: players.RarityRare,
		Stats: players.Stats{Attack: 32},
	}

	item := m.Materialize(entry, "rusted-depot")
	if item.DefID != "plasma-cutter" || item.Source != "rusted-depot" {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.ID == "" {
		t.Error("expected a fresh instance id")
	}
	if item.Stats.Attack != 32 {
		t.Errorf("attack = %d, want 32", item.Stats.Attack)
	}
}
