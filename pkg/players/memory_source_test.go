package players

import "testing"

func TestMemorySource(t *testing.T) {
	source := NewMemorySource()

	t.Run("load non-existent player", func(t *testing.T) {
		_, err := source.LoadPlayer("0xmissing")
		if err != ErrPlayerNotFound {
			t.Errorf("expected ErrPlayerNotFound, got %v", err)
		}
	})

	t.Run("save and load player", func(t *testing.T) {
		p := NewPlayer("0xabc")
		p.Caps = 42
		p.Factions[FactionRaiders] = 7
		if err := source.SavePlayer(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		loaded, err := source.LoadPlayer("0xabc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loaded.Caps != 42 {
			t.Errorf("expected caps 42, got %d", loaded.Caps)
		}
		if loaded.Factions[FactionRaiders] != 7 {
			t.Errorf("expected raiders rep 7, got %d", loaded.Factions[FactionRaiders])
		}
	})

	t.Run("stored record does not alias caller", func(t *testing.T) {
		p := NewPlayer("0xalias")
		if err := source.SavePlayer(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p.Caps = 999

		loaded, err := source.LoadPlayer("0xalias")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loaded.Caps != 0 {
			t.Errorf("mutation through caller pointer leaked into store: caps=%d", loaded.Caps)
		}
	})

	t.Run("remove player", func(t *testing.T) {
		source.RemovePlayer("0xabc")

		_, err := source.LoadPlayer("0xabc")
		if err != ErrPlayerNotFound {
			t.Errorf("expected ErrPlayerNotFound after removal, got %v", err)
		}
	})
}

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer("0xnew")

	if p.Level != 1 {
		t.Errorf("expected level 1, got %d", p.Level)
	}
	if p.HP != 100 || p.MaxHP != 100 {
		t.Errorf("expected 100/100 hp, got %d/%d", p.HP, p.MaxHP)
	}
	if len(p.Inventory) != 0 {
		t.Errorf("expected empty inventory, got %d items", len(p.Inventory))
	}
	for _, f := range Factions {
		if p.Factions[f] != 0 {
			t.Errorf("expected zero rep for %s, got %d", f, p.Factions[f])
		}
	}
	if !p.LastClaim.IsZero() {
		t.Error("expected zero last-claim timestamp")
	}
}

func TestSlotFor(t *testing.T) {
	cases := []struct {
		category  Category
		slot      Slot
		equipable bool
	}{
		{CategoryWeapon, SlotWeapon, true},
		{CategoryHead, SlotHead, true},
		{CategoryBody, SlotBody, true},
		{CategoryAccessory, SlotAccessory, true},
		{CategoryMaterial, "", false},
		{CategoryConsumable, "", false},
		{CategoryArtifact, "", false},
	}

	for _, tc := range cases {
		slot, ok := SlotFor(tc.category)
		if ok != tc.equipable {
			t.Errorf("SlotFor(%s) equipable = %v, want %v", tc.category, ok, tc.equipable)
		}
		if slot != tc.slot {
			t.Errorf("SlotFor(%s) = %q, want %q", tc.category, slot, tc.slot)
		}
	}
}
