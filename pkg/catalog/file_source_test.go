package catalog

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/scrapline/claimd/pkg/players"
)

const testCatalogYAML = `
locations:
  - id: rusted-depot
    name: Rusted Depot
    lat: 37.7749
    lng: -122.4194
    radius_m: 150
    rewards:
      - id: scrap-metal
        name: Scrap Metal
        category: material
        weight: 60
        rarity: common
      - id: plasma-cutter
        name: Plasma Cutter
        category: weapon
        weight: 5
        rarity: rare
        stats:
          attack: 32
recipes:
  - id: scrap-blade
    name: Scrap Blade
    category: weapon
    rarity: uncommon
    stats:
      attack: 14
    inputs:
      scrap-metal: 3
`

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/data/catalog.yaml", []byte(testCatalogYAML), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	c, err := LoadFile(fs, "/data/catalog.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	loc, err := c.Location("rusted-depot")
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc.Name != "Rusted Depot" || loc.RadiusM != 150 {
		t.Errorf("unexpected location: %+v", loc)
	}
	if len(loc.Rewards) != 2 {
		t.Fatalf("expected 2 rewards, got %d", len(loc.Rewards))
	}
	if loc.Rewards[1].Stats.Attack != 32 {
		t.Errorf("expected attack 32, got %d", loc.Rewards[1].Stats.Attack)
	}

	rec, err := c.Recipe("scrap-blade")
	if err != nil {
		t.Fatalf("Recipe: %v", err)
	}
	if rec.Inputs["scrap-metal"] != 3 {
		t.Errorf("expected 3x scrap-metal input, got %+v", rec.Inputs)
	}

	if _, err := c.Location("nowhere"); err != ErrLocationNotFound {
		t.Errorf("expected ErrLocationNotFound, got %v", err)
	}
	if _, err := c.Recipe("nothing"); err != ErrRecipeNotFound {
		t.Errorf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := LoadFile(fs, "/data/absent.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCatalogValidation(t *testing.T) {
	cases := []struct {
		name      string
		locations []Location
		recipes   []Recipe
		wantErr   string
	}{
		{
			name: "non-positive weight",
			locations: []Location{{
				ID: "x", RadiusM: 50,
				Rewards: []RewardEntry{{ID: "r", Category: players.CategoryMaterial, Weight: 0, Rarity: players.RarityCommon}},
			}},
			wantErr: "weight must be positive",
		},
		{
			name: "unknown rarity",
			locations: []Location{{
				ID: "x", RadiusM: 50,
				Rewards: []RewardEntry{{ID: "r", Category: players.CategoryMaterial, Weight: 1, Rarity: "mythic"}},
			}},
			wantErr: "unknown rarity",
		},
		{
			name:      "zero radius",
			locations: []Location{{ID: "x", RadiusM: 0}},
			wantErr:   "radius must be positive",
		},
		{
			name:    "recipe without inputs",
			recipes: []Recipe{{ID: "r", Category: players.CategoryWeapon, Rarity: players.RarityCommon}},
			wantErr: "no inputs",
		},
		{
			name: "duplicate location id",
			locations: []Location{
				{ID: "x", RadiusM: 10},
				{ID: "x", RadiusM: 10},
			},
			wantErr: "duplicate location",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.locations, tc.recipes)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}
