package catalog

import (
	"fmt"

	"github.com/scrapline/claimd/pkg/players"
)

// Catalog holds the static game content: locations with their reward tables
// and the crafting recipe set. Immutable after construction.
type Catalog struct {
	locations map[string]*Location
	recipes   map[string]*Recipe
	order     []string // location ids in load order
}

// New validates the content and builds a Catalog from it
func New(locations []Location, recipes []Recipe) (*Catalog, error) {
	c := &Catalog{
		locations: make(map[string]*Location, len(locations)),
		recipes:   make(map[string]*Recipe, len(recipes)),
	}

	for i := range locations {
		loc := locations[i]
		if err := validateLocation(&loc); err != nil {
			return nil, err
		}
		if _, dup := c.locations[loc.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %q", loc.ID)
		}
		c.locations[loc.ID] = &loc
		c.order = append(c.order, loc.ID)
	}

	for i := range recipes {
		rec := recipes[i]
		if err := validateRecipe(&rec); err != nil {
			return nil, err
		}
		if _, dup := c.recipes[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %q", rec.ID)
		}
		c.recipes[rec.ID] = &rec
	}

	return c, nil
}

// Location returns the location with the given id
func (c *Catalog) Location(id string) (*Location, error) {
	loc, ok := c.locations[id]
	if !ok {
		return nil, ErrLocationNotFound
	}
	return loc, nil
}

// Recipe returns the recipe with the given id
func (c *Catalog) Recipe(id string) (*Recipe, error) {
	rec, ok := c.recipes[id]
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return rec, nil
}

// Locations returns all locations in load order
func (c *Catalog) Locations() []*Location {
	out := make([]*Location, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.locations[id])
	}
	return out
}

func validateLocation(loc *Location) error {
	if loc.ID == "" {
		return fmt.Errorf("location with empty id")
	}
	if loc.RadiusM <= 0 {
		return fmt.Errorf("location %q: radius must be positive, got %v", loc.ID, loc.RadiusM)
	}
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return fmt.Errorf("location %q: coordinate out of range (%v, %v)", loc.ID, loc.Lat, loc.Lng)
	}
	for i := range loc.Rewards {
		e := &loc.Rewards[i]
		if e.ID == "" {
			return fmt.Errorf("location %q: reward[%d] has empty id", loc.ID, i)
		}
		if e.Weight <= 0 {
			return fmt.Errorf("location %q: reward %q weight must be positive, got %v", loc.ID, e.ID, e.Weight)
		}
		if !validCategory(e.Category) {
			return fmt.Errorf("location %q: reward %q has unknown category %q", loc.ID, e.ID, e.Category)
		}
		if !validRarity(e.Rarity) {
			return fmt.Errorf("location %q: reward %q has unknown rarity %q", loc.ID, e.ID, e.Rarity)
		}
	}
	return nil
}

func validateRecipe(rec *Recipe) error {
	if rec.ID == "" {
		return fmt.Errorf("recipe with empty id")
	}
	if !validCategory(rec.Category) {
		return fmt.Errorf("recipe %q: unknown category %q", rec.ID, rec.Category)
	}
	if !validRarity(rec.Rarity) {
		return fmt.Errorf("recipe %q: unknown rarity %q", rec.ID, rec.Rarity)
	}
	if len(rec.Inputs) == 0 {
		return fmt.Errorf("recipe %q: no inputs", rec.ID)
	}
	for defID, qty := range rec.Inputs {
		if qty <= 0 {
			return fmt.Errorf("recipe %q: input %q quantity must be positive, got %d", rec.ID, defID, qty)
		}
	}
	return nil
}

func validCategory(c players.Category) bool {
	switch c {
	case players.CategoryMaterial, players.CategoryConsumable, players.CategoryWeapon,
		players.CategoryHead, players.CategoryBody, players.CategoryAccessory, players.CategoryArtifact:
		return true
	}
	return false
}

func validRarity(r players.Rarity) bool {
	switch r {
	case players.RarityCommon, players.RarityUncommon, players.RarityRare, players.RarityLegendary:
		return true
	}
	return false
}
