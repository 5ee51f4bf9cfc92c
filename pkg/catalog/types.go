package catalog

import "github.com/scrapline/claimd/pkg/players"

// RewardEntry is one weighted entry in a location's reward table.
type RewardEntry struct {
	ID       string           `yaml:"id" json:"id"`
	Name     string           `yaml:"name" json:"name"`
	Category players.Category `yaml:"category" json:"category"`
	Weight   float64          `yaml:"weight" json:"weight"`
	Rarity   players.Rarity   `yaml:"rarity" json:"rarity"`
	Stats    players.Stats    `yaml:"stats" json:"stats"`
}

// Location is a claimable point of interest. Immutable after load.
type Location struct {
	ID      string        `yaml:"id" json:"id"`
	Name    string        `yaml:"name" json:"name"`
	Lat     float64       `yaml:"lat" json:"lat"`
	Lng     float64       `yaml:"lng" json:"lng"`
	RadiusM float64       `yaml:"radius_m" json:"radiusM"`
	Rewards []RewardEntry `yaml:"rewards" json:"rewards"`
}

// Recipe describes a craftable item: the output template plus required input
// counts keyed by material definition id.
type Recipe struct {
	ID       string           `yaml:"id" json:"id"`
	Name     string           `yaml:"name" json:"name"`
	Category players.Category `yaml:"category" json:"category"`
	Rarity   players.Rarity   `yaml:"rarity" json:"rarity"`
	Stats    players.Stats    `yaml:"stats" json:"stats"`
	Inputs   map[string]int   `yaml:"inputs" json:"inputs"`
}
