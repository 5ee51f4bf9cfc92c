package settlement

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapline/claimd/pkg/players"
)

// SimulatedMinter bypasses the chain service entirely and always succeeds
// with synthetic identifiers. Used in simulation mode and in tests.
type SimulatedMinter struct{}

// NewSimulatedMinter creates a SimulatedMinter
func NewSimulatedMinter() *SimulatedMinter {
	return &SimulatedMinter{}
}

// MintCaps implements Minter
func (m *SimulatedMinter) MintCaps(ctx context.Context, wallet string, amount int) (string, error) {
	return "sim-" + uuid.NewString(), nil
}

// MintLootToken implements TokenMinter
func (m *SimulatedMinter) MintLootToken(ctx context.Context, wallet string, item players.Item) (string, bool, error) {
	if !qualifiesForToken(item.Rarity) {
		return "", false, nil
	}
	return "simtok-" + uuid.NewString(), true, nil
}
