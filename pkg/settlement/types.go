// Package settlement records earned rewards on the external chain service.
// Local progression never depends on it succeeding; failures are surfaced
// to the caller as advisory state for later reconciliation.
package settlement

import (
	"context"
	"errors"

	"github.com/scrapline/claimd/pkg/players"
)

// Minter settles a caps reward on the external system of record
type Minter interface {
	// MintCaps mints amount caps for the wallet and returns a transaction id
	MintCaps(ctx context.Context, wallet string, amount int) (string, error)
}

// TokenMinter mints a representational token for qualifying loot. It
// returns ok=false (and no error) for rarities below rare.
type TokenMinter interface {
	MintLootToken(ctx context.Context, wallet string, item players.Item) (tokenID string, ok bool, err error)
}

var (
	// ErrMintRejected is returned when the chain service answered with an
	// explicit error body
	ErrMintRejected = errors.New("mint rejected by chain service")
)

// qualifiesForToken reports whether an item's rarity earns a loot token
func qualifiesForToken(r players.Rarity) bool {
	return r == players.RarityRare || r == players.RarityLegendary
}
