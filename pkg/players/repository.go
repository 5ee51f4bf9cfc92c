package players

import (
	"sync"

	"github.com/scrapline/claimd/pkg/logging"
)

// Repository provides keyed access to player records with per-wallet mutual
// exclusion. No two mutations for the same wallet may interleave their
// read-modify-write sequence; different wallets proceed in parallel.
type Repository struct {
	source Source

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRepository creates a new Repository over a backing source
func NewRepository(source Source) *Repository {
	return &Repository{
		source: source,
		locks:  make(map[string]*sync.Mutex),
	}
}

// walletLock returns the mutex for a wallet, creating it on first use
func (r *Repository) walletLock(wallet string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[wallet]
	if !ok {
		l = &sync.Mutex{}
		r.locks[wallet] = l
	}
	return l
}

// GetOrCreate returns the record for a wallet, lazily creating a default
// record on first reference.
func (r *Repository) GetOrCreate(wallet string) (*Player, error) {
	l := r.walletLock(wallet)
	l.Lock()
	defer l.Unlock()

	return r.loadOrCreateLocked(wallet)
}

// Update runs fn against the wallet's record under its lock and persists the
// record if fn returns nil. The record passed to fn is created lazily if it
// does not exist yet. An error from fn aborts the save and is returned as is.
func (r *Repository) Update(wallet string, fn func(*Player) error) error {
	l := r.walletLock(wallet)
	l.Lock()
	defer l.Unlock()

	p, err := r.loadOrCreateLocked(wallet)
	if err != nil {
		return err
	}

	if err := fn(p); err != nil {
		return err
	}

	if err := r.source.SavePlayer(p); err != nil {
		logging.App.Error("Failed to persist player record", "wallet", wallet, "error", err)
		return err
	}
	return nil
}

func (r *Repository) loadOrCreateLocked(wallet string) (*Player, error) {
	p, err := r.source.LoadPlayer(wallet)
	if err == ErrPlayerNotFound {
		p = NewPlayer(wallet)
		if err := r.source.SavePlayer(p); err != nil {
			return nil, err
		}
		logging.App.Debug("Created player record", "wallet", wallet)
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// AdjustFaction applies a reputation delta for a wallet. Returns
// ErrUnknownFaction for a faction outside the fixed set.
func (r *Repository) AdjustFaction(wallet, faction string, delta int) (*Player, error) {
	if !ValidFaction(faction) {
		return nil, ErrUnknownFaction
	}

	var snapshot *Player
	err := r.Update(wallet, func(p *Player) error {
		p.Factions[faction] += delta
		snapshot = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
