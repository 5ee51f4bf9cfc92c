// Package claims sequences the full claim workflow: cooldown gating,
// geofence validation, reward resolution and external settlement, all as a
// single mutation of the player record under its wallet lock.
package claims

import (
	"context"
	"time"

	"github.com/scrapline/claimd/pkg/catalog"
	"github.com/scrapline/claimd/pkg/encounters"
	"github.com/scrapline/claimd/pkg/events"
	"github.com/scrapline/claimd/pkg/geo"
	"github.com/scrapline/claimd/pkg/inventory"
	"github.com/scrapline/claimd/pkg/logging"
	"github.com/scrapline/claimd/pkg/loot"
	"github.com/scrapline/claimd/pkg/players"
	"github.com/scrapline/claimd/pkg/progression"
	"github.com/scrapline/claimd/pkg/settlement"
)

const (
	baseCaps   = 12
	rareCaps   = 24
	legendCaps = 60
	xpPerClaim = 18
)

// Config tunes the orchestrator
type Config struct {
	// Cooldown is the minimum elapsed time between claims per wallet
	Cooldown time.Duration
	// SettleTimeout bounds each external settlement call
	SettleTimeout time.Duration
}

// Orchestrator runs claim, craft and equip operations
type Orchestrator struct {
	repo      *players.Repository
	catalog   *catalog.Catalog
	inv       *inventory.Manager
	roller    *loot.Roller
	resolver  *encounters.Resolver
	schedule  *events.Schedule
	minter    settlement.Minter
	tokens    settlement.TokenMinter
	cooldown  time.Duration
	settleTTL time.Duration
	now       func() time.Time
}

// New creates an Orchestrator over the player repository, static catalog
// and settlement collaborators.
func New(repo *players.Repository, cat *catalog.Catalog, minter settlement.Minter, tokens settlement.TokenMinter, cfg Config) *Orchestrator {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 5 * time.Minute
	}
	if cfg.SettleTimeout <= 0 {
		cfg.SettleTimeout = 5 * time.Second
	}
	return &Orchestrator{
		repo:      repo,
		catalog:   cat,
		inv:       inventory.NewManager(cat),
		roller:    loot.NewRoller(),
		resolver:  encounters.NewResolver(),
		schedule:  events.NewSchedule(),
		minter:    minter,
		tokens:    tokens,
		cooldown:  cfg.Cooldown,
		settleTTL: cfg.SettleTimeout,
		now:       time.Now,
	}
}

// Cooldown returns the configured claim cooldown
func (o *Orchestrator) Cooldown() time.Duration {
	return o.cooldown
}

// Claim runs the claim workflow for a wallet at a location. A nil coord
// skips geofence validation. eventName optionally names the active world
// event the claim happens under.
//
// Failure branches before the commit point (cooldown, geofence, unknown
// location) mutate nothing. Once the last-claim timestamp is committed the
// claim has happened: settlement failure is recorded in the result, never
// rolled back.
func (o *Orchestrator) Claim(ctx context.Context, wallet, locationID string, coord *geo.Coordinate, eventName string) (*Result, error) {
	loc, err := o.catalog.Location(locationID)
	if err != nil {
		return nil, err
	}

	var result *Result
	err = o.repo.Update(wallet, func(p *players.Player) error {
		now := o.now()

		// Cooldown gate
		if elapsed := now.Sub(p.LastClaim); elapsed < o.cooldown {
			return &CooldownError{Remaining: o.cooldown - elapsed}
		}

		// Geofence gate
		if coord != nil {
			check := geo.Check(*coord, geo.Coordinate{Lat: loc.Lat, Lng: loc.Lng}, loc.RadiusM)
			if !check.Within {
				return &OutOfRangeError{DistanceM: check.DistanceM, RadiusM: check.RadiusM}
			}
		}

		// Commit point: from here the claim has happened for this
		// cooldown window no matter what the rest of the pipeline does.
		p.LastClaim = now

		result = o.resolveRewards(ctx, p, loc, eventName, now)
		return nil
	})
	if err != nil {
		logging.Ops.LogOp("CLAIM", wallet, "denied", "location", locationID, "reason", err)
		return nil, err
	}

	logging.Ops.LogOp("CLAIM", wallet, "success",
		"location", locationID, "caps", result.CapsEarned, "leveled", result.LeveledUp)
	return result, nil
}

// resolveRewards performs loot, encounter, event and ledger resolution plus
// settlement. Runs after the commit point, so it only ever adds to the
// record passed in.
func (o *Orchestrator) resolveRewards(ctx context.Context, p *players.Player, loc *catalog.Location, eventName string, now time.Time) *Result {
	result := &Result{
		Location:        loc.Name,
		XPEarned:        xpPerClaim,
		CooldownExpires: now.Add(o.cooldown),
	}

	caps := baseCaps

	if entry := o.roller.Roll(loc.Rewards, p); entry != nil {
		item := o.inv.Materialize(entry, loc.ID)

		switch entry.Rarity {
		case players.RarityRare:
			caps += rareCaps
		case players.RarityLegendary:
			caps += legendCaps
		}

		if o.tokens != nil {
			tokenCtx, cancel := context.WithTimeout(ctx, o.settleTTL)
			tokenID, ok, err := o.tokens.MintLootToken(tokenCtx, p.Wallet, item)
			cancel()
			if err != nil {
				logging.App.Warn("Loot token mint failed", "wallet", p.Wallet, "item", item.ID, "error", err)
			} else if ok {
				item.TokenID = tokenID
			}
		}

		p.Inventory = append(p.Inventory, item)
		result.Loot = &item
	}

	result.Encounter = o.resolver.Resolve(p)

	if ev, ok := o.schedule.Lookup(eventName); ok {
		result.Event = ev.Name
		caps += ev.CapsBonus
		if ev.HealthRisk > 0 {
			p.HP -= ev.HealthRisk
			p.ClampHP()
		}
	}

	result.CapsEarned = caps
	result.LeveledUp = progression.Grant(p, caps, xpPerClaim)

	result.Settlement = o.settle(ctx, p.Wallet, caps)
	result.Player = summarize(p)
	return result
}

// settle attempts the external mint under a bounded context. Local state is
// already committed, so errors become advisory fields only.
func (o *Orchestrator) settle(ctx context.Context, wallet string, amount int) Settlement {
	s := Settlement{Amount: amount}

	settleCtx, cancel := context.WithTimeout(ctx, o.settleTTL)
	defer cancel()

	tx, err := o.minter.MintCaps(settleCtx, wallet, amount)
	if err != nil {
		if settleCtx.Err() == context.DeadlineExceeded {
			s.Error = "settlement-timeout: " + err.Error()
		} else {
			s.Error = err.Error()
		}
		logging.Ops.LogMint(wallet, amount, "failed", "error", err)
		return s
	}
	s.TransactionID = tx
	logging.Ops.LogMint(wallet, amount, "success", "tx", tx)
	return s
}

// Equip equips an inventory item under the wallet's lock
func (o *Orchestrator) Equip(wallet, itemID string) (*EquipResult, error) {
	var result *EquipResult
	err := o.repo.Update(wallet, func(p *players.Player) error {
		item, slot, err := o.inv.Equip(p, itemID)
		if err != nil {
			return err
		}
		result = &EquipResult{Item: item, Slot: slot, Player: summarize(p)}
		return nil
	})
	if err != nil {
		logging.Ops.LogOp("EQUIP", wallet, "denied", "item", itemID, "reason", err)
		return nil, err
	}

	logging.Ops.LogOp("EQUIP", wallet, "success", "item", itemID, "slot", result.Slot)
	return result, nil
}

// Craft crafts a recipe under the wallet's lock
func (o *Orchestrator) Craft(wallet, recipeID string) (*CraftResult, error) {
	var result *CraftResult
	err := o.repo.Update(wallet, func(p *players.Player) error {
		item, err := o.inv.Craft(p, recipeID)
		if err != nil {
			return err
		}
		result = &CraftResult{Item: item, Player: summarize(p)}
		return nil
	})
	if err != nil {
		logging.Ops.LogOp("CRAFT", wallet, "denied", "recipe", recipeID, "reason", err)
		return nil, err
	}

	logging.Ops.LogOp("CRAFT", wallet, "success", "recipe", recipeID, "item", result.Item.ID)
	return result, nil
}
