package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/scrapline/claimd/pkg/catalog"
	"github.com/scrapline/claimd/pkg/claims"
	"github.com/scrapline/claimd/pkg/geo"
	"github.com/scrapline/claimd/pkg/inventory"
	"github.com/scrapline/claimd/pkg/logging"
	"github.com/scrapline/claimd/pkg/players"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.App.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error       string   `json:"error"`
	RemainingMs int64    `json:"remainingMs,omitempty"`
	DistanceM   *float64 `json:"distanceM,omitempty"`
	RadiusM     *float64 `json:"radiusM,omitempty"`
}

// writeError maps the engine's error taxonomy onto HTTP statuses
func writeError(w http.ResponseWriter, err error) {
	var cooldown *claims.CooldownError
	var outOfRange *claims.OutOfRangeError
	var shortfall *inventory.ShortfallError

	switch {
	case errors.As(err, &cooldown):
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error:       err.Error(),
			RemainingMs: cooldown.Remaining.Milliseconds(),
		})
	case errors.As(err, &outOfRange):
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error:     err.Error(),
			DistanceM: &outOfRange.DistanceM,
			RadiusM:   &outOfRange.RadiusM,
		})
	case errors.Is(err, catalog.ErrLocationNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrRecipeNotFound),
		errors.Is(err, inventory.ErrItemNotFound),
		errors.Is(err, inventory.ErrNotEquippable),
		errors.Is(err, players.ErrUnknownFaction),
		errors.As(err, &shortfall):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logging.App.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, into interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		badRequest(w, "invalid request body")
		return false
	}
	return true
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	p, err := s.repo.GetOrCreate(r.PathValue("wallet"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	p, err := s.repo.GetOrCreate(r.PathValue("wallet"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"wallet": p.Wallet,
		"caps":   p.Caps,
	})
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	p, err := s.repo.GetOrCreate(r.PathValue("wallet"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"inventory": p.Inventory,
		"gear":      p.Gear,
	})
}

func (s *Server) handleFactions(w http.ResponseWriter, r *http.Request) {
	p, err := s.repo.GetOrCreate(r.PathValue("wallet"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.Factions)
}

type factionAdjustRequest struct {
	Wallet  string `json:"wallet"`
	Faction string `json:"faction"`
	Delta   int    `json:"delta"`
}

func (s *Server) handleFactionAdjust(w http.ResponseWriter, r *http.Request) {
	var req factionAdjustRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Wallet == "" || req.Faction == "" {
		badRequest(w, "wallet and faction are required")
		return
	}

	p, err := s.repo.AdjustFaction(req.Wallet, req.Faction, req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.Factions)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	active, next := s.schedule.Active()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"active":    active,
		"nextCheck": next.Format(time.RFC3339),
	})
}

type equipRequest struct {
	Wallet string `json:"wallet"`
	ItemID string `json:"itemId"`
}

func (s *Server) handleEquip(w http.ResponseWriter, r *http.Request) {
	var req equipRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Wallet == "" || req.ItemID == "" {
		badRequest(w, "wallet and itemId are required")
		return
	}

	result, err := s.orch.Equip(req.Wallet, req.ItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type craftRequest struct {
	Wallet   string `json:"wallet"`
	RecipeID string `json:"recipeId"`
}

func (s *Server) handleCraft(w http.ResponseWriter, r *http.Request) {
	var req craftRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Wallet == "" || req.RecipeID == "" {
		badRequest(w, "wallet and recipeId are required")
		return
	}

	result, err := s.orch.Craft(req.Wallet, req.RecipeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type claimRequest struct {
	Wallet     string   `json:"wallet"`
	LocationID string   `json:"locationId"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	EventName  string   `json:"eventName"`
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Wallet == "" || req.LocationID == "" {
		badRequest(w, "wallet and locationId are required")
		return
	}

	// Coordinate is optional but must be complete when present
	var coord *geo.Coordinate
	if req.Lat != nil || req.Lng != nil {
		if req.Lat == nil || req.Lng == nil {
			badRequest(w, "lat and lng must be supplied together")
			return
		}
		coord = &geo.Coordinate{Lat: *req.Lat, Lng: *req.Lng}
	}

	result, err := s.orch.Claim(r.Context(), req.Wallet, req.LocationID, coord, req.EventName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
