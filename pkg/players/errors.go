package players

import "errors"

var (
	// ErrPlayerNotFound is returned when a wallet has no stored record
	ErrPlayerNotFound = errors.New("player not found")

	// ErrUnknownFaction is returned for a faction outside the fixed set
	ErrUnknownFaction = errors.New("unknown faction")
)
