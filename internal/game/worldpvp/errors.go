package worldpvp

import "errors"

var (
	// ErrInvalidInput: nil attacker, victim or random source.
	ErrInvalidInput = errors.New("world PvP: invalid kill input")

	// ErrNoQuality: the quality roll produced no item this kill.
	ErrNoQuality = errors.New("world PvP: no reward quality rolled")

	// ErrInvalidQuality: item search requested for a quality without a loot table.
	ErrInvalidQuality = errors.New("world PvP: quality has no loot table")

	// ErrRewardNotFound: search exhausted all attempts without a non-empty bucket.
	ErrRewardNotFound = errors.New("world PvP: no reward found")

	// ErrMissingTemplate: loot entry points at an unknown item template.
	ErrMissingTemplate = errors.New("world PvP: item template missing")

	// ErrInventoryFull: attacker has no room for the reward.
	ErrInventoryFull = errors.New("world PvP: no inventory space")

	// ErrStoreFailed: inventory refused to create the item after the capacity check passed.
	ErrStoreFailed = errors.New("world PvP: failed to store reward")
)
