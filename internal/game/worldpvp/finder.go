package worldpvp

import (
	"fmt"

	"github.com/udisondev/worldpvp/internal/config"
	"github.com/udisondev/worldpvp/internal/model"
)

// LootLookup is read-only access to the loot table. data.LootTable satisfies it.
type LootLookup interface {
	Lookup(q model.Quality, itemLevel int32) []model.LootItem
}

// Window is an inclusive item level range searched for a reward.
type Window struct {
	Min int32
	Max int32
}

// Contains reports whether itemLevel lies within the window.
func (w Window) Contains(itemLevel int32) bool {
	return itemLevel >= w.Min && itemLevel <= w.Max
}

// RewardFinder picks a concrete item for a quality and player level.
//
// Search window:
//   - level == max level and quality above Uncommon: [60, 92]
//   - level < 10: [level, level+10]
//   - otherwise: [level, level+5]
//
// Every attempt draws an independent bucket from the window; the first non-empty
// bucket wins and one of its items is picked uniformly.
type RewardFinder struct {
	table       LootLookup
	cfg         config.Rewards
	maxAttempts int
}

// NewRewardFinder creates a finder over table with window rules from cfg.
func NewRewardFinder(table LootLookup, cfg config.Rewards) *RewardFinder {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultRewards().MaxAttempts
	}
	return &RewardFinder{
		table:       table,
		cfg:         cfg,
		maxAttempts: maxAttempts,
	}
}

// MaxAttempts returns the search bound.
func (f *RewardFinder) MaxAttempts() int {
	return f.maxAttempts
}

// Window returns the item level range searched for (level, q).
func (f *RewardFinder) Window(level int32, q model.Quality) Window {
	switch {
	case level == f.cfg.MaxLevel && q > model.QualityUncommon:
		return Window{Min: f.cfg.MaxLevelWindowMin, Max: f.cfg.MaxLevelWindowMax}
	case level < f.cfg.LowLevelThreshold:
		return Window{Min: level, Max: level + f.cfg.LowLevelSpread}
	default:
		return Window{Min: level, Max: level + f.cfg.LevelSpread}
	}
}

// Find searches for an item of quality q suitable for level.
// Returns the item ID and the number of attempts used.
// Exhausting all attempts returns ErrRewardNotFound — an expected outcome for sparse tables.
func (f *RewardFinder) Find(rng Rand, q model.Quality, level int32) (int32, int, error) {
	if !q.IsLootable() {
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalidQuality, q)
	}

	w := f.Window(level, q)
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		bucket := int32(urand(rng, int(w.Min), int(w.Max)))
		items := f.table.Lookup(q, bucket)
		if len(items) == 0 {
			continue
		}
		return items[rng.IntN(len(items))].ItemID, attempt, nil
	}

	return 0, f.maxAttempts, ErrRewardNotFound
}
