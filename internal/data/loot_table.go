package data

import (
	"slices"

	"github.com/udisondev/worldpvp/internal/model"
)

// LootTable — world PvP loot registry: for each lootable quality,
// item level bucket → candidate items.
//
// Populated once by LoadLootTable during startup and read-only afterwards,
// so Lookup is safe for concurrent use without locking.
type LootTable struct {
	buckets [len(model.LootableQualities)]map[int32][]model.LootItem
}

// LootSummary is a per-quality diagnostics snapshot.
type LootSummary struct {
	Quality string `json:"quality"`
	Items   int    `json:"items"`
	Buckets int    `json:"buckets"`
}

// NewLootTable returns an empty table.
func NewLootTable() *LootTable {
	t := &LootTable{}
	for i := range t.buckets {
		t.buckets[i] = make(map[int32][]model.LootItem)
	}
	return t
}

func qualityIndex(q model.Quality) (int, bool) {
	if !q.IsLootable() {
		return 0, false
	}
	return int(q - model.QualityUncommon), true
}

// add appends item to bucket. Load-time only.
func (t *LootTable) add(q model.Quality, itemLevel int32, item model.LootItem) bool {
	idx, ok := qualityIndex(q)
	if !ok {
		return false
	}
	t.buckets[idx][itemLevel] = append(t.buckets[idx][itemLevel], item)
	return true
}

// Lookup returns candidates for the given quality and item level bucket.
// Returns nil if the quality has no table or the bucket is absent.
// The returned slice must not be modified.
func (t *LootTable) Lookup(q model.Quality, itemLevel int32) []model.LootItem {
	idx, ok := qualityIndex(q)
	if !ok {
		return nil
	}
	return t.buckets[idx][itemLevel]
}

// Count returns total number of items loaded for quality q.
func (t *LootTable) Count(q model.Quality) int {
	idx, ok := qualityIndex(q)
	if !ok {
		return 0
	}
	total := 0
	for _, items := range t.buckets[idx] {
		total += len(items)
	}
	return total
}

// Buckets returns number of non-empty item level buckets for quality q.
func (t *LootTable) Buckets(q model.Quality) int {
	idx, ok := qualityIndex(q)
	if !ok {
		return 0
	}
	return len(t.buckets[idx])
}

// Levels returns sorted item levels present for quality q.
func (t *LootTable) Levels(q model.Quality) []int32 {
	idx, ok := qualityIndex(q)
	if !ok {
		return nil
	}
	levels := make([]int32, 0, len(t.buckets[idx]))
	for lvl := range t.buckets[idx] {
		levels = append(levels, lvl)
	}
	slices.Sort(levels)
	return levels
}

// Summary returns per-quality counts, most common quality first.
func (t *LootTable) Summary() []LootSummary {
	out := make([]LootSummary, 0, len(model.LootableQualities))
	for _, q := range model.LootableQualities {
		out = append(out, LootSummary{
			Quality: q.String(),
			Items:   t.Count(q),
			Buckets: t.Buckets(q),
		})
	}
	return out
}
