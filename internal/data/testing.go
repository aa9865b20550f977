package data

import "github.com/udisondev/worldpvp/internal/model"

// NewTestLootTable builds a LootTable directly from rows, skipping validation.
// Intended for tests from other packages that need loot data setup.
func NewTestLootTable(rows ...LootRow) *LootTable {
	t := NewLootTable()
	for _, r := range rows {
		t.add(r.Quality, r.ItemLevel, model.LootItem{ItemID: r.ItemID, Name: r.Name})
	}
	return t
}
