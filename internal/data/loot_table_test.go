package data

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/worldpvp/internal/model"
)

func TestLootTable_LookupMissing(t *testing.T) {
	table := NewTestLootTable(LootRow{ItemID: 300, ItemLevel: 65, Quality: model.QualityEpic})

	assert.Nil(t, table.Lookup(model.QualityEpic, 64))
	assert.Nil(t, table.Lookup(model.QualityRare, 65))
	assert.Nil(t, table.Lookup(model.QualityNone, 65))
	assert.Nil(t, table.Lookup(model.Quality(99), 65))
	assert.Len(t, table.Lookup(model.QualityEpic, 65), 1)
}

func TestLootTable_CountsForNonLootable(t *testing.T) {
	table := NewLootTable()
	assert.Equal(t, 0, table.Count(model.QualityNone))
	assert.Equal(t, 0, table.Buckets(model.QualityNone))
	assert.Nil(t, table.Levels(model.QualityNone))
	assert.False(t, table.add(model.QualityNone, 1, model.LootItem{ItemID: 1}))
}

func TestLootTable_Summary(t *testing.T) {
	table := NewTestLootTable(
		LootRow{ItemID: 100, ItemLevel: 20, Quality: model.QualityUncommon},
		LootRow{ItemID: 101, ItemLevel: 21, Quality: model.QualityUncommon},
		LootRow{ItemID: 300, ItemLevel: 65, Quality: model.QualityEpic},
	)

	assert.Equal(t, []LootSummary{
		{Quality: "Uncommon", Items: 2, Buckets: 2},
		{Quality: "Rare", Items: 0, Buckets: 0},
		{Quality: "Epic", Items: 1, Buckets: 1},
	}, table.Summary())
}

func TestLootTable_ConcurrentLookup(t *testing.T) {
	table := NewTestLootTable(
		LootRow{ItemID: 100, ItemLevel: 20, Quality: model.QualityUncommon},
		LootRow{ItemID: 200, ItemLevel: 40, Quality: model.QualityRare},
	)

	var wg sync.WaitGroup
	for range 32 {
		wg.Go(func() {
			for lvl := range int32(100) {
				_ = table.Lookup(model.QualityUncommon, lvl)
				_ = table.Lookup(model.QualityRare, lvl)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, 1, table.Count(model.QualityRare))
}
