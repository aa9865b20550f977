package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/worldpvp/internal/data"
	"github.com/udisondev/worldpvp/internal/model"
)

func TestLootRepository_ForEachLootRow(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewLootRepository(pool)

	require.NoError(t, repo.InsertRows(ctx, []data.LootRow{
		{ItemID: 100, ItemLevel: 20, Quality: model.QualityUncommon, Name: "Green Blade"},
		{ItemID: 200, ItemLevel: 40, Quality: model.QualityRare, Name: "Blue Ring"},
		{ItemID: 101, ItemLevel: 21, Quality: model.QualityUncommon, Name: "Green Helm"},
	}))

	var got []data.LootRow
	err := repo.ForEachLootRow(ctx, model.QualityUncommon, func(r data.LootRow) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, int32(100), got[0].ItemID)
	assert.Equal(t, int32(20), got[0].ItemLevel)
	assert.Equal(t, model.QualityUncommon, got[0].Quality)
	assert.Equal(t, "Green Blade", got[0].Name)
	assert.Equal(t, int32(101), got[1].ItemID)
	assert.Less(t, got[0].ID, got[1].ID)
}

func TestLootRepository_StopsOnCallbackError(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewLootRepository(pool)

	require.NoError(t, repo.InsertRows(ctx, []data.LootRow{
		{ItemID: 300, ItemLevel: 60, Quality: model.QualityEpic},
		{ItemID: 301, ItemLevel: 61, Quality: model.QualityEpic},
	}))

	calls := 0
	err := repo.ForEachLootRow(ctx, model.QualityEpic, func(data.LootRow) error {
		calls++
		return data.ErrInvalidLootRow
	})

	require.ErrorIs(t, err, data.ErrInvalidLootRow)
	assert.Equal(t, 1, calls)
}

func TestLootRepository_LoadLootTable(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewLootRepository(pool)

	require.NoError(t, repo.InsertRows(ctx, []data.LootRow{
		{ItemID: 100, ItemLevel: 20, Quality: model.QualityUncommon},
		{ItemID: 101, ItemLevel: 20, Quality: model.QualityUncommon},
		{ItemID: 300, ItemLevel: 65, Quality: model.QualityEpic},
	}))

	table, err := data.LoadLootTable(ctx, repo)
	require.NoError(t, err)

	assert.Len(t, table.Lookup(model.QualityUncommon, 20), 2)
	assert.Equal(t, 1, table.Count(model.QualityEpic))
	assert.Zero(t, table.Count(model.QualityRare))
}

func TestLootRepository_CheckConstraint(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewLootRepository(pool)

	err := repo.InsertRows(context.Background(), []data.LootRow{
		{ItemID: 1, ItemLevel: 1, Quality: model.QualityNone},
	})
	assert.Error(t, err)
}
