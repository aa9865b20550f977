package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Validation(t *testing.T) {
	_, err := NewItem(1, 1, 1, nil, 0)
	assert.Error(t, err, "nil template")

	_, err = NewItem(1, 1, 0, swordTemplate, 0)
	assert.Error(t, err, "zero count")

	_, err = NewItem(1, 1, 2, swordTemplate, 0)
	assert.Error(t, err, "non-stackable count above 1")

	item, err := NewItem(1, 1, 200, arrowTemplate, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(200), item.Count())
}

func TestItem_StateTransitions(t *testing.T) {
	item, err := NewItem(1, 1, 1, swordTemplate, 0)
	require.NoError(t, err)
	assert.Equal(t, ItemStateNew, item.State())

	item.MarkChanged()
	assert.Equal(t, ItemStateChanged, item.State())

	item.MarkSaved()
	assert.Equal(t, ItemStateSaved, item.State())
	assert.Equal(t, "Saved", item.State().String())
}

func TestItem_Binding(t *testing.T) {
	item, err := NewItem(1, 1, 1, swordTemplate, 0)
	require.NoError(t, err)
	assert.False(t, item.IsBound())

	item.SetBound(true)
	assert.True(t, item.IsBound())
	item.SetBound(false)
	assert.False(t, item.IsBound())
}

func TestItemTemplate_StackLimit(t *testing.T) {
	assert.Equal(t, int32(1), swordTemplate.StackLimit())
	assert.Equal(t, int32(200), arrowTemplate.StackLimit())

	unlimited := &ItemTemplate{ItemID: 1, Stackable: true}
	assert.Equal(t, int32(math.MaxInt32), unlimited.StackLimit())
}

func TestQuality(t *testing.T) {
	assert.False(t, QualityNone.IsLootable())
	assert.True(t, QualityUncommon.IsLootable())
	assert.True(t, QualityRare.IsLootable())
	assert.True(t, QualityEpic.IsLootable())
	assert.False(t, Quality(0).IsLootable())
	assert.False(t, Quality(5).IsLootable())

	assert.Greater(t, QualityEpic, QualityRare)
	assert.Greater(t, QualityRare, QualityUncommon)
	assert.Greater(t, QualityUncommon, QualityNone)

	assert.Equal(t, "Epic", QualityEpic.String())
	assert.Equal(t, "Unknown", Quality(42).String())
}

// fixedPick always returns the last index.
type fixedPick struct{}

func (fixedPick) IntN(n int) int { return n - 1 }

func TestItemTemplate_RollRandomProperty(t *testing.T) {
	plain := &ItemTemplate{ItemID: 1}
	assert.False(t, plain.HasRandomProperty())
	assert.Zero(t, plain.RollRandomProperty(fixedPick{}))

	affixed := &ItemTemplate{ItemID: 2, RandomPropertyIDs: []int32{5, 6, 7}}
	assert.True(t, affixed.HasRandomProperty())
	assert.Equal(t, int32(7), affixed.RollRandomProperty(fixedPick{}))
}
