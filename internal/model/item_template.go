package model

import "math"

// ItemTemplate — прототип предмета из item_templates.
// Shared read-only after load; concrete Item instances point at it.
type ItemTemplate struct {
	ItemID    int32
	Name      string
	Stackable bool
	MaxStack  int32 // 0 = unlimited for stackable items

	// RandomPropertyIDs is the pool of random affixes the item may roll on creation.
	// Empty means the item never gets a random property.
	RandomPropertyIDs []int32
}

// StackLimit returns how many units of this template fit in a single inventory slot.
func (t *ItemTemplate) StackLimit() int32 {
	if !t.Stackable {
		return 1
	}
	if t.MaxStack <= 0 {
		return math.MaxInt32
	}
	return t.MaxStack
}

// HasRandomProperty reports whether the template rolls a random affix on creation.
func (t *ItemTemplate) HasRandomProperty() bool {
	return len(t.RandomPropertyIDs) > 0
}

// IntNSource is the part of a random generator needed to roll a random property.
type IntNSource interface {
	IntN(n int) int
}

// RollRandomProperty picks a random affix from the template pool (0 if the pool is empty).
func (t *ItemTemplate) RollRandomProperty(rng IntNSource) int32 {
	if !t.HasRandomProperty() {
		return 0
	}
	return t.RandomPropertyIDs[rng.IntN(len(t.RandomPropertyIDs))]
}
