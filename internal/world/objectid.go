package world

import "sync/atomic"

// ID ranges (convention):
//
//	0x10000000 - 0x1FFFFFFF: Players
//	0x30000000 - 0x3FFFFFFF: Items
const (
	playerIDBase uint32 = 0x10000000
	itemIDBase   uint32 = 0x30000000
)

// ObjectIDGenerator generates unique object IDs for players and items.
// Thread-safe via atomic increment.
type ObjectIDGenerator struct {
	nextPlayerID atomic.Uint32
	nextItemID   atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(playerIDBase)
	gen.nextItemID.Store(itemIDBase)
	return gen
}

// NextPlayerID generates next unique player object ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextItemID generates next unique item object ID.
func (g *ObjectIDGenerator) NextItemID() uint32 {
	return g.nextItemID.Add(1)
}

var globalIDGenerator = NewObjectIDGenerator()

// IDGenerator returns global object ID generator.
func IDGenerator() *ObjectIDGenerator {
	return globalIDGenerator
}

// IsPlayerObjectID returns true if objectID is in Player range.
func IsPlayerObjectID(objectID uint32) bool {
	return objectID > playerIDBase && objectID < playerIDBase+0x10000000
}

// IsItemObjectID returns true if objectID is in Item range.
func IsItemObjectID(objectID uint32) bool {
	return objectID > itemIDBase && objectID < itemIDBase+0x10000000
}
