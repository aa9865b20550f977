package model

import (
	"fmt"
	"sync"
)

// ItemState tracks whether an item still has to be written to the database.
type ItemState int32

const (
	ItemStateNew ItemState = iota
	ItemStateChanged
	ItemStateSaved
)

// String returns human-readable item state name.
func (s ItemState) String() string {
	switch s {
	case ItemStateNew:
		return "New"
	case ItemStateChanged:
		return "Changed"
	case ItemStateSaved:
		return "Saved"
	default:
		return "Unknown"
	}
}

// Item — конкретный экземпляр предмета в инвентаре игрока.
type Item struct {
	objectID         uint32 // Unique ID в world
	ownerID          uint32 // ObjectID владельца
	count            int32
	randomPropertyID int32 // 0 = no random affix
	bound            bool
	state            ItemState

	template *ItemTemplate

	mu sync.RWMutex
}

// NewItem создаёт новый предмет с валидацией.
func NewItem(objectID, ownerID uint32, count int32, template *ItemTemplate, randomPropertyID int32) (*Item, error) {
	if template == nil {
		return nil, fmt.Errorf("template cannot be nil")
	}
	if count <= 0 {
		return nil, fmt.Errorf("count must be > 0, got %d", count)
	}
	if count > template.StackLimit() {
		return nil, fmt.Errorf("count %d exceeds stack limit %d of item %d", count, template.StackLimit(), template.ItemID)
	}

	return &Item{
		objectID:         objectID,
		ownerID:          ownerID,
		count:            count,
		randomPropertyID: randomPropertyID,
		state:            ItemStateNew,
		template:         template,
	}, nil
}

// ObjectID возвращает unique ID в world.
func (i *Item) ObjectID() uint32 {
	return i.objectID
}

// ItemID возвращает template ID.
func (i *Item) ItemID() int32 {
	return i.template.ItemID
}

// Template returns the item prototype.
func (i *Item) Template() *ItemTemplate {
	return i.template
}

// OwnerID возвращает objectID владельца.
func (i *Item) OwnerID() uint32 {
	return i.ownerID
}

// Count returns stack size.
func (i *Item) Count() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.count
}

// addCount grows the stack. Caller (Inventory) checks the stack limit.
func (i *Item) addCount(n int32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.count += n
	if i.state == ItemStateSaved {
		i.state = ItemStateChanged
	}
}

// RandomPropertyID returns the random affix rolled on creation (0 if none).
func (i *Item) RandomPropertyID() int32 {
	return i.randomPropertyID
}

// IsBound reports whether the item is bound to its owner.
func (i *Item) IsBound() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.bound
}

// SetBound sets the soulbound flag.
func (i *Item) SetBound(bound bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.bound = bound
}

// State returns persistence state.
func (i *Item) State() ItemState {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.state
}

// MarkChanged flags the item for the next persistence flush.
func (i *Item) MarkChanged() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.state = ItemStateChanged
}

// MarkSaved is called by the persistence layer after the item was written.
func (i *Item) MarkSaved() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.state = ItemStateSaved
}
