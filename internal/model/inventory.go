package model

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultBagSlots is the backpack size of a fresh character.
const DefaultBagSlots = 16

// ErrInventoryFull is returned when not a single unit of an item fits.
var ErrInventoryFull = errors.New("inventory full")

// ObjectIDSource allocates world object IDs for newly created items.
// world.ObjectIDGenerator satisfies it.
type ObjectIDSource interface {
	NextItemID() uint32
}

// Inventory — хранилище предметов персонажа.
// Slot based: every item (or stack) occupies one slot.
// Thread-safe: all methods acquire internal mutex.
type Inventory struct {
	ownerID uint32
	slots   int
	ids     ObjectIDSource

	items map[uint32]*Item // objectID → Item
	order []uint32         // objectIDs in insertion order

	mu sync.RWMutex
}

// NewInventory создаёт новый инвентарь с заданным числом слотов.
func NewInventory(ownerID uint32, slots int, ids ObjectIDSource) *Inventory {
	if slots < 0 {
		slots = 0
	}
	return &Inventory{
		ownerID: ownerID,
		slots:   slots,
		ids:     ids,
		items:   make(map[uint32]*Item, slots),
		order:   make([]uint32, 0, slots),
	}
}

// OwnerID возвращает objectID владельца.
func (inv *Inventory) OwnerID() uint32 {
	return inv.ownerID
}

// Slots returns total slot count.
func (inv *Inventory) Slots() int {
	return inv.slots
}

// FreeSlots returns the number of empty slots.
func (inv *Inventory) FreeSlots() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.slots - len(inv.items)
}

// Count returns the number of occupied slots.
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}

// GetItem возвращает предмет по objectID (nil если нет).
func (inv *Inventory) GetItem(objectID uint32) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.items[objectID]
}

// Items returns a snapshot of stored items in insertion order.
func (inv *Inventory) Items() []*Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	result := make([]*Item, 0, len(inv.order))
	for _, id := range inv.order {
		result = append(result, inv.items[id])
	}
	return result
}

// CountOf returns the total number of units of itemID across all stacks.
func (inv *Inventory) CountOf(itemID int32) int32 {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	var total int32
	for _, it := range inv.items {
		if it.ItemID() == itemID {
			total += it.Count()
		}
	}
	return total
}

// CanStore reports whether at least one unit of tmpl fits and how many of count would not.
func (inv *Inventory) CanStore(tmpl *ItemTemplate, count int32) (ok bool, shortfall int32) {
	if tmpl == nil || count <= 0 {
		return false, max(count, 0)
	}

	inv.mu.RLock()
	capacity := inv.capacityLocked(tmpl, 0)
	inv.mu.RUnlock()

	fit := min(int64(count), capacity)
	return fit > 0, count - int32(fit)
}

// StoreNewItem creates count units of tmpl, merging into compatible stacks first.
// Stores as many units as fit and returns the item that received the last unit
// together with the stored amount. Returns ErrInventoryFull if nothing fits.
func (inv *Inventory) StoreNewItem(tmpl *ItemTemplate, count, randomPropertyID int32) (*Item, int32, error) {
	if tmpl == nil {
		return nil, 0, fmt.Errorf("template cannot be nil")
	}
	if count <= 0 {
		return nil, 0, fmt.Errorf("count must be > 0, got %d", count)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.capacityLocked(tmpl, randomPropertyID) == 0 {
		return nil, 0, fmt.Errorf("store item %d: %w", tmpl.ItemID, ErrInventoryFull)
	}

	limit := tmpl.StackLimit()
	remaining := count
	var last *Item

	if tmpl.Stackable {
		for _, id := range inv.order {
			if remaining == 0 {
				break
			}
			it := inv.items[id]
			if !stacksWith(it, tmpl, randomPropertyID) {
				continue
			}
			room := limit - it.Count()
			if room <= 0 {
				continue
			}
			n := min(room, remaining)
			it.addCount(n)
			remaining -= n
			last = it
		}
	}

	for remaining > 0 && len(inv.items) < inv.slots {
		n := min(limit, remaining)
		it, err := NewItem(inv.ids.NextItemID(), inv.ownerID, n, tmpl, randomPropertyID)
		if err != nil {
			return last, count - remaining, fmt.Errorf("create item %d: %w", tmpl.ItemID, err)
		}
		inv.items[it.ObjectID()] = it
		inv.order = append(inv.order, it.ObjectID())
		remaining -= n
		last = it
	}

	return last, count - remaining, nil
}

// RemoveItem удаляет предмет из инвентаря. Returns removed item or nil.
func (inv *Inventory) RemoveItem(objectID uint32) *Item {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	it, ok := inv.items[objectID]
	if !ok {
		return nil
	}
	delete(inv.items, objectID)
	for i, id := range inv.order {
		if id == objectID {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	return it
}

// capacityLocked returns how many units of tmpl still fit. Caller holds inv.mu.
func (inv *Inventory) capacityLocked(tmpl *ItemTemplate, randomPropertyID int32) int64 {
	limit := int64(tmpl.StackLimit())
	var capacity int64

	if tmpl.Stackable {
		for _, it := range inv.items {
			if stacksWith(it, tmpl, randomPropertyID) {
				capacity += limit - int64(it.Count())
			}
		}
	}

	free := inv.slots - len(inv.items)
	if free > 0 {
		capacity += int64(free) * limit
	}
	return capacity
}

func stacksWith(it *Item, tmpl *ItemTemplate, randomPropertyID int32) bool {
	return it.ItemID() == tmpl.ItemID && it.RandomPropertyID() == randomPropertyID
}
