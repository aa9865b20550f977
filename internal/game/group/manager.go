package group

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/udisondev/worldpvp/internal/model"
)

var (
	// ErrGroupNotFound — no active group with the requested ID.
	ErrGroupNotFound = errors.New("group not found")
	// ErrAlreadyGrouped — player is already a member of some group.
	ErrAlreadyGrouped = errors.New("player already in a group")
)

// Manager manages all active groups and raids.
// Thread-safe: uses RWMutex for group map and atomic for ID generation.
type Manager struct {
	mu     sync.RWMutex
	groups map[int32]*model.Group
	nextID atomic.Int32
}

// NewManager creates a new group manager.
func NewManager() *Manager {
	return &Manager{
		groups: make(map[int32]*model.Group),
	}
}

// CreateGroup creates a regular group led by leader and attaches it to the leader.
func (m *Manager) CreateGroup(leader *model.Player) (*model.Group, error) {
	if leader.Group() != nil {
		return nil, fmt.Errorf("create group for %s: %w", leader.Name(), ErrAlreadyGrouped)
	}

	id := m.nextID.Add(1)
	g := model.NewGroup(id, leader)
	leader.SetGroup(g)

	m.mu.Lock()
	m.groups[id] = g
	m.mu.Unlock()

	return g, nil
}

// Join adds player to group groupID.
func (m *Manager) Join(groupID int32, player *model.Player) error {
	g := m.Group(groupID)
	if g == nil {
		return fmt.Errorf("join group %d: %w", groupID, ErrGroupNotFound)
	}
	if player.Group() != nil {
		return fmt.Errorf("join group %d: %w", groupID, ErrAlreadyGrouped)
	}

	if err := g.AddMember(player); err != nil {
		return fmt.Errorf("join group %d: %w", groupID, err)
	}
	player.SetGroup(g)
	return nil
}

// Leave removes player from its group. The group is disbanded when fewer than
// two members remain. No-op for solo players.
func (m *Manager) Leave(player *model.Player) {
	g := player.Group()
	if g == nil {
		return
	}

	player.SetGroup(nil)
	if g.RemoveMember(player.ObjectID()) {
		m.Disband(g.ID())
	}
}

// ConvertToRaid turns group groupID into a raid.
func (m *Manager) ConvertToRaid(groupID int32) error {
	g := m.Group(groupID)
	if g == nil {
		return fmt.Errorf("convert group %d: %w", groupID, ErrGroupNotFound)
	}
	g.ConvertToRaid()
	return nil
}

// Disband removes a group by ID and detaches all remaining members.
func (m *Manager) Disband(groupID int32) {
	m.mu.Lock()
	g, ok := m.groups[groupID]
	delete(m.groups, groupID)
	m.mu.Unlock()

	if !ok {
		return
	}
	for _, member := range g.Members() {
		if member.Group() == g {
			member.SetGroup(nil)
		}
	}
}

// Group returns a group by ID, or nil if not found.
func (m *Manager) Group(groupID int32) *model.Group {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.groups[groupID]
}

// Count returns the number of active groups.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.groups)
}

// RaidCount returns the number of active raids.
func (m *Manager) RaidCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, g := range m.groups {
		if g.IsRaid() {
			n++
		}
	}
	return n
}
