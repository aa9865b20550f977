package model

import (
	"fmt"
	"sync"
)

const (
	// MaxGroupSize is the maximum size of a regular group (leader + 4 members).
	MaxGroupSize = 5
	// MaxRaidSize is the maximum size of a raid group.
	MaxRaidSize = 40
)

// Group represents players cooperating together; either a regular group or a raid.
// Thread-safe: all methods acquire internal mutex.
type Group struct {
	mu      sync.RWMutex
	id      int32
	leader  *Player
	members []*Player // leader всегда первый элемент
	raid    bool
}

// NewGroup creates a regular group with the given leader as first member.
func NewGroup(id int32, leader *Player) *Group {
	g := &Group{
		id:      id,
		leader:  leader,
		members: make([]*Player, 0, MaxGroupSize),
	}
	g.members = append(g.members, leader)
	return g
}

// ID returns immutable group ID.
func (g *Group) ID() int32 {
	return g.id
}

// Leader returns current group leader.
func (g *Group) Leader() *Player {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.leader
}

// IsRaid reports whether the group was converted to a raid.
func (g *Group) IsRaid() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.raid
}

// ConvertToRaid turns a regular group into a raid. Irreversible.
func (g *Group) ConvertToRaid() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.raid = true
}

// MaxMembers returns the member cap for the current group type.
func (g *Group) MaxMembers() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.maxMembersLocked()
}

func (g *Group) maxMembersLocked() int {
	if g.raid {
		return MaxRaidSize
	}
	return MaxGroupSize
}

// Members returns a snapshot copy of group members slice.
// Safe to iterate without holding the lock.
func (g *Group) Members() []*Player {
	g.mu.RLock()
	defer g.mu.RUnlock()
	result := make([]*Player, len(g.members))
	copy(result, g.members)
	return result
}

// MemberCount returns the number of members in group.
func (g *Group) MemberCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.members)
}

// IsMember checks if a player with given objectID is in this group.
func (g *Group) IsMember(objectID uint32) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, m := range g.members {
		if m.ObjectID() == objectID {
			return true
		}
	}
	return false
}

// AddMember adds a player to the group.
// Returns error if group is full or player is already a member.
func (g *Group) AddMember(player *Player) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if limit := g.maxMembersLocked(); len(g.members) >= limit {
		return fmt.Errorf("group full (max %d members)", limit)
	}

	for _, m := range g.members {
		if m.ObjectID() == player.ObjectID() {
			return fmt.Errorf("player %s already in group", player.Name())
		}
	}

	g.members = append(g.members, player)
	return nil
}

// RemoveMember removes a player from the group by objectID.
// If the leader leaves, the next member becomes leader.
// Returns true if the group should be disbanded (fewer than 2 members remaining).
func (g *Group) RemoveMember(objectID uint32) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := -1
	for i, m := range g.members {
		if m.ObjectID() == objectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	g.members = append(g.members[:idx], g.members[idx+1:]...)

	// Лидер ушел -- передаем лидерство следующему
	if g.leader.ObjectID() == objectID && len(g.members) > 0 {
		g.leader = g.members[0]
	}

	return len(g.members) < 2
}
