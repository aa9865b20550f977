package model

import (
	"fmt"
	"sync"
)

const (
	// MaxPlayerLevel is the level cap.
	MaxPlayerLevel = 60
	// MaxMoney is the copper cap of a character purse.
	MaxMoney int64 = 0x7FFFFFFF
)

// ItemNotifier delivers "you receive item" notifications to the player's client.
type ItemNotifier interface {
	NotifyNewItem(player *Player, item *Item, count int32)
}

// Player — игровой персонаж, участник world PvP.
type Player struct {
	objectID uint32
	name     string

	level      int32
	experience int64
	money      int64

	// PvP State
	pvpKills     int32
	lastVictimID uint32

	inventory *Inventory
	group     *Group
	notifier  ItemNotifier

	mu sync.RWMutex
}

// NewPlayer создаёт нового игрока с валидацией.
func NewPlayer(objectID uint32, name string, level int32, inventory *Inventory) (*Player, error) {
	if len(name) < 2 {
		return nil, fmt.Errorf("name must be at least 2 characters, got %q", name)
	}
	if level < 1 || level > MaxPlayerLevel {
		return nil, fmt.Errorf("level must be between 1 and %d, got %d", MaxPlayerLevel, level)
	}
	if inventory == nil {
		return nil, fmt.Errorf("inventory cannot be nil")
	}

	return &Player{
		objectID:  objectID,
		name:      name,
		level:     level,
		inventory: inventory,
	}, nil
}

// ObjectID возвращает unique ID в world (immutable).
func (p *Player) ObjectID() uint32 {
	return p.objectID
}

// Name возвращает имя персонажа (immutable).
func (p *Player) Name() string {
	return p.name
}

// Level возвращает уровень персонажа.
func (p *Player) Level() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// SetLevel устанавливает уровень с валидацией.
func (p *Player) SetLevel(level int32) error {
	if level < 1 || level > MaxPlayerLevel {
		return fmt.Errorf("level must be between 1 and %d, got %d", MaxPlayerLevel, level)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
	return nil
}

// Experience возвращает текущий опыт.
func (p *Player) Experience() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.experience
}

// AddKillExperience grants experience for killing victim.
// victim is kept as kill context for the client message; nil is accepted.
func (p *Player) AddKillExperience(exp int64, victim *Player) {
	if exp <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.experience += exp
	if victim != nil {
		p.lastVictimID = victim.ObjectID()
	}
}

// Money returns the purse in copper.
func (p *Player) Money() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.money
}

// AddMoney changes the purse by amount, clamped to [0, MaxMoney].
func (p *Player) AddMoney(amount int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.money += amount
	if p.money < 0 {
		p.money = 0
	}
	if p.money > MaxMoney {
		p.money = MaxMoney
	}
}

// PvPKills returns the player's PvP kill count.
func (p *Player) PvPKills() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pvpKills
}

// RecordPvPKill increments the PvP kill counter.
func (p *Player) RecordPvPKill(victim *Player) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pvpKills++
	if victim != nil {
		p.lastVictimID = victim.ObjectID()
	}
}

// LastVictimID returns objectID of the last player killed (0 if none).
func (p *Player) LastVictimID() uint32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastVictimID
}

// Inventory возвращает инвентарь игрока.
func (p *Player) Inventory() *Inventory {
	return p.inventory
}

// Group returns current group membership (nil if solo).
func (p *Player) Group() *Group {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.group
}

// SetGroup sets current group membership. Pass nil to leave.
func (p *Player) SetGroup(g *Group) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.group = g
}

// SetItemNotifier attaches the client notification sink.
func (p *Player) SetItemNotifier(n ItemNotifier) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifier = n
}

// NotifyNewItem tells the client about a received item. No-op without a notifier.
func (p *Player) NotifyNewItem(item *Item, count int32) {
	p.mu.RLock()
	n := p.notifier
	p.mu.RUnlock()

	if n != nil {
		n.NotifyNewItem(p, item, count)
	}
}
