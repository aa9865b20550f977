package worldpvp

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/worldpvp/internal/config"
	"github.com/udisondev/worldpvp/internal/model"
)

// rewardCount — world PvP always grants a single unit.
const rewardCount int32 = 1

// TemplateResolver resolves item prototypes. data.ItemTable satisfies it.
type TemplateResolver interface {
	ItemTemplate(itemID int32) (*model.ItemTemplate, bool)
}

// Result describes the rewards granted for one kill.
type Result struct {
	XP    int64
	Money int64

	Quality   model.Quality
	ItemID    int32 // 0 if no entry was found
	Item      *model.Item
	Attempts  int
	Shortfall int32

	// ItemErr explains why no item was granted (nil when Item != nil).
	ItemErr error
}

// ItemGranted reports whether an item landed in the attacker's inventory.
func (r Result) ItemGranted() bool {
	return r.Item != nil
}

// Option configures a Manager.
type Option func(*Manager)

// WithRecorder attaches a kill outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) {
		if r != nil {
			m.recorder = r
		}
	}
}

// Manager coordinates world PvP kill rewards: item, experience and money.
// Holds only immutable state; safe for concurrent use as long as every caller
// supplies its own Rand.
type Manager struct {
	selector  QualitySelector
	finder    *RewardFinder
	formula   Formula
	templates TemplateResolver
	recorder  Recorder
}

// NewManager creates a kill reward coordinator.
func NewManager(rewards config.Rewards, groups config.Groups, table LootLookup, templates TemplateResolver, opts ...Option) *Manager {
	m := &Manager{
		selector:  NewQualitySelector(rewards.QualityWeights),
		finder:    NewRewardFinder(table, rewards),
		formula:   NewFormula(rewards, groups),
		templates: templates,
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Finder returns the underlying reward finder.
func (m *Manager) Finder() *RewardFinder {
	return m.finder
}

// Formula returns the XP/money arithmetic.
func (m *Manager) Formula() Formula {
	return m.formula
}

// HandlePlayerKill grants attacker the rewards for killing victim.
// group is the attacker's group at kill time (nil if solo).
//
// Item, experience and money are independent: failing to grant an item never
// blocks XP or money. The returned error is non-nil only for invalid input,
// in which case nothing is granted.
func (m *Manager) HandlePlayerKill(rng Rand, attacker, victim *model.Player, group *model.Group) (Result, error) {
	if attacker == nil || victim == nil || rng == nil {
		slog.Error("world PvP kill rejected",
			"attackerNil", attacker == nil,
			"victimNil", victim == nil,
			"rngNil", rng == nil)
		m.recorder.RecordRejected()
		return Result{}, ErrInvalidInput
	}

	var res Result
	res.ItemErr = m.grantItem(rng, attacker, &res)

	res.XP = m.formula.Experience(rng, attacker.Level())
	attacker.AddKillExperience(res.XP, victim)

	memberCount, raid := 0, false
	if group != nil {
		memberCount = CountMembers(group, attacker)
		raid = group.IsRaid()
	}
	res.Money = m.formula.Money(victim.Level(), memberCount, raid)
	if res.Money > 0 {
		attacker.AddMoney(res.Money)
	}

	attacker.RecordPvPKill(victim)
	m.recorder.RecordKill(res)

	slog.Debug("world PvP kill rewarded",
		"attacker", attacker.Name(),
		"victim", victim.Name(),
		"xp", res.XP,
		"money", res.Money,
		"quality", res.Quality,
		"itemID", res.ItemID,
		"itemGranted", res.ItemGranted())

	return res, nil
}

// grantItem rolls quality, finds an entry and stores it in attacker's inventory.
func (m *Manager) grantItem(rng Rand, attacker *model.Player, res *Result) error {
	q := m.selector.Draw(rng)
	res.Quality = q
	if q == model.QualityNone {
		return ErrNoQuality
	}

	level := attacker.Level()
	itemID, attempts, err := m.finder.Find(rng, q, level)
	res.Attempts = attempts
	if err != nil {
		slog.Debug("world PvP reward not found",
			"player", attacker.Name(),
			"level", level,
			"quality", q,
			"attempts", attempts)
		return err
	}
	res.ItemID = itemID

	tmpl, ok := m.templates.ItemTemplate(itemID)
	if !ok {
		slog.Error("world PvP reward references unknown item template",
			"itemID", itemID,
			"quality", q)
		return fmt.Errorf("item %d: %w", itemID, ErrMissingTemplate)
	}

	inv := attacker.Inventory()
	canStore, shortfall := inv.CanStore(tmpl, rewardCount)
	if !canStore {
		slog.Debug("world PvP reward dropped: inventory full",
			"player", attacker.Name(),
			"itemID", itemID)
		return ErrInventoryFull
	}

	item, stored, err := inv.StoreNewItem(tmpl, rewardCount, tmpl.RollRandomProperty(rng))
	if err != nil {
		slog.Error("failed to store world PvP reward",
			"player", attacker.Name(),
			"itemID", itemID,
			"error", err)
		if errors.Is(err, model.ErrInventoryFull) {
			return fmt.Errorf("%w: %w", ErrInventoryFull, err)
		}
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}
	if item == nil {
		return ErrStoreFailed
	}

	item.SetBound(false)
	item.MarkChanged()
	attacker.NotifyNewItem(item, stored)

	res.Item = item
	res.Shortfall = max(shortfall, rewardCount-stored)
	if res.Shortfall > 0 {
		slog.Debug("world PvP reward stored partially",
			"player", attacker.Name(),
			"itemID", itemID,
			"shortfall", res.Shortfall)
	}
	return nil
}
