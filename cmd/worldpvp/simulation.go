package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/udisondev/worldpvp/internal/config"
	"github.com/udisondev/worldpvp/internal/game/group"
	"github.com/udisondev/worldpvp/internal/game/worldpvp"
	"github.com/udisondev/worldpvp/internal/killfeed"
	"github.com/udisondev/worldpvp/internal/metrics"
	"github.com/udisondev/worldpvp/internal/model"
	"github.com/udisondev/worldpvp/internal/world"
)

// Simulation — синтетическая популяция игроков и поток PvP kills.
type Simulation struct {
	cfg     config.Simulation
	rng     *rand.Rand // only touched by the constructor and Produce
	groups  *group.Manager
	players []*model.Player
}

// NewSimulation creates players with random levels and forms groups and raids.
func NewSimulation(cfg config.Simulation, ids *world.ObjectIDGenerator, groups *group.Manager) (*Simulation, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := &Simulation{
		cfg:     cfg,
		rng:     worldpvp.NewRand(seed, 0),
		groups:  groups,
		players: make([]*model.Player, 0, cfg.Players),
	}

	notifier := logNotifier{}
	for i := range cfg.Players {
		level := cfg.MinLevel + int32(s.rng.IntN(int(cfg.MaxLevel-cfg.MinLevel+1)))
		objectID := ids.NextPlayerID()
		p, err := model.NewPlayer(objectID, fmt.Sprintf("Player%d", i+1), level, model.NewInventory(objectID, cfg.BagSlots, ids))
		if err != nil {
			return nil, fmt.Errorf("creating player %d: %w", i+1, err)
		}
		p.SetItemNotifier(notifier)
		s.players = append(s.players, p)
	}

	if err := s.formGroups(); err != nil {
		return nil, err
	}

	slog.Info("simulation population ready",
		"players", len(s.players),
		"groups", groups.Count(),
		"raids", groups.RaidCount(),
		"seed", seed)
	return s, nil
}

// formGroups walks the population once: every ungrouped player founds a group
// with GroupChance and recruits following ungrouped players.
func (s *Simulation) formGroups() error {
	for i, leader := range s.players {
		if leader.Group() != nil || s.rng.Float64() >= s.cfg.GroupChance {
			continue
		}

		g, err := s.groups.CreateGroup(leader)
		if err != nil {
			return fmt.Errorf("forming group: %w", err)
		}

		size := model.MaxGroupSize
		if s.rng.Float64() < s.cfg.RaidChance {
			if err := s.groups.ConvertToRaid(g.ID()); err != nil {
				return fmt.Errorf("forming raid: %w", err)
			}
			size = model.MaxGroupSize + s.rng.IntN(model.MaxRaidSize-model.MaxGroupSize+1)
		}
		want := 2 + s.rng.IntN(size-1)

		for _, p := range s.players[i+1:] {
			if g.MemberCount() >= want {
				break
			}
			if p.Group() != nil {
				continue
			}
			if err := s.groups.Join(g.ID(), p); err != nil {
				return fmt.Errorf("forming group: %w", err)
			}
		}

		if g.MemberCount() < 2 {
			s.groups.Leave(leader)
		}
	}
	return nil
}

// Players returns the simulated population.
func (s *Simulation) Players() []*model.Player {
	return s.players
}

// Items returns all items held by the population.
func (s *Simulation) Items() []*model.Item {
	var items []*model.Item
	for _, p := range s.players {
		items = append(items, p.Inventory().Items()...)
	}
	return items
}

// Produce sends cfg.Kills random kill events and closes events.
func (s *Simulation) Produce(ctx context.Context, events chan<- killfeed.KillEvent) error {
	defer close(events)

	if len(s.players) < 2 {
		return nil
	}

	for range s.cfg.Kills {
		ai := s.rng.IntN(len(s.players))
		vi := s.rng.IntN(len(s.players) - 1)
		if vi >= ai {
			vi++
		}
		attacker, victim := s.players[ai], s.players[vi]

		select {
		case <-ctx.Done():
			return ctx.Err()
		case events <- killfeed.NewKillEvent(attacker, victim, attacker.Group()):
		}
	}
	return nil
}

// logNotifier stands in for the client connection.
type logNotifier struct{}

func (logNotifier) NotifyNewItem(player *model.Player, item *model.Item, count int32) {
	slog.Debug("player received item",
		"player", player.Name(),
		"itemID", item.ItemID(),
		"objectID", item.ObjectID(),
		"count", count)
}

// Summary aggregates kill outcomes across dispatcher workers.
type Summary struct {
	mu     sync.Mutex
	kills  int
	xp     int64
	money  int64
	items  map[model.Quality]int
	misses map[string]int
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{
		items:  make(map[model.Quality]int),
		misses: make(map[string]int),
	}
}

// Observe is a killfeed.Observer.
func (s *Summary) Observe(_ int, _ killfeed.KillEvent, res worldpvp.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kills++
	s.xp += res.XP
	s.money += res.Money
	if res.ItemGranted() {
		s.items[res.Quality]++
		return
	}
	s.misses[metrics.MissReason(res.ItemErr)]++
}

// Kills returns the number of observed kills.
func (s *Summary) Kills() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kills
}

// Items returns the count of granted items of quality q.
func (s *Summary) Items(q model.Quality) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[q]
}

// Misses returns the count of kills without an item for reason.
func (s *Summary) Misses(reason string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.misses[reason]
}

// Log writes the run summary.
func (s *Summary) Log(d *killfeed.Dispatcher) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slog.Info("world PvP simulation finished",
		"kills", s.kills,
		"rejected", d.Failed(),
		"seed", d.Seed(),
		"xp", s.xp,
		"money", s.money,
		"uncommon", s.items[model.QualityUncommon],
		"rare", s.items[model.QualityRare],
		"epic", s.items[model.QualityEpic],
		"noQuality", s.misses[metrics.ReasonNoQuality],
		"notFound", s.misses[metrics.ReasonNotFound],
		"missingTemplate", s.misses[metrics.ReasonMissingTemplate],
		"inventoryFull", s.misses[metrics.ReasonInventoryFull])
}
