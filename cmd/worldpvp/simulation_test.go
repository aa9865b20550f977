package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/worldpvp/internal/config"
	"github.com/udisondev/worldpvp/internal/data"
	"github.com/udisondev/worldpvp/internal/game/group"
	"github.com/udisondev/worldpvp/internal/game/worldpvp"
	"github.com/udisondev/worldpvp/internal/killfeed"
	"github.com/udisondev/worldpvp/internal/metrics"
	"github.com/udisondev/worldpvp/internal/model"
	"github.com/udisondev/worldpvp/internal/world"
)

func testSimulationConfig() config.Simulation {
	cfg := config.DefaultWorldPvP().Simulation
	cfg.Kills = 500
	cfg.Players = 60
	cfg.Seed = 12345
	return cfg
}

func TestNewSimulation_Population(t *testing.T) {
	cfg := testSimulationConfig()
	groups := group.NewManager()

	sim, err := NewSimulation(cfg, world.IDGenerator(), groups)
	require.NoError(t, err)

	require.Len(t, sim.Players(), cfg.Players)
	for _, p := range sim.Players() {
		assert.GreaterOrEqual(t, p.Level(), cfg.MinLevel)
		assert.LessOrEqual(t, p.Level(), cfg.MaxLevel)
		assert.Equal(t, cfg.BagSlots, p.Inventory().Slots())

		if g := p.Group(); g != nil {
			assert.True(t, g.IsMember(p.ObjectID()))
			assert.GreaterOrEqual(t, g.MemberCount(), 2)
			assert.LessOrEqual(t, g.MemberCount(), g.MaxMembers())
		}
	}
}

func TestNewSimulation_NoGroups(t *testing.T) {
	cfg := testSimulationConfig()
	cfg.GroupChance = 0
	groups := group.NewManager()

	sim, err := NewSimulation(cfg, world.IDGenerator(), groups)
	require.NoError(t, err)

	assert.Zero(t, groups.Count())
	for _, p := range sim.Players() {
		assert.Nil(t, p.Group())
	}
}

func TestSimulation_Produce(t *testing.T) {
	cfg := testSimulationConfig()
	sim, err := NewSimulation(cfg, world.IDGenerator(), group.NewManager())
	require.NoError(t, err)

	events := make(chan killfeed.KillEvent, cfg.Kills)
	require.NoError(t, sim.Produce(context.Background(), events))

	n := 0
	for ev := range events {
		n++
		assert.NotSame(t, ev.Attacker, ev.Victim)
		assert.Equal(t, ev.Attacker.Group(), ev.Group)
	}
	assert.Equal(t, cfg.Kills, n)
}

func TestSimulation_ProduceCancelled(t *testing.T) {
	sim, err := NewSimulation(testSimulationConfig(), world.IDGenerator(), group.NewManager())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = sim.Produce(ctx, make(chan killfeed.KillEvent))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulation_EndToEnd(t *testing.T) {
	cfg := testSimulationConfig()
	sim, err := NewSimulation(cfg, world.IDGenerator(), group.NewManager())
	require.NoError(t, err)

	templates, rows := demoItems()
	manager := worldpvp.NewManager(config.DefaultRewards(), config.DefaultGroups(),
		data.NewTestLootTable(rows...), data.NewItemTable(templates))

	summary := NewSummary()
	d := killfeed.NewDispatcher(config.Workers{Count: 4, Seed: 1}, manager, killfeed.WithObserver(summary.Observe))

	events := make(chan killfeed.KillEvent, 64)
	go func() { _ = sim.Produce(context.Background(), events) }()
	require.NoError(t, d.Run(context.Background(), events))

	assert.Equal(t, cfg.Kills, summary.Kills())
	assert.Positive(t, summary.Items(model.QualityUncommon))
	assert.Positive(t, summary.Misses(metrics.ReasonNoQuality))

	var kills int32
	for _, p := range sim.Players() {
		kills += p.PvPKills()
	}
	assert.Equal(t, int32(cfg.Kills), kills)

	granted := 0
	for _, q := range model.LootableQualities {
		granted += summary.Items(q)
	}
	assert.Len(t, sim.Items(), granted)
}

func TestDemoItems(t *testing.T) {
	templates, rows := demoItems()
	require.Len(t, templates, len(rows))

	table := data.NewTestLootTable(rows...)
	items := data.NewItemTable(templates)
	for _, r := range rows {
		_, ok := items.ItemTemplate(r.ItemID)
		assert.True(t, ok, "loot row %d has no template", r.ItemID)
	}
	assert.Equal(t, 65, table.Count(model.QualityUncommon))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("warn").String())
	assert.Equal(t, "INFO", parseLogLevel("bogus").String())
}
