package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/worldpvp/internal/data"
	"github.com/udisondev/worldpvp/internal/db"
	"github.com/udisondev/worldpvp/internal/model"
)

// demoTier describes how densely a quality fills the level range.
type demoTier struct {
	quality  model.Quality
	minLevel int32
	maxLevel int32
	step     int32
	noun     string
}

var demoTiers = []demoTier{
	{model.QualityUncommon, 1, 65, 1, "Blade"},
	{model.QualityRare, 5, 70, 2, "Ring"},
	{model.QualityEpic, 20, 92, 3, "Mantle"},
}

// demoRandomProperties is the affix pool of rare and epic demo items.
var demoRandomProperties = []int32{5, 6, 7, 8}

// demoItems builds item templates and matching loot rows.
func demoItems() ([]*model.ItemTemplate, []data.LootRow) {
	var templates []*model.ItemTemplate
	var rows []data.LootRow

	for _, tier := range demoTiers {
		for lvl := tier.minLevel; lvl <= tier.maxLevel; lvl += tier.step {
			itemID := 10000 + int32(tier.quality)*1000 + lvl
			name := fmt.Sprintf("%s %s %d", tier.quality, tier.noun, lvl)

			t := &model.ItemTemplate{ItemID: itemID, Name: name, MaxStack: 1}
			if tier.quality > model.QualityUncommon {
				t.RandomPropertyIDs = demoRandomProperties
			}
			templates = append(templates, t)
			rows = append(rows, data.LootRow{ItemID: itemID, ItemLevel: lvl, Quality: tier.quality, Name: name})
		}
	}
	return templates, rows
}

// seedDemoData fills an empty database with demo templates and loot rows.
func seedDemoData(ctx context.Context, templates *db.ItemTemplateRepository, loot *db.LootRepository) error {
	existing, err := templates.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("demo seed skipped: item templates already present", "count", len(existing))
		return nil
	}

	tmpls, rows := demoItems()
	for _, t := range tmpls {
		if err := templates.Save(ctx, t); err != nil {
			return err
		}
	}
	if err := loot.InsertRows(ctx, rows); err != nil {
		return err
	}

	slog.Info("demo data seeded", "templates", len(tmpls), "lootRows", len(rows))
	return nil
}
