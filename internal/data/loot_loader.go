package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/worldpvp/internal/model"
)

// ErrInvalidLootRow is returned for a persisted loot row with malformed fields.
var ErrInvalidLootRow = errors.New("invalid world PvP loot row")

// LootRow is one persisted worldpvp_loot row.
type LootRow struct {
	ID        int32
	ItemID    int32
	ItemLevel int32
	Quality   model.Quality
	Name      string
}

// LootSource streams persisted loot rows of one quality.
// Iteration stops at the first error returned by fn or by the source itself.
type LootSource interface {
	ForEachLootRow(ctx context.Context, q model.Quality, fn func(LootRow) error) error
}

func (r LootRow) validate(q model.Quality) error {
	switch {
	case r.ItemID <= 0:
		return fmt.Errorf("%w: row %d: item id %d", ErrInvalidLootRow, r.ID, r.ItemID)
	case r.ItemLevel < 0:
		return fmt.Errorf("%w: row %d: item level %d", ErrInvalidLootRow, r.ID, r.ItemLevel)
	case r.Quality != q:
		return fmt.Errorf("%w: row %d: quality %d, want %d", ErrInvalidLootRow, r.ID, r.Quality, q)
	}
	return nil
}

// LoadLootTable builds the world PvP loot table from src.
//
// Each lootable quality is fetched separately. A malformed row (or a source error)
// stops the remaining rows of that quality only; already loaded rows are kept and
// loading continues with the next quality. Per-quality errors are returned joined
// together with the partially loaded table, which is always non-nil.
func LoadLootTable(ctx context.Context, src LootSource) (*LootTable, error) {
	table := NewLootTable()
	var errs []error

	for _, q := range model.LootableQualities {
		err := src.ForEachLootRow(ctx, q, func(row LootRow) error {
			if err := row.validate(q); err != nil {
				return err
			}
			table.add(q, row.ItemLevel, model.LootItem{ItemID: row.ItemID, Name: row.Name})
			return nil
		})
		if err != nil {
			slog.Error("world PvP loot load aborted",
				"quality", q,
				"loaded", table.Count(q),
				"error", err)
			errs = append(errs, fmt.Errorf("loading %s loot: %w", q, err))
		}
	}

	for _, q := range model.LootableQualities {
		slog.Info("loaded world PvP loot",
			"quality", q,
			"items", table.Count(q),
			"buckets", table.Buckets(q))
	}

	return table, errors.Join(errs...)
}
