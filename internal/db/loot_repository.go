package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/worldpvp/internal/data"
	"github.com/udisondev/worldpvp/internal/model"
)

// LootRepository читает и пишет таблицу worldpvp_loot.
// Implements data.LootSource.
type LootRepository struct {
	pool *pgxpool.Pool
}

// NewLootRepository создаёт новый LootRepository.
func NewLootRepository(pool *pgxpool.Pool) *LootRepository {
	return &LootRepository{pool: pool}
}

// ForEachLootRow streams all rows of quality q ordered by id.
// A scan error (e.g. NULL in a required column) or an error from fn stops iteration.
func (r *LootRepository) ForEachLootRow(ctx context.Context, q model.Quality, fn func(data.LootRow) error) error {
	query := `
		SELECT id, entry, item_level, quality, name
		FROM worldpvp_loot
		WHERE quality = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, int32(q))
	if err != nil {
		return fmt.Errorf("querying world PvP loot for quality %s: %w", q, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row data.LootRow
		var quality int32
		if err := rows.Scan(&row.ID, &row.ItemID, &row.ItemLevel, &quality, &row.Name); err != nil {
			return fmt.Errorf("scanning world PvP loot row: %w", err)
		}
		row.Quality = model.Quality(quality)

		if err := fn(row); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating world PvP loot rows: %w", err)
	}
	return nil
}

// InsertRows bulk-inserts loot rows (seeding, tests). Row IDs are assigned by the database.
func (r *LootRepository) InsertRows(ctx context.Context, lootRows []data.LootRow) error {
	if len(lootRows) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(lootRows))
	for _, lr := range lootRows {
		rows = append(rows, []any{lr.ItemID, lr.ItemLevel, int16(lr.Quality), lr.Name})
	}

	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"worldpvp_loot"},
		[]string{"entry", "item_level", "quality", "name"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting world PvP loot rows: %w", err)
	}

	slog.Debug("inserted world PvP loot rows", "count", n)
	return nil
}
