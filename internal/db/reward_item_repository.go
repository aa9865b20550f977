package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/worldpvp/internal/model"
)

// RewardItemRepository persists items created by world PvP rewards.
type RewardItemRepository struct {
	pool *pgxpool.Pool
}

// NewRewardItemRepository создаёт новый RewardItemRepository.
func NewRewardItemRepository(pool *pgxpool.Pool) *RewardItemRepository {
	return &RewardItemRepository{pool: pool}
}

// SaveChanged upserts every item not yet in ItemStateSaved within one transaction
// and marks them saved after commit. Returns the number of written items.
func (r *RewardItemRepository) SaveChanged(ctx context.Context, items []*model.Item) (int, error) {
	dirty := make([]*model.Item, 0, len(items))
	for _, it := range items {
		if it.State() != model.ItemStateSaved {
			dirty = append(dirty, it)
		}
	}
	if len(dirty) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, it := range dirty {
		batch.Queue(
			`INSERT INTO reward_items (object_id, owner_id, item_id, count, random_property_id, bound, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, now())
			 ON CONFLICT (object_id) DO UPDATE SET
			  owner_id = $2, count = $4, bound = $6, updated_at = now()`,
			int64(it.ObjectID()), int64(it.OwnerID()), it.ItemID(), it.Count(), it.RandomPropertyID(), it.IsBound(),
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range dirty {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return 0, fmt.Errorf("save reward item batch: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("close reward item batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit reward items: %w", err)
	}

	for _, it := range dirty {
		it.MarkSaved()
	}

	slog.Debug("saved reward items", "count", len(dirty))
	return len(dirty), nil
}

// CountByOwner returns how many reward items ownerID has in the database.
func (r *RewardItemRepository) CountByOwner(ctx context.Context, ownerID uint32) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM reward_items WHERE owner_id = $1`, int64(ownerID),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting reward items of owner %d: %w", ownerID, err)
	}
	return n, nil
}
