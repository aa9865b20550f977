package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/worldpvp/internal/model"
)

// ItemTemplateRepository управляет прототипами предметов (item_templates).
type ItemTemplateRepository struct {
	pool *pgxpool.Pool
}

// NewItemTemplateRepository создаёт новый ItemTemplateRepository.
func NewItemTemplateRepository(pool *pgxpool.Pool) *ItemTemplateRepository {
	return &ItemTemplateRepository{pool: pool}
}

// LoadAll загружает все прототипы предметов.
func (r *ItemTemplateRepository) LoadAll(ctx context.Context) ([]*model.ItemTemplate, error) {
	query := `
		SELECT item_id, name, stackable, max_stack, random_property_ids
		FROM item_templates
		ORDER BY item_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying item templates: %w", err)
	}
	defer rows.Close()

	templates := make([]*model.ItemTemplate, 0, 256)
	for rows.Next() {
		var t model.ItemTemplate
		if err := rows.Scan(&t.ItemID, &t.Name, &t.Stackable, &t.MaxStack, &t.RandomPropertyIDs); err != nil {
			return nil, fmt.Errorf("scanning item template row: %w", err)
		}
		templates = append(templates, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item template rows: %w", err)
	}
	return templates, nil
}

// Save inserts or updates a prototype.
func (r *ItemTemplateRepository) Save(ctx context.Context, t *model.ItemTemplate) error {
	props := t.RandomPropertyIDs
	if props == nil {
		props = []int32{}
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO item_templates (item_id, name, stackable, max_stack, random_property_ids)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (item_id) DO UPDATE SET
		  name = $2, stackable = $3, max_stack = $4, random_property_ids = $5`,
		t.ItemID, t.Name, t.Stackable, t.MaxStack, props,
	)
	if err != nil {
		return fmt.Errorf("saving item template %d: %w", t.ItemID, err)
	}
	return nil
}
