package data

import (
	"log/slog"

	"github.com/udisondev/worldpvp/internal/model"
)

// ItemTable — registry всех item templates, keyed by item ID.
// Built once at startup; read-only afterwards.
type ItemTable struct {
	templates map[int32]*model.ItemTemplate
}

// NewItemTable builds ItemTable from loaded templates. Later duplicates win.
func NewItemTable(templates []*model.ItemTemplate) *ItemTable {
	t := &ItemTable{templates: make(map[int32]*model.ItemTemplate, len(templates))}
	for _, tmpl := range templates {
		if tmpl == nil {
			continue
		}
		t.templates[tmpl.ItemID] = tmpl
	}

	slog.Info("loaded item templates", "count", len(t.templates))
	return t
}

// ItemTemplate returns the template for itemID.
func (t *ItemTable) ItemTemplate(itemID int32) (*model.ItemTemplate, bool) {
	tmpl, ok := t.templates[itemID]
	return tmpl, ok
}

// Len returns number of templates.
func (t *ItemTable) Len() int {
	return len(t.templates)
}
