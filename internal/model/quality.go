package model

// Quality — редкость предмета награды world PvP.
// Numeric values match the quality column of worldpvp_loot.
type Quality int32

const (
	QualityNone Quality = iota + 1
	QualityUncommon
	QualityRare
	QualityEpic
)

// LootableQualities lists the qualities that own a loot table, from most common to rarest.
var LootableQualities = [...]Quality{QualityUncommon, QualityRare, QualityEpic}

// String returns human-readable quality name.
func (q Quality) String() string {
	switch q {
	case QualityNone:
		return "None"
	case QualityUncommon:
		return "Uncommon"
	case QualityRare:
		return "Rare"
	case QualityEpic:
		return "Epic"
	default:
		return "Unknown"
	}
}

// IsLootable reports whether q has a loot table (Uncommon, Rare or Epic).
func (q Quality) IsLootable() bool {
	return q >= QualityUncommon && q <= QualityEpic
}

// LootItem is a single loot table candidate. Immutable once loaded.
type LootItem struct {
	ItemID int32
	Name   string // diagnostics only
}
