package metrics

import (
	"errors"

	"github.com/udisondev/worldpvp/internal/data"
	"github.com/udisondev/worldpvp/internal/game/worldpvp"
	"github.com/udisondev/worldpvp/internal/model"
)

// Recorder feeds kill outcomes into the Prometheus counters.
// Implements worldpvp.Recorder.
type Recorder struct{}

// NewRecorder creates a new metrics recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordKill records one processed kill.
func (r *Recorder) RecordKill(res worldpvp.Result) {
	KillsTotal.Inc()
	if res.XP > 0 {
		XPGrantedTotal.Add(float64(res.XP))
	}
	if res.Money > 0 {
		MoneyGrantedTotal.Add(float64(res.Money))
	}
	if res.Attempts > 0 {
		SearchAttempts.WithLabelValues(res.Quality.String()).Observe(float64(res.Attempts))
	}

	if res.ItemGranted() {
		ItemRewardsTotal.WithLabelValues(res.Quality.String()).Inc()
		return
	}
	RewardMissesTotal.WithLabelValues(MissReason(res.ItemErr)).Inc()
}

// RecordRejected records a kill rejected for invalid input.
func (r *Recorder) RecordRejected() {
	RejectedKillsTotal.Inc()
}

// RecordLootTable publishes per-quality loot entry counts.
func RecordLootTable(table *data.LootTable) {
	for _, q := range model.LootableQualities {
		LootTableItems.WithLabelValues(q.String()).Set(float64(table.Count(q)))
	}
}

// MissReason maps an item reward error to a metric label.
func MissReason(err error) string {
	switch {
	case errors.Is(err, worldpvp.ErrNoQuality):
		return ReasonNoQuality
	case errors.Is(err, worldpvp.ErrRewardNotFound):
		return ReasonNotFound
	case errors.Is(err, worldpvp.ErrMissingTemplate):
		return ReasonMissingTemplate
	case errors.Is(err, worldpvp.ErrInventoryFull):
		return ReasonInventoryFull
	case errors.Is(err, worldpvp.ErrStoreFailed):
		return ReasonStoreFailed
	default:
		return ReasonOther
	}
}
