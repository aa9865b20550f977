package worldpvp

import (
	"github.com/udisondev/worldpvp/internal/config"
	"github.com/udisondev/worldpvp/internal/model"
)

// qualityThreshold maps a cumulative roll threshold to a quality.
type qualityThreshold struct {
	threshold float64
	quality   model.Quality
}

// QualitySelector draws the reward quality of a kill. Stateless: the random
// source is supplied per call.
type QualitySelector struct {
	// Порядок важен: от самой редкой к самой частой.
	thresholds [3]qualityThreshold
}

// NewQualitySelector builds cumulative thresholds Epic, Epic+Rare, Epic+Rare+Uncommon.
func NewQualitySelector(w config.QualityWeights) QualitySelector {
	epic := w.Epic
	rare := epic + w.Rare
	uncommon := rare + w.Uncommon

	return QualitySelector{thresholds: [3]qualityThreshold{
		{epic, model.QualityEpic},
		{rare, model.QualityRare},
		{uncommon, model.QualityUncommon},
	}}
}

// Draw rolls r in [0,1) and returns the first quality whose threshold exceeds r,
// or QualityNone when r falls into the remaining probability mass.
func (s QualitySelector) Draw(rng Rand) model.Quality {
	r := rng.Float64()
	for _, t := range s.thresholds {
		if r < t.threshold {
			return t.quality
		}
	}
	return model.QualityNone
}
