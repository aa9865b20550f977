package worldpvp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/worldpvp/internal/config"
	"github.com/udisondev/worldpvp/internal/model"
)

func TestQualitySelector_Thresholds(t *testing.T) {
	sel := NewQualitySelector(config.DefaultRewards().QualityWeights)

	tests := []struct {
		r    float64
		want model.Quality
	}{
		{0.0, model.QualityEpic},
		{0.029, model.QualityEpic},
		{0.031, model.QualityRare},
		{0.1, model.QualityRare},
		{0.12, model.QualityUncommon},
		{0.5, model.QualityUncommon},
		{0.52, model.QualityNone},
		{0.999, model.QualityNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sel.Draw(stubRand{f: tt.r}), "r=%v", tt.r)
	}
}

func TestQualitySelector_Distribution(t *testing.T) {
	sel := NewQualitySelector(config.DefaultRewards().QualityWeights)
	rng := NewRand(42, 1)

	const draws = 200_000
	counts := make(map[model.Quality]int)
	for range draws {
		counts[sel.Draw(rng)]++
	}

	freq := func(q model.Quality) float64 { return float64(counts[q]) / draws }
	assert.InDelta(t, 0.03, freq(model.QualityEpic), 0.005)
	assert.InDelta(t, 0.08, freq(model.QualityRare), 0.005)
	assert.InDelta(t, 0.40, freq(model.QualityUncommon), 0.005)
	assert.InDelta(t, 0.49, freq(model.QualityNone), 0.005)
}

func TestQualitySelector_ZeroWeights(t *testing.T) {
	sel := NewQualitySelector(config.QualityWeights{})
	rng := NewRand(7, 7)

	for range 1000 {
		assert.Equal(t, model.QualityNone, sel.Draw(rng))
	}
}
