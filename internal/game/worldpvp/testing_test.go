package worldpvp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/worldpvp/internal/model"
	"github.com/udisondev/worldpvp/internal/world"
)

// stubRand returns a fixed Float64 and delegates IntN to pick (0 when nil).
type stubRand struct {
	f    float64
	pick func(n int) int
}

func (s stubRand) Float64() float64 { return s.f }

func (s stubRand) IntN(n int) int {
	if s.pick == nil {
		return 0
	}
	return s.pick(n)
}

// recordingLookup counts lookups and remembers requested buckets.
type recordingLookup struct {
	items  map[int32][]model.LootItem
	levels []int32
	calls  int
}

func (l *recordingLookup) Lookup(_ model.Quality, itemLevel int32) []model.LootItem {
	l.calls++
	l.levels = append(l.levels, itemLevel)
	return l.items[itemLevel]
}

type countingRecorder struct {
	mu       sync.Mutex
	kills    int
	rejected int
	last     Result
}

func (r *countingRecorder) RecordKill(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kills++
	r.last = res
}

func (r *countingRecorder) RecordRejected() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
}

type recordingNotifier struct {
	items  []*model.Item
	counts []int32
}

func (n *recordingNotifier) NotifyNewItem(_ *model.Player, item *model.Item, count int32) {
	n.items = append(n.items, item)
	n.counts = append(n.counts, count)
}

func newTestPlayer(t *testing.T, name string, level int32, slots int) *model.Player {
	t.Helper()
	ids := world.IDGenerator()
	inv := model.NewInventory(0, slots, ids)
	p, err := model.NewPlayer(ids.NextPlayerID(), name, level, inv)
	require.NoError(t, err)
	return p
}
