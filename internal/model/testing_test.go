package model

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// seqIDs is a simple ObjectIDSource for tests.
type seqIDs struct{ next atomic.Uint32 }

func (s *seqIDs) NextItemID() uint32 { return s.next.Add(1) }

func newTestPlayer(t *testing.T, objectID uint32, name string, level int32) *Player {
	t.Helper()
	p, err := NewPlayer(objectID, name, level, NewInventory(objectID, DefaultBagSlots, &seqIDs{}))
	require.NoError(t, err, "NewPlayer(%d, %s)", objectID, name)
	return p
}
