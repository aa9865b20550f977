package opsserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/worldpvp/internal/data"
	"github.com/udisondev/worldpvp/internal/model"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func testTable() *data.LootTable {
	return data.NewTestLootTable(
		data.LootRow{ItemID: 1, ItemLevel: 10, Quality: model.QualityUncommon},
		data.LootRow{ItemID: 2, ItemLevel: 10, Quality: model.QualityUncommon},
		data.LootRow{ItemID: 3, ItemLevel: 65, Quality: model.QualityEpic},
	)
}

func TestServer_Healthz(t *testing.T) {
	s := New("127.0.0.1:0", nil)

	rec := get(t, s.Handler(), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestServer_ReadyzBeforeLoad(t *testing.T) {
	s := New("127.0.0.1:0", nil)

	assert.Equal(t, http.StatusServiceUnavailable, get(t, s.Handler(), "/readyz").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, s.Handler(), "/loot/summary").Code)
}

func TestServer_ReadyzAfterLoad(t *testing.T) {
	s := New("127.0.0.1:0", stubPinger{})
	s.SetLootTable(testTable())

	assert.Equal(t, http.StatusOK, get(t, s.Handler(), "/readyz").Code)
}

func TestServer_ReadyzDatabaseDown(t *testing.T) {
	s := New("127.0.0.1:0", stubPinger{err: errors.New("connection refused")})
	s.SetLootTable(testTable())

	rec := get(t, s.Handler(), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "database unreachable", body.Reason)
}

func TestServer_LootSummary(t *testing.T) {
	s := New("127.0.0.1:0", nil)
	s.SetLootTable(testTable())

	rec := get(t, s.Handler(), "/loot/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var body LootSummaryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Qualities, 3)

	byQuality := make(map[string]data.LootSummary)
	for _, q := range body.Qualities {
		byQuality[q.Quality] = q
	}
	assert.Equal(t, 2, byQuality["Uncommon"].Items)
	assert.Equal(t, 1, byQuality["Uncommon"].Buckets)
	assert.Zero(t, byQuality["Rare"].Items)
	assert.Equal(t, 1, byQuality["Epic"].Items)
}

func TestServer_Metrics(t *testing.T) {
	s := New("127.0.0.1:0", nil)
	get(t, s.Handler(), "/healthz")

	rec := get(t, s.Handler(), "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "worldpvp_ops_http_requests_total"))
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	s := New("", nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ops server did not stop")
	}
}
