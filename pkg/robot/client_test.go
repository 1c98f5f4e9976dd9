package robot

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDaemon captures goto payloads for inspection.
type recordingDaemon struct {
	mu       sync.Mutex
	payloads []map[string]interface{}
}

func (d *recordingDaemon) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		d.mu.Lock()
		d.payloads = append(d.payloads, payload)
		d.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}
}

func (d *recordingDaemon) last(t *testing.T) map[string]interface{} {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()
	require.NotEmpty(t, d.payloads, "no goto command received")
	return d.payloads[len(d.payloads)-1]
}

func TestMoveHead_SendsRadiansAndMinjerk(t *testing.T) {
	daemon := &recordingDaemon{}
	srv := httptest.NewServer(daemon.handler())
	defer srv.Close()

	c := NewClient(srv.URL)
	c.MoveHead(context.Background(), 30, -15, 0, 300*time.Millisecond)

	payload := daemon.last(t)
	assert.Equal(t, "minjerk", payload["interpolation_mode"])
	assert.InDelta(t, 0.3, payload["duration"], 1e-9)

	head, ok := payload["head_pose"].(map[string]interface{})
	require.True(t, ok, "head_pose missing")
	assert.InDelta(t, 30*math.Pi/180, head["yaw"], 1e-9)
	assert.InDelta(t, -15*math.Pi/180, head["pitch"], 1e-9)
	assert.InDelta(t, 0.0, head["roll"], 1e-9)
}

func TestMoveAntennas_SendsPair(t *testing.T) {
	daemon := &recordingDaemon{}
	srv := httptest.NewServer(daemon.handler())
	defer srv.Close()

	c := NewClient(srv.URL)
	c.MoveAntennas(context.Background(), 0.7, -0.3, 200*time.Millisecond)

	payload := daemon.last(t)
	antennas, ok := payload["antennas"].([]interface{})
	require.True(t, ok, "antennas missing")
	require.Len(t, antennas, 2)
	assert.InDelta(t, 0.7, antennas[0], 1e-9)
	assert.InDelta(t, -0.3, antennas[1], 1e-9)

	// Head-only fields stay absent so the daemon keeps its head target.
	_, hasHead := payload["head_pose"]
	assert.False(t, hasHead)
}

func TestMoveHead_SwallowsFailures(t *testing.T) {
	// Unreachable daemon: the call must return without panicking or
	// surfacing an error to the animation layer.
	c := NewClient("http://127.0.0.1:1")
	c.MoveHead(context.Background(), 10, 0, 0, 100*time.Millisecond)
	c.MoveAntennas(context.Background(), 0.1, -0.1, 100*time.Millisecond)
}

func TestDaemonStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/daemon/status", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"state": "running"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	state, err := c.DaemonStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "running", state)
}

func TestState_DecodesPose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/state/full", r.URL.Path)
		_ = json.NewEncoder(w).Encode(FullState{
			HeadPose: HeadPose{Yaw: 0.1, Pitch: -0.2},
			Antennas: [2]float64{0.5, -0.5},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	state, err := c.State(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.1, state.HeadPose.Yaw, 1e-9)
	assert.InDelta(t, -0.5, state.Antennas[1], 1e-9)
}
