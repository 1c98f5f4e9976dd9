// Package robot provides the HTTP client for the Reachy Mini daemon.
//
// Animation layers work in degrees; the daemon API speaks radians. The
// conversion happens here, at the wire boundary, so callers never mix
// units.
package robot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/franciscomoney/le-professeur-bizarre/internal/httpc"
	"github.com/franciscomoney/le-professeur-bizarre/internal/log"
)

// DefaultTimeout bounds every daemon call. A pose command that takes
// longer than this has already missed its relevance window.
const DefaultTimeout = 5 * time.Second

// HeadPose is the daemon's head pose representation (radians, meters).
type HeadPose struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// FullState is the daemon's reported state from /api/state/full.
type FullState struct {
	HeadPose HeadPose   `json:"head_pose"`
	Antennas [2]float64 `json:"antennas"`
}

type gotoRequest struct {
	HeadPose          *HeadPose  `json:"head_pose,omitempty"`
	Antennas          []float64  `json:"antennas,omitempty"`
	Duration          float64    `json:"duration"`
	InterpolationMode string     `json:"interpolation_mode"`
}

// Client talks to the Reachy Mini daemon HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a daemon client for the given base URL
// (e.g. "http://localhost:8000").
func NewClient(daemonURL string) *Client {
	return &Client{
		baseURL: daemonURL,
		http:    httpc.NewClient(DefaultTimeout),
	}
}

// BaseURL returns the daemon base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// MoveHead requests a minimum-jerk head move to yaw/pitch/roll (degrees)
// over the given duration. Fire-and-forget: transport failures and bad
// status codes are logged at debug and dropped. A missed frame is not a
// correctness issue; the next tick self-corrects. No retry: a retried
// stale pose would land after its relevance window.
func (c *Client) MoveHead(ctx context.Context, yaw, pitch, roll float64, duration time.Duration) {
	c.goTo(ctx, gotoRequest{
		HeadPose: &HeadPose{
			Yaw:   radians(yaw),
			Pitch: radians(pitch),
			Roll:  radians(roll),
		},
		Duration:          duration.Seconds(),
		InterpolationMode: "minjerk",
	})
}

// MoveAntennas requests a minimum-jerk antenna move. Positions are
// unitless actuator commands in roughly [-1, 1]. Fire-and-forget, same
// as MoveHead.
func (c *Client) MoveAntennas(ctx context.Context, left, right float64, duration time.Duration) {
	c.goTo(ctx, gotoRequest{
		Antennas:          []float64{left, right},
		Duration:          duration.Seconds(),
		InterpolationMode: "minjerk",
	})
}

func (c *Client) goTo(ctx context.Context, payload gotoRequest) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Debug("marshal goto payload", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/move/goto", bytes.NewReader(data))
	if err != nil {
		log.Debug("build goto request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug("goto request failed", "error", err)
		return
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug("goto rejected", "status", resp.StatusCode)
	}
}

// DaemonStatus returns the daemon state string from /api/daemon/status.
func (c *Client) DaemonStatus(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/daemon/status", nil)
	if err != nil {
		return "", fmt.Errorf("build status request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("daemon status request failed: %w", err)
	}
	defer resp.Body.Close()

	var status struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("decode daemon status: %w", err)
	}

	return status.State, nil
}

// State returns the daemon's full reported pose state.
func (c *Client) State(ctx context.Context) (*FullState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/state/full", nil)
	if err != nil {
		return nil, fmt.Errorf("build state request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("state request failed: %w", err)
	}
	defer resp.Body.Close()

	var state FullState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}

	return &state, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
