package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscomoney/le-professeur-bizarre/pkg/robot"
)

func TestRecenter_SendsNeutralPose(t *testing.T) {
	type gotoPayload struct {
		HeadPose *struct {
			Yaw   float64 `json:"yaw"`
			Pitch float64 `json:"pitch"`
			Roll  float64 `json:"roll"`
		} `json:"head_pose"`
		Antennas []float64 `json:"antennas"`
	}

	var payloads []gotoPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/move/goto", r.URL.Path)
		var p gotoPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		payloads = append(payloads, p)
	}))
	defer srv.Close()

	recenter(robot.NewClient(srv.URL))

	require.Len(t, payloads, 2, "exit must command both head and antennas")

	require.NotNil(t, payloads[0].HeadPose)
	assert.Zero(t, payloads[0].HeadPose.Yaw)
	assert.Zero(t, payloads[0].HeadPose.Pitch)
	assert.Zero(t, payloads[0].HeadPose.Roll)

	assert.Equal(t, []float64{0, 0}, payloads[1].Antennas)
}
