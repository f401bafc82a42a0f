package forwarder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
)

func sampleReading() sbsmodels.Reading {
	return sbsmodels.Reading{
		Temperature: 25,
		Humidity:    60,
		LightLevel:  500,
		Presence:    true,
		FanMode:     sbsmodels.FanOff,
		LightMode:   sbsmodels.LightDay,
		Timestamp:   "2025-03-01 12:00:00",
	}
}

func TestPushSendsFlattenedPayload(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := New(srv.URL, 2*time.Second)
	require.NoError(t, f.Push(context.Background(), sampleReading()))

	assert.Equal(t, 25.0, got["temperature"])
	assert.Equal(t, 60.0, got["humidity"])
	assert.Equal(t, 500.0, got["ldr_intensity"])
	assert.Equal(t, 1.0, got["passenger_present_num"])
	assert.Equal(t, 0.0, got["fan_status_num"])
	assert.Equal(t, 0.0, got["light_status_num"])
	assert.Equal(t, "Day", got["light_label"])
}

func TestPushNonSuccessStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	f := New(srv.URL, 2*time.Second)
	err := f.Push(context.Background(), sampleReading())
	assert.Error(t, err)
}

func TestPushTimesOutAgainstSlowSink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	f := New(srv.URL, 50*time.Millisecond)

	start := time.Now()
	err := f.Push(context.Background(), sampleReading())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestPushUnreachableSinkIsAnError(t *testing.T) {
	f := New("http://127.0.0.1:1", 100*time.Millisecond)
	err := f.Push(context.Background(), sampleReading())
	assert.Error(t, err)
}
