package sbsmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNow = "2025-03-01 12:00:00"

func TestNormalizeReadingNilPayload(t *testing.T) {
	_, err := NormalizeReading(nil, testNow)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestNormalizeReadingEmptyPayload(t *testing.T) {
	// A body of {} carries no measurement and must not produce an
	// all-zero reading.
	_, err := NormalizeReading(map[string]interface{}{}, testNow)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestNormalizeReadingFullPayload(t *testing.T) {
	rd, err := NormalizeReading(map[string]interface{}{
		"temp":     25.0,
		"hum":      60.0,
		"ldr":      500.0,
		"presence": true,
		"fan_mode": "OFF",
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, 25.0, rd.Temperature)
	assert.Equal(t, 60.0, rd.Humidity)
	assert.Equal(t, 500, rd.LightLevel)
	assert.True(t, rd.Presence)
	assert.Equal(t, FanOff, rd.FanMode)
	assert.Equal(t, LightDay, rd.LightMode)
	assert.Equal(t, testNow, rd.Timestamp)
}

func TestNormalizeReadingDefaults(t *testing.T) {
	// Only ldr present: everything else takes its documented default.
	rd, err := NormalizeReading(map[string]interface{}{"ldr": 2500.0}, testNow)
	require.NoError(t, err)

	assert.Equal(t, 0.0, rd.Temperature)
	assert.Equal(t, 0.0, rd.Humidity)
	assert.Equal(t, 2500, rd.LightLevel)
	assert.False(t, rd.Presence)
	assert.Equal(t, FanOff, rd.FanMode)
	assert.Equal(t, LightNight, rd.LightMode)
}

func TestNormalizeReadingLightModeDerivation(t *testing.T) {
	tests := []struct {
		name string
		ldr  interface{}
		want string
	}{
		{"bright is day", 500.0, LightDay},
		{"threshold itself is day", 2000.0, LightDay},
		{"above threshold is night", 2001.0, LightNight},
		{"missing ldr is day", nil, LightDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]interface{}{"temp": 25.0}
			if tt.ldr != nil {
				payload["ldr"] = tt.ldr
			}
			rd, err := NormalizeReading(payload, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rd.LightMode)
		})
	}
}

func TestNormalizeReadingExplicitLightModeWins(t *testing.T) {
	// The controller's own value is trusted regardless of the LDR level.
	rd, err := NormalizeReading(map[string]interface{}{
		"ldr":        3000.0,
		"light_mode": LightDay,
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, LightDay, rd.LightMode)

	rd, err = NormalizeReading(map[string]interface{}{
		"ldr":        100.0,
		"light_mode": LightNight,
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, LightNight, rd.LightMode)
}

func TestNormalizeReadingLenientCoercion(t *testing.T) {
	rd, err := NormalizeReading(map[string]interface{}{
		"temp":     "26.5",
		"hum":      "not a number",
		"ldr":      "1200",
		"presence": "true",
		"fan_mode": "ON",
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, 26.5, rd.Temperature)
	assert.Equal(t, 0.0, rd.Humidity)
	assert.Equal(t, 1200, rd.LightLevel)
	assert.True(t, rd.Presence)
	assert.Equal(t, FanOn, rd.FanMode)
}

func TestNormalizeReadingIgnoresDeviceTimestamp(t *testing.T) {
	rd, err := NormalizeReading(map[string]interface{}{
		"temp":      25.0,
		"timestamp": "1999-01-01 00:00:00",
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow, rd.Timestamp)
}

func TestEmptyReading(t *testing.T) {
	rd := EmptyReading()
	assert.Equal(t, 0.0, rd.Temperature)
	assert.Equal(t, 0.0, rd.Humidity)
	assert.False(t, rd.Presence)
	assert.Equal(t, FanOff, rd.FanMode)
	assert.Equal(t, LightDay, rd.LightMode)
	assert.Equal(t, "No Data", rd.Timestamp)
}
