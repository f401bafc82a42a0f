package sbsmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTelemetryFromReading(t *testing.T) {
	tp := TelemetryFromReading(Reading{
		Temperature: 25,
		Humidity:    60,
		LightLevel:  500,
		Presence:    true,
		FanMode:     FanOff,
		LightMode:   LightDay,
	})

	assert.Equal(t, 25.0, tp.Temperature)
	assert.Equal(t, 60.0, tp.Humidity)
	assert.Equal(t, 500, tp.LDRIntensity)
	assert.Equal(t, 1, tp.PassengerPresent)
	assert.Equal(t, 0, tp.FanStatus)
	assert.Equal(t, 0, tp.LightStatus)
	assert.Equal(t, LightDay, tp.LightLabel)
}

func TestTelemetryFromReadingNight(t *testing.T) {
	tp := TelemetryFromReading(Reading{
		LightLevel: 2500,
		FanMode:    FanOn,
		LightMode:  LightNight,
	})

	assert.Equal(t, 0, tp.PassengerPresent)
	assert.Equal(t, 1, tp.FanStatus)
	assert.Equal(t, 1, tp.LightStatus)
	assert.Equal(t, LightNight, tp.LightLabel)
}
