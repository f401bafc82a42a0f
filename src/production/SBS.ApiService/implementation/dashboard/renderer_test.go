package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
)

func TestRenderEmptyReadingDefaults(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, NewRenderer().Render(&sb, sbsmodels.EmptyReading()))
	html := sb.String()

	assert.Contains(t, html, "0&deg;C")
	assert.Contains(t, html, "EMPTY")
	assert.Contains(t, html, "OFF")
	assert.Contains(t, html, "Day")
	assert.Contains(t, html, "No Data")
	assert.Contains(t, html, "light-day")
	assert.Contains(t, html, "status-off")
}

func TestRenderLiveReading(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, NewRenderer().Render(&sb, sbsmodels.Reading{
		Temperature: 31.5,
		Humidity:    72,
		Presence:    true,
		FanMode:     sbsmodels.FanOn,
		LightMode:   sbsmodels.LightNight,
		Timestamp:   "2025-03-01 20:15:00",
	}))
	html := sb.String()

	assert.Contains(t, html, "31.5&deg;C")
	assert.Contains(t, html, "72%")
	assert.Contains(t, html, "PASSENGER")
	assert.Contains(t, html, "status-on")
	assert.Contains(t, html, "light-night")
	assert.Contains(t, html, "Night")
	assert.Contains(t, html, "2025-03-01 20:15:00")
}
