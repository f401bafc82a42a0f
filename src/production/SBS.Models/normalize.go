package sbsmodels

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidPayload is returned when the inbound body is absent, empty, or
// not a structured object.
var ErrInvalidPayload = errors.New("invalid payload")

// NormalizeReading coerces an arbitrary device payload into a Reading.
// Missing or malformed fields fall back to zero values instead of failing;
// only an absent or empty payload is an error. The timestamp is always taken
// from the server clock (already formatted by the caller); device timestamps
// are ignored so the server stays the single source of truth for time.
func NormalizeReading(payload map[string]interface{}, now string) (Reading, error) {
	if len(payload) == 0 {
		return Reading{}, ErrInvalidPayload
	}

	rd := Reading{
		Temperature: asFloat(payload["temp"]),
		Humidity:    asFloat(payload["hum"]),
		LightLevel:  asInt(payload["ldr"]),
		Presence:    asBool(payload["presence"]),
		FanMode:     asString(payload["fan_mode"], FanOff),
		Timestamp:   now,
	}

	// The controller's own light_mode wins; deriving from the LDR is a
	// fallback for firmware that does not send it.
	if mode, ok := payload["light_mode"].(string); ok && mode != "" {
		rd.LightMode = mode
	} else if rd.LightLevel > NightThreshold {
		rd.LightMode = LightNight
	} else {
		rd.LightMode = LightDay
	}

	return rd, nil
}

func asFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(v interface{}) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case int:
		return x
	case int64:
		return int(x)
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			// ESP32 ADC values occasionally arrive as "512.0"
			f, ferr := x.Float64()
			if ferr != nil {
				return 0
			}
			return int(f)
		}
		return int(n)
	case string:
		n, err := strconv.Atoi(x)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func asBool(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, err := strconv.ParseBool(x)
		if err != nil {
			return false
		}
		return b
	default:
		return false
	}
}

func asString(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
