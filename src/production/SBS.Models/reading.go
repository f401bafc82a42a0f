package sbsmodels

// Fan and light states as they appear on the wire and in storage.
const (
	FanOn  = "ON"
	FanOff = "OFF"

	LightDay   = "Day"
	LightNight = "Night"
)

// NightThreshold is the raw LDR intensity above which the stop is
// considered to be in the dark.
const NightThreshold = 2000

// TimeLayout is the timestamp format used on the wire and in storage.
const TimeLayout = "2006-01-02 15:04:05"

// Reading is one normalized telemetry sample from the bus stop controller.
type Reading struct {
	Temperature float64 `bson:"temp" json:"temp"`
	Humidity    float64 `bson:"hum" json:"hum"`
	LightLevel  int     `bson:"ldr" json:"ldr"`
	Presence    bool    `bson:"presence" json:"presence"`
	FanMode     string  `bson:"fan_mode" json:"fan_mode"`
	LightMode   string  `bson:"light_mode" json:"light_mode"`
	Timestamp   string  `bson:"timestamp" json:"timestamp"`
}

// EmptyReading returns the sentinel rendered before any sample has arrived.
func EmptyReading() Reading {
	return Reading{
		FanMode:   FanOff,
		LightMode: LightDay,
		Timestamp: "No Data",
	}
}
