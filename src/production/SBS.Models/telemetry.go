package sbsmodels

// TelemetryPayload is the fixed numeric shape pushed to the external
// visualization platform. Booleans and enums are flattened to 0/1 so the
// platform can chart them directly.
type TelemetryPayload struct {
	Temperature      float64 `json:"temperature"`
	Humidity         float64 `json:"humidity"`
	LDRIntensity     int     `json:"ldr_intensity"`
	PassengerPresent int     `json:"passenger_present_num"`
	FanStatus        int     `json:"fan_status_num"`
	LightStatus      int     `json:"light_status_num"`
	LightLabel       string  `json:"light_label"`
}

// TelemetryFromReading flattens a Reading into the sink's payload shape.
func TelemetryFromReading(rd Reading) TelemetryPayload {
	tp := TelemetryPayload{
		Temperature:  rd.Temperature,
		Humidity:     rd.Humidity,
		LDRIntensity: rd.LightLevel,
		LightLabel:   rd.LightMode,
	}
	if rd.Presence {
		tp.PassengerPresent = 1
	}
	if rd.FanMode == FanOn {
		tp.FanStatus = 1
	}
	if rd.LightMode == LightNight {
		tp.LightStatus = 1
	}
	return tp
}
