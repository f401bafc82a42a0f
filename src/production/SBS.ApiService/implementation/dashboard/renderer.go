package dashboard

import (
	"html/template"
	"io"

	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
)

// Renderer produces the self-refreshing admin dashboard from a reading.
// It is a pure view over the latest-status slot; all derived visual state
// (card colors, on/off badges) comes from the reading's own fields.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("dashboard").Parse(pageTemplate))}
}

type viewData struct {
	Temperature float64
	Humidity    float64
	Presence    bool
	FanOn       bool
	Night       bool
	LightMode   string
	Timestamp   string
}

// Render writes the dashboard HTML for the given reading. Callers pass
// sbsmodels.EmptyReading() when no sample has arrived yet.
func (r *Renderer) Render(w io.Writer, rd sbsmodels.Reading) error {
	return r.tmpl.Execute(w, viewData{
		Temperature: rd.Temperature,
		Humidity:    rd.Humidity,
		Presence:    rd.Presence,
		FanOn:       rd.FanMode == sbsmodels.FanOn,
		Night:       rd.LightMode == sbsmodels.LightNight,
		LightMode:   rd.LightMode,
		Timestamp:   rd.Timestamp,
	})
}

const pageTemplate = `<!DOCTYPE html>
<html><head>
    <meta charset='UTF-8'><meta name='viewport' content='width=device-width, initial-scale=1'>
    <meta http-equiv='refresh' content='1'>
    <title>Smart Bus Stop Admin</title>
    <style>
        body { font-family: 'Segoe UI', sans-serif; background: #eef2f3; margin: 0; padding: 20px; }
        .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; max-width: 1000px; margin: 0 auto; }
        .card { background: white; padding: 20px; border-radius: 15px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); text-align: center; transition: 0.3s; }
        .card h3 { margin: 0; color: #7f8c8d; font-size: 0.8em; text-transform: uppercase; }
        .value { font-size: 2em; font-weight: bold; margin: 10px 0; }
        .presence-box { grid-column: 1 / -1; background: #2c3e50; color: white; padding: 30px; }
        .status-on { color: #27ae60; }
        .status-off { color: #e74c3c; }
        .light-day { background: #f1c40f; color: #333; }
        .light-night { background: #2c3e50; color: white; }
    </style>
</head><body>
    <div style="text-align:center; padding: 20px;">
        <h1>&#128653; Smart Bus Stop Dashboard</h1>
    </div>
    <div class="grid">
        <div class="card presence-box">
            <h3>Occupancy Status</h3>
            <div class="value">{{if .Presence}}&#128100; PASSENGER{{else}}&#128237; EMPTY{{end}}</div>
        </div>
        <div class="card">
            <h3>Temperature</h3>
            <div class="value">{{.Temperature}}&deg;C</div>
        </div>
        <div class="card">
            <h3>Humidity</h3>
            <div class="value">{{.Humidity}}%</div>
        </div>
        <div class="card">
            <h3>Cooling Fan</h3>
            <div class="value {{if .FanOn}}status-on{{else}}status-off{{end}}">{{if .FanOn}}ON{{else}}OFF{{end}}</div>
        </div>
        <div class="card {{if .Night}}light-night{{else}}light-day{{end}}">
            <h3>System Lighting</h3>
            <div class="value">{{if .Night}}&#127769;{{else}}&#9728;&#65039;{{end}} {{.LightMode}}</div>
        </div>
    </div>
    <div style="text-align:center; margin-top:30px; color:gray; font-size:0.8em;">
        Last Update: {{.Timestamp}}
    </div>
</body></html>
`
