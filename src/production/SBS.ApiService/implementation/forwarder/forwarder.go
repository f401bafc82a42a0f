package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
)

// Forwarder mirrors accepted readings to the external telemetry platform.
// It is a secondary, best-effort consumer: Push returns an error so the
// caller can log it, but the caller must never let it change the ingestion
// outcome. The short client timeout bounds how long a dead sink can hold up
// a request.
type Forwarder struct {
	url        string
	httpClient *http.Client
}

func New(url string, timeout time.Duration) *Forwarder {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Forwarder{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Push sends the flattened telemetry payload for one reading.
func (f *Forwarder) Push(ctx context.Context, rd sbsmodels.Reading) error {
	payload := sbsmodels.TelemetryFromReading(rd)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return fmt.Errorf("encode telemetry payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, &buf)
	if err != nil {
		return fmt.Errorf("build telemetry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push telemetry: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telemetry sink returned status %d", resp.StatusCode)
	}
	return nil
}
