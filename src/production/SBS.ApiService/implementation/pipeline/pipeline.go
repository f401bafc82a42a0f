package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/implementation/clock"
	logger "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Logger"
	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
	interfaces "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Repository/Interfaces"
)

// ErrStoreUnavailable marks a failure of a mandatory store operation
// (latest-status update, throttle check, or history-log write). The request
// must be aborted; the device retries the whole reading later.
var ErrStoreUnavailable = errors.New("store unavailable")

// ThrottleGate answers whether a reading should be durably logged now.
type ThrottleGate interface {
	ShouldLog(ctx context.Context, now time.Time) (bool, error)
	RecordLogged(ctx context.Context, now time.Time) error
}

// TelemetryPusher mirrors one reading to the external platform.
type TelemetryPusher interface {
	Push(ctx context.Context, rd sbsmodels.Reading) error
}

// Pipeline runs one inbound reading through normalize, latest-status update,
// throttled history logging and external fan-out. It holds no state of its
// own; concurrent requests share only the repositories behind it.
type Pipeline struct {
	status    interfaces.StatusRepository
	log       interfaces.LogRepository
	gate      ThrottleGate
	forwarder TelemetryPusher
	clock     clock.TimeSource
	logger    *logger.Logger
}

func New(status interfaces.StatusRepository, log interfaces.LogRepository, gate ThrottleGate, fwd TelemetryPusher, ts clock.TimeSource, lg *logger.Logger) *Pipeline {
	return &Pipeline{
		status:    status,
		log:       log,
		gate:      gate,
		forwarder: fwd,
		clock:     ts,
		logger:    lg.WithComponent("pipeline"),
	}
}

// Ingest processes one device payload and returns the normalized reading.
// Errors are either sbsmodels.ErrInvalidPayload or wrap ErrStoreUnavailable.
//
// Step order matters: the latest-status slot is updated before the throttle
// decision so dashboard freshness never depends on the throttle outcome, and
// the external push comes last so a sink failure cannot disturb the durable
// writes. A failed throttle check aborts the request without forwarding;
// a reading whose durability status is unknown is not mirrored.
func (p *Pipeline) Ingest(ctx context.Context, payload map[string]interface{}) (sbsmodels.Reading, error) {
	now := p.clock.Now()

	rd, err := sbsmodels.NormalizeReading(payload, now.Format(sbsmodels.TimeLayout))
	if err != nil {
		return sbsmodels.Reading{}, err
	}

	if err := p.status.Put(ctx, rd); err != nil {
		return rd, fmt.Errorf("%w: update latest status: %v", ErrStoreUnavailable, err)
	}

	shouldLog, err := p.gate.ShouldLog(ctx, now)
	if err != nil {
		return rd, fmt.Errorf("%w: throttle check: %v", ErrStoreUnavailable, err)
	}

	if shouldLog {
		if err := p.log.Append(ctx, rd); err != nil {
			return rd, fmt.Errorf("%w: append history log: %v", ErrStoreUnavailable, err)
		}
		if err := p.gate.RecordLogged(ctx, now); err != nil {
			return rd, fmt.Errorf("%w: record log time: %v", ErrStoreUnavailable, err)
		}
	}

	// Best-effort fan-out. The error is consumed here and only here.
	if err := p.forwarder.Push(ctx, rd); err != nil {
		p.logger.WarnWithError(err, "telemetry forward failed")
	}

	return rd, nil
}
