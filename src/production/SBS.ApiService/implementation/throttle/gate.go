package throttle

import (
	"context"
	"time"

	logger "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Logger"
	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
	interfaces "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Repository/Interfaces"
)

// Gate decides whether a reading should be admitted to the history log.
// It keeps a single global last-log-time marker in the settings store and
// enforces a minimum interval between durable writes.
//
// The check-then-record sequence is not atomic across concurrent requests.
// A race can at worst admit two readings inside one window, which is an
// accepted outcome for a best-effort throttle.
type Gate struct {
	repo   interfaces.ThrottleRepository
	window time.Duration
	logger *logger.Logger
}

func NewGate(repo interfaces.ThrottleRepository, window time.Duration, log *logger.Logger) *Gate {
	return &Gate{
		repo:   repo,
		window: window,
		logger: log.WithComponent("throttle"),
	}
}

// ShouldLog reports whether enough time has passed since the last admitted
// reading. A missing marker means no reading was ever logged, so the first
// one always passes. A store error is returned as-is: the caller must not
// fall back to "always log" or "never log" when durability is unknown.
func (g *Gate) ShouldLog(ctx context.Context, now time.Time) (bool, error) {
	lastStr, found, err := g.repo.GetLastLogTime(ctx)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}

	last, err := time.ParseInLocation(sbsmodels.TimeLayout, lastStr, now.Location())
	if err != nil {
		// A corrupt marker should not wedge logging forever. Admit the
		// reading; RecordLogged will overwrite the bad value.
		g.logger.WithField("last_time", lastStr).WarnWithError(err, "unparsable throttle marker, admitting reading")
		return true, nil
	}

	return now.Sub(last) >= g.window, nil
}

// RecordLogged overwrites the marker with the admitted reading's timestamp.
// Called exactly once per history-log write, after the write succeeds.
func (g *Gate) RecordLogged(ctx context.Context, now time.Time) error {
	return g.repo.SetLastLogTime(ctx, now.Format(sbsmodels.TimeLayout))
}
