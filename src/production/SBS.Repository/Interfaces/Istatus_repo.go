package interfaces

import (
	"context"

	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
)

// StatusRepository is the single-slot store holding the most recent reading.
// Put overwrites unconditionally; Get reports found=false before the first
// reading ever arrives.
type StatusRepository interface {
	Put(ctx context.Context, rd sbsmodels.Reading) error
	Get(ctx context.Context) (sbsmodels.Reading, bool, error)
}
