package interfaces

import (
	"context"

	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
)

// LogRepository is the append-only history of admitted readings. Entries are
// never updated or deleted by this service; consumption is external.
type LogRepository interface {
	Append(ctx context.Context, rd sbsmodels.Reading) error
}
