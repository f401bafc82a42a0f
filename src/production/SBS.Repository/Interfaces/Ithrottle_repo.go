package interfaces

import "context"

// ThrottleRepository persists the single global last-log-time marker that
// gates history-log admission.
type ThrottleRepository interface {
	// GetLastLogTime returns the stored marker, or found=false if no reading
	// has ever been logged.
	GetLastLogTime(ctx context.Context) (string, bool, error)

	// SetLastLogTime overwrites the marker with a formatted timestamp.
	SetLastLogTime(ctx context.Context, ts string) error
}
