package clock

import (
	"fmt"
	"time"
)

// TimeSource supplies the current instant in the station's reporting
// timezone. Every timestamp written by the service comes from here; device
// clocks are never trusted.
type TimeSource interface {
	Now() time.Time
}

// FixedOffset is a TimeSource pinned to a fixed UTC offset. The deployed
// stations report in Malaysia time (UTC+8) regardless of server locale.
type FixedOffset struct {
	loc *time.Location
}

func NewFixedOffset(offsetHours int) *FixedOffset {
	name := fmt.Sprintf("UTC+%d", offsetHours)
	if offsetHours < 0 {
		name = fmt.Sprintf("UTC%d", offsetHours)
	}
	return &FixedOffset{loc: time.FixedZone(name, offsetHours*3600)}
}

func (c *FixedOffset) Now() time.Time {
	return time.Now().In(c.loc)
}
