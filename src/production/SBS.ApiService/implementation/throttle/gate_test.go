package throttle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	logger "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Logger"
	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
)

type fakeThrottleRepo struct {
	last   string
	found  bool
	getErr error
	setErr error
	sets   []string
}

func (f *fakeThrottleRepo) GetLastLogTime(ctx context.Context) (string, bool, error) {
	return f.last, f.found, f.getErr
}

func (f *fakeThrottleRepo) SetLastLogTime(ctx context.Context, ts string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets = append(f.sets, ts)
	f.last = ts
	f.found = true
	return nil
}

func newTestGate(repo *fakeThrottleRepo) *Gate {
	return NewGate(repo, 20*time.Second, logger.GetGlobalLogger())
}

func TestShouldLogFirstReading(t *testing.T) {
	gate := newTestGate(&fakeThrottleRepo{found: false})

	ok, err := gate.ShouldLog(context.Background(), time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestShouldLogWindow(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeThrottleRepo{
		last:  base.Format(sbsmodels.TimeLayout),
		found: true,
	}
	gate := newTestGate(repo)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"5s later is suppressed", base.Add(5 * time.Second), false},
		{"19s later is suppressed", base.Add(19 * time.Second), false},
		{"exactly 20s later is admitted", base.Add(20 * time.Second), true},
		{"25s later is admitted", base.Add(25 * time.Second), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := gate.ShouldLog(context.Background(), tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestShouldLogStoreErrorIsFatal(t *testing.T) {
	storeErr := errors.New("connection refused")
	gate := newTestGate(&fakeThrottleRepo{getErr: storeErr})

	_, err := gate.ShouldLog(context.Background(), time.Now())
	assert.ErrorIs(t, err, storeErr)
}

func TestShouldLogCorruptMarkerAdmits(t *testing.T) {
	gate := newTestGate(&fakeThrottleRepo{last: "garbage", found: true})

	ok, err := gate.ShouldLog(context.Background(), time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecordLoggedWritesFormattedTimestamp(t *testing.T) {
	repo := &fakeThrottleRepo{}
	gate := newTestGate(repo)

	now := time.Date(2025, 3, 1, 12, 0, 42, 0, time.UTC)
	require.NoError(t, gate.RecordLogged(context.Background(), now))

	require.Len(t, repo.sets, 1)
	assert.Equal(t, "2025-03-01 12:00:42", repo.sets[0])
}

func TestRecordLoggedPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("write failed")
	gate := newTestGate(&fakeThrottleRepo{setErr: storeErr})

	err := gate.RecordLogged(context.Background(), time.Now())
	assert.ErrorIs(t, err, storeErr)
}
