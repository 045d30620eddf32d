package processor

import (
	"time"

	"stateful-stream/pkg/commtypes"
)

// SessionWindows groups records by periods of activity: a record extends a
// session window by the inactivity gap, and two session windows whose
// extended intervals touch are merged into one. Because assigned windows can
// merge after the fact, SessionWindows cannot back stateful processing.
type SessionWindows struct {
	inactivityGapMs int64
	graceMs         int64
}

var (
	_ = EnumerableWindowDefinition(&SessionWindows{})
	_ = MergingWindows(&SessionWindows{})
)

func NewSessionWindowsWithGrace(inactivityGap time.Duration, afterWindowEnd time.Duration) (*SessionWindows, error) {
	gapMs := inactivityGap.Milliseconds()
	if gapMs <= 0 {
		return nil, SessionGapLeqZero
	}
	graceMs := afterWindowEnd.Milliseconds()
	if graceMs < 0 {
		return nil, DurationLeqZero
	}
	return &SessionWindows{
		inactivityGapMs: gapMs,
		graceMs:         graceMs,
	}, nil
}

func (w *SessionWindows) MergesWindows() {}

func (w *SessionWindows) MaxSize() int64 {
	return w.inactivityGapMs
}

func (w *SessionWindows) GracePeriodMs() int64 {
	return w.graceMs
}

// WindowsFor assigns the initial single-record session; later merging is the
// job of a merging-aware window manager, which this module does not provide.
func (w *SessionWindows) WindowsFor(timestamp int64) (map[int64]commtypes.Window, []int64, error) {
	window, err := commtypes.NewTimeWindow(timestamp, timestamp+w.inactivityGapMs)
	if err != nil {
		return nil, nil, err
	}
	return map[int64]commtypes.Window{timestamp: window}, []int64{timestamp}, nil
}
