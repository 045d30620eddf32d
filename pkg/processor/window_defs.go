package processor

import (
	"stateful-stream/pkg/commtypes"

	"golang.org/x/xerrors"
)

var (
	DurationLeqZero              = xerrors.New("Window duration should be larger than zero")
	WindowAdvanceLargerThanSize  = xerrors.New("Window advance interval should be less than window duration")
	WindowAdvanceSmallerThanZero = xerrors.New("Window advance interval should be larger than zero")
	SessionGapLeqZero            = xerrors.New("Session inactivity gap should be larger than zero")
)

// EnumerableWindowDefinition bundles a window assignment function with the
// grace period (allowed lateness) after a window's end during which late
// records are still accepted.
type EnumerableWindowDefinition interface {
	// MaxSize returns the largest window size (ms) this definition produces.
	MaxSize() int64
	// GracePeriodMs returns the allowed lateness in ms.
	GracePeriodMs() int64
	// WindowsFor returns the windows the given timestamp (ms) is assigned
	// to, keyed by window start, plus the starts in ascending order.
	WindowsFor(timestamp int64) (map[int64]commtypes.Window, []int64, error)
}

// MergingWindows marks window definitions whose assigned windows can later
// merge with each other (e.g. session windows). Stateful processing keys
// timers and state partitions by window, so merging definitions cannot be
// used there.
type MergingWindows interface {
	MergesWindows()
}
