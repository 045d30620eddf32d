package processor

import (
	"time"

	"stateful-stream/pkg/commtypes"
)

//
// The fixed-size time-based window specifications used for stateful processing.
//
// The semantics of time-based windows are: Every T1 (advance) milliseconds, consider the interval
// of T2 (size) milliseconds.
//
//  - If {@code advance < size} a hopping window is defined:
//    it discretizes a stream into overlapping windows, which implies that a record may be contained
//    in one or more "adjacent" windows.
//
//  - If {@code advance == size} a tumbling window is defined:
//    it discretizes a stream into non-overlapping windows, which implies that a record is only ever
//    contained in one and only one tumbling window.
//
// The specified TimeWindows are aligned to the epoch, meaning the first window starts at
// timestamp zero. For example, hopping windows with size of 5000ms and advance of 3000ms have
// window boundaries [0;5000),[3000;8000),...
//
type TimeWindows struct {
	// size of the windows in ms
	SizeMs int64
	// size of the window's advance interval in ms, i.e., by how much a window moves forward
	// relative to the previous one.
	AdvanceMs int64
	graceMs   int64
}

var _ = EnumerableWindowDefinition(&TimeWindows{})

// NewTimeWindowsNoGrace returns a tumbling window definition with the given
// size, the advance interval equal to the size, and no grace period. The
// interval represented by the N-th window is [N*size, N*size+size).
func NewTimeWindowsNoGrace(size time.Duration) (*TimeWindows, error) {
	sizeMs := size.Milliseconds()
	if sizeMs <= 0 {
		return nil, DurationLeqZero
	}
	return &TimeWindows{
		SizeMs:    sizeMs,
		AdvanceMs: sizeMs,
		graceMs:   0,
	}, nil
}

// NewTimeWindowsWithGrace is NewTimeWindowsNoGrace plus a grace period:
// records that arrive up to afterWindowEnd past the window end are still
// accepted.
func NewTimeWindowsWithGrace(size time.Duration, afterWindowEnd time.Duration) (*TimeWindows, error) {
	sizeMs := size.Milliseconds()
	if sizeMs <= 0 {
		return nil, DurationLeqZero
	}
	afterWindowEndMs := afterWindowEnd.Milliseconds()
	if afterWindowEndMs <= 0 {
		return nil, DurationLeqZero
	}
	return &TimeWindows{
		SizeMs:    sizeMs,
		AdvanceMs: sizeMs,
		graceMs:   afterWindowEndMs,
	}, nil
}

// AdvanceBy sets the advance ("hop") of the window, which specifies by how
// much a window moves forward relative to the previous one, turning the
// definition into hopping windows. Requires 0 < advance <= size.
func (w *TimeWindows) AdvanceBy(advance time.Duration) (*TimeWindows, error) {
	advanceMs := advance.Milliseconds()
	if advanceMs <= 0 {
		return nil, WindowAdvanceSmallerThanZero
	}
	if advanceMs > w.SizeMs {
		return nil, WindowAdvanceLargerThanSize
	}
	return &TimeWindows{
		SizeMs:    w.SizeMs,
		AdvanceMs: advanceMs,
		graceMs:   w.graceMs,
	}, nil
}

func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	} else {
		return b
	}
}

func (w *TimeWindows) WindowsFor(timestamp int64) (map[int64]commtypes.Window, []int64, error) {
	windowStart := MaxInt64(0, timestamp-w.SizeMs+w.AdvanceMs) / w.AdvanceMs * w.AdvanceMs
	windows := make(map[int64]commtypes.Window)
	keys := make([]int64, 0)
	for windowStart <= timestamp {
		window, err := commtypes.NewTimeWindow(windowStart, windowStart+w.SizeMs)
		if err != nil {
			return nil, nil, err
		}
		windows[windowStart] = window
		keys = append(keys, windowStart)
		windowStart += w.AdvanceMs
	}
	return windows, keys, nil
}

func (w *TimeWindows) MaxSize() int64 {
	return w.SizeMs
}

func (w *TimeWindows) GracePeriodMs() int64 {
	return w.graceMs
}
