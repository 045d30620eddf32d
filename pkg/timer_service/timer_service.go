package timer_service

import (
	"context"

	"stateful-stream/pkg/commtypes"
)

// TimerHandler receives timer firings. The handler for a computation is the
// processor wrapping it; a firing carries the identifier the timer was set
// with, the window it is scoped to, its scheduled timestamp and its domain.
type TimerHandler interface {
	OnTimer(ctx context.Context, timerID string, window commtypes.Window,
		timestampMs int64, domain commtypes.TimeDomain) error
}

// TimerService tracks the input watermark of one computation and schedules
// timers keyed by (namespace, identifier). Re-setting a timer for the same
// (namespace, identifier) replaces the previous deadline.
type TimerService interface {
	CurrentInputWatermarkMs() int64
	SetTimer(ctx context.Context, namespace string, timerID string,
		window commtypes.Window, timestampMs int64, domain commtypes.TimeDomain) error
}
