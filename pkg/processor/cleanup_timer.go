package processor

import (
	"context"
	"fmt"
	"math"

	"stateful-stream/pkg/commtypes"
	"stateful-stream/pkg/store"
	"stateful-stream/pkg/timer_service"
)

// CleanupTimer decides when the state of a window can be cleaned.
//
// A hosting engine either (a) arms a timer for the expiration time of every
// window it forwards, or (b) needs no timer at all because it is a batch
// engine that discards state when the computation is done. The engine picks
// the variant at wiring time.
type CleanupTimer interface {
	// CurrentInputWatermarkMs returns the local input watermark of this
	// computation in the event-time domain.
	CurrentInputWatermarkMs(ctx context.Context) (int64, error)
	// SetForWindow arms the garbage-collection timer of the window.
	// Re-arming the same window is idempotent.
	SetForWindow(ctx context.Context, window commtypes.Window) error
}

// TimerServiceCleanupTimer implements CleanupTimer on a timer service.
type TimerServiceCleanupTimer struct {
	timerService timer_service.TimerService
	windows      EnumerableWindowDefinition
	winSerde     commtypes.Serde
}

var _ = CleanupTimer(&TimerServiceCleanupTimer{})

func NewTimerServiceCleanupTimer(timerService timer_service.TimerService,
	windows EnumerableWindowDefinition, winSerde commtypes.Serde,
) *TimerServiceCleanupTimer {
	return &TimerServiceCleanupTimer{
		timerService: timerService,
		windows:      windows,
		winSerde:     winSerde,
	}
}

func (ct *TimerServiceCleanupTimer) CurrentInputWatermarkMs(ctx context.Context) (int64, error) {
	return ct.timerService.CurrentInputWatermarkMs(), nil
}

func (ct *TimerServiceCleanupTimer) SetForWindow(ctx context.Context, window commtypes.Window) error {
	namespace, err := store.WindowNamespace(ct.winSerde, window)
	if err != nil {
		return err
	}
	gcTimeMs := gcDeadlineMs(ct.windows, window)
	err = ct.timerService.SetTimer(ctx, namespace, GC_TIMER_ID, window, gcTimeMs, commtypes.EVENT_TIME)
	if err != nil {
		return fmt.Errorf("set gc timer for ns %s at %d: %v", namespace, gcTimeMs, err)
	}
	return nil
}

// NoopCleanupTimer is the batch variant: state is discarded wholesale when
// the computation finishes, so no timers are armed and nothing is ever
// considered late.
type NoopCleanupTimer struct{}

var _ = CleanupTimer(NoopCleanupTimer{})

func (NoopCleanupTimer) CurrentInputWatermarkMs(ctx context.Context) (int64, error) {
	return math.MinInt64, nil
}

func (NoopCleanupTimer) SetForWindow(ctx context.Context, window commtypes.Window) error {
	return nil
}
