package processor

import (
	"context"

	"stateful-stream/pkg/commtypes"
	"stateful-stream/pkg/common_errors"
	"stateful-stream/pkg/env_config"

	"github.com/rs/zerolog/log"
)

const (
	// GC_TIMER_ID is the well-known identifier of the per-window
	// garbage-collection timer.
	GC_TIMER_ID = "__StatefulParDoGcTimerId"
	// DROPPED_DUE_TO_LATENESS_COUNTER is the well-known name of the counter
	// tracking elements dropped because their window expired.
	DROPPED_DUE_TO_LATENESS_COUNTER = "StatefulParDoDropped"
)

// DroppedCounter is supplied by the hosting engine; the processor only ever
// increments it.
type DroppedCounter interface {
	AddValue(n int64)
}

// DroppedCounterFunc adapts a function to DroppedCounter.
type DroppedCounterFunc func(n int64)

func (f DroppedCounterFunc) AddValue(n int64) {
	f(n)
}

// StatefulProcessor wraps an inner BundleProcessor with the late-data and
// state garbage-collection policy of stateful windowed processing: it arms a
// GC timer for every window it forwards an element for, drops elements whose
// window state has already been reclaimed, and releases a window's state
// when its GC timer fires.
//
// Deliveries for one key-and-window partition are serialized by the hosting
// engine; the processor itself holds no locks.
type StatefulProcessor struct {
	inner                BundleProcessor
	windows              EnumerableWindowDefinition
	cleanupTimer         CleanupTimer
	stateCleaner         StateCleaner
	droppedDueToLateness DroppedCounter
}

var _ = BundleProcessor(&StatefulProcessor{})

// NewStatefulProcessor refuses merging window definitions: GC relies on one
// timer and one state namespace per window, which merging would break.
func NewStatefulProcessor(inner BundleProcessor, windows EnumerableWindowDefinition,
	cleanupTimer CleanupTimer, stateCleaner StateCleaner, droppedDueToLateness DroppedCounter,
) (*StatefulProcessor, error) {
	if _, merging := windows.(MergingWindows); merging {
		return nil, common_errors.ErrMergingWindowsNotSupported
	}
	return &StatefulProcessor{
		inner:                inner,
		windows:              windows,
		cleanupTimer:         cleanupTimer,
		stateCleaner:         stateCleaner,
		droppedDueToLateness: droppedDueToLateness,
	}, nil
}

func gcDeadlineMs(windows EnumerableWindowDefinition, window commtypes.Window) int64 {
	return window.MaxTimestamp() + windows.GracePeriodMs()
}

func (p *StatefulProcessor) StartBundle(ctx context.Context) error {
	return p.inner.StartBundle(ctx)
}

// ProcessElement evaluates each tagged window of the value independently:
// per single-window value it either drops (window already expired) or arms
// the window's GC timer and forwards.
func (p *StatefulProcessor) ProcessElement(ctx context.Context, value commtypes.WindowedMessage) error {
	for _, single := range value.ExplodeWindows() {
		window := single.Window()
		dropped, err := p.dropLateData(ctx, window)
		if err != nil {
			return err
		}
		if dropped {
			continue
		}
		if err := p.cleanupTimer.SetForWindow(ctx, window); err != nil {
			return err
		}
		if err := p.inner.ProcessElement(ctx, single); err != nil {
			return err
		}
	}
	return nil
}

func (p *StatefulProcessor) dropLateData(ctx context.Context, window commtypes.Window) (bool, error) {
	gcTimeMs := gcDeadlineMs(p.windows, window)
	inputWmMs, err := p.cleanupTimer.CurrentInputWatermarkMs(ctx)
	if err != nil {
		return false, err
	}
	if gcTimeMs < inputWmMs {
		// The element is too late for this window.
		p.droppedDueToLateness.AddValue(1)
		if env_config.WINDOW_TRACE {
			log.Debug().
				Int64("winStart", window.Start()).
				Int64("winEnd", window.End()).
				Int64("inputWm", inputWmMs).
				Msg("dropping element for window too far behind input watermark")
		}
		return true, nil
	}
	return false, nil
}

// OnTimer intercepts the window's GC firing and releases its state instead
// of forwarding. Any other event-time firing is forwarded as is: the engine
// only fires event-time timers once the watermark reaches their timestamp,
// so they are on time by construction. Timers in other domains carry no such
// guarantee and are re-checked against the watermark.
func (p *StatefulProcessor) OnTimer(ctx context.Context, timerID string, window commtypes.Window,
	timestampMs int64, domain commtypes.TimeDomain,
) error {
	isEventTimer := domain == commtypes.EVENT_TIME
	gcTimeMs := gcDeadlineMs(p.windows, window)
	if isEventTimer && timerID == GC_TIMER_ID && gcTimeMs == timestampMs {
		return p.stateCleaner.ClearForWindow(ctx, window)
	}
	if !isEventTimer {
		dropped, err := p.dropLateData(ctx, window)
		if err != nil {
			return err
		}
		if dropped {
			return nil
		}
	}
	return p.inner.OnTimer(ctx, timerID, window, timestampMs, domain)
}

func (p *StatefulProcessor) FinishBundle(ctx context.Context) error {
	return p.inner.FinishBundle(ctx)
}
