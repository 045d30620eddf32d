package processor

import (
	"context"

	"stateful-stream/pkg/commtypes"
)

// BundleProcessor is the delivery contract of a per-key, per-window
// processing function. A bundle brackets a batch of element and timer
// deliveries between StartBundle and FinishBundle.
type BundleProcessor interface {
	StartBundle(ctx context.Context) error
	// ProcessElement handles one windowed value; the value may be tagged
	// with more than one window.
	ProcessElement(ctx context.Context, value commtypes.WindowedMessage) error
	// OnTimer handles the firing of a timer previously set for window.
	OnTimer(ctx context.Context, timerID string, window commtypes.Window,
		timestampMs int64, domain commtypes.TimeDomain) error
	FinishBundle(ctx context.Context) error
}
