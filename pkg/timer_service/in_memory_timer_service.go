package timer_service

import (
	"context"
	"math"
	"strings"

	"stateful-stream/pkg/commtypes"
	"stateful-stream/pkg/common_errors"
	"stateful-stream/pkg/utils/syncutils"

	"github.com/gammazero/deque"
	"github.com/google/btree"
)

type timerEntry struct {
	window      commtypes.Window
	namespace   string
	timerID     string
	timestampMs int64
	domain      commtypes.TimeDomain
}

func timerEntryLess(a, b *timerEntry) bool {
	if a.timestampMs != b.timestampMs {
		return a.timestampMs < b.timestampMs
	}
	if a.namespace != b.namespace {
		return strings.Compare(a.namespace, b.namespace) < 0
	}
	return strings.Compare(a.timerID, b.timerID) < 0
}

func timerKey(namespace string, timerID string) string {
	return namespace + "|" + timerID
}

// InMemoryTimerService keeps pending timers ordered by deadline and fires
// event-time timers as the watermark advances past them. Firings for one
// advance are delivered in deadline order, one at a time.
type InMemoryTimerService struct {
	handler     TimerHandler
	pending     map[string]*timerEntry
	eventTimers *btree.BTreeG[*timerEntry]
	procTimers  *btree.BTreeG[*timerEntry]
	mux         syncutils.Mutex
	watermarkMs int64
	procTimeMs  int64
	closed      bool
}

var _ = TimerService(&InMemoryTimerService{})

func NewInMemoryTimerService() *InMemoryTimerService {
	return &InMemoryTimerService{
		pending:     make(map[string]*timerEntry),
		eventTimers: btree.NewG(2, timerEntryLess),
		procTimers:  btree.NewG(2, timerEntryLess),
		watermarkMs: math.MinInt64,
		procTimeMs:  math.MinInt64,
	}
}

// RegisterHandler must be called before any timer can fire.
func (ts *InMemoryTimerService) RegisterHandler(handler TimerHandler) {
	ts.mux.Lock()
	defer ts.mux.Unlock()
	ts.handler = handler
}

func (ts *InMemoryTimerService) CurrentInputWatermarkMs() int64 {
	ts.mux.Lock()
	defer ts.mux.Unlock()
	return ts.watermarkMs
}

func (ts *InMemoryTimerService) SetTimer(ctx context.Context, namespace string, timerID string,
	window commtypes.Window, timestampMs int64, domain commtypes.TimeDomain,
) error {
	ts.mux.Lock()
	defer ts.mux.Unlock()
	if ts.closed {
		return common_errors.ErrTimerServiceClosed
	}
	tree, err := ts.treeFor(domain)
	if err != nil {
		return err
	}
	key := timerKey(namespace, timerID)
	if prev, ok := ts.pending[key]; ok {
		if prev.timestampMs == timestampMs && prev.domain == domain {
			return nil
		}
		prevTree, _ := ts.treeFor(prev.domain)
		prevTree.Delete(prev)
	}
	entry := &timerEntry{
		namespace:   namespace,
		timerID:     timerID,
		window:      window,
		timestampMs: timestampMs,
		domain:      domain,
	}
	ts.pending[key] = entry
	tree.ReplaceOrInsert(entry)
	return nil
}

func (ts *InMemoryTimerService) treeFor(domain commtypes.TimeDomain) (*btree.BTreeG[*timerEntry], error) {
	switch domain {
	case commtypes.EVENT_TIME:
		return ts.eventTimers, nil
	case commtypes.PROCESSING_TIME:
		return ts.procTimers, nil
	default:
		return nil, common_errors.ErrUnrecognizedTimeDomain
	}
}

// AdvanceWatermarkTo moves the input watermark forward and fires every
// event-time timer whose deadline the watermark has reached. A regressing
// watermark is ignored.
func (ts *InMemoryTimerService) AdvanceWatermarkTo(ctx context.Context, watermarkMs int64) error {
	ts.mux.Lock()
	if watermarkMs <= ts.watermarkMs {
		ts.mux.Unlock()
		return nil
	}
	ts.watermarkMs = watermarkMs
	due := ts.collectDueLocked(ts.eventTimers, watermarkMs)
	handler := ts.handler
	ts.mux.Unlock()
	return deliver(ctx, handler, due)
}

// AdvanceProcessingTimeTo fires every processing-time timer whose deadline
// has passed.
func (ts *InMemoryTimerService) AdvanceProcessingTimeTo(ctx context.Context, nowMs int64) error {
	ts.mux.Lock()
	if nowMs <= ts.procTimeMs {
		ts.mux.Unlock()
		return nil
	}
	ts.procTimeMs = nowMs
	due := ts.collectDueLocked(ts.procTimers, nowMs)
	handler := ts.handler
	ts.mux.Unlock()
	return deliver(ctx, handler, due)
}

func (ts *InMemoryTimerService) collectDueLocked(tree *btree.BTreeG[*timerEntry], upToMs int64) *deque.Deque[*timerEntry] {
	due := deque.New[*timerEntry]()
	for {
		entry, ok := tree.Min()
		if !ok || entry.timestampMs > upToMs {
			break
		}
		tree.DeleteMin()
		delete(ts.pending, timerKey(entry.namespace, entry.timerID))
		due.PushBack(entry)
	}
	return due
}

func deliver(ctx context.Context, handler TimerHandler, due *deque.Deque[*timerEntry]) error {
	if handler == nil && due.Len() > 0 {
		return common_errors.ErrNoTimerHandler
	}
	for due.Len() > 0 {
		entry := due.PopFront()
		err := handler.OnTimer(ctx, entry.timerID, entry.window, entry.timestampMs, entry.domain)
		if err != nil {
			return err
		}
	}
	return nil
}

// NumPendingTimers reports how many timers are currently armed.
func (ts *InMemoryTimerService) NumPendingTimers() int {
	ts.mux.Lock()
	defer ts.mux.Unlock()
	return len(ts.pending)
}

func (ts *InMemoryTimerService) Close() {
	ts.mux.Lock()
	defer ts.mux.Unlock()
	ts.closed = true
}
