package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"stateful-stream/pkg/commtypes"
	"stateful-stream/pkg/env_config"
	"stateful-stream/pkg/hashfuncs"
	"stateful-stream/pkg/processor"
	"stateful-stream/pkg/redis_client"
	"stateful-stream/pkg/stats"
	"stateful-stream/pkg/store"
	"stateful-stream/pkg/timer_service"

	"github.com/Jeffail/gabs/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	FLAGS_config_file string
)

type demoConfig struct {
	windowSizeMs int64
	graceMs      int64
	numKeys      int
	eventsPerKey int
	maxEventTsMs int64
	watermarkLag int64
}

func parseConfig(configFile string) (*demoConfig, error) {
	byteVal, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}
	jsonParsed, err := gabs.ParseJSON(byteVal)
	if err != nil {
		return nil, err
	}
	return &demoConfig{
		windowSizeMs: int64(jsonParsed.S("WindowSizeMs").Data().(float64)),
		graceMs:      int64(jsonParsed.S("GraceMs").Data().(float64)),
		numKeys:      int(jsonParsed.S("NumKeys").Data().(float64)),
		eventsPerKey: int(jsonParsed.S("EventsPerKey").Data().(float64)),
		maxEventTsMs: int64(jsonParsed.S("MaxEventTsMs").Data().(float64)),
		watermarkLag: int64(jsonParsed.S("WatermarkLagMs").Data().(float64)),
	}, nil
}

// countStoreProcessor counts the elements of each window in a "counts" state
// partition; the stateful wrapper reclaims those partitions once the windows
// expire.
type countStoreProcessor struct {
	stateSvc store.StateService
	winSerde commtypes.Serde
	tag      store.StateTag
}

func (p *countStoreProcessor) StartBundle(ctx context.Context) error {
	return nil
}

func (p *countStoreProcessor) ProcessElement(ctx context.Context, value commtypes.WindowedMessage) error {
	ns, err := store.WindowNamespace(p.winSerde, value.Window())
	if err != nil {
		return err
	}
	handle, err := p.stateSvc.StateFor(ctx, ns, p.tag)
	if err != nil {
		return err
	}
	var count uint64
	cur, exists, err := handle.Get(ctx, "count")
	if err != nil {
		return err
	}
	if exists {
		count = binary.BigEndian.Uint64(cur)
	}
	count += 1
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, count)
	return handle.Put(ctx, "count", buf)
}

func (p *countStoreProcessor) OnTimer(ctx context.Context, timerID string, window commtypes.Window,
	timestampMs int64, domain commtypes.TimeDomain,
) error {
	return nil
}

func (p *countStoreProcessor) FinishBundle(ctx context.Context) error {
	return nil
}

func newStateService(name string) (store.StateService, error) {
	if env_config.STATE_BACKEND == "redis" {
		rdbArr := redis_client.GetRedisClients()
		if len(rdbArr) == 0 {
			return nil, fmt.Errorf("STATE_BACKEND=redis but REDIS_ADDR is empty")
		}
		return store.NewRedisStateStore(name, rdbArr), nil
	}
	return store.NewInMemorySkipmapStateStore(name), nil
}

// pumpKey replays one key's synthetic events through its own stateful
// processor; each key has its own timer service and watermark, which keeps
// deliveries for a key serialized.
func pumpKey(ctx context.Context, key int, conf *demoConfig, dropped *stats.AtomicCounter) error {
	windows, err := processor.NewTimeWindowsWithGrace(
		durationMs(conf.windowSizeMs), durationMs(conf.graceMs))
	if err != nil {
		return err
	}
	winSerde, err := commtypes.GetTimeWindowSerde(commtypes.MSGP)
	if err != nil {
		return err
	}
	registry := store.NewStateRegistry("windowedCount")
	err = registry.RegisterStateSpec(store.StateSpec{Name: "counts", Type: store.VALUE_STATE})
	if err != nil {
		return err
	}
	stateSvc, err := newStateService(fmt.Sprintf("demo-%d", key))
	if err != nil {
		return err
	}
	timerSvc := timer_service.NewInMemoryTimerService()
	inner := &countStoreProcessor{
		stateSvc: stateSvc,
		winSerde: winSerde,
		tag:      store.TagForSpec(store.StateSpec{Name: "counts", Type: store.VALUE_STATE}),
	}
	proc, err := processor.NewStatefulProcessor(inner, windows,
		processor.NewTimerServiceCleanupTimer(timerSvc, windows, winSerde),
		processor.NewStateServiceStateCleaner(stateSvc, registry, winSerde),
		processor.DroppedCounterFunc(func(n int64) {
			dropped.Tick(uint32(n))
		}))
	if err != nil {
		return err
	}
	timerSvc.RegisterHandler(proc)

	seed := hashfuncs.MurmurStringHasher{}.HashSum64(fmt.Sprintf("demo-%d", key))
	rnd := rand.New(rand.NewSource(int64(seed)))
	if err := proc.StartBundle(ctx); err != nil {
		return err
	}
	for i := 0; i < conf.eventsPerKey; i++ {
		ts := rnd.Int63n(conf.maxEventTsMs)
		matched, starts, err := windows.WindowsFor(ts)
		if err != nil {
			return err
		}
		wins := make([]commtypes.Window, 0, len(starts))
		for _, start := range starts {
			wins = append(wins, matched[start])
		}
		msg := commtypes.Message{Key: key, Value: i, Timestamp: ts}
		if err := proc.ProcessElement(ctx, commtypes.NewWindowedMessage(msg, wins...)); err != nil {
			return err
		}
		wm := ts - conf.watermarkLag
		if err := timerSvc.AdvanceWatermarkTo(ctx, wm); err != nil {
			return err
		}
	}
	if err := timerSvc.AdvanceWatermarkTo(ctx, conf.maxEventTsMs+conf.graceMs+conf.windowSizeMs); err != nil {
		return err
	}
	if err := proc.FinishBundle(ctx); err != nil {
		return err
	}
	log.Info().Int("key", key).Int("pendingTimers", timerSvc.NumPendingTimers()).
		Msg("finished key pump")
	return nil
}

func durationMs(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func main() {
	flag.StringVar(&FLAGS_config_file, "config", "demo.json", "path to demo config json")
	flag.Parse()
	conf, err := parseConfig(FLAGS_config_file)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}
	dropped := stats.NewAtomicCounter(processor.DROPPED_DUE_TO_LATENESS_COUNTER)
	ctx := context.Background()
	g, gctx := errgroup.WithContext(ctx)
	for key := 0; key < conf.numKeys; key++ {
		k := key
		g.Go(func() error {
			return pumpKey(gctx, k, conf, &dropped)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("demo pump failed")
	}
	dropped.Report()
	log.Info().Uint64("dropped", dropped.GetCount()).Msg("demo done")
}
