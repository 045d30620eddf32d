package processor

import (
	"context"
	"fmt"

	"stateful-stream/pkg/commtypes"
	"stateful-stream/pkg/store"

	"github.com/rs/zerolog/log"
)

// StateCleaner releases all state partitions scoped to a window.
type StateCleaner interface {
	ClearForWindow(ctx context.Context, window commtypes.Window) error
}

// StateServiceStateCleaner implements StateCleaner on a state service and
// the declaration registry of the owning processing function.
type StateServiceStateCleaner struct {
	stateService store.StateService
	registry     *store.StateRegistry
	winSerde     commtypes.Serde
}

var _ = StateCleaner(&StateServiceStateCleaner{})

func NewStateServiceStateCleaner(stateService store.StateService,
	registry *store.StateRegistry, winSerde commtypes.Serde,
) *StateServiceStateCleaner {
	return &StateServiceStateCleaner{
		stateService: stateService,
		registry:     registry,
		winSerde:     winSerde,
	}
}

// ClearForWindow visits every declared state partition even after one of
// them fails to resolve or clear; failures are logged as they occur and the
// first one is returned once the full declaration set has been visited.
func (sc *StateServiceStateCleaner) ClearForWindow(ctx context.Context, window commtypes.Window) error {
	namespace, err := store.WindowNamespace(sc.winSerde, window)
	if err != nil {
		return err
	}
	var firstErr error
	for _, spec := range sc.registry.Specs() {
		handle, err := sc.stateService.StateFor(ctx, namespace, store.TagForSpec(spec))
		if err != nil {
			log.Error().Err(err).
				Str("func", sc.registry.FuncName()).
				Str("state", spec.Name).
				Str("ns", namespace).
				Msg("failed to resolve state partition for cleanup")
			if firstErr == nil {
				firstErr = fmt.Errorf("resolve state %s in ns %s: %v", spec.Name, namespace, err)
			}
			continue
		}
		if err := handle.Clear(ctx); err != nil {
			log.Error().Err(err).
				Str("func", sc.registry.FuncName()).
				Str("state", spec.Name).
				Str("ns", namespace).
				Msg("failed to clear state partition")
			if firstErr == nil {
				firstErr = fmt.Errorf("clear state %s in ns %s: %v", spec.Name, namespace, err)
			}
		}
	}
	return firstErr
}

// NoopStateCleaner pairs with NoopCleanupTimer in batch engines.
type NoopStateCleaner struct{}

var _ = StateCleaner(NoopStateCleaner{})

func (NoopStateCleaner) ClearForWindow(ctx context.Context, window commtypes.Window) error {
	return nil
}
