package processor

import (
	"context"
	"testing"

	"stateful-stream/pkg/commtypes"
	"stateful-stream/pkg/store"

	"golang.org/x/xerrors"
)

var errResolveFailed = xerrors.New("resolve failed")

// failingStateService fails to resolve one named partition and delegates the
// rest.
type failingStateService struct {
	inner    store.StateService
	failName string
}

func (f *failingStateService) Name() string {
	return f.inner.Name()
}

func (f *failingStateService) StateFor(ctx context.Context, namespace string, tag store.StateTag) (store.StateHandle, error) {
	if tag.Name == f.failName {
		return nil, errResolveFailed
	}
	return f.inner.StateFor(ctx, namespace, tag)
}

func TestCleanupVisitsAllDeclarationsDespiteFailure(t *testing.T) {
	ctx := context.Background()
	winSerde, err := commtypes.GetTimeWindowSerde(commtypes.JSON)
	if err != nil {
		t.Fatal(err.Error())
	}
	registry := store.NewStateRegistry("fn")
	for _, name := range []string{"alpha", "broken", "zeta"} {
		if err := registry.RegisterStateSpec(store.StateSpec{Name: name, Type: store.VALUE_STATE}); err != nil {
			t.Fatal(err.Error())
		}
	}
	inMem := store.NewInMemorySkipmapStateStore("test1")
	win, err := commtypes.NewTimeWindow(0, 10)
	if err != nil {
		t.Fatal(err.Error())
	}
	ns, err := store.WindowNamespace(winSerde, win)
	if err != nil {
		t.Fatal(err.Error())
	}
	for _, name := range []string{"alpha", "zeta"} {
		handle, err := inMem.StateFor(ctx, ns, store.StateTag{Name: name, Type: store.VALUE_STATE})
		if err != nil {
			t.Fatal(err.Error())
		}
		if err := handle.Put(ctx, "k", []byte("v")); err != nil {
			t.Fatal(err.Error())
		}
	}

	cleaner := NewStateServiceStateCleaner(
		&failingStateService{inner: inMem, failName: "broken"}, registry, winSerde)
	err = cleaner.ClearForWindow(ctx, win)
	if err == nil {
		t.Fatal("expected the resolution failure to surface")
	}
	// "broken" sorts between "alpha" and "zeta": the failure must not stop
	// the remaining declarations from being cleared
	if inMem.NumPartitions() != 0 {
		t.Fatalf("expected every resolvable partition cleared, %d left", inMem.NumPartitions())
	}
}
