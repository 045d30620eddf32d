package store

import (
	"testing"

	"stateful-stream/pkg/common_errors"

	"golang.org/x/xerrors"
)

func TestRegistryRejectsDuplicateSpec(t *testing.T) {
	registry := NewStateRegistry("fn")
	if err := registry.RegisterStateSpec(StateSpec{Name: "counts", Type: VALUE_STATE}); err != nil {
		t.Fatal(err.Error())
	}
	err := registry.RegisterStateSpec(StateSpec{Name: "counts", Type: BAG_STATE})
	if !xerrors.Is(err, common_errors.ErrStateSpecAlreadyRegistered) {
		t.Fatalf("expected duplicate registration error, got %v", err)
	}
}

func TestRegistrySpecsAreStable(t *testing.T) {
	registry := NewStateRegistry("fn")
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := registry.RegisterStateSpec(StateSpec{Name: name, Type: VALUE_STATE}); err != nil {
			t.Fatal(err.Error())
		}
	}
	specs := registry.Specs()
	expected := []string{"alpha", "mid", "zeta"}
	if len(specs) != len(expected) {
		t.Fatalf("expected %d specs, got %d", len(expected), len(specs))
	}
	for i, spec := range specs {
		if spec.Name != expected[i] {
			t.Fatalf("expected %s at %d, got %s", expected[i], i, spec.Name)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	registry := NewStateRegistry("fn")
	if err := registry.RegisterStateSpec(StateSpec{Name: "buffer", Type: BAG_STATE}); err != nil {
		t.Fatal(err.Error())
	}
	spec, err := registry.LookupSpec("buffer")
	if err != nil {
		t.Fatal(err.Error())
	}
	if spec.Type != BAG_STATE {
		t.Fatalf("expected bag state, got %v", spec.Type)
	}
	_, err = registry.LookupSpec("missing")
	if err != common_errors.ErrStateSpecNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestTagForSpec(t *testing.T) {
	tag := TagForSpec(StateSpec{Name: "counts", Type: VALUE_STATE})
	if tag.String() != "value/counts" {
		t.Fatalf("expected value/counts, got %s", tag.String())
	}
}
