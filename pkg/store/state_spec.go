package store

import (
	"fmt"
	"sort"

	"stateful-stream/pkg/common_errors"
)

type StateType uint8

const (
	VALUE_STATE StateType = 0
	BAG_STATE   StateType = 1
	MAP_STATE   StateType = 2
)

func (t StateType) String() string {
	switch t {
	case VALUE_STATE:
		return "value"
	case BAG_STATE:
		return "bag"
	case MAP_STATE:
		return "map"
	default:
		return "unknown"
	}
}

// StateSpec declares one named, typed state partition owned by a processing
// function. The set of specs for a function is fixed at registration time.
type StateSpec struct {
	Name string
	Type StateType
}

// StateTag addresses a partition inside a namespace; it is built from a
// spec's name and type.
type StateTag struct {
	Name string
	Type StateType
}

func TagForSpec(spec StateSpec) StateTag {
	return StateTag{
		Name: spec.Name,
		Type: spec.Type,
	}
}

func (t StateTag) String() string {
	return fmt.Sprintf("%s/%s", t.Type, t.Name)
}

// StateRegistry holds the state declarations of one processing function.
// It replaces runtime introspection of the function object: every spec is
// registered explicitly and the set is enumerable afterwards.
type StateRegistry struct {
	specs    map[string]StateSpec
	funcName string
}

func NewStateRegistry(funcName string) *StateRegistry {
	return &StateRegistry{
		funcName: funcName,
		specs:    make(map[string]StateSpec),
	}
}

func (r *StateRegistry) FuncName() string {
	return r.funcName
}

func (r *StateRegistry) RegisterStateSpec(spec StateSpec) error {
	if _, ok := r.specs[spec.Name]; ok {
		return fmt.Errorf("register %s for %s: %w", spec.Name, r.funcName,
			common_errors.ErrStateSpecAlreadyRegistered)
	}
	r.specs[spec.Name] = spec
	return nil
}

func (r *StateRegistry) LookupSpec(name string) (StateSpec, error) {
	spec, ok := r.specs[name]
	if !ok {
		return StateSpec{}, common_errors.ErrStateSpecNotFound
	}
	return spec, nil
}

// Specs returns the declarations in a stable order.
func (r *StateRegistry) Specs() []StateSpec {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	specs := make([]StateSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, r.specs[name])
	}
	return specs
}
