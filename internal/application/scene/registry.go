package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/younwookim/slotmenu/internal/application/state"
)

var (
	// ErrUnknownState is returned when no scene is registered under a name.
	ErrUnknownState = errors.New("unknown state")
	// ErrDuplicateState is returned when a name is registered twice.
	ErrDuplicateState = errors.New("state already registered")
)

// Registry maps state names to their scenes.
// It performs no transition validation; any registered state may follow any other.
type Registry struct {
	scenes map[state.Name]Scene
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{scenes: make(map[state.Name]Scene)}
}

// Register adds a scene under name.
func (r *Registry) Register(name state.Name, s Scene) error {
	if s == nil {
		return fmt.Errorf("register %s: nil scene", name)
	}
	if _, ok := r.scenes[name]; ok {
		return fmt.Errorf("register %s: %w", name, ErrDuplicateState)
	}
	r.scenes[name] = s
	return nil
}

// Lookup returns the scene registered under name.
func (r *Registry) Lookup(name state.Name) (Scene, error) {
	s, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("lookup %s: %w", name, ErrUnknownState)
	}
	return s, nil
}

// Names returns the registered names in declaration order.
func (r *Registry) Names() []state.Name {
	names := make([]state.Name, 0, len(r.scenes))
	for n := range r.scenes {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
