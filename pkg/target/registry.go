// pkg/target/registry.go
package target

import (
	"sort"
	"sync"

	"github.com/opd-ai/go-hovercraft/pkg/entity"
)

// Policy configures targeting eligibility rules. Mutual targeting is always
// permitted; whether a controller may select its own craft is a policy choice.
type Policy struct {
	AllowSelfTarget bool
}

// controllerEntry holds the per-controller targeting state. Each controller
// owns its entry exclusively; player input and bot decisions never touch
// another controller's selection.
type controllerEntry struct {
	ownCraft entity.ID
	selected entity.ID // zero means no selection
}

// Registry tracks which entities are eligible targets and which target each
// controller currently has selected. Cycling order is ascending entity ID,
// so it is deterministic across runs.
type Registry struct {
	mu       sync.RWMutex
	policy   Policy
	eligible map[entity.ID]struct{}
	entries  map[string]*controllerEntry
}

// NewRegistry creates an empty registry with the given policy
func NewRegistry(policy Policy) *Registry {
	return &Registry{
		policy:   policy,
		eligible: make(map[entity.ID]struct{}),
		entries:  make(map[string]*controllerEntry),
	}
}

// Register creates the entry for a controller and records which craft it
// owns, so the self-targeting policy can be enforced during cycling.
func (r *Registry) Register(controller string, ownCraft entity.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[controller] = &controllerEntry{ownCraft: ownCraft}
}

// Unregister removes a controller's entry
func (r *Registry) Unregister(controller string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, controller)
}

// AddTarget marks an entity as eligible for targeting
func (r *Registry) AddTarget(id entity.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.eligible[id] = struct{}{}
}

// RemoveTarget removes an entity from the eligible set and clears every
// selection that pointed at it. Must be called the moment an entity is
// destroyed so no selection is left dangling.
func (r *Registry) RemoveTarget(id entity.ID) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.eligible, id)

	var cleared []string
	for controller, entry := range r.entries {
		if entry.selected == id {
			entry.selected = 0
			cleared = append(cleared, controller)
		}
	}
	return cleared
}

// CycleTarget advances the controller's selection exactly one step forward
// through the eligible set in ascending ID order, wrapping around. With no
// eligible targets the selection becomes none and ok is false.
func (r *Registry) CycleTarget(controller string) (entity.ID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[controller]
	if !ok {
		return 0, false
	}

	order := r.cycleOrder(entry)
	if len(order) == 0 {
		entry.selected = 0
		return 0, false
	}

	// Find the current selection and step past it. A selection that is no
	// longer in the order restarts from the beginning.
	next := order[0]
	for i, id := range order {
		if id == entry.selected {
			next = order[(i+1)%len(order)]
			break
		}
	}
	entry.selected = next
	return next, true
}

// cycleOrder returns the eligible IDs the controller may select, sorted
// ascending. Callers must hold the lock.
func (r *Registry) cycleOrder(entry *controllerEntry) []entity.ID {
	order := make([]entity.ID, 0, len(r.eligible))
	for id := range r.eligible {
		if id == entry.ownCraft && !r.policy.AllowSelfTarget {
			continue
		}
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return order
}

// ClearIfInvalid clears the controller's selection if the selected target is
// no longer eligible. Returns true if a selection was cleared.
//
// RemoveTarget already scrubs every selection pointing at the entity it
// removes, so callers that only mutate eligibility through RemoveTarget
// never hold a dangling selection. This is the repair path for anyone
// editing the eligible set some other way.
func (r *Registry) ClearIfInvalid(controller string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[controller]
	if !ok || entry.selected == 0 {
		return false
	}
	if _, eligible := r.eligible[entry.selected]; eligible {
		return false
	}
	entry.selected = 0
	return true
}

// Selected returns the controller's current selection, if any
func (r *Registry) Selected(controller string) (entity.ID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[controller]
	if !ok || entry.selected == 0 {
		return 0, false
	}
	return entry.selected, true
}

// Eligible returns the current eligible target IDs in ascending order
func (r *Registry) Eligible() []entity.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]entity.ID, 0, len(r.eligible))
	for id := range r.eligible {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
