// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	CraftSpawned      Type = "craft_spawned"
	CraftDestroyed    Type = "craft_destroyed"
	BeaconPlaced      Type = "beacon_placed"
	CommandIssued     Type = "command_issued"
	TargetSelected    Type = "target_selected"
	TargetLost        Type = "target_lost"
	CraftArrived      Type = "craft_arrived"
	SimulationStarted Type = "simulation_started"
	SimulationStopped Type = "simulation_stopped"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// CraftEvent carries craft lifecycle information
type CraftEvent struct {
	BaseEvent
	CraftID    uint64
	Controller string
}

// NewCraftEvent creates a new craft lifecycle event
func NewCraftEvent(eventType Type, source interface{}, craftID uint64, controller string) *CraftEvent {
	return &CraftEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		CraftID:    craftID,
		Controller: controller,
	}
}

// TargetEvent carries selection changes and target-lost notifications
type TargetEvent struct {
	BaseEvent
	Controller string
	TargetID   uint64 // zero when selection cleared
}

// NewTargetEvent creates a new targeting event
func NewTargetEvent(eventType Type, source interface{}, controller string, targetID uint64) *TargetEvent {
	return &TargetEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Controller: controller,
		TargetID:   targetID,
	}
}

// CommandEvent records a command accepted for a craft
type CommandEvent struct {
	BaseEvent
	CraftID uint64
	Command string
}

// NewCommandEvent creates a new command event
func NewCommandEvent(source interface{}, craftID uint64, command string) *CommandEvent {
	return &CommandEvent{
		BaseEvent: BaseEvent{
			EventType: CommandIssued,
			Source:    source,
		},
		CraftID: craftID,
		Command: command,
	}
}

// ArrivalEvent is raised when an approaching craft closes within the
// arrival epsilon of its goal. Arrival semantics belong to the subscriber;
// the craft keeps steering until told otherwise.
type ArrivalEvent struct {
	BaseEvent
	CraftID  uint64
	TargetID uint64
}

// NewArrivalEvent creates a new arrival event
func NewArrivalEvent(source interface{}, craftID, targetID uint64) *ArrivalEvent {
	return &ArrivalEvent{
		BaseEvent: BaseEvent{
			EventType: CraftArrived,
			Source:    source,
		},
		CraftID:  craftID,
		TargetID: targetID,
	}
}
