// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestBus_SubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()

	received := 0
	bus.Subscribe(TargetSelected, func(e Event) {
		received++
		if e.GetType() != TargetSelected {
			t.Errorf("handler got type %v, expected TargetSelected", e.GetType())
		}
	})

	bus.Publish(NewTargetEvent(TargetSelected, nil, "player", 7))
	bus.Publish(NewTargetEvent(TargetSelected, nil, "player", 8))

	if received != 2 {
		t.Errorf("handler called %d times, expected 2", received)
	}
}

func TestBus_TypeIsolation(t *testing.T) {
	bus := NewEventBus()

	selectedCalls := 0
	lostCalls := 0
	bus.Subscribe(TargetSelected, func(e Event) { selectedCalls++ })
	bus.Subscribe(TargetLost, func(e Event) { lostCalls++ })

	bus.Publish(NewTargetEvent(TargetSelected, nil, "player", 7))

	if selectedCalls != 1 {
		t.Errorf("selected handler called %d times, expected 1", selectedCalls)
	}
	if lostCalls != 0 {
		t.Errorf("lost handler called %d times, expected 0", lostCalls)
	}
}

func TestBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	for i := 0; i < 3; i++ {
		bus.Subscribe(CraftArrived, func(e Event) { calls++ })
	}

	bus.Publish(NewArrivalEvent(nil, 1, 2))

	if calls != 3 {
		t.Errorf("handlers called %d times total, expected 3", calls)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	// Must not panic.
	bus.Publish(NewCommandEvent(nil, 1, "approach"))
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewEventBus()

	var mu sync.Mutex
	received := 0
	bus.Subscribe(CraftSpawned, func(e Event) {
		mu.Lock()
		received++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			bus.Publish(NewCraftEvent(CraftSpawned, nil, uint64(n), "player"))
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if received != 10 {
		t.Errorf("received %d events, expected 10", received)
	}
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected Type
	}{
		{name: "craft_event", event: NewCraftEvent(CraftDestroyed, nil, 1, "player"), expected: CraftDestroyed},
		{name: "target_event", event: NewTargetEvent(TargetLost, nil, "player", 2), expected: TargetLost},
		{name: "command_event", event: NewCommandEvent(nil, 1, "orbit"), expected: CommandIssued},
		{name: "arrival_event", event: NewArrivalEvent(nil, 1, 2), expected: CraftArrived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.GetType(); got != tt.expected {
				t.Errorf("GetType() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
