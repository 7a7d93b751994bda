// pkg/input/input_test.go
package input

import (
	"errors"
	"testing"

	"github.com/opd-ai/go-hovercraft/pkg/entity"
)

// recordingSink captures what the dispatcher forwards.
type recordingSink struct {
	cycles   []string
	commands []entity.Command
}

func (s *recordingSink) CycleTarget(controller string) (entity.ID, bool) {
	s.cycles = append(s.cycles, controller)
	return 42, true
}

func (s *recordingSink) IssueCommand(controller string, cmd entity.Command) error {
	s.commands = append(s.commands, cmd)
	return nil
}

func TestDispatcher_CycleTarget_Debounces(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 4)

	// A burst of key-repeat events; only the budget goes through.
	for i := 0; i < 20; i++ {
		d.CycleTarget("player")
	}
	if len(sink.cycles) != 4 {
		t.Errorf("sink received %d cycles, expected 4", len(sink.cycles))
	}
}

func TestDispatcher_CycleTarget_Unlimited(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 0)

	for i := 0; i < 20; i++ {
		d.CycleTarget("player")
	}
	if len(sink.cycles) != 20 {
		t.Errorf("sink received %d cycles, expected all 20 with limiting disabled", len(sink.cycles))
	}
}

func TestDispatcher_Orbit_RejectsBadRadius(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		wantErr bool
	}{
		{name: "positive_radius", radius: 50, wantErr: false},
		{name: "zero_radius", radius: 0, wantErr: true},
		{name: "negative_radius", radius: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			d := NewDispatcher(sink, 0)

			err := d.Orbit("player", 7, tt.radius, true)
			if (err != nil) != tt.wantErr {
				t.Errorf("Orbit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, entity.ErrInvalidCommand) {
					t.Errorf("error = %v, expected ErrInvalidCommand", err)
				}
				if len(sink.commands) != 0 {
					t.Error("rejected orbit still reached the sink")
				}
			} else if len(sink.commands) != 1 {
				t.Errorf("sink received %d commands, expected 1", len(sink.commands))
			}
		})
	}
}

func TestDispatcher_CommandConstruction(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 0)

	if err := d.Approach("player", 7); err != nil {
		t.Fatalf("Approach: %v", err)
	}
	if err := d.Orbit("player", 7, 25, true); err != nil {
		t.Fatalf("Orbit: %v", err)
	}
	if err := d.Idle("player"); err != nil {
		t.Fatalf("Idle: %v", err)
	}

	if len(sink.commands) != 3 {
		t.Fatalf("sink received %d commands, expected 3", len(sink.commands))
	}
	if sink.commands[0].Kind != entity.CommandApproach || sink.commands[0].TargetID != 7 {
		t.Errorf("approach command = %+v", sink.commands[0])
	}
	orbit := sink.commands[1]
	if orbit.Kind != entity.CommandOrbit || orbit.Radius != 25 || !orbit.Clockwise {
		t.Errorf("orbit command = %+v", orbit)
	}
	if sink.commands[2].Kind != entity.CommandIdle {
		t.Errorf("idle command = %+v", sink.commands[2])
	}
}
