// pkg/entity/command_test.go
package entity

import (
	"errors"
	"testing"

	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

func TestCommand_Validate(t *testing.T) {
	tests := []struct {
		name            string
		cmd             Command
		owner           ID
		allowSelfTarget bool
		wantErr         bool
	}{
		{
			name:    "idle_always_valid",
			cmd:     NewIdle(),
			owner:   1,
			wantErr: false,
		},
		{
			name:    "approach_valid_target",
			cmd:     NewApproach(2),
			owner:   1,
			wantErr: false,
		},
		{
			name:    "approach_zero_target",
			cmd:     NewApproach(0),
			owner:   1,
			wantErr: true,
		},
		{
			name:    "approach_self_rejected",
			cmd:     NewApproach(1),
			owner:   1,
			wantErr: true,
		},
		{
			name:            "approach_self_allowed_by_policy",
			cmd:             NewApproach(1),
			owner:           1,
			allowSelfTarget: true,
			wantErr:         false,
		},
		{
			name:    "orbit_valid",
			cmd:     NewOrbit(2, 50, true),
			owner:   1,
			wantErr: false,
		},
		{
			name:    "orbit_zero_radius",
			cmd:     NewOrbit(2, 0, false),
			owner:   1,
			wantErr: true,
		},
		{
			name:    "orbit_negative_radius",
			cmd:     NewOrbit(2, -1, false),
			owner:   1,
			wantErr: true,
		},
		{
			name:    "unknown_kind",
			cmd:     Command{Kind: CommandKind(99)},
			owner:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate(tt.owner, tt.allowSelfTarget)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("Validate() error = %v, expected ErrInvalidCommand", err)
			}
		})
	}
}

func TestCraft_SetCommand_RejectionKeepsPrior(t *testing.T) {
	craft := NewCraft(1, "Protagonist", Gnat, "player", physics.Vector2D{})
	prior := NewApproach(2)
	if err := craft.SetCommand(prior, false); err != nil {
		t.Fatalf("SetCommand(approach) unexpected error: %v", err)
	}

	// An invalid orbit must leave the approach untouched.
	err := craft.SetCommand(NewOrbit(2, -1, false), false)
	if err == nil {
		t.Fatal("SetCommand(invalid orbit) expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("error = %v, expected ErrInvalidCommand", err)
	}
	if craft.Command != prior {
		t.Errorf("command = %+v, expected prior command %+v", craft.Command, prior)
	}
}

func TestCraft_SetCommand_ReplacesAtomically(t *testing.T) {
	craft := NewCraft(1, "Protagonist", Gnat, "player", physics.Vector2D{})

	orbit := NewOrbit(3, 25, true)
	if err := craft.SetCommand(orbit, false); err != nil {
		t.Fatalf("SetCommand(orbit) unexpected error: %v", err)
	}
	if craft.Command != orbit {
		t.Errorf("command = %+v, expected %+v", craft.Command, orbit)
	}

	if err := craft.SetCommand(NewIdle(), false); err != nil {
		t.Fatalf("SetCommand(idle) unexpected error: %v", err)
	}
	if craft.Command.Kind != CommandIdle {
		t.Errorf("command kind = %v, expected idle", craft.Command.Kind)
	}
}
