// pkg/entity/craft_test.go
package entity

import (
	"testing"

	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

func TestNewCraft(t *testing.T) {
	pos := physics.Vector2D{X: 50, Y: -20}
	craft := NewCraft(7, "Antagonist", Gubbins, "bot-1", pos)

	if craft.GetID() != 7 {
		t.Errorf("GetID() = %v, expected 7", craft.GetID())
	}
	if craft.GetPosition() != pos {
		t.Errorf("GetPosition() = %v, expected %v", craft.GetPosition(), pos)
	}
	if !craft.IsActive() {
		t.Error("IsActive() = false, expected new craft to be active")
	}
	if craft.Command.Kind != CommandIdle {
		t.Errorf("initial command = %v, expected idle", craft.Command.Kind)
	}
	if craft.Body.Velocity.Length() != 0 {
		t.Errorf("initial speed = %v, expected at rest", craft.Body.Velocity.Length())
	}
}

func TestGetClassLimits(t *testing.T) {
	tests := []struct {
		name  string
		class CraftClass
	}{
		{name: "gnat", class: Gnat},
		{name: "gubbins", class: Gubbins},
		{name: "freighter", class: Freighter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			craft := NewCraft(1, "x", tt.class, "c", physics.Vector2D{})
			if craft.Limits.Acceleration <= 0 {
				t.Errorf("acceleration = %v, expected positive", craft.Limits.Acceleration)
			}
			if craft.Limits.TurnTime <= 0 {
				t.Errorf("turn time = %v, expected positive", craft.Limits.TurnTime)
			}
			if craft.Limits.MaxSpeed <= 0 {
				t.Errorf("max speed = %v, expected positive", craft.Limits.MaxSpeed)
			}
		})
	}
}

func TestCraftClassFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CraftClass
	}{
		{name: "gnat", input: "Gnat", expected: Gnat},
		{name: "gubbins", input: "Gubbins", expected: Gubbins},
		{name: "freighter", input: "Freighter", expected: Freighter},
		{name: "unknown_defaults_to_gnat", input: "Dreadnought", expected: Gnat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CraftClassFromString(tt.input); got != tt.expected {
				t.Errorf("CraftClassFromString(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[ID]struct{})
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if _, dup := seen[id]; dup {
			t.Fatalf("GenerateID() returned duplicate %v", id)
		}
		seen[id] = struct{}{}
	}
}
