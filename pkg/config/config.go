// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
)

// SimConfig contains configuration for a hovercraft simulation
type SimConfig struct {
	WorldSize float64         `json:"worldSize"`
	TimeStep  float64         `json:"timeStep"`
	Crafts    []CraftConfig   `json:"crafts"`
	Beacons   []BeaconConfig  `json:"beacons"`
	Nav       NavConfig       `json:"nav"`
	Targeting TargetingConfig `json:"targeting"`
	Input     InputConfig     `json:"input"`
	Reticle   ReticleConfig   `json:"reticle"`
}

// CraftConfig describes one craft to spawn at startup
type CraftConfig struct {
	Name       string  `json:"name"`
	Class      string  `json:"class"`
	Controller string  `json:"controller"`
	Bot        bool    `json:"bot"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// BeaconConfig describes a fixed navigation anchor
type BeaconConfig struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// NavConfig contains navigation tuning
type NavConfig struct {
	// OrbitStepRadians is the per-tick angular advance of the orbit
	// waypoint. Zero picks the resolver default.
	OrbitStepRadians float64 `json:"orbitStepRadians"`
	// ArrivalEpsilon is the goal distance, in meters, at which an
	// arrival event is raised for approaching craft.
	ArrivalEpsilon float64 `json:"arrivalEpsilon"`
	// BotThinkInterval is how often bots re-decide, in seconds.
	BotThinkInterval float64 `json:"botThinkInterval"`
	// BotOrbitRadius is the orbit distance bots prefer, in meters.
	BotOrbitRadius float64 `json:"botOrbitRadius"`
}

// TargetingConfig contains targeting policy
type TargetingConfig struct {
	AllowSelfTarget bool `json:"allowSelfTarget"`
}

// InputConfig contains input handling limits
type InputConfig struct {
	// CyclesPerSecond bounds how often a controller may cycle targets,
	// debouncing key repeat.
	CyclesPerSecond int `json:"cyclesPerSecond"`
}

// ReticleConfig is the static style of the target marker
type ReticleConfig struct {
	// BorderWidth is the opaque border thickness as a fraction of the
	// reticle size, in [0, 1].
	BorderWidth float64 `json:"borderWidth"`
	BorderColor RGBA    `json:"borderColor"`
	FillColor   RGBA    `json:"fillColor"`
	// SizePixels is the side length of the generated marker texture.
	SizePixels int `json:"sizePixels"`
}

// RGBA is a JSON-friendly color
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the simulation cannot run with
func (c *SimConfig) Validate() error {
	if c.WorldSize <= 0 {
		return fmt.Errorf("worldSize must be positive, got %v", c.WorldSize)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("timeStep must be positive, got %v", c.TimeStep)
	}
	if c.Reticle.BorderWidth < 0 || c.Reticle.BorderWidth > 1 {
		return fmt.Errorf("reticle borderWidth must be in [0,1], got %v", c.Reticle.BorderWidth)
	}
	return nil
}

// ApplyEnvironmentOverrides applies environment variable overrides to the
// configuration. Only a few operational knobs are exposed this way.
func ApplyEnvironmentOverrides(config *SimConfig) error {
	if v := os.Getenv("HOVERCRAFT_WORLD_SIZE"); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid HOVERCRAFT_WORLD_SIZE: %w", err)
		}
		config.WorldSize = size
	}
	if v := os.Getenv("HOVERCRAFT_TIME_STEP"); v != "" {
		step, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid HOVERCRAFT_TIME_STEP: %w", err)
		}
		config.TimeStep = step
	}
	return config.Validate()
}

// DefaultConfig returns a default simulation configuration: one player
// craft, one bot, and a beacon to orbit, mirroring the classic two-pilot
// setup.
func DefaultConfig() *SimConfig {
	return &SimConfig{
		WorldSize: 1000,
		TimeStep:  1.0 / 60.0,
		Crafts: []CraftConfig{
			{
				Name:       "Protagonist",
				Class:      "Gnat",
				Controller: "player",
				X:          0,
				Y:          0,
			},
			{
				Name:       "Antagonist",
				Class:      "Gubbins",
				Controller: "bot-1",
				Bot:        true,
				X:          50,
				Y:          0,
			},
		},
		Beacons: []BeaconConfig{
			{
				Name:   "Planet1",
				X:      -50,
				Y:      50,
				Radius: 15,
			},
		},
		Nav: NavConfig{
			OrbitStepRadians: 2 * math.Pi / 40,
			ArrivalEpsilon:   2,
			BotThinkInterval: 0.1,
			BotOrbitRadius:   50,
		},
		Targeting: TargetingConfig{
			AllowSelfTarget: false,
		},
		Input: InputConfig{
			CyclesPerSecond: 4,
		},
		Reticle: ReticleConfig{
			BorderWidth: 0.1,
			BorderColor: RGBA{R: 255, G: 0, B: 0, A: 255},
			FillColor:   RGBA{R: 0, G: 0, B: 0, A: 0},
			SizePixels:  64,
		},
	}
}
