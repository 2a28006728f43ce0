package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/lunar-lander/shared/gamemath"
)

// ErrInvalidConfig is returned by Validate when a parameter is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// WorldConfig contains world and terrain generation values
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Segments     int     `yaml:"segments"`
	GroundMargin float64 `yaml:"ground_margin"` // Baseline ground sits this far above the world bottom
	Jitter       float64 `yaml:"jitter"`        // Max vertical jitter of a plain column
	PadJitter    float64 `yaml:"pad_jitter"`    // Max vertical jitter of a pad column
	Seed         string  `yaml:"seed"`          // Seed phrase, empty = fresh randomness
}

// PadSpec requests a landing pad in a terrain column
type PadSpec struct {
	Slot  int     `yaml:"slot"`
	Width float64 `yaml:"width"`
	Kind  PadKind `yaml:"kind"`
}

// VehicleConfig contains lander body values
type VehicleConfig struct {
	SpawnY  float64 `yaml:"spawn_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Mass    float64 `yaml:"mass"`
	MaxFuel float64 `yaml:"max_fuel"`
}

// PhysicsConfig contains integrator values. Rates are per reference frame.
type PhysicsConfig struct {
	ReferenceHz    float64 `yaml:"reference_hz"`
	Gravity        float64 `yaml:"gravity"`
	ThrustForce    float64 `yaml:"thrust_force"`
	RotationSpeed  float64 `yaml:"rotation_speed"`
	Drag           float64 `yaml:"drag"`            // Air friction, fraction of velocity lost per frame
	AngularDamping float64 `yaml:"angular_damping"` // 0 holds angular velocity when no rotation input
	FuelDrainRate  float64 `yaml:"fuel_drain_rate"`

	// Timing
	MaxStep       float64 `yaml:"max_step"`        // Longest single integration step (seconds)
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Longer ticks are clamped to this (seconds)
}

// Thresholds are the landing safety limits. Comparisons are strict.
type Thresholds struct {
	MaxVerticalSpeed   float64 `yaml:"max_vertical_speed"`
	MaxHorizontalSpeed float64 `yaml:"max_horizontal_speed"`
	MaxTiltAngle       float64 `yaml:"max_tilt_angle"` // radians
}

// PadMotion contains pad behavior values
type PadMotion struct {
	Amplitude        float64 `yaml:"amplitude"`          // Hard pad horizontal travel
	HalfPeriod       float64 `yaml:"half_period"`        // Seconds for one leg of the Hard pad swing
	PulseHalfPeriod  float64 `yaml:"pulse_half_period"`  // Seconds for one leg of the Power pad pulse
	PulseMinAlpha    float64 `yaml:"pulse_min_alpha"`    // Power pad alpha at the bottom of the pulse
	PadHitboxHeight  float64 `yaml:"pad_hitbox_height"`  // Pad body thickness below its surface
	BoundsThickness  float64 `yaml:"bounds_thickness"`   // World edge wall thickness
	SpaceCellSize    int     `yaml:"space_cell_size"`    // resolv cell size
	TerrainThickness float64 `yaml:"terrain_thickness"` // Minimum height of a terrain segment body
}

// ModeConfig selects the game mode and its parameters
type ModeConfig struct {
	Mode              GameModeID `yaml:"mode"`
	TargetPad         PadKind    `yaml:"target_pad"`          // Precision mode
	TimeLimit         float64    `yaml:"time_limit"`          // Timed mode, seconds
	PayloadMassFactor float64    `yaml:"payload_mass_factor"` // Payload mode
}

// Config holds everything a flight session needs
type Config struct {
	World     WorldConfig   `yaml:"world"`
	Pads      []PadSpec     `yaml:"pads"`
	Vehicle   VehicleConfig `yaml:"vehicle"`
	Physics   PhysicsConfig `yaml:"physics"`
	Landing   Thresholds    `yaml:"landing"`
	PadMotion PadMotion     `yaml:"pad_motion"`
	Mode      ModeConfig    `yaml:"mode"`
}

// Window holds the desktop host's logical screen size
type Window struct {
	Width  int
	Height int
}

// DefaultWindow is the host window size. The world is twice as tall so the
// camera follows the lander down.
var DefaultWindow = Window{Width: 960, Height: 540}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Rock         = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	RockOutline  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// DefaultPads is the pad layout of the reference game.
func DefaultPads() []PadSpec {
	return []PadSpec{
		{Slot: 5, Width: 100, Kind: PadEasy},
		{Slot: 10, Width: 60, Kind: PadMedium},
		{Slot: 15, Width: 40, Kind: PadHard},
		{Slot: 8, Width: 150, Kind: PadPower},
	}
}

// DefaultThresholds are the landing limits used by the reference game.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxVerticalSpeed:   4.0,
		MaxHorizontalSpeed: 2.0,
		MaxTiltAngle:       0.5, // ~28.6 degrees
	}
}

// StrictThresholds are the tighter limits of the earlier game revision.
func StrictThresholds() Thresholds {
	return Thresholds{
		MaxVerticalSpeed:   2.0,
		MaxHorizontalSpeed: 1.0,
		MaxTiltAngle:       0.3, // ~17 degrees
	}
}

// Default returns a complete configuration for the given window size.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:        float64(DefaultWindow.Width),
			Height:       float64(DefaultWindow.Height) * 2,
			Segments:     20,
			GroundMargin: 100,
			Jitter:       50,
			PadJitter:    25,
		},
		Pads: DefaultPads(),
		Vehicle: VehicleConfig{
			SpawnY:  100,
			Width:   30,
			Height:  40,
			Mass:    1,
			MaxFuel: 100,
		},
		Physics: PhysicsConfig{
			ReferenceHz:    60,
			Gravity:        0.07,
			ThrustForce:    0.16,
			RotationSpeed:  0.05,
			Drag:           0.01,
			AngularDamping: 0.2,
			FuelDrainRate:  0.1,

			MaxStep:       1.0 / 60.0,
			MaxFrameDelta: 0.25,
		},
		Landing: DefaultThresholds(),
		PadMotion: PadMotion{
			Amplitude:        100,
			HalfPeriod:       3.0,
			PulseHalfPeriod:  0.8,
			PulseMinAlpha:    0.5,
			PadHitboxHeight:  10,
			BoundsThickness:  64,
			SpaceCellSize:    16,
			TerrainThickness: 2,
		},
		Mode: ModeConfig{
			Mode:              ModeFree,
			TargetPad:         PadHard,
			TimeLimit:         60,
			PayloadMassFactor: 2.0,
		},
	}
}

// Validate checks the parts of the configuration that are not covered by
// terrain generation. Terrain and pad layout errors surface from the
// terrain package.
func (c Config) Validate() error {
	if err := c.Vehicle.Validate(); err != nil {
		return err
	}
	if err := c.Physics.Validate(); err != nil {
		return err
	}
	if err := c.Landing.Validate(); err != nil {
		return err
	}
	m := c.PadMotion
	if !gamemath.Finite(m.Amplitude, m.HalfPeriod, m.PulseHalfPeriod, m.PulseMinAlpha,
		m.PadHitboxHeight, m.BoundsThickness, m.TerrainThickness) {
		return fmt.Errorf("%w: pad motion values must be finite", ErrInvalidConfig)
	}
	if c.PadMotion.HalfPeriod <= 0 || c.PadMotion.PulseHalfPeriod <= 0 {
		return fmt.Errorf("%w: pad motion periods must be positive", ErrInvalidConfig)
	}
	if c.PadMotion.PadHitboxHeight <= 0 || c.PadMotion.SpaceCellSize <= 0 {
		return fmt.Errorf("%w: pad hitbox height and space cell size must be positive", ErrInvalidConfig)
	}
	return c.Mode.Validate()
}

// Validate checks the vehicle body values.
func (v VehicleConfig) Validate() error {
	if !gamemath.Finite(v.SpawnY, v.Width, v.Height, v.Mass, v.MaxFuel) {
		return fmt.Errorf("%w: vehicle values must be finite", ErrInvalidConfig)
	}
	if v.Mass <= 0 || v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: vehicle mass and size must be positive", ErrInvalidConfig)
	}
	if v.MaxFuel < 0 {
		return fmt.Errorf("%w: max fuel %v is negative", ErrInvalidConfig, v.MaxFuel)
	}
	return nil
}

// Validate checks the integrator values.
func (p PhysicsConfig) Validate() error {
	if !gamemath.Finite(p.ReferenceHz, p.Gravity, p.ThrustForce, p.RotationSpeed,
		p.Drag, p.AngularDamping, p.FuelDrainRate, p.MaxStep, p.MaxFrameDelta) {
		return fmt.Errorf("%w: physics values must be finite", ErrInvalidConfig)
	}
	if p.ReferenceHz <= 0 {
		return fmt.Errorf("%w: reference rate must be positive", ErrInvalidConfig)
	}
	if p.MaxStep <= 0 || p.MaxFrameDelta <= 0 {
		return fmt.Errorf("%w: max step and max frame delta must be positive", ErrInvalidConfig)
	}
	if p.Drag < 0 || p.Drag >= 1 {
		return fmt.Errorf("%w: drag %v outside [0, 1)", ErrInvalidConfig, p.Drag)
	}
	if p.AngularDamping < 0 || p.AngularDamping > 1 {
		return fmt.Errorf("%w: angular damping %v outside [0, 1]", ErrInvalidConfig, p.AngularDamping)
	}
	if p.FuelDrainRate < 0 || p.ThrustForce < 0 || p.RotationSpeed < 0 {
		return fmt.Errorf("%w: thrust, rotation speed and fuel drain must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Validate checks that all three limits are positive numbers.
func (t Thresholds) Validate() error {
	for _, v := range []float64{t.MaxVerticalSpeed, t.MaxHorizontalSpeed, t.MaxTiltAngle} {
		if math.IsNaN(v) || v <= 0 {
			return fmt.Errorf("%w: landing thresholds must be positive, got %+v", ErrInvalidConfig, t)
		}
	}
	return nil
}
