// Package config provides YAML-based configuration loading for the dash
// simulation: physics constants, scroll geometry, player bounds and timing.
package config

import (
	"fmt"
	"time"
)

// DashConfig contains all tunable simulation constants.
type DashConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Scroll  ScrollConfig  `yaml:"scroll"`
	Player  PlayerConfig  `yaml:"player"`
	Timing  TimingConfig  `yaml:"timing"`
	Trail   TrailConfig   `yaml:"trail"`
}

// PhysicsConfig defines per-scheme kinematics and ring/portal impulses.
type PhysicsConfig struct {
	FreeFallAccel      float64 `yaml:"free_fall_accel"`
	HoverAccel         float64 `yaml:"hover_accel"`
	HoverImpulse       float64 `yaml:"hover_impulse"`
	HoverLift          float64 `yaml:"hover_lift"`
	GravityBallAccel   float64 `yaml:"gravity_ball_accel"`
	ArrowStep          float64 `yaml:"arrow_step"`
	JumpRingImpulse    float64 `yaml:"jump_ring_impulse"`
	GravityRingImpulse float64 `yaml:"gravity_ring_impulse"`
	TeleportDistance   float64 `yaml:"teleport_distance"`
}

// ScrollConfig defines world scrolling, spawning and the static camera.
type ScrollConfig struct {
	Speed            float64 `yaml:"speed"`
	FastSpeed        float64 `yaml:"fast_speed"`
	FlyThroughSpeed  float64 `yaml:"fly_through_speed"`
	ScreenWidth      float64 `yaml:"screen_width"`
	SpawnX           float64 `yaml:"spawn_x"`
	LookaheadX       float64 `yaml:"lookahead_x"`
	TriggerProximity float64 `yaml:"trigger_proximity"`
	FarTriggerX      float64 `yaml:"far_trigger_x"`
	StaticTargetX    float64 `yaml:"static_target_x"`
	StaticAdvance    float64 `yaml:"static_advance"`
	RebuildExtent    float64 `yaml:"rebuild_extent"`
	SettleStepDeg    float64 `yaml:"settle_step_deg"`
	SettleGain       float64 `yaml:"settle_gain"`
}

// PlayerConfig defines player geometry and movement bounds.
type PlayerConfig struct {
	NominalX    float64 `yaml:"nominal_x"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Size        float64 `yaml:"size"`
	FloorY      float64 `yaml:"floor_y"`
	CeilingY    float64 `yaml:"ceiling_y"`
	TopBound    float64 `yaml:"top_bound"`
	BottomBound float64 `yaml:"bottom_bound"`
	IntroEndX   float64 `yaml:"intro_end_x"`
	SideReach   float64 `yaml:"side_reach"`
	ArrowReach  float64 `yaml:"arrow_reach"`
}

// TimingConfig defines driver periods and the death delay.
type TimingConfig struct {
	TickInterval  time.Duration `yaml:"tick_interval"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	DeathDelay    time.Duration `yaml:"death_delay"`
}

// DeathDelayTicks converts the death delay into whole ticks, at least one.
func (t TimingConfig) DeathDelayTicks() int {
	if t.TickInterval <= 0 {
		return 1
	}
	n := int(t.DeathDelay / t.TickInterval)
	if n < 1 {
		return 1
	}
	return n
}

// TrailConfig defines trail dot emission and fading.
type TrailConfig struct {
	Period       int     `yaml:"period"`
	SettlePeriod int     `yaml:"settle_period"`
	FadeDistance float64 `yaml:"fade_distance"`
}

// Validate checks the values the simulation divides by or loops on.
func (c DashConfig) Validate() error {
	switch {
	case c.Scroll.Speed <= 0:
		return fmt.Errorf("config: scroll.speed must be positive")
	case c.Scroll.SettleStepDeg <= 0 || c.Scroll.SettleStepDeg >= 90:
		return fmt.Errorf("config: scroll.settle_step_deg must be in (0, 90)")
	case c.Scroll.LookaheadX <= c.Scroll.SpawnX-30:
		return fmt.Errorf("config: scroll.lookahead_x must be past spawn_x")
	case c.Player.Size <= 0:
		return fmt.Errorf("config: player.size must be positive")
	case c.Timing.TickInterval <= 0 || c.Timing.FrameInterval <= 0:
		return fmt.Errorf("config: timing intervals must be positive")
	case c.Trail.Period <= 0 || c.Trail.SettlePeriod <= 0:
		return fmt.Errorf("config: trail periods must be positive")
	}
	return nil
}
