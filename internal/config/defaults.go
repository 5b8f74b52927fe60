package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the built-in simulation constants.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		Physics: PhysicsConfig{
			FreeFallAccel:      0.28,
			HoverAccel:         0.28,
			HoverImpulse:       5.6,
			HoverLift:          10,
			GravityBallAccel:   0.37,
			ArrowStep:          5,
			JumpRingImpulse:    6,
			GravityRingImpulse: 3.4,
			TeleportDistance:   150,
		},
		Scroll: ScrollConfig{
			Speed:            4,
			FastSpeed:        5,
			FlyThroughSpeed:  12,
			ScreenWidth:      820,
			SpawnX:           480,
			LookaheadX:       810,
			TriggerProximity: 240,
			FarTriggerX:      820,
			StaticTargetX:    720,
			StaticAdvance:    4,
			RebuildExtent:    1660,
			SettleStepDeg:    3,
			SettleGain:       4,
		},
		Player: PlayerConfig{
			NominalX:    240,
			StartX:      -40,
			StartY:      300,
			Size:        30,
			FloorY:      399,
			CeilingY:    129,
			TopBound:    100,
			BottomBound: 400,
			IntroEndX:   236,
			SideReach:   60,
			ArrowReach:  25,
		},
		Timing: TimingConfig{
			TickInterval:  15 * time.Millisecond,
			FrameInterval: 16 * time.Millisecond,
			DeathDelay:    time.Second,
		},
		Trail: TrailConfig{
			Period:       6,
			SettlePeriod: 6,
			FadeDistance: 100,
		},
	}
}
