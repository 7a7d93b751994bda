// pkg/physics/motion.go
package physics

import "math"

// Body holds the spatial state of a craft: where it is, how fast it moves,
// which way it faces and how fast it is turning. Pure data, no behavior.
type Body struct {
	Position        Vector2D
	Velocity        Vector2D
	Facing          float64 // radians, normalized to [-pi, pi)
	AngularVelocity float64 // rad/s
}

// Limits bounds what a craft's drive can do. TurnTime is the number of
// seconds a full rotation takes, which caps angular velocity at 2*pi/TurnTime.
type Limits struct {
	Acceleration float64 // m/s^2
	TurnTime     float64 // seconds per full rotation
	MaxSpeed     float64 // m/s
}

// MaxTurnRate returns the angular velocity bound derived from TurnTime.
func (l Limits) MaxTurnRate() float64 {
	if l.TurnTime <= 0 {
		return 0
	}
	return 2 * math.Pi / l.TurnTime
}

// MaxTurnAccel returns the angular acceleration bound. It is chosen so a
// full reversal from +MaxTurnRate to -MaxTurnRate takes no less than TurnTime.
func (l Limits) MaxTurnAccel() float64 {
	if l.TurnTime <= 0 {
		return 0
	}
	return 2 * l.MaxTurnRate() / l.TurnTime
}

// NormalizeAngle reduces an angle to [-pi, pi).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle - math.Pi
}

// AngleDiff returns the signed smallest rotation from current to desired,
// normalized to [-pi, pi).
func AngleDiff(desired, current float64) float64 {
	return NormalizeAngle(desired - current)
}

// Clamp limits x to [-bound, bound].
func Clamp(x, bound float64) float64 {
	if x > bound {
		return bound
	}
	if x < -bound {
		return -bound
	}
	return x
}

// Advance integrates one tick of motion. angAccel and thrust are the turn
// and drive commands for this tick; both are re-clamped against the body's
// limits so no caller can push the body past them.
func Advance(b *Body, lim Limits, angAccel, thrust, dt float64) {
	// Integrate angular velocity, bounded by turn-time-derived limits.
	angAccel = Clamp(angAccel, lim.MaxTurnAccel())
	b.AngularVelocity = Clamp(b.AngularVelocity+angAccel*dt, lim.MaxTurnRate())

	// Integrate facing.
	b.Facing = NormalizeAngle(b.Facing + b.AngularVelocity*dt)

	// Accelerate along current facing, then cap speed.
	thrust = Clamp(thrust, lim.Acceleration)
	b.Velocity = b.Velocity.Add(FromAngle(b.Facing, thrust*dt))
	b.Velocity = b.Velocity.ClampLength(lim.MaxSpeed)

	// Integrate position.
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Brake decelerates the body toward rest at up to lim.Acceleration,
// ignoring facing. Used by the idle policy.
func Brake(b *Body, lim Limits, dt float64) {
	speed := b.Velocity.Length()
	if speed == 0 {
		return
	}
	drop := lim.Acceleration * dt
	if drop >= speed {
		b.Velocity = Vector2D{}
	} else {
		b.Velocity = b.Velocity.Scale((speed - drop) / speed)
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// ClampToWorld keeps the body inside the centered world square of the given
// size, zeroing the velocity component that ran into a wall.
func ClampToWorld(b *Body, worldSize float64) {
	half := worldSize / 2
	if b.Position.X > half {
		b.Position.X = half
		b.Velocity.X = 0
	} else if b.Position.X < -half {
		b.Position.X = -half
		b.Velocity.X = 0
	}
	if b.Position.Y > half {
		b.Position.Y = half
		b.Velocity.Y = 0
	} else if b.Position.Y < -half {
		b.Position.Y = -half
		b.Velocity.Y = 0
	}
}
