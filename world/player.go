package world

import (
	"math"

	"chosenoffset.com/dualray/fixed"
)

// Movement tuning. Elapsed time is passed to Move in 1/256-second units, the
// scale the host derives from its performance counter.
const (
	// LinearSpeed is the walking speed in map cells per second.
	LinearSpeed = 3.0
	// AngularSpeed is the turning speed in radians per second.
	AngularSpeed = 2.0
	// ClearanceRadius keeps the player this far (in cells) from wall faces.
	ClearanceRadius = 0.25
	// TimeUnitsPerSecond is the scale of the elapsed argument to Move.
	TimeUnitsPerSecond = 256
)

// timeUnitBits is log2(TimeUnitsPerSecond), used by the fixed-point pose to
// convert elapsed units to Q seconds with a shift.
const timeUnitBits = 8

// Pose is the float64 position and facing angle of the player.
type Pose struct {
	X     float64
	Y     float64
	Angle float64
}

// FixedPose is the Q16.16 position and facing angle of the player. It is a
// separate trajectory from Pose: every update runs in fixed-point arithmetic
// so rounding differences accumulate exactly as the fixed caster sees them.
type FixedPose struct {
	X     fixed.Q
	Y     fixed.Q
	Angle fixed.Q
}

// FixedPoseFrom converts a float pose into the fixed representation.
func FixedPoseFrom(p Pose) FixedPose {
	return FixedPose{
		X:     fixed.FromFloat(p.X),
		Y:     fixed.FromFloat(p.Y),
		Angle: fixed.FromFloat(p.Angle),
	}
}

// Pose converts the fixed pose to float64 for the renderer boundary. The
// conversion is exact, so it does not disturb the fixed trajectory.
func (p FixedPose) Pose() Pose {
	return Pose{X: p.X.Float(), Y: p.Y.Float(), Angle: p.Angle.Float()}
}

// Player holds both pose trajectories over the same map.
type Player struct {
	Float Pose
	Fixed FixedPose
}

// NewPlayer spawns both representations at the same pose.
func NewPlayer(spawn Pose) *Player {
	return &Player{
		Float: spawn,
		Fixed: FixedPoseFrom(spawn),
	}
}

// Move advances both trajectories with the same command. moveDir and rotDir
// are in {-1, 0, 1}; elapsed is in 1/256-second units.
func (p *Player) Move(m *Map, moveDir, rotDir int, elapsed uint64) {
	p.Float.Move(m, moveDir, rotDir, elapsed)
	p.Fixed.Move(m, moveDir, rotDir, elapsed)
}

// Move advances the float pose. Rotation wraps to [0, 2π); the linear step is
// collision-tested one axis at a time so sliding along a wall works: a
// blocked axis is dropped while the other still applies.
func (p *Pose) Move(m *Map, moveDir, rotDir int, elapsed uint64) {
	dt := float64(elapsed) / TimeUnitsPerSecond

	if rotDir != 0 {
		p.Angle = wrapAngle(p.Angle + float64(rotDir)*AngularSpeed*dt)
	}
	if moveDir == 0 {
		return
	}

	step := float64(moveDir) * LinearSpeed * dt
	dx := math.Cos(p.Angle) * step
	dy := math.Sin(p.Angle) * step

	if nx := p.X + dx; !blockedFloat(m, nx, p.Y, dx, 0) {
		p.X = nx
	}
	if ny := p.Y + dy; !blockedFloat(m, p.X, ny, 0, dy) {
		p.Y = ny
	}
}

// Move advances the fixed pose using only Q16.16 arithmetic.
func (p *FixedPose) Move(m *Map, moveDir, rotDir int, elapsed uint64) {
	dt := fixed.Q(elapsed << (fixed.FracBits - timeUnitBits))

	if rotDir != 0 {
		delta := fixed.Mul(fixed.FromFloat(AngularSpeed), dt)
		if rotDir < 0 {
			delta = -delta
		}
		p.Angle = fixed.Wrap(p.Angle + delta)
	}
	if moveDir == 0 {
		return
	}

	step := fixed.Mul(fixed.FromFloat(LinearSpeed), dt)
	if moveDir < 0 {
		step = -step
	}
	dx := fixed.Mul(fixed.Cos(p.Angle), step)
	dy := fixed.Mul(fixed.Sin(p.Angle), step)

	if nx := p.X + dx; !blockedFixed(m, nx, p.Y, dx, 0) {
		p.X = nx
	}
	if ny := p.Y + dy; !blockedFixed(m, p.X, ny, 0, dy) {
		p.Y = ny
	}
}

// blockedFloat tests the candidate position inflated by the clearance radius
// along the axis of motion.
func blockedFloat(m *Map, x, y, dx, dy float64) bool {
	cx := x
	cy := y
	if dx > 0 {
		cx += ClearanceRadius
	} else if dx < 0 {
		cx -= ClearanceRadius
	}
	if dy > 0 {
		cy += ClearanceRadius
	} else if dy < 0 {
		cy -= ClearanceRadius
	}
	return m.IsWall(int(math.Floor(cx)), int(math.Floor(cy)))
}

func blockedFixed(m *Map, x, y, dx, dy fixed.Q) bool {
	clearance := fixed.FromFloat(ClearanceRadius)
	cx := x
	cy := y
	if dx > 0 {
		cx += clearance
	} else if dx < 0 {
		cx -= clearance
	}
	if dy > 0 {
		cy += clearance
	} else if dy < 0 {
		cy -= clearance
	}
	return m.IsWall(cx.Floor(), cy.Floor())
}

// wrapAngle reduces an angle to the canonical [0, 2π) range.
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
