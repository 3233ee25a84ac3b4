package raycast

import (
	"math"

	"chosenoffset.com/dualray/world"
)

// FloatCaster is the float64 reference strategy.
type FloatCaster struct{}

// NewFloatCaster returns the float64 backend.
func NewFloatCaster() *FloatCaster {
	return &FloatCaster{}
}

// Cast walks the grid with DDA in float64 arithmetic.
func (c *FloatCaster) Cast(m *world.Map, pose world.Pose, rayAngle float64) Hit {
	dirX := math.Cos(rayAngle)
	dirY := math.Sin(rayAngle)

	mapX := int(math.Floor(pose.X))
	mapY := int(math.Floor(pose.Y))

	// Defensive: an origin inside a wall reports a zero-distance hit instead
	// of stepping forever against the collision policy's promise.
	if m.IsWall(mapX, mapY) {
		return Hit{Distance: 0, Material: m.At(mapX, mapY), Side: SideX, WallFrac: 0}
	}

	// Distance the ray travels to cross one grid line per axis. A zero
	// direction component never crosses its axis.
	deltaX := math.Inf(1)
	deltaY := math.Inf(1)
	if dirX != 0 {
		deltaX = math.Abs(1 / dirX)
	}
	if dirY != 0 {
		deltaY = math.Abs(1 / dirY)
	}

	stepX, stepY := 1, 1
	sideDistX := deltaX
	sideDistY := deltaY
	if dirX != 0 {
		if dirX < 0 {
			stepX = -1
			sideDistX = (pose.X - float64(mapX)) * deltaX
		} else {
			sideDistX = (float64(mapX) + 1 - pose.X) * deltaX
		}
	}
	if dirY != 0 {
		if dirY < 0 {
			stepY = -1
			sideDistY = (pose.Y - float64(mapY)) * deltaY
		} else {
			sideDistY = (float64(mapY) + 1 - pose.Y) * deltaY
		}
	}

	side := SideX
	for i := 0; i < MaxSteps; i++ {
		// Advance to the nearer grid line.
		if sideDistX < sideDistY {
			sideDistX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideDistY += deltaY
			mapY += stepY
			side = SideY
		}

		if !m.IsWall(mapX, mapY) {
			continue
		}

		// Euclidean length along the ray to the wall plane.
		var t float64
		if side == SideX {
			t = (float64(mapX) - pose.X + (1-float64(stepX))/2) / dirX
		} else {
			t = (float64(mapY) - pose.Y + (1-float64(stepY))/2) / dirY
		}

		return Hit{
			Distance: t * math.Cos(rayAngle-pose.Angle),
			Material: m.At(mapX, mapY),
			Side:     side,
			WallFrac: wallFraction(pose, t, dirX, dirY, side),
		}
	}

	// Step budget exhausted: report the implicit boundary wall.
	return Hit{Distance: MaxDistance, Material: world.BoundaryMaterial, Side: SideX, WallFrac: 0}
}

// wallFraction derives the texture coordinate from the non-stepped axis at
// the intersection point, mirrored so faces read left-to-right consistently.
func wallFraction(pose world.Pose, t, dirX, dirY float64, side Side) float64 {
	var u float64
	if side == SideX {
		u = pose.Y + t*dirY
	} else {
		u = pose.X + t*dirX
	}
	u -= math.Floor(u)

	if side == SideX && dirX > 0 {
		u = 1 - u
	}
	if side == SideY && dirY < 0 {
		u = 1 - u
	}
	if u >= 1 {
		u = 0
	}
	return u
}
