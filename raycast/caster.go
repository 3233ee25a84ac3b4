// Package raycast finds wall intersections on a grid map. One contract, two
// numeric strategies: FloatCaster runs the traversal in float64, FixedCaster
// in Q16.16 fixed point. Both implement the same DDA stepping so they only
// ever differ by bounded rounding, never by picking a different wall for the
// same ray.
package raycast

import "chosenoffset.com/dualray/world"

// Bounds on the grid search. The map is closed, so a ray normally terminates
// on a wall long before the step limit; the limit makes termination provable
// regardless of numeric representation.
const (
	// MaxSteps is the DDA cell-crossing budget per ray.
	MaxSteps = 64
	// MaxDistance is the sentinel distance (in map cells) reported when the
	// step budget runs out without a wall.
	MaxDistance = 64.0
)

// Side identifies which grid-line orientation the terminating step crossed.
// The renderer darkens SideY faces to convey depth.
type Side int

const (
	// SideX means the ray crossed a vertical grid line (west/east face).
	SideX Side = iota
	// SideY means the ray crossed a horizontal grid line (north/south face).
	SideY
)

// Hit is the result of casting a single ray.
type Hit struct {
	// Distance is the perpendicular distance from the origin to the struck
	// wall plane, in map cells. Perpendicular, not Euclidean, so projected
	// wall heights need no further fisheye correction.
	Distance float64
	// Material is the struck cell's material id.
	Material uint8
	// Side is the orientation of the struck face.
	Side Side
	// WallFrac is the fraction in [0, 1) along the struck face where the ray
	// landed, used for texture sampling.
	WallFrac float64
}

// Caster casts one ray from the player's position at the given absolute angle
// and reports the nearest wall intersection. The pose's facing angle is used
// to project the ray length onto the view plane. Cast is a total function:
// degenerate inputs produce defined hits, never errors or unbounded loops.
type Caster interface {
	Cast(m *world.Map, pose world.Pose, rayAngle float64) Hit
}
