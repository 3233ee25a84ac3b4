package render

import (
	"fmt"
	"math"

	"chosenoffset.com/dualray/atlas"
	"chosenoffset.com/dualray/raycast"
	"chosenoffset.com/dualray/world"
)

// FOV is the horizontal field of view in radians.
const FOV = math.Pi / 3

// minWallDistance clamps the projection divisor so a zero-distance hit (ray
// origin inside a wall) fills the column instead of dividing by zero.
const minWallDistance = 1.0 / 64

// Renderer rasterizes frames through one Caster bound at construction. Apart
// from that binding and precomputed per-column angle offsets it keeps no
// state between frames: TraceFrame is a pure function of (pose, map).
type Renderer struct {
	caster  raycast.Caster
	width   int
	height  int
	palette *atlas.Palette

	// projDist is the distance from the eye to the projection plane in
	// pixels; wall slice height is projDist / perpendicular distance.
	projDist float64
	// colOffsets[x] is the angle of column x relative to the facing angle.
	// Tan-based, not linear, so the projection plane is flat.
	colOffsets []float64

	ceiling uint32
	floor   uint32
}

// New builds a Renderer for a fixed screen size. A nil caster or non-positive
// size is a caller bug. A nil palette selects the default palette.
func New(caster raycast.Caster, width, height int, palette *atlas.Palette) *Renderer {
	if caster == nil {
		panic("render: nil caster")
	}
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: invalid screen size %dx%d", width, height))
	}
	if palette == nil {
		palette = atlas.DefaultPalette()
	}

	r := &Renderer{
		caster:     caster,
		width:      width,
		height:     height,
		palette:    palette,
		projDist:   float64(width) / 2 / math.Tan(FOV/2),
		colOffsets: make([]float64, width),
		ceiling:    PackColor(palette.Ceiling.R, palette.Ceiling.G, palette.Ceiling.B),
		floor:      PackColor(palette.Floor.R, palette.Floor.G, palette.Floor.B),
	}
	for x := 0; x < width; x++ {
		r.colOffsets[x] = math.Atan2(float64(x)+0.5-float64(width)/2, r.projDist)
	}
	return r
}

// Size returns the screen dimensions the renderer was built for.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// TraceFrame writes exactly width×height pixels into fb: one ray per column,
// rasterized with perspective-correct wall heights. The buffer stays owned by
// the caller; a mis-sized buffer is a contract breach and panics.
func (r *Renderer) TraceFrame(pose world.Pose, m *world.Map, fb []uint32) {
	if len(fb) != r.width*r.height {
		panic(fmt.Sprintf("render: framebuffer length %d, expected %d", len(fb), r.width*r.height))
	}

	for x := 0; x < r.width; x++ {
		hit := r.caster.Cast(m, pose, pose.Angle+r.colOffsets[x])
		r.drawColumn(fb, x, hit)
	}
}

// drawColumn fills one vertical pixel strip: ceiling, wall slice, floor.
func (r *Renderer) drawColumn(fb []uint32, x int, hit raycast.Hit) {
	dist := hit.Distance
	if dist < minWallDistance {
		dist = minWallDistance
	}

	slice := int(r.projDist / dist)
	top := (r.height - slice) / 2
	bottom := top + slice
	if top < 0 {
		top = 0
	}
	if bottom > r.height {
		bottom = r.height
	}

	for y := 0; y < top; y++ {
		fb[y*r.width+x] = r.ceiling
	}

	mat := r.palette.Material(hit.Material)
	shade := 1.0 / (1.0 + dist*0.12)
	if hit.Side == raycast.SideY {
		// Darkened face orientation conveys depth on untextured walls.
		shade *= 0.7
	}

	for y := top; y < bottom; y++ {
		v := (float64(y) - (float64(r.height)-r.projDist/dist)/2) / (r.projDist / dist)
		f := shade * patternShade(mat.Pattern, hit.WallFrac, v)
		fb[y*r.width+x] = PackColor(
			uint8(float64(mat.Color.R)*f),
			uint8(float64(mat.Color.G)*f),
			uint8(float64(mat.Color.B)*f),
		)
	}

	for y := bottom; y < r.height; y++ {
		fb[y*r.width+x] = r.floor
	}
}

// patternShade modulates wall brightness by the material's procedural
// pattern. u runs along the wall face, v down the slice, both in [0, 1).
func patternShade(pattern string, u, v float64) float64 {
	switch pattern {
	case atlas.PatternChecker:
		if (int(u*4)+int(v*4))%2 == 0 {
			return 1
		}
		return 0.82
	case atlas.PatternBrick:
		row := int(v * 8)
		bu := u * 4
		if row%2 == 1 {
			bu += 0.5
		}
		// Mortar between bricks.
		if v*8-math.Floor(v*8) < 0.12 || bu-math.Floor(bu) < 0.06 {
			return 0.65
		}
		return 1
	default:
		return 1
	}
}
