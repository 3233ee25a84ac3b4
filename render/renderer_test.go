package render

import (
	"testing"

	"chosenoffset.com/dualray/raycast"
	"chosenoffset.com/dualray/world"
)

const (
	testW = 64
	testH = 48
)

func squareRoom(t *testing.T) *world.Map {
	t.Helper()
	rows := make([]string, 9)
	rows[0] = "111111111"
	rows[8] = rows[0]
	for y := 1; y < 8; y++ {
		rows[y] = "1.......1"
	}
	m, err := world.ParseLevel(rows)
	if err != nil {
		t.Fatalf("Failed to parse room: %v", err)
	}
	return m
}

// sliceHeights counts wall pixels per column: everything that is neither the
// flat ceiling nor the flat floor color.
func sliceHeights(r *Renderer, fb []uint32) []int {
	w, h := r.Size()
	heights := make([]int, w)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			p := fb[y*w+x]
			if p != r.ceiling && p != r.floor {
				heights[x]++
			}
		}
	}
	return heights
}

func TestTraceFrameCenteredRoomProfile(t *testing.T) {
	m := squareRoom(t)
	r := New(raycast.NewFloatCaster(), testW, testH, nil)

	fb := make([]uint32, testW*testH)
	r.TraceFrame(world.Pose{X: 4.5, Y: 4.5, Angle: 0}, m, fb)

	heights := sliceHeights(r, fb)

	// Facing the east wall dead on: the two central columns see the nearest
	// wall, so no column may be taller.
	center := heights[testW/2-1]
	if heights[testW/2] > center {
		center = heights[testW/2]
	}
	for x, got := range heights {
		if got > center {
			t.Errorf("column %d slice height %d exceeds center height %d", x, got, center)
		}
		if got == 0 {
			t.Errorf("column %d has no wall slice", x)
		}
	}

	// Columns mirrored about the screen center see mirrored rays in a
	// symmetric room, so their slices must match.
	for x := 0; x < testW/2; x++ {
		if heights[x] != heights[testW-1-x] {
			t.Errorf("columns %d and %d asymmetric: %d vs %d", x, testW-1-x, heights[x], heights[testW-1-x])
		}
	}
}

func TestTraceFramePanicsOnMisSizedBuffer(t *testing.T) {
	m := squareRoom(t)
	r := New(raycast.NewFloatCaster(), testW, testH, nil)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for mis-sized framebuffer")
		}
	}()
	r.TraceFrame(world.Pose{X: 4.5, Y: 4.5}, m, make([]uint32, 10))
}

func TestOverlayStaysInCornerRegion(t *testing.T) {
	r := New(raycast.NewFloatCaster(), testW, testH, nil)
	sentinel := PackColor(1, 2, 3)

	for _, value := range []uint32{0, 7, 42, 9999, 4294967295} {
		fb := make([]uint32, testW*testH)
		for i := range fb {
			fb[i] = sentinel
		}

		r.DrawOverlay(fb, value)

		touched := 0
		for y := 0; y < testH; y++ {
			for x := 0; x < testW; x++ {
				inside := x >= OverlayX && x < OverlayX+OverlayWidth &&
					y >= OverlayY && y < OverlayY+OverlayHeight
				p := fb[y*testW+x]
				if !inside && p != sentinel {
					t.Fatalf("value %d: pixel (%d,%d) outside overlay region was written", value, x, y)
				}
				if inside && p != sentinel {
					touched++
				}
			}
		}
		if touched == 0 {
			t.Errorf("value %d: overlay wrote nothing", value)
		}
	}
}

func TestPackUnpackColor(t *testing.T) {
	p := PackColor(12, 200, 255)
	cr, cg, cb := UnpackColor(p)
	if cr != 12 || cg != 200 || cb != 255 {
		t.Errorf("round trip gave (%d, %d, %d)", cr, cg, cb)
	}
	if p>>24 != 0xff {
		t.Errorf("alpha channel not opaque: %#x", p)
	}

	buf := AppendBytes(nil, []uint32{p})
	if len(buf) != 4 || buf[0] != 12 || buf[1] != 200 || buf[2] != 255 || buf[3] != 0xff {
		t.Errorf("AppendBytes gave % x", buf)
	}
}
