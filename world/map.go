// Package world owns the map grid and the player pose. The pose is kept in
// two numeric representations at once — float64 and Q16.16 — and each is
// advanced by its own arithmetic so the two ray casting backends can be
// compared frame over frame.
package world

import "fmt"

// BoundaryMaterial is the material id reported for any query outside the grid.
// It keeps the map logically bounded: a ray can never escape into open space.
const BoundaryMaterial = 1

// Map is a fixed-size grid of material ids. 0 is empty/passable, any nonzero
// value is a wall carrying its material id. The grid is immutable during a
// frame.
type Map struct {
	Width  int
	Height int
	cells  []uint8
}

// NewMap builds a map from row-major cells. The cell slice length must match
// the dimensions; a mismatch is a caller bug.
func NewMap(width, height int, cells []uint8) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map dimensions: %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("cells length mismatch: expected %d, got %d", width*height, len(cells))
	}
	return &Map{Width: width, Height: height, cells: cells}, nil
}

// At returns the material id at the given cell. Coordinates outside the grid
// read as BoundaryMaterial.
func (m *Map) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return BoundaryMaterial
	}
	return m.cells[y*m.Width+x]
}

// IsWall reports whether the cell at (x, y) blocks movement and rays.
func (m *Map) IsWall(x, y int) bool {
	return m.At(x, y) != 0
}

// defaultLevel is the compiled-in map: a closed room with a few pillars and
// inner walls using three wall materials. '.' is empty, digits are material
// ids.
var defaultLevel = []string{
	"111111111111111111111111",
	"1......................1",
	"1..222.....3...........1",
	"1..2.......3...........1",
	"1..2.......3......22...1",
	"1..........3......2....1",
	"1.....1....3...........1",
	"1.....1................1",
	"1.....1........33333...1",
	"1......................1",
	"1......................1",
	"1...33.................1",
	"1...33.........2.......1",
	"1..............2.......1",
	"1......1111....2.......1",
	"1.........1...........11",
	"1.........1............1",
	"1..............33......1",
	"1....2.........33......1",
	"1....2.................1",
	"1....2......1..........1",
	"1...........1..........1",
	"1......................1",
	"111111111111111111111111",
}

// ParseLevel builds a map from text rows where '.' is empty and a digit is a
// wall material id. All rows must share one width.
func ParseLevel(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("level has no rows")
	}
	width := len(rows[0])

	cells := make([]uint8, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d width mismatch: expected %d, got %d", y, width, len(row))
		}
		for x, c := range []byte(row) {
			switch {
			case c == '.':
				cells = append(cells, 0)
			case c >= '1' && c <= '9':
				cells = append(cells, c-'0')
			default:
				return nil, fmt.Errorf("row %d col %d: invalid cell %q", y, x, c)
			}
		}
	}
	return NewMap(width, len(rows), cells)
}

// DefaultLevel returns the built-in map and its spawn pose.
func DefaultLevel() (*Map, Pose) {
	m, err := ParseLevel(defaultLevel)
	if err != nil {
		// The literal above is malformed; not a runtime condition.
		panic(err)
	}
	return m, Pose{X: 12.5, Y: 10.5, Angle: 0}
}
