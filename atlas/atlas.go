// Package atlas defines the material palette the renderer shades walls with.
// Every nonzero map cell id maps to a material: a base color plus a procedural
// pattern, with separate ceiling and floor colors. A compiled-in palette is
// always available; games can override it with a JSON palette file.
package atlas

import (
	"encoding/json"
	"fmt"
	"os"
)

// Color is an opaque RGB color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Pattern names understood by the renderer's wall shading.
const (
	PatternSolid   = "solid"
	PatternChecker = "checker"
	PatternBrick   = "brick"
)

// Material describes how walls with one cell id are drawn.
type Material struct {
	ID      uint8  `json:"id"`
	Name    string `json:"name"`
	Color   Color  `json:"color"`
	Pattern string `json:"pattern"`
}

// Palette is a full set of materials plus the flat ceiling/floor colors.
type Palette struct {
	Name      string     `json:"name"`
	Ceiling   Color      `json:"ceiling"`
	Floor     Color      `json:"floor"`
	Materials []Material `json:"materials"`

	byID map[uint8]*Material
}

// fallback is used for cell ids the palette does not define, so an unknown id
// renders conspicuously instead of crashing or vanishing.
var fallback = Material{ID: 0, Name: "missing", Color: Color{R: 255, G: 0, B: 255}, Pattern: PatternSolid}

// Material returns the material for a cell id, or the fallback material for
// ids the palette does not define.
func (p *Palette) Material(id uint8) *Material {
	if m, ok := p.byID[id]; ok {
		return m
	}
	return &fallback
}

// index builds the id lookup. Called after construction or load.
func (p *Palette) index() {
	p.byID = make(map[uint8]*Material, len(p.Materials))
	for i := range p.Materials {
		p.byID[p.Materials[i].ID] = &p.Materials[i]
	}
}

// DefaultPalette returns the compiled-in palette covering the built-in level.
func DefaultPalette() *Palette {
	p := &Palette{
		Name:    "default",
		Ceiling: Color{R: 40, G: 44, B: 62},
		Floor:   Color{R: 70, G: 62, B: 48},
		Materials: []Material{
			{ID: 1, Name: "stone", Color: Color{R: 170, G: 170, B: 180}, Pattern: PatternBrick},
			{ID: 2, Name: "rust", Color: Color{R: 190, G: 110, B: 70}, Pattern: PatternChecker},
			{ID: 3, Name: "moss", Color: Color{R: 90, G: 160, B: 90}, Pattern: PatternSolid},
		},
	}
	p.index()
	return p
}

// LoadPalette reads a palette from a JSON file.
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file %s: %w", path, err)
	}

	var p Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}

	if err := validatePalette(&p); err != nil {
		return nil, fmt.Errorf("invalid palette in %s: %w", path, err)
	}

	p.index()
	return &p, nil
}

// validatePalette checks the palette is usable before it reaches the renderer.
func validatePalette(p *Palette) error {
	if len(p.Materials) == 0 {
		return fmt.Errorf("no materials defined")
	}

	seen := make(map[uint8]bool)
	for i, m := range p.Materials {
		if m.ID == 0 {
			return fmt.Errorf("material %d (%s): id 0 is reserved for empty cells", i, m.Name)
		}
		if seen[m.ID] {
			return fmt.Errorf("material %d (%s): duplicate id %d", i, m.Name, m.ID)
		}
		seen[m.ID] = true

		switch m.Pattern {
		case PatternSolid, PatternChecker, PatternBrick:
		default:
			return fmt.Errorf("material %d (%s): unknown pattern %q", i, m.Name, m.Pattern)
		}
	}
	return nil
}
