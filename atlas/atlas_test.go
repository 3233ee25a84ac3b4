package atlas

import (
	"encoding/json"
	"os"
	"testing"
)

func TestPaletteParsing(t *testing.T) {
	jsonData := `{
		"name": "test_palette",
		"ceiling": {"r": 10, "g": 20, "b": 30},
		"floor": {"r": 40, "g": 50, "b": 60},
		"materials": [
			{
				"id": 1,
				"name": "brick_wall",
				"color": {"r": 200, "g": 80, "b": 60},
				"pattern": "brick"
			},
			{
				"id": 2,
				"name": "metal_wall",
				"color": {"r": 120, "g": 120, "b": 140},
				"pattern": "solid"
			}
		]
	}`

	var p Palette
	if err := json.Unmarshal([]byte(jsonData), &p); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if p.Name != "test_palette" {
		t.Errorf("Expected name 'test_palette', got '%s'", p.Name)
	}

	if p.Ceiling != (Color{R: 10, G: 20, B: 30}) {
		t.Errorf("Unexpected ceiling color: %+v", p.Ceiling)
	}

	if len(p.Materials) != 2 {
		t.Fatalf("Expected 2 materials, got %d", len(p.Materials))
	}

	brick := p.Materials[0]
	if brick.Name != "brick_wall" {
		t.Errorf("Expected material name 'brick_wall', got '%s'", brick.Name)
	}
	if brick.Pattern != PatternBrick {
		t.Errorf("Expected pattern 'brick', got '%s'", brick.Pattern)
	}

	if err := validatePalette(&p); err != nil {
		t.Errorf("Expected valid palette, got error: %v", err)
	}
}

func TestMaterialLookupFallback(t *testing.T) {
	p := DefaultPalette()

	// Every material the built-in level uses must resolve.
	for _, id := range []uint8{1, 2, 3} {
		m := p.Material(id)
		if m.ID != id {
			t.Errorf("Material(%d) returned id %d", id, m.ID)
		}
	}

	// Unknown ids get the conspicuous fallback instead of nil.
	m := p.Material(99)
	if m == nil {
		t.Fatal("Material(99) returned nil")
	}
	if m.Name != "missing" {
		t.Errorf("Expected fallback material, got '%s'", m.Name)
	}
}

func TestPaletteValidation(t *testing.T) {
	cases := []struct {
		name string
		p    Palette
	}{
		{
			"no materials",
			Palette{Name: "empty"},
		},
		{
			"reserved id zero",
			Palette{Materials: []Material{{ID: 0, Name: "bad", Pattern: PatternSolid}}},
		},
		{
			"duplicate id",
			Palette{Materials: []Material{
				{ID: 1, Name: "a", Pattern: PatternSolid},
				{ID: 1, Name: "b", Pattern: PatternSolid},
			}},
		},
		{
			"unknown pattern",
			Palette{Materials: []Material{{ID: 1, Name: "bad", Pattern: "plaid"}}},
		},
	}

	for _, tc := range cases {
		if err := validatePalette(&tc.p); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadPaletteRejectsInvalidFile(t *testing.T) {
	tempFile, err := os.CreateTemp("", "palette_test_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	invalid := `{
		"name": "invalid",
		"materials": []
	}`

	if _, err := tempFile.Write([]byte(invalid)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tempFile.Close()

	if _, err := LoadPalette(tempFile.Name()); err == nil {
		t.Error("Expected error when loading palette with no materials")
	}
}
