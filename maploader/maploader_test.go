package maploader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLevel(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write level file: %v", err)
	}
	return path
}

func TestLoadLevel(t *testing.T) {
	path := writeLevel(t, `{
		"name": "tiny",
		"width": 4,
		"height": 3,
		"cells": [
			[1, 1, 1, 1],
			[1, 0, 2, 1],
			[1, 1, 1, 1]
		],
		"player_spawn": {"x": 1.5, "y": 1.5, "angle": 0.5}
	}`)

	m, spawn, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}

	if m.Width != 4 || m.Height != 3 {
		t.Errorf("map dimensions %dx%d, expected 4x3", m.Width, m.Height)
	}
	if m.At(2, 1) != 2 {
		t.Errorf("cell (2,1) material %d, expected 2", m.At(2, 1))
	}
	if m.IsWall(1, 1) {
		t.Error("spawn cell (1,1) should be empty")
	}
	if spawn.X != 1.5 || spawn.Y != 1.5 || spawn.Angle != 0.5 {
		t.Errorf("unexpected spawn pose: %+v", spawn)
	}
}

func TestLoadLevelValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{
			"dimension mismatch",
			`{"width": 3, "height": 2, "cells": [[1,1,1]], "player_spawn": {"x": 1, "y": 1}}`,
		},
		{
			"row width mismatch",
			`{"width": 3, "height": 2, "cells": [[1,1,1],[1,1]], "player_spawn": {"x": 1, "y": 1}}`,
		},
		{
			"material out of range",
			`{"width": 2, "height": 2, "cells": [[1,1],[300,1]], "player_spawn": {"x": 1, "y": 1}}`,
		},
		{
			"spawn outside map",
			`{"width": 2, "height": 2, "cells": [[0,0],[0,0]], "player_spawn": {"x": 9, "y": 1}}`,
		},
		{
			"spawn inside wall",
			`{"width": 2, "height": 2, "cells": [[1,1],[1,1]], "player_spawn": {"x": 0.5, "y": 0.5}}`,
		},
		{
			"not json",
			`cells: everywhere`,
		},
	}

	for _, tc := range cases {
		path := writeLevel(t, tc.content)
		if _, _, err := LoadLevel(path); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, _, err := LoadLevel(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
