// Package maploader reads grid levels from JSON files and turns them into
// world maps. The format is deliberately small: dimensions, a cell grid of
// material ids, and the player spawn.
package maploader

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/dualray/world"
)

// SpawnPoint defines where the player starts, in map-cell coordinates, and
// the initial facing angle in radians.
type SpawnPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// LevelData is the on-disk level representation.
type LevelData struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Cells       [][]int    `json:"cells"` // [y][x], 0 = empty, 1-255 = wall material id
	PlayerSpawn SpawnPoint `json:"player_spawn"`
}

// LoadLevel loads a level file and returns the map plus the spawn pose.
func LoadLevel(path string) (*world.Map, world.Pose, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, world.Pose{}, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	var level LevelData
	if err := json.Unmarshal(data, &level); err != nil {
		return nil, world.Pose{}, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}

	if err := validateLevelData(&level); err != nil {
		return nil, world.Pose{}, fmt.Errorf("invalid level data in %s: %w", path, err)
	}

	cells := make([]uint8, 0, level.Width*level.Height)
	for _, row := range level.Cells {
		for _, c := range row {
			cells = append(cells, uint8(c))
		}
	}

	m, err := world.NewMap(level.Width, level.Height, cells)
	if err != nil {
		return nil, world.Pose{}, fmt.Errorf("invalid level data in %s: %w", path, err)
	}

	spawn := world.Pose{X: level.PlayerSpawn.X, Y: level.PlayerSpawn.Y, Angle: level.PlayerSpawn.Angle}
	if m.IsWall(int(spawn.X), int(spawn.Y)) {
		return nil, world.Pose{}, fmt.Errorf("invalid level data in %s: player spawn (%v, %v) is inside a wall", path, spawn.X, spawn.Y)
	}

	return m, spawn, nil
}

// validateLevelData checks the level before building a map from it.
func validateLevelData(level *LevelData) error {
	if level.Width <= 0 || level.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", level.Width, level.Height)
	}

	if len(level.Cells) != level.Height {
		return fmt.Errorf("cells array height mismatch: expected %d, got %d", level.Height, len(level.Cells))
	}

	for y, row := range level.Cells {
		if len(row) != level.Width {
			return fmt.Errorf("cells array width mismatch at row %d: expected %d, got %d", y, level.Width, len(row))
		}
		for x, c := range row {
			if c < 0 || c > 255 {
				return fmt.Errorf("cell (%d, %d): material id %d out of range", x, y, c)
			}
		}
	}

	sp := level.PlayerSpawn
	if sp.X < 0 || sp.X >= float64(level.Width) || sp.Y < 0 || sp.Y >= float64(level.Height) {
		return fmt.Errorf("player spawn (%v, %v) outside the map", sp.X, sp.Y)
	}

	return nil
}
