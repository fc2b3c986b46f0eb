package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

var (
	ErrNoPlayerStart    = errors.New("level has no player_start")
	ErrGoalShape        = errors.New("goal must be an axis-aligned rectangle")
	ErrUnsupportedLayer = errors.New("tile layer does not cover the map")
)

// Compile converts a parsed map into a Level. Tile layers are walked in
// document order and each layer's ordinal becomes its draw layer.
func Compile(m *tiled.Map, index int) (*Level, error) {
	level := &Level{
		Index:  index,
		Width:  m.Width,
		Height: m.Height,
		Grid:   NewCollisionGrid(m.Width, m.Height),

		Source:     m,
		WaterLayer: -1,
	}
	if m.Properties != nil {
		level.InitialHealth = m.Properties.GetInt("initial_health")
	}

	// tiles and objects nested in a group would be dropped silently
	if len(m.Groups) > 0 {
		return nil, fmt.Errorf("level %d group %q: %w", index, m.Groups[0].Name, ErrUnsupportedLayer)
	}

	for li, layer := range m.Layers {
		if len(layer.Tiles) != m.Width*m.Height {
			return nil, fmt.Errorf("level %d layer %q: %w (%d tiles for %dx%d)",
				index, layer.Name, ErrUnsupportedLayer, len(layer.Tiles), m.Width, m.Height)
		}
		water := layer.Name == WaterLayerName
		solid := layer.Name == CollisionLayerName
		if water {
			level.WaterLayer = li
		}

		for row := 0; row < m.Height; row++ {
			for col := 0; col < m.Width; col++ {
				tile := layer.Tiles[row*m.Width+col]
				if tile == nil || tile.IsNil() {
					continue
				}
				x, y := TileCenter(col, row, m.Height)
				sprite := TileSprite{
					X:       x,
					Y:       y,
					Index:   tile.ID,
					Tileset: tile.Tileset,
					Layer:   li,
					Solid:   solid,
				}
				if water {
					level.Water = append(level.Water, sprite)
					continue
				}
				level.Tiles = append(level.Tiles, sprite)
				if solid {
					level.Grid.Set(col, row, CellFull)
				}
			}
		}
	}

	hasStart := false
	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			def, ok := spawnTags[objectTag(o)]
			if !ok {
				level.Skipped++
				continue
			}
			if def.kind == SpawnGoal && !isRectangle(o) {
				return nil, fmt.Errorf("level %d object %d (%q): %w", index, o.ID, o.Name, ErrGoalShape)
			}
			x, y := ObjectCenter(o.X, o.Y, o.Width, o.Height, m.Height)
			req := SpawnRequest{
				Kind:  def.kind,
				Enemy: def.enemy,
				X:     x,
				Y:     y,
				W:     o.Width,
				H:     o.Height,
			}
			if def.kind == SpawnEnemy {
				req.PatrolRange = o.Properties.GetFloat("patrol_range")
			}
			if def.kind == SpawnPlayerStart {
				hasStart = true
			}
			level.Spawns = append(level.Spawns, req)
		}
	}

	if !hasStart {
		return nil, fmt.Errorf("level %d: %w", index, ErrNoPlayerStart)
	}
	return level, nil
}

// LoadFile parses the TMX document at path inside fsys and compiles it.
func LoadFile(fsys fs.FS, path string, index int) (*Level, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	level, err := Compile(m, index)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return level, nil
}

// TileCenter maps a cell to the world-space center of that cell, flipping
// the map's downward rows onto an upward Y axis.
func TileCenter(col, row, mapHeight int) (x, y float64) {
	x = float64(col*TileSize) + TileSize/2
	y = float64((mapHeight-row)*TileSize) - TileSize/2
	return x, y
}

// ObjectCenter maps an object's top-left map position and size to its
// world-space center.
func ObjectCenter(objX, objY, objW, objH float64, mapHeight int) (x, y float64) {
	x = objX + objW/2
	y = float64(mapHeight*TileSize) - objY - objH/2
	return x, y
}

func objectTag(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX files written before Tiled 1.9 use type=
}

func isRectangle(o *tiled.Object) bool {
	if len(o.Ellipses) > 0 || len(o.Polygons) > 0 || len(o.PolyLines) > 0 {
		return false
	}
	return o.Width > 0 && o.Height > 0 && o.Rotation == 0
}
