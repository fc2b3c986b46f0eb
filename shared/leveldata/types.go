// Package leveldata compiles Tiled TMX maps into the runtime pieces of a level:
// a collision grid, ordered tile sprites and typed spawn requests.
// It has no dependencies on ebitengine, donburi or cp, pure data only.
package leveldata

import "github.com/lafriks/go-tiled"

// TileSize is the edge length of one map cell in world units.
const TileSize = 16

const (
	CollisionLayerName = "collision"
	WaterLayerName     = "water"
)

// Object type tags recognized in object groups.
const (
	TagPlayerStart     = "player_start"
	TagAnglerfish      = "anglerfish"
	TagSawfish         = "sawfish"
	TagStar            = "star"
	TagGoal            = "goal"
	TagBubbleGenerator = "bubble_generator"
)

// Level is the compiled form of one map document.
type Level struct {
	Index  int
	Width  int // tiles
	Height int // tiles

	Grid   *CollisionGrid
	Tiles  []TileSprite // draw order: layer, then row, then column
	Water  []TileSprite // rendered translucent, never solid
	Spawns []SpawnRequest

	// InitialHealth is the map's "initial_health" property, 0 when unset.
	InitialHealth int
	// Skipped counts objects whose type tag was not recognized.
	Skipped int

	// Source is the parsed document, kept for layer pre-rendering.
	// WaterLayer is the water layer's index in Source.Layers, -1 if none.
	Source     *tiled.Map
	WaterLayer int
}

// PixelWidth returns the level width in world units.
func (l *Level) PixelWidth() float64 { return float64(l.Width * TileSize) }

// PixelHeight returns the level height in world units.
func (l *Level) PixelHeight() float64 { return float64(l.Height * TileSize) }

// PlayerStart returns the first player_start request.
func (l *Level) PlayerStart() (SpawnRequest, bool) {
	for _, s := range l.Spawns {
		if s.Kind == SpawnPlayerStart {
			return s, true
		}
	}
	return SpawnRequest{}, false
}

// TileSprite is one drawable tile placed in world space (Y up).
type TileSprite struct {
	X, Y    float64 // center
	Index   uint32  // tile ID local to Tileset
	Tileset *tiled.Tileset
	Layer   int
	Solid   bool
}

type SpawnKind int

const (
	SpawnPlayerStart SpawnKind = iota
	SpawnEnemy
	SpawnPickup
	SpawnGoal
	SpawnEffectGenerator
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnPlayerStart:
		return "player_start"
	case SpawnEnemy:
		return "enemy"
	case SpawnPickup:
		return "pickup"
	case SpawnGoal:
		return "goal"
	case SpawnEffectGenerator:
		return "effect_generator"
	}
	return "unknown"
}

type EnemyKind int

const (
	Anglerfish EnemyKind = iota
	Sawfish
)

func (k EnemyKind) String() string {
	if k == Sawfish {
		return "sawfish"
	}
	return "anglerfish"
}

// SpawnRequest describes an entity to create. X and Y are the world-space
// center; W and H are only meaningful for goals.
type SpawnRequest struct {
	Kind  SpawnKind
	Enemy EnemyKind
	X, Y  float64
	W, H  float64
	// PatrolRange is the half-width of an enemy patrol, 0 for the default.
	PatrolRange float64
}

type tagSpec struct {
	kind  SpawnKind
	enemy EnemyKind
}

var spawnTags = map[string]tagSpec{
	TagPlayerStart:     {kind: SpawnPlayerStart},
	TagAnglerfish:      {kind: SpawnEnemy, enemy: Anglerfish},
	TagSawfish:         {kind: SpawnEnemy, enemy: Sawfish},
	TagStar:            {kind: SpawnPickup},
	TagGoal:            {kind: SpawnGoal},
	TagBubbleGenerator: {kind: SpawnEffectGenerator},
}
