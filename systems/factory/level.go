package factory

import (
	"math"

	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the level entity, its collision space and walls.
// The space must exist before walls so they register with it.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{Arena: arena})

	scale := cfg.Physics.SpaceScale
	CreateSpace(ecs,
		int(math.Ceil(arena.Width*scale)),
		int(math.Ceil(arena.Depth*scale)),
		cfg.Physics.SpaceCellSize,
	)

	for _, w := range arena.Walls {
		CreateWall(ecs, w.X, w.Z, w.W, w.D)
	}

	return level
}
