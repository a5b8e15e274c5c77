package factory

import (
	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the floor-plane collision space. Sizes are in space
// units; resolv's Y axis is world Z.
func CreateSpace(ecs *ecs.ECS, width, depth, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, depth, cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}
