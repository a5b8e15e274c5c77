package factory

import (
	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid block on the floor plane. Arguments are in
// world units.
func CreateWall(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	s := cfg.Physics.SpaceScale
	obj := resolv.NewObject(x*s, z*s, w*s, d*s, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w*s, d*s))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
