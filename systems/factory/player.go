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

// CreatePlayer spawns a player body centered on (x, z).
func CreatePlayer(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	s := cfg.Physics.SpaceScale
	size := cfg.Player.Radius * 2 * s
	obj := resolv.NewObject((x-cfg.Player.Radius)*s, (z-cfg.Player.Radius)*s, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player

	components.Locomotion.SetValue(player, components.LocomotionData{
		Object:    obj,
		Elevation: cfg.Physics.FloorY,
		Grounded:  true,
		Height:    cfg.Player.Height,
	})
	components.Rigidbody.SetValue(player, components.RigidbodyData{
		Drag: cfg.Physics.Drag,
	})
	components.Player.SetValue(player, components.PlayerData{
		SpawnX: x,
		SpawnZ: z,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}

// DestroyPlayer removes a player entity and its collision object.
func DestroyPlayer(ecs *ecs.ECS, player *donburi.Entry) {
	if player.HasComponent(components.Locomotion) {
		obj := components.Locomotion.Get(player).Object
		if obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	ecs.World.Remove(player.Entity())
}
