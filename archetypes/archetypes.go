package archetypes

import (
	"github.com/automoto/walkabout/components"
	cfg "github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Player carries everything a movement controller needs on its own
	// entity. The controller component itself is added on registration.
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Rigidbody,
		components.Locomotion,
		components.Analog,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Joystick = newArchetype(
		components.Joystick,
	)
	Hint = newArchetype(
		components.Hint,
	)
	Ownership = newArchetype(
		components.Ownership,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
