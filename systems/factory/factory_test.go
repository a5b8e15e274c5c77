package factory

import (
	"errors"
	"testing"

	"github.com/automoto/walkabout/components"
	"github.com/automoto/walkabout/shared/leveldata"
	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/automoto/walkabout/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type nopCursor struct {
	locks int
}

func (c *nopCursor) Lock()   { c.locks++ }
func (c *nopCursor) Unlock() {}

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	CreateArena(e, &leveldata.Arena{
		Width: 20,
		Depth: 20,
		Walls: []leveldata.WallRect{{X: 0, Z: 0, W: 20, D: 1}},
	})
	return e
}

func countPlayers(e *ecs.ECS) int {
	n := 0
	tags.Player.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestCreateMovementController_AttachesAndRegisters(t *testing.T) {
	e := newTestECS(t)
	var reg locomotion.Registry
	cursor := &nopCursor{}

	player := CreatePlayer(e, 10, 10)
	handle, err := CreateMovementController(e, &reg, player, ControllerOptions{
		Settings: locomotion.DefaultSettings(),
		Cursor:   cursor,
	})
	if err != nil {
		t.Fatalf("CreateMovementController() error = %v", err)
	}
	if handle != player {
		t.Fatalf("handle is not the player entry")
	}
	ctrl := components.Controller.Get(handle).Controller
	if owner, _ := reg.Current(); owner != ctrl {
		t.Fatalf("registry owner is not the attached controller")
	}
	if err := ctrl.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if cursor.locks != 1 {
		t.Fatalf("cursor locks = %d, want 1", cursor.locks)
	}
}

func TestCreateMovementController_DuplicateIsDiscarded(t *testing.T) {
	e := newTestECS(t)
	var reg locomotion.Registry
	opts := ControllerOptions{Settings: locomotion.DefaultSettings(), Cursor: &nopCursor{}}

	first, err := CreateMovementController(e, &reg, CreatePlayer(e, 5, 5), opts)
	if err != nil {
		t.Fatalf("first controller error = %v", err)
	}
	space := components.Space.Get(mustFirst(t, e, components.Space))
	objectsBefore := len(space.Objects())

	second := CreatePlayer(e, 15, 15)
	handle, err := CreateMovementController(e, &reg, second, opts)
	if !errors.Is(err, locomotion.ErrDuplicateController) {
		t.Fatalf("second controller error = %v, want ErrDuplicateController", err)
	}
	if handle != first {
		t.Fatalf("duplicate returned a handle other than the first owner")
	}
	if second.Valid() {
		t.Fatalf("duplicate player entity still valid")
	}
	if n := countPlayers(e); n != 1 {
		t.Fatalf("players = %d, want 1", n)
	}
	if got := len(space.Objects()); got != objectsBefore {
		t.Fatalf("space objects = %d, want %d", got, objectsBefore)
	}

	owners := 0
	components.Controller.Each(e.World, func(*donburi.Entry) { owners++ })
	if owners != 1 {
		t.Fatalf("controller components = %d, want 1", owners)
	}
}

func TestCreateMovementController_RequiresLocomotion(t *testing.T) {
	e := newTestECS(t)
	var reg locomotion.Registry
	bare := e.World.Entry(e.World.Create(components.Rigidbody, components.Analog))

	_, err := CreateMovementController(e, &reg, bare, ControllerOptions{Cursor: &nopCursor{}})
	if !errors.Is(err, locomotion.ErrMissingLocomotion) {
		t.Fatalf("error = %v, want ErrMissingLocomotion", err)
	}
	if bare.HasComponent(components.Controller) {
		t.Fatalf("controller attached to entity without locomotion")
	}
	if _, ok := reg.Current(); ok {
		t.Fatalf("registry claimed by rejected controller")
	}
}

func TestReleaseMovementController(t *testing.T) {
	e := newTestECS(t)
	var reg locomotion.Registry
	opts := ControllerOptions{Settings: locomotion.DefaultSettings(), Cursor: &nopCursor{}}

	handle, _ := CreateMovementController(e, &reg, CreatePlayer(e, 5, 5), opts)
	ReleaseMovementController(&reg, handle)

	if _, ok := reg.Current(); ok {
		t.Fatalf("registry still owned after release")
	}
	if _, err := CreateMovementController(e, &reg, CreatePlayer(e, 8, 8), opts); err != nil {
		t.Fatalf("controller after release error = %v", err)
	}
}

func TestCreateOwnership(t *testing.T) {
	e := newTestECS(t)
	var reg locomotion.Registry

	entry := CreateOwnership(e, &reg)
	if got := components.Ownership.Get(entry).Registry; got != &reg {
		t.Fatalf("ownership registry = %p, want %p", got, &reg)
	}
	if first, ok := components.Ownership.First(e.World); !ok || first != entry {
		t.Fatalf("ownership entity not queryable")
	}
}

func TestCreateArena_AddsWallsToSpace(t *testing.T) {
	e := newTestECS(t)
	space := components.Space.Get(mustFirst(t, e, components.Space))
	if got := len(space.Objects()); got != 1 {
		t.Fatalf("space objects = %d, want 1", got)
	}
}

func mustFirst[T any](t *testing.T, e *ecs.ECS, c *donburi.ComponentType[T]) *donburi.Entry {
	t.Helper()
	entry, ok := c.First(e.World)
	if !ok {
		t.Fatalf("no entry with component %s", c.Name())
	}
	return entry
}
