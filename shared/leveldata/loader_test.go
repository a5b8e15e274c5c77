package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="16"/>
  <object id="2" x="32" y="48" width="64" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="160" y="80">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="4" x="48" y="112">
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="64" height="16"/>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testArena)},
	}

	arena, err := LoadArena(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadArena() error = %v", err)
	}

	if arena.Name != "test" {
		t.Errorf("Name = %q, want %q", arena.Name, "test")
	}
	if arena.Width != 20 || arena.Depth != 10 {
		t.Errorf("size = %vx%v, want 20x10", arena.Width, arena.Depth)
	}
	if len(arena.Walls) != 2 {
		t.Fatalf("walls = %d, want 2", len(arena.Walls))
	}
	if got, want := arena.Walls[1], (WallRect{X: 2, Z: 3, W: 4, D: 2}); got != want {
		t.Errorf("wall[1] = %+v, want %+v", got, want)
	}
	if len(arena.Spawns) != 2 {
		t.Fatalf("spawns = %d, want 2", len(arena.Spawns))
	}
	if got, want := arena.Spawns[0], (SpawnPoint{X: 3, Z: 7, Index: 0}); got != want {
		t.Errorf("spawn[0] = %+v, want %+v", got, want)
	}
	if got, want := arena.Spawns[1], (SpawnPoint{X: 10, Z: 5, Index: 1}); got != want {
		t.Errorf("spawn[1] = %+v, want %+v", got, want)
	}
}

func TestLoadArena_NoSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": &fstest.MapFile{Data: []byte(noSpawnArena)},
	}
	if _, err := LoadArena(fsys, "empty.tmx"); !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("LoadArena() error = %v, want ErrNoSpawn", err)
	}
}

func TestLoadArena_MissingFile(t *testing.T) {
	if _, err := LoadArena(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatalf("LoadArena() error = nil for missing file")
	}
}
