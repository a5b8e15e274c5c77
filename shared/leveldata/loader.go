package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names looked up in arena maps.
const (
	WallsGroup = "Walls"
	SpawnGroup = "PlayerSpawn"
)

var ErrNoSpawn = errors.New("no player spawn points defined in map")

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	unitX := float64(levelMap.TileWidth)
	unitZ := float64(levelMap.TileHeight)
	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Walls = append(arena.Walls, WallRect{
					X: o.X / unitX,
					Z: o.Y / unitZ,
					W: o.Width / unitX,
					D: o.Height / unitZ,
				})
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				arena.Spawns = append(arena.Spawns, SpawnPoint{
					X:     o.X / unitX,
					Z:     o.Y / unitZ,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}

	sort.Slice(arena.Spawns, func(i, j int) bool {
		return arena.Spawns[i].Index < arena.Spawns[j].Index
	})

	return arena, nil
}
