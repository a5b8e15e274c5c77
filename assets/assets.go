package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/walkabout/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadArena loads levels/<name>.tmx from the embedded files.
func LoadArena(name string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(assetFS, fmt.Sprintf("levels/%s.tmx", name))
	if err != nil {
		return nil, fmt.Errorf("arena %q: %w", name, err)
	}
	return arena, nil
}
