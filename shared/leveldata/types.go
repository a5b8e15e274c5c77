// Package leveldata parses arena maps drawn in Tiled.
// It has no dependencies on ebitengine, donburi or resolv.
// Map pixels are converted to world units at one tile per unit; the map's Y
// axis becomes the world Z axis.
package leveldata

// Arena holds the collision-relevant data parsed from a TMX file.
type Arena struct {
	Name   string
	Width  float64 // world units along X
	Depth  float64 // world units along Z
	Walls  []WallRect
	Spawns []SpawnPoint
}

// WallRect is a solid block on the floor plane.
type WallRect struct {
	X, Z, W, D float64
}

// SpawnPoint is a player spawn location on the floor plane.
type SpawnPoint struct {
	X, Z  float64
	Index int
}
