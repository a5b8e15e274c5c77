package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Heading float64 // degrees, last non-zero movement direction
	SpawnX  float64
	SpawnZ  float64
}

var Player = donburi.NewComponentType[PlayerData]()
