package components

import (
	"github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing config.Facing
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
