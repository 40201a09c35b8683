package components

import (
	"github.com/automoto/gridmenu/gameplay"
	"github.com/yohamta/donburi"
)

// GameData stores the gameplay collaborator driven by the game scene
type GameData struct {
	Game *gameplay.Game
	Err  error
}

var Game = donburi.NewComponentType[GameData]()
