package tags

import "github.com/yohamta/donburi"

var (
	MenuScreen = donburi.NewTag().SetName("MenuScreen")
	GameScreen = donburi.NewTag().SetName("GameScreen")
)
