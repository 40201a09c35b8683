package systems

import (
	"github.com/automoto/gridmenu/components"
	cfg "github.com/automoto/gridmenu/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGame runs one gameplay frame with this frame's events
func UpdateGame(e *ecs.ECS) {
	data := GetGame(e)
	if data == nil {
		return
	}
	data.Err = data.Game.Update(takeEvents(e))
}

// DrawGame clears the play area; the HUD is drawn on top by the scene
func DrawGame(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Game.BackgroundColor, false)
}

// GetGame returns the scene's gameplay component, or nil before the scene sets it up
func GetGame(e *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}
