package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gridmenu/archetypes"
	"github.com/automoto/gridmenu/components"
	cfg "github.com/automoto/gridmenu/config"
	"github.com/automoto/gridmenu/gameplay"
	"github.com/automoto/gridmenu/input"
	"github.com/automoto/gridmenu/systems"
	"github.com/automoto/gridmenu/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs gameplay while the mode flag says game
type GameScene struct {
	ecs  *ecs.ECS
	game *gameplay.Game
	hud  *ui.GameHUD
	once sync.Once
}

// NewGameScene creates a new game scene around game
func NewGameScene(game *gameplay.Game, hud *ui.GameHUD) *GameScene {
	return &GameScene{game: game, hud: hud}
}

func (gs *GameScene) Update(events []input.Event) error {
	gs.once.Do(gs.configure)
	systems.SetEvents(gs.ecs, events)
	gs.ecs.Update()

	gs.hud.SetFrames(gs.game.Frames())
	gs.hud.Update()

	data := systems.GetGame(gs.ecs)
	err := data.Err
	data.Err = nil
	return err
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.hud.Draw(screen)
}

func (gs *GameScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	screen := archetypes.GameScreen.Spawn(gs.ecs)
	components.Game.SetValue(screen, components.GameData{Game: gs.game})

	gs.ecs.AddSystem(systems.UpdateGame)

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGame)
}
