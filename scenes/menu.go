package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gridmenu/archetypes"
	"github.com/automoto/gridmenu/components"
	cfg "github.com/automoto/gridmenu/config"
	"github.com/automoto/gridmenu/input"
	"github.com/automoto/gridmenu/menu"
	"github.com/automoto/gridmenu/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the active menu and drives the menu state machine
type MenuScene struct {
	ecs     *ecs.ECS
	machine *menu.Machine
	once    sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(machine *menu.Machine) *MenuScene {
	return &MenuScene{machine: machine}
}

// Update runs one menu frame. It returns the state machine's error, such as
// gamestate.ErrQuit.
func (ms *MenuScene) Update(events []input.Event) error {
	ms.once.Do(ms.configure)
	systems.SetEvents(ms.ecs, events)
	ms.ecs.Update()

	data := systems.GetMenu(ms.ecs)
	err := data.Err
	data.Err = nil
	return err
}

// ForceMenu makes name the current menu
func (ms *MenuScene) ForceMenu(name string) {
	ms.machine.ForceMenu(name)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	screen := archetypes.MenuScreen.Spawn(ms.ecs)
	components.Menu.SetValue(screen, components.MenuData{Machine: ms.machine})

	ms.ecs.AddSystem(systems.UpdateMenu)
	ms.ecs.AddSystem(systems.UpdateHighlight)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
