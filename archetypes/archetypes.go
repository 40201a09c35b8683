package archetypes

import (
	"github.com/automoto/gridmenu/components"
	cfg "github.com/automoto/gridmenu/config"
	"github.com/automoto/gridmenu/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	MenuScreen = newArchetype(
		tags.MenuScreen,
		components.Menu,
		components.Highlight,
		components.Input,
	)
	GameScreen = newArchetype(
		tags.GameScreen,
		components.Game,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return e.World.Entry(e.Create(cfg.Default, all...))
}
