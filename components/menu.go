package components

import (
	"github.com/automoto/gridmenu/menu"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData stores the menu state machine driven by the menu scene
type MenuData struct {
	Machine *menu.Machine
	Err     error // result of the last Machine.Update
}

// Menu is the component type for the menu state machine
var Menu = donburi.NewComponentType[MenuData]()

// HighlightData animates the cursor highlight between grid cells
type HighlightData struct {
	Menu   string      // menu the highlight was laid out for
	Target menu.Cursor // cell the highlight is moving to
	X, Y   float32     // current top-left corner
	TweenX *gween.Tween
	TweenY *gween.Tween
}

// Highlight is the component type for the cursor highlight
var Highlight = donburi.NewComponentType[HighlightData]()
