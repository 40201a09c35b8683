package components

import (
	"github.com/automoto/gridmenu/input"
	"github.com/yohamta/donburi"
)

// InputData stores the events delivered to a scene for the current frame.
type InputData struct {
	Events []input.Event
}

var Input = donburi.NewComponentType[InputData]()
