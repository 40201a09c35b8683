package config

import (
	"github.com/automoto/gridmenu/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputConfig maps physical keys to the logical keys the menu understands
type InputConfig struct {
	Bindings map[input.Key][]ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[input.Key][]ebiten.Key{
			input.KeyUp:        {ebiten.KeyUp},
			input.KeyDown:      {ebiten.KeyDown},
			input.KeyLeft:      {ebiten.KeyLeft},
			input.KeyRight:     {ebiten.KeyRight},
			input.KeyEnter:     {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
			input.KeyBackspace: {ebiten.KeyBackspace},
			input.KeyEscape:    {ebiten.KeyEscape},
		},
	}
}
