// Package gameplay is the placeholder for the game itself. It only watches
// for the key that reopens the menu.
package gameplay

import (
	"fmt"

	"github.com/automoto/gridmenu/gamestate"
	"github.com/automoto/gridmenu/input"
)

type Game struct {
	flag   *gamestate.Flag
	frames int
}

func New(flag *gamestate.Flag) *Game {
	return &Game{flag: flag}
}

// Update counts the frame and switches back to menu mode on Escape.
func (g *Game) Update(events []input.Event) error {
	g.frames++
	for _, ev := range events {
		if ev.IsKey(input.KeyEscape) {
			if err := g.flag.Write(gamestate.ModeMenu); err != nil {
				return fmt.Errorf("open menu: %w", err)
			}
			return nil
		}
	}
	return nil
}

// Frames returns how many frames have been spent in game mode.
func (g *Game) Frames() int {
	return g.frames
}
