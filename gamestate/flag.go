// Package gamestate holds the coarse menu-vs-game mode flag shared by the
// menu and gameplay subsystems, and the per-frame router that consults it.
package gamestate

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/gridmenu/kvstore"
)

// ErrQuit is returned when the application should terminate: an exit
// button was activated or the window was closed.
var ErrQuit = errors.New("quit requested")

// Mode selects which subsystem receives the frame's events
type Mode string

const (
	ModeMenu Mode = "menu"
	ModeGame Mode = "game"
)

const (
	// FlagTarget is the store target holding the mode flag.
	FlagTarget = "current_game_state"
	// FlagKey is the key of the mode inside FlagTarget.
	FlagKey = "current_state"
)

// Flag reads and writes the mode through a key-value store. Both subsystems
// and the router hold the same Flag.
type Flag struct {
	store kvstore.Store
}

func NewFlag(store kvstore.Store) *Flag {
	return &Flag{store: store}
}

// Read returns the current mode. A missing target or key reads as ModeMenu.
func (f *Flag) Read() Mode {
	rec, err := f.store.Load(FlagTarget)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("Warning: Could not read game state: %v", err)
		}
		return ModeMenu
	}
	switch v := rec[FlagKey].(type) {
	case string:
		return Mode(v)
	case nil:
		return ModeMenu
	default:
		log.Printf("Warning: Unexpected game state value %v", v)
		return ModeMenu
	}
}

// Write stores mode, keeping any other keys of the flag target.
func (f *Flag) Write(mode Mode) error {
	if err := kvstore.Merge(f.store, FlagTarget, FlagKey, string(mode)); err != nil {
		return fmt.Errorf("write game state %q: %w", mode, err)
	}
	return nil
}
