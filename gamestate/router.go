package gamestate

import "github.com/automoto/gridmenu/input"

// Subsystem consumes one frame's batch of events.
type Subsystem interface {
	Update(events []input.Event) error
}

// MenuSubsystem is the menu side of the router. ForceMenu switches the
// current menu without touching the previous-menu bookkeeping.
type MenuSubsystem interface {
	Subsystem
	ForceMenu(name string)
}

// Router picks the subsystem for each frame from the mode flag.
type Router struct {
	flag        *Flag
	menus       MenuSubsystem
	game        Subsystem
	confirmMenu string
}

// NewRouter builds a router. confirmMenu is the menu shown whenever menu
// mode is re-entered from game mode.
func NewRouter(flag *Flag, menus MenuSubsystem, game Subsystem, confirmMenu string) *Router {
	return &Router{
		flag:        flag,
		menus:       menus,
		game:        game,
		confirmMenu: confirmMenu,
	}
}

// Frame routes events to the menu subsystem in menu mode and to the game
// subsystem otherwise. It returns the mode the frame ran in so the caller
// knows which subsystem to draw. A quit event ends the frame with ErrQuit in
// either mode.
func (r *Router) Frame(events []input.Event) (Mode, error) {
	mode := r.flag.Read()
	if input.HasQuit(events) {
		return mode, ErrQuit
	}

	if mode == ModeMenu {
		return mode, r.menus.Update(events)
	}

	r.menus.ForceMenu(r.confirmMenu)
	return mode, r.game.Update(events)
}

// Mode returns the mode currently stored in the flag.
func (r *Router) Mode() Mode {
	return r.flag.Read()
}
