// Package menu is the menu layer: declarative menu definitions, a cursor over
// each menu's item grid, per-item editing, persistence of edited values and
// button-driven transitions between menus.
package menu

import (
	"fmt"
	"log"

	"github.com/automoto/gridmenu/gamestate"
	"github.com/automoto/gridmenu/input"
)

// Machine tracks the current and previous menu and the cursor, and routes a
// frame's events either to the item in edit mode or to navigation.
type Machine struct {
	registry *Registry
	editor   *Editor
	flag     *gamestate.Flag

	current  string
	previous string
	cursor   Cursor

	missing map[string]bool
}

// NewMachine starts in the start menu with the cursor at (0,0).
func NewMachine(reg *Registry, p *Persister, flag *gamestate.Flag, start string) *Machine {
	return &Machine{
		registry: reg,
		editor:   NewEditor(p),
		flag:     flag,
		current:  start,
		missing:  map[string]bool{},
	}
}

func (m *Machine) Current() string  { return m.current }
func (m *Machine) Previous() string { return m.previous }
func (m *Machine) Cursor() Cursor   { return m.cursor }

// Definition returns the active menu, logging once per unknown name.
func (m *Machine) Definition() (*Definition, bool) {
	def, ok := m.registry.Menu(m.current)
	if !ok {
		if !m.missing[m.current] {
			log.Printf("Warning: Menu %q not found", m.current)
			m.missing[m.current] = true
		}
		return nil, false
	}
	return def, true
}

// ForceMenu makes name the current menu without recording the previous one.
// The cursor resets only when the menu actually changes.
func (m *Machine) ForceMenu(name string) {
	if m.current == name {
		return
	}
	m.current = name
	m.cursor = Cursor{}
}

// Update processes one frame's events in order. It returns
// gamestate.ErrQuit when the application should exit, and any store write
// error.
func (m *Machine) Update(events []input.Event) error {
	for _, ev := range events {
		if ev.Type == input.EventQuit {
			return gamestate.ErrQuit
		}
		if ev.Type != input.EventKeyDown {
			continue
		}

		// Resolved per event: a button earlier in the batch may have
		// switched menus.
		def, ok := m.Definition()
		if !ok {
			return nil
		}

		if active := def.ActiveItem(); active != nil {
			if err := m.editor.Handle(active, ev); err != nil {
				return err
			}
			continue
		}
		if err := m.navigate(def, ev); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) navigate(def *Definition, ev input.Event) error {
	grid := def.Grid()
	switch ev.Key {
	case input.KeyUp:
		m.cursor = grid.Move(m.cursor, MoveUp)
	case input.KeyDown:
		m.cursor = grid.Move(m.cursor, MoveDown)
	case input.KeyLeft:
		m.cursor = grid.Move(m.cursor, MoveLeft)
	case input.KeyRight:
		m.cursor = grid.Move(m.cursor, MoveRight)
	case input.KeyEnter:
		return m.activate(def)
	}
	return nil
}

func (m *Machine) activate(def *Definition) error {
	index, ok := def.Grid().Index(m.cursor)
	if !ok {
		return nil
	}
	button, err := m.editor.Activate(def, def.Items[index])
	if err != nil || button == nil {
		return err
	}
	return m.dispatch(button)
}

func (m *Machine) dispatch(b *Button) error {
	switch b.Function.Name {
	case FuncExit:
		return gamestate.ErrQuit
	case FuncGame:
		if err := m.flag.Write(gamestate.ModeGame); err != nil {
			return fmt.Errorf("button %q: %w", b.Name, err)
		}
	case FuncReturn:
		if m.previous != "" {
			m.current = m.previous
		}
		m.cursor = Cursor{}
	default:
		if b.Function.NextMenu == "" {
			return nil
		}
		m.previous = m.current
		m.current = b.Function.NextMenu
		m.cursor = Cursor{}
	}
	return nil
}
