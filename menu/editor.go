package menu

import (
	"log"

	"github.com/automoto/gridmenu/input"
)

// Editor implements per-item activation and edit mode.
type Editor struct {
	persist *Persister
}

func NewEditor(p *Persister) *Editor {
	return &Editor{persist: p}
}

// Activate applies the cursor's item. Inputs and non-empty selections enter
// edit mode, toggles flip and save immediately, and buttons are returned to
// the caller for dispatch.
func (ed *Editor) Activate(def *Definition, item Item) (*Button, error) {
	if active := def.ActiveItem(); active != nil && active != item {
		log.Printf("Warning: %q is already being edited in %s", active.Base().Name, def.Name)
		return nil, nil
	}

	switch it := item.(type) {
	case *Button:
		return it, nil
	case *Toggle:
		it.On = !it.On
		it.Modified = true
		return nil, ed.persist.SaveItemValue(it)
	case *Input:
		it.Active = true
	case *Selection:
		if len(it.Options) == 0 {
			log.Printf("Warning: Selection %q has no options", it.Name)
			return nil, nil
		}
		it.Active = true
	}
	return nil, nil
}

// Handle feeds one key event to the item in edit mode.
func (ed *Editor) Handle(item Item, ev input.Event) error {
	if ev.Type != input.EventKeyDown {
		return nil
	}

	switch it := item.(type) {
	case *Input:
		switch ev.Key {
		case input.KeyEnter:
			it.Active = false
			if it.Text == "" {
				return nil
			}
			it.Modified = true
			return ed.persist.SaveItemValue(it)
		case input.KeyBackspace:
			if r := []rune(it.Text); len(r) > 0 {
				it.Text = string(r[:len(r)-1])
			}
		case input.KeyChar:
			it.Text += string(ev.Char)
		}
	case *Selection:
		switch ev.Key {
		case input.KeyLeft:
			it.Cycle(-1)
		case input.KeyRight:
			it.Cycle(1)
		case input.KeyEnter:
			it.Active = false
			it.Text = it.Current()
			it.Modified = true
			return ed.persist.SaveItemValue(it)
		}
	}
	return nil
}
