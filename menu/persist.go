package menu

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/gridmenu/kvstore"
)

// Persister maps item values to and from their data locations.
type Persister struct {
	store kvstore.Store
}

func NewPersister(store kvstore.Store) *Persister {
	return &Persister{store: store}
}

// storedValue returns the value an item persists. Buttons have none.
func storedValue(item Item) (any, bool) {
	switch it := item.(type) {
	case *Toggle:
		return it.On, true
	case *Input:
		return it.Text, true
	case *Selection:
		return it.Text, true
	}
	return nil, false
}

// SaveItemValue merges the item's current value into its data location.
// Items without a location are ignored. A missing or unreadable target is
// treated as empty; write failures are returned.
func (p *Persister) SaveItemValue(item Item) error {
	loc := item.Base().Location
	if p == nil || loc == nil {
		return nil
	}
	value, ok := storedValue(item)
	if !ok {
		return nil
	}
	if err := kvstore.Merge(p.store, loc.File, loc.Key, value); err != nil {
		return fmt.Errorf("save %s %q: %w", item.Kind(), item.Base().Name, err)
	}
	return nil
}

// LoadItemValue hydrates the item from its data location. A missing target,
// missing key or value of the wrong type leaves the item at its defaults.
func (p *Persister) LoadItemValue(item Item) {
	loc := item.Base().Location
	if p == nil || loc == nil {
		return
	}
	rec, err := p.store.Load(loc.File)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("Warning: Could not load %s for %q: %v", loc.File, item.Base().Name, err)
		}
		return
	}
	raw, ok := rec[loc.Key]
	if !ok {
		return
	}

	switch it := item.(type) {
	case *Toggle:
		on, ok := raw.(bool)
		if !ok {
			log.Printf("Warning: Ignoring non-boolean value %v for toggle %q", raw, it.Name)
			return
		}
		it.On = on
	case *Input:
		if s, ok := raw.(string); ok {
			it.Text = s
		} else {
			it.Text = fmt.Sprint(raw)
		}
	case *Selection:
		s, _ := raw.(string)
		if !it.SelectValue(s) {
			log.Printf("Warning: Stored value %v is not an option of %q, using %q", raw, it.Name, it.Current())
			return
		}
		it.Text = s
	}
}
