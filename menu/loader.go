package menu

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry holds every loaded menu keyed by name.
type Registry struct {
	menus map[string]*Definition
}

// NewRegistry builds a registry from already constructed definitions.
func NewRegistry(defs ...*Definition) *Registry {
	r := &Registry{menus: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		r.menus[d.Name] = d
	}
	return r
}

// Menu returns the definition called name.
func (r *Registry) Menu(name string) (*Definition, bool) {
	d, ok := r.menus[name]
	return d, ok
}

// Names returns the loaded menu names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.menus))
	for name := range r.menus {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type rawCount struct {
	Count   *int `json:"count" yaml:"count"`
	Spacing *int `json:"spacing" yaml:"spacing"`
}

type rawFunction struct {
	Name     string `json:"name" yaml:"name"`
	NextMenu string `json:"next_menu" yaml:"next_menu"`
}

type rawLocation struct {
	File string `json:"file" yaml:"file"`
	Key  string `json:"key" yaml:"key"`
}

type rawItem struct {
	Name         string       `json:"name" yaml:"name"`
	Type         string       `json:"type" yaml:"type"`
	TextSize     int          `json:"text_size" yaml:"text_size"`
	Function     *rawFunction `json:"function" yaml:"function"`
	DataLocation *rawLocation `json:"data_location" yaml:"data_location"`
	Options      []string     `json:"options" yaml:"options"`
}

type rawMenu struct {
	Title   string    `json:"title" yaml:"title"`
	Rows    rawCount  `json:"rows" yaml:"rows"`
	Columns rawCount  `json:"columns" yaml:"columns"`
	Items   []rawItem `json:"items" yaml:"items"`
}

var decoders = map[string]func([]byte, any) error{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
}

// LoadMenus parses every menu definition in dir within fsys, keyed by file
// stem. Files that fail to parse are logged and skipped. Items bound to a
// data location are hydrated through p when it is non-nil.
func LoadMenus(fsys fs.FS, dir string, p *Persister) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read menu dir %s: %w", dir, err)
	}

	reg := NewRegistry()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		decode, ok := decoders[ext]
		if !ok {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))

		def, err := loadDefinition(fsys, path.Join(dir, entry.Name()), name, decode)
		if err != nil {
			log.Printf("Warning: Error loading menu %q: %v", name, err)
			continue
		}
		for _, item := range def.Items {
			p.LoadItemValue(item)
		}
		reg.menus[name] = def
	}
	return reg, nil
}

func loadDefinition(fsys fs.FS, file, name string, decode func([]byte, any) error) (*Definition, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, err
	}
	var raw rawMenu
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	def := &Definition{
		Name:          name,
		Title:         raw.Title,
		Rows:          intOr(raw.Rows.Count, 1),
		Columns:       intOr(raw.Columns.Count, 1),
		RowSpacing:    intOr(raw.Rows.Spacing, 1),
		ColumnSpacing: intOr(raw.Columns.Spacing, 1),
	}
	for i, ri := range raw.Items {
		item, err := buildItem(ri)
		if err != nil {
			log.Printf("Warning: Skipping item %d of menu %q: %v", i, name, err)
			continue
		}
		def.Items = append(def.Items, item)
	}
	return def, nil
}

func buildItem(ri rawItem) (Item, error) {
	base := ItemBase{Name: ri.Name, TextSize: ri.TextSize}
	if ri.DataLocation != nil && ri.DataLocation.File != "" && ri.DataLocation.Key != "" {
		base.Location = &DataLocation{File: ri.DataLocation.File, Key: ri.DataLocation.Key}
	}

	switch Kind(ri.Type) {
	case KindButton:
		b := &Button{ItemBase: base}
		if ri.Function != nil {
			b.Function = Function{Name: ri.Function.Name, NextMenu: ri.Function.NextMenu}
		}
		return b, nil
	case KindToggle:
		return &Toggle{ItemBase: base}, nil
	case KindInput:
		return &Input{ItemBase: base}, nil
	case KindSelection:
		opts := ri.Options
		if opts == nil {
			opts = []string{}
		}
		return &Selection{ItemBase: base, Options: opts}, nil
	}
	return nil, fmt.Errorf("unknown item type %q", ri.Type)
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
