package menu

// Kind names an item variant as it appears in menu definitions
type Kind string

const (
	KindButton    Kind = "button"
	KindToggle    Kind = "toggle"
	KindInput     Kind = "input"
	KindSelection Kind = "selection"
)

// DataLocation binds an item's value to a key inside a store target.
type DataLocation struct {
	File string
	Key  string
}

// Function describes what a button does when activated.
type Function struct {
	Name     string
	NextMenu string
}

// Function names with built-in behavior. Any other name navigates to
// NextMenu when it is set.
const (
	FuncExit   = "exit"
	FuncGame   = "game"
	FuncReturn = "return"
)

// Item is one cell of a menu grid. It is implemented only by *Button,
// *Toggle, *Input and *Selection.
type Item interface {
	Base() *ItemBase
	Kind() Kind
}

// ItemBase holds the fields shared by every item variant.
type ItemBase struct {
	Name     string
	TextSize int
	Location *DataLocation
}

func (b *ItemBase) Base() *ItemBase { return b }

type Button struct {
	ItemBase
	Function Function
}

func (*Button) Kind() Kind { return KindButton }

type Toggle struct {
	ItemBase
	On       bool
	Modified bool
}

func (*Toggle) Kind() Kind { return KindToggle }

// Input is a free text item. Text doubles as the edit buffer.
type Input struct {
	ItemBase
	Text     string
	Active   bool
	Modified bool
}

func (*Input) Kind() Kind { return KindInput }

// Selection cycles through a fixed list of options. Text holds the last
// confirmed option.
type Selection struct {
	ItemBase
	Options  []string
	Index    int
	Text     string
	Active   bool
	Modified bool
}

func (*Selection) Kind() Kind { return KindSelection }

// Current returns the highlighted option, or "" when there are none.
func (s *Selection) Current() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Index]
}

// Cycle moves the index by delta, wrapping in both directions.
func (s *Selection) Cycle(delta int) {
	n := len(s.Options)
	if n == 0 {
		s.Index = 0
		return
	}
	s.Index = ((s.Index+delta)%n + n) % n
}

// SelectValue points the index at value. It falls back to index 0 and
// reports false when value is not one of the options.
func (s *Selection) SelectValue(value string) bool {
	for i, opt := range s.Options {
		if opt == value {
			s.Index = i
			return true
		}
	}
	s.Index = 0
	return false
}

// editing reports whether item is currently in edit mode.
func editing(item Item) bool {
	switch it := item.(type) {
	case *Input:
		return it.Active
	case *Selection:
		return it.Active
	}
	return false
}

// Definition is one loaded menu screen.
type Definition struct {
	Name          string
	Title         string
	Rows          int
	Columns       int
	ColumnSpacing int
	RowSpacing    int
	Items         []Item
}

// Grid returns the navigation bounds of the definition.
func (d *Definition) Grid() Grid {
	return Grid{Rows: d.Rows, Columns: d.Columns, Items: len(d.Items)}
}

// ActiveItem returns the item in edit mode, if any.
func (d *Definition) ActiveItem() Item {
	for _, item := range d.Items {
		if editing(item) {
			return item
		}
	}
	return nil
}
