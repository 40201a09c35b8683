package menu

// Cursor is a grid position; Column is x and Row is y.
type Cursor struct {
	Column int
	Row    int
}

// Movement deltas for the four arrow keys.
var (
	MoveUp    = Cursor{Column: 0, Row: -1}
	MoveDown  = Cursor{Column: 0, Row: 1}
	MoveLeft  = Cursor{Column: -1, Row: 0}
	MoveRight = Cursor{Column: 1, Row: 0}
)

// Grid is the navigable area of a menu: Rows x Columns cells, of which the
// first Items (row-major) hold an item.
type Grid struct {
	Rows    int
	Columns int
	Items   int
}

// Contains reports whether pos lies inside [0,Columns) x [0,Rows).
func (g Grid) Contains(pos Cursor) bool {
	return pos.Column >= 0 && pos.Column < g.Columns &&
		pos.Row >= 0 && pos.Row < g.Rows
}

// Move returns pos+delta, or pos unchanged when the result would leave the
// grid. There is no wraparound.
func (g Grid) Move(pos, delta Cursor) Cursor {
	next := Cursor{Column: pos.Column + delta.Column, Row: pos.Row + delta.Row}
	if !g.Contains(next) {
		return pos
	}
	return next
}

// Index returns the row-major item index under pos. ok is false for cells
// past the last item of a partially filled grid.
func (g Grid) Index(pos Cursor) (index int, ok bool) {
	if !g.Contains(pos) {
		return 0, false
	}
	index = pos.Row*g.Columns + pos.Column
	return index, index < g.Items
}

// Position is the inverse of Index.
func (g Grid) Position(index int) Cursor {
	if g.Columns <= 0 {
		return Cursor{}
	}
	return Cursor{Column: index % g.Columns, Row: index / g.Columns}
}
