package menu

import "image"

// ToggleState is the on/off coloring key of a cell
type ToggleState int

const (
	ToggleNone ToggleState = iota
	ToggleOff
	ToggleOn
)

// Cell is everything the renderer needs to draw one item.
type Cell struct {
	Index       int
	Position    Cursor
	Kind        Kind
	Text        string
	TextSize    int
	Toggle      ToggleState
	Highlighted bool
	Editing     bool
}

// View is a snapshot of the active menu for drawing.
type View struct {
	Title         string
	Rows          int
	Columns       int
	ColumnSpacing int
	RowSpacing    int
	Cursor        Cursor
	Cells         []Cell
}

// View returns the active menu's render snapshot. ok is false when the
// current menu is unknown.
func (m *Machine) View() (View, bool) {
	def, ok := m.Definition()
	if !ok {
		return View{}, false
	}

	grid := def.Grid()
	v := View{
		Title:         def.Title,
		Rows:          def.Rows,
		Columns:       def.Columns,
		ColumnSpacing: def.ColumnSpacing,
		RowSpacing:    def.RowSpacing,
		Cursor:        m.cursor,
		Cells:         make([]Cell, 0, len(def.Items)),
	}
	for i, item := range def.Items {
		pos := grid.Position(i)
		cell := Cell{
			Index:       i,
			Position:    pos,
			Kind:        item.Kind(),
			Text:        displayText(item),
			TextSize:    item.Base().TextSize,
			Highlighted: pos == m.cursor,
			Editing:     editing(item),
		}
		if t, ok := item.(*Toggle); ok {
			cell.Toggle = ToggleOff
			if t.On {
				cell.Toggle = ToggleOn
			}
		}
		v.Cells = append(v.Cells, cell)
	}
	return v, true
}

func displayText(item Item) string {
	switch it := item.(type) {
	case *Input:
		if it.Active || it.Modified {
			return it.Text
		}
	case *Selection:
		if it.Active {
			return "< " + it.Current() + " >"
		}
		if it.Modified {
			return it.Text
		}
	}
	return item.Base().Name
}

// Layout computes grid cell geometry: fixed-size cells separated by the
// menu's spacing, centered in the viewport.
type Layout struct {
	ItemWidth  int
	ItemHeight int
	Panel      image.Rectangle
	colStep    int
	rowStep    int
}

// NewLayout centers a Rows x Columns grid of itemW x itemH cells inside a
// screenW x screenH viewport.
func NewLayout(v View, screenW, screenH, itemW, itemH int) Layout {
	cols, rows := max(v.Columns, 0), max(v.Rows, 0)
	totalW := cols*itemW + max(cols-1, 0)*v.ColumnSpacing
	totalH := rows*itemH + max(rows-1, 0)*v.RowSpacing
	left := (screenW - totalW) / 2
	top := (screenH - totalH) / 2

	return Layout{
		ItemWidth:  itemW,
		ItemHeight: itemH,
		Panel:      image.Rect(left, top, left+totalW, top+totalH),
		colStep:    itemW + v.ColumnSpacing,
		rowStep:    itemH + v.RowSpacing,
	}
}

// Cell returns the rectangle of the cell at pos.
func (l Layout) Cell(pos Cursor) image.Rectangle {
	x := l.Panel.Min.X + pos.Column*l.colStep
	y := l.Panel.Min.Y + pos.Row*l.rowStep
	return image.Rect(x, y, x+l.ItemWidth, y+l.ItemHeight)
}

// TitleCenter returns the point the title is centered on: horizontally
// centered, halfway down the space above the panel.
func (l Layout) TitleCenter(screenW int) image.Point {
	return image.Pt(screenW/2, l.Panel.Min.Y/2)
}
