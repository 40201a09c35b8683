package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridMoveNeverLeavesBounds(t *testing.T) {
	g := Grid{Rows: 2, Columns: 3, Items: 6}

	for col := 0; col < g.Columns; col++ {
		for row := 0; row < g.Rows; row++ {
			pos := Cursor{Column: col, Row: row}
			for dx := -3; dx <= 3; dx++ {
				for dy := -3; dy <= 3; dy++ {
					delta := Cursor{Column: dx, Row: dy}
					got := g.Move(pos, delta)
					assert.True(t, g.Contains(got), "pos %v delta %v -> %v", pos, delta, got)

					want := Cursor{Column: col + dx, Row: row + dy}
					if g.Contains(want) {
						assert.Equal(t, want, got)
					} else {
						assert.Equal(t, pos, got, "rejected move must keep position")
					}
				}
			}
		}
	}
}

func TestGridMoveNoWraparound(t *testing.T) {
	g := Grid{Rows: 1, Columns: 2, Items: 2}

	assert.Equal(t, Cursor{}, g.Move(Cursor{}, MoveLeft))
	assert.Equal(t, Cursor{}, g.Move(Cursor{}, MoveUp))
	assert.Equal(t, Cursor{Column: 1}, g.Move(Cursor{}, MoveRight))
	assert.Equal(t, Cursor{Column: 1}, g.Move(Cursor{Column: 1}, MoveRight))
}

func TestGridDegenerate(t *testing.T) {
	g := Grid{}

	assert.Equal(t, Cursor{}, g.Move(Cursor{}, MoveDown))
	_, ok := g.Index(Cursor{})
	assert.False(t, ok)
}

func TestGridIndexPartialRow(t *testing.T) {
	g := Grid{Rows: 2, Columns: 2, Items: 3}

	idx, ok := g.Index(Cursor{Column: 0, Row: 1})
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = g.Index(Cursor{Column: 1, Row: 1})
	assert.False(t, ok, "cell past the last item")

	assert.Equal(t, Cursor{Column: 1, Row: 0}, g.Position(1))
	assert.Equal(t, Cursor{Column: 0, Row: 1}, g.Position(2))
}
