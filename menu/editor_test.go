package menu

import (
	"testing"

	"github.com/automoto/gridmenu/input"
	"github.com/automoto/gridmenu/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor() (*Editor, *kvstore.MemoryStore) {
	store := kvstore.NewMemoryStore()
	return NewEditor(NewPersister(store)), store
}

func TestEditorInputTyping(t *testing.T) {
	ed, store := newTestEditor()
	item := &Input{ItemBase: ItemBase{Name: "Player", Location: loc("player")}}
	def := &Definition{Items: []Item{item}}

	button, err := ed.Activate(def, item)
	require.NoError(t, err)
	assert.Nil(t, button)
	assert.True(t, item.Active)

	for _, ev := range []input.Event{
		input.Typed('a'), input.Typed('d'), input.Typed('x'),
		input.Press(input.KeyBackspace),
		input.Typed('a'),
		input.Press(input.KeyUp),
	} {
		require.NoError(t, ed.Handle(item, ev))
	}
	assert.Equal(t, "ada", item.Text)
	assert.Zero(t, store.Writes())

	require.NoError(t, ed.Handle(item, input.Press(input.KeyEnter)))
	assert.False(t, item.Active)
	assert.True(t, item.Modified)

	rec, err := store.Load("settings.json")
	require.NoError(t, err)
	assert.Equal(t, "ada", rec["player"])
}

func TestEditorInputEmptyConfirmDoesNotSave(t *testing.T) {
	ed, store := newTestEditor()
	item := &Input{ItemBase: ItemBase{Location: loc("player")}}
	def := &Definition{Items: []Item{item}}

	_, err := ed.Activate(def, item)
	require.NoError(t, err)
	require.NoError(t, ed.Handle(item, input.Press(input.KeyBackspace)))
	require.NoError(t, ed.Handle(item, input.Press(input.KeyEnter)))

	assert.False(t, item.Active)
	assert.False(t, item.Modified)
	assert.Zero(t, store.Writes())
}

func TestEditorBackspaceRemovesWholeRune(t *testing.T) {
	ed, _ := newTestEditor()
	item := &Input{Text: "né", Active: true}

	require.NoError(t, ed.Handle(item, input.Press(input.KeyBackspace)))
	assert.Equal(t, "n", item.Text)
}

func TestEditorSelectionCycleAndConfirm(t *testing.T) {
	ed, store := newTestEditor()
	item := &Selection{
		ItemBase: ItemBase{Name: "Difficulty", Location: loc("difficulty")},
		Options:  []string{"easy", "normal", "hard"},
	}
	def := &Definition{Items: []Item{item}}

	_, err := ed.Activate(def, item)
	require.NoError(t, err)
	assert.True(t, item.Active)

	require.NoError(t, ed.Handle(item, input.Press(input.KeyLeft)))
	assert.Equal(t, 2, item.Index)
	require.NoError(t, ed.Handle(item, input.Press(input.KeyRight)))
	require.NoError(t, ed.Handle(item, input.Press(input.KeyRight)))
	assert.Equal(t, 1, item.Index)
	assert.Zero(t, store.Writes())

	require.NoError(t, ed.Handle(item, input.Press(input.KeyEnter)))
	assert.False(t, item.Active)
	assert.True(t, item.Modified)
	assert.Equal(t, "normal", item.Text)

	rec, err := store.Load("settings.json")
	require.NoError(t, err)
	assert.Equal(t, "normal", rec["difficulty"])
}

func TestEditorSelectionWithoutOptionsStaysNavigable(t *testing.T) {
	ed, _ := newTestEditor()
	item := &Selection{Options: []string{}}
	def := &Definition{Items: []Item{item}}

	_, err := ed.Activate(def, item)
	require.NoError(t, err)
	assert.False(t, item.Active)
}

func TestEditorToggleFlipsAndSavesOncePerActivation(t *testing.T) {
	ed, store := newTestEditor()
	item := &Toggle{ItemBase: ItemBase{Name: "Sound", Location: loc("sound")}}
	def := &Definition{Items: []Item{item}}

	for i := 1; i <= 3; i++ {
		_, err := ed.Activate(def, item)
		require.NoError(t, err)
		assert.Equal(t, i%2 == 1, item.On)
		assert.Equal(t, i, store.Writes())
		assert.Nil(t, def.ActiveItem(), "toggles have no edit mode")
	}
}

func TestEditorRejectsSecondActiveItem(t *testing.T) {
	ed, _ := newTestEditor()
	first := &Input{Active: true}
	second := &Input{}
	def := &Definition{Items: []Item{first, second}}

	_, err := ed.Activate(def, second)
	require.NoError(t, err)
	assert.False(t, second.Active)
}

func TestEditorActivateButtonReturnsIt(t *testing.T) {
	ed, _ := newTestEditor()
	b := &Button{Function: Function{Name: FuncExit}}

	got, err := ed.Activate(&Definition{Items: []Item{b}}, b)
	require.NoError(t, err)
	assert.Same(t, b, got)
}
