package menu

import (
	"testing"

	"github.com/automoto/gridmenu/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(key string) *DataLocation {
	return &DataLocation{File: "settings.json", Key: key}
}

func TestInputRoundTrip(t *testing.T) {
	store := kvstore.NewMemoryStore()
	p := NewPersister(store)

	saved := &Input{ItemBase: ItemBase{Name: "Player", Location: loc("player")}, Text: "Zoë the 3rd "}
	require.NoError(t, p.SaveItemValue(saved))

	fresh := &Input{ItemBase: ItemBase{Name: "Player", Location: loc("player")}}
	p.LoadItemValue(fresh)
	assert.Equal(t, saved.Text, fresh.Text)
}

func TestSelectionRoundTripMatchesByValue(t *testing.T) {
	store := kvstore.NewMemoryStore()
	p := NewPersister(store)

	saved := &Selection{
		ItemBase: ItemBase{Name: "Difficulty", Location: loc("difficulty")},
		Options:  []string{"easy", "normal", "hard"},
		Index:    1,
		Text:     "normal",
	}
	require.NoError(t, p.SaveItemValue(saved))

	same := &Selection{ItemBase: saved.ItemBase, Options: []string{"easy", "normal", "hard"}}
	p.LoadItemValue(same)
	assert.Equal(t, 1, same.Index)
	assert.Equal(t, "normal", same.Text)

	reordered := &Selection{ItemBase: saved.ItemBase, Options: []string{"hard", "easy", "normal"}}
	p.LoadItemValue(reordered)
	assert.Equal(t, 2, reordered.Index)

	missing := &Selection{ItemBase: saved.ItemBase, Options: []string{"casual", "expert"}, Index: 1}
	p.LoadItemValue(missing)
	assert.Equal(t, 0, missing.Index)
}

func TestToggleRoundTrip(t *testing.T) {
	store := kvstore.NewMemoryStore()
	p := NewPersister(store)

	require.NoError(t, p.SaveItemValue(&Toggle{ItemBase: ItemBase{Location: loc("sound")}, On: true}))

	fresh := &Toggle{ItemBase: ItemBase{Location: loc("sound")}}
	p.LoadItemValue(fresh)
	assert.True(t, fresh.On)
}

func TestToggleIgnoresWrongType(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Save("settings.json", kvstore.Record{"sound": "yes"}))

	item := &Toggle{ItemBase: ItemBase{Location: loc("sound")}}
	NewPersister(store).LoadItemValue(item)
	assert.False(t, item.On)
}

func TestSaveMergesIntoExistingTarget(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Save("settings.json", kvstore.Record{"music": false}))

	p := NewPersister(store)
	require.NoError(t, p.SaveItemValue(&Toggle{ItemBase: ItemBase{Location: loc("sound")}, On: true}))

	rec, err := store.Load("settings.json")
	require.NoError(t, err)
	assert.Equal(t, kvstore.Record{"music": false, "sound": true}, rec)
}

func TestSaveWithoutLocationIsNoop(t *testing.T) {
	store := kvstore.NewMemoryStore()
	p := NewPersister(store)

	require.NoError(t, p.SaveItemValue(&Input{Text: "x"}))
	require.NoError(t, p.SaveItemValue(&Button{ItemBase: ItemBase{Location: loc("b")}}))
	assert.Zero(t, store.Writes())
}
