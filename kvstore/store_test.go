package kvstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreMissingTarget(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Load("settings.json")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, ReadOrEmpty(s, "settings.json"))
}

func TestMemoryStoreRoundTripTypes(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save("settings.json", Record{"sound": true, "name": "bob", "level": 3}))

	rec, err := s.Load("settings.json")
	require.NoError(t, err)
	assert.Equal(t, true, rec["sound"])
	assert.Equal(t, "bob", rec["name"])
	assert.Equal(t, float64(3), rec["level"])
	assert.Equal(t, 1, s.Writes())
}

func TestMergeKeepsOtherKeys(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save("settings.json", Record{"sound": false, "music": true}))

	require.NoError(t, Merge(s, "settings.json", "sound", true))

	rec, err := s.Load("settings.json")
	require.NoError(t, err)
	assert.Equal(t, Record{"sound": true, "music": true}, rec)
}

func TestMergeCreatesMissingTarget(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, Merge(s, "profile.json", "name", "ada"))

	rec, err := s.Load("profile.json")
	require.NoError(t, err)
	assert.Equal(t, Record{"name": "ada"}, rec)
}

type brokenStore struct {
	saved Record
}

func (b *brokenStore) Load(string) (Record, error) { return nil, errors.New("disk on fire") }
func (b *brokenStore) Save(_ string, rec Record) error {
	b.saved = rec
	return nil
}

func TestMergeRecoversUnreadableTarget(t *testing.T) {
	s := &brokenStore{}

	require.NoError(t, Merge(s, "settings.json", "sound", true))
	assert.Equal(t, Record{"sound": true}, s.saved)
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.Load("settings.json")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save("settings.json", Record{"sound": true}))
	require.NoError(t, Merge(s, "settings.json", "difficulty", "hard"))

	rec, err := s.Load("settings.json")
	require.NoError(t, err)
	assert.Equal(t, Record{"sound": true, "difficulty": "hard"}, rec)
}

func TestSQLiteStorePersistsAcrossHandles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save("current_game_state", Record{"current_state": "game"}))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	rec, err := s.Load("current_game_state")
	require.NoError(t, err)
	assert.Equal(t, "game", rec["current_state"])
}

func TestItemKey(t *testing.T) {
	assert.Equal(t, "settings_json", itemKey("settings.json"))
	assert.Equal(t, "config_player-1_json", itemKey("config/player-1.json"))
	assert.Equal(t, "current_game_state", itemKey("current_game_state"))
}
