package store

import (
	"maps"
	"testing"

	bdg "github.com/miajio/dict/pkg/badger"
	"github.com/miajio/dict/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBadger(t *testing.T) *Badger {
	t.Helper()
	engine, err := bdg.InMemory()
	require.NoError(t, err)
	s := NewBadger(engine)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBadger(t *testing.T) {
	t.Run("EmptyLoad", func(t *testing.T) {
		assert.Empty(t, loadAll(t, newBadger(t)))
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		s := newBadger(t)
		entries := map[string]string{
			"apple": "a fruit",
			"":      "the empty word",
			"苹果":    "apple",
		}
		require.NoError(t, s.Save(maps.All(entries)))
		assert.Equal(t, entries, loadAll(t, s))
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		s := newBadger(t)
		require.NoError(t, s.Save(maps.All(map[string]string{"old": "stale", "keep": "v1"})))
		require.NoError(t, s.Save(maps.All(map[string]string{"keep": "v2"})))
		assert.Equal(t, map[string]string{"keep": "v2"}, loadAll(t, s))
	})

	t.Run("EngineRoundTrip", func(t *testing.T) {
		s := newBadger(t)
		e := dictionary.New(s)
		e.Insert("cat", "feline")
		e.Insert("car", "vehicle")
		require.True(t, e.Delete("car"))
		require.NoError(t, e.Save())

		restored := dictionary.New(s)
		assert.Equal(t, 1, restored.Load())
		meaning, ok := restored.Search("cat")
		require.True(t, ok)
		assert.Equal(t, "feline", meaning)
	})

	t.Run("Closed", func(t *testing.T) {
		s := newBadger(t)
		require.NoError(t, s.Close())
		assert.ErrorIs(t, s.Load(func(string, string) {}), dictionary.ErrStoreClosed)
		assert.ErrorIs(t, s.Save(maps.All(map[string]string{})), dictionary.ErrStoreClosed)
	})
}
