package store

import (
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/miajio/dict/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadAll(t *testing.T, s dictionary.Store) map[string]string {
	t.Helper()
	entries := make(map[string]string)
	require.NoError(t, s.Load(func(word, meaning string) {
		entries[word] = meaning
	}))
	return entries
}

func TestFile(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		s := NewFile(filepath.Join(t.TempDir(), "database.txt"))
		err := s.Load(func(string, string) { t.Fatal("unexpected entry") })
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "database.txt")
		s := NewFile(path)

		trie := dictionary.NewTrie()
		trie.Insert("cat", "feline")
		trie.Insert("car", "vehicle")
		require.NoError(t, s.Save(trie.Entries()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "car: vehicle\ncat: feline\n", string(data))

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), fi.Mode().Perm(), "new file is 0644")

		assert.Equal(t, maps.Collect(trie.Entries()), loadAll(t, s))
		require.NoError(t, s.Close())
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "database.txt")
		require.NoError(t, os.WriteFile(path, []byte("old: stale entry\nmore: stale\n"), 0o644))
		require.NoError(t, os.Chmod(path, 0o640))

		s := NewFile(path)
		require.NoError(t, s.Save(maps.All(map[string]string{"new": "fresh"})))
		assert.Equal(t, map[string]string{"new": "fresh"}, loadAll(t, s))

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), fi.Mode().Perm(), "save keeps the file mode")

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, files, 1, "temporary file is renamed away")
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "database.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		assert.Empty(t, loadAll(t, NewFile(path)))
	})

	t.Run("Gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "database.txt.gz")
		s := NewFile(path)
		require.NoError(t, s.Save(maps.All(map[string]string{"apple": "a fruit"})))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x1f, 0x8b}, data[:2])

		assert.Equal(t, map[string]string{"apple": "a fruit"}, loadAll(t, s))
	})

	t.Run("EmptyGzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "database.txt.gz")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		assert.Empty(t, loadAll(t, NewFile(path)))
	})

	t.Run("SaveIntoMissingDir", func(t *testing.T) {
		s := NewFile(filepath.Join(t.TempDir(), "missing", "database.txt"))
		assert.Error(t, s.Save(maps.All(map[string]string{"a": "b"})))
	})
}
