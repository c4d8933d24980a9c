package participle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSpecialChar(t *testing.T) {
	assert.True(t, IsSpecialChar(" "))
	assert.True(t, IsSpecialChar("，。"))
	assert.True(t, IsSpecialChar("!?"))
	assert.False(t, IsSpecialChar(""))
	assert.False(t, IsSpecialChar("apple"))
	assert.False(t, IsSpecialChar("a,"))
	assert.False(t, IsSpecialChar("苹果"))
}

func TestSegmenter(t *testing.T) {
	if testing.Short() {
		t.Skip("loading the gse dictionary is slow")
	}

	seg, err := New()
	require.NoError(t, err)

	seg.Add("apple")
	words := seg.Cut("i like apple, a lot.")
	assert.Contains(t, words, "apple")
	for _, word := range words {
		assert.False(t, IsSpecialChar(word), "%q", word)
	}

	seg.Add("")
	seg.Remove("")
	seg.Remove("apple")

	t.Run("RemoveOnlyOwnTokens", func(t *testing.T) {
		require.True(t, seg.Known("苹果"), "part of the gse base dictionary")

		seg.Add("苹果")
		seg.Remove("苹果")
		assert.True(t, seg.Known("苹果"))

		seg.Remove("中国")
		assert.True(t, seg.Known("中国"))

		seg.Add("zyxwordq")
		require.True(t, seg.Known("zyxwordq"))
		seg.Remove("zyxwordq")
		assert.False(t, seg.Known("zyxwordq"))
	})
}
