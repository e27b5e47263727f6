package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelpipe/pkg/models"
)

func TestBoardName(t *testing.T) {
	t.Run("every board name round-trips", func(t *testing.T) {
		for core, name := range boardNames {
			got, ok := CoreStatus(name)
			require.True(t, ok, name)
			assert.Equal(t, core, got)
		}
	})

	t.Run("exactly 26 board statuses", func(t *testing.T) {
		assert.Len(t, boardNames, 26)
	})

	t.Run("claimed is never pushed", func(t *testing.T) {
		_, ok := BoardName(models.StatusClaimed)
		assert.False(t, ok)
	})

	t.Run("retry shows as queued", func(t *testing.T) {
		name, ok := BoardName(models.StatusRetry)
		require.True(t, ok)
		assert.Equal(t, "Queued", name)
	})

	t.Run("unknown board name is ignored", func(t *testing.T) {
		_, ok := CoreStatus("Waiting On Legal")
		assert.False(t, ok)
	})
}

func TestParseFeedback(t *testing.T) {
	t.Run("typical rejection feedback", func(t *testing.T) {
		fb, err := ParseFeedback("Bad narration: 5,12; Bad SFX: 7,9,15")
		require.NoError(t, err)
		assert.Equal(t, []int{5, 12}, fb.Narration)
		assert.Equal(t, []int{7, 9, 15}, fb.SFX)
		assert.Empty(t, fb.Assets)
	})

	t.Run("case and spacing are forgiving", func(t *testing.T) {
		fb, err := ParseFeedback("bad ASSETS : 1 , 3;bad video:2")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, fb.Assets)
		assert.Equal(t, []int{2}, fb.Videos)
	})

	t.Run("prose around annotations is ignored", func(t *testing.T) {
		fb, err := ParseFeedback("Mostly great! Bad narration: 4; please rush this one")
		require.NoError(t, err)
		assert.Equal(t, []int{4}, fb.Narration)
	})

	t.Run("no annotations", func(t *testing.T) {
		fb, err := ParseFeedback("redo everything please")
		require.NoError(t, err)
		assert.True(t, fb.Empty())
	})

	t.Run("composites", func(t *testing.T) {
		fb, err := ParseFeedback("Bad composites: 2,6")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 6}, fb.Composites)
	})

	t.Run("zero index is rejected", func(t *testing.T) {
		_, err := ParseFeedback("Bad narration: 0,2")
		assert.Error(t, err)
	})
}
