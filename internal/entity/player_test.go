package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
)

func TestNewPlayer(t *testing.T) {
	t.Run("Valid player", func(t *testing.T) {
		// When: a player is created with a padded name
		player, err := NewPlayer("  Alice ", MarkX)

		// Then: the name is trimmed and the mark kept
		require.NoError(t, err)
		assert.Equal(t, "Alice", player.Name())
		assert.Equal(t, MarkX, player.Mark())
		assert.Equal(t, "Alice (X)", player.String())
	})

	t.Run("Empty name", func(t *testing.T) {
		_, err := NewPlayer("   ", MarkO)

		require.ErrorIs(t, err, apperror.ErrEmptyPlayerName)
	})

	t.Run("Unknown mark", func(t *testing.T) {
		_, err := NewPlayer("Bob", Mark("Z"))

		require.ErrorIs(t, err, apperror.ErrUnknownMark)
	})
}

func TestPlayer_ProposeMove(t *testing.T) {
	// Given: Bob playing O on an empty grid
	player, err := NewPlayer("Bob", MarkO)
	require.NoError(t, err)
	grid := newTestGrid(t, 3)

	// When: Bob proposes the same cell twice
	first, err := player.ProposeMove(grid, 2, 1)
	require.NoError(t, err)
	second, err := player.ProposeMove(grid, 2, 1)
	require.NoError(t, err)

	// Then: only the first proposal lands
	assert.True(t, first)
	assert.False(t, second)

	mark, err := grid.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, MarkO, mark)

	// When: Bob proposes a cell outside the grid
	_, err = player.ProposeMove(grid, 3, 3)

	// Then: the grid error is passed through
	require.ErrorIs(t, err, apperror.ErrOutOfBounds)
}

func TestParseMark(t *testing.T) {
	for _, mark := range Marks {
		parsed, err := ParseMark(mark.String())
		require.NoError(t, err)
		assert.Equal(t, mark, parsed)
	}

	_, err := ParseMark("")
	require.ErrorIs(t, err, apperror.ErrUnknownMark)

	_, err = ParseMark("x")
	require.ErrorIs(t, err, apperror.ErrUnknownMark)
}
