package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridOf builds a wall grid from rows of '0' (free) and '1' (wall).
func gridOf(rows ...string) [][]bool {
	grid := make([][]bool, len(rows))
	for r, row := range rows {
		grid[r] = make([]bool, len(row))
		for c := range row {
			grid[r][c] = row[c] == '1'
		}
	}
	return grid
}

func TestNew(t *testing.T) {
	t.Run("valid maze", func(t *testing.T) {
		m, err := New(gridOf("0111", "0000", "1110"), NewCoord(0, 0), NewCoord(2, 3))
		require.NoError(t, err)

		assert.Equal(t, 3, m.NumRows())
		assert.Equal(t, 4, m.NumCols())
		assert.Equal(t, NewCoord(0, 0), m.EntryLoc())
		assert.Equal(t, NewCoord(2, 3), m.ExitLoc())
		assert.Empty(t, m.Path())
		assert.False(t, m.Searched())
	})

	t.Run("empty grid", func(t *testing.T) {
		_, err := New(nil, NewCoord(0, 0), NewCoord(0, 0))
		assert.ErrorIs(t, err, ErrEmptyGrid)

		_, err = New([][]bool{{}}, NewCoord(0, 0), NewCoord(0, 0))
		assert.ErrorIs(t, err, ErrEmptyGrid)
	})

	t.Run("ragged grid", func(t *testing.T) {
		_, err := New(gridOf("00", "0", "00"), NewCoord(0, 0), NewCoord(2, 1))
		assert.ErrorIs(t, err, ErrRaggedGrid)
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("start out of bounds", func(t *testing.T) {
		_, err := New(gridOf("00", "00"), NewCoord(-1, 0), NewCoord(1, 1))
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Contains(t, err.Error(), "start")
	})

	t.Run("exit out of bounds", func(t *testing.T) {
		_, err := New(gridOf("00", "00"), NewCoord(0, 0), NewCoord(1, 2))
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Contains(t, err.Error(), "exit")
	})

	t.Run("grid is copied", func(t *testing.T) {
		grid := gridOf("00", "00")
		m, err := New(grid, NewCoord(0, 0), NewCoord(1, 1))
		require.NoError(t, err)

		grid[0][1] = Wall
		wall, err := m.HasWallAt(NewCoord(0, 1))
		require.NoError(t, err)
		assert.False(t, wall)
	})
}

func TestHasWallAt(t *testing.T) {
	m, err := New(gridOf("01", "10"), NewCoord(0, 0), NewCoord(1, 1))
	require.NoError(t, err)

	tests := []struct {
		loc  Coord
		wall bool
	}{
		{NewCoord(0, 0), false},
		{NewCoord(0, 1), true},
		{NewCoord(1, 0), true},
		{NewCoord(1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.loc.String(), func(t *testing.T) {
			wall, err := m.HasWallAt(tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.wall, wall)
		})
	}

	for _, loc := range []Coord{NewCoord(2, 0), NewCoord(0, 2), NewCoord(-1, 0), NewCoord(0, -1)} {
		t.Run("out of bounds "+loc.String(), func(t *testing.T) {
			_, err := m.HasWallAt(loc)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}
}

func TestCoord(t *testing.T) {
	c := NewCoord(3, 7)
	assert.Equal(t, 3, c.Row())
	assert.Equal(t, 7, c.Col())
	assert.True(t, c.Equal(NewCoord(3, 7)))
	assert.False(t, c.Equal(NewCoord(7, 3)))
	assert.Equal(t, "(3,7)", c.String())

	assert.Equal(t, NewCoord(4, 7), c.step(Down))
	assert.Equal(t, NewCoord(2, 7), c.step(Up))
	assert.Equal(t, NewCoord(3, 8), c.step(Right))
	assert.Equal(t, NewCoord(3, 6), c.step(Left))

	assert.True(t, c.adjacent(NewCoord(3, 8)))
	assert.False(t, c.adjacent(NewCoord(4, 8)))
	assert.False(t, c.adjacent(c))
}

func TestString(t *testing.T) {
	m, err := New(gridOf("0111", "0000", "1110"), NewCoord(0, 0), NewCoord(2, 3))
	require.NoError(t, err)

	assert.Equal(t, "S###\n....\n###E\n", m.String())

	require.True(t, m.Search())
	assert.Equal(t, "S###\n****\n###E\n", m.String())
}
