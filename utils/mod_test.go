package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"G", "R", "B"}, "R"))
	require.Equal(t, -1, FindIndex([]string{"G", "R", "B"}, "Y"))
	require.Equal(t, -1, FindIndex[int](nil, 0))
	require.True(t, Contains([]int{3, 4}, 4))
	require.False(t, Contains([]int{3, 4}, 5))
}

func TestFloorMod(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 3, 0},
		{4, 3, 1},
		{-1, 3, 2},
		{-3, 3, 0},
		{-4, 3, 2},
		{5, 2, 1},
	}
	for _, c := range cases {
		require.Equal(t, c.want, FloorMod(c.a, c.b), "FloorMod(%d, %d)", c.a, c.b)
	}
}
