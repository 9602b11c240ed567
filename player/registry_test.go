package player

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newRegistry() *Registry {
	return NewRegistry([]Seat{
		{Name: "Tim", Color: Red},
		{Name: "Kyle", Color: Green},
		{Name: "Benny", Color: Yellow},
	})
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"G", "r", " b ", "y"} {
		_, ok := ParseColor(s)
		require.True(t, ok, "%q should be a palette color", s)
	}
	for _, s := range []string{"", "X", "RG", "*"} {
		_, ok := ParseColor(s)
		require.False(t, ok, "%q should be rejected", s)
	}
	c, _ := ParseColor("r")
	require.Equal(t, Red, c)
	require.Equal(t, "R", c.String())
}

func TestRegistryGet(t *testing.T) {
	r := newRegistry()

	p, ok := r.Get(1)
	require.True(t, ok)
	require.Equal(t, "Kyle", p.Name())
	require.Equal(t, Green, p.Color())
	require.True(t, p.Active())

	_, ok = r.Get(3)
	require.False(t, ok, "Index past the last seat is unknown")
	_, ok = r.Get(-1)
	require.False(t, ok, "Negative index is unknown")

	require.Equal(t, []Color{Red, Green, Yellow}, r.Colors())
}

func TestRegistryNext(t *testing.T) {
	t.Run("wraps around", func(t *testing.T) {
		r := newRegistry()
		require.Equal(t, 1, r.Next(0))
		require.Equal(t, 0, r.Next(2))
	})

	t.Run("skips inactive players", func(t *testing.T) {
		r := newRegistry()
		r.Deactivate(1)
		require.Equal(t, 2, r.Next(0))
		r.Deactivate(2)
		require.Equal(t, 0, r.Next(0), "Sole survivor keeps the turn")
	})

	t.Run("panics with nobody active", func(t *testing.T) {
		r := newRegistry()
		for i := 0; i < r.Len(); i++ {
			r.Deactivate(i)
		}
		require.Panics(t, func() { r.Next(0) })
	})
}

func TestRegistryDeactivate(t *testing.T) {
	r := newRegistry()
	require.Equal(t, 3, r.ActiveCount())

	require.True(t, r.Deactivate(2))
	require.False(t, r.Deactivate(2), "Second deactivation is a no-op")
	require.False(t, r.Deactivate(7), "Unknown index is a no-op")
	require.Equal(t, 2, r.ActiveCount())
	require.Equal(t, []int{0, 1}, r.Active())
}

func TestRegistryCounters(t *testing.T) {
	r := newRegistry()

	require.False(t, r.SpendReserve(0), "Nothing to spend after a zero reset")

	r.Reclaim(0)
	r.Capture(0)
	r.Capture(0)
	p, _ := r.Get(0)
	require.Equal(t, 1, p.Reserve())
	require.Equal(t, 2, p.Captured())

	require.True(t, r.SpendReserve(0))
	require.Equal(t, 0, p.Reserve())

	r.Deactivate(0)
	r.Reset(1)
	require.True(t, p.Active())
	require.Equal(t, 1, p.Reserve())
	require.Equal(t, 0, p.Captured())
	require.Equal(t, 3, r.ActiveCount())
}
