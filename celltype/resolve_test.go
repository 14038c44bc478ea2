package celltype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveStraight(t *testing.T) {
	base, err := Resolve(Point{0, 0}, Point{1, 0}, Point{2, 0})
	require.NoError(t, err)
	require.Equal(t, Hor, base)

	base, err = Resolve(Point{0, 0}, Point{0, 1}, Point{0, 2})
	require.NoError(t, err)
	require.Equal(t, Ver, base)
}

func TestResolveCorners(t *testing.T) {
	cases := []struct {
		name             string
		prev, cur, next  Point
		want             Base
	}{
		// arriving from the west (moving east), turning south: connects W and S.
		{"SW", Point{0, 0}, Point{1, 0}, Point{1, 1}, SW},
		// arriving from the west, turning north: connects W and N.
		{"NW", Point{0, 1}, Point{1, 1}, Point{1, 0}, NW},
		// arriving from the east (moving west), turning south: connects E and S.
		{"SE", Point{2, 0}, Point{1, 0}, Point{1, 1}, SE},
		// arriving from the east, turning north: connects E and N.
		{"NE", Point{2, 1}, Point{1, 1}, Point{1, 0}, NE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.prev, tc.cur, tc.next)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestResolveReversalAndBadStep(t *testing.T) {
	_, err := Resolve(Point{0, 0}, Point{1, 0}, Point{0, 0})
	require.ErrorIs(t, err, ErrReversal)

	_, err = Resolve(Point{0, 0}, Point{2, 0}, Point{3, 0})
	require.ErrorIs(t, err, ErrNotUnitStep)
}

func TestTypeFlags(t *testing.T) {
	ty := Type{Base: Hor}
	ty = ty.With(ArrowEnd(East))
	require.True(t, ty.Has(ArrowEndE))
	require.False(t, ty.Has(ArrowEndW))
	require.True(t, ty.Valid())
}
