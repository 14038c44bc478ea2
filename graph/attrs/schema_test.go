package attrs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateColorForms(t *testing.T) {
	s := NewSchema()
	for _, raw := range []string{"red", "#ff0000", "#f00", "rgb(255,0,0)", "hsv(0,100,100)"} {
		v, err := s.Validate("node", "color", raw)
		require.NoError(t, err, raw)
		require.Equal(t, "#ff0000", v.Str, raw)
	}
}

func TestValidateUnknownAttribute(t *testing.T) {
	s := NewSchema()
	_, err := s.Validate("node", "bogus", "1")
	require.ErrorIs(t, err, ErrUnknownName)
}

func TestValidateMultiValue(t *testing.T) {
	s := NewSchema()
	_, err := s.Validate("node", "color", "red|blue")
	require.ErrorIs(t, err, ErrMultipleNotAllowed)

	v, err := s.Validate("edge", "start", "south|north,2")
	require.NoError(t, err)
	require.True(t, v.Multi())
	require.Len(t, v.List, 2)
	require.Equal(t, "north", v.List[1].Str)
	require.Equal(t, int64(2), v.List[1].Aux)
}

func TestValidateFlowKeywordsAndDegrees(t *testing.T) {
	s := NewSchema()
	v, err := s.Validate("node", "flow", "right")
	require.NoError(t, err)
	require.True(t, v.Relative)

	v, err = s.Validate("node", "flow", "90")
	require.NoError(t, err)
	require.False(t, v.Relative)
	require.Equal(t, int64(90), v.Int)
	require.Equal(t, "east", v.Str)
}

func TestSubclassFallsBackToBaseDefs(t *testing.T) {
	s := NewSchema()
	v, err := s.Validate("node.city", "color", "blue")
	require.NoError(t, err)
	require.Equal(t, "#0000ff", v.Str)
}

func TestDefault(t *testing.T) {
	s := NewSchema()
	v := s.Default("edge", "minlen")
	require.Equal(t, int64(1), v.Int)
}
